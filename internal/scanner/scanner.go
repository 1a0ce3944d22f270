// Package scanner implements the Nexus lexical scanner: a stateful, line
// oriented tokenizer with cross-line multi-line comment tracking.
package scanner

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/krisvanrens/nexus-lang/internal/source"
	"github.com/krisvanrens/nexus-lang/internal/token"
)

// Scanner tokenizes Nexus source text one line at a time.
//
// The scanner holds one bit of state across calls: whether it is inside a
// multi-line comment. Line scans are therefore not commutative; lines from
// one source file must be fed in original file order through a single
// Scanner instance, and a Scanner must not be shared across concurrent
// scans or reused for unrelated inputs.
type Scanner struct {
	inComment bool
}

// New creates a new scanner.
func New() *Scanner {
	return &Scanner{}
}

// Scan tokenizes a single line of source text. It returns the tokens found
// on the line, or a *ScanError tied to the character index where scanning
// failed.
func (s *Scanner) Scan(line source.Line) (token.Tokens, error) {
	var tokens token.Tokens

	cursor := NewCursor(line.Text)
	for {
		c, ok := cursor.Value()
		if !ok {
			break
		}

		if s.inComment {
			if c == '*' {
				if next, ok := cursor.Peek(); ok && next == '/' {
					cursor.Advance()
					s.inComment = false
				}
			}
			cursor.Advance()
			continue
		}

		switch {
		case c == ' ' || c == '\n' || c == '\r' || c == '\t':
			// Skip whitespace.
		case c == '(':
			tokens = append(tokens, token.New(token.LeftParen))
		case c == ')':
			tokens = append(tokens, token.New(token.RightParen))
		case c == '{':
			tokens = append(tokens, token.New(token.LeftBrace))
		case c == '}':
			tokens = append(tokens, token.New(token.RightBrace))
		case c == '[':
			tokens = append(tokens, token.New(token.LeftBracket))
		case c == ']':
			tokens = append(tokens, token.New(token.RightBracket))
		case c == ':':
			tokens = append(tokens, token.New(token.Colon))
		case c == ';':
			tokens = append(tokens, token.New(token.SemiColon))
		case c == '+':
			tokens = append(tokens, token.New(token.Plus))
		case c == '-':
			if next, ok := cursor.Peek(); ok && next == '>' {
				cursor.Advance()
				tokens = append(tokens, token.New(token.Arrow))
			} else {
				tokens = append(tokens, token.New(token.Minus))
			}
		case c == '*':
			tokens = append(tokens, token.New(token.Star))
		case c == '\\':
			tokens = append(tokens, token.New(token.BackSlash))
		case c == '%':
			tokens = append(tokens, token.New(token.Percent))
		case c == ',':
			tokens = append(tokens, token.New(token.Comma))
		case c == '.':
			if next, ok := cursor.Peek(); ok && next == '.' {
				cursor.Advance()
				tokens = append(tokens, token.New(token.Range))
			} else {
				tokens = append(tokens, token.New(token.Dot))
			}
		case c == '_':
			tokens = append(tokens, token.New(token.Underscore))
		case c == '=':
			if next, ok := cursor.Peek(); ok && next == '=' {
				cursor.Advance()
				tokens = append(tokens, token.New(token.Eq))
			} else {
				tokens = append(tokens, token.New(token.Is))
			}
		case c == '|':
			tokens = append(tokens, token.New(token.Pipe))
		case c == '>':
			if next, ok := cursor.Peek(); ok && next == '=' {
				cursor.Advance()
				tokens = append(tokens, token.New(token.GtEq))
			} else {
				tokens = append(tokens, token.New(token.Gt))
			}
		case c == '<':
			if next, ok := cursor.Peek(); ok && next == '=' {
				cursor.Advance()
				tokens = append(tokens, token.New(token.LtEq))
			} else {
				tokens = append(tokens, token.New(token.Lt))
			}
		case c == '!':
			if next, ok := cursor.Peek(); ok && next == '=' {
				cursor.Advance()
				tokens = append(tokens, token.New(token.NotEq))
			} else {
				tokens = append(tokens, token.New(token.Bang))
			}
		case c == '&':
			if next, ok := cursor.Peek(); ok && next == '&' {
				cursor.Advance()
				tokens = append(tokens, token.New(token.And))
			} else {
				tokens = append(tokens, token.New(token.Amp))
			}
		case c == '/':
			next, ok := cursor.Peek()
			switch {
			case ok && next == '/':
				// Line comment: the rest of the line is ignored.
				return tokens, nil
			case ok && next == '*':
				cursor.Advance()
				s.inComment = true
			default:
				tokens = append(tokens, token.New(token.Slash))
			}
		case c == '"':
			text, fault := scanString(cursor)
			if fault != nil {
				return nil, s.errorAt(line, cursor, fault)
			}
			tokens = append(tokens, token.NewString(text))
		case c >= '0' && c <= '9':
			value, fault := scanNumber(cursor)
			if fault != nil {
				return nil, s.errorAt(line, cursor, fault)
			}
			tokens = append(tokens, token.NewNumber(value))
		case unicode.IsLetter(c):
			tok, fault := scanWord(cursor)
			if fault != nil {
				return nil, s.errorAt(line, cursor, fault)
			}
			tokens = append(tokens, tok)
		default:
			return nil, s.errorAt(line, cursor, &scanFault{kind: UnexpectedCharacter})
		}

		cursor.Advance()
	}

	return tokens, nil
}

// scanFault is an intermediate lexical failure, turned into a *ScanError
// (with line and character index) at the call site.
type scanFault struct {
	kind   ScanErrorKind
	detail string
}

func (s *Scanner) errorAt(line source.Line, cursor *Cursor, fault *scanFault) *ScanError {
	err := newScanError(line, fault.kind, cursor)
	err.Detail = fault.detail
	return err
}

// scanString reads a string literal. The cursor points at the opening quote
// on entry and is left on the closing quote (or at EOL on failure). The
// only recognized escapes are '\"' and '\\'; the escapes are resolved in
// the returned text.
func scanString(c *Cursor) (string, *scanFault) {
	var result strings.Builder
	escaped := false
	ended := false

	c.Advance() // Consume opening quote.

	for {
		ch, ok := c.Value()
		if !ok {
			break
		}

		switch ch {
		case '"':
			if !escaped {
				ended = true
			} else {
				result.WriteRune(ch)
			}
		case '\\':
			if escaped {
				result.WriteRune(ch)
			}
			escaped = !escaped
		default:
			result.WriteRune(ch)
		}

		if ended {
			break
		}

		escaped = escaped && ch == '\\'
		c.Advance()
	}

	if escaped {
		// Dangling escape at end of line.
		return "", &scanFault{kind: MalformedString}
	}

	if !ended {
		return "", &scanFault{kind: UnterminatedString}
	}

	return result.String(), nil
}

// scanNumber reads a number literal. A '.' is taken as a decimal point only
// when followed by another digit; a second '.' right behind it means the
// dots belong to a range expression and the number ends before them.
func scanNumber(c *Cursor) (float64, *scanFault) {
	first, _ := c.Value()
	var text strings.Builder
	text.WriteRune(first)

	foundDot := false
	for {
		ch, ok := c.Peek()
		if !ok {
			break
		}

		if ch >= '0' && ch <= '9' {
			text.WriteRune(ch)
		} else if ch == '.' && !foundDot {
			next, ok := c.PeekNth(2)
			switch {
			case ok && next == '.':
				// Range delimiter, not a decimal point.
				return parseFloat(text.String())
			case ok && next >= '0' && next <= '9':
				text.WriteRune(ch)
				foundDot = true
			default:
				c.AdvanceBy(2) // Point cursor to the unexpected character.
				return 0, &scanFault{kind: UnexpectedCharacter}
			}
		} else {
			break
		}

		c.Advance()
	}

	return parseFloat(text.String())
}

func parseFloat(text string) (float64, *scanFault) {
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &scanFault{kind: NumberParseError, detail: text}
	}
	return value, nil
}

// scanWord reads a keyword or identifier: the maximal alphanumeric-or-
// underscore run starting at the current character.
func scanWord(c *Cursor) (token.Token, *scanFault) {
	word, ok := c.PeekWord()
	if !ok {
		return token.Token{}, &scanFault{kind: WordParseError}
	}

	c.AdvanceBy(utf8.RuneCountInString(word) - 1)

	if tok, ok := token.Keyword(word); ok {
		return tok, nil
	}
	return token.NewIdentifier(word), nil
}

// isWordRune reports whether the rune may appear in an identifier.
func isWordRune(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_'
}
