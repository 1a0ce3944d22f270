package scanner

import (
	"fmt"
	"strings"

	"github.com/krisvanrens/nexus-lang/internal/source"
)

// ScanErrorKind discriminates lexical error conditions.
type ScanErrorKind int

const (
	// MalformedString marks a string literal with a dangling escape.
	MalformedString ScanErrorKind = iota
	// NumberParseError marks a number literal that failed to parse.
	NumberParseError
	// WordParseError marks a word that could not be read.
	WordParseError
	// UnexpectedCharacter marks a character with no lexical meaning.
	UnexpectedCharacter
	// UnterminatedString marks a string literal without a closing quote.
	UnterminatedString
)

// String returns the error message for the kind.
func (k ScanErrorKind) String() string {
	switch k {
	case MalformedString:
		return "malformed string literal"
	case NumberParseError:
		return "failed to parse number"
	case WordParseError:
		return "failed to parse word"
	case UnexpectedCharacter:
		return "unexpected character"
	case UnterminatedString:
		return "unterminated string"
	default:
		return fmt.Sprintf("unknown scan error (%d)", int(k))
	}
}

// ScanError is a lexical error tied to a character index in a source line.
// It carries enough context to render a caret-annotated diagnostic.
type ScanError struct {
	Line      source.Line
	Kind      ScanErrorKind
	CharIndex int
	Detail    string // offending text for NumberParseError
}

// newScanError creates a scan error at the current cursor position.
func newScanError(line source.Line, kind ScanErrorKind, cursor *Cursor) *ScanError {
	return &ScanError{
		Line:      line,
		Kind:      kind,
		CharIndex: cursor.Index(),
	}
}

// Message returns the single-line error message.
func (e *ScanError) Message() string {
	if e.Kind == NumberParseError {
		return fmt.Sprintf("failed to parse number '%s'", e.Detail)
	}
	return e.Kind.String()
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	if e.Line.Numbered() {
		return fmt.Sprintf("line %d:%d: %s", e.Line.Number, e.CharIndex, e.Message())
	}
	return fmt.Sprintf("%d: %s", e.CharIndex, e.Message())
}

// Render returns a multi-line, caret-annotated diagnostic: the source line
// with a right-justified line-number gutter, and a '^' marker under the
// offending column followed by the error message.
func (e *ScanError) Render() string {
	number := ""
	if e.Line.Numbered() {
		number = fmt.Sprintf("%d", e.Line.Number)
	}

	prefixFill := strings.Repeat(" ", len(number)+2)
	charFill := strings.Repeat(" ", e.CharIndex)

	var b strings.Builder
	fmt.Fprintf(&b, "%s|\n", prefixFill)
	fmt.Fprintf(&b, " %s | %s\n", number, e.Line.Text)
	fmt.Fprintf(&b, "%s| %s^\n", prefixFill, charFill)
	fmt.Fprintf(&b, "%s| error: %s\n", prefixFill, e.Message())
	fmt.Fprintf(&b, "%s|", prefixFill)
	return b.String()
}
