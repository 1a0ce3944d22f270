// Package token defines the lexical tokens of the Nexus language.
package token

import (
	"fmt"
	"strconv"
)

// Kind represents the kind of a token.
type Kind int

// Token kinds for the Nexus grammar.
const (
	// Punctuation and operators.
	LeftParen    Kind = iota // '('
	RightParen               // ')'
	LeftBrace                // '{'
	RightBrace               // '}'
	LeftBracket              // '['
	RightBracket             // ']'
	Colon                    // ':'
	SemiColon                // ';'
	Plus                     // '+'
	Minus                    // '-'
	Arrow                    // '->'
	Star                     // '*'
	Slash                    // '/'
	BackSlash                // '\'
	Percent                  // '%'
	Comma                    // ','
	Dot                      // '.'
	Range                    // '..'
	Underscore               // '_'
	Is                       // '='
	Eq                       // '=='
	Gt                       // '>'
	GtEq                     // '>='
	Lt                       // '<'
	LtEq                     // '<='
	Bang                     // '!'
	NotEq                    // '!='
	Amp                      // '&' (address-of)
	And                      // '&&'
	Pipe                     // '|'
	Or                       // '||' (folded from two pipes by the parser)

	// Keywords.
	True     // 'true'
	False    // 'false'
	Let      // 'let'
	Mut      // 'mut'
	Const    // 'const'
	Function // 'fn'
	If       // 'if'
	Else     // 'else'
	For      // 'for'
	In       // 'in'
	While    // 'while'
	Return   // 'return'
	Print    // 'print'
	Use      // 'use'
	Node     // 'node'
	Group    // 'group'

	// Type identifiers.
	BoolID   // 'bool'
	NumberID // 'Number'
	StringID // 'String'
	NodeID   // 'Node'
	GroupID  // 'Group'

	// Data-bearing tokens.
	Number     // number literal
	String     // string literal
	Identifier // identifier
)

var kindNames = map[Kind]string{
	LeftParen:    "LeftParen",
	RightParen:   "RightParen",
	LeftBrace:    "LeftBrace",
	RightBrace:   "RightBrace",
	LeftBracket:  "LeftBracket",
	RightBracket: "RightBracket",
	Colon:        "Colon",
	SemiColon:    "SemiColon",
	Plus:         "Plus",
	Minus:        "Minus",
	Arrow:        "Arrow",
	Star:         "Star",
	Slash:        "Slash",
	BackSlash:    "BackSlash",
	Percent:      "Percent",
	Comma:        "Comma",
	Dot:          "Dot",
	Range:        "Range",
	Underscore:   "Underscore",
	Is:           "Is",
	Eq:           "Eq",
	Gt:           "Gt",
	GtEq:         "GtEq",
	Lt:           "Lt",
	LtEq:         "LtEq",
	Bang:         "Bang",
	NotEq:        "NotEq",
	Amp:          "Amp",
	And:          "And",
	Pipe:         "Pipe",
	Or:           "Or",
	True:         "True",
	False:        "False",
	Let:          "Let",
	Mut:          "Mut",
	Const:        "Const",
	Function:     "Function",
	If:           "If",
	Else:         "Else",
	For:          "For",
	In:           "In",
	While:        "While",
	Return:       "Return",
	Print:        "Print",
	Use:          "Use",
	Node:         "Node",
	Group:        "Group",
	BoolID:       "BoolId",
	NumberID:     "NumberId",
	StringID:     "StringId",
	NodeID:       "NodeId",
	GroupID:      "GroupId",
	Number:       "Number",
	String:       "String",
	Identifier:   "Identifier",
}

// String returns a string representation of the token kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", int(k))
}

// Token is a single lexical token. Tokens are pure values: they carry no
// position information, only the kind and (for Number, String and
// Identifier) the payload. Two tokens compare equal with '==' iff both the
// kind and the payload match.
type Token struct {
	Kind Kind
	Num  float64 // payload for Number
	Text string  // payload for String and Identifier
}

// Tokens is a collection of tokens.
type Tokens []Token

// New creates a token without payload.
func New(kind Kind) Token {
	return Token{Kind: kind}
}

// NewNumber creates a number literal token.
func NewNumber(value float64) Token {
	return Token{Kind: Number, Num: value}
}

// NewString creates a string literal token.
func NewString(text string) Token {
	return Token{Kind: String, Text: text}
}

// NewIdentifier creates an identifier token.
func NewIdentifier(name string) Token {
	return Token{Kind: Identifier, Text: name}
}

// String returns a string representation of the token.
func (t Token) String() string {
	switch t.Kind {
	case Number:
		return fmt.Sprintf("Number(%s)", strconv.FormatFloat(t.Num, 'f', -1, 64))
	case String:
		return fmt.Sprintf("String(%q)", t.Text)
	case Identifier:
		return fmt.Sprintf("Identifier(%s)", t.Text)
	default:
		return t.Kind.String()
	}
}

// keywords is the fixed, case-sensitive keyword table of the Nexus grammar.
var keywords = map[string]Kind{
	"bool":   BoolID,
	"Group":  GroupID,
	"Node":   NodeID,
	"Number": NumberID,
	"String": StringID,
	"const":  Const,
	"else":   Else,
	"false":  False,
	"fn":     Function,
	"for":    For,
	"group":  Group,
	"if":     If,
	"in":     In,
	"let":    Let,
	"mut":    Mut,
	"node":   Node,
	"print":  Print,
	"return": Return,
	"true":   True,
	"use":    Use,
	"while":  While,
}

// Keyword looks up a word in the keyword table.
func Keyword(word string) (Token, bool) {
	kind, ok := keywords[word]
	return Token{Kind: kind}, ok
}

// IsKeyword reports whether the token is a reserved keyword (including the
// type identifiers). Keywords may not be used as identifiers.
func IsKeyword(t Token) bool {
	switch t.Kind {
	case True, False, Let, Mut, Const, Function, If, Else, For, In, While,
		Return, Print, Use, Node, Group, BoolID, NumberID, StringID, NodeID, GroupID:
		return true
	default:
		return false
	}
}
