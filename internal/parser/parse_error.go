package parser

import (
	"fmt"

	"github.com/krisvanrens/nexus-lang/internal/token"
)

// ParseErrorKind discriminates parse error conditions.
type ParseErrorKind int

const (
	// Expected marks a missing expected token.
	Expected ParseErrorKind = iota
	// ExpectedReason marks a missing expected token with a specific reason.
	ExpectedReason
	// Unexpected marks a token that cannot start or continue a production.
	Unexpected
	// UnexpectedEos marks an exhausted token stream inside a production.
	UnexpectedEos
	// KeywordAsIdentifier marks a reserved keyword in identifier position.
	KeywordAsIdentifier
	// RangeDelimiter marks an illegal range-bound expression shape.
	RangeDelimiter
	// Custom carries a free-form error message.
	Custom
)

// ParseError is a structured parse error. Depending on the kind it carries
// the expected or offending token, a reason or context label, or a custom
// message. A parse error is terminal: the parser returns no partial
// program.
type ParseError struct {
	Kind    ParseErrorKind
	Token   token.Token // expected (Expected*, KeywordAsIdentifier) or offending (Unexpected) token
	Context string      // reason (ExpectedReason), context label (UnexpectedEos) or message (Custom)
}

func newParseError(kind ParseErrorKind) *ParseError {
	return &ParseError{Kind: kind}
}

func expectedError(tok token.Token) *ParseError {
	return &ParseError{Kind: Expected, Token: tok}
}

func expectedReasonError(tok token.Token, reason string) *ParseError {
	return &ParseError{Kind: ExpectedReason, Token: tok, Context: reason}
}

func unexpectedError(tok token.Token) *ParseError {
	return &ParseError{Kind: Unexpected, Token: tok}
}

func unexpectedEosError(context string) *ParseError {
	return &ParseError{Kind: UnexpectedEos, Context: context}
}

func keywordError(tok token.Token) *ParseError {
	return &ParseError{Kind: KeywordAsIdentifier, Token: tok}
}

func customError(format string, args ...any) *ParseError {
	return &ParseError{Kind: Custom, Context: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch e.Kind {
	case Expected:
		return fmt.Sprintf("expected token '%s'", e.Token)
	case ExpectedReason:
		return fmt.Sprintf("expected token '%s': %s", e.Token, e.Context)
	case Unexpected:
		return fmt.Sprintf("unexpected token '%s'", e.Token)
	case UnexpectedEos:
		return fmt.Sprintf("unexpected end of token stream (%s)", e.Context)
	case KeywordAsIdentifier:
		return fmt.Sprintf("keyword '%s' cannot be used as an identifier", e.Token)
	case RangeDelimiter:
		return "range delimiter must be a literal, variable or grouped expression"
	case Custom:
		return e.Context
	default:
		return fmt.Sprintf("unknown parse error (%d)", int(e.Kind))
	}
}
