package parser

import (
	"github.com/krisvanrens/nexus-lang/internal/token"
)

// TokenCursor is a one-token-lookahead (plus one-ahead peek) cursor over a
// finished token sequence, used by the parser.
//
// Token matching is by value: data-bearing tokens (Number, String,
// Identifier) only match when the payload matches too, so Consume is
// unsuitable for those; callers take them with Value and inspect the kind.
type TokenCursor struct {
	tokens token.Tokens
	pos    int
}

// NewTokenCursor creates a cursor over a token sequence.
func NewTokenCursor(tokens token.Tokens) *TokenCursor {
	return &TokenCursor{tokens: tokens}
}

// Value returns and consumes the current token.
func (c *TokenCursor) Value() (token.Token, bool) {
	if c.EOS() {
		return token.Token{}, false
	}
	tok := c.tokens[c.pos]
	c.pos++
	return tok, true
}

// Peek returns the current token without consuming.
func (c *TokenCursor) Peek() (token.Token, bool) {
	if c.EOS() {
		return token.Token{}, false
	}
	return c.tokens[c.pos], true
}

// PeekNext returns the token one past the current one without consuming.
func (c *TokenCursor) PeekNext() (token.Token, bool) {
	if c.pos+1 >= len(c.tokens) {
		return token.Token{}, false
	}
	return c.tokens[c.pos+1], true
}

// PeekKind reports whether the current token has the given kind.
func (c *TokenCursor) PeekKind(kind token.Kind) bool {
	tok, ok := c.Peek()
	return ok && tok.Kind == kind
}

// Advance moves the cursor forward unconditionally.
func (c *TokenCursor) Advance() {
	if !c.EOS() {
		c.pos++
	}
}

// AdvanceIf advances only when the current token equals the match token,
// reporting whether it did.
func (c *TokenCursor) AdvanceIf(match token.Token) bool {
	if tok, ok := c.Peek(); ok && tok == match {
		c.Advance()
		return true
	}
	return false
}

// Consume advances past an expected token, or fails with an Expected parse
// error.
func (c *TokenCursor) Consume(expected token.Token) error {
	if tok, ok := c.Peek(); ok && tok == expected {
		c.Advance()
		return nil
	}
	return expectedError(expected)
}

// ConsumeMsg advances past an expected token, or fails with an
// ExpectedReason parse error carrying the given reason.
func (c *TokenCursor) ConsumeMsg(expected token.Token, reason string) error {
	if tok, ok := c.Peek(); ok && tok == expected {
		c.Advance()
		return nil
	}
	return expectedReasonError(expected, reason)
}

// EOS reports whether the token stream is exhausted.
func (c *TokenCursor) EOS() bool {
	return c.pos >= len(c.tokens)
}
