package parser

import (
	"errors"
	"testing"

	"github.com/krisvanrens/nexus-lang/internal/token"
)

func TestTokenCursorValue(t *testing.T) {
	c := NewTokenCursor(token.Tokens{token.New(token.Let), token.New(token.Arrow)})

	tok, ok := c.Value()
	if !ok || tok.Kind != token.Let {
		t.Fatalf("value wrong. expected=Let, got=%v (ok=%v)", tok, ok)
	}

	tok, ok = c.Value()
	if !ok || tok.Kind != token.Arrow {
		t.Fatalf("value wrong. expected=Arrow, got=%v (ok=%v)", tok, ok)
	}

	if _, ok = c.Value(); ok {
		t.Fatalf("value past end should report not-ok")
	}
}

func TestTokenCursorPeek(t *testing.T) {
	c := NewTokenCursor(token.Tokens{token.New(token.Let), token.New(token.Arrow)})

	if tok, ok := c.Value(); !ok || tok.Kind != token.Let {
		t.Fatalf("value wrong. expected=Let, got=%v", tok)
	}
	if tok, ok := c.Peek(); !ok || tok.Kind != token.Arrow {
		t.Fatalf("peek wrong. expected=Arrow, got=%v", tok)
	}
	if tok, ok := c.Value(); !ok || tok.Kind != token.Arrow {
		t.Fatalf("value wrong. expected=Arrow, got=%v", tok)
	}
	if _, ok := c.Peek(); ok {
		t.Fatalf("peek past end should report not-ok")
	}
}

func TestTokenCursorPeekNext(t *testing.T) {
	c := NewTokenCursor(token.Tokens{
		token.New(token.Let),
		token.New(token.Arrow),
		token.New(token.For),
	})

	c.Advance()

	if tok, ok := c.PeekNext(); !ok || tok.Kind != token.For {
		t.Fatalf("peek next wrong. expected=For, got=%v", tok)
	}

	c.Advance()

	if _, ok := c.PeekNext(); ok {
		t.Fatalf("peek next past end should report not-ok")
	}
	if tok, ok := c.Value(); !ok || tok.Kind != token.For {
		t.Fatalf("value wrong. expected=For, got=%v", tok)
	}
}

func TestTokenCursorAdvance(t *testing.T) {
	c := NewTokenCursor(token.Tokens{
		token.New(token.Let),
		token.NewIdentifier("x"),
		token.New(token.SemiColon),
	})

	want := []token.Kind{token.Let, token.Identifier, token.SemiColon}
	for i, kind := range want {
		tok, ok := c.Peek()
		if !ok || tok.Kind != kind {
			t.Fatalf("tokens[%d] - peek wrong. expected=%v, got=%v", i, kind, tok.Kind)
		}
		c.Advance()
	}

	if _, ok := c.Peek(); ok {
		t.Fatalf("peek past end should report not-ok")
	}
}

func TestTokenCursorAdvanceIf(t *testing.T) {
	c := NewTokenCursor(token.Tokens{token.New(token.Let), token.New(token.Arrow)})

	if !c.AdvanceIf(token.New(token.Let)) {
		t.Fatalf("advance on matching token should report true")
	}
	if c.AdvanceIf(token.New(token.Let)) {
		t.Fatalf("advance on non-matching token should report false")
	}
}

func TestTokenCursorAdvanceIfPayload(t *testing.T) {
	c := NewTokenCursor(token.Tokens{token.NewIdentifier("x")})

	if c.AdvanceIf(token.NewIdentifier("y")) {
		t.Fatalf("identifier with different payload should not match")
	}
	if !c.AdvanceIf(token.NewIdentifier("x")) {
		t.Fatalf("identifier with equal payload should match")
	}
}

func TestTokenCursorConsume(t *testing.T) {
	c := NewTokenCursor(token.Tokens{
		token.New(token.Let),
		token.New(token.Arrow),
		token.New(token.Colon),
	})

	if err := c.Consume(token.New(token.Let)); err != nil {
		t.Fatalf("consume failed: %v", err)
	}
	if err := c.Consume(token.New(token.Arrow)); err != nil {
		t.Fatalf("consume failed: %v", err)
	}

	err := c.Consume(token.New(token.SemiColon))
	if err == nil {
		t.Fatalf("consume of wrong token should fail")
	}

	var perr *ParseError
	if !errors.As(err, &perr) || perr.Kind != Expected {
		t.Fatalf("error kind wrong. expected=Expected, got=%v", err)
	}
}

func TestTokenCursorConsumeMsg(t *testing.T) {
	c := NewTokenCursor(token.Tokens{token.New(token.Let), token.New(token.Colon)})

	if err := c.ConsumeMsg(token.New(token.Let), "expected 'let'"); err != nil {
		t.Fatalf("consume failed: %v", err)
	}

	err := c.ConsumeMsg(token.New(token.SemiColon), "expected ';'")
	if err == nil {
		t.Fatalf("consume of wrong token should fail")
	}

	var perr *ParseError
	if !errors.As(err, &perr) || perr.Kind != ExpectedReason || perr.Context != "expected ';'" {
		t.Fatalf("error wrong. expected=ExpectedReason(\"expected ';'\"), got=%v", err)
	}
}

func TestTokenCursorEOS(t *testing.T) {
	c := NewTokenCursor(token.Tokens{token.New(token.Let), token.New(token.Arrow)})

	if c.EOS() {
		t.Fatalf("cursor at start should not be EOS")
	}
	c.Advance()
	if c.EOS() {
		t.Fatalf("cursor on last token should not be EOS")
	}
	c.Advance()
	if !c.EOS() {
		t.Fatalf("exhausted cursor should be EOS")
	}
}
