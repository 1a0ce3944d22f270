package scanner

// Cursor is a character cursor over a single line of text, providing direct
// value access and multi-character lookahead. It operates on runes so that
// non-ASCII identifiers and string contents are handled correctly.
//
// The cursor cannot fail: advancing past end-of-line (EOL) is valid and
// clamps, and all peek operations simply report absence at EOL.
type Cursor struct {
	runes []rune
	pos   int
}

// NewCursor creates a cursor over a line of text, pointing at its first
// character.
func NewCursor(line string) *Cursor {
	return &Cursor{runes: []rune(line)}
}

// Value returns the character the cursor points at, or false at EOL.
func (c *Cursor) Value() (rune, bool) {
	if c.pos >= len(c.runes) {
		return 0, false
	}
	return c.runes[c.pos], true
}

// Advance moves the cursor one position forward.
func (c *Cursor) Advance() {
	c.AdvanceBy(1)
}

// AdvanceBy moves the cursor n positions forward, clamping at EOL.
// AdvanceBy(0) is a no-op.
func (c *Cursor) AdvanceBy(n int) {
	c.pos += n
	if c.pos > len(c.runes) {
		c.pos = len(c.runes)
	}
}

// Peek returns the character one past the current one without consuming.
func (c *Cursor) Peek() (rune, bool) {
	return c.PeekNth(1)
}

// PeekNth returns the nth character ahead without consuming. PeekNth(0) is
// equivalent to Value, PeekNth(1) to Peek.
func (c *Cursor) PeekNth(n int) (rune, bool) {
	if c.pos+n >= len(c.runes) {
		return 0, false
	}
	return c.runes[c.pos+n], true
}

// PeekWhile returns the maximal run of characters starting at (and
// including) the current one for which the predicate holds, without
// consuming. The current character is always part of the run. Returns false
// at EOL.
func (c *Cursor) PeekWhile(predicate func(rune) bool) (string, bool) {
	if c.pos >= len(c.runes) {
		return "", false
	}

	end := c.pos + 1
	for end < len(c.runes) && predicate(c.runes[end]) {
		end++
	}
	return string(c.runes[c.pos:end]), true
}

// PeekWord returns the alphanumeric-or-underscore run starting at the
// current character, used to pre-measure identifiers and keywords.
func (c *Cursor) PeekWord() (string, bool) {
	return c.PeekWhile(isWordRune)
}

// Index returns the character index of the cursor within the line. Once the
// cursor has moved past the end, the index stays clamped to the last valid
// character, which keeps error carets on the line.
func (c *Cursor) Index() int {
	if len(c.runes) == 0 {
		return 0
	}
	if c.pos >= len(c.runes) {
		return len(c.runes) - 1
	}
	return c.pos
}

// EOL reports whether the cursor is at end-of-line.
func (c *Cursor) EOL() bool {
	return c.pos >= len(c.runes)
}
