// Package source provides source line representations and a line-oriented
// file reader for the Nexus front end.
package source

// Line is a single physical line of source text, optionally tagged with its
// 1-based line number (0 means unnumbered, e.g. REPL input).
type Line struct {
	Text   string
	Number int
}

// NewLine creates an unnumbered source line.
func NewLine(text string) Line {
	return Line{Text: text}
}

// Numbered reports whether the line carries a line number.
func (l Line) Numbered() bool {
	return l.Number > 0
}
