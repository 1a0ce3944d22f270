package source

import (
	"bufio"
	"os"
	"strings"
)

// Reader reads a file line by line, producing Line values in file order.
// Lines are numbered starting at 1.
type Reader struct {
	file    *os.File
	scanner *bufio.Scanner
	number  int
}

// Open opens a file for line-oriented reading.
func Open(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{
		file:    file,
		scanner: bufio.NewScanner(file),
	}, nil
}

// Next returns the next line, or false when the file is exhausted.
func (r *Reader) Next() (Line, bool) {
	if !r.scanner.Scan() {
		return Line{}, false
	}
	r.number++
	return Line{Text: r.scanner.Text(), Number: r.number}, true
}

// Err returns the first error encountered while reading, if any.
func (r *Reader) Err() error {
	return r.scanner.Err()
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}

// ReadLines reads all lines of a file.
func ReadLines(path string) ([]Line, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var lines []Line
	for {
		line, ok := r.Next()
		if !ok {
			break
		}
		lines = append(lines, line)
	}
	return lines, r.Err()
}

// SplitLines splits raw source text into numbered lines, for inputs that do
// not come from a file.
func SplitLines(text string) []Line {
	parts := strings.Split(text, "\n")
	lines := make([]Line, len(parts))
	for i, part := range parts {
		lines[i] = Line{Text: part, Number: i + 1}
	}
	return lines
}
