package source

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLineNumbered(t *testing.T) {
	if NewLine("x").Numbered() {
		t.Fatalf("unnumbered line should report false")
	}
	if !(Line{Text: "x", Number: 1}).Numbered() {
		t.Fatalf("numbered line should report true")
	}
}

func TestSplitLines(t *testing.T) {
	lines := SplitLines("a\nb\n\nc")

	want := []Line{
		{Text: "a", Number: 1},
		{Text: "b", Number: 2},
		{Text: "", Number: 3},
		{Text: "c", Number: 4},
	}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("lines wrong. expected=%v, got=%v", want, lines)
	}
}

func TestSplitLinesEmpty(t *testing.T) {
	lines := SplitLines("")
	if len(lines) != 1 || lines[0].Text != "" {
		t.Fatalf("lines wrong. got=%v", lines)
	}
}

func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.nxs")
	content := "let x = 1;\nprint x;\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	want := []Line{
		{Text: "let x = 1;", Number: 1},
		{Text: "print x;", Number: 2},
	}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("lines wrong. expected=%v, got=%v", want, lines)
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	if _, err := ReadLines(filepath.Join(t.TempDir(), "missing.nxs")); err == nil {
		t.Fatalf("read of missing file should fail")
	}
}

func TestReaderNumbersLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.nxs")
	if err := os.WriteFile(path, []byte("a\nb\nc"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer r.Close()

	for i := 1; ; i++ {
		line, ok := r.Next()
		if !ok {
			break
		}
		if line.Number != i {
			t.Fatalf("line number wrong. expected=%d, got=%d", i, line.Number)
		}
	}

	if err := r.Err(); err != nil {
		t.Fatalf("reader error: %v", err)
	}
}
