package frontend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/krisvanrens/nexus-lang/internal/scanner"
	"github.com/krisvanrens/nexus-lang/internal/source"
)

const sample = `// A small Nexus program.
fn add(a: Number, b: Number) -> Number {
    return a + b;
}

let mut total = 0;
for i in 0..10 {
    total = total + add(i, 1);
};
print total;`

func TestParseSource(t *testing.T) {
	program, err := ParseSource(sample)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(program) != 4 {
		t.Fatalf("program length wrong. expected=4, got=%d", len(program))
	}
}

func TestParseSourceMultiLineComment(t *testing.T) {
	program, err := ParseSource("let a; /* spans\nmultiple\nlines */ let b;")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(program) != 2 {
		t.Fatalf("program length wrong. expected=2, got=%d", len(program))
	}
}

func TestScanLinesAccumulatesErrors(t *testing.T) {
	// Scanning continues past erroring lines and reports them all.
	lines := source.SplitLines("let a = @;\nlet b;\nlet c = #;")

	tokens, errs := ScanLines(lines)
	if tokens != nil {
		t.Fatalf("tokens should be withheld on scan errors")
	}
	if len(errs) != 2 {
		t.Fatalf("error count wrong. expected=2, got=%d", len(errs))
	}

	if errs[0].Line.Number != 1 || errs[1].Line.Number != 3 {
		t.Fatalf("error lines wrong. got=%d and %d", errs[0].Line.Number, errs[1].Line.Number)
	}
	for i, err := range errs {
		if err.Kind != scanner.UnexpectedCharacter {
			t.Fatalf("errs[%d] - kind wrong. expected=UnexpectedCharacter, got=%v", i, err.Kind)
		}
	}
}

func TestParseAbortsOnScanErrors(t *testing.T) {
	_, err := ParseSource("let a = @;")

	errs, ok := err.(ScanErrors)
	if !ok {
		t.Fatalf("error type wrong: %v", err)
	}
	if len(errs) != 1 {
		t.Fatalf("error count wrong. expected=1, got=%d", len(errs))
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.nxs")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	program, err := ParseFile(path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(program) != 4 {
		t.Fatalf("program length wrong. expected=4, got=%d", len(program))
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.nxs")); err == nil {
		t.Fatalf("parse of missing file should fail")
	}
}

func TestStatistics(t *testing.T) {
	program, err := ParseSource("let x = 1 + 2;\nprint f(x);")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	stats := Statistics(program)
	if stats.Statements != 2 {
		t.Fatalf("statement count wrong. expected=2, got=%d", stats.Statements)
	}
	if stats.Literals != 2 {
		t.Fatalf("literal count wrong. expected=2, got=%d", stats.Literals)
	}
	if stats.Calls != 1 {
		t.Fatalf("call count wrong. expected=1, got=%d", stats.Calls)
	}
}

func TestRoundTrip(t *testing.T) {
	// Pretty-printing a program and re-parsing the output yields a
	// structurally equal tree.
	inputs := []string{
		"let mut x: Number = 2 + 3;",
		"const PI: Number = 3.14;",
		"fn add(a: Number, b: Number) -> Number { return a + b; }",
		"print 1 + 2 * 3;",
		"for i in 0..10 { print i; };",
		"if x { print 1; } else { print 2; };",
		"a -> b;",
		"x = !done;",
		`use "lib.nxs";`,
	}

	for i, input := range inputs {
		first, err := ParseSource(input)
		if err != nil {
			t.Fatalf("inputs[%d] - parse failed: %v", i, err)
		}

		second, err := ParseSource(first.String())
		if err != nil {
			t.Fatalf("inputs[%d] - re-parse failed: %v", i, err)
		}

		if first.String() != second.String() {
			t.Fatalf("inputs[%d] - round trip wrong.\nfirst:  %s\nsecond: %s", i, first, second)
		}
	}
}
