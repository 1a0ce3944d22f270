// Package frontend ties the scanner and parser into a single pipeline:
// scan all lines of a source text in order, then parse the combined token
// stream into a program.
package frontend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/krisvanrens/nexus-lang/internal/ast"
	"github.com/krisvanrens/nexus-lang/internal/parser"
	"github.com/krisvanrens/nexus-lang/internal/scanner"
	"github.com/krisvanrens/nexus-lang/internal/source"
	"github.com/krisvanrens/nexus-lang/internal/token"
)

// ScanErrors collects the lexical errors of a multi-line scan. Scanning
// continues past an erroring line so that all errors can be reported at
// once, but the partial token output never reaches the parser.
type ScanErrors []*scanner.ScanError

// Error implements the error interface, joining the individual renderings.
func (e ScanErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}

	parts := make([]string, len(e))
	for i, err := range e {
		parts[i] = err.Error()
	}
	return fmt.Sprintf("%d scan errors:\n%s", len(e), strings.Join(parts, "\n"))
}

// Render returns the caret-annotated diagnostics for all collected errors.
func (e ScanErrors) Render() string {
	parts := make([]string, len(e))
	for i, err := range e {
		parts[i] = err.Render()
	}
	return strings.Join(parts, "\n")
}

// ScanLines scans source lines in order through a single scanner instance.
// It returns the combined token stream, or the accumulated per-line errors.
func ScanLines(lines []source.Line) (token.Tokens, ScanErrors) {
	s := scanner.New()

	var tokens token.Tokens
	var errs ScanErrors
	for _, line := range lines {
		lineTokens, err := s.Scan(line)
		if err != nil {
			var serr *scanner.ScanError
			if errors.As(err, &serr) {
				errs = append(errs, serr)
			}
			continue
		}
		tokens = append(tokens, lineTokens...)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return tokens, nil
}

// Parse runs the full pipeline over source lines: scan, then parse. Any
// scan error aborts before parsing.
func Parse(lines []source.Line) (ast.Program, error) {
	tokens, errs := ScanLines(lines)
	if errs != nil {
		return nil, errs
	}

	return parser.New(tokens).Parse()
}

// ParseSource parses raw source text.
func ParseSource(text string) (ast.Program, error) {
	return Parse(source.SplitLines(text))
}

// ParseFile parses a source file.
func ParseFile(path string) (ast.Program, error) {
	lines, err := source.ReadLines(path)
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}

// Stats summarizes the node population of a parsed program.
type Stats struct {
	Statements  int
	Expressions int
	Literals    int
	Calls       int
}

type statsVisitor struct {
	ast.BaseVisitor

	stats Stats
}

func (v *statsVisitor) VisitBlockStmt(*ast.BlockStmt) any           { v.stats.Statements++; return nil }
func (v *statsVisitor) VisitConstDecl(*ast.ConstDecl) any           { v.stats.Statements++; return nil }
func (v *statsVisitor) VisitVarDecl(*ast.VarDecl) any               { v.stats.Statements++; return nil }
func (v *statsVisitor) VisitFunctionDecl(*ast.FunctionDecl) any     { v.stats.Statements++; return nil }
func (v *statsVisitor) VisitUseDecl(*ast.UseDecl) any               { v.stats.Statements++; return nil }
func (v *statsVisitor) VisitPrintStmt(*ast.PrintStmt) any           { v.stats.Statements++; return nil }
func (v *statsVisitor) VisitReturnStmt(*ast.ReturnStmt) any         { v.stats.Statements++; return nil }
func (v *statsVisitor) VisitAssignmentStmt(*ast.AssignmentStmt) any { v.stats.Statements++; return nil }
func (v *statsVisitor) VisitConnectStmt(*ast.ConnectStmt) any       { v.stats.Statements++; return nil }
func (v *statsVisitor) VisitExprStmt(*ast.ExprStmt) any             { v.stats.Statements++; return nil }

func (v *statsVisitor) VisitLiteral(*ast.Literal) any       { v.stats.Literals++; v.stats.Expressions++; return nil }
func (v *statsVisitor) VisitCallExpr(*ast.CallExpr) any     { v.stats.Calls++; v.stats.Expressions++; return nil }
func (v *statsVisitor) VisitVarExpr(*ast.VarExpr) any       { v.stats.Expressions++; return nil }
func (v *statsVisitor) VisitUnaryExpr(*ast.UnaryExpr) any   { v.stats.Expressions++; return nil }
func (v *statsVisitor) VisitBinaryExpr(*ast.BinaryExpr) any { v.stats.Expressions++; return nil }
func (v *statsVisitor) VisitGroupExpr(*ast.GroupExpr) any   { v.stats.Expressions++; return nil }
func (v *statsVisitor) VisitBlockExpr(*ast.BlockExpr) any   { v.stats.Expressions++; return nil }
func (v *statsVisitor) VisitIfExpr(*ast.IfExpr) any         { v.stats.Expressions++; return nil }
func (v *statsVisitor) VisitWhileExpr(*ast.WhileExpr) any   { v.stats.Expressions++; return nil }
func (v *statsVisitor) VisitForExpr(*ast.ForExpr) any       { v.stats.Expressions++; return nil }
func (v *statsVisitor) VisitRangeExpr(*ast.RangeExpr) any   { v.stats.Expressions++; return nil }
func (v *statsVisitor) VisitRefExpr(*ast.RefExpr) any       { v.stats.Expressions++; return nil }

// Statistics walks the program and counts its nodes.
func Statistics(program ast.Program) Stats {
	v := &statsVisitor{}
	ast.WalkProgram(v, program)
	return v.stats
}
