// Package ast defines the Abstract Syntax Tree (AST) nodes for the Nexus
// language: the statement and expression model produced by the parser.
//
// Nodes form a strict tree: every node exclusively owns its children, and
// the Program returned by the parser is the sole root owner handed to the
// caller. All nodes render to a deterministic textual form via String();
// the rendering emits valid Nexus syntax so that printed programs can be
// scanned and parsed again.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is the base interface for all AST nodes.
type Node interface {
	// String returns a human-readable rendering of the node.
	String() string
	// Accept implements the visitor pattern for AST traversal.
	Accept(visitor Visitor) any
}

// Stmt represents all statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Program is the root of the AST: an ordered sequence of top-level
// statements.
type Program []Stmt

// String renders the program one statement per line.
func (p Program) String() string {
	parts := make([]string, len(p))
	for i, stmt := range p {
		parts[i] = stmt.String()
	}
	return strings.Join(parts, "\n")
}

// TypeKind is a Nexus fundamental type annotation.
type TypeKind int

const (
	TypeBool TypeKind = iota
	TypeNumber
	TypeString
	TypeNode
	TypeGroup
)

// String returns the Nexus spelling of the type.
func (t TypeKind) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeNumber:
		return "Number"
	case TypeString:
		return "String"
	case TypeNode:
		return "Node"
	case TypeGroup:
		return "Group"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// ===== Statements =====

// BlockStmt is a braced statement sequence.
type BlockStmt struct {
	Body []Stmt
}

func (s *BlockStmt) stmtNode() {}
func (s *BlockStmt) String() string {
	if len(s.Body) == 0 {
		return "{ }"
	}
	parts := make([]string, len(s.Body))
	for i, stmt := range s.Body {
		parts[i] = stmt.String()
	}
	return "{ " + strings.Join(parts, " ") + " }"
}
func (s *BlockStmt) Accept(v Visitor) any { return v.VisitBlockStmt(s) }

// ConstDecl is a constant declaration. The value is always a literal of the
// declared type.
type ConstDecl struct {
	Name  string
	Type  TypeKind
	Value Expr
}

func (s *ConstDecl) stmtNode() {}
func (s *ConstDecl) String() string {
	return fmt.Sprintf("const %s: %s = %s;", s.Name, s.Type, s.Value)
}
func (s *ConstDecl) Accept(v Visitor) any { return v.VisitConstDecl(s) }

// VarDecl is a variable declaration. Type and Value are optional.
type VarDecl struct {
	Name    string
	Mutable bool
	Type    *TypeKind
	Value   Expr
}

func (s *VarDecl) stmtNode() {}
func (s *VarDecl) String() string {
	var b strings.Builder
	b.WriteString("let ")
	if s.Mutable {
		b.WriteString("mut ")
	}
	b.WriteString(s.Name)
	if s.Type != nil {
		fmt.Fprintf(&b, ": %s", *s.Type)
	}
	if s.Value != nil {
		fmt.Fprintf(&b, " = %s", s.Value)
	}
	b.WriteString(";")
	return b.String()
}
func (s *VarDecl) Accept(v Visitor) any { return v.VisitVarDecl(s) }

// FunctionArg is a single function declaration argument.
type FunctionArg struct {
	Name string
	Type TypeKind
}

func (a *FunctionArg) String() string {
	return fmt.Sprintf("%s: %s", a.Name, a.Type)
}
func (a *FunctionArg) Accept(v Visitor) any { return v.VisitFunctionArg(a) }

// FunctionDecl is a function declaration. The body is always a block
// statement.
type FunctionDecl struct {
	Name       string
	Args       []*FunctionArg
	ReturnType *TypeKind
	Body       *BlockStmt
}

func (s *FunctionDecl) stmtNode() {}
func (s *FunctionDecl) String() string {
	args := make([]string, len(s.Args))
	for i, arg := range s.Args {
		args[i] = arg.String()
	}
	ret := ""
	if s.ReturnType != nil {
		ret = fmt.Sprintf(" -> %s", *s.ReturnType)
	}
	return fmt.Sprintf("fn %s(%s)%s %s", s.Name, strings.Join(args, ", "), ret, s.Body)
}
func (s *FunctionDecl) Accept(v Visitor) any { return v.VisitFunctionDecl(s) }

// UseDecl is a using declaration; the filename is an expression.
type UseDecl struct {
	Filename Expr
}

func (s *UseDecl) stmtNode() {}
func (s *UseDecl) String() string {
	return fmt.Sprintf("use %s;", s.Filename)
}
func (s *UseDecl) Accept(v Visitor) any { return v.VisitUseDecl(s) }

// PrintStmt is a print statement.
type PrintStmt struct {
	Expr Expr
}

func (s *PrintStmt) stmtNode() {}
func (s *PrintStmt) String() string {
	return fmt.Sprintf("print %s;", s.Expr)
}
func (s *PrintStmt) Accept(v Visitor) any { return v.VisitPrintStmt(s) }

// ReturnStmt is a return statement.
type ReturnStmt struct {
	Expr Expr
}

func (s *ReturnStmt) stmtNode() {}
func (s *ReturnStmt) String() string {
	return fmt.Sprintf("return %s;", s.Expr)
}
func (s *ReturnStmt) Accept(v Visitor) any { return v.VisitReturnStmt(s) }

// AssignmentStmt is an assignment: 'lhs = rhs;'.
type AssignmentStmt struct {
	LHS Expr
	RHS Expr
}

func (s *AssignmentStmt) stmtNode() {}
func (s *AssignmentStmt) String() string {
	return fmt.Sprintf("%s = %s;", s.LHS, s.RHS)
}
func (s *AssignmentStmt) Accept(v Visitor) any { return v.VisitAssignmentStmt(s) }

// ConnectStmt is a connect statement: 'source -> sink;'.
type ConnectStmt struct {
	Source Expr
	Sink   Expr
}

func (s *ConnectStmt) stmtNode() {}
func (s *ConnectStmt) String() string {
	return fmt.Sprintf("%s -> %s;", s.Source, s.Sink)
}
func (s *ConnectStmt) Accept(v Visitor) any { return v.VisitConnectStmt(s) }

// ExprStmt is an expression statement.
type ExprStmt struct {
	Expr Expr
}

func (s *ExprStmt) stmtNode() {}
func (s *ExprStmt) String() string {
	if _, ok := s.Expr.(*EmptyExpr); ok {
		return ";"
	}
	return fmt.Sprintf("%s;", s.Expr)
}
func (s *ExprStmt) Accept(v Visitor) any { return v.VisitExprStmt(s) }

// ===== Expressions =====

// LiteralKind discriminates literal values.
type LiteralKind int

const (
	LiteralBool LiteralKind = iota
	LiteralNumber
	LiteralString
)

// Literal is a literal value expression.
type Literal struct {
	Kind   LiteralKind
	Bool   bool
	Number float64
	Str    string
}

// NewBool creates a boolean literal.
func NewBool(value bool) *Literal {
	return &Literal{Kind: LiteralBool, Bool: value}
}

// NewNumber creates a number literal.
func NewNumber(value float64) *Literal {
	return &Literal{Kind: LiteralNumber, Number: value}
}

// NewString creates a string literal.
func NewString(value string) *Literal {
	return &Literal{Kind: LiteralString, Str: value}
}

func (e *Literal) exprNode() {}
func (e *Literal) String() string {
	switch e.Kind {
	case LiteralBool:
		return strconv.FormatBool(e.Bool)
	case LiteralNumber:
		return strconv.FormatFloat(e.Number, 'f', -1, 64)
	case LiteralString:
		return quote(e.Str)
	default:
		return fmt.Sprintf("unknown literal (%d)", int(e.Kind))
	}
}
func (e *Literal) Accept(v Visitor) any { return v.VisitLiteral(e) }

// quote renders a string literal in Nexus syntax, re-escaping the two
// recognized escapes.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, c := range s {
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// VarExpr is a variable reference.
type VarExpr struct {
	Name string
}

func (e *VarExpr) exprNode()            {}
func (e *VarExpr) String() string       { return e.Name }
func (e *VarExpr) Accept(v Visitor) any { return v.VisitVarExpr(e) }

// UnaryOp is a unary operator.
type UnaryOp int

const (
	UnaryBang UnaryOp = iota
	UnaryMinus
	UnaryPlus
	UnaryGroup
	UnaryNode
)

// String returns the Nexus spelling of the operator.
func (op UnaryOp) String() string {
	switch op {
	case UnaryBang:
		return "!"
	case UnaryMinus:
		return "-"
	case UnaryPlus:
		return "+"
	case UnaryGroup:
		return "group"
	case UnaryNode:
		return "node"
	default:
		return fmt.Sprintf("unknown(%d)", int(op))
	}
}

// UnaryExpr is a prefix operator expression. The operand is a full
// expression: unary operators bind their entire right-hand side.
type UnaryExpr struct {
	Op   UnaryOp
	Expr Expr
}

func (e *UnaryExpr) exprNode() {}
func (e *UnaryExpr) String() string {
	switch e.Op {
	case UnaryGroup, UnaryNode:
		return fmt.Sprintf("%s %s", e.Op, e.Expr)
	default:
		return fmt.Sprintf("%s%s", e.Op, e.Expr)
	}
}
func (e *UnaryExpr) Accept(v Visitor) any { return v.VisitUnaryExpr(e) }

// BinaryOp is a binary operator.
type BinaryOp int

const (
	BinaryAnd BinaryOp = iota
	BinaryDivide
	BinaryDot
	BinaryEq
	BinaryGt
	BinaryGtEq
	BinaryLt
	BinaryLtEq
	BinaryMultiply
	BinaryNotEq
	BinaryOr
	BinaryPlus
	BinaryRemainder
	BinarySubtract
)

// String returns the Nexus spelling of the operator.
func (op BinaryOp) String() string {
	switch op {
	case BinaryAnd:
		return "&&"
	case BinaryDivide:
		return "/"
	case BinaryDot:
		return "."
	case BinaryEq:
		return "=="
	case BinaryGt:
		return ">"
	case BinaryGtEq:
		return ">="
	case BinaryLt:
		return "<"
	case BinaryLtEq:
		return "<="
	case BinaryMultiply:
		return "*"
	case BinaryNotEq:
		return "!="
	case BinaryOr:
		return "||"
	case BinaryPlus:
		return "+"
	case BinaryRemainder:
		return "%"
	case BinarySubtract:
		return "-"
	default:
		return fmt.Sprintf("unknown(%d)", int(op))
	}
}

// BinaryExpr is an infix operator expression.
type BinaryExpr struct {
	Op  BinaryOp
	LHS Expr
	RHS Expr
}

func (e *BinaryExpr) exprNode() {}
func (e *BinaryExpr) String() string {
	if e.Op == BinaryDot {
		return fmt.Sprintf("%s.%s", e.LHS, e.RHS)
	}
	return fmt.Sprintf("%s %s %s", e.LHS, e.Op, e.RHS)
}
func (e *BinaryExpr) Accept(v Visitor) any { return v.VisitBinaryExpr(e) }

// GroupExpr is a parenthesized expression.
type GroupExpr struct {
	Expr Expr
}

func (e *GroupExpr) exprNode()            {}
func (e *GroupExpr) String() string       { return fmt.Sprintf("(%s)", e.Expr) }
func (e *GroupExpr) Accept(v Visitor) any { return v.VisitGroupExpr(e) }

// BlockExpr is an expression-valued block, used for the bodies of if, while
// and for expressions.
type BlockExpr struct {
	Body *BlockStmt
}

func (e *BlockExpr) exprNode()            {}
func (e *BlockExpr) String() string       { return e.Body.String() }
func (e *BlockExpr) Accept(v Visitor) any { return v.VisitBlockExpr(e) }

// IfExpr is a conditional expression. Else is nil when absent; an else-if
// chain nests another IfExpr in Else.
type IfExpr struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (e *IfExpr) exprNode() {}
func (e *IfExpr) String() string {
	if e.Else != nil {
		return fmt.Sprintf("if %s %s else %s", e.Cond, e.Then, e.Else)
	}
	return fmt.Sprintf("if %s %s", e.Cond, e.Then)
}
func (e *IfExpr) Accept(v Visitor) any { return v.VisitIfExpr(e) }

// WhileExpr is a while loop expression.
type WhileExpr struct {
	Cond Expr
	Body Expr
}

func (e *WhileExpr) exprNode() {}
func (e *WhileExpr) String() string {
	return fmt.Sprintf("while %s %s", e.Cond, e.Body)
}
func (e *WhileExpr) Accept(v Visitor) any { return v.VisitWhileExpr(e) }

// ForExpr is a for-in loop expression.
type ForExpr struct {
	Binder   string
	Iterable Expr
	Body     Expr
}

func (e *ForExpr) exprNode() {}
func (e *ForExpr) String() string {
	return fmt.Sprintf("for %s in %s %s", e.Binder, e.Iterable, e.Body)
}
func (e *ForExpr) Accept(v Visitor) any { return v.VisitForExpr(e) }

// CallExpr is a function call.
type CallExpr struct {
	Name string
	Args []Expr
}

func (e *CallExpr) exprNode() {}
func (e *CallExpr) String() string {
	args := make([]string, len(e.Args))
	for i, arg := range e.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", e.Name, strings.Join(args, ", "))
}
func (e *CallExpr) Accept(v Visitor) any { return v.VisitCallExpr(e) }

// RangeKind discriminates range expressions.
type RangeKind int

const (
	RangeExclusive RangeKind = iota // 'start..end'
	RangeInclusive                  // 'start..=end'
)

// String returns the Nexus spelling of the range delimiter.
func (k RangeKind) String() string {
	if k == RangeInclusive {
		return "..="
	}
	return ".."
}

// RangeExpr is a range expression. Start and end may only be a literal, a
// variable reference or a grouped expression; the parser enforces this.
type RangeExpr struct {
	Kind  RangeKind
	Start Expr
	End   Expr
}

func (e *RangeExpr) exprNode() {}
func (e *RangeExpr) String() string {
	return fmt.Sprintf("%s%s%s", e.Start, e.Kind, e.End)
}
func (e *RangeExpr) Accept(v Visitor) any { return v.VisitRangeExpr(e) }

// RefExpr is an explicit reference-taking expression: '&expr'.
type RefExpr struct {
	Expr Expr
}

func (e *RefExpr) exprNode()            {}
func (e *RefExpr) String() string       { return fmt.Sprintf("&%s", e.Expr) }
func (e *RefExpr) Accept(v Visitor) any { return v.VisitRefExpr(e) }

// EmptyExpr is the placeholder for an omitted expression, e.g. a bare ';'.
type EmptyExpr struct{}

func (e *EmptyExpr) exprNode()            {}
func (e *EmptyExpr) String() string       { return "" }
func (e *EmptyExpr) Accept(v Visitor) any { return v.VisitEmptyExpr(e) }
