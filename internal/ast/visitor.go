// Visitor pattern implementation for AST traversal. Visitors enable
// analysis passes over the node model without modifying the node types.
package ast

// Visitor dispatches on the concrete AST node type.
type Visitor interface {
	// Statement visitors.
	VisitBlockStmt(node *BlockStmt) any
	VisitConstDecl(node *ConstDecl) any
	VisitVarDecl(node *VarDecl) any
	VisitFunctionDecl(node *FunctionDecl) any
	VisitFunctionArg(node *FunctionArg) any
	VisitUseDecl(node *UseDecl) any
	VisitPrintStmt(node *PrintStmt) any
	VisitReturnStmt(node *ReturnStmt) any
	VisitAssignmentStmt(node *AssignmentStmt) any
	VisitConnectStmt(node *ConnectStmt) any
	VisitExprStmt(node *ExprStmt) any

	// Expression visitors.
	VisitLiteral(node *Literal) any
	VisitVarExpr(node *VarExpr) any
	VisitUnaryExpr(node *UnaryExpr) any
	VisitBinaryExpr(node *BinaryExpr) any
	VisitGroupExpr(node *GroupExpr) any
	VisitBlockExpr(node *BlockExpr) any
	VisitIfExpr(node *IfExpr) any
	VisitWhileExpr(node *WhileExpr) any
	VisitForExpr(node *ForExpr) any
	VisitCallExpr(node *CallExpr) any
	VisitRangeExpr(node *RangeExpr) any
	VisitRefExpr(node *RefExpr) any
	VisitEmptyExpr(node *EmptyExpr) any
}

// BaseVisitor provides a no-op implementation of Visitor, so that concrete
// visitors only override the methods they need.
type BaseVisitor struct{}

func (v *BaseVisitor) VisitBlockStmt(node *BlockStmt) any           { return nil }
func (v *BaseVisitor) VisitConstDecl(node *ConstDecl) any           { return nil }
func (v *BaseVisitor) VisitVarDecl(node *VarDecl) any               { return nil }
func (v *BaseVisitor) VisitFunctionDecl(node *FunctionDecl) any     { return nil }
func (v *BaseVisitor) VisitFunctionArg(node *FunctionArg) any       { return nil }
func (v *BaseVisitor) VisitUseDecl(node *UseDecl) any               { return nil }
func (v *BaseVisitor) VisitPrintStmt(node *PrintStmt) any           { return nil }
func (v *BaseVisitor) VisitReturnStmt(node *ReturnStmt) any         { return nil }
func (v *BaseVisitor) VisitAssignmentStmt(node *AssignmentStmt) any { return nil }
func (v *BaseVisitor) VisitConnectStmt(node *ConnectStmt) any       { return nil }
func (v *BaseVisitor) VisitExprStmt(node *ExprStmt) any             { return nil }
func (v *BaseVisitor) VisitLiteral(node *Literal) any               { return nil }
func (v *BaseVisitor) VisitVarExpr(node *VarExpr) any               { return nil }
func (v *BaseVisitor) VisitUnaryExpr(node *UnaryExpr) any           { return nil }
func (v *BaseVisitor) VisitBinaryExpr(node *BinaryExpr) any         { return nil }
func (v *BaseVisitor) VisitGroupExpr(node *GroupExpr) any           { return nil }
func (v *BaseVisitor) VisitBlockExpr(node *BlockExpr) any           { return nil }
func (v *BaseVisitor) VisitIfExpr(node *IfExpr) any                 { return nil }
func (v *BaseVisitor) VisitWhileExpr(node *WhileExpr) any           { return nil }
func (v *BaseVisitor) VisitForExpr(node *ForExpr) any               { return nil }
func (v *BaseVisitor) VisitCallExpr(node *CallExpr) any             { return nil }
func (v *BaseVisitor) VisitRangeExpr(node *RangeExpr) any           { return nil }
func (v *BaseVisitor) VisitRefExpr(node *RefExpr) any               { return nil }
func (v *BaseVisitor) VisitEmptyExpr(node *EmptyExpr) any           { return nil }

// Walk traverses the tree rooted at node in depth-first, pre-order fashion,
// dispatching every node to the visitor.
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}

	node.Accept(v)

	switch n := node.(type) {
	case *BlockStmt:
		for _, stmt := range n.Body {
			Walk(v, stmt)
		}
	case *ConstDecl:
		Walk(v, n.Value)
	case *VarDecl:
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *FunctionDecl:
		for _, arg := range n.Args {
			Walk(v, arg)
		}
		Walk(v, n.Body)
	case *UseDecl:
		Walk(v, n.Filename)
	case *PrintStmt:
		Walk(v, n.Expr)
	case *ReturnStmt:
		Walk(v, n.Expr)
	case *AssignmentStmt:
		Walk(v, n.LHS)
		Walk(v, n.RHS)
	case *ConnectStmt:
		Walk(v, n.Source)
		Walk(v, n.Sink)
	case *ExprStmt:
		Walk(v, n.Expr)
	case *UnaryExpr:
		Walk(v, n.Expr)
	case *BinaryExpr:
		Walk(v, n.LHS)
		Walk(v, n.RHS)
	case *GroupExpr:
		Walk(v, n.Expr)
	case *BlockExpr:
		Walk(v, n.Body)
	case *IfExpr:
		Walk(v, n.Cond)
		Walk(v, n.Then)
		if n.Else != nil {
			Walk(v, n.Else)
		}
	case *WhileExpr:
		Walk(v, n.Cond)
		Walk(v, n.Body)
	case *ForExpr:
		Walk(v, n.Iterable)
		Walk(v, n.Body)
	case *CallExpr:
		for _, arg := range n.Args {
			Walk(v, arg)
		}
	case *RangeExpr:
		Walk(v, n.Start)
		Walk(v, n.End)
	case *RefExpr:
		Walk(v, n.Expr)
	}
}

// WalkProgram traverses every top-level statement of a program.
func WalkProgram(v Visitor, program Program) {
	for _, stmt := range program {
		Walk(v, stmt)
	}
}
