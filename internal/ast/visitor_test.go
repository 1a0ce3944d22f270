package ast

import "testing"

// countingVisitor tallies visited nodes by category.
type countingVisitor struct {
	BaseVisitor

	stmts    int
	exprs    int
	literals int
}

func (v *countingVisitor) VisitVarDecl(node *VarDecl) any {
	v.stmts++
	return nil
}

func (v *countingVisitor) VisitExprStmt(node *ExprStmt) any {
	v.stmts++
	return nil
}

func (v *countingVisitor) VisitBinaryExpr(node *BinaryExpr) any {
	v.exprs++
	return nil
}

func (v *countingVisitor) VisitLiteral(node *Literal) any {
	v.literals++
	return nil
}

func TestWalkProgram(t *testing.T) {
	program := Program{
		&VarDecl{Name: "x", Value: &BinaryExpr{
			Op:  BinaryPlus,
			LHS: NewNumber(1),
			RHS: &BinaryExpr{
				Op:  BinaryMultiply,
				LHS: NewNumber(2),
				RHS: NewNumber(3),
			},
		}},
		&ExprStmt{Expr: NewBool(true)},
	}

	v := &countingVisitor{}
	WalkProgram(v, program)

	if v.stmts != 2 {
		t.Fatalf("statement count wrong. expected=2, got=%d", v.stmts)
	}
	if v.exprs != 2 {
		t.Fatalf("binary count wrong. expected=2, got=%d", v.exprs)
	}
	if v.literals != 4 {
		t.Fatalf("literal count wrong. expected=4, got=%d", v.literals)
	}
}

func TestWalkNestedBlocks(t *testing.T) {
	program := Program{
		&FunctionDecl{
			Name: "f",
			Body: &BlockStmt{Body: []Stmt{
				&ExprStmt{Expr: &IfExpr{
					Cond: NewBool(true),
					Then: &BlockExpr{Body: &BlockStmt{Body: []Stmt{
						&ExprStmt{Expr: NewNumber(1)},
					}}},
					Else: &BlockExpr{Body: &BlockStmt{Body: []Stmt{
						&ExprStmt{Expr: NewNumber(2)},
					}}},
				}},
			}},
		},
	}

	v := &countingVisitor{}
	WalkProgram(v, program)

	if v.stmts != 3 {
		t.Fatalf("statement count wrong. expected=3, got=%d", v.stmts)
	}
	if v.literals != 3 {
		t.Fatalf("literal count wrong. expected=3, got=%d", v.literals)
	}
}
