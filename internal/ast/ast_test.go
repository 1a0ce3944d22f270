package ast

import "testing"

func number(f float64) *Literal { return NewNumber(f) }

func TestLiteralString(t *testing.T) {
	tests := []struct {
		lit  *Literal
		want string
	}{
		{NewBool(true), "true"},
		{NewBool(false), "false"},
		{NewNumber(1), "1"},
		{NewNumber(3.14), "3.14"},
		{NewNumber(1000), "1000"},
		{NewString("hello"), `"hello"`},
		{NewString(`with "quotes"`), `"with \"quotes\""`},
		{NewString(`back\slash`), `"back\\slash"`},
	}

	for i, tt := range tests {
		if got := tt.lit.String(); got != tt.want {
			t.Fatalf("tests[%d] - string wrong. expected=%q, got=%q", i, tt.want, got)
		}
	}
}

func TestTypeKindString(t *testing.T) {
	tests := []struct {
		kind TypeKind
		want string
	}{
		{TypeBool, "bool"},
		{TypeNumber, "Number"},
		{TypeString, "String"},
		{TypeNode, "Node"},
		{TypeGroup, "Group"},
	}

	for i, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Fatalf("tests[%d] - string wrong. expected=%q, got=%q", i, tt.want, got)
		}
	}
}

func TestStmtString(t *testing.T) {
	numberType := TypeNumber

	tests := []struct {
		stmt Stmt
		want string
	}{
		{&BlockStmt{}, "{ }"},
		{
			&BlockStmt{Body: []Stmt{&ExprStmt{Expr: number(1)}}},
			"{ 1; }",
		},
		{
			&ConstDecl{Name: "PI", Type: TypeNumber, Value: number(3.14)},
			"const PI: Number = 3.14;",
		},
		{
			&VarDecl{Name: "x"},
			"let x;",
		},
		{
			&VarDecl{Name: "x", Mutable: true, Type: &numberType, Value: number(1)},
			"let mut x: Number = 1;",
		},
		{
			&VarDecl{Name: "r", Value: &RefExpr{Expr: &VarExpr{Name: "y"}}},
			"let r = &y;",
		},
		{
			&FunctionDecl{
				Name: "add",
				Args: []*FunctionArg{
					{Name: "a", Type: TypeNumber},
					{Name: "b", Type: TypeNumber},
				},
				ReturnType: &numberType,
				Body: &BlockStmt{Body: []Stmt{
					&ReturnStmt{Expr: &BinaryExpr{
						Op:  BinaryPlus,
						LHS: &VarExpr{Name: "a"},
						RHS: &VarExpr{Name: "b"},
					}},
				}},
			},
			"fn add(a: Number, b: Number) -> Number { return a + b; }",
		},
		{
			&UseDecl{Filename: NewString("lib.nxs")},
			`use "lib.nxs";`,
		},
		{
			&PrintStmt{Expr: number(42)},
			"print 42;",
		},
		{
			&AssignmentStmt{LHS: &VarExpr{Name: "x"}, RHS: number(1)},
			"x = 1;",
		},
		{
			&ConnectStmt{Source: &VarExpr{Name: "a"}, Sink: &VarExpr{Name: "b"}},
			"a -> b;",
		},
		{&ExprStmt{Expr: &EmptyExpr{}}, ";"},
	}

	for i, tt := range tests {
		if got := tt.stmt.String(); got != tt.want {
			t.Fatalf("tests[%d] - string wrong. expected=%q, got=%q", i, tt.want, got)
		}
	}
}

func TestExprString(t *testing.T) {
	tests := []struct {
		expr Expr
		want string
	}{
		{&VarExpr{Name: "x"}, "x"},
		{&UnaryExpr{Op: UnaryBang, Expr: &VarExpr{Name: "b"}}, "!b"},
		{&UnaryExpr{Op: UnaryMinus, Expr: number(1)}, "-1"},
		{&UnaryExpr{Op: UnaryNode, Expr: &VarExpr{Name: "n"}}, "node n"},
		{&UnaryExpr{Op: UnaryGroup, Expr: &VarExpr{Name: "g"}}, "group g"},
		{
			&BinaryExpr{Op: BinaryPlus, LHS: number(1), RHS: number(2)},
			"1 + 2",
		},
		{
			&BinaryExpr{Op: BinaryDot, LHS: &VarExpr{Name: "a"}, RHS: &VarExpr{Name: "b"}},
			"a.b",
		},
		{&GroupExpr{Expr: number(1)}, "(1)"},
		{
			&IfExpr{Cond: &VarExpr{Name: "c"}, Then: &BlockExpr{Body: &BlockStmt{}}},
			"if c { }",
		},
		{
			&IfExpr{
				Cond: &VarExpr{Name: "c"},
				Then: &BlockExpr{Body: &BlockStmt{}},
				Else: &BlockExpr{Body: &BlockStmt{}},
			},
			"if c { } else { }",
		},
		{
			&WhileExpr{Cond: NewBool(true), Body: &BlockExpr{Body: &BlockStmt{}}},
			"while true { }",
		},
		{
			&ForExpr{
				Binder:   "i",
				Iterable: &RangeExpr{Kind: RangeExclusive, Start: number(0), End: number(10)},
				Body:     &BlockExpr{Body: &BlockStmt{}},
			},
			"for i in 0..10 { }",
		},
		{
			&CallExpr{Name: "f", Args: []Expr{number(1), &VarExpr{Name: "x"}}},
			"f(1, x)",
		},
		{&CallExpr{Name: "f"}, "f()"},
		{
			&RangeExpr{Kind: RangeInclusive, Start: number(1), End: number(5)},
			"1..=5",
		},
		{&RefExpr{Expr: &VarExpr{Name: "x"}}, "&x"},
		{&EmptyExpr{}, ""},
	}

	for i, tt := range tests {
		if got := tt.expr.String(); got != tt.want {
			t.Fatalf("tests[%d] - string wrong. expected=%q, got=%q", i, tt.want, got)
		}
	}
}

func TestProgramString(t *testing.T) {
	program := Program{
		&VarDecl{Name: "x", Value: number(1)},
		&PrintStmt{Expr: &VarExpr{Name: "x"}},
	}

	want := "let x = 1;\nprint x;"
	if got := program.String(); got != want {
		t.Fatalf("string wrong. expected=%q, got=%q", want, got)
	}
}
