// Package parser implements the recursive-descent parser for Nexus.
//
// Expression parsing uses precedence climbing: each grammar rule handles one
// operator tier and delegates tighter-binding operators to the next rule
// down. The full ladder, loosest to tightest, is range, or, and, equality,
// relational, additive, multiplicative, unary, dot, call, primary. Unary
// operators are right-recursive over the full expression grammar, so a
// prefix operator binds its entire right-hand side.
package parser

import (
	"github.com/krisvanrens/nexus-lang/internal/ast"
	"github.com/krisvanrens/nexus-lang/internal/token"
)

// Parser parses a token sequence into a program. A parser is single-use:
// one call to Parse per instance.
type Parser struct {
	cursor *TokenCursor
}

// New creates a parser from a token sequence.
func New(tokens token.Tokens) *Parser {
	return &Parser{cursor: NewTokenCursor(preprocess(tokens))}
}

// preprocess folds two adjacent Pipe tokens into a single Or token. The
// scanner emits '|' as individual Pipe tokens; '||' is recovered here. A
// lone pipe is passed through untouched so the parser can report it.
func preprocess(tokens token.Tokens) token.Tokens {
	result := make(token.Tokens, 0, len(tokens))

	for _, t := range tokens {
		if t.Kind == token.Pipe && len(result) > 0 && result[len(result)-1].Kind == token.Pipe {
			result[len(result)-1] = token.New(token.Or)
			continue
		}
		result = append(result, t)
	}

	return result
}

// Parse parses the token sequence into a program. Parsing is all-or-nothing:
// on error no partial program is returned.
func (p *Parser) Parse() (ast.Program, error) {
	var program ast.Program

	for !p.cursor.EOS() {
		stmt, err := parseDecl(p.cursor)
		if err != nil {
			return nil, err
		}
		program = append(program, stmt)
	}

	return program, nil
}

func parseDecl(c *TokenCursor) (ast.Stmt, error) {
	tok, ok := c.Peek()
	if !ok {
		return parseStmt(c)
	}

	switch tok.Kind {
	case token.Const:
		return parseConstDecl(c)
	case token.Function:
		return parseFunctionDecl(c)
	case token.Let:
		return parseVarDecl(c)
	case token.Use:
		return parseUseDecl(c)
	default:
		return parseStmt(c)
	}
}

func parseStmt(c *TokenCursor) (ast.Stmt, error) {
	tok, ok := c.Peek()
	if !ok {
		return parseExprStmt(c)
	}

	switch tok.Kind {
	case token.LeftBrace:
		return parseBlockStmt(c)
	case token.Print:
		return parsePrintStmt(c)
	case token.Return:
		return parseReturnStmt(c)
	default:
		return parseExprStmt(c)
	}
}

func parseBlockStmt(c *TokenCursor) (*ast.BlockStmt, error) {
	if err := c.Consume(token.New(token.LeftBrace)); err != nil {
		return nil, err
	}

	var body []ast.Stmt
	for {
		tok, ok := c.Peek()
		if !ok {
			return nil, unexpectedEosError("block statement")
		}
		if tok.Kind == token.RightBrace {
			break
		}

		stmt, err := parseDecl(c)
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}

	if err := c.Consume(token.New(token.RightBrace)); err != nil {
		return nil, err
	}

	return &ast.BlockStmt{Body: body}, nil
}

func parseIdentifier(c *TokenCursor) (string, error) {
	tok, ok := c.Value()
	if !ok {
		return "", unexpectedEosError("identifier")
	}

	switch {
	case tok.Kind == token.Identifier:
		return tok.Text, nil
	case token.IsKeyword(tok):
		return "", keywordError(tok)
	default:
		return "", unexpectedError(tok)
	}
}

func parseType(c *TokenCursor) (ast.TypeKind, error) {
	tok, ok := c.Value()
	if !ok {
		return 0, customError("empty type ID")
	}

	switch tok.Kind {
	case token.BoolID:
		return ast.TypeBool, nil
	case token.NumberID:
		return ast.TypeNumber, nil
	case token.StringID:
		return ast.TypeString, nil
	case token.NodeID:
		return ast.TypeNode, nil
	case token.GroupID:
		return ast.TypeGroup, nil
	default:
		return 0, customError("not a type ID '%s'", tok)
	}
}

func parseConstDecl(c *TokenCursor) (ast.Stmt, error) {
	if err := c.Consume(token.New(token.Const)); err != nil {
		return nil, err
	}

	name, err := parseIdentifier(c)
	if err != nil {
		return nil, err
	}

	if err := c.ConsumeMsg(token.New(token.Colon), "expected ':' for type annotation of constant value"); err != nil {
		return nil, err
	}

	typeID, err := parseType(c)
	if err != nil {
		return nil, err
	}

	if err := c.ConsumeMsg(token.New(token.Is), "expected '=' for initialization of constant value"); err != nil {
		return nil, err
	}

	var value ast.Expr
	switch typeID {
	case ast.TypeBool:
		value, err = parseBoolLiteral(c)
	case ast.TypeNumber:
		value, err = parseNumberLiteral(c)
	case ast.TypeString:
		value, err = parseStringLiteral(c)
	case ast.TypeNode:
		return nil, customError("cannot create a Node type literal")
	case ast.TypeGroup:
		return nil, customError("cannot create a Group type literal")
	}
	if err != nil {
		return nil, err
	}

	if err := c.Consume(token.New(token.SemiColon)); err != nil {
		return nil, err
	}

	return &ast.ConstDecl{Name: name, Type: typeID, Value: value}, nil
}

func parseVarDecl(c *TokenCursor) (ast.Stmt, error) {
	if err := c.Consume(token.New(token.Let)); err != nil {
		return nil, err
	}

	mutable := c.AdvanceIf(token.New(token.Mut))

	name, err := parseIdentifier(c)
	if err != nil {
		return nil, err
	}

	var typeID *ast.TypeKind
	if c.AdvanceIf(token.New(token.Colon)) {
		t, err := parseType(c)
		if err != nil {
			return nil, err
		}
		typeID = &t
	}

	var value ast.Expr
	if c.AdvanceIf(token.New(token.Is)) {
		ref := c.AdvanceIf(token.New(token.Amp))

		value, err = parseExpr(c)
		if err != nil {
			return nil, err
		}
		if ref {
			value = &ast.RefExpr{Expr: value}
		}
	}

	if err := c.Consume(token.New(token.SemiColon)); err != nil {
		return nil, err
	}

	return &ast.VarDecl{Name: name, Mutable: mutable, Type: typeID, Value: value}, nil
}

func parseFunctionDecl(c *TokenCursor) (ast.Stmt, error) {
	if err := c.Consume(token.New(token.Function)); err != nil {
		return nil, err
	}

	name, err := parseIdentifier(c)
	if err != nil {
		return nil, err
	}

	if err := c.ConsumeMsg(token.New(token.LeftParen), "expected '(' after function identifier"); err != nil {
		return nil, err
	}

	var args []*ast.FunctionArg
	if !c.PeekKind(token.RightParen) {
		args, err = parseFunctionArgs(c)
		if err != nil {
			return nil, err
		}
	}

	if err := c.ConsumeMsg(token.New(token.RightParen), "expected ')' after function argument list"); err != nil {
		return nil, err
	}

	var retType *ast.TypeKind
	if c.PeekKind(token.Arrow) {
		if err := c.ConsumeMsg(token.New(token.Arrow), "expected '->' in function declaration"); err != nil {
			return nil, err
		}
		t, err := parseType(c)
		if err != nil {
			return nil, err
		}
		retType = &t
	}

	body, err := parseBlockStmt(c)
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDecl{Name: name, Args: args, ReturnType: retType, Body: body}, nil
}

func parseFunctionArgs(c *TokenCursor) ([]*ast.FunctionArg, error) {
	var args []*ast.FunctionArg

	for {
		arg, err := parseFunctionArg(c)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if !c.AdvanceIf(token.New(token.Comma)) {
			break
		}
	}

	return args, nil
}

func parseFunctionArg(c *TokenCursor) (*ast.FunctionArg, error) {
	name, err := parseIdentifier(c)
	if err != nil {
		return nil, err
	}

	if err := c.ConsumeMsg(token.New(token.Colon), "expected ':' after function argument identifier"); err != nil {
		return nil, err
	}

	typeID, err := parseType(c)
	if err != nil {
		return nil, err
	}

	return &ast.FunctionArg{Name: name, Type: typeID}, nil
}

func parseUseDecl(c *TokenCursor) (ast.Stmt, error) {
	if err := c.Consume(token.New(token.Use)); err != nil {
		return nil, err
	}

	filename, err := parseExpr(c)
	if err != nil {
		return nil, err
	}

	if err := c.ConsumeMsg(token.New(token.SemiColon), "expected semicolon after statement"); err != nil {
		return nil, err
	}

	return &ast.UseDecl{Filename: filename}, nil
}

func parsePrintStmt(c *TokenCursor) (ast.Stmt, error) {
	if err := c.Consume(token.New(token.Print)); err != nil {
		return nil, err
	}

	expr, err := parseExpr(c)
	if err != nil {
		return nil, err
	}

	if err := c.ConsumeMsg(token.New(token.SemiColon), "after statement"); err != nil {
		return nil, err
	}

	return &ast.PrintStmt{Expr: expr}, nil
}

func parseReturnStmt(c *TokenCursor) (ast.Stmt, error) {
	if err := c.Consume(token.New(token.Return)); err != nil {
		return nil, err
	}

	expr, err := parseExpr(c)
	if err != nil {
		return nil, err
	}

	if err := c.ConsumeMsg(token.New(token.SemiColon), "after statement"); err != nil {
		return nil, err
	}

	return &ast.ReturnStmt{Expr: expr}, nil
}

// parseExprStmt parses an expression and decides on the statement form from
// the token that follows: '->' makes a connect statement, '=' an
// assignment, anything else a plain expression statement. The terminating
// ';' may be omitted directly before a closing '}', which permits a block's
// trailing expression.
func parseExprStmt(c *TokenCursor) (ast.Stmt, error) {
	expr, err := parseExpr(c)
	if err != nil {
		return nil, err
	}

	tok, ok := c.Peek()
	if !ok {
		return nil, unexpectedEosError("expression statement")
	}

	switch tok.Kind {
	case token.Arrow:
		return parseConnectStmt(expr, c)
	case token.Is:
		return parseAssignmentStmt(expr, c)
	case token.RightBrace:
		return &ast.ExprStmt{Expr: expr}, nil
	default:
		if err := c.Consume(token.New(token.SemiColon)); err != nil {
			return nil, err
		}
		return &ast.ExprStmt{Expr: expr}, nil
	}
}

func parseAssignmentStmt(lhs ast.Expr, c *TokenCursor) (ast.Stmt, error) {
	if err := c.Consume(token.New(token.Is)); err != nil {
		return nil, err
	}

	rhs, err := parseExpr(c)
	if err != nil {
		return nil, err
	}

	if err := c.ConsumeMsg(token.New(token.SemiColon), "expected semicolon after statement"); err != nil {
		return nil, err
	}

	return &ast.AssignmentStmt{LHS: lhs, RHS: rhs}, nil
}

func parseConnectStmt(source ast.Expr, c *TokenCursor) (ast.Stmt, error) {
	if err := c.Consume(token.New(token.Arrow)); err != nil {
		return nil, err
	}

	sink, err := parseExpr(c)
	if err != nil {
		return nil, err
	}

	if err := c.ConsumeMsg(token.New(token.SemiColon), "after statement"); err != nil {
		return nil, err
	}

	return &ast.ConnectStmt{Source: source, Sink: sink}, nil
}

func parseExpr(c *TokenCursor) (ast.Expr, error) {
	// The recursion depth encodes the operator precedence.
	return parseRangeExpr(c)
}

func parseRangeExpr(c *TokenCursor) (ast.Expr, error) {
	expr, err := parseOrExpr(c)
	if err != nil {
		return nil, err
	}

	if c.PeekKind(token.Range) {
		if err := c.Consume(token.New(token.Range)); err != nil {
			return nil, err
		}

		kind := ast.RangeExclusive
		if c.AdvanceIf(token.New(token.Is)) {
			kind = ast.RangeInclusive
		}

		start := expr
		end, err := parseOrExpr(c)
		if err != nil {
			return nil, err
		}

		if !isRangeBound(start) || !isRangeBound(end) {
			return nil, newParseError(RangeDelimiter)
		}

		expr = &ast.RangeExpr{Kind: kind, Start: start, End: end}
	}

	return expr, nil
}

// isRangeBound reports whether an expression has a legal range-bound shape:
// a literal, a variable reference or a grouped expression.
func isRangeBound(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Literal, *ast.VarExpr, *ast.GroupExpr:
		return true
	default:
		return false
	}
}

func parseOrExpr(c *TokenCursor) (ast.Expr, error) {
	return parseBinaryExpr(c, parseAndExpr, token.Or)
}

func parseAndExpr(c *TokenCursor) (ast.Expr, error) {
	return parseBinaryExpr(c, parseEqualityExpr, token.And)
}

func parseEqualityExpr(c *TokenCursor) (ast.Expr, error) {
	return parseBinaryExpr(c, parseRelationalExpr, token.Eq, token.NotEq)
}

func parseRelationalExpr(c *TokenCursor) (ast.Expr, error) {
	return parseBinaryExpr(c, parseAdditiveExpr, token.Lt, token.Gt, token.LtEq, token.GtEq)
}

func parseAdditiveExpr(c *TokenCursor) (ast.Expr, error) {
	return parseBinaryExpr(c, parseMultiplicativeExpr, token.Plus, token.Minus)
}

func parseMultiplicativeExpr(c *TokenCursor) (ast.Expr, error) {
	return parseBinaryExpr(c, parseUnaryExpr, token.Star, token.Slash, token.Percent)
}

// parseBinaryExpr parses one left-associative precedence tier: parse the
// next tighter tier, then fold operators from this tier's set for as long
// as the lookahead matches.
func parseBinaryExpr(c *TokenCursor, next func(*TokenCursor) (ast.Expr, error), ops ...token.Kind) (ast.Expr, error) {
	expr, err := next(c)
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := c.Peek()
		if !ok || !kindIn(tok.Kind, ops) {
			return expr, nil
		}
		c.Advance()

		op, err := binaryOp(tok)
		if err != nil {
			return nil, err
		}

		rhs, err := next(c)
		if err != nil {
			return nil, err
		}

		expr = &ast.BinaryExpr{Op: op, LHS: expr, RHS: rhs}
	}
}

func kindIn(kind token.Kind, set []token.Kind) bool {
	for _, k := range set {
		if kind == k {
			return true
		}
	}
	return false
}

// parseUnaryExpr parses a prefix operator expression. The operand is parsed
// with the full expression grammar rather than the next tighter tier, so a
// prefix operator binds everything to its right.
func parseUnaryExpr(c *TokenCursor) (ast.Expr, error) {
	tok, ok := c.Peek()
	if !ok {
		return parseDotExpr(c)
	}

	switch tok.Kind {
	case token.Bang, token.Minus, token.Plus, token.Group, token.Node:
		c.Advance()

		op, err := unaryOp(tok)
		if err != nil {
			return nil, err
		}

		expr, err := parseExpr(c)
		if err != nil {
			return nil, err
		}

		return &ast.UnaryExpr{Op: op, Expr: expr}, nil
	default:
		return parseDotExpr(c)
	}
}

func parseDotExpr(c *TokenCursor) (ast.Expr, error) {
	return parseBinaryExpr(c, parseCallExpr, token.Dot)
}

func parseCallExpr(c *TokenCursor) (ast.Expr, error) {
	tok, ok := c.Peek()
	next, okNext := c.PeekNext()
	if !ok || !okNext || tok.Kind != token.Identifier || next.Kind != token.LeftParen {
		return parsePrimaryExpr(c)
	}

	name, err := parseIdentifier(c)
	if err != nil {
		return nil, err
	}

	if err := c.Consume(token.New(token.LeftParen)); err != nil {
		return nil, err
	}

	var args []ast.Expr
	for !c.PeekKind(token.RightParen) {
		arg, err := parseExpr(c)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if !c.AdvanceIf(token.New(token.Comma)) {
			break
		}
	}

	if err := c.Consume(token.New(token.RightParen)); err != nil {
		return nil, err
	}

	return &ast.CallExpr{Name: name, Args: args}, nil
}

func parsePrimaryExpr(c *TokenCursor) (ast.Expr, error) {
	tok, ok := c.Peek()
	if !ok {
		return nil, unexpectedEosError("primary expression")
	}

	switch tok.Kind {
	case token.Number:
		return parseNumberLiteral(c)
	case token.String:
		return parseStringLiteral(c)
	case token.True, token.False:
		return parseBoolLiteral(c)
	case token.Identifier:
		return parseVarExpr(c)
	case token.If:
		return parseIfExpr(c)
	case token.While:
		return parseWhileExpr(c)
	case token.For:
		return parseForExpr(c)
	case token.LeftParen:
		return parseGroupExpr(c)
	case token.LeftBrace:
		return parseBlockExpr(c)
	case token.SemiColon:
		// Not consumed; the expression statement eats the ';' itself.
		return &ast.EmptyExpr{}, nil
	default:
		return nil, unexpectedError(tok)
	}
}

func parseIfExpr(c *TokenCursor) (ast.Expr, error) {
	if err := c.Consume(token.New(token.If)); err != nil {
		return nil, err
	}

	cond, err := parseExpr(c)
	if err != nil {
		return nil, err
	}

	then, err := parseBlockExpr(c)
	if err != nil {
		return nil, err
	}

	var elseBody ast.Expr
	if c.AdvanceIf(token.New(token.Else)) {
		if c.PeekKind(token.If) {
			elseBody, err = parseIfExpr(c)
		} else {
			elseBody, err = parseBlockExpr(c)
		}
		if err != nil {
			return nil, err
		}
	}

	return &ast.IfExpr{Cond: cond, Then: then, Else: elseBody}, nil
}

func parseWhileExpr(c *TokenCursor) (ast.Expr, error) {
	if err := c.Consume(token.New(token.While)); err != nil {
		return nil, err
	}

	cond, err := parseExpr(c)
	if err != nil {
		return nil, err
	}

	body, err := parseBlockExpr(c)
	if err != nil {
		return nil, err
	}

	return &ast.WhileExpr{Cond: cond, Body: body}, nil
}

func parseForExpr(c *TokenCursor) (ast.Expr, error) {
	if err := c.Consume(token.New(token.For)); err != nil {
		return nil, err
	}

	binder, err := parseIdentifier(c)
	if err != nil {
		return nil, err
	}

	if err := c.Consume(token.New(token.In)); err != nil {
		return nil, err
	}

	iterable, err := parseExpr(c)
	if err != nil {
		return nil, err
	}

	body, err := parseBlockExpr(c)
	if err != nil {
		return nil, err
	}

	return &ast.ForExpr{Binder: binder, Iterable: iterable, Body: body}, nil
}

func parseVarExpr(c *TokenCursor) (ast.Expr, error) {
	name, err := parseIdentifier(c)
	if err != nil {
		return nil, err
	}

	return &ast.VarExpr{Name: name}, nil
}

func parseBoolLiteral(c *TokenCursor) (ast.Expr, error) {
	tok, ok := c.Value()
	if !ok {
		return nil, unexpectedEosError("boolean literal")
	}

	switch tok.Kind {
	case token.True:
		return ast.NewBool(true), nil
	case token.False:
		return ast.NewBool(false), nil
	default:
		return nil, customError("not a boolean literal: '%s'", tok)
	}
}

func parseNumberLiteral(c *TokenCursor) (ast.Expr, error) {
	tok, ok := c.Value()
	if !ok {
		return nil, unexpectedEosError("number literal")
	}
	if tok.Kind != token.Number {
		return nil, customError("not a number literal: '%s'", tok)
	}

	return ast.NewNumber(tok.Num), nil
}

func parseStringLiteral(c *TokenCursor) (ast.Expr, error) {
	tok, ok := c.Value()
	if !ok {
		return nil, unexpectedEosError("string literal")
	}
	if tok.Kind != token.String {
		return nil, customError("not a string literal: '%s'", tok)
	}

	return ast.NewString(tok.Text), nil
}

func parseGroupExpr(c *TokenCursor) (ast.Expr, error) {
	if err := c.Consume(token.New(token.LeftParen)); err != nil {
		return nil, err
	}

	expr, err := parseExpr(c)
	if err != nil {
		return nil, err
	}

	if err := c.Consume(token.New(token.RightParen)); err != nil {
		return nil, err
	}

	return &ast.GroupExpr{Expr: expr}, nil
}

func parseBlockExpr(c *TokenCursor) (ast.Expr, error) {
	body, err := parseBlockStmt(c)
	if err != nil {
		return nil, err
	}

	return &ast.BlockExpr{Body: body}, nil
}

func unaryOp(tok token.Token) (ast.UnaryOp, error) {
	switch tok.Kind {
	case token.Bang:
		return ast.UnaryBang, nil
	case token.Minus:
		return ast.UnaryMinus, nil
	case token.Plus:
		return ast.UnaryPlus, nil
	case token.Group:
		return ast.UnaryGroup, nil
	case token.Node:
		return ast.UnaryNode, nil
	default:
		return 0, customError("not a unary expression token")
	}
}

func binaryOp(tok token.Token) (ast.BinaryOp, error) {
	switch tok.Kind {
	case token.And:
		return ast.BinaryAnd, nil
	case token.Dot:
		return ast.BinaryDot, nil
	case token.Eq:
		return ast.BinaryEq, nil
	case token.Gt:
		return ast.BinaryGt, nil
	case token.GtEq:
		return ast.BinaryGtEq, nil
	case token.Lt:
		return ast.BinaryLt, nil
	case token.LtEq:
		return ast.BinaryLtEq, nil
	case token.Minus:
		return ast.BinarySubtract, nil
	case token.NotEq:
		return ast.BinaryNotEq, nil
	case token.Or:
		return ast.BinaryOr, nil
	case token.Percent:
		return ast.BinaryRemainder, nil
	case token.Plus:
		return ast.BinaryPlus, nil
	case token.Slash:
		return ast.BinaryDivide, nil
	case token.Star:
		return ast.BinaryMultiply, nil
	default:
		return 0, customError("not a binary expression token")
	}
}
