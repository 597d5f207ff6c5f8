package parser

import (
	"strconv"

	"github.com/diamondback-lang/diamondback/internal/ast"
	"github.com/diamondback-lang/diamondback/internal/diag"
	"github.com/diamondback-lang/diamondback/internal/lexer"
)

// The expression grammar is a ladder of sub-grammars composed leaf-first.
// Tightest binding first:
//
//	base     literals, variables, calls, primitive calls, array literals,
//	         parenthesized expressions, array indexing
//	unary    !base
//	product  * (left-associative)
//	sum      + - (left-associative)
//	compare  < <= > >= == != (left-associative)
//	logic    && || (right-associative)
//	assign   base[i] := v (right-associative)
//	expr     let / if / def groups, or an assign-level expression
//
// The binary levels share two fold combinators parameterized by an operator
// set and the next tighter layer.

var (
	productOps = map[lexer.TokenType]ast.PrimOp{
		lexer.ASTERISK: ast.PrimMul,
	}
	sumOps = map[lexer.TokenType]ast.PrimOp{
		lexer.PLUS:  ast.PrimAdd,
		lexer.MINUS: ast.PrimSub,
	}
	compareOps = map[lexer.TokenType]ast.PrimOp{
		lexer.LT:  ast.PrimLt,
		lexer.LE:  ast.PrimLe,
		lexer.GT:  ast.PrimGt,
		lexer.GE:  ast.PrimGe,
		lexer.EQ:  ast.PrimEq,
		lexer.NEQ: ast.PrimNeq,
	}
	logicOps = map[lexer.TokenType]ast.PrimOp{
		lexer.LAND: ast.PrimAnd,
		lexer.LOR:  ast.PrimOr,
	}

	primKeywordOps = map[lexer.TokenType]ast.PrimOp{
		lexer.ADD1:     ast.PrimAdd1,
		lexer.SUB1:     ast.PrimSub1,
		lexer.ISINT:    ast.PrimIsInt,
		lexer.ISBOOL:   ast.PrimIsBool,
		lexer.ISARRAY:  ast.PrimIsArray,
		lexer.NEWARRAY: ast.PrimNewArray,
		lexer.LENGTH:   ast.PrimLength,
	}
)

// parseExpr parses a full expression: a statement-level form when the
// leading keyword announces one, otherwise an operator-ladder expression.
func (p *Parser) parseExpr() ast.Expr {
	switch p.curTok.Type {
	case lexer.LET:
		return p.parseLetExpr()
	case lexer.IF:
		return p.parseIfExpr()
	case lexer.DEF:
		return p.parseFunDefsExpr()
	default:
		return p.parseAssignExpr()
	}
}

// parseLeftAssoc recognizes next (op next)* and folds left-to-right, so
// "a - b - c" becomes sub(sub(a, b), c).
func (p *Parser) parseLeftAssoc(ops map[lexer.TokenType]ast.PrimOp, next func() ast.Expr) ast.Expr {
	left := next()
	if left == nil {
		return nil
	}

	for {
		op, ok := ops[p.peekTok.Type]
		if !ok {
			return left
		}

		p.nextToken() // move to operator
		p.nextToken() // move to right operand

		right := next()
		if right == nil {
			return nil
		}

		span := mergeSpan(left.Span(), right.Span())
		left = ast.NewPrim(op, []ast.Expr{left, right}, span)
	}
}

// parseRightAssoc recognizes next (op next)* and folds right-to-left, so
// "a && b && c" becomes and(a, and(b, c)).
func (p *Parser) parseRightAssoc(ops map[lexer.TokenType]ast.PrimOp, next func() ast.Expr) ast.Expr {
	left := next()
	if left == nil {
		return nil
	}

	op, ok := ops[p.peekTok.Type]
	if !ok {
		return left
	}

	p.nextToken() // move to operator
	p.nextToken() // move to right operand

	right := p.parseRightAssoc(ops, next)
	if right == nil {
		return nil
	}

	span := mergeSpan(left.Span(), right.Span())
	return ast.NewPrim(op, []ast.Expr{left, right}, span)
}

// parseAssignExpr parses the loosest operator layer: array-index assignment.
// "base[i] := v" rewrites the already-parsed index into an arraySet; the
// value is itself assign-level, making ':=' right-associative.
func (p *Parser) parseAssignExpr() ast.Expr {
	left := p.parseLogicExpr()
	if left == nil {
		return nil
	}

	if p.peekTok.Type != lexer.GETS {
		return left
	}

	p.nextToken() // move to ':='
	getsTok := p.curTok

	get, ok := left.(*ast.Prim)
	if !ok || get.Op != ast.PrimArrayGet {
		p.report(diag.CodeParseBadAssignTarget, "left-hand side of ':=' must be an array index", left.Span())
		return nil
	}

	p.nextToken()

	value := p.parseAssignExpr()
	if value == nil {
		return nil
	}

	span := mergeSpan(left.Span(), getsTok.Span)
	span = mergeSpan(span, value.Span())

	return ast.NewPrim(ast.PrimArraySet, []ast.Expr{get.Args[0], get.Args[1], value}, span)
}

func (p *Parser) parseLogicExpr() ast.Expr {
	return p.parseRightAssoc(logicOps, p.parseCompareExpr)
}

func (p *Parser) parseCompareExpr() ast.Expr {
	return p.parseLeftAssoc(compareOps, p.parseSumExpr)
}

func (p *Parser) parseSumExpr() ast.Expr {
	return p.parseLeftAssoc(sumOps, p.parseProductExpr)
}

func (p *Parser) parseProductExpr() ast.Expr {
	return p.parseLeftAssoc(productOps, p.parseUnaryExpr)
}

// parseUnaryExpr parses "!base". Restricting the operand to a base
// expression keeps '!' unambiguous against the lower-precedence binary
// operators.
func (p *Parser) parseUnaryExpr() ast.Expr {
	if p.curTok.Type != lexer.BANG {
		return p.parseBaseExpr()
	}

	bangTok := p.curTok

	p.nextToken()

	operand := p.parseBaseExpr()
	if operand == nil {
		return nil
	}

	span := mergeSpan(bangTok.Span, operand.Span())
	return ast.NewPrim(ast.PrimNot, []ast.Expr{operand}, span)
}

// parseBaseExpr parses a primary expression and any number of index
// suffixes. Indexing therefore binds tighter than every operator, and
// "a[0][1]" nests left-to-right.
func (p *Parser) parseBaseExpr() ast.Expr {
	var expr ast.Expr

	switch {
	case p.curTok.Type == lexer.IDENT && p.peekTok.Type == lexer.LPAREN:
		expr = p.parseCallExpr()

	case p.curTok.Type == lexer.IDENT:
		expr = ast.NewVar(p.curTok.Literal, p.curTok.Span)

	case p.curTok.Type == lexer.INT,
		(p.curTok.Type == lexer.MINUS || p.curTok.Type == lexer.PLUS) && p.peekTok.Type == lexer.INT:
		expr = p.parseNumLiteral()

	case p.curTok.Type == lexer.TRUE, p.curTok.Type == lexer.FALSE:
		expr = ast.NewBool(p.curTok.Type == lexer.TRUE, p.curTok.Span)

	case lexer.IsPrimKeyword(p.curTok.Type):
		expr = p.parsePrimCall()

	case p.curTok.Type == lexer.LBRACKET:
		expr = p.parseArrayLiteral()

	case p.curTok.Type == lexer.LPAREN:
		expr = p.parseGroupedExpr()

	default:
		p.reportUnexpected(p.curTok, "expression")
		return nil
	}

	if expr == nil {
		return nil
	}

	return p.parseIndexSuffix(expr)
}

// parseNumLiteral parses a signed 64-bit integer literal. A sign is part of
// the literal only in prefix position, which the caller has established;
// overflow is fatal, not recoverable.
func (p *Parser) parseNumLiteral() ast.Expr {
	startTok := p.curTok
	literal := startTok.Literal
	span := startTok.Span

	if startTok.Type == lexer.MINUS || startTok.Type == lexer.PLUS {
		p.nextToken() // move to the digits
		literal = startTok.Literal + p.curTok.Literal
		span = mergeSpan(span, p.curTok.Span)
	}

	value, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		p.report(diag.CodeParseIntOverflow, "integer literal '"+literal+"' does not fit in 64 bits", span)
		return nil
	}

	return ast.NewNum(value, span)
}

// parsePrimCall parses a single-argument primitive-operator call such as
// "add1(e)" or "isArray(e)".
func (p *Parser) parsePrimCall() ast.Expr {
	opTok := p.curTok
	op := primKeywordOps[opTok.Type]

	if !p.expect(lexer.LPAREN) {
		return nil
	}

	p.nextToken()

	arg := p.parseExpr()
	if arg == nil {
		return nil
	}

	if !p.expect(lexer.RPAREN) {
		return nil
	}

	span := mergeSpan(opTok.Span, p.curTok.Span)
	return ast.NewPrim(op, []ast.Expr{arg}, span)
}

// parseCallExpr parses a user function call with zero or more arguments.
func (p *Parser) parseCallExpr() ast.Expr {
	nameTok := p.curTok

	p.nextToken() // move to '('
	p.nextToken() // move to first argument or ')'

	argRes, ok := parseDelimited[ast.Expr](p, delimitedConfig{
		Closing:             lexer.RPAREN,
		Separator:           lexer.COMMA,
		AllowEmpty:          true,
		MissingElementMsg:   "expected expression after ','",
		MissingSeparatorMsg: "expected ',' or ')' after argument",
	}, func(int) (ast.Expr, bool) {
		arg := p.parseExpr()
		if arg == nil {
			return nil, false
		}
		return arg, true
	})
	if !ok {
		return nil
	}

	span := mergeSpan(nameTok.Span, p.curTok.Span)
	return ast.NewCall(nameTok.Literal, argRes.Items, span)
}

// parseArrayLiteral parses "[e, e, ...]" into a mkArray primitive. The
// element list may be empty and may carry a trailing comma.
func (p *Parser) parseArrayLiteral() ast.Expr {
	openTok := p.curTok

	p.nextToken() // move to first element or ']'

	elemRes, ok := parseDelimited[ast.Expr](p, delimitedConfig{
		Closing:             lexer.RBRACKET,
		Separator:           lexer.COMMA,
		AllowEmpty:          true,
		AllowTrailing:       true,
		MissingSeparatorMsg: "expected ',' or ']' after array element",
	}, func(int) (ast.Expr, bool) {
		elem := p.parseExpr()
		if elem == nil {
			return nil, false
		}
		return elem, true
	})
	if !ok {
		return nil
	}

	span := mergeSpan(openTok.Span, p.curTok.Span)
	return ast.NewPrim(ast.PrimMakeArray, elemRes.Items, span)
}

// spanSetter is satisfied by nodes that expose SetSpan. parseGroupedExpr
// uses it to widen spans without wrapping the node in a synthetic paren type.
type spanSetter interface {
	SetSpan(lexer.Span)
}

// parseGroupedExpr parses "(expr)" without introducing an explicit paren
// node; the parens only widen the span of the inner expression.
func (p *Parser) parseGroupedExpr() ast.Expr {
	start := p.curTok.Span

	p.nextToken()

	expr := p.parseExpr()
	if expr == nil {
		return nil
	}

	if !p.expect(lexer.RPAREN) {
		return nil
	}

	span := mergeSpan(start, p.curTok.Span)
	if setter, ok := expr.(spanSetter); ok {
		setter.SetSpan(span)
	}

	return expr
}

// parseIndexSuffix parses any number of "[index]" suffixes on an
// already-parsed base expression.
func (p *Parser) parseIndexSuffix(expr ast.Expr) ast.Expr {
	for p.peekTok.Type == lexer.LBRACKET {
		p.nextToken() // move to '['
		p.nextToken() // move to index expression

		index := p.parseExpr()
		if index == nil {
			return nil
		}

		if !p.expect(lexer.RBRACKET) {
			return nil
		}

		span := mergeSpan(expr.Span(), p.curTok.Span)
		expr = ast.NewPrim(ast.PrimArrayGet, []ast.Expr{expr, index}, span)
	}

	return expr
}
