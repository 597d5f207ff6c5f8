package parser

import (
	"github.com/diamondback-lang/diamondback/internal/ast"
	"github.com/diamondback-lang/diamondback/internal/lexer"
)

// parseLetExpr parses "let b1, b2, ... in body" with one or more bindings
// and no trailing comma.
func (p *Parser) parseLetExpr() ast.Expr {
	letTok := p.curTok

	p.nextToken() // move to first binding

	bindRes, ok := parseDelimited[*ast.Binding](p, delimitedConfig{
		Closing:             lexer.IN,
		Separator:           lexer.COMMA,
		MissingElementMsg:   "expected binding",
		MissingSeparatorMsg: "expected ',' or 'in' after binding",
	}, func(int) (*ast.Binding, bool) {
		binding := p.parseBinding()
		if binding == nil {
			return nil, false
		}
		return binding, true
	})
	if !ok {
		return nil
	}

	p.nextToken() // move past 'in'

	body := p.parseExpr()
	if body == nil {
		return nil
	}

	span := mergeSpan(letTok.Span, body.Span())
	return ast.NewLet(bindRes.Items, body, span)
}

// parseBinding parses "name = expr".
func (p *Parser) parseBinding() *ast.Binding {
	if p.curTok.Type != lexer.IDENT {
		p.reportUnexpected(p.curTok, "identifier")
		return nil
	}

	nameTok := p.curTok
	name := ast.NewIdent(nameTok.Literal, nameTok.Span)

	if !p.expect(lexer.ASSIGN) {
		return nil
	}

	p.nextToken() // move to initializer

	expr := p.parseExpr()
	if expr == nil {
		return nil
	}

	span := mergeSpan(nameTok.Span, expr.Span())
	return ast.NewBinding(name, expr, span)
}

// parseIfExpr parses "if cond: thn else: els". Both branches are mandatory.
func (p *Parser) parseIfExpr() ast.Expr {
	ifTok := p.curTok

	p.nextToken()

	cond := p.parseExpr()
	if cond == nil {
		return nil
	}

	if !p.expect(lexer.COLON) {
		return nil
	}

	p.nextToken()

	thn := p.parseExpr()
	if thn == nil {
		return nil
	}

	if !p.expect(lexer.ELSE) {
		return nil
	}

	if !p.expect(lexer.COLON) {
		return nil
	}

	p.nextToken()

	els := p.parseExpr()
	if els == nil {
		return nil
	}

	span := mergeSpan(ifTok.Span, els.Span())
	return ast.NewIf(cond, thn, els, span)
}

// parseFunDefsExpr parses a mutually recursive function group:
// "def f(xs): body and def g(ys): body ... in tail". Every definition in the
// group is recorded in one node; visibility is resolved by later phases.
func (p *Parser) parseFunDefsExpr() ast.Expr {
	start := p.curTok.Span

	var decls []*ast.FunDecl

	for {
		decl := p.parseFunDecl()
		if decl == nil {
			return nil
		}
		decls = append(decls, decl)

		if p.peekTok.Type != lexer.AND {
			break
		}

		p.nextToken() // move to 'and'

		if !p.expect(lexer.DEF) {
			return nil
		}
	}

	if !p.expect(lexer.IN) {
		return nil
	}

	p.nextToken() // move past 'in'

	body := p.parseExpr()
	if body == nil {
		return nil
	}

	span := mergeSpan(start, body.Span())
	return ast.NewFunDefs(decls, body, span)
}

// parseFunDecl parses one "def name(p1, p2, ...): body" definition with
// curTok on 'def'.
func (p *Parser) parseFunDecl() *ast.FunDecl {
	defTok := p.curTok

	if !p.expect(lexer.IDENT) {
		return nil
	}

	name := ast.NewIdent(p.curTok.Literal, p.curTok.Span)

	if !p.expect(lexer.LPAREN) {
		return nil
	}

	p.nextToken() // move to first parameter or ')'

	params, ok := p.parseParams()
	if !ok {
		return nil
	}

	if !p.expect(lexer.COLON) {
		return nil
	}

	p.nextToken()

	body := p.parseExpr()
	if body == nil {
		return nil
	}

	span := mergeSpan(defTok.Span, body.Span())
	return ast.NewFunDecl(name, params, body, span)
}

// parseParams parses a parenthesized, possibly empty parameter-name list
// with curTok on the first name or on ')'. On success curTok is on ')'.
func (p *Parser) parseParams() ([]*ast.Ident, bool) {
	paramRes, ok := parseDelimited[*ast.Ident](p, delimitedConfig{
		Closing:             lexer.RPAREN,
		Separator:           lexer.COMMA,
		AllowEmpty:          true,
		MissingElementMsg:   "expected parameter name",
		MissingSeparatorMsg: "expected ',' or ')' after parameter",
	}, func(int) (*ast.Ident, bool) {
		if p.curTok.Type != lexer.IDENT {
			p.reportUnexpected(p.curTok, "identifier")
			return nil, false
		}
		return ast.NewIdent(p.curTok.Literal, p.curTok.Span), true
	})
	if !ok {
		return nil, false
	}
	return paramRes.Items, true
}
