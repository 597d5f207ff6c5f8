package parser

import (
	"github.com/diamondback-lang/diamondback/internal/ast"
	"github.com/diamondback-lang/diamondback/internal/diag"
	"github.com/diamondback-lang/diamondback/internal/lexer"
)

// ParseProgram parses a whole program: zero or more extern declarations,
// each terminated by 'and', followed by exactly one main definition. The
// main-name and entry-extern-name checks are grammar-level: they fail the
// parse with a specific expected-token hint instead of waiting for a
// semantic pass.
func (p *Parser) ParseProgram() *ast.Program {
	start := p.curTok.Span

	var externs []*ast.ExternDecl

	for p.curTok.Type == lexer.EXTERN {
		ext := p.parseExternDecl()
		if ext == nil {
			return nil
		}
		externs = append(externs, ext)

		if !p.expect(lexer.AND) {
			return nil
		}

		p.nextToken() // move to next extern or the main definition
	}

	if p.curTok.Type != lexer.DEF {
		p.reportUnexpected(p.curTok, "'def'", "'extern'")
		return nil
	}

	if !p.expect(lexer.IDENT) {
		return nil
	}

	nameTok := p.curTok
	if nameTok.Literal != "main" {
		p.report(diag.CodeParseMainName, "program must define 'main', found '"+nameTok.Literal+"'", nameTok.Span, "main")
		return nil
	}
	name := ast.NewIdent(nameTok.Literal, nameTok.Span)

	if !p.expect(lexer.LPAREN) {
		return nil
	}

	// main takes exactly one parameter, unlike user and extern functions.
	if !p.expect(lexer.IDENT) {
		return nil
	}
	param := ast.NewIdent(p.curTok.Literal, p.curTok.Span)

	if !p.expect(lexer.RPAREN) {
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

	if p.peekTok.Type != lexer.EOF {
		p.reportUnexpected(p.peekTok, "end of input")
		return nil
	}

	span := mergeSpan(start, body.Span())
	return ast.NewProgram(externs, name, param, body, span)
}

// parseExternDecl parses "extern name(p1, p2, ...)" with curTok on 'extern'.
// The name 'entry' is reserved for the generated entry point and rejected
// here.
func (p *Parser) parseExternDecl() *ast.ExternDecl {
	extTok := p.curTok

	if !p.expect(lexer.IDENT) {
		return nil
	}

	nameTok := p.curTok
	if nameTok.Literal == "entry" {
		p.report(diag.CodeParseExternEntry, "extern declaration may not be named 'entry'", nameTok.Span, "!entry")
		return nil
	}
	name := ast.NewIdent(nameTok.Literal, nameTok.Span)

	if !p.expect(lexer.LPAREN) {
		return nil
	}

	p.nextToken() // move to first parameter or ')'

	params, ok := p.parseParams()
	if !ok {
		return nil
	}

	span := mergeSpan(extTok.Span, p.curTok.Span)
	return ast.NewExternDecl(name, params, span)
}
