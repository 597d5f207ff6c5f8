package parser

import (
	"strings"

	"github.com/diamondback-lang/diamondback/internal/ast"
	"github.com/diamondback-lang/diamondback/internal/diag"
	"github.com/diamondback-lang/diamondback/internal/lexer"
)

type Option func(*options)

type options struct {
	filename string
}

// WithFilename configures the parser to attribute all emitted spans to the
// provided filename.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// ParseError is a fatal parse failure with location context. The first error
// aborts the parse; no partial AST is ever produced.
type ParseError struct {
	Code    diag.Code
	Message string
	Span    lexer.Span
	// Expected lists the syntactically valid continuations at the failure
	// site, when known. The program-structure checks use it to carry their
	// specific hints ("main", "!entry").
	Expected []string
}

// Error renders the failure on a single line.
func (e ParseError) Error() string {
	var sb strings.Builder
	if e.Span.Line > 0 {
		sb.WriteString(diagSpan(e.Span).String())
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if len(e.Expected) > 0 {
		sb.WriteString(" (expected ")
		sb.WriteString(strings.Join(e.Expected, ", "))
		sb.WriteString(")")
	}
	return sb.String()
}

// ToDiagnostic converts the error into the shared diagnostic structure.
func (e ParseError) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: diag.SeverityError,
		Code:     e.Code,
		Message:  e.Message,
		Span:     diagSpan(e.Span),
		Expected: e.Expected,
	}
}

func diagSpan(span lexer.Span) diag.Span {
	return diag.Span{
		Filename: span.Filename,
		Line:     span.Line,
		Column:   span.Column,
		Start:    span.Start,
		End:      span.End,
	}
}

// Parser implements the layered recursive-descent grammar for Diamondback.
// Invariants:
//   - Lookahead: curTok always reflects the token currently under
//     examination; peekTok mirrors the next token pulled from the lexer. The
//     pair forms the parser's sole lookahead window and is only mutated via
//     nextToken.
//   - Positioning: every parse function enters with curTok on the first
//     token of its construct and exits with curTok on the last token it
//     consumed. Callers advance between constructs.
//   - Errors: the errors accumulator is append-only, but the grammar aborts
//     on the first entry; parse functions return nil upward and no node of a
//     failed parse survives.
//   - Spans: node spans are composed via mergeSpan so that a parent span
//     always covers its children.
type Parser struct {
	lx      *lexer.Lexer
	curTok  lexer.Token
	peekTok lexer.Token

	errors []ParseError

	filename string
}

// New returns a parser initialised with the provided source input.
func New(input string, opts ...Option) *Parser {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Parser{
		lx:       lexer.New(input),
		filename: cfg.filename,
	}

	if cfg.filename != "" {
		p.lx.SetFilename(cfg.filename)
	}

	// Seed curTok/peekTok.
	p.nextToken()
	p.nextToken()

	return p
}

// Parse parses a whole program from input. On failure it returns the first
// (and only) parse error.
func Parse(input string, opts ...Option) (*ast.Program, error) {
	p := New(input, opts...)
	prog := p.ParseProgram()
	if err := p.firstError(); err != nil {
		return nil, err
	}
	return prog, nil
}

// ParseExpression parses a single expression followed by end of input. The
// REPL uses this entry point.
func ParseExpression(input string, opts ...Option) (ast.Expr, error) {
	p := New(input, opts...)
	expr := p.parseExpr()
	if expr != nil && p.peekTok.Type != lexer.EOF {
		p.reportUnexpected(p.peekTok, "end of input")
	}
	if err := p.firstError(); err != nil {
		return nil, err
	}
	return expr, nil
}

// Errors returns all parse errors that were encountered. Parsing stops at
// the first error, so the slice holds at most one entry.
func (p *Parser) Errors() []ParseError {
	return p.errors
}

func (p *Parser) firstError() error {
	if len(p.errors) > 0 {
		return p.errors[0]
	}
	return nil
}

// nextToken advances the parser's token window.
// Contract: after calling nextToken, curTok == old(peekTok). The lexer is
// only queried from this hop to keep lookahead bookkeeping centralized.
func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	if p.lx != nil {
		p.peekTok = p.lx.NextToken()
	} else {
		p.peekTok = lexer.Token{}
	}
}

// expect asserts that the peek token matches the provided type.
// The caller is responsible for inspecting curTok before invoking expect,
// because expect never rewinds; on success it promotes peekTok into curTok.
func (p *Parser) expect(tt lexer.TokenType) bool {
	if p.peekTok.Type == tt {
		p.nextToken()
		return true
	}

	p.reportUnexpected(p.peekTok, tokenLabel(tt))
	return false
}

// report records a fatal diagnostic. All call sites must supply the
// best-effort span available at the failure site.
func (p *Parser) report(code diag.Code, msg string, span lexer.Span, expected ...string) {
	p.errors = append(p.errors, ParseError{
		Code:     code,
		Message:  msg,
		Span:     span,
		Expected: expected,
	})
}

func (p *Parser) reportError(msg string, span lexer.Span) {
	p.report(diag.CodeParseUnexpectedToken, msg, span)
}

// reportUnexpected records a grammar mismatch at tok, naming the valid
// continuations.
func (p *Parser) reportUnexpected(tok lexer.Token, expected ...string) {
	switch tok.Type {
	case lexer.EOF:
		p.report(diag.CodeParseUnexpectedEOF, "unexpected end of input", tok.Span, expected...)
	case lexer.ILLEGAL:
		p.report(diag.CodeParseUnexpectedToken, "illegal character '"+tok.Literal+"'", tok.Span, expected...)
	default:
		p.report(diag.CodeParseUnexpectedToken, "unexpected token '"+tok.Literal+"'", tok.Span, expected...)
	}
}

var keywordLabels = map[lexer.TokenType]string{
	lexer.DEF:      "def",
	lexer.AND:      "and",
	lexer.IN:       "in",
	lexer.LET:      "let",
	lexer.IF:       "if",
	lexer.ELSE:     "else",
	lexer.EXTERN:   "extern",
	lexer.TRUE:     "true",
	lexer.FALSE:    "false",
	lexer.ADD1:     "add1",
	lexer.SUB1:     "sub1",
	lexer.ISINT:    "isInt",
	lexer.ISBOOL:   "isBool",
	lexer.ISARRAY:  "isArray",
	lexer.NEWARRAY: "newArray",
	lexer.LENGTH:   "length",
}

// tokenLabel is the user-facing spelling of a token type: the keyword for
// keyword tokens, the lexeme for punctuation.
func tokenLabel(tt lexer.TokenType) string {
	switch tt {
	case lexer.IDENT:
		return "identifier"
	case lexer.INT:
		return "number"
	case lexer.EOF:
		return "end of input"
	}
	if label, ok := keywordLabels[tt]; ok {
		return "'" + label + "'"
	}
	return "'" + string(tt) + "'"
}

// mergeSpan assumes start.End <= end.End and returns a span covering both.
// The parser relies on lexer spans being half-open; callers should pass the
// earliest start span first to preserve monotonic growth for AST nodes.
func mergeSpan(start, end lexer.Span) lexer.Span {
	span := start

	if span.Filename == "" {
		span.Filename = end.Filename
	}

	if span.Line == 0 && end.Line != 0 {
		span.Line = end.Line
		span.Column = end.Column
		span.Start = end.Start
	}

	if end.End > span.End {
		span.End = end.End
	}

	return span
}
