package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diamondback-lang/diamondback/internal/ast"
	"github.com/diamondback-lang/diamondback/internal/diag"
	"github.com/diamondback-lang/diamondback/internal/parser"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()

	prog, err := parser.Parse(src)
	require.NoError(t, err)
	require.NotNil(t, prog)
	return prog
}

func parseProgramErr(t *testing.T, src string) parser.ParseError {
	t.Helper()

	prog, err := parser.Parse(src)
	require.Error(t, err)
	require.Nil(t, prog, "a failed parse must not produce a partial AST")

	perr, ok := err.(parser.ParseError)
	require.True(t, ok, "expected a parser.ParseError, got %T", err)
	return perr
}

func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()

	expr, err := parser.ParseExpression(src)
	require.NoError(t, err)
	require.NotNil(t, expr)
	return expr
}

func TestParseMinimalProgram(t *testing.T) {
	prog := parseProgram(t, "def main(args): args")

	assert.Empty(t, prog.Externs)
	assert.Equal(t, "main", prog.Name.Name)
	assert.Equal(t, "args", prog.Param.Name)

	v, ok := prog.Body.(*ast.Var)
	require.True(t, ok)
	assert.Equal(t, "args", v.Name)
}

func TestParseProgramRequiresMainName(t *testing.T) {
	perr := parseProgramErr(t, "def foo(x): x")

	assert.Equal(t, diag.CodeParseMainName, perr.Code)
	assert.Equal(t, []string{"main"}, perr.Expected)
	// The span cites the offending name.
	assert.Equal(t, 4, perr.Span.Start)
	assert.Equal(t, 7, perr.Span.End)
}

func TestParseProgramMainTakesExactlyOneParam(t *testing.T) {
	parseProgramErr(t, "def main(): 1")
	parseProgramErr(t, "def main(a, b): 1")
}

func TestParseExternDecls(t *testing.T) {
	prog := parseProgram(t, "extern print(x) and\nextern exit(code, status) and\ndef main(args): print(args)")

	require.Len(t, prog.Externs, 2)
	assert.Equal(t, "print", prog.Externs[0].Name.Name)
	require.Len(t, prog.Externs[0].Params, 1)
	assert.Equal(t, "x", prog.Externs[0].Params[0].Name)

	assert.Equal(t, "exit", prog.Externs[1].Name.Name)
	require.Len(t, prog.Externs[1].Params, 2)
}

func TestParseExternRejectsEntry(t *testing.T) {
	perr := parseProgramErr(t, "extern entry(x) and def main(args): args")

	assert.Equal(t, diag.CodeParseExternEntry, perr.Code)
	assert.Equal(t, []string{"!entry"}, perr.Expected)
	assert.Equal(t, 7, perr.Span.Start)
	assert.Equal(t, 12, perr.Span.End)
}

func TestParseExternEntryPrefixAllowed(t *testing.T) {
	prog := parseProgram(t, "extern entry2(x) and def main(args): entry2(args)")

	require.Len(t, prog.Externs, 1)
	assert.Equal(t, "entry2", prog.Externs[0].Name.Name)
}

func TestParseExternWithoutAndFails(t *testing.T) {
	perr := parseProgramErr(t, "extern print(x) def main(args): args")
	assert.Contains(t, perr.Expected, "'and'")
}

func TestParseProgramRejectsTrailingTokens(t *testing.T) {
	parseProgramErr(t, "def main(args): args extra")
}

func TestParseEmptyInputFails(t *testing.T) {
	perr := parseProgramErr(t, "")
	assert.Equal(t, diag.CodeParseUnexpectedEOF, perr.Code)
}

func TestParseErrorsStopAtFirstFailure(t *testing.T) {
	p := parser.New("def foo(x: x")
	prog := p.ParseProgram()

	assert.Nil(t, prog)
	require.Len(t, p.Errors(), 1)
}

func TestParseExpressionRejectsTrailingTokens(t *testing.T) {
	_, err := parser.ParseExpression("1 + 2 3")
	require.Error(t, err)
}

func TestParseWithFilenameStampsSpans(t *testing.T) {
	prog, err := parser.Parse("def main(args): args", parser.WithFilename("prog.dbk"))
	require.NoError(t, err)

	assert.Equal(t, "prog.dbk", prog.Span().Filename)
	assert.Equal(t, "prog.dbk", prog.Body.Span().Filename)
}

func TestParseErrorRendering(t *testing.T) {
	perr := parseProgramErr(t, "def foo(x): x")

	msg := perr.Error()
	assert.Contains(t, msg, "main")

	d := perr.ToDiagnostic()
	assert.Equal(t, diag.StageParser, d.Stage)
	assert.Equal(t, diag.SeverityError, d.Severity)
	assert.Equal(t, []string{"main"}, d.Expected)
}

func TestProgramSpanCoversBody(t *testing.T) {
	src := "def main(args): add1(args)"
	prog := parseProgram(t, src)

	assert.Equal(t, 0, prog.Span().Start)
	assert.Equal(t, len(src), prog.Span().End)
}
