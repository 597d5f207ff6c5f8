package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diamondback-lang/diamondback/internal/ast"
	"github.com/diamondback-lang/diamondback/internal/diag"
	"github.com/diamondback-lang/diamondback/internal/parser"
)

func asPrim(t *testing.T, expr ast.Expr, op ast.PrimOp) *ast.Prim {
	t.Helper()

	prim, ok := expr.(*ast.Prim)
	require.True(t, ok, "expected *ast.Prim, got %T", expr)
	require.Equal(t, op, prim.Op)
	return prim
}

func numValue(t *testing.T, expr ast.Expr) int64 {
	t.Helper()

	num, ok := expr.(*ast.Num)
	require.True(t, ok, "expected *ast.Num, got %T", expr)
	return num.Value
}

func TestParseLiterals(t *testing.T) {
	assert.Equal(t, int64(42), numValue(t, parseExpr(t, "42")))
	assert.Equal(t, int64(-7), numValue(t, parseExpr(t, "-7")))
	assert.Equal(t, int64(7), numValue(t, parseExpr(t, "+7")))

	b, ok := parseExpr(t, "true").(*ast.Bool)
	require.True(t, ok)
	assert.True(t, b.Value)

	b, ok = parseExpr(t, "false").(*ast.Bool)
	require.True(t, ok)
	assert.False(t, b.Value)
}

func TestParseInt64Bounds(t *testing.T) {
	assert.Equal(t, int64(9223372036854775807), numValue(t, parseExpr(t, "9223372036854775807")))
	assert.Equal(t, int64(-9223372036854775808), numValue(t, parseExpr(t, "-9223372036854775808")))
}

func TestParseIntOverflowIsFatal(t *testing.T) {
	for _, src := range []string{
		"9223372036854775808",
		"-9223372036854775809",
	} {
		expr, err := parser.ParseExpression(src)
		require.Error(t, err, "source %q", src)
		assert.Nil(t, expr)

		perr := err.(parser.ParseError)
		assert.Equal(t, diag.CodeParseIntOverflow, perr.Code)
	}
}

func TestParseMinusIsBinaryBetweenOperands(t *testing.T) {
	// A sign only fuses with a literal in prefix position.
	prim := asPrim(t, parseExpr(t, "1 - 2"), ast.PrimSub)
	assert.Equal(t, int64(1), numValue(t, prim.Args[0]))
	assert.Equal(t, int64(2), numValue(t, prim.Args[1]))

	// After an operator the sign is prefix again.
	prim = asPrim(t, parseExpr(t, "1 - -2"), ast.PrimSub)
	assert.Equal(t, int64(-2), numValue(t, prim.Args[1]))
}

func TestParseSumLeftAssociative(t *testing.T) {
	// 1 - 2 - 3 parses as (1 - 2) - 3.
	outer := asPrim(t, parseExpr(t, "1 - 2 - 3"), ast.PrimSub)
	inner := asPrim(t, outer.Args[0], ast.PrimSub)
	assert.Equal(t, int64(1), numValue(t, inner.Args[0]))
	assert.Equal(t, int64(2), numValue(t, inner.Args[1]))
	assert.Equal(t, int64(3), numValue(t, outer.Args[1]))
}

func TestParseProductBindsTighterThanSum(t *testing.T) {
	// 1 + 2 * 3 parses as 1 + (2 * 3).
	outer := asPrim(t, parseExpr(t, "1 + 2 * 3"), ast.PrimAdd)
	assert.Equal(t, int64(1), numValue(t, outer.Args[0]))
	inner := asPrim(t, outer.Args[1], ast.PrimMul)
	assert.Equal(t, int64(2), numValue(t, inner.Args[0]))
	assert.Equal(t, int64(3), numValue(t, inner.Args[1]))

	// 1 * 2 + 3 parses as (1 * 2) + 3.
	outer = asPrim(t, parseExpr(t, "1 * 2 + 3"), ast.PrimAdd)
	asPrim(t, outer.Args[0], ast.PrimMul)
	assert.Equal(t, int64(3), numValue(t, outer.Args[1]))
}

func TestParseComparisonsChainLeft(t *testing.T) {
	// a < b < c parses as (a < b) < c.
	outer := asPrim(t, parseExpr(t, "a < b < c"), ast.PrimLt)
	inner := asPrim(t, outer.Args[0], ast.PrimLt)
	assert.Equal(t, "a", inner.Args[0].(*ast.Var).Name)
	assert.Equal(t, "b", inner.Args[1].(*ast.Var).Name)
	assert.Equal(t, "c", outer.Args[1].(*ast.Var).Name)
}

func TestParseComparisonOperators(t *testing.T) {
	ops := map[string]ast.PrimOp{
		"<": ast.PrimLt, "<=": ast.PrimLe,
		">": ast.PrimGt, ">=": ast.PrimGe,
		"==": ast.PrimEq, "!=": ast.PrimNeq,
	}
	for src, op := range ops {
		asPrim(t, parseExpr(t, "a "+src+" b"), op)
	}
}

func TestParseComparisonLooserThanSum(t *testing.T) {
	// a + 1 < b parses as (a + 1) < b.
	outer := asPrim(t, parseExpr(t, "a + 1 < b"), ast.PrimLt)
	asPrim(t, outer.Args[0], ast.PrimAdd)
}

func TestParseLogicRightAssociative(t *testing.T) {
	// true && false && true parses as true && (false && true).
	outer := asPrim(t, parseExpr(t, "true && false && true"), ast.PrimAnd)
	assert.IsType(t, &ast.Bool{}, outer.Args[0])
	inner := asPrim(t, outer.Args[1], ast.PrimAnd)
	assert.IsType(t, &ast.Bool{}, inner.Args[0])
	assert.IsType(t, &ast.Bool{}, inner.Args[1])

	// Mixed && and || fold right as a single layer.
	outer = asPrim(t, parseExpr(t, "a && b || c"), ast.PrimAnd)
	asPrim(t, outer.Args[1], ast.PrimOr)
}

func TestParseLogicLooserThanComparison(t *testing.T) {
	// a < b && c parses as (a < b) && c.
	outer := asPrim(t, parseExpr(t, "a < b && c"), ast.PrimAnd)
	asPrim(t, outer.Args[0], ast.PrimLt)
}

func TestParseNotBindsTightest(t *testing.T) {
	// !a && b parses as (!a) && b.
	outer := asPrim(t, parseExpr(t, "!a && b"), ast.PrimAnd)
	asPrim(t, outer.Args[0], ast.PrimNot)

	// The operand of '!' must be a base expression; a nested '!' needs parens.
	not := asPrim(t, parseExpr(t, "!(!a)"), ast.PrimNot)
	asPrim(t, not.Args[0], ast.PrimNot)

	_, err := parser.ParseExpression("!!a")
	require.Error(t, err)
}

func TestParseIndexing(t *testing.T) {
	get := asPrim(t, parseExpr(t, "a[0]"), ast.PrimArrayGet)
	assert.Equal(t, "a", get.Args[0].(*ast.Var).Name)
	assert.Equal(t, int64(0), numValue(t, get.Args[1]))

	// a[0][1] nests left-to-right.
	outer := asPrim(t, parseExpr(t, "a[0][1]"), ast.PrimArrayGet)
	inner := asPrim(t, outer.Args[0], ast.PrimArrayGet)
	assert.Equal(t, "a", inner.Args[0].(*ast.Var).Name)
	assert.Equal(t, int64(1), numValue(t, outer.Args[1]))
}

func TestParseIndexingBindsTighterThanOperators(t *testing.T) {
	// a[0] + 1 parses as (a[0]) + 1.
	outer := asPrim(t, parseExpr(t, "a[0] + 1"), ast.PrimAdd)
	asPrim(t, outer.Args[0], ast.PrimArrayGet)

	// !a[0] negates the indexed value.
	not := asPrim(t, parseExpr(t, "!a[0]"), ast.PrimNot)
	asPrim(t, not.Args[0], ast.PrimArrayGet)
}

func TestParseArraySet(t *testing.T) {
	set := asPrim(t, parseExpr(t, "a[0] := 1 + 2"), ast.PrimArraySet)
	require.Len(t, set.Args, 3)
	assert.Equal(t, "a", set.Args[0].(*ast.Var).Name)
	assert.Equal(t, int64(0), numValue(t, set.Args[1]))
	// ':=' is the loosest layer: the whole sum is the stored value.
	asPrim(t, set.Args[2], ast.PrimAdd)
}

func TestParseArraySetRightAssociative(t *testing.T) {
	// a[0] := b[1] := true stores an arraySet as the value.
	outer := asPrim(t, parseExpr(t, "a[0] := b[1] := true"), ast.PrimArraySet)
	require.Len(t, outer.Args, 3)
	assert.Equal(t, "a", outer.Args[0].(*ast.Var).Name)

	inner := asPrim(t, outer.Args[2], ast.PrimArraySet)
	assert.Equal(t, "b", inner.Args[0].(*ast.Var).Name)
	assert.IsType(t, &ast.Bool{}, inner.Args[2])
}

func TestParseArraySetRequiresIndexTarget(t *testing.T) {
	for _, src := range []string{
		"x := 1",
		"1 := 2",
		"f(x) := 1",
	} {
		expr, err := parser.ParseExpression(src)
		require.Error(t, err, "source %q", src)
		assert.Nil(t, expr)

		perr := err.(parser.ParseError)
		assert.Equal(t, diag.CodeParseBadAssignTarget, perr.Code)
	}
}

func TestParseCall(t *testing.T) {
	call, ok := parseExpr(t, "f()").(*ast.Call)
	require.True(t, ok)
	assert.Equal(t, "f", call.Fun)
	assert.Empty(t, call.Args)

	call = parseExpr(t, "g(1, x, h(2))").(*ast.Call)
	require.Len(t, call.Args, 3)
	assert.Equal(t, int64(1), numValue(t, call.Args[0]))
	assert.Equal(t, "x", call.Args[1].(*ast.Var).Name)
	assert.IsType(t, &ast.Call{}, call.Args[2])
}

func TestParsePrimKeywordCalls(t *testing.T) {
	ops := map[string]ast.PrimOp{
		"add1":     ast.PrimAdd1,
		"sub1":     ast.PrimSub1,
		"isInt":    ast.PrimIsInt,
		"isBool":   ast.PrimIsBool,
		"isArray":  ast.PrimIsArray,
		"newArray": ast.PrimNewArray,
		"length":   ast.PrimLength,
	}
	for src, op := range ops {
		prim := asPrim(t, parseExpr(t, src+"(x)"), op)
		require.Len(t, prim.Args, 1)
		assert.Equal(t, "x", prim.Args[0].(*ast.Var).Name)
	}
}

func TestParsePrimKeywordIsNotAVariable(t *testing.T) {
	// Primitive keywords require a parenthesized argument.
	_, err := parser.ParseExpression("add1 + 1")
	require.Error(t, err)
}

func TestParseArrayLiteral(t *testing.T) {
	arr := asPrim(t, parseExpr(t, "[1, 2, 3]"), ast.PrimMakeArray)
	require.Len(t, arr.Args, 3)

	arr = asPrim(t, parseExpr(t, "[]"), ast.PrimMakeArray)
	assert.Empty(t, arr.Args)

	// Trailing comma is allowed.
	arr = asPrim(t, parseExpr(t, "[1, 2,]"), ast.PrimMakeArray)
	require.Len(t, arr.Args, 2)
}

func TestParseGroupedExpr(t *testing.T) {
	// (1 + 2) * 3 overrides precedence.
	outer := asPrim(t, parseExpr(t, "(1 + 2) * 3"), ast.PrimMul)
	asPrim(t, outer.Args[0], ast.PrimAdd)

	// The parens widen the inner expression's span.
	src := "(1 + 2)"
	expr := parseExpr(t, src)
	assert.Equal(t, 0, expr.Span().Start)
	assert.Equal(t, len(src), expr.Span().End)
}

func TestParseLetExpr(t *testing.T) {
	let, ok := parseExpr(t, "let x = 1, y = x + 1 in y").(*ast.Let)
	require.True(t, ok)
	require.Len(t, let.Bindings, 2)

	assert.Equal(t, "x", let.Bindings[0].Var.Name)
	assert.Equal(t, int64(1), numValue(t, let.Bindings[0].Expr))
	assert.Equal(t, "y", let.Bindings[1].Var.Name)
	asPrim(t, let.Bindings[1].Expr, ast.PrimAdd)

	assert.Equal(t, "y", let.Body.(*ast.Var).Name)
}

func TestParseLetRequiresBindings(t *testing.T) {
	_, err := parser.ParseExpression("let in 1")
	require.Error(t, err)

	// Trailing comma before 'in' is malformed.
	_, err = parser.ParseExpression("let x = 1, in x")
	require.Error(t, err)
}

func TestParseIfExpr(t *testing.T) {
	ifExpr, ok := parseExpr(t, "if a < b: a else: b").(*ast.If)
	require.True(t, ok)
	asPrim(t, ifExpr.Cond, ast.PrimLt)
	assert.Equal(t, "a", ifExpr.Thn.(*ast.Var).Name)
	assert.Equal(t, "b", ifExpr.Els.(*ast.Var).Name)
}

func TestParseIfRequiresElse(t *testing.T) {
	_, err := parser.ParseExpression("if a: b")
	require.Error(t, err)

	perr := err.(parser.ParseError)
	assert.Contains(t, perr.Expected, "'else'")
}

func TestParseFunDefsGroup(t *testing.T) {
	// Mutually recursive definitions joined by 'and' form one group.
	defs, ok := parseExpr(t, "def f(x): g(x) and def g(x): f(x) in f(1)").(*ast.FunDefs)
	require.True(t, ok)
	require.Len(t, defs.Decls, 2)

	assert.Equal(t, "f", defs.Decls[0].Name.Name)
	require.Len(t, defs.Decls[0].Params, 1)
	assert.Equal(t, "x", defs.Decls[0].Params[0].Name)

	assert.Equal(t, "g", defs.Decls[1].Name.Name)

	call, ok := defs.Body.(*ast.Call)
	require.True(t, ok)
	assert.Equal(t, "f", call.Fun)
}

func TestParseFunDefsZeroParams(t *testing.T) {
	defs := parseExpr(t, "def f(): 1 in f()").(*ast.FunDefs)
	require.Len(t, defs.Decls, 1)
	assert.Empty(t, defs.Decls[0].Params)
}

func TestParseNestedStatementForms(t *testing.T) {
	let, ok := parseExpr(t, "let x = if a: 1 else: 2 in x + 1").(*ast.Let)
	require.True(t, ok)
	assert.IsType(t, &ast.If{}, let.Bindings[0].Expr)
	asPrim(t, let.Body, ast.PrimAdd)
}

func TestParseMalformedInputs(t *testing.T) {
	inputs := []string{
		"(1 + 2",
		"1 +",
		"a[0",
		"[1, 2",
		"f(1,",
		"let x = in x",
		"let x 1 in x",
		"def f(x): x in",
		"if a: b else",
		"&& a",
	}
	for _, src := range inputs {
		expr, err := parser.ParseExpression(src)
		assert.Error(t, err, "source %q", src)
		assert.Nil(t, expr, "source %q", src)
	}
}

func TestParseErrorNamesExpectedContinuation(t *testing.T) {
	_, err := parser.ParseExpression("1 +")
	require.Error(t, err)

	perr := err.(parser.ParseError)
	assert.Equal(t, diag.CodeParseUnexpectedEOF, perr.Code)
	assert.Contains(t, perr.Expected, "expression")
}

func TestParseSpansCoverSource(t *testing.T) {
	src := "1 + 2 * 3"
	expr := parseExpr(t, src)

	assert.Equal(t, 0, expr.Span().Start)
	assert.Equal(t, len(src), expr.Span().End)
	assert.Equal(t, 1, expr.Span().Line)

	// Child spans stay inside the parent.
	ast.Walk(expr, func(n ast.Node) bool {
		assert.GreaterOrEqual(t, n.Span().Start, expr.Span().Start)
		assert.LessOrEqual(t, n.Span().End, expr.Span().End)
		return true
	})
}

func TestParseDeeplyNestedExpr(t *testing.T) {
	src := strings.Repeat("(", 50) + "1" + strings.Repeat(")", 50)
	assert.Equal(t, int64(1), numValue(t, parseExpr(t, src)))
}
