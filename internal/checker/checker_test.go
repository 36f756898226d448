package checker_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malphas-lang/malphas-lang/internal/ast"
	"github.com/malphas-lang/malphas-lang/internal/checker"
	"github.com/malphas-lang/malphas-lang/internal/parser"
	"github.com/malphas-lang/malphas-lang/internal/types"
)

func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	p := parser.New(src)
	e, err := p.ParseExpression(0)
	require.NoError(t, err)
	return e
}

// TestCheckBlockMutationRoundTrip covers the worked example: a mutable
// binding annotated Int absorbs a later GInt-typed reassignment and
// surfaces as the block's trailing value.
func TestCheckBlockMutationRoundTrip(t *testing.T) {
	e := parseExpr(t, "{ let mut y: Int = 5; y = 256; y }")

	c := checker.New()
	ty, err := c.TypeOf(e)
	require.NoError(t, err)

	if diff := cmp.Diff(types.Int.String(), ty.String()); diff != "" {
		t.Fatalf("unexpected result type (-want +got):\n%s", diff)
	}
}

// TestCheckArithmeticRejectsFloatAgainstGInt covers `1 + 2.0`: GInt does not
// unify with Float, and the error reports the right-hand operand as the
// offending type.
func TestCheckArithmeticRejectsFloatAgainstGInt(t *testing.T) {
	e := parseExpr(t, "let x = 1 + 2.0")

	c := checker.New()
	_, err := c.TypeOf(e)
	require.Error(t, err)

	typeErr, ok := err.(*types.Error)
	require.True(t, ok)
	assert.Equal(t, types.MismatchedTypes, typeErr.Kind)
	assert.Equal(t, types.Float, typeErr.Found)
}

// TestCheckReassignWithoutMutRejected covers `let x = 1; x = 2`: an
// unannotated GInt binding collapses to Int with mut=false, so the
// reassignment fails as a Mutation error at the assignment target's span,
// not the whole assignment's span.
func TestCheckReassignWithoutMutRejected(t *testing.T) {
	e := parseExpr(t, "{ let x = 1; x = 2 }")

	c := checker.New()
	_, err := c.TypeOf(e)
	require.Error(t, err)

	typeErr, ok := err.(*types.Error)
	require.True(t, ok)
	assert.Equal(t, types.Mutation, typeErr.Kind)
	assert.Equal(t, "x", typeErr.Name)
	assert.Equal(t, "13..14", typeErr.Span.String())
}

func TestCheckArrayLiteralUnifiesElementTypes(t *testing.T) {
	e := parseExpr(t, "[1, 2, 3]")

	c := checker.New()
	ty, err := c.TypeOf(e)
	require.NoError(t, err)

	arr, ok := ty.(*types.ArrayType)
	require.True(t, ok)
	assert.True(t, types.Equal(arr.Elem, types.GInt))
}

func TestCheckArrayLiteralMismatchedElements(t *testing.T) {
	e := parseExpr(t, `[1, "two"]`)

	c := checker.New()
	_, err := c.TypeOf(e)
	require.Error(t, err)

	typeErr, ok := err.(*types.Error)
	require.True(t, ok)
	assert.Equal(t, types.MismatchedTypes, typeErr.Kind)
}

func TestCheckEmptyArrayLiteralTypesAsAny(t *testing.T) {
	e := parseExpr(t, "[]")

	c := checker.New()
	ty, err := c.TypeOf(e)
	require.NoError(t, err)

	arr, ok := ty.(*types.ArrayType)
	require.True(t, ok)
	assert.Equal(t, types.Any, arr.Elem)
}

func TestCheckConditionalBranchMismatch(t *testing.T) {
	e := parseExpr(t, `if (true) { 1 } else { "x" }`)

	c := checker.New()
	_, err := c.TypeOf(e)
	require.Error(t, err)

	typeErr, ok := err.(*types.Error)
	require.True(t, ok)
	assert.Equal(t, types.MismatchedBranches, typeErr.Kind)
}

func TestCheckConditionalWithoutElseIsUnit(t *testing.T) {
	e := parseExpr(t, "if (true) { 1 }")

	c := checker.New()
	ty, err := c.TypeOf(e)
	require.NoError(t, err)
	assert.True(t, types.Equal(ty, types.Unit))
}

func TestCheckConditionalRequiresBoolCondition(t *testing.T) {
	e := parseExpr(t, "if (1) { 1 } else { 2 }")

	c := checker.New()
	_, err := c.TypeOf(e)
	require.Error(t, err)

	typeErr, ok := err.(*types.Error)
	require.True(t, ok)
	assert.Equal(t, types.MismatchedTypes, typeErr.Kind)
	assert.Equal(t, types.Bool, typeErr.Expected)
}

func TestCheckUnboundIdentifier(t *testing.T) {
	e := parseExpr(t, "undefined_name")

	c := checker.New()
	_, err := c.TypeOf(e)
	require.Error(t, err)

	typeErr, ok := err.(*types.Error)
	require.True(t, ok)
	assert.Equal(t, types.UnboundIdent, typeErr.Kind)
	assert.Equal(t, "undefined_name", typeErr.Name)
}

func TestCheckLambdaInfersFnType(t *testing.T) {
	e := parseExpr(t, "|x: Int|: Int -> x")

	c := checker.New()
	ty, err := c.TypeOf(e)
	require.NoError(t, err)

	fn, ok := ty.(*types.FnType)
	require.True(t, ok)
	require.Len(t, fn.Params, 1)
	assert.True(t, types.Equal(fn.Params[0], types.Int))
	assert.True(t, types.Equal(fn.Result, types.Int))
}

func TestCheckCallWrongArgCount(t *testing.T) {
	e := parseExpr(t, "(|x: Int|: Int -> x)(1, 2)")

	c := checker.New()
	_, err := c.TypeOf(e)
	require.Error(t, err)

	typeErr, ok := err.(*types.Error)
	require.True(t, ok)
	assert.Equal(t, types.WrongArgCount, typeErr.Kind)
	assert.Equal(t, 1, typeErr.Needed)
	assert.Equal(t, 2, typeErr.Provided)
}

func TestCheckCallArgumentTypeMismatch(t *testing.T) {
	e := parseExpr(t, `(|x: Int|: Int -> x)("nope")`)

	c := checker.New()
	_, err := c.TypeOf(e)
	require.Error(t, err)

	typeErr, ok := err.(*types.Error)
	require.True(t, ok)
	assert.Equal(t, types.MismatchedTypes, typeErr.Kind)
}

func TestCheckFileRegistersForwardReferences(t *testing.T) {
	p := parser.New(`
		fn first(): Int -> second()
		fn second(): Int -> 1
	`)
	file, err := p.File()
	require.NoError(t, err)

	c := checker.New()
	require.NoError(t, c.CheckFile(file))
}

func TestCheckIndexAcceptsGIntLiteral(t *testing.T) {
	// A bare integer literal index is polymorphic GInt, which unifies with
	// the required UInt index type just as it would with Int.
	e := parseExpr(t, "[1, 2, 3][0]")

	c := checker.New()
	ty, err := c.TypeOf(e)
	require.NoError(t, err)
	assert.True(t, types.Equal(ty, types.GInt))
}

// TestCheckSeedExpressionsAgainstFile covers spec.md §6's "caller-supplied
// list of seed expressions": a file's consts/functions are registered by
// CheckFile, and a later Check call over a separate list of expressions
// can reference them.
func TestCheckSeedExpressionsAgainstFile(t *testing.T) {
	p := parser.New(`const ANSWER: Int = 42`)
	file, err := p.File()
	require.NoError(t, err)

	c := checker.New()
	require.NoError(t, c.CheckFile(file))

	results, err := c.Check([]ast.Expr{
		parseExpr(t, "ANSWER"),
		parseExpr(t, "ANSWER + 1"),
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, types.Equal(results[0], types.Int))
	assert.True(t, types.Equal(results[1], types.Int))
}

// TestCheckThreadsEnvironmentAcrossExpressions covers Check's single-clone
// threading: a let in one expression of the list is visible to a later one
// in the same call.
func TestCheckThreadsEnvironmentAcrossExpressions(t *testing.T) {
	c := checker.New()

	results, err := c.Check([]ast.Expr{
		parseExpr(t, "let z = 10"),
		parseExpr(t, "z + 1"),
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, types.Equal(results[1], types.Int))
}

func TestCheckIndexRejectsNonIntegerIndex(t *testing.T) {
	e := parseExpr(t, `[1, 2, 3]["zero"]`)

	c := checker.New()
	_, err := c.TypeOf(e)
	require.Error(t, err)

	typeErr, ok := err.(*types.Error)
	require.True(t, ok)
	assert.Equal(t, types.NotInteger, typeErr.Kind)
}
