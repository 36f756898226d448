package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/malphas-lang/malphas-lang/internal/ast"
)

func TestPostfixChainCallIndexField(t *testing.T) {
	e := parseExpr(t, "a.b[0](1, 2).c")

	field, ok := e.(*ast.FieldExpr)
	require.True(t, ok)
	require.Equal(t, "c", field.Field)

	call, ok := field.Base.(*ast.CallExpr)
	require.True(t, ok)
	require.Len(t, call.Args, 2)

	index, ok := call.Callee.(*ast.IndexExpr)
	require.True(t, ok)

	innerField, ok := index.Base.(*ast.FieldExpr)
	require.True(t, ok)
	require.Equal(t, "b", innerField.Field)

	ident, ok := innerField.Base.(*ast.IdentExpr)
	require.True(t, ok)
	require.Equal(t, "a", ident.Name)
}

func TestPostfixNestedCalls(t *testing.T) {
	e := parseExpr(t, "f(g(h(1)))")
	outer, ok := e.(*ast.CallExpr)
	require.True(t, ok)
	require.Len(t, outer.Args, 1)

	middle, ok := outer.Args[0].(*ast.CallExpr)
	require.True(t, ok)

	inner, ok := middle.Args[0].(*ast.CallExpr)
	require.True(t, ok)
	require.Len(t, inner.Args, 1)
}

func TestPostfixNestedIndexing(t *testing.T) {
	e := parseExpr(t, "matrix[0][1]")
	outer, ok := e.(*ast.IndexExpr)
	require.True(t, ok)

	inner, ok := outer.Base.(*ast.IndexExpr)
	require.True(t, ok)

	ident, ok := inner.Base.(*ast.IdentExpr)
	require.True(t, ok)
	require.Equal(t, "matrix", ident.Name)
}

func TestPostfixFieldChain(t *testing.T) {
	e := parseExpr(t, "self._0._1")
	outer, ok := e.(*ast.FieldExpr)
	require.True(t, ok)
	require.Equal(t, "_1", outer.Field)

	inner, ok := outer.Base.(*ast.FieldExpr)
	require.True(t, ok)
	require.Equal(t, "_0", inner.Field)
}
