package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/malphas-lang/malphas-lang/internal/ast"
	"github.com/malphas-lang/malphas-lang/internal/span"
)

// dump renders a binary/unary expression tree as a fully-parenthesized
// prefix form so precedence and associativity can be asserted on the shape
// of the tree without hand-walking it in every test.
func dump(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.BinaryExpr:
		return "(" + n.Op.String() + " " + dump(n.Left) + " " + dump(n.Right) + ")"
	case *ast.UnaryExpr:
		return "(" + n.Op.String() + " " + dump(n.Operand) + ")"
	case *ast.IntLit:
		return intLitString(n)
	case *ast.IdentExpr:
		return n.Name
	default:
		return "?"
	}
}

func intLitString(n *ast.IntLit) string {
	digits := []byte{}
	v := n.Value
	if v == 0 {
		return "0"
	}
	for v > 0 {
		digits = append([]byte{byte('0' + v%10)}, digits...)
		v /= 10
	}
	return string(digits)
}

func TestPrecedenceMultiplicationBindsTighterThanAddition(t *testing.T) {
	e := parseExpr(t, "4 + 2 * 3")
	assert4plus2times3 := "(+ 4 (* 2 3))"
	require.Equal(t, assert4plus2times3, dump(e))
	require.Equal(t, span.New(0, 9), e.Span())
}

func TestPrecedenceExponentIsRightAssociative(t *testing.T) {
	e := parseExpr(t, "4 ** 2 ** 3")
	require.Equal(t, "(** 4 (** 2 3))", dump(e))
	require.Equal(t, span.New(0, 11), e.Span())
}

func TestPrecedenceAdditionIsLeftAssociative(t *testing.T) {
	e := parseExpr(t, "1 - 2 - 3")
	require.Equal(t, "(- (- 1 2) 3)", dump(e))
}

func TestPrecedenceFullTable(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1 || 2 && 3", "(|| 1 (&& 2 3))"},
		{"1 && 2 == 3", "(&& 1 (== 2 3))"},
		{"1 == 2 < 3", "(== 1 (< 2 3))"},
		{"1 < 2 | 3", "(< 1 (| 2 3))"},
		{"1 | 2 ^ 3", "(| 1 (^ 2 3))"},
		{"1 ^ 2 & 3", "(^ 1 (& 2 3))"},
		{"1 & 2 + 3", "(& 1 (+ 2 3))"},
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"1 * 2 ** 3", "(* 1 (** 2 3))"},
	}
	for _, c := range cases {
		e := parseExpr(t, c.src)
		require.Equalf(t, c.want, dump(e), "source %q", c.src)
	}
}

func TestPrecedenceUnaryBindsTighterThanAnyBinaryOperator(t *testing.T) {
	e := parseExpr(t, "-1 ** 2")
	require.Equal(t, "(** (- 1) 2)", dump(e))
}

func TestPrecedenceParenthesesOverrideBindingPower(t *testing.T) {
	e := parseExpr(t, "(4 + 2) * 3")
	require.Equal(t, "(* (+ 4 2) 3)", dump(e))
}
