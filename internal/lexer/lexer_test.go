package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/malphas-lang/malphas-lang/internal/lexer"
	"github.com/malphas-lang/malphas-lang/internal/span"
	"github.com/malphas-lang/malphas-lang/internal/token"
)

func collect(src string) []token.Token {
	lx := lexer.New(src)
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.Eof {
			return out
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func spans(toks []token.Token) []span.Span {
	ss := make([]span.Span, len(toks))
	for i, t := range toks {
		ss[i] = t.Span
	}
	return ss
}

func TestLexPunctuation(t *testing.T) {
	toks := collect("+-(.):")

	assert.Equal(t, []token.Kind{
		token.Plus, token.Minus, token.LParen, token.Dot, token.RParen, token.Colon, token.Eof,
	}, kinds(toks))

	assert.Equal(t, []span.Span{
		span.New(0, 1), span.New(1, 2), span.New(2, 3), span.New(3, 4),
		span.New(4, 5), span.New(5, 6), span.New(6, 6),
	}, spans(toks))
}

func TestLexInvalidRunCollapsesToOneErrorToken(t *testing.T) {
	toks := collect("{$$$$$$$+")

	assert.Equal(t, []token.Kind{token.LBrace, token.Error, token.Plus, token.Eof}, kinds(toks))
	assert.Equal(t, []span.Span{
		span.New(0, 1), span.New(1, 8), span.New(8, 9), span.New(9, 9),
	}, spans(toks))
}

func TestLexOperatorsAndUnderscore(t *testing.T) {
	toks := collect("&&=<=_!=||**->")

	assert.Equal(t, []token.Kind{
		token.And, token.Eq, token.Leq, token.Underscore, token.Neq,
		token.Or, token.Exponent, token.Arrow, token.Eof,
	}, kinds(toks))

	assert.Equal(t, []span.Span{
		span.New(0, 2), span.New(2, 3), span.New(3, 5), span.New(5, 6),
		span.New(6, 8), span.New(8, 10), span.New(10, 12), span.New(12, 14), span.New(14, 14),
	}, spans(toks))
}

func TestLexKeywordsVsIdentifiers(t *testing.T) {
	toks := collect("let mutable mut x")

	assert.Equal(t, []token.Kind{
		token.Let, token.Ident, token.Mut, token.Ident, token.Eof,
	}, kinds(toks))
}

func TestLexIntegerLiteral(t *testing.T) {
	toks := collect("123")
	assert.Equal(t, token.Int, toks[0].Kind)
	assert.Equal(t, span.New(0, 3), toks[0].Span)
}

func TestLexFloatLiterals(t *testing.T) {
	cases := []string{"1.5", "1.", ".5", "1e10", "1.5e-3", "2E+4"}
	for _, src := range cases {
		toks := collect(src)
		assert.Equalf(t, token.Float, toks[0].Kind, "source %q", src)
		assert.Equalf(t, len(src), toks[0].Span.End, "source %q consumed fully", src)
	}
}

func TestLexExponentWithoutDigitsIsNotConsumed(t *testing.T) {
	// "1e" has no digit after the e, so the exponent is rolled back and the
	// integer literal ends at the 'e'; the 'e' itself then lexes as an
	// identifier.
	toks := collect("1e")
	assert.Equal(t, []token.Kind{token.Int, token.Ident, token.Eof}, kinds(toks))
	assert.Equal(t, span.New(0, 1), toks[0].Span)
	assert.Equal(t, span.New(1, 2), toks[1].Span)
}

func TestLexHexAndBinaryAreNotSpecialCased(t *testing.T) {
	// There is no hex/binary literal grammar: "0x1F" lexes as the integer
	// "0", followed by an identifier "x1F".
	toks := collect("0x1F")
	assert.Equal(t, []token.Kind{token.Int, token.Ident, token.Eof}, kinds(toks))
}

func TestLexStringLiteral(t *testing.T) {
	toks := collect(`"hello, world"`)
	assert.Equal(t, token.String, toks[0].Kind)
	assert.Equal(t, span.New(0, 14), toks[0].Span)
}

func TestLexStringWithEscapedQuote(t *testing.T) {
	toks := collect(`"a\"b" rest`)
	assert.Equal(t, []token.Kind{token.String, token.Ident, token.Eof}, kinds(toks))
	assert.Equal(t, span.New(0, 6), toks[0].Span)
}

func TestLexUnterminatedStringIsOneErrorToken(t *testing.T) {
	toks := collect(`"abc`)
	assert.Equal(t, []token.Kind{token.Error, token.Eof}, kinds(toks))
	assert.Equal(t, span.New(0, 4), toks[0].Span)
}

func TestLexCharLiteral(t *testing.T) {
	toks := collect(`'a' '\n' '\''`)
	assert.Equal(t, []token.Kind{token.Char, token.Char, token.Char, token.Eof}, kinds(toks))
	assert.Equal(t, span.New(0, 3), toks[0].Span)
	assert.Equal(t, span.New(4, 8), toks[1].Span)
	assert.Equal(t, span.New(9, 13), toks[2].Span)
}

func TestLexEmptyCharLiteralIsError(t *testing.T) {
	toks := collect(`''`)
	assert.Equal(t, []token.Kind{token.Error, token.Eof}, kinds(toks))
}

func TestLexOverlongCharLiteralIsError(t *testing.T) {
	toks := collect(`'ab'`)
	assert.Equal(t, []token.Kind{token.Error, token.Eof}, kinds(toks))
	assert.Equal(t, span.New(0, 4), toks[0].Span)
}

func TestLexLineCommentIsSkipped(t *testing.T) {
	toks := collect("1 // a comment\n2")
	assert.Equal(t, []token.Kind{token.Int, token.Int, token.Eof}, kinds(toks))
	assert.Equal(t, span.New(0, 1), toks[0].Span)
	assert.Equal(t, span.New(15, 16), toks[1].Span)
}

func TestLexIsExhaustedAfterEof(t *testing.T) {
	lx := lexer.New("1")
	assert.Equal(t, token.Int, lx.Next().Kind)
	first := lx.Next()
	assert.Equal(t, token.Eof, first.Kind)
	second := lx.Next()
	assert.Equal(t, token.Eof, second.Kind)
	assert.Equal(t, first.Span, second.Span)
}

func TestLexUnderscorePrefixedIdentifier(t *testing.T) {
	toks := collect("_0 _foo _")
	assert.Equal(t, []token.Kind{token.Ident, token.Ident, token.Underscore, token.Eof}, kinds(toks))
}
