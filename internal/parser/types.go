package parser

import (
	"github.com/malphas-lang/malphas-lang/internal/ast"
	"github.com/malphas-lang/malphas-lang/internal/span"
	"github.com/malphas-lang/malphas-lang/internal/token"
)

// parseType dispatches on the leading token: an identifier names a type
// (with an optional `<...>` generic argument list), `[` starts an array
// element type, `(` starts a tuple, `fn` starts a function type.
func (p *Parser) parseType() (ast.TypeExpr, error) {
	switch p.peek() {
	case token.Ident:
		nameTok := p.advance()
		end := nameTok.Span.End
		var generics []ast.TypeExpr
		if p.at(token.Lt) {
			gens, sp, err := delimitedList(p, token.Lt, token.Gt, p.parseType)
			if err != nil {
				return nil, err
			}
			generics = gens
			end = sp.End
		}
		return ast.NewNamedType(p.text(nameTok.Span), generics, span.New(nameTok.Span.Start, end)), nil

	case token.LBracket:
		openTok := p.advance()
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		closeTok, err := p.consume(token.RBracket)
		if err != nil {
			return nil, err
		}
		return ast.NewArrayType(elem, span.New(openTok.Span.Start, closeTok.Span.End)), nil

	case token.LParen:
		elems, sp, err := delimitedList(p, token.LParen, token.RParen, p.parseType)
		if err != nil {
			return nil, err
		}
		return ast.NewTupleType(elems, sp), nil

	case token.Fn:
		fnTok := p.advance()
		params, _, err := delimitedList(p, token.LParen, token.RParen, p.parseType)
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.Colon); err != nil {
			return nil, err
		}
		result, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return ast.NewFnType(params, result, span.New(fnTok.Span.Start, result.Span().End)), nil

	default:
		return nil, &Error{Kind: Unexpected, Found: p.peek(), Context: "type", Span: p.tok.Span}
	}
}
