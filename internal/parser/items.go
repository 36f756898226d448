package parser

import (
	"github.com/malphas-lang/malphas-lang/internal/ast"
	"github.com/malphas-lang/malphas-lang/internal/span"
	"github.com/malphas-lang/malphas-lang/internal/token"
)

func (p *Parser) parseItem() (ast.Item, error) {
	switch p.peek() {
	case token.Const:
		return p.parseConstItem()
	case token.Fn:
		return p.parseFunctionItem()
	case token.Struct:
		return p.parseStructItem()
	case token.Enum:
		return p.parseEnumItem()
	default:
		return nil, &Error{Kind: Unexpected, Found: p.peek(), Context: "start of item", Span: p.tok.Span}
	}
}

func (p *Parser) parseConstItem() (ast.Item, error) {
	constTok := p.advance()
	nameTok, err := p.consume(token.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Colon); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Eq); err != nil {
		return nil, err
	}
	value, err := p.ParseExpression(0)
	if err != nil {
		return nil, err
	}
	return ast.NewConstItem(p.text(nameTok.Span), typ, value, span.New(constTok.Span.Start, value.Span().End)), nil
}

func (p *Parser) parseFunctionItem() (ast.Item, error) {
	fnTok := p.advance()
	nameTok, err := p.consume(token.Ident)
	if err != nil {
		return nil, err
	}
	params, _, err := delimitedList(p, token.LParen, token.RParen, p.parseBinding)
	if err != nil {
		return nil, err
	}
	var returnType ast.TypeExpr
	if p.consumeAt(token.Colon) {
		returnType, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.Arrow); err != nil {
		return nil, err
	}
	body, err := p.ParseExpression(0)
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionItem(p.text(nameTok.Span), params, returnType, body, span.New(fnTok.Span.Start, body.Span().End)), nil
}

// parseOptionalGenericParams parses an optional `<name, name, ...>` list,
// reusing `<`/`>` the way the language's comparison operators spell them.
func (p *Parser) parseOptionalGenericParams() ([]string, error) {
	if !p.at(token.Lt) {
		return nil, nil
	}
	names, _, err := delimitedList(p, token.Lt, token.Gt, func() (string, error) {
		t, err := p.consume(token.Ident)
		if err != nil {
			return "", err
		}
		return p.text(t.Span), nil
	})
	return names, err
}

func (p *Parser) parseFieldDecl() (ast.FieldDecl, error) {
	nameTok, err := p.consume(token.Ident)
	if err != nil {
		return ast.FieldDecl{}, err
	}
	if _, err := p.consume(token.Colon); err != nil {
		return ast.FieldDecl{}, err
	}
	typ, err := p.parseType()
	if err != nil {
		return ast.FieldDecl{}, err
	}
	return ast.FieldDecl{Name: p.text(nameTok.Span), Type: typ}, nil
}

func (p *Parser) parseStructItem() (ast.Item, error) {
	structTok := p.advance()
	nameTok, err := p.consume(token.Ident)
	if err != nil {
		return nil, err
	}
	generics, err := p.parseOptionalGenericParams()
	if err != nil {
		return nil, err
	}
	fields, sp, err := delimitedList(p, token.LBrace, token.RBrace, p.parseFieldDecl)
	if err != nil {
		return nil, err
	}
	return ast.NewStructItem(p.text(nameTok.Span), generics, fields, span.New(structTok.Span.Start, sp.End)), nil
}

func (p *Parser) parseEnumVariant() (ast.EnumVariant, error) {
	nameTok, err := p.consume(token.Ident)
	if err != nil {
		return ast.EnumVariant{}, err
	}
	name := p.text(nameTok.Span)

	switch p.peek() {
	case token.LBrace:
		fields, sp, err := delimitedList(p, token.LBrace, token.RBrace, p.parseFieldDecl)
		if err != nil {
			return ast.EnumVariant{}, err
		}
		return ast.NewEnumVariant(name, ast.VariantStruct, nil, fields, span.New(nameTok.Span.Start, sp.End)), nil
	case token.LParen:
		types, sp, err := delimitedList(p, token.LParen, token.RParen, p.parseType)
		if err != nil {
			return ast.EnumVariant{}, err
		}
		return ast.NewEnumVariant(name, ast.VariantTuple, types, nil, span.New(nameTok.Span.Start, sp.End)), nil
	default:
		return ast.NewEnumVariant(name, ast.VariantUnit, nil, nil, nameTok.Span), nil
	}
}

func (p *Parser) parseEnumItem() (ast.Item, error) {
	enumTok := p.advance()
	nameTok, err := p.consume(token.Ident)
	if err != nil {
		return nil, err
	}
	generics, err := p.parseOptionalGenericParams()
	if err != nil {
		return nil, err
	}
	variants, sp, err := delimitedList(p, token.LBrace, token.RBrace, p.parseEnumVariant)
	if err != nil {
		return nil, err
	}
	return ast.NewEnumItem(p.text(nameTok.Span), generics, variants, span.New(enumTok.Span.Start, sp.End)), nil
}
