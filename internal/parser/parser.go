package parser

import (
	"strconv"
	"strings"

	"github.com/malphas-lang/malphas-lang/internal/ast"
	"github.com/malphas-lang/malphas-lang/internal/lexer"
	"github.com/malphas-lang/malphas-lang/internal/span"
	"github.com/malphas-lang/malphas-lang/internal/token"
)

// Parser borrows the source text and a peekable token stream (a single
// token of lookahead is kept in tok) and builds a spanned AST from it.
type Parser struct {
	src string
	lx  *lexer.Lexer
	tok token.Token
}

// New returns a parser positioned at the first token of src.
func New(src string) *Parser {
	p := &Parser{src: src, lx: lexer.New(src)}
	p.tok = p.lx.Next()
	return p
}

func (p *Parser) text(sp span.Span) string { return p.src[sp.Start:sp.End] }

func (p *Parser) peek() token.Kind { return p.tok.Kind }
func (p *Parser) at(k token.Kind) bool { return p.tok.Kind == k }

// advance returns the current lookahead token and pulls the next one from
// the lexer.
func (p *Parser) advance() token.Token {
	t := p.tok
	p.tok = p.lx.Next()
	return t
}

// consumeAt advances and returns true only if the lookahead is k.
func (p *Parser) consumeAt(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// consume advances unconditionally; if the consumed token isn't k, or the
// stream was already exhausted, it returns the corresponding error.
func (p *Parser) consume(k token.Kind) (token.Token, error) {
	if p.tok.Kind == token.Eof && k != token.Eof {
		return p.tok, &Error{Kind: Missing, Expected: k, Span: p.tok.Span}
	}
	t := p.advance()
	if t.Kind != k {
		return t, &Error{Kind: Mismatched, Expected: k, Found: t.Kind, Span: t.Span}
	}
	return t, nil
}

// delimitedList consumes `open item (, item)* ,? close`, permitting a
// trailing comma, and returns the items plus the span from open to close.
func delimitedList[T any](p *Parser, open, close token.Kind, parseItem func() (T, error)) ([]T, span.Span, error) {
	openTok, err := p.consume(open)
	if err != nil {
		return nil, span.Span{}, err
	}
	var items []T
	for !p.at(close) {
		item, err := parseItem()
		if err != nil {
			return nil, span.Span{}, err
		}
		items = append(items, item)
		if !p.consumeAt(token.Comma) {
			break
		}
	}
	closeTok, err := p.consume(close)
	if err != nil {
		return nil, span.Span{}, err
	}
	return items, span.New(openTok.Span.Start, closeTok.Span.End), nil
}

// File parses a whole source file: a sequence of items up to end-of-input.
func (p *Parser) File() ([]ast.Item, error) {
	var items []ast.Item
	for !p.at(token.Eof) {
		item, err := p.parseItem()
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
	return items, nil
}

// terminators are the tokens that legally end an expression without being
// consumed by it: end of input, the closing side of every bracket form, a
// separator, or the start of the next item/branch.
var terminators = map[token.Kind]bool{
	token.Eof: true, token.RParen: true, token.RBrace: true, token.RBracket: true,
	token.Comma: true, token.Semicolon: true,
	token.Else: true, token.Fn: true, token.Const: true, token.Struct: true, token.Enum: true,
}

type opInfo struct {
	op       ast.BinaryOp
	lbp, rbp int
}

// binaryOps is the binding-power table: each operator's (left, right)
// power decides how tightly it binds against its neighbors. `**` is the
// only right-associative operator, expressed as rbp < lbp.
var binaryOps = map[token.Kind]opInfo{
	token.Or:       {ast.LogicalOr, 3, 4},
	token.And:      {ast.LogicalAnd, 5, 6},
	token.EqEq:     {ast.Eq, 7, 8},
	token.Neq:      {ast.Neq, 7, 8},
	token.Lt:       {ast.Lt, 9, 10},
	token.Gt:       {ast.Gt, 9, 10},
	token.Leq:      {ast.Leq, 9, 10},
	token.Geq:      {ast.Geq, 9, 10},
	token.Pipe:     {ast.BitOr, 11, 12},
	token.Caret:    {ast.LogicalXor, 13, 14},
	token.Amp:      {ast.BitAnd, 15, 16},
	token.Plus:     {ast.Add, 17, 18},
	token.Minus:    {ast.Sub, 17, 18},
	token.Star:     {ast.Mul, 19, 20},
	token.Slash:    {ast.Div, 19, 20},
	token.Exponent: {ast.Exp, 22, 21},
}

// unaryRBP is the right binding power unary `-`/`!` parse their operand at.
const unaryRBP = 51

// ParseExpression parses a single expression, consuming infix/postfix
// operators whose left binding power is at least minBP. This is the
// Pratt loop: prefix builds the initial left-hand side, then the loop
// folds in call/index/field postfixes and binary operators until a
// terminator appears or an operator's left binding power is too low.
func (p *Parser) ParseExpression(minBP int) (ast.Expr, error) {
	lhs, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		kind := p.peek()

		switch kind {
		case token.LBracket:
			lhs, err = p.parsePostfixIndex(lhs)
			if err != nil {
				return nil, err
			}
			continue
		case token.Dot:
			lhs, err = p.parsePostfixField(lhs)
			if err != nil {
				return nil, err
			}
			continue
		case token.LParen:
			lhs, err = p.parsePostfixCall(lhs)
			if err != nil {
				return nil, err
			}
			continue
		case token.Eq:
			if ident, ok := lhs.(*ast.IdentExpr); ok {
				p.advance()
				value, err := p.ParseExpression(0)
				if err != nil {
					return nil, err
				}
				return ast.NewAssignExpr(ident.Name, ident.Span(), value, span.Merge(ident.Span(), value.Span())), nil
			}
		}

		if info, ok := binaryOps[kind]; ok {
			if info.lbp < minBP {
				break
			}
			p.advance()
			rhs, err := p.ParseExpression(info.rbp)
			if err != nil {
				return nil, err
			}
			lhs = ast.NewBinaryExpr(info.op, lhs, rhs, span.Merge(lhs.Span(), rhs.Span()))
			continue
		}

		if terminators[kind] {
			break
		}
		return nil, &Error{Kind: Unexpected, Found: kind, Context: "end of expression", Span: p.tok.Span}
	}

	return lhs, nil
}

func (p *Parser) parsePrefix() (ast.Expr, error) {
	switch p.peek() {
	case token.LParen:
		return p.parseParenOrTuple()
	case token.Int:
		return p.parseIntLit()
	case token.Float:
		return p.parseFloatLit()
	case token.String:
		return p.parseStringLit()
	case token.Char:
		return p.parseCharLit()
	case token.True, token.False:
		return p.parseBoolLit()
	case token.Ident:
		tok := p.advance()
		return ast.NewIdentExpr(p.text(tok.Span), tok.Span), nil
	case token.LBracket:
		return p.parseArrayLit()
	case token.If:
		return p.parseIf()
	case token.Minus:
		tok := p.advance()
		operand, err := p.ParseExpression(unaryRBP)
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpr(ast.Neg, operand, span.New(tok.Span.Start, operand.Span().End)), nil
	case token.Bang:
		tok := p.advance()
		operand, err := p.ParseExpression(unaryRBP)
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpr(ast.Not, operand, span.New(tok.Span.Start, operand.Span().End)), nil
	case token.Let:
		return p.parseLet()
	case token.Pipe:
		return p.parseLambda()
	case token.LBrace:
		return p.parseBlock()
	default:
		return nil, &Error{Kind: Unexpected, Found: p.peek(), Context: "start of expression", Span: p.tok.Span}
	}
}

// parseParenOrTuple handles `(`: either a grouped expression, an empty
// unit tuple `()`, or a tuple literal once a comma is seen -- a tuple
// requires at least one comma, so `(x)` groups while `(x,)` is a
// singleton tuple.
func (p *Parser) parseParenOrTuple() (ast.Expr, error) {
	openTok := p.advance()

	if p.at(token.RParen) {
		closeTok := p.advance()
		return ast.NewTupleLit(nil, span.New(openTok.Span.Start, closeTok.Span.End)), nil
	}

	first, err := p.ParseExpression(0)
	if err != nil {
		return nil, err
	}

	if !p.at(token.Comma) {
		if _, err := p.consume(token.RParen); err != nil {
			return nil, err
		}
		return first, nil
	}

	elems := []ast.Expr{first}
	for p.consumeAt(token.Comma) {
		if p.at(token.RParen) {
			break
		}
		next, err := p.ParseExpression(0)
		if err != nil {
			return nil, err
		}
		elems = append(elems, next)
	}
	closeTok, err := p.consume(token.RParen)
	if err != nil {
		return nil, err
	}
	return ast.NewTupleLit(elems, span.New(openTok.Span.Start, closeTok.Span.End)), nil
}

func (p *Parser) parseIntLit() (ast.Expr, error) {
	tok := p.advance()
	text := p.text(tok.Span)
	value, convErr := strconv.ParseUint(text, 10, 64)
	if convErr != nil {
		return nil, &Error{Kind: Unexpected, Found: tok.Kind, Context: "integer literal in range", Span: tok.Span}
	}
	return ast.NewIntLit(value, tok.Span), nil
}

func (p *Parser) parseFloatLit() (ast.Expr, error) {
	tok := p.advance()
	value, convErr := strconv.ParseFloat(p.text(tok.Span), 64)
	if convErr != nil {
		return nil, &Error{Kind: Unexpected, Found: tok.Kind, Context: "float literal", Span: tok.Span}
	}
	return ast.NewFloatLit(value, tok.Span), nil
}

func (p *Parser) parseStringLit() (ast.Expr, error) {
	tok := p.advance()
	raw := p.text(tok.Span)
	decoded := decodeEscapes(raw[1:len(raw)-1], '"')
	return ast.NewStringLit(decoded, tok.Span), nil
}

func (p *Parser) parseCharLit() (ast.Expr, error) {
	tok := p.advance()
	raw := p.text(tok.Span)
	decoded := decodeEscapes(raw[1:len(raw)-1], '\'')
	if len(decoded) != 1 {
		return nil, &Error{Kind: Unexpected, Found: tok.Kind, Context: "single-character literal", Span: tok.Span}
	}
	return ast.NewCharLit(decoded[0], tok.Span), nil
}

// decodeEscapes decodes `\n`, `\\`, and a backslash-escaped quote (the
// lexer guarantees the literal is well-formed to its own delimiter, so no
// error path is needed here). Any other escaped byte passes through as
// itself.
func decodeEscapes(s string, quote byte) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case '\\':
			b.WriteByte('\\')
		case quote:
			b.WriteByte(quote)
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func (p *Parser) parseBoolLit() (ast.Expr, error) {
	tok := p.advance()
	return ast.NewBoolLit(tok.Kind == token.True, tok.Span), nil
}

func (p *Parser) parseArrayLit() (ast.Expr, error) {
	elems, sp, err := delimitedList(p, token.LBracket, token.RBracket, func() (ast.Expr, error) {
		return p.ParseExpression(0)
	})
	if err != nil {
		return nil, err
	}
	return ast.NewArrayLit(elems, sp), nil
}

func (p *Parser) parseIf() (ast.Expr, error) {
	ifTok := p.advance()
	if _, err := p.consume(token.LParen); err != nil {
		return nil, err
	}
	cond, err := p.ParseExpression(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RParen); err != nil {
		return nil, err
	}
	then, err := p.ParseExpression(0)
	if err != nil {
		return nil, err
	}
	end := then.Span().End
	var elseExpr ast.Expr
	if p.consumeAt(token.Else) {
		elseExpr, err = p.ParseExpression(0)
		if err != nil {
			return nil, err
		}
		end = elseExpr.Span().End
	}
	return ast.NewIfExpr(cond, then, elseExpr, span.New(ifTok.Span.Start, end)), nil
}

func (p *Parser) parseLet() (ast.Expr, error) {
	letTok := p.advance()
	binding, err := p.parseBinding()
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
	return ast.NewLetExpr(binding, value, span.New(letTok.Span.Start, value.Span().End)), nil
}

func (p *Parser) parseLambda() (ast.Expr, error) {
	params, sp, err := delimitedList(p, token.Pipe, token.Pipe, p.parseBinding)
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
	return ast.NewLambdaExpr(params, returnType, body, span.New(sp.Start, body.Span().End)), nil
}

func (p *Parser) parseBlock() (ast.Expr, error) {
	openTok := p.advance()
	var exprs []ast.Expr
	trailing := false

	for !p.at(token.RBrace) && !p.at(token.Eof) {
		e, err := p.ParseExpression(0)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)

		if p.consumeAt(token.Semicolon) {
			if p.at(token.RBrace) {
				trailing = false
				break
			}
			continue
		}
		trailing = true
		break
	}

	closeTok, err := p.consume(token.RBrace)
	if err != nil {
		return nil, err
	}
	return ast.NewBlockExpr(exprs, trailing, span.New(openTok.Span.Start, closeTok.Span.End)), nil
}

func (p *Parser) parsePostfixIndex(base ast.Expr) (ast.Expr, error) {
	p.advance()
	idx, err := p.ParseExpression(0)
	if err != nil {
		return nil, err
	}
	closeTok, err := p.consume(token.RBracket)
	if err != nil {
		return nil, err
	}
	return ast.NewIndexExpr(base, idx, span.New(base.Span().Start, closeTok.Span.End)), nil
}

func (p *Parser) parsePostfixField(base ast.Expr) (ast.Expr, error) {
	p.advance()
	nameTok, err := p.consume(token.Ident)
	if err != nil {
		return nil, err
	}
	name := p.text(nameTok.Span)
	return ast.NewFieldExpr(base, name, nameTok.Span, span.New(base.Span().Start, nameTok.Span.End)), nil
}

func (p *Parser) parsePostfixCall(callee ast.Expr) (ast.Expr, error) {
	args, sp, err := delimitedList(p, token.LParen, token.RParen, func() (ast.Expr, error) {
		return p.ParseExpression(0)
	})
	if err != nil {
		return nil, err
	}
	return ast.NewCallExpr(callee, args, span.New(callee.Span().Start, sp.End)), nil
}

// parseBinding parses an optional `mut`, an identifier, and an optional
// `: type` annotation.
func (p *Parser) parseBinding() (ast.Binding, error) {
	start := p.tok.Span.Start
	mut := p.consumeAt(token.Mut)
	nameTok, err := p.consume(token.Ident)
	if err != nil {
		return ast.Binding{}, err
	}
	name := p.text(nameTok.Span)
	end := nameTok.Span.End

	var typ ast.TypeExpr
	if p.consumeAt(token.Colon) {
		typ, err = p.parseType()
		if err != nil {
			return ast.Binding{}, err
		}
		end = typ.Span().End
	}
	return ast.NewBinding(mut, name, typ, span.New(start, end)), nil
}
