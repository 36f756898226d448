// Package token defines the closed set of lexical token kinds produced by
// the lexer and consumed by the parser.
package token

import "github.com/malphas-lang/malphas-lang/internal/span"

// Kind identifies the lexical category of a token. Tokens carry no interned
// payload; the parser re-reads the source text from the token's span to
// materialize identifier names, string contents, and numeric values.
type Kind int

const (
	Error Kind = iota
	Eof

	Ident
	Int
	Float
	String
	Char

	// Delimiters
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket

	// Single-character operators
	Eq // =
	Amp
	Pipe
	Bang
	Caret
	Lt
	Gt
	Plus
	Minus
	Star
	Slash
	Dot
	Comma
	Colon
	Semicolon
	Underscore

	// Multi-character operators
	Arrow    // ->
	EqEq     // ==
	Neq      // !=
	Leq      // <=
	Geq      // >=
	Exponent // **
	And      // &&
	Or       // ||

	// Keywords
	Let
	Mut
	Const
	Fn
	Struct
	Enum
	If
	Else
	Match
	True
	False
)

var names = map[Kind]string{
	Error: "Error", Eof: "Eof",
	Ident: "Ident", Int: "Int", Float: "Float", String: "String", Char: "Char",
	LParen: "LParen", RParen: "RParen", LBrace: "LBrace", RBrace: "RBrace",
	LBracket: "LBracket", RBracket: "RBracket",
	Eq: "Eq", Amp: "Amp", Pipe: "Pipe", Bang: "Bang", Caret: "Caret",
	Lt: "Lt", Gt: "Gt", Plus: "Plus", Minus: "Minus", Star: "Star", Slash: "Slash",
	Dot: "Dot", Comma: "Comma", Colon: "Colon", Semicolon: "Semicolon", Underscore: "Underscore",
	Arrow: "Arrow", EqEq: "EqEq", Neq: "Neq", Leq: "Leq", Geq: "Geq", Exponent: "Exponent",
	And: "And", Or: "Or",
	Let: "Let", Mut: "Mut", Const: "Const", Fn: "Fn", Struct: "Struct", Enum: "Enum",
	If: "If", Else: "Else", Match: "Match", True: "True", False: "False",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "Unknown"
}

// Keywords maps reserved identifier text to its keyword kind. An identifier
// lexeme is only promoted to a keyword when it matches one of these exactly.
var Keywords = map[string]Kind{
	"let":    Let,
	"mut":    Mut,
	"const":  Const,
	"fn":     Fn,
	"struct": Struct,
	"enum":   Enum,
	"if":     If,
	"else":   Else,
	"match":  Match,
	"true":   True,
	"false":  False,
}

// Token is a lexical token together with the span of source text it was
// recognized from.
type Token struct {
	Kind Kind
	Span span.Span
}
