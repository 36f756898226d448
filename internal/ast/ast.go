// Package ast defines the syntax tree produced by the parser: items, type
// expressions, and the expression sum. Every node is a value paired with
// the span of source text it was parsed from; span composition (the union
// of a node's children) happens once, at construction time, in the parser.
package ast

import "github.com/malphas-lang/malphas-lang/internal/span"

// Node is the capability every syntax tree node provides.
type Node interface {
	Span() span.Span
}

// Item is a top-level declaration: Const, Function, Struct, or Enum.
type Item interface {
	Node
	itemNode()
}

// TypeExpr is a type annotation as written in source: a named type,
// array-of-T, tuple-of-Ts, or function type.
type TypeExpr interface {
	Node
	typeNode()
}

// Expr is the expression sum described in §3 of the language's data model.
type Expr interface {
	Node
	exprNode()
}

// Binding records a parameter or let-introduced name: its mutability, its
// identifier, and an optional type annotation. Only one shape of binding
// exists, so it is a struct rather than a sum.
type Binding struct {
	Mut  bool
	Name string
	Type TypeExpr // nil when no annotation was written
	span span.Span
}

// NewBinding constructs a binding with an explicit span.
func NewBinding(mut bool, name string, typ TypeExpr, sp span.Span) Binding {
	return Binding{Mut: mut, Name: name, Type: typ, span: sp}
}

func (b Binding) Span() span.Span { return b.span }
