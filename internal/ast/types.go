package ast

import "github.com/malphas-lang/malphas-lang/internal/span"

// NamedType is an identifier optionally followed by a `<...>` generic
// argument list, e.g. `Int`, `Option<T>`, `Map<Str, Int>`.
type NamedType struct {
	Name     string
	Generics []TypeExpr
	span     span.Span
}

func NewNamedType(name string, generics []TypeExpr, sp span.Span) *NamedType {
	return &NamedType{Name: name, Generics: generics, span: sp}
}

func (t *NamedType) Span() span.Span { return t.span }
func (*NamedType) typeNode()         {}

// ArrayType is `[T]`.
type ArrayType struct {
	Elem TypeExpr
	span span.Span
}

func NewArrayType(elem TypeExpr, sp span.Span) *ArrayType {
	return &ArrayType{Elem: elem, span: sp}
}

func (t *ArrayType) Span() span.Span { return t.span }
func (*ArrayType) typeNode()         {}

// TupleType is `(T1, T2, ...)`.
type TupleType struct {
	Elems []TypeExpr
	span  span.Span
}

func NewTupleType(elems []TypeExpr, sp span.Span) *TupleType {
	return &TupleType{Elems: elems, span: sp}
}

func (t *TupleType) Span() span.Span { return t.span }
func (*TupleType) typeNode()         {}

// FnType is `fn(T1, T2): R`.
type FnType struct {
	Params []TypeExpr
	Result TypeExpr
	span   span.Span
}

func NewFnType(params []TypeExpr, result TypeExpr, sp span.Span) *FnType {
	return &FnType{Params: params, Result: result, span: sp}
}

func (t *FnType) Span() span.Span { return t.span }
func (*FnType) typeNode()         {}
