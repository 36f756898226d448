package ast

import "github.com/malphas-lang/malphas-lang/internal/span"

// ConstItem is `const NAME: TYPE = VALUE`.
type ConstItem struct {
	Name  string
	Type  TypeExpr
	Value Expr
	span  span.Span
}

func NewConstItem(name string, typ TypeExpr, value Expr, sp span.Span) *ConstItem {
	return &ConstItem{Name: name, Type: typ, Value: value, span: sp}
}

func (i *ConstItem) Span() span.Span { return i.span }
func (*ConstItem) itemNode()         {}

// FunctionItem is `fn NAME(PARAMS): RETURN -> BODY`, with RETURN optional.
type FunctionItem struct {
	Name       string
	Params     []Binding
	ReturnType TypeExpr // nil when omitted
	Body       Expr
	span       span.Span
}

func NewFunctionItem(name string, params []Binding, returnType TypeExpr, body Expr, sp span.Span) *FunctionItem {
	return &FunctionItem{Name: name, Params: params, ReturnType: returnType, Body: body, span: sp}
}

func (i *FunctionItem) Span() span.Span { return i.span }
func (*FunctionItem) itemNode()         {}

// FieldDecl is one `name: type` entry of a struct or struct-like enum
// variant. It is not itself a Node: it has no independent existence
// outside the declaration that owns it.
type FieldDecl struct {
	Name string
	Type TypeExpr
}

// StructItem is `struct NAME<GENERICS> { FIELDS }`.
type StructItem struct {
	Name     string
	Generics []string
	Fields   []FieldDecl
	span     span.Span
}

func NewStructItem(name string, generics []string, fields []FieldDecl, sp span.Span) *StructItem {
	return &StructItem{Name: name, Generics: generics, Fields: fields, span: sp}
}

func (i *StructItem) Span() span.Span { return i.span }
func (*StructItem) itemNode()         {}

// VariantKind distinguishes the three shapes an enum variant may take.
type VariantKind int

const (
	VariantUnit VariantKind = iota
	VariantTuple
	VariantStruct
)

func (k VariantKind) String() string {
	switch k {
	case VariantUnit:
		return "Unit"
	case VariantTuple:
		return "Tuple"
	case VariantStruct:
		return "Struct"
	default:
		return "Unknown"
	}
}

// EnumVariant is one arm of an enum declaration: a bare name (Unit), a name
// followed by a parenthesized type list (Tuple), or a name followed by a
// field list (Struct).
type EnumVariant struct {
	Name   string
	Kind   VariantKind
	Types  []TypeExpr  // populated when Kind == VariantTuple
	Fields []FieldDecl // populated when Kind == VariantStruct
	span   span.Span
}

func NewEnumVariant(name string, kind VariantKind, types []TypeExpr, fields []FieldDecl, sp span.Span) EnumVariant {
	return EnumVariant{Name: name, Kind: kind, Types: types, Fields: fields, span: sp}
}

func (v EnumVariant) Span() span.Span { return v.span }

// EnumItem is `enum NAME<GENERICS> { VARIANTS }`.
type EnumItem struct {
	Name     string
	Generics []string
	Variants []EnumVariant
	span     span.Span
}

func NewEnumItem(name string, generics []string, variants []EnumVariant, sp span.Span) *EnumItem {
	return &EnumItem{Name: name, Generics: generics, Variants: variants, span: sp}
}

func (i *EnumItem) Span() span.Span { return i.span }
func (*EnumItem) itemNode()         {}
