// Package types implements the checker's semantic type sum: a structural
// mirror of the AST's type expressions, closed over the primitive kinds
// the checker recognizes, plus the polymorphic integer placeholder GInt.
package types

import "strings"

// Type is any semantic type the checker produces.
type Type interface {
	String() string
	isType()
}

// PrimitiveKind enumerates the checker's scalar primitives.
type PrimitiveKind int

const (
	KindInt PrimitiveKind = iota
	KindUInt
	KindByte
	KindFloat
	KindBool
	KindStr
	KindChar
)

func (k PrimitiveKind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindUInt:
		return "UInt"
	case KindByte:
		return "Byte"
	case KindFloat:
		return "Float"
	case KindBool:
		return "Bool"
	case KindStr:
		return "Str"
	case KindChar:
		return "Char"
	default:
		return "?"
	}
}

// Primitive is one of the checker's scalar base types.
type Primitive struct{ Kind PrimitiveKind }

func (p *Primitive) String() string { return p.Kind.String() }
func (*Primitive) isType()          {}

// Package-level singletons: every caller can compare a resolved type
// against these by pointer or by Equal; there is no need to allocate a
// fresh Primitive per use site.
var (
	Int   = &Primitive{Kind: KindInt}
	UInt  = &Primitive{Kind: KindUInt}
	Byte  = &Primitive{Kind: KindByte}
	Float = &Primitive{Kind: KindFloat}
	Bool  = &Primitive{Kind: KindBool}
	Str   = &Primitive{Kind: KindStr}
	Char  = &Primitive{Kind: KindChar}
)

// GIntType is the polymorphic placeholder type of an integer literal
// before it is constrained to a concrete integer kind. There is exactly
// one instance, GInt.
type GIntType struct{}

func (*GIntType) String() string { return "GInt" }
func (*GIntType) isType()        {}

// GInt is the single GIntType instance.
var GInt = &GIntType{}

// NeverType is the bottom type. There is exactly one instance, Never.
type NeverType struct{}

func (*NeverType) String() string { return "Never" }
func (*NeverType) isType()        {}

// Never is the single NeverType instance.
var Never = &NeverType{}

// AnyType is the placeholder element type of an empty array literal and
// the type of a lambda parameter written without an annotation. Equal
// treats it as equal to every type, so it unifies with any concrete type
// once one is known. It is not part of the user-facing type sum.
type AnyType struct{}

func (*AnyType) String() string { return "Any" }
func (*AnyType) isType()        {}

// Any is the single AnyType instance.
var Any = &AnyType{}

// ArrayType is Array(Elem).
type ArrayType struct{ Elem Type }

func (t *ArrayType) String() string { return "[" + t.Elem.String() + "]" }
func (*ArrayType) isType()          {}

// TupleType is Tuple(Elems...). The zero-element tuple is the checker's
// unit type, returned by every expression kind whose value carries no
// information.
type TupleType struct{ Elems []Type }

func (t *TupleType) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (*TupleType) isType() {}

// Unit is the zero-element tuple, the result type of expressions with no
// value (let, assignment, an else-less conditional, an empty/non-trailing
// block).
var Unit = &TupleType{}

// FnType is Fn(Params...) -> Result.
type FnType struct {
	Params []Type
	Result Type
}

func (t *FnType) String() string {
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		parts[i] = p.String()
	}
	return "fn(" + strings.Join(parts, ", ") + "): " + t.Result.String()
}
func (*FnType) isType() {}

// NamedType is a user-declared aggregate (struct or enum) together with
// its resolved generic arguments.
type NamedType struct {
	Name     string
	Generics []Type
}

func (t *NamedType) String() string {
	if len(t.Generics) == 0 {
		return t.Name
	}
	parts := make([]string, len(t.Generics))
	for i, g := range t.Generics {
		parts[i] = g.String()
	}
	return t.Name + "<" + strings.Join(parts, ", ") + ">"
}
func (*NamedType) isType() {}

// IsInteger reports whether t is one of the checker's integer kinds:
// Int, UInt, Byte, or the polymorphic GInt.
func IsInteger(t Type) bool {
	if _, ok := t.(*GIntType); ok {
		return true
	}
	p, ok := t.(*Primitive)
	return ok && (p.Kind == KindInt || p.Kind == KindUInt || p.Kind == KindByte)
}

// IsNumeric reports whether t supports arithmetic and ordering: any
// integer kind, or Float.
func IsNumeric(t Type) bool {
	if IsInteger(t) {
		return true
	}
	p, ok := t.(*Primitive)
	return ok && p.Kind == KindFloat
}

// Equal reports type equality. Any equals every type and GInt equals any
// integer kind; equality is otherwise structural. This is the one place
// the sentinels' asymmetry is implemented -- callers never need to
// special-case GInt or Any when comparing types.
func Equal(a, b Type) bool {
	_, aIsAny := a.(*AnyType)
	_, bIsAny := b.(*AnyType)
	if aIsAny || bIsAny {
		return true
	}

	_, aIsGInt := a.(*GIntType)
	_, bIsGInt := b.(*GIntType)
	if aIsGInt && IsInteger(b) {
		return true
	}
	if bIsGInt && IsInteger(a) {
		return true
	}

	switch at := a.(type) {
	case *Primitive:
		bt, ok := b.(*Primitive)
		return ok && at.Kind == bt.Kind
	case *GIntType:
		_, ok := b.(*GIntType)
		return ok
	case *NeverType:
		_, ok := b.(*NeverType)
		return ok
	case *AnyType:
		_, ok := b.(*AnyType)
		return ok
	case *ArrayType:
		bt, ok := b.(*ArrayType)
		return ok && Equal(at.Elem, bt.Elem)
	case *TupleType:
		bt, ok := b.(*TupleType)
		if !ok || len(at.Elems) != len(bt.Elems) {
			return false
		}
		for i := range at.Elems {
			if !Equal(at.Elems[i], bt.Elems[i]) {
				return false
			}
		}
		return true
	case *FnType:
		bt, ok := b.(*FnType)
		if !ok || len(at.Params) != len(bt.Params) {
			return false
		}
		for i := range at.Params {
			if !Equal(at.Params[i], bt.Params[i]) {
				return false
			}
		}
		return Equal(at.Result, bt.Result)
	case *NamedType:
		bt, ok := b.(*NamedType)
		if !ok || at.Name != bt.Name || len(at.Generics) != len(bt.Generics) {
			return false
		}
		for i := range at.Generics {
			if !Equal(at.Generics[i], bt.Generics[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// PreferConcrete returns whichever of two Equal types is the more
// specific one, used to settle the result type of a binary operator when
// one side is still the polymorphic GInt.
func PreferConcrete(a, b Type) Type {
	if _, ok := a.(*GIntType); ok {
		if _, ok := b.(*GIntType); !ok {
			return b
		}
	}
	return a
}
