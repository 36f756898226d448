package types

import (
	"fmt"

	"github.com/malphas-lang/malphas-lang/internal/span"
)

// ErrorKind closes the taxonomy of ways type checking can fail.
type ErrorKind int

const (
	UnboundIdent ErrorKind = iota
	MismatchedTypes
	MismatchedBranches
	WrongArgCount
	CantInfer
	Mutation
	NotInteger
	NotNumeric
)

// Error is the single type-checking error type. The checker aborts the
// current pass on the first error and surfaces it with its span.
type Error struct {
	Kind ErrorKind

	Name string // UnboundIdent, Mutation

	Found    Type // MismatchedTypes, NotInteger, NotNumeric
	Expected Type // MismatchedTypes

	ThenType Type // MismatchedBranches
	ElseType Type // MismatchedBranches

	Needed   int // WrongArgCount
	Provided int // WrongArgCount

	Span span.Span
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnboundIdent:
		return fmt.Sprintf("unbound identifier %q at %s", e.Name, e.Span)
	case MismatchedTypes:
		return fmt.Sprintf("mismatched types: found %s, expected %s at %s", e.Found, e.Expected, e.Span)
	case MismatchedBranches:
		return fmt.Sprintf("mismatched branches: then %s, else %s at %s", e.ThenType, e.ElseType, e.Span)
	case WrongArgCount:
		return fmt.Sprintf("wrong argument count: needed %d, provided %d at %s", e.Needed, e.Provided, e.Span)
	case CantInfer:
		return fmt.Sprintf("cannot infer type at %s", e.Span)
	case Mutation:
		return fmt.Sprintf("cannot assign to immutable binding %q at %s", e.Name, e.Span)
	case NotInteger:
		return fmt.Sprintf("expected an integer type, found %s at %s", e.Found, e.Span)
	case NotNumeric:
		return fmt.Sprintf("expected a numeric type, found %s at %s", e.Found, e.Span)
	default:
		return fmt.Sprintf("type error at %s", e.Span)
	}
}
