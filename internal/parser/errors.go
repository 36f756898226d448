// Package parser implements a recursive-descent parser with a Pratt-style
// expression subroutine over the token stream produced by internal/lexer.
package parser

import (
	"fmt"

	"github.com/malphas-lang/malphas-lang/internal/span"
	"github.com/malphas-lang/malphas-lang/internal/token"
)

// ErrorKind closes the taxonomy of ways a parse can fail.
type ErrorKind int

const (
	// Mismatched: a specific token kind was required and a different one
	// appeared.
	Mismatched ErrorKind = iota
	// Unexpected: no grammar rule matches at this position.
	Unexpected
	// Missing: the token stream ended while a token was required.
	Missing
)

// Error is the single parse error type. The parser fails on the first
// unrecoverable error and returns it with a span; there is no recovery.
type Error struct {
	Kind     ErrorKind
	Expected token.Kind
	Found    token.Kind
	Context  string
	Span     span.Span
}

func (e *Error) Error() string {
	switch e.Kind {
	case Mismatched:
		return fmt.Sprintf("expected %s, found %s at %s", e.Expected, e.Found, e.Span)
	case Missing:
		return fmt.Sprintf("unexpected end of input at %s", e.Span)
	default:
		if e.Context != "" {
			return fmt.Sprintf("unexpected %s, expected %s at %s", e.Found, e.Context, e.Span)
		}
		return fmt.Sprintf("unexpected %s at %s", e.Found, e.Span)
	}
}
