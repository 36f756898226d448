// Package span defines the half-open byte interval used to locate every
// token, AST node, and diagnostic back in the original source text.
package span

import "fmt"

// Span is a half-open byte interval [Start, End) into a source text.
type Span struct {
	Start int
	End   int
}

// New returns the span [start, end).
func New(start, end int) Span {
	return Span{Start: start, End: end}
}

// String renders the span the way diagnostics quote it: "start..end".
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Contains reports whether the byte offset p falls inside the span.
func (s Span) Contains(p int) bool {
	return p >= s.Start && p < s.End
}

// Merge returns the tightest span covering both a and b: the minimum start
// and the maximum end. The parser uses this to build a node's span from
// the spans of two of its children (e.g. an assignment's target and its
// value) wherever it isn't already holding the raw start/end offsets of
// the enclosing tokens.
func Merge(a, b Span) Span {
	m := a
	if b.Start < m.Start {
		m.Start = b.Start
	}
	if b.End > m.End {
		m.End = b.End
	}
	return m
}
