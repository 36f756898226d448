// Package diag is the diagnostic shape shared by every pipeline stage: a
// stage, a severity, a stable code, a message, and the span the message is
// about. Unlike a full compiler's diagnostic renderer, this package never
// loads source text or prints underlined snippets -- the interface this
// front-end exposes is a single-line "kind at start..end" message, and the
// diagnostic type is shaped to produce exactly that.
package diag

import (
	"fmt"

	"github.com/malphas-lang/malphas-lang/internal/span"
)

// Stage identifies which pipeline phase produced the diagnostic.
type Stage string

const (
	StageLexer   Stage = "lexer"
	StageParser  Stage = "parser"
	StageChecker Stage = "checker"
)

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable identifier for a diagnostic, independent of its
// human-readable message.
type Code string

const (
	CodeLexError            Code = "LEX_ERROR"
	CodeParseMismatched     Code = "PARSE_MISMATCHED"
	CodeParseUnexpected     Code = "PARSE_UNEXPECTED"
	CodeParseMissing        Code = "PARSE_MISSING"
	CodeCheckUnboundIdent   Code = "CHECK_UNBOUND_IDENT"
	CodeCheckMismatched     Code = "CHECK_MISMATCHED_TYPES"
	CodeCheckBranches       Code = "CHECK_MISMATCHED_BRANCHES"
	CodeCheckWrongArgCount  Code = "CHECK_WRONG_ARG_COUNT"
	CodeCheckCantInfer      Code = "CHECK_CANT_INFER"
	CodeCheckMutation       Code = "CHECK_MUTATION"
	CodeCheckNotInteger     Code = "CHECK_NOT_INTEGER"
	CodeCheckNotNumeric     Code = "CHECK_NOT_NUMERIC"
)

// Diagnostic is a single reported problem, always tied back to a span of
// the original source.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	Span     span.Span
}

// String renders the one-line "kind at start..end" form spec.md's external
// interface section calls for: no snippet, no multi-line layout.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s at %s", d.Severity, d.Message, d.Span)
}

// New builds an error-severity diagnostic.
func New(stage Stage, code Code, message string, sp span.Span) Diagnostic {
	return Diagnostic{Stage: stage, Severity: SeverityError, Code: code, Message: message, Span: sp}
}
