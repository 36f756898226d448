package diag

import (
	"fmt"
	"strings"

	"github.com/malphas-lang/malphas-lang/internal/parser"
	"github.com/malphas-lang/malphas-lang/internal/types"
)

// FromParseError converts a parser error into a diagnostic. The parser's
// closed error taxonomy maps one-for-one onto diagnostic codes.
func FromParseError(err *parser.Error) Diagnostic {
	var code Code
	var message string
	switch err.Kind {
	case parser.Mismatched:
		code = CodeParseMismatched
		message = fmt.Sprintf("expected %s, found %s", err.Expected, err.Found)
	case parser.Missing:
		code = CodeParseMissing
		message = fmt.Sprintf("missing %s", err.Expected)
	default:
		code = CodeParseUnexpected
		message = fmt.Sprintf("unexpected %s", err.Found)
	}
	if err.Context != "" {
		message = fmt.Sprintf("%s (%s)", message, err.Context)
	}
	return New(StageParser, code, message, err.Span)
}

// FromTypeError converts a checker error into a diagnostic.
func FromTypeError(err *types.Error) Diagnostic {
	var code Code
	switch err.Kind {
	case types.UnboundIdent:
		code = CodeCheckUnboundIdent
	case types.MismatchedTypes:
		code = CodeCheckMismatched
	case types.MismatchedBranches:
		code = CodeCheckBranches
	case types.WrongArgCount:
		code = CodeCheckWrongArgCount
	case types.CantInfer:
		code = CodeCheckCantInfer
	case types.Mutation:
		code = CodeCheckMutation
	case types.NotInteger:
		code = CodeCheckNotInteger
	default:
		code = CodeCheckNotNumeric
	}
	// err.Error() ends with the span; the diagnostic carries it separately.
	message := strings.TrimSuffix(err.Error(), " at "+err.Span.String())
	return New(StageChecker, code, message, err.Span)
}
