package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	warnColor  = color.New(color.FgYellow, color.Bold)
	noteColor  = color.New(color.FgCyan)
)

// Print writes a diagnostic's one-line form to w, coloring the severity
// label the way a terminal-facing CLI does without reaching for a full
// snippet renderer.
func Print(w io.Writer, d Diagnostic) {
	c := severityColor(d.Severity)
	fmt.Fprintf(w, "%s: %s at %s [%s]\n", c.Sprint(d.Severity), d.Message, d.Span, d.Code)
}

func severityColor(s Severity) *color.Color {
	switch s {
	case SeverityWarning:
		return warnColor
	case SeverityNote:
		return noteColor
	default:
		return errorColor
	}
}
