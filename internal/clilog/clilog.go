// Package clilog is the front-end's trace logger. It mirrors the teacher's
// MALPHAS_DEBUG-gated debugLog: a single global switch that, off, costs
// nothing, and on, prints a prefixed line to stderr per pipeline step. The
// one change from the teacher's pattern is the switch itself -- a
// --verbose CLI flag instead of an environment variable, since this
// front-end's whole configuration surface is its flags.
package clilog

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	verbose    = false
	prefixColor = color.New(color.FgMagenta, color.Bold)
)

// SetVerbose turns tracing on or off. Called once, from the CLI's root
// command, after flags are parsed.
func SetVerbose(v bool) { verbose = v }

// Tracef prints a trace line to stderr when verbose mode is on, and is a
// no-op otherwise.
func Tracef(format string, args ...any) {
	if !verbose {
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", prefixColor.Sprint("[trace]"), fmt.Sprintf(format, args...))
}
