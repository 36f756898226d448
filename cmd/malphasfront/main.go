// Command malphasfront lexes, parses, and type-checks a single source
// file, then prints its AST to standard output. It is the front-end's
// only external interface: one positional argument, exit 0 on success,
// non-zero with a one-line diagnostic on failure.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
