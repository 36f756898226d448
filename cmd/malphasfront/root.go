package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/malphas-lang/malphas-lang/internal/ast"
	"github.com/malphas-lang/malphas-lang/internal/checker"
	"github.com/malphas-lang/malphas-lang/internal/clilog"
	"github.com/malphas-lang/malphas-lang/internal/diag"
	"github.com/malphas-lang/malphas-lang/internal/parser"
	"github.com/malphas-lang/malphas-lang/internal/types"
)

type rootFlags struct {
	verbose    bool
	dump       bool
	checkOnly  bool
	seedExprs  []string
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "malphasfront <source-file>",
		Short: "Lex, parse, and type-check a source file",
		Args:  cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			clilog.SetVerbose(flags.verbose)
			return run(cmd, args[0], flags)
		},
	}

	cmd.Flags().BoolVar(&flags.verbose, "verbose", false, "trace the lex/parse/check pipeline to stderr")
	cmd.Flags().BoolVar(&flags.dump, "dump", false, "dump the full AST with go-spew instead of a one-line-per-item summary")
	cmd.Flags().BoolVar(&flags.checkOnly, "check-only", false, "type-check without printing the AST")
	cmd.Flags().StringArrayVar(&flags.seedExprs, "seed-expr", nil, "an extra expression (repeatable) to type-check against the file's top-level names, after the file itself checks")

	return cmd
}

func run(cmd *cobra.Command, path string, flags *rootFlags) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	clilog.Tracef("read %d bytes from %s", len(src), path)

	p := parser.New(string(src))
	items, err := p.File()
	if err != nil {
		if perr, ok := err.(*parser.Error); ok {
			diag.Print(os.Stderr, diag.FromParseError(perr))
			return fmt.Errorf("parse failed")
		}
		return err
	}
	clilog.Tracef("parsed %d top-level items", len(items))

	c := checker.New()
	if err := c.CheckFile(items); err != nil {
		var typeErr *types.Error
		if errors.As(err, &typeErr) {
			diag.Print(os.Stderr, diag.FromTypeError(typeErr))
			return fmt.Errorf("type check failed")
		}
		return err
	}
	clilog.Tracef("type check passed")

	if len(flags.seedExprs) > 0 {
		if err := checkSeedExprs(cmd, c, flags.seedExprs); err != nil {
			return err
		}
	}

	if flags.checkOnly {
		return nil
	}

	if flags.dump {
		spew.Fdump(cmd.OutOrStdout(), items)
		return nil
	}

	for _, item := range items {
		fmt.Fprintf(cmd.OutOrStdout(), "%T at %s\n", item, item.Span())
	}
	return nil
}

// checkSeedExprs parses each --seed-expr argument and type-checks it with
// checker.Check, against the file's already-registered top-level names --
// spec.md §6's "caller-supplied list of seed expressions" to check
// alongside the file itself.
func checkSeedExprs(cmd *cobra.Command, c *checker.Checker, seeds []string) error {
	exprs := make([]ast.Expr, len(seeds))
	for i, src := range seeds {
		e, err := parser.New(src).ParseExpression(0)
		if err != nil {
			if perr, ok := err.(*parser.Error); ok {
				diag.Print(os.Stderr, diag.FromParseError(perr))
				return fmt.Errorf("failed to parse seed expression %q", src)
			}
			return err
		}
		exprs[i] = e
	}

	results, err := c.Check(exprs)
	if err != nil {
		var typeErr *types.Error
		if errors.As(err, &typeErr) {
			diag.Print(os.Stderr, diag.FromTypeError(typeErr))
			return fmt.Errorf("seed expression type check failed")
		}
		return err
	}

	for i, t := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "seed %q: %s\n", seeds[i], t)
		clilog.Tracef("seed expression %q typed as %s", seeds[i], t)
	}
	return nil
}
