// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	brite "github.com/brite-lang/brite-sub000"
	"github.com/brite-lang/brite-sub000/ast"
	"github.com/brite-lang/brite-sub000/diagnostics"
	"github.com/brite-lang/brite-sub000/internal/exprfile"
	"github.com/brite-lang/brite-sub000/internal/log"
	"github.com/brite-lang/brite-sub000/types"
)

const (
	colorReset = "\x1b[0m"
	colorRed   = "\x1b[31m"
	colorBold  = "\x1b[1m"
)

type checkOptions struct {
	debug    bool
	dump     bool
	types    bool
	color    string
	sections []string
}

func newCheckCmd() *cobra.Command {
	var opts checkOptions
	cmd := &cobra.Command{
		Use:          "check file.yaml...",
		Short:        "Infer the type of the expression in each document",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args)
		},
	}
	flags := cmd.Flags()
	flags.BoolVar(&opts.debug, "debug", false, "panic on internal inconsistencies")
	flags.BoolVar(&opts.dump, "dump", false, "dump the typed expression tree")
	flags.BoolVar(&opts.types, "types", false, "print the type of every sub-expression")
	flags.StringVar(&opts.color, "color", "auto", "colorize diagnostics: auto, always or never")
	flags.StringSliceVar(&opts.sections, "log-section", nil, "enable debug logs for sections (infer, unify, prefix)")
	return cmd
}

func runCheck(cmd *cobra.Command, opts checkOptions, args []string) error {
	out := cmd.OutOrStdout()
	colored, err := useColor(opts.color, out)
	if err != nil {
		return err
	}
	if len(opts.sections) > 0 {
		log.EnableSections(opts.sections...)
		defer log.DisableSections()
	}

	ctx := brite.NewContext()
	ctx.EnableDebugAssertions(opts.debug)

	reported := 0
	for _, path := range args {
		doc, err := decodeFile(path)
		if err != nil {
			return err
		}
		sink := diagnostics.NewSink()
		typed := ctx.Infer(sink, doc.Scope, doc.Expr)

		fmt.Fprintf(out, "%s: %s\n", path, ast.ExprString(typed))
		fmt.Fprintf(out, "  : %s\n", types.TypeString(typed.Type()))
		if opts.types {
			printTypes(out, typed)
		}
		if opts.dump {
			dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
			dumper.Fdump(out, typed)
		}
		for _, d := range sink.Diagnostics() {
			if colored {
				fmt.Fprintf(out, "%s%serror%s %s\n", colorBold, colorRed, colorReset, diagnostics.Format(d))
			} else {
				fmt.Fprintf(out, "error %s\n", diagnostics.Format(d))
			}
		}
		reported += sink.Len()
	}
	if reported > 0 {
		return errors.Errorf("%d diagnostics reported", reported)
	}
	return nil
}

func decodeFile(path string) (*exprfile.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open document")
	}
	defer f.Close()
	doc, err := exprfile.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode %s", path)
	}
	return doc, nil
}

func printTypes(out io.Writer, typed ast.Expr) {
	ast.WalkExpr(typed, func(e ast.Expr) {
		fmt.Fprintf(out, "  %-10s %s : %s\n", e.ExprName(), ast.ExprString(e), types.TypeString(e.Type()))
	})
}

func useColor(mode string, out io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := out.(*os.File)
		return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())), nil
	}
	return false, errors.Errorf("unknown color mode %q", mode)
}
