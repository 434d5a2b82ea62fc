// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package main

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/joeycumines/go-snippetcheck/jsharness"
	"github.com/joeycumines/go-snippetcheck/validator"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	nativeName  = `native`
	harnessName = `harness`
)

// parityResult holds the console output of both renditions of the page
// logic, one entry per line.
type parityResult struct {
	Native  []string
	Harness []string
}

func (x parityResult) Equal() bool { return slices.Equal(x.Native, x.Harness) }

// Diff is a unified diff from the native to the harness output, empty if
// they are equal.
func (x parityResult) Diff() string {
	a := joinLines(x.Native)
	b := joinLines(x.Harness)
	if a == b {
		return ``
	}
	return fmt.Sprint(gotextdiff.ToUnified(
		nativeName,
		harnessName,
		a,
		myers.ComputeEdits(span.URIFromPath(nativeName), a, b),
	))
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ``
	}
	return strings.Join(lines, "\n") + "\n"
}

func newParityCommand(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   `parity`,
		Short: `Compare the native page logic with the script's console output`,
		Long: `Runs the native page logic and a script (the embedded page script by
default, see --js and --template) concurrently, each against its own mock
document, then prints a unified diff of their console output. With --strict,
any difference exits non-zero.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := root.logger(cmd)
			if err != nil {
				return err
			}

			fixture := validator.DefaultFixture()
			name, source, err := root.source(cmd, fixture, logger)
			if err != nil {
				return err
			}

			mode := validator.DispatchImmediate
			if root.deferred {
				mode = validator.DispatchDeferred
			}

			result, err := compareParity(cmd.Context(), fixture, mode,
				jsharness.WithSource(name, source),
				jsharness.WithTimeout(root.timeout),
				jsharness.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			logger.Debug().
				Str(`script`, name).
				Int(`native_lines`, len(result.Native)).
				Int(`harness_lines`, len(result.Harness)).
				Bool(`equal`, result.Equal()).
				Log(`compared console output`)

			out := cmd.OutOrStdout()
			if result.Equal() {
				_, err := fmt.Fprintf(out, "console output identical (%d lines)\n", len(result.Native))
				return err
			}
			if _, err := fmt.Fprint(out, result.Diff()); err != nil {
				return err
			}
			if root.strict {
				return fmt.Errorf("%s: console output differs", name)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&root.template, `template`, ``, `compare the inline scripts of a Jinja2 template file`)
	flags.StringVar(&root.block, `block`, root.block, `template block containing the scripts`)
	flags.StringVar(&root.js, `js`, ``, `compare a JavaScript file ("-" for stdin)`)
	flags.BoolVar(&root.deferred, `deferred`, false, `fire DOMContentLoaded after the script, rather than on registration`)
	flags.DurationVar(&root.timeout, `timeout`, 0, `interrupt JavaScript running longer than this (0 for no limit)`)
	cmd.MarkFlagsMutuallyExclusive(`template`, `js`)

	return cmd
}

// compareParity runs both renditions concurrently. Options are applied to the
// harness after its console and fixture.
func compareParity(ctx context.Context, fixture validator.Fixture, mode validator.DispatchMode, opts ...jsharness.Option) (parityResult, error) {
	var native, harness validator.Recorder

	h, err := jsharness.New(append([]jsharness.Option{
		jsharness.WithConsole(&harness),
		jsharness.WithFixture(fixture),
		jsharness.WithDispatchMode(mode),
	}, opts...)...)
	if err != nil {
		return parityResult{}, err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := runNative(&native, nil, fixture, mode)
		return err
	})
	g.Go(func() error {
		h.Run(ctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return parityResult{}, err
	}

	return parityResult{
		Native:  native.Lines(),
		Harness: harness.Lines(),
	}, nil
}
