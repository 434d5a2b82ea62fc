// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

// Command snippetcheck validates the relationship result page script against
// a mocked browser environment.
//
// With no flags, the page logic runs natively, against the mock document and
// chart, printing the same console output as a browser would. The --harness,
// --js and --template flags instead run JavaScript, in an embedded runtime.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/joeycumines/go-snippetcheck/internal/logging"
	"github.com/joeycumines/go-snippetcheck/jinjascript"
	"github.com/joeycumines/go-snippetcheck/jsharness"
	"github.com/joeycumines/go-snippetcheck/validator"
	"github.com/joeycumines/logiface"
	"github.com/spf13/cobra"
)

// errValidationFailed is returned, with --strict, after the failure banner
// has already been printed.
var errValidationFailed = errors.New(`validation failed`)

type rootOptions struct {
	template string
	block    string
	js       string
	harness  bool
	deferred bool
	strict   bool
	logLevel string
	timeout  time.Duration
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errValidationFailed) {
			_, _ = fmt.Fprintln(os.Stderr, `snippetcheck:`, err)
		}
		stop()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   `snippetcheck`,
		Short: `Validate the relationship result page script`,
		Long: `Runs the relationship result page logic against a mock document and chart.

The chart is built from a fixed fixture, prediction cards are styled by
confidence, then a success or failure banner is printed. By default the
exit code is 0 either way, use --strict to exit 1 on failure.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.template, `template`, ``, `run the inline scripts of a Jinja2 template file`)
	flags.StringVar(&opts.block, `block`, jinjascript.DefaultBlock, `template block containing the scripts`)
	flags.StringVar(&opts.js, `js`, ``, `run a JavaScript file ("-" for stdin)`)
	flags.BoolVar(&opts.harness, `harness`, false, `run the embedded page script as JavaScript`)
	flags.BoolVar(&opts.deferred, `deferred`, false, `fire DOMContentLoaded after the script, rather than on registration`)
	flags.DurationVar(&opts.timeout, `timeout`, 0, `interrupt JavaScript running longer than this (0 for no limit)`)
	cmd.MarkFlagsMutuallyExclusive(`template`, `js`, `harness`)

	persistent := cmd.PersistentFlags()
	persistent.BoolVar(&opts.strict, `strict`, false, `exit non-zero on validation failure`)
	persistent.StringVar(&opts.logLevel, `log-level`, logging.DefaultLevel.String(), `diagnostic log level, written to stderr as JSON`)

	cmd.AddCommand(
		newStructureCommand(&opts),
		newParityCommand(&opts),
	)

	return cmd
}

func (x *rootOptions) logger(cmd *cobra.Command) (*logiface.Logger[logiface.Event], error) {
	level, err := logging.ParseLevel(x.logLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(cmd.ErrOrStderr(), level), nil
}

func (x *rootOptions) run(cmd *cobra.Command) error {
	logger, err := x.logger(cmd)
	if err != nil {
		return err
	}

	console := validator.NewWriterConsole(cmd.OutOrStdout(), cmd.ErrOrStderr())
	fixture := validator.DefaultFixture()
	mode := validator.DispatchImmediate
	if x.deferred {
		mode = validator.DispatchDeferred
	}

	var report validator.Report
	if x.template != `` || x.js != `` || x.harness {
		name, source, err := x.source(cmd, fixture, logger)
		if err != nil {
			return err
		}
		h, err := jsharness.New(
			jsharness.WithSource(name, source),
			jsharness.WithConsole(console),
			jsharness.WithLogger(logger),
			jsharness.WithFixture(fixture),
			jsharness.WithDispatchMode(mode),
			jsharness.WithTimeout(x.timeout),
		)
		if err != nil {
			return err
		}
		report = h.Run(cmd.Context())
	} else {
		report, err = runNative(console, logger, fixture, mode)
		if err != nil {
			return err
		}
	}

	if x.strict && !report.Passed {
		return errValidationFailed
	}
	return nil
}

// runNative runs the Go rendition of the page logic. In deferred mode the
// event fires after the banner, as it would in a browser.
func runNative(console validator.Console, logger *logiface.Logger[logiface.Event], fixture validator.Fixture, mode validator.DispatchMode) (validator.Report, error) {
	document := validator.NewMockDocument(console)
	document.Mode = mode

	v, err := validator.New(
		validator.WithDocument(document),
		validator.WithConsole(console),
		validator.WithLogger(logger),
		validator.WithFixture(fixture),
	)
	if err != nil {
		return validator.Report{}, err
	}

	report := v.Run()
	if report.Passed && mode == validator.DispatchDeferred {
		err := document.Dispatch(validator.EventDOMContentLoaded)
		report = v.Report()
		if err != nil {
			console.Error(validator.MessageFailed, err.Error())
			console.Error(validator.Trace(err))
			report.Passed = false
			report.Err = err
		}
	}
	return report, nil
}

// source resolves the script to run, as a name and body.
func (x *rootOptions) source(cmd *cobra.Command, fixture validator.Fixture, logger *logiface.Logger[logiface.Event]) (string, string, error) {
	switch {
	case x.js != ``:
		b, err := readInput(cmd, x.js)
		if err != nil {
			return ``, ``, err
		}
		return x.js, string(b), nil

	case x.template != ``:
		source, err := templateScript(cmd, x.template, x.block)
		if err != nil {
			return ``, ``, err
		}

		if report := jinjascript.CheckStructure(source); !report.Balanced() {
			logger.Warning().
				Str(`template`, x.template).
				Int(`braces_open`, report.Braces.Open).
				Int(`braces_close`, report.Braces.Close).
				Int(`parens_open`, report.Parens.Open).
				Int(`parens_close`, report.Parens.Close).
				Int(`if_tags`, report.IfTags).
				Int(`endif_tags`, report.EndIfTags).
				Log(`template script structure is unbalanced`)
		}

		source, unresolved, err := jinjascript.FixtureValues(fixture).Substitute(source)
		if err != nil {
			return ``, ``, err
		}
		for _, expr := range unresolved {
			logger.Warning().
				Str(`template`, x.template).
				Str(`expression`, expr).
				Log(`unresolved template expression, substituted null`)
		}
		return x.template, source, nil

	default:
		return jsharness.DefaultSourceName, jsharness.DefaultSource, nil
	}
}

// templateScript returns the joined inline scripts of a template block,
// template expressions intact.
func templateScript(cmd *cobra.Command, path, block string) (string, error) {
	b, err := readInput(cmd, path)
	if err != nil {
		return ``, err
	}
	scripts, err := jinjascript.Scripts(string(b), block)
	if err != nil {
		return ``, fmt.Errorf("%s: %w", path, err)
	}
	return jinjascript.Join(scripts), nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == `-` {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}
