// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package jsharness

import (
	"context"
	_ "embed"
	"errors"
	"sync/atomic"
	"time"

	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/console"
	"github.com/dop251/goja_nodejs/eventloop"
	"github.com/dop251/goja_nodejs/require"
	"github.com/joeycumines/go-snippetcheck/validator"
	"github.com/joeycumines/logiface"
)

// DefaultSourceName is the script name of DefaultSource.
const DefaultSourceName = `snippet.js`

// DefaultSource is the page logic of the relationship prediction result
// page, expecting the fixture globals.
//
//go:embed snippet.js
var DefaultSource string

// ErrNoDispatcher is logged when deferred dispatch is configured, but the
// document cannot dispatch events.
var ErrNoDispatcher = errors.New(`jsharness: document does not implement Dispatcher`)

type (
	// Harness runs a script against a mocked browser environment. It is safe
	// to call Run multiple times, each run uses a new runtime.
	Harness struct {
		document validator.Document
		charts   validator.ChartFactory
		console  validator.Console
		logger   *logiface.Logger[logiface.Event]
		fixture  validator.Fixture
		name     string
		source   string
		timeout  time.Duration
		mode     validator.DispatchMode
	}

	// Dispatcher is implemented by documents supporting deferred dispatch,
	// e.g. validator.MockDocument.
	Dispatcher interface {
		Dispatch(event string) error
	}
)

// New creates a Harness.
func New(opts ...Option) (*Harness, error) {
	cfg, err := resolveHarnessOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Harness{
		document: cfg.document,
		charts:   cfg.charts,
		console:  cfg.console,
		logger:   cfg.logger,
		fixture:  *cfg.fixture,
		name:     cfg.name,
		source:   cfg.source,
		timeout:  cfg.timeout,
		mode:     cfg.mode,
	}, nil
}

// Run executes the script, within the outer scoped attempt, then drains the
// event loop. It logs validator.MessagePassed, or validator.MessageFailed
// followed by the script stack. Cancelling ctx interrupts the script, which
// is reported as a failure.
func (x *Harness) Run(ctx context.Context) validator.Report {
	if x.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, x.timeout)
		defer cancel()
	}

	document := x.document
	if document == nil {
		document = &validator.MockDocument{Console: x.console, Mode: x.mode}
	}

	registry := require.NewRegistry()
	registry.RegisterNativeModule(console.ModuleName, console.RequireWithPrinter(printer{x.console}))
	loop := eventloop.NewEventLoop(eventloop.WithRegistry(registry))

	var current atomic.Pointer[goja.Runtime]
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-done:
		case <-ctx.Done():
			if runtime := current.Load(); runtime != nil {
				runtime.Interrupt(ctx.Err())
			}
			loop.StopNoWait()
			loop.RunOnLoop(func(*goja.Runtime) { loop.StopNoWait() })
		}
	}()

	var (
		report validator.Report
		err    error
	)
	s := session{
		document: document,
		charts:   x.charts,
		fixture:  x.fixture,
		stop:     loop.StopNoWait,
	}
	loop.Run(func(runtime *goja.Runtime) {
		current.Store(runtime)
		s.runtime = runtime
		err = validator.Attempt(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := s.bind(); err != nil {
				return err
			}
			x.logger.Debug().
				Str(`script`, x.name).
				Int(`length`, len(x.source)).
				Log(`running script`)
			if _, err := runtime.RunScript(x.name, x.source); err != nil {
				return err
			}
			return x.dispatch(document)
		})
		err = newScriptError(err)
	})

	// scheduled callbacks run after the callback above
	report.ChartsBuilt = s.chartsBuilt
	report.CardsStyled = s.cardsStyled
	if err == nil {
		err = s.jobErr
	}
	if err == nil {
		err = ctx.Err()
	}

	if err != nil {
		report.Err = err
		x.console.Error(validator.MessageFailed, err.Error())
		x.console.Error(validator.Trace(err))
		x.logger.Err().
			Err(err).
			Str(`script`, x.name).
			Log(`script validation failed`)
		return report
	}

	report.Passed = true
	x.console.Log(validator.MessagePassed)
	x.logger.Info().
		Str(`script`, x.name).
		Int(`charts`, report.ChartsBuilt).
		Int(`cards`, report.CardsStyled).
		Log(`script validation passed`)
	return report
}

// dispatch fires DOMContentLoaded, if deferred, once the script body has
// completed.
func (x *Harness) dispatch(document validator.Document) error {
	if x.mode != validator.DispatchDeferred {
		return nil
	}
	dispatcher, ok := document.(Dispatcher)
	if !ok {
		x.logger.Warning().
			Err(ErrNoDispatcher).
			Log(`listeners will not be dispatched`)
		return nil
	}
	x.logger.Debug().
		Str(`event`, validator.EventDOMContentLoaded).
		Log(`dispatching deferred event`)
	return dispatcher.Dispatch(validator.EventDOMContentLoaded)
}
