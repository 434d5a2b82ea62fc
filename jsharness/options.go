// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package jsharness

import (
	"errors"
	"time"

	"github.com/joeycumines/go-snippetcheck/validator"
	"github.com/joeycumines/logiface"
)

// harnessOptions holds configuration options for Harness creation.
type harnessOptions struct {
	document validator.Document
	charts   validator.ChartFactory
	console  validator.Console
	logger   *logiface.Logger[logiface.Event]
	fixture  *validator.Fixture
	name     string
	source   string
	timeout  time.Duration
	mode     validator.DispatchMode
}

// Option configures a Harness instance.
type Option interface {
	applyHarness(*harnessOptions) error
}

// optionImpl implements Option.
type optionImpl struct {
	applyHarnessFunc func(*harnessOptions) error
}

func (o *optionImpl) applyHarness(opts *harnessOptions) error {
	return o.applyHarnessFunc(opts)
}

// WithSource sets the script to run, and the name used for it in stack
// traces. The default is DefaultSource.
func WithSource(name, source string) Option {
	return &optionImpl{func(opts *harnessOptions) error {
		if name == `` {
			name = DefaultSourceName
		}
		opts.name = name
		opts.source = source
		return nil
	}}
}

// WithDocument sets the document bound to the document global. The default
// is a new validator.MockDocument for each run.
func WithDocument(document validator.Document) Option {
	return &optionImpl{func(opts *harnessOptions) error {
		if document == nil {
			return errors.New(`jsharness: nil document`)
		}
		opts.document = document
		return nil
	}}
}

// WithChartFactory sets the factory backing the Chart constructor. The
// default is a validator.MockChart.
func WithChartFactory(charts validator.ChartFactory) Option {
	return &optionImpl{func(opts *harnessOptions) error {
		if charts == nil {
			return errors.New(`jsharness: nil chart factory`)
		}
		opts.charts = charts
		return nil
	}}
}

// WithConsole sets where banners, mock output, and the script's own console
// calls are written. The default discards everything.
func WithConsole(console validator.Console) Option {
	return &optionImpl{func(opts *harnessOptions) error {
		opts.console = console
		return nil
	}}
}

// WithLogger enables structured diagnostic logging.
func WithLogger(logger *logiface.Logger[logiface.Event]) Option {
	return &optionImpl{func(opts *harnessOptions) error {
		opts.logger = logger
		return nil
	}}
}

// WithFixture replaces validator.DefaultFixture, as bound to the
// relationshipStatsLabels and relationshipStatsData globals.
func WithFixture(fixture validator.Fixture) Option {
	return &optionImpl{func(opts *harnessOptions) error {
		opts.fixture = &fixture
		return nil
	}}
}

// WithDispatchMode sets when DOMContentLoaded listeners run. Deferred
// dispatch requires the document to implement Dispatcher, which the default
// document does.
func WithDispatchMode(mode validator.DispatchMode) Option {
	return &optionImpl{func(opts *harnessOptions) error {
		switch mode {
		case validator.DispatchImmediate, validator.DispatchDeferred:
		default:
			return errors.New(`jsharness: invalid dispatch mode`)
		}
		opts.mode = mode
		return nil
	}}
}

// WithTimeout bounds a run, interrupting the script if it is exceeded.
// Zero (the default) means no limit beyond the context passed to Run.
func WithTimeout(timeout time.Duration) Option {
	return &optionImpl{func(opts *harnessOptions) error {
		if timeout < 0 {
			return errors.New(`jsharness: negative timeout`)
		}
		opts.timeout = timeout
		return nil
	}}
}

// resolveHarnessOptions applies Option instances to harnessOptions, then
// fills in defaults.
func resolveHarnessOptions(opts []Option) (*harnessOptions, error) {
	cfg := &harnessOptions{
		name:   DefaultSourceName,
		source: DefaultSource,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.applyHarness(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.console == nil {
		cfg.console = validator.NewWriterConsole(nil, nil)
	}
	if cfg.fixture == nil {
		fixture := validator.DefaultFixture()
		cfg.fixture = &fixture
	}
	if cfg.charts == nil {
		cfg.charts = &validator.MockChart{Console: cfg.console}
	}
	return cfg, nil
}
