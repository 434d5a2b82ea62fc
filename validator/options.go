// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package validator

import (
	"errors"

	"github.com/joeycumines/logiface"
)

// validatorOptions holds configuration options for Validator creation.
type validatorOptions struct {
	document     Document
	charts       ChartFactory
	console      Console
	logger       *logiface.Logger[logiface.Event]
	fixture      *Fixture
	cardSelector string
	canvasID     string
}

// Option configures a Validator instance.
type Option interface {
	applyValidator(*validatorOptions) error
}

// optionImpl implements Option.
type optionImpl struct {
	applyValidatorFunc func(*validatorOptions) error
}

func (o *optionImpl) applyValidator(opts *validatorOptions) error {
	return o.applyValidatorFunc(opts)
}

// WithDocument sets the host document. The default is a MockDocument,
// logging to the configured console.
func WithDocument(document Document) Option {
	return &optionImpl{func(opts *validatorOptions) error {
		if document == nil {
			return errors.New(`validator: nil document`)
		}
		opts.document = document
		return nil
	}}
}

// WithChartFactory sets the chart constructor. The default is a MockChart,
// logging to the configured console.
func WithChartFactory(charts ChartFactory) Option {
	return &optionImpl{func(opts *validatorOptions) error {
		if charts == nil {
			return errors.New(`validator: nil chart factory`)
		}
		opts.charts = charts
		return nil
	}}
}

// WithConsole sets where banners and mock output are written. The default
// discards everything.
func WithConsole(console Console) Option {
	return &optionImpl{func(opts *validatorOptions) error {
		opts.console = console
		return nil
	}}
}

// WithLogger enables structured diagnostic logging.
func WithLogger(logger *logiface.Logger[logiface.Event]) Option {
	return &optionImpl{func(opts *validatorOptions) error {
		opts.logger = logger
		return nil
	}}
}

// WithFixture replaces DefaultFixture.
func WithFixture(fixture Fixture) Option {
	return &optionImpl{func(opts *validatorOptions) error {
		opts.fixture = &fixture
		return nil
	}}
}

// WithCardSelector replaces CardSelector.
func WithCardSelector(selector string) Option {
	return &optionImpl{func(opts *validatorOptions) error {
		if selector == `` {
			return errors.New(`validator: empty card selector`)
		}
		opts.cardSelector = selector
		return nil
	}}
}

// WithCanvasID replaces ChartCanvasID, the id the page looks up.
func WithCanvasID(id string) Option {
	return &optionImpl{func(opts *validatorOptions) error {
		if id == `` {
			return errors.New(`validator: empty canvas id`)
		}
		opts.canvasID = id
		return nil
	}}
}

// resolveValidatorOptions applies Option instances to validatorOptions,
// then fills in defaults.
func resolveValidatorOptions(opts []Option) (*validatorOptions, error) {
	cfg := &validatorOptions{
		cardSelector: CardSelector,
		canvasID:     ChartCanvasID,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.applyValidator(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.console == nil {
		cfg.console = nopConsole{}
	}
	if cfg.fixture == nil {
		fixture := DefaultFixture()
		cfg.fixture = &fixture
	}
	if cfg.document == nil {
		cfg.document = &MockDocument{Console: cfg.console, CanvasID: cfg.canvasID}
	}
	if cfg.charts == nil {
		cfg.charts = &MockChart{Console: cfg.console}
	}
	return cfg, nil
}
