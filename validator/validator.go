// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package validator

import (
	"sync"

	"github.com/joeycumines/logiface"
)

const (
	// ChartCanvasID is the id of the canvas the relationship chart is drawn
	// into.
	ChartCanvasID = `relationshipChart`

	// CardSelector matches the prediction cards styled by confidence.
	CardSelector = `.prediction-card`

	// ConfidenceKey is the data-* attribute holding a card's confidence.
	ConfidenceKey = `confidence`

	// ContextKind is the rendering context requested from the canvas.
	ContextKind = `2d`
)

// Console messages. Operands following a message are passed as separate
// arguments.
const (
	MessageListenerAdded    = `event listener registered:`
	MessageChartInitialized = `chart initialized successfully!`
	MessageChartConfig      = `chart config:`
	MessageChartFailed      = `chart initialization failed:`
	MessagePassed           = `✅ snippet validation passed: code parsed and ran`
	MessageFailed           = `❌ snippet validation failed:`
)

type (
	// Validator runs the page logic against its host collaborators.
	Validator struct {
		document     Document
		charts       ChartFactory
		console      Console
		logger       *logiface.Logger[logiface.Event]
		fixture      Fixture
		cardSelector string
		canvasID     string

		// mu guards last, which listeners may update after Run returns
		mu   sync.Mutex
		last *Report
	}

	// Report summarises a single run.
	Report struct {
		// Err is whatever escaped to the outer failure handler.
		Err error

		// ChartsBuilt counts successful chart constructions.
		ChartsBuilt int

		// CardsStyled counts cards tagged with a confidence class.
		CardsStyled int

		// Passed is true if the success banner was logged.
		Passed bool
	}
)

// New creates a Validator. Any collaborator not provided defaults to the
// corresponding mock.
func New(opts ...Option) (*Validator, error) {
	cfg, err := resolveValidatorOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Validator{
		document:     cfg.document,
		charts:       cfg.charts,
		console:      cfg.console,
		logger:       cfg.logger,
		fixture:      *cfg.fixture,
		cardSelector: cfg.cardSelector,
		canvasID:     cfg.canvasID,
	}, nil
}

// Run registers the DOMContentLoaded listener within the outer scoped
// attempt, then logs either MessagePassed, or MessageFailed followed by the
// diagnostic trace. Failures are reported, never propagated.
//
// The counts of the returned Report are those at the time Run returns. If
// the document defers its listeners, see [Validator.Report].
func (x *Validator) Run() Report {
	report := new(Report)
	x.mu.Lock()
	x.last = report
	x.mu.Unlock()

	err := Attempt(func() error {
		_, err := x.document.AddEventListener(EventDOMContentLoaded, func() error {
			return x.contentLoaded(report)
		})
		return err
	})

	x.mu.Lock()
	if err != nil {
		report.Err = err
	} else {
		report.Passed = true
	}
	result := *report
	x.mu.Unlock()

	if err != nil {
		x.console.Error(MessageFailed, err.Error())
		x.console.Error(Trace(err))
		x.logger.Err().
			Err(err).
			Int(`charts`, result.ChartsBuilt).
			Log(`snippet validation failed`)
		return result
	}

	x.console.Log(MessagePassed)
	x.logger.Info().
		Int(`charts`, result.ChartsBuilt).
		Int(`cards`, result.CardsStyled).
		Log(`snippet validation passed`)
	return result
}

// Report returns the state of the most recent Run, including the work of
// any listeners dispatched since it returned. The zero value is returned if
// Run has not been called.
func (x *Validator) Report() Report {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.last == nil {
		return Report{}
	}
	return *x.last
}

// contentLoaded is the page's DOMContentLoaded handler.
func (x *Validator) contentLoaded(report *Report) error {
	if node := x.document.GetElementByID(x.canvasID); node != nil {
		ctx, err := node.GetContext(ContextKind)
		if err != nil {
			return err
		}

		config := BuildChartConfig(x.fixture)

		if err := Attempt(func() error {
			_, err := x.charts.NewChart(ctx, config)
			return err
		}); err != nil {
			x.console.Error(MessageChartFailed, err)
			x.logger.Warning().
				Err(err).
				Str(`canvas`, x.canvasID).
				Log(`chart construction failed`)
		} else {
			x.mu.Lock()
			report.ChartsBuilt++
			x.mu.Unlock()
		}
	} else {
		x.logger.Debug().
			Str(`canvas`, x.canvasID).
			Log(`canvas not found, chart skipped`)
	}

	styled := x.styleCards()
	x.mu.Lock()
	report.CardsStyled += styled
	x.mu.Unlock()

	return nil
}

func (x *Validator) styleCards() int {
	n := StyleCards(x.document, x.cardSelector)
	x.logger.Debug().
		Str(`selector`, x.cardSelector).
		Int(`styled`, n).
		Log(`styled prediction cards`)
	return n
}

// StyleCards tags every element matching selector, which has a non-empty
// confidence attribute, with the class of its confidence tier. It returns
// the number of elements tagged.
func StyleCards(document Document, selector string) (styled int) {
	for _, card := range document.QuerySelectorAll(selector) {
		value, _ := card.Data(ConfidenceKey)
		if value == `` {
			continue
		}
		card.AddClass(Classify(ParseFloat(value)).Class())
		styled++
	}
	return
}
