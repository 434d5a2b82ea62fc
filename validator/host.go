// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package validator

// EventDOMContentLoaded is the only event the page logic listens for.
const EventDOMContentLoaded = `DOMContentLoaded`

type (
	// Listener is an event callback. A non-nil error models the callback
	// throwing.
	Listener func() error

	// Document models the subset of the browser document used by the page.
	Document interface {
		// GetElementByID returns nil (the absent sentinel) for unknown ids.
		GetElementByID(id string) Node

		// QuerySelectorAll returns matching elements in document order, an
		// empty result is valid.
		QuerySelectorAll(selector string) []Element

		// AddEventListener registers a listener for the named event. A
		// synchronous implementation may invoke the listener before
		// returning, in which case any error it raised is returned.
		AddEventListener(event string, listener Listener) (bool, error)
	}

	// Node is a page element which may be drawn into, e.g. a canvas.
	Node interface {
		GetContext(kind string) (RenderingContext, error)
	}

	// RenderingContext is opaque to the page logic, it is passed through to
	// the chart constructor unchanged.
	RenderingContext any

	// Element is a page element matched by a selector.
	Element interface {
		// Data returns the value of a data-* attribute, and whether it was
		// present.
		Data(key string) (string, bool)

		AddClass(class string)
	}

	// Chart is the value returned by a ChartFactory, opaque to the page
	// logic.
	Chart any

	// ChartFactory constructs a chart. It stands in for the Chart.js
	// constructor.
	ChartFactory interface {
		NewChart(ctx RenderingContext, config *ChartConfig) (Chart, error)
	}

	// ChartFunc implements ChartFactory.
	ChartFunc func(ctx RenderingContext, config *ChartConfig) (Chart, error)
)

var (
	// compile time assertions

	_ ChartFactory = ChartFunc(nil)
)

// NewChart calls the underlying function.
func (x ChartFunc) NewChart(ctx RenderingContext, config *ChartConfig) (Chart, error) {
	return x(ctx, config)
}
