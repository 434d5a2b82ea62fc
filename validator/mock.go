// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package validator

import (
	"errors"
	"slices"
	"sync"
)

const (
	// DispatchImmediate invokes each listener synchronously, from within
	// AddEventListener. There is no event loop: this is the default, and
	// what the page logic has always been validated against.
	DispatchImmediate DispatchMode = iota

	// DispatchDeferred stores listeners until MockDocument.Dispatch is
	// called, making the point at which the event fires explicit.
	DispatchDeferred
)

type (
	// DispatchMode controls when MockDocument invokes registered listeners.
	DispatchMode int

	// MockDocument is the default Document. Only CanvasID resolves to a node,
	// and selectors match nothing unless Elements is populated.
	MockDocument struct {
		Console   Console
		Elements  map[string][]Element
		listeners map[string][]Listener
		CanvasID  string
		Mode      DispatchMode
		mu        sync.Mutex
	}

	// MockNode is the canvas placeholder returned by MockDocument.
	MockNode struct {
		ID string
	}

	// MockContext is the rendering context placeholder returned by MockNode.
	MockContext struct {
		Canvas string
		Kind   string
	}

	// MockElement is an Element with an in-memory dataset and class list.
	MockElement struct {
		Dataset map[string]string
		Classes []string
		mu      sync.Mutex
	}

	// MockChart is the default ChartFactory. It logs the configuration it
	// receives and never fails.
	MockChart struct {
		Console Console
	}

	// MockChartHandle is the placeholder chart returned by MockChart.
	MockChartHandle struct {
		Config *ChartConfig
	}
)

var (
	// compile time assertions

	_ Document     = (*MockDocument)(nil)
	_ Node         = (*MockNode)(nil)
	_ Element      = (*MockElement)(nil)
	_ ChartFactory = (*MockChart)(nil)
)

// NewMockDocument returns a MockDocument which logs to console, recognising
// only ChartCanvasID, and dispatching immediately.
func NewMockDocument(console Console) *MockDocument {
	return &MockDocument{Console: console}
}

func (x *MockDocument) GetElementByID(id string) Node {
	if id == x.canvasID() {
		return &MockNode{ID: id}
	}
	return nil
}

func (x *MockDocument) QuerySelectorAll(selector string) []Element {
	x.mu.Lock()
	defer x.mu.Unlock()
	return append([]Element{}, x.Elements[selector]...)
}

// AddEventListener logs the registration, then either invokes the listener
// in place (DispatchImmediate) or stores it (DispatchDeferred).
func (x *MockDocument) AddEventListener(event string, listener Listener) (bool, error) {
	x.console().Log(MessageListenerAdded, event)

	if x.Mode == DispatchDeferred {
		x.mu.Lock()
		if x.listeners == nil {
			x.listeners = make(map[string][]Listener)
		}
		x.listeners[event] = append(x.listeners[event], listener)
		x.mu.Unlock()
		return true, nil
	}

	if err := listener(); err != nil {
		return false, err
	}
	return true, nil
}

// Dispatch invokes every listener stored for event, in registration order.
// All listeners run, the returned error joins any they raised. A panicking
// listener is recovered, as a *PanicError.
func (x *MockDocument) Dispatch(event string) error {
	x.mu.Lock()
	listeners := slices.Clone(x.listeners[event])
	x.mu.Unlock()

	var errs []error
	for _, listener := range listeners {
		if err := Attempt(listener); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Listeners returns the number of stored listeners for event.
func (x *MockDocument) Listeners(event string) int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return len(x.listeners[event])
}

func (x *MockDocument) canvasID() string {
	if x.CanvasID != `` {
		return x.CanvasID
	}
	return ChartCanvasID
}

func (x *MockDocument) console() Console {
	if x.Console != nil {
		return x.Console
	}
	return nopConsole{}
}

func (x *MockNode) GetContext(kind string) (RenderingContext, error) {
	return &MockContext{Canvas: x.ID, Kind: kind}, nil
}

// NewMockElement returns a MockElement with the given data-* attributes.
func NewMockElement(dataset map[string]string) *MockElement {
	return &MockElement{Dataset: dataset}
}

func (x *MockElement) Data(key string) (string, bool) {
	x.mu.Lock()
	defer x.mu.Unlock()
	v, ok := x.Dataset[key]
	return v, ok
}

func (x *MockElement) AddClass(class string) {
	x.mu.Lock()
	defer x.mu.Unlock()
	if !slices.Contains(x.Classes, class) {
		x.Classes = append(x.Classes, class)
	}
}

// HasClass reports whether class was added.
func (x *MockElement) HasClass(class string) bool {
	x.mu.Lock()
	defer x.mu.Unlock()
	return slices.Contains(x.Classes, class)
}

// NewChart logs MessageChartInitialized then the config.
func (x *MockChart) NewChart(_ RenderingContext, config *ChartConfig) (Chart, error) {
	console := x.Console
	if console == nil {
		console = nopConsole{}
	}
	console.Log(MessageChartInitialized)
	console.Log(MessageChartConfig, config)
	return &MockChartHandle{Config: config}, nil
}
