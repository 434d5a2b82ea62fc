// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package jsharness

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/dop251/goja"
	"github.com/joeycumines/go-snippetcheck/validator"
)

// Global names bound by the harness.
const (
	GlobalDocument = `document`
	GlobalChart    = `Chart`
	GlobalLabels   = `relationshipStatsLabels`
	GlobalData     = `relationshipStatsData`
)

// timerGlobals are the event loop's scheduling functions, whose callbacks
// would otherwise fail silently.
var timerGlobals = [...]string{`setTimeout`, `setInterval`, `setImmediate`}

// forEachPolyfill installs Array.prototype.forEach only where it is missing.
const forEachPolyfill = `if (typeof Array.prototype.forEach !== 'function') {
    Array.prototype.forEach = function(callback) {
        for (let i = 0; i < this.length; i++) {
            callback(this[i], i, this);
        }
    };
}`

// session holds the state of a single run, and is only accessed on the loop.
type session struct {
	runtime     *goja.Runtime
	document    validator.Document
	charts      validator.ChartFactory
	fixture     validator.Fixture
	chartsBuilt int
	cardsStyled int

	// jobErr is the first error raised by a scheduled callback.
	jobErr error

	// stop is called once jobErr is set, and may be nil.
	stop func()
}

// bind installs the harness globals into the runtime.
func (x *session) bind() error {
	if _, err := x.runtime.RunScript(`polyfill.js`, forEachPolyfill); err != nil {
		return fmt.Errorf("failed to install polyfill: %w", err)
	}

	if err := x.runtime.Set(GlobalLabels, x.newArray(x.fixture.Labels)); err != nil {
		return err
	}
	if err := x.runtime.Set(GlobalData, x.newArray(x.fixture.Counts)); err != nil {
		return err
	}

	if err := x.runtime.Set(GlobalChart, x.chartConstructor); err != nil {
		return err
	}

	if err := x.runtime.Set(GlobalDocument, x.newDocument()); err != nil {
		return err
	}

	for _, name := range timerGlobals {
		if err := x.wrapTimer(name); err != nil {
			return err
		}
	}

	return nil
}

// wrapTimer replaces the named scheduling function, if present, with one
// that records the first error raised by any callback, as an uncaught
// exception. Callbacks scheduled after that are skipped.
func (x *session) wrapTimer(name string) error {
	schedule, ok := goja.AssertFunction(x.runtime.Get(name))
	if !ok {
		return nil
	}
	return x.runtime.Set(name, func(call goja.FunctionCall) goja.Value {
		args := slices.Clone(call.Arguments)
		if callback, ok := goja.AssertFunction(call.Argument(0)); ok {
			args[0] = x.runtime.ToValue(func(call goja.FunctionCall) goja.Value {
				if x.jobErr != nil {
					return goja.Undefined()
				}
				result, err := callback(call.This, call.Arguments...)
				if err != nil {
					x.jobFailed(err)
					return goja.Undefined()
				}
				return result
			})
		}
		result, err := schedule(call.This, args...)
		if err != nil {
			x.throw(err)
		}
		return result
	})
}

func (x *session) jobFailed(err error) {
	if x.jobErr != nil {
		return
	}
	x.jobErr = newScriptError(err)
	if x.stop != nil {
		x.stop()
	}
}

func (x *session) newDocument() *goja.Object {
	doc := x.runtime.NewObject()

	_ = doc.Set(`getElementById`, func(call goja.FunctionCall) goja.Value {
		node := x.document.GetElementByID(call.Argument(0).String())
		if node == nil {
			return goja.Null()
		}
		return x.newNode(node)
	})

	_ = doc.Set(`querySelectorAll`, func(call goja.FunctionCall) goja.Value {
		elements := x.document.QuerySelectorAll(call.Argument(0).String())
		values := make([]any, len(elements))
		for i, element := range elements {
			values[i] = x.newElement(element)
		}
		return x.runtime.NewArray(values...)
	})

	_ = doc.Set(`addEventListener`, func(call goja.FunctionCall) goja.Value {
		event := call.Argument(0).String()
		fn, ok := goja.AssertFunction(call.Argument(1))
		if !ok {
			panic(x.runtime.NewTypeError(`addEventListener requires a function as second argument`))
		}
		added, err := x.document.AddEventListener(event, func() error {
			_, err := fn(goja.Undefined())
			return err
		})
		if err != nil {
			x.throw(err)
		}
		return x.runtime.ToValue(added)
	})

	return doc
}

func (x *session) newNode(node validator.Node) *goja.Object {
	obj := x.runtime.NewObject()
	_ = obj.Set(`getContext`, func(call goja.FunctionCall) goja.Value {
		ctx, err := node.GetContext(call.Argument(0).String())
		if err != nil {
			x.throw(err)
		}
		return x.runtime.ToValue(ctx)
	})
	return obj
}

func (x *session) newElement(element validator.Element) *goja.Object {
	obj := x.runtime.NewObject()
	_ = obj.Set(`dataset`, x.runtime.NewDynamicObject(dataset{element: element, runtime: x.runtime}))

	classList := x.runtime.NewObject()
	_ = classList.Set(`add`, func(call goja.FunctionCall) goja.Value {
		for _, arg := range call.Arguments {
			element.AddClass(arg.String())
		}
		x.cardsStyled++
		return goja.Undefined()
	})
	_ = obj.Set(`classList`, classList)

	return obj
}

// chartConstructor implements the Chart global. The configuration is
// round-tripped through JSON, so functions are dropped, as they would be by
// JSON.stringify. Any shape of configuration is accepted.
func (x *session) chartConstructor(call goja.ConstructorCall) *goja.Object {
	ctx := call.Argument(0).Export()

	var config *validator.ChartConfig
	if arg := call.Argument(1); !goja.IsUndefined(arg) && !goja.IsNull(arg) {
		config = x.chartConfig(arg)
	}

	var chart validator.Chart
	if err := validator.Attempt(func() (err error) {
		chart, err = x.charts.NewChart(ctx, config)
		return
	}); err != nil {
		x.throw(err)
	}
	x.chartsBuilt++

	if chart != nil {
		if obj, ok := x.runtime.ToValue(chart).(*goja.Object); ok {
			return obj
		}
	}
	return call.This
}

// chartConfig decodes arg into a ChartConfig. Values of an unexpected type,
// such as a single colour in place of a list, are left at their zero value,
// as encoding/json skips them and decodes the rest.
func (x *session) chartConfig(arg goja.Value) *validator.ChartConfig {
	config := new(validator.ChartConfig)
	if b, err := json.Marshal(arg.ToObject(x.runtime)); err == nil {
		_ = json.Unmarshal(b, config)
	}
	return config
}

// throw raises err in the runtime, preserving thrown JavaScript values.
func (x *session) throw(err error) {
	var exception *goja.Exception
	if errors.As(err, &exception) {
		panic(exception)
	}
	panic(x.runtime.NewGoError(err))
}

func (x *session) newArray(values any) *goja.Object {
	var items []any
	switch values := values.(type) {
	case []string:
		for _, v := range values {
			items = append(items, v)
		}
	case []float64:
		for _, v := range values {
			items = append(items, v)
		}
	}
	return x.runtime.NewArray(items...)
}

// dataset exposes Element.Data as a read-only DOMStringMap.
type dataset struct {
	element validator.Element
	runtime *goja.Runtime
}

var (
	// compile time assertions

	_ goja.DynamicObject = dataset{}
)

func (x dataset) Get(key string) goja.Value {
	if v, ok := x.element.Data(key); ok {
		return x.runtime.ToValue(v)
	}
	return goja.Undefined()
}

func (x dataset) Set(string, goja.Value) bool { return false }

func (x dataset) Has(key string) bool {
	_, ok := x.element.Data(key)
	return ok
}

func (x dataset) Delete(string) bool { return false }

func (x dataset) Keys() []string { return nil }
