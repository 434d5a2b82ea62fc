// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package jsharness

import (
	"errors"

	"github.com/dop251/goja"
	"github.com/joeycumines/go-snippetcheck/validator"
)

// ScriptError is an error raised while running a script, carrying the
// JavaScript-level message and stack.
type ScriptError struct {
	// Err is the underlying error, usually a *goja.Exception.
	Err error

	// Message is the thrown value's message property, if it had one,
	// otherwise its string value.
	Message string

	// Stack is the thrown value's stack property, if it had one, otherwise
	// the stack captured by the runtime.
	Stack string
}

var (
	// compile time assertions

	_ validator.StackTracer = (*ScriptError)(nil)
)

func (e *ScriptError) Error() string { return e.Message }

func (e *ScriptError) Unwrap() error { return e.Err }

func (e *ScriptError) StackTrace() string { return e.Stack }

// newScriptError converts err into a *ScriptError. It must be called on the
// loop, as it reads properties of the thrown value.
func newScriptError(err error) error {
	if err == nil {
		return nil
	}

	var se *ScriptError
	if errors.As(err, &se) {
		return err
	}

	result := ScriptError{Err: err, Message: err.Error()}

	var exception *goja.Exception
	var interrupted *goja.InterruptedError
	switch {
	case errors.As(err, &interrupted):
		result.Stack = interrupted.String()

	case errors.As(err, &exception):
		result.Stack = exception.String()
		if obj, ok := exception.Value().(*goja.Object); ok {
			if v := obj.Get(`message`); v != nil && !goja.IsUndefined(v) && !goja.IsNull(v) {
				result.Message = v.String()
			}
			if v := obj.Get(`stack`); v != nil && !goja.IsUndefined(v) && !goja.IsNull(v) {
				result.Stack = v.String()
			}
		} else if v := exception.Value(); v != nil {
			result.Message = v.String()
		}

	default:
		result.Stack = validator.Trace(err)
	}

	return &result
}
