// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package validator

import (
	"errors"
	"fmt"
	"runtime/debug"
)

type (
	// PanicError is returned by Attempt when the attempted function panics.
	PanicError struct {
		Value any
		Stack []byte
	}

	// StackTracer is implemented by errors which carry a diagnostic trace.
	StackTracer interface {
		error
		StackTrace() string
	}
)

var (
	// compile time assertions

	_ StackTracer = (*PanicError)(nil)
)

func (e *PanicError) Error() string {
	return fmt.Sprintf("validator: panic: %v", e.Value)
}

// Unwrap returns the panic value, if it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// StackTrace returns the stack captured at the point of recovery.
func (e *PanicError) StackTrace() string {
	return string(e.Stack)
}

// Attempt runs fn, returning its error, or a *PanicError if it panics.
// It is the scoped attempt of the page logic: a failure handler is
// guaranteed to see anything raised inside fn.
func Attempt(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return fn()
}

// Trace returns the diagnostic trace for err: the trace of the first
// StackTracer in its chain, or the verbose formatting of err itself.
func Trace(err error) string {
	if err == nil {
		return ``
	}
	var st StackTracer
	if errors.As(err, &st) {
		if s := st.StackTrace(); s != `` {
			return s
		}
	}
	return fmt.Sprintf(`%+v`, err)
}
