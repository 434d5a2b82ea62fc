// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package jsharness

import (
	"github.com/dop251/goja_nodejs/console"
	"github.com/joeycumines/go-snippetcheck/validator"
)

// printer adapts validator.Console to the goja_nodejs console module.
// Warnings are written as errors, as node writes both to stderr.
type printer struct {
	console validator.Console
}

var (
	// compile time assertions

	_ console.Printer = printer{}
)

func (x printer) Log(s string) { x.console.Log(s) }

func (x printer) Warn(s string) { x.console.Error(s) }

func (x printer) Error(s string) { x.console.Error(s) }
