// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package validator

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

type (
	// Console is the only observable output surface of a run.
	Console interface {
		Log(args ...any)
		Error(args ...any)
	}

	// WriterConsole writes each call as a single line, log calls to Out and
	// error calls to Err. Operands are space separated, see fmt.Sprintln.
	WriterConsole struct {
		Out io.Writer
		Err io.Writer
		mu  sync.Mutex
	}

	// Recorder is a Console which retains every call, for inspection.
	Recorder struct {
		entries []Entry
		mu      sync.Mutex
	}

	// Entry is a single recorded Console call.
	Entry struct {
		Args  []any
		Error bool
	}

	nopConsole struct{}
)

var (
	// compile time assertions

	_ Console = (*WriterConsole)(nil)
	_ Console = (*Recorder)(nil)
	_ Console = nopConsole{}
)

// NewWriterConsole returns a WriterConsole, nil writers discard.
func NewWriterConsole(out, err io.Writer) *WriterConsole {
	if out == nil {
		out = io.Discard
	}
	if err == nil {
		err = io.Discard
	}
	return &WriterConsole{Out: out, Err: err}
}

func (x *WriterConsole) Log(args ...any) { x.write(x.Out, args) }

func (x *WriterConsole) Error(args ...any) { x.write(x.Err, args) }

func (x *WriterConsole) write(w io.Writer, args []any) {
	x.mu.Lock()
	defer x.mu.Unlock()
	_, _ = io.WriteString(w, fmt.Sprintln(args...))
}

func (x *Recorder) Log(args ...any) { x.record(Entry{Args: args}) }

func (x *Recorder) Error(args ...any) { x.record(Entry{Args: args, Error: true}) }

func (x *Recorder) record(e Entry) {
	x.mu.Lock()
	x.entries = append(x.entries, e)
	x.mu.Unlock()
}

// Entries returns a copy of the recorded entries, in call order.
func (x *Recorder) Entries() []Entry {
	x.mu.Lock()
	defer x.mu.Unlock()
	return append([]Entry(nil), x.entries...)
}

// Find returns every entry whose first operand is the given message.
func (x *Recorder) Find(message string) (entries []Entry) {
	for _, e := range x.Entries() {
		if e.Message() == message {
			entries = append(entries, e)
		}
	}
	return
}

// Lines returns the entries formatted as WriterConsole would write them,
// without the trailing newline.
func (x *Recorder) Lines() []string {
	entries := x.Entries()
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	return lines
}

// Message returns the first operand, if it is a string.
func (x Entry) Message() string {
	if len(x.Args) != 0 {
		if s, ok := x.Args[0].(string); ok {
			return s
		}
	}
	return ``
}

func (x Entry) String() string {
	return strings.TrimSuffix(fmt.Sprintln(x.Args...), "\n")
}

func (nopConsole) Log(...any) {}

func (nopConsole) Error(...any) {}
