// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

// Package logging configures the structured (JSON) diagnostics logger shared
// by the snippetcheck command and its packages.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = logiface.LevelWarning

// New returns a logger writing newline delimited JSON to w. A nil w, or a
// disabled level, results in a nil logger, which is safe to use, and writes
// nothing.
func New(w io.Writer, level logiface.Level) *logiface.Logger[logiface.Event] {
	if w == nil || !level.Enabled() {
		return nil
	}
	return stumpy.L.New(
		stumpy.L.WithStumpy(
			stumpy.WithWriter(w),
			stumpy.WithTimeField(``),
		),
		stumpy.L.WithLevel(level),
	).Logger()
}

// ParseLevel accepts the keywords of [logiface.Level.String], as well as the
// common aliases ("error", "warn", "information", "none", "off"). Matching is
// case-insensitive, and an empty string is [DefaultLevel].
func ParseLevel(s string) (logiface.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case ``:
		return DefaultLevel, nil
	case `disabled`, `none`, `off`:
		return logiface.LevelDisabled, nil
	case `emerg`, `emergency`, `panic`:
		return logiface.LevelEmergency, nil
	case `alert`:
		return logiface.LevelAlert, nil
	case `crit`, `critical`:
		return logiface.LevelCritical, nil
	case `err`, `error`:
		return logiface.LevelError, nil
	case `warning`, `warn`:
		return logiface.LevelWarning, nil
	case `notice`:
		return logiface.LevelNotice, nil
	case `info`, `information`, `informational`:
		return logiface.LevelInformational, nil
	case `debug`:
		return logiface.LevelDebug, nil
	case `trace`:
		return logiface.LevelTrace, nil
	default:
		return logiface.LevelDisabled, fmt.Errorf("logging: unknown level %q", s)
	}
}
