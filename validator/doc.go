// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

// Package validator runs the page-load logic of the relationship prediction
// result page against an injected host, reporting whether it completes
// without raising an error.
//
// # Overview
//
// The page logic registers a DOMContentLoaded listener which draws a bar
// chart of relationship type counts into the "relationshipChart" canvas, and
// tags each ".prediction-card" element with a confidence tier class. The
// [Validator] reproduces that logic in Go. Host capabilities are expressed as
// collaborators ([Document], [ChartFactory], [Console]) passed in via options,
// rather than installed as globals, and default to the mocks in this package.
//
// # Failure Handling
//
// Two scoped attempts are used:
//
//   - the chart construction attempt, whose failure is logged and absorbed
//   - the outer attempt, around listener registration, whose failure is
//     reported as the failed banner (message and diagnostic trace)
//
// Neither escalates: [Validator.Run] always returns a [Report].
//
// # Usage
//
//	v, err := validator.New(
//	    validator.WithConsole(validator.NewWriterConsole(os.Stdout, os.Stderr)),
//	)
//	if err != nil {
//	    return err
//	}
//	if report := v.Run(); !report.Passed {
//	    // report.Err describes what the snippet raised
//	}
package validator
