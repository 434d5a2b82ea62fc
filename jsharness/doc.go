// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

// Package jsharness executes page script logic in the [goja] JavaScript
// runtime, against a mocked browser environment, confirming it parses and
// runs without throwing.
//
// # Overview
//
// A [Harness] binds the following globals before running its source:
//
//   - document : getElementById, querySelectorAll and addEventListener,
//     delegating to a [validator.Document]
//   - Chart : constructor delegating to a [validator.ChartFactory], the
//     configuration object is converted to a [validator.ChartConfig]
//   - console : the goja_nodejs console module, printing to a
//     [validator.Console]
//   - relationshipStatsLabels / relationshipStatsData : the fixture arrays
//   - setTimeout / setInterval and friends, via the goja_nodejs event loop
//
// Array.prototype.forEach is polyfilled, if the runtime lacks it.
//
// The default source is the page logic embedded as [DefaultSource]. Sources
// extracted from templates may be supplied using [WithSource], see also the
// jinjascript package.
//
// # Failure Handling
//
// [Harness.Run] wraps the execution in the outer scoped attempt: anything
// thrown by the script (or raised by a Go collaborator) results in the
// failed banner, with the error message and the script stack. The inner
// attempt, around chart construction, is part of the script itself.
//
// # Dispatch
//
// With [validator.DispatchImmediate] (the default), the mock document
// invokes DOMContentLoaded listeners from within addEventListener. With
// [validator.DispatchDeferred], listeners are stored, then dispatched on the
// event loop once the script body has completed, which is the order a
// browser would use.
//
// [goja]: https://github.com/dop251/goja
package jsharness
