// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package validator

// Fixture is the data the server substitutes into the page template, the
// relationship type labels and the number of predictions for each.
type Fixture struct {
	Labels []string  `json:"labels"`
	Counts []float64 `json:"data"`
}

// DefaultFixture returns the fixed stand-in data used when no fixture is
// configured.
func DefaultFixture() Fixture {
	return Fixture{
		Labels: []string{`Type 1`, `Type 2`, `Type 3`},
		Counts: []float64{10, 20, 30},
	}
}
