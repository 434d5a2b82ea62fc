// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package validator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

const (
	// HighConfidence is the inclusive lower bound of TierHigh.
	HighConfidence = 0.7
	// MediumConfidence is the inclusive lower bound of TierMedium.
	MediumConfidence = 0.4
)

// Tier is a confidence tier, derived from a numeric threshold comparison.
type Tier int

// Classify maps a confidence value to its tier. NaN is TierLow.
func Classify(confidence float64) Tier {
	if confidence >= HighConfidence {
		return TierHigh
	}
	if confidence >= MediumConfidence {
		return TierMedium
	}
	return TierLow
}

func (x Tier) String() string {
	switch x {
	case TierLow:
		return `low`
	case TierMedium:
		return `medium`
	case TierHigh:
		return `high`
	default:
		return fmt.Sprintf(`Tier(%d)`, int(x))
	}
}

// Class returns the CSS class the page applies for the tier.
func (x Tier) Class() string {
	return `confidence-` + x.String()
}

// ParseFloat parses the longest numeric prefix of s, after leading
// whitespace, returning NaN if there is none. This matches the behaviour of
// the JavaScript parseFloat global, which is what the page uses to read
// data-confidence attributes.
func ParseFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	var i int
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	if strings.HasPrefix(s[i:], `Infinity`) {
		if s[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	var digits int
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return math.NaN()
	}

	// the exponent only counts if it has at least one digit
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}

	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return v
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
