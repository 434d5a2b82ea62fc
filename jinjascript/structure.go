// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package jinjascript

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultPreviewLength is the number of runes shown by StructureReport.String.
const DefaultPreviewLength = 200

var (
	ifTagRegexp    = regexp.MustCompile(`\{%-?\s*if\b`)
	endifTagRegexp = regexp.MustCompile(`\{%-?\s*endif\b`)
)

type (
	// StructureReport counts the delimiters of a script. It is a cheap
	// sanity check: strings and comments are not excluded, and template
	// tags contribute their own braces.
	StructureReport struct {
		Source    string
		Braces    Pair
		Parens    Pair
		Brackets  Pair
		IfTags    int
		EndIfTags int
	}

	// Pair counts opening and closing delimiters.
	Pair struct {
		Open  int
		Close int
	}
)

// CheckStructure counts the delimiters and if/endif template tags of src.
func CheckStructure(src string) StructureReport {
	return StructureReport{
		Source:    src,
		Braces:    Pair{strings.Count(src, `{`), strings.Count(src, `}`)},
		Parens:    Pair{strings.Count(src, `(`), strings.Count(src, `)`)},
		Brackets:  Pair{strings.Count(src, `[`), strings.Count(src, `]`)},
		IfTags:    len(ifTagRegexp.FindAllStringIndex(src, -1)),
		EndIfTags: len(endifTagRegexp.FindAllStringIndex(src, -1)),
	}
}

// Balanced reports whether every count matches its counterpart.
func (x StructureReport) Balanced() bool {
	return x.Braces.Balanced() &&
		x.Parens.Balanced() &&
		x.Brackets.Balanced() &&
		x.IfTags == x.EndIfTags
}

// Balanced reports whether Open equals Close.
func (x Pair) Balanced() bool { return x.Open == x.Close }

// String summarises the counts, one per line, followed by a preview of the
// source.
func (x StructureReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "braces: { %d vs } %d\n", x.Braces.Open, x.Braces.Close)
	fmt.Fprintf(&b, "parens: ( %d vs ) %d\n", x.Parens.Open, x.Parens.Close)
	fmt.Fprintf(&b, "brackets: [ %d vs ] %d\n", x.Brackets.Open, x.Brackets.Close)
	fmt.Fprintf(&b, "template conditionals: if %d vs endif %d\n", x.IfTags, x.EndIfTags)
	fmt.Fprintf(&b, "preview:\n%s", Preview(x.Source, DefaultPreviewLength))
	return b.String()
}

// Preview returns the first n runes of src, with an ellipsis if truncated.
func Preview(src string, n int) string {
	if n < 0 {
		n = 0
	}
	var i, count int
	for i = range src {
		if count == n {
			return src[:i] + `...`
		}
		count++
	}
	return src
}
