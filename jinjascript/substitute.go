// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package jinjascript

import (
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/joeycumines/go-snippetcheck/validator"
)

var (
	expressionRegexp = regexp.MustCompile(`(?s)\{\{-?\s*(.*?)\s*-?\}\}`)
	statementRegexp  = regexp.MustCompile(`(?s)\{%-?\s*(.*?)\s*-?%\}`)
	commentRegexp    = regexp.MustCompile(`(?s)\{#.*?#\}`)
)

// Values maps template expressions, without filters, e.g.
// "relationship_stats.labels", to their stand-in values.
type Values map[string]any

// FixtureValues returns the values the relationship result page expects,
// taken from fixture.
func FixtureValues(fixture validator.Fixture) Values {
	return Values{
		`relationship_stats`: map[string]any{
			`labels`: fixture.Labels,
			`data`:   fixture.Counts,
		},
		`relationship_stats.labels`: fixture.Labels,
		`relationship_stats.data`:   fixture.Counts,
	}
}

// Substitute replaces each {{ expression }} in src with the JSON encoding of
// its value, ignoring any filters (e.g. |tojson, |safe). Expressions without
// a value become null, and are returned as unresolved, in order of first
// occurrence. Statement tags ({% ... %}) and comments ({# ... #}) are
// replaced with JavaScript comments, their bodies are not evaluated.
func (x Values) Substitute(src string) (out string, unresolved []string, err error) {
	out = commentRegexp.ReplaceAllString(src, `/* */`)

	out = statementRegexp.ReplaceAllStringFunc(out, func(tag string) string {
		body := statementRegexp.FindStringSubmatch(tag)[1]
		return `/* {% ` + strings.ReplaceAll(body, `*/`, `* /`) + ` %} */`
	})

	out = expressionRegexp.ReplaceAllStringFunc(out, func(tag string) string {
		if err != nil {
			return tag
		}
		expr := expressionName(expressionRegexp.FindStringSubmatch(tag)[1])
		value, ok := x[expr]
		if !ok {
			if !slices.Contains(unresolved, expr) {
				unresolved = append(unresolved, expr)
			}
			return `null`
		}
		b, e := json.Marshal(value)
		if e != nil {
			err = fmt.Errorf("jinjascript: failed to encode %q: %w", expr, e)
			return tag
		}
		return string(b)
	})

	if err != nil {
		return ``, nil, err
	}
	return out, unresolved, nil
}

// expressionName strips filters and whitespace from an expression.
func expressionName(expr string) string {
	if i := strings.IndexByte(expr, '|'); i >= 0 {
		expr = expr[:i]
	}
	return strings.TrimSpace(expr)
}
