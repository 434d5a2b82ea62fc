// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package jinjascript

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultBlock is the template block holding page scripts.
const DefaultBlock = `scripts`

var (
	// ErrBlockNotFound is returned by ExtractBlock if the template has no
	// such block.
	ErrBlockNotFound = errors.New(`jinjascript: block not found`)

	// ErrNoScripts is returned by Scripts if nothing executable was found.
	ErrNoScripts = errors.New(`jinjascript: no inline scripts`)

	blockNameRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

	scriptTagRegexp = regexp.MustCompile(`(?i)<script[\s>]`)
)

// Script is an inline script element.
type Script struct {
	// Type is the type attribute, empty if absent.
	Type string

	// Text is the script body, verbatim.
	Text string

	// Index is the position of the element amongst all script elements,
	// including those skipped.
	Index int
}

// ExtractBlock returns the body of the named block, i.e. everything between
// {% block name %} and the first following {% endblock %}.
func ExtractBlock(template, name string) (string, error) {
	if !blockNameRegexp.MatchString(name) {
		return ``, fmt.Errorf("jinjascript: invalid block name %q", name)
	}
	re := regexp.MustCompile(`(?s)\{%-?\s*block\s+` + name + `\s*-?%\}(.*?)\{%-?\s*endblock(?:\s+` + name + `)?\s*-?%\}`)
	match := re.FindStringSubmatch(template)
	if match == nil {
		return ``, fmt.Errorf("%w: %s", ErrBlockNotFound, name)
	}
	return match[1], nil
}

// ExtractInlineScripts returns the executable inline script elements of an
// HTML fragment, in document order. Elements with a src attribute, or a
// non-JavaScript type, are skipped.
func ExtractInlineScripts(html string) ([]Script, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("jinjascript: failed to parse html: %w", err)
	}

	var scripts []Script
	doc.Find(`script`).Each(func(i int, s *goquery.Selection) {
		if _, ok := s.Attr(`src`); ok {
			return
		}
		typ, _ := s.Attr(`type`)
		if !isJavaScriptType(typ) {
			return
		}
		scripts = append(scripts, Script{Type: typ, Text: s.Text(), Index: i})
	})
	return scripts, nil
}

// Scripts extracts the named block, then its inline scripts. A block with no
// script elements at all is treated as a single script. The result is
// ErrNoScripts if there is nothing to run.
func Scripts(template, block string) ([]Script, error) {
	body, err := ExtractBlock(template, block)
	if err != nil {
		return nil, err
	}

	if !scriptTagRegexp.MatchString(body) {
		if strings.TrimSpace(body) == `` {
			return nil, ErrNoScripts
		}
		return []Script{{Text: body}}, nil
	}

	scripts, err := ExtractInlineScripts(body)
	if err != nil {
		return nil, err
	}
	if len(scripts) == 0 {
		return nil, ErrNoScripts
	}
	return scripts, nil
}

// Join concatenates script bodies, in order, as a single source.
func Join(scripts []Script) string {
	var b strings.Builder
	for i, s := range scripts {
		if i != 0 {
			b.WriteString("\n;\n")
		}
		b.WriteString(s.Text)
	}
	return b.String()
}

func isJavaScriptType(typ string) bool {
	switch strings.ToLower(strings.TrimSpace(typ)) {
	case ``, `text/javascript`, `application/javascript`, `application/ecmascript`, `text/ecmascript`:
		return true
	default:
		return false
	}
}
