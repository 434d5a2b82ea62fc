// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

// Package jinjascript prepares the inline script of a Jinja2 page template
// for execution outside the template engine.
//
// The script is located via its block ([ExtractBlock]), separated from any
// surrounding markup ([ExtractInlineScripts]), checked for obviously
// mismatched delimiters ([CheckStructure]), and finally made plain
// JavaScript by substituting stand-in values for template expressions
// ([Values.Substitute]). Nothing here renders templates: statement tags are
// neutralised, not evaluated.
package jinjascript
