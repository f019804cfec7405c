// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package names turns raw markup vocabulary names into Haskell identifiers
// and holds the set of identifiers generated code must not shadow.
package names

import (
	"strings"
	"unicode"
)

// escaped lists identifiers that get a trailing underscore instead of
// failing generation: Haskell reserved words, plus "text", which every
// generated element module re-exports from Text.Blaze.
var escaped = map[string]bool{
	"case":     true,
	"class":    true,
	"data":     true,
	"default":  true,
	"deriving": true,
	"do":       true,
	"else":     true,
	"foreign":  true,
	"if":       true,
	"import":   true,
	"in":       true,
	"infix":    true,
	"infixl":   true,
	"infixr":   true,
	"instance": true,
	"let":      true,
	"module":   true,
	"newtype":  true,
	"of":       true,
	"then":     true,
	"type":     true,
	"where":    true,
	"text":     true,
}

// blank replaces names that contain no identifier characters at all.
const blank = "_blank"

// Identifier pairs a sanitized identifier with the raw name it came from.
// Fixed combinators that have no raw name leave Raw empty.
type Identifier struct {
	Raw   string
	Ident string
}

// New sanitizes raw and returns both forms.
func New(raw string) Identifier {
	return Identifier{Raw: raw, Ident: Sanitize(raw)}
}

// Sanitize returns a Haskell-safe identifier for a raw vocabulary name.
//
// The name is lowercased; characters that cannot appear in an identifier
// (such as '-' and ':') are dropped and the letter after them is
// uppercased, so "font-face-format" becomes "fontFaceFormat" and
// "xlink:href" becomes "xlinkHref". Reserved words get a trailing
// underscore ("class" -> "class_"), and names starting with a digit get a
// leading one. Leading primes are dropped, and a name with no letters or
// digits left (including "_" alone) becomes "_blank".
func Sanitize(raw string) string {
	var b strings.Builder
	upper := false
	for _, r := range strings.ToLower(raw) {
		if !isIdentRune(r) {
			upper = b.Len() > 0
			continue
		}
		if r == '\'' && b.Len() == 0 {
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}

	ident := b.String()
	switch {
	case strings.Trim(ident, "_'") == "":
		return blank
	case isDigit(rune(ident[0])):
		ident = "_" + ident
	}
	if escaped[ident] {
		ident += "_"
	}
	return ident
}

// Capitalize returns name with the first letter uppercased.
// Returns empty string for empty input.
func Capitalize(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// IsIdentifier reports whether s can be used as a Haskell variable name
// without escaping.
func IsIdentifier(s string) bool {
	if s == "" || s == "_" || escaped[s] {
		return false
	}
	for i, r := range s {
		if i == 0 && !(r == '_' || (r >= 'a' && r <= 'z')) {
			return false
		}
		if !isIdentRune(r) {
			return false
		}
	}
	return true
}

func isIdentRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || isDigit(r) || r == '_' || r == '\''
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
