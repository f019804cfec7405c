// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package names

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "circle", expected: "circle"},
		{name: "single char", input: "g", expected: "g"},
		{name: "hyphen", input: "color-profile", expected: "colorProfile"},
		{name: "many hyphens", input: "font-face-format", expected: "fontFaceFormat"},
		{name: "colon", input: "xlink:href", expected: "xlinkHref"},
		{name: "camel case is lowered", input: "linearGradient", expected: "lineargradient"},
		{name: "camel case attribute", input: "viewBox", expected: "viewbox"},
		{name: "keyword class", input: "class", expected: "class_"},
		{name: "keyword type", input: "type", expected: "type_"},
		{name: "keyword in", input: "in", expected: "in_"},
		{name: "runtime text", input: "text", expected: "text_"},
		{name: "digits kept", input: "in2", expected: "in2"},
		{name: "leading digit", input: "2d", expected: "_2d"},
		{name: "leading separator", input: ":foo", expected: "foo"},
		{name: "double separator", input: "a--b", expected: "aB"},
		{name: "trailing separator", input: "a-", expected: "a"},
		{name: "dot", input: "xml.base", expected: "xmlBase"},
		{name: "only separators", input: "-:-", expected: "_blank"},
		{name: "empty", input: "", expected: "_blank"},
		{name: "non ascii dropped", input: "café-au-lait", expected: "cafAuLait"},
		{name: "underscore alone", input: "_", expected: "_blank"},
		{name: "underscore between separators", input: "-_-", expected: "_blank"},
		{name: "leading prime", input: "'x", expected: "x"},
		{name: "prime after separator", input: "-'x", expected: "x"},
		{name: "trailing prime kept", input: "x'", expected: "x'"},
		{name: "primes only", input: "''", expected: "_blank"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Sanitize(tc.input); got != tc.expected {
				t.Errorf("Sanitize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestSanitizeTotal(t *testing.T) {
	inputs := []string{
		"a", "altGlyph", "animateMotion", "color-profile", "feFuncA",
		"font-face", "font-face-format", "font-face-name", "font-face-src",
		"font-face-uri", "foreignObject", "missing-glyph", "xlink:href",
		"xml:lang", "xml:space", "accent-height", "alignment-baseline",
		"class", "in", "in2", "k1", "type", "text", "-", "", "123",
		"_", "-_-", "__", "'x", "'", "_'", "'1", "1'", "_x",
	}

	for _, in := range inputs {
		got := Sanitize(in)
		if got == "" {
			t.Errorf("Sanitize(%q) returned empty identifier", in)
		}
		if !IsIdentifier(got) {
			t.Errorf("Sanitize(%q) = %q, not a legal identifier", in, got)
		}
		if again := Sanitize(in); again != got {
			t.Errorf("Sanitize(%q) not deterministic: %q then %q", in, got, again)
		}
	}
}

func TestNew(t *testing.T) {
	id := New("xlink:href")
	if id.Raw != "xlink:href" || id.Ident != "xlinkHref" {
		t.Errorf("New(%q) = %+v", "xlink:href", id)
	}

	id = New("_")
	if !IsIdentifier(id.Ident) {
		t.Errorf("New(%q).Ident = %q, not a legal identifier", "_", id.Ident)
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercase", input: "svg", expected: "Svg"},
		{name: "already capitalized", input: "Svg", expected: "Svg"},
		{name: "empty", input: "", expected: ""},
		{name: "single char", input: "a", expected: "A"},
		{name: "camel", input: "fontFace", expected: "FontFace"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Capitalize(tc.input); got != tc.expected {
				t.Errorf("Capitalize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "circle", want: true},
		{input: "xlinkHref", want: true},
		{input: "_2d", want: true},
		{input: "class_", want: true},
		{input: "x'", want: true},
		{input: "", want: false},
		{input: "_", want: false},
		{input: "class", want: false},
		{input: "Circle", want: false},
		{input: "font-face", want: false},
		{input: "2d", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsIdentifier(tt.input); got != tt.want {
				t.Errorf("IsIdentifier(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
