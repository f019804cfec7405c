// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package names

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultReserved(t *testing.T) {
	r := DefaultReserved()

	for _, name := range []string{
		"attribute", "external", "preEscapedText", "docType",
		"lazyText", "textComment", "stringComment", "preEscapedLazyText", "textTag", "toSvg",
	} {
		if !r.Has(name) {
			t.Errorf("DefaultReserved() missing %q", name)
		}
	}
	if r.Has("id") {
		t.Error("DefaultReserved() should not reserve \"id\"")
	}
}

func TestReservedWith(t *testing.T) {
	base := NewReserved("b", "a")
	ext := base.With("id")

	if base.Has("id") {
		t.Error("With must not modify the receiver")
	}
	if diff := cmp.Diff([]string{"a", "b", "id"}, ext.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if ext.Len() != 3 {
		t.Errorf("Len() = %d, want 3", ext.Len())
	}
}

func TestReservedZeroValue(t *testing.T) {
	var r Reserved
	if r.Has("anything") {
		t.Error("zero Reserved should be empty")
	}
	if len(r.Names()) != 0 {
		t.Errorf("zero Reserved Names() = %v", r.Names())
	}
}

func TestDefaultReservedCatchesHyphenatedNames(t *testing.T) {
	r := DefaultReserved()

	for _, raw := range []string{"lazy-text", "text-comment", "string-comment", "to-svg", "text-tag", "null"} {
		if !r.Has(Sanitize(raw)) {
			t.Errorf("DefaultReserved() does not reserve Sanitize(%q) = %q", raw, Sanitize(raw))
		}
	}
}
