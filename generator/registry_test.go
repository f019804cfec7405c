// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"

	"github.com/phadej/blaze-svg/internal/names"
	"github.com/phadej/blaze-svg/model"
)

func variant(path ...string) *model.Variant {
	return &model.Variant{VersionPath: path}
}

func TestRegistry(t *testing.T) {
	// Reset registry before and after test
	Reset()
	defer Reset()

	t.Run("Register and Get", func(t *testing.T) {
		Register(variant("Svg11"))

		got, ok := Get("Svg11")
		if !ok {
			t.Fatal("expected to find registered variant")
		}
		if got.Name() != "Svg11" {
			t.Errorf("got name %q, want %q", got.Name(), "Svg11")
		}
	})

	t.Run("Get nonexistent", func(t *testing.T) {
		_, ok := Get("nonexistent")
		if ok {
			t.Error("expected not to find nonexistent variant")
		}
	})

	t.Run("List", func(t *testing.T) {
		Reset()
		Register(variant("Svg", "Tiny12"))
		Register(variant("Svg11"))

		names := List()
		// Should be sorted
		if diff := cmp.Diff([]string{"Svg.Tiny12", "Svg11"}, names); diff != "" {
			t.Errorf("List() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("All returns a copy", func(t *testing.T) {
		Reset()
		Register(variant("one"))
		Register(variant("two"))

		all := All()
		if len(all) != 2 {
			t.Fatalf("got %d variants, want 2", len(all))
		}
		delete(all, "one")
		if _, ok := Get("one"); !ok {
			t.Error("deleting from All() result must not touch the registry")
		}
	})

	t.Run("Duplicate panics", func(t *testing.T) {
		Reset()
		Register(variant("dup"))

		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic on duplicate registration")
			}
		}()
		Register(variant("dup"))
	})
}

func TestConfig_Option(t *testing.T) {
	cfg := Config{
		Options: map[string]string{
			"module": "Custom",
		},
	}

	if got := cfg.Option("module", "default"); got != "Custom" {
		t.Errorf("got %q, want %q", got, "Custom")
	}

	if got := cfg.Option("missing", "default"); got != "default" {
		t.Errorf("got %q, want %q", got, "default")
	}
}

func TestConfig_RuntimeModule(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.RuntimeModule(); got != "Text.Blaze.Svg" {
		t.Errorf("RuntimeModule() = %q, want %q", got, "Text.Blaze.Svg")
	}

	cfg.Options = map[string]string{OptionRuntimeModule: "Text.Blaze.Svg.Renderer"}
	if got := cfg.RuntimeModule(); got != "Text.Blaze.Svg.Renderer" {
		t.Errorf("RuntimeModule() = %q, want %q", got, "Text.Blaze.Svg.Renderer")
	}
}

func TestConfig_Paths(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name       string
		path       []string
		module     string
		elements   string
		attributes string
	}{
		{
			name:       "single segment",
			path:       []string{"Svg11"},
			module:     "Text.Blaze.Svg11",
			elements:   filepath.Join("Text", "Blaze", "Svg11.hs"),
			attributes: filepath.Join("Text", "Blaze", "Svg11", "Attributes.hs"),
		},
		{
			name:       "nested",
			path:       []string{"Svg", "Tiny12"},
			module:     "Text.Blaze.Svg.Tiny12",
			elements:   filepath.Join("Text", "Blaze", "Svg", "Tiny12.hs"),
			attributes: filepath.Join("Text", "Blaze", "Svg", "Tiny12", "Attributes.hs"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := variant(tt.path...)
			if got := cfg.ModuleName(v); got != tt.module {
				t.Errorf("ModuleName() = %q, want %q", got, tt.module)
			}
			if got := cfg.AttributesModuleName(v); got != tt.module+".Attributes" {
				t.Errorf("AttributesModuleName() = %q", got)
			}
			if got := cfg.ElementsPath(v); got != tt.elements {
				t.Errorf("ElementsPath() = %q, want %q", got, tt.elements)
			}
			if got := cfg.AttributesPath(v); got != tt.attributes {
				t.Errorf("AttributesPath() = %q, want %q", got, tt.attributes)
			}
		})
	}

	if got := cfg.RuntimeModule(); got != "Text.Blaze.Svg" {
		t.Errorf("RuntimeModule() = %q, want %q", got, "Text.Blaze.Svg")
	}
}

func TestConfig_NamespacesFor(t *testing.T) {
	cfg := DefaultConfig()

	if diff := cmp.Diff(DefaultNamespaces, cfg.NamespacesFor(variant("Svg11"))); diff != "" {
		t.Errorf("default namespaces mismatch (-want +got):\n%s", diff)
	}

	override := []model.Namespace{{Name: "xmlns", URI: "urn:example"}}
	v := &model.Variant{VersionPath: []string{"X"}, Namespaces: override}
	if diff := cmp.Diff(override, cfg.NamespacesFor(v)); diff != "" {
		t.Errorf("override namespaces mismatch (-want +got):\n%s", diff)
	}
}

func TestOutput(t *testing.T) {
	out := NewOutput("Svg11")
	out.Add("b.hs", []byte("content2"))
	out.Add("a.hs", []byte("content1"))

	if len(out.Files) != 2 {
		t.Fatalf("got %d files, want 2", len(out.Files))
	}
	if diff := cmp.Diff([]string{"a.hs", "b.hs"}, out.Paths()); diff != "" {
		t.Errorf("Paths() mismatch (-want +got):\n%s", diff)
	}
}

func TestNameError(t *testing.T) {
	var err error = &NameError{
		Variant: "Svg11",
		Name:    "title",
		Ident:   names.Sanitize("title"),
		Err:     ErrAmbiguousName,
	}
	err = errors.Wrap(err, "synthesize")

	if !errors.Is(err, ErrAmbiguousName) {
		t.Errorf("errors.Is(%v, ErrAmbiguousName) = false", err)
	}
	if errors.Is(err, ErrReservedIdentifier) {
		t.Errorf("errors.Is(%v, ErrReservedIdentifier) = true", err)
	}

	name, ok := RejectedName(err)
	if !ok || name != "title" {
		t.Errorf("RejectedName() = %q, %v; want %q, true", name, ok, "title")
	}

	want := `synthesize: variant Svg11: name "title": name is used as both element and attribute (title)`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNameError_Collision(t *testing.T) {
	err := &NameError{Variant: "X", Name: "a-b", Other: "a:b", Ident: "aB", Err: ErrIdentifierCollision}

	want := `variant X: names "a:b" and "a-b": distinct names sanitize to the same identifier (aB)`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if _, ok := RejectedName(errors.New("plain")); ok {
		t.Error("RejectedName on a plain error should report false")
	}
}
