// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package model defines the vocabulary description that combinator
// modules are generated from.
//
// A Variant describes one version of a markup language: which names are
// elements that may hold content (parents), which are elements that may
// not (leafs), which are attributes, and how the document type looks.
// Variants are read-only once constructed; generation is a pure function
// of a Variant and the generator configuration.
package model

import (
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

// DefaultRoot is the root element used when a Variant does not name one.
const DefaultRoot = "svg"

// ErrInvalidVariant is returned by Validate for structurally broken variants.
var ErrInvalidVariant = errors.New("invalid vocabulary variant")

// Variant is one markup-language version to generate combinators for.
type Variant struct {
	// VersionPath holds the module path segments below the module prefix,
	// e.g. ["Svg11"]. It also names the output directory.
	VersionPath []string `yaml:"version_path"`

	// DocType lines are emitted verbatim as the document type declaration.
	DocType []string `yaml:"doctype"`

	// Parents are element names that may contain nested content.
	Parents []string `yaml:"parents"`

	// Leafs are element names that may not contain nested content.
	Leafs []string `yaml:"leafs"`

	// Attributes are attribute names.
	Attributes []string `yaml:"attributes"`

	// SelfClosing renders leaf elements as <tag />.
	SelfClosing bool `yaml:"self_closing"`

	// Root is the raw name of the root element wrapped by the doctype
	// combinator. Empty means DefaultRoot.
	Root string `yaml:"root,omitempty"`

	// Namespaces overrides the namespace attributes attached to the root
	// element. Empty means the generator defaults.
	Namespaces []Namespace `yaml:"namespaces,omitempty"`
}

// Namespace is a namespace declaration attached to the root element,
// such as xmlns="http://www.w3.org/2000/svg".
type Namespace struct {
	Name string `yaml:"name" toml:"name"`
	URI  string `yaml:"uri" toml:"uri"`
}

// Name returns the display name of the variant ("Svg11").
func (v *Variant) Name() string {
	return strings.Join(v.VersionPath, ".")
}

// RootElement returns the raw root element name.
func (v *Variant) RootElement() string {
	if v.Root == "" {
		return DefaultRoot
	}
	return v.Root
}

// Elements returns parents and leafs merged, deduplicated and sorted by
// raw name.
func (v *Variant) Elements() []string {
	return sortedSet(v.Parents, v.Leafs)
}

// SortedAttributes returns the attribute names deduplicated and sorted.
func (v *Variant) SortedAttributes() []string {
	return sortedSet(v.Attributes)
}

// IsParent reports whether name is a container element.
func (v *Variant) IsParent(name string) bool {
	return slices.Contains(v.Parents, name)
}

// IsLeaf reports whether name is a leaf element.
func (v *Variant) IsLeaf(name string) bool {
	return slices.Contains(v.Leafs, name)
}

// IsElement reports whether name is a parent or a leaf.
func (v *Variant) IsElement(name string) bool {
	return v.IsParent(name) || v.IsLeaf(name)
}

// IsAttribute reports whether name is an attribute.
func (v *Variant) IsAttribute(name string) bool {
	return slices.Contains(v.Attributes, name)
}

// Validate checks the structural requirements that do not depend on
// naming: a non-empty version path without blank segments, and no control
// characters in any name, doctype line or namespace.
func (v *Variant) Validate() error {
	if len(v.VersionPath) == 0 {
		return errors.Wrap(ErrInvalidVariant, "empty version path")
	}
	for i, seg := range v.VersionPath {
		if strings.TrimSpace(seg) == "" {
			return errors.Wrapf(ErrInvalidVariant, "blank version path segment %d", i)
		}
		if strings.ContainsAny(seg, `/\.`) || HasControl(seg) {
			return errors.Wrapf(ErrInvalidVariant, "version path segment %q contains a separator or control character", seg)
		}
	}

	fields := map[string][]string{
		"doctype":    v.DocType,
		"parents":    v.Parents,
		"leafs":      v.Leafs,
		"attributes": v.Attributes,
		"root":       {v.Root},
	}
	for _, ns := range v.Namespaces {
		fields["namespaces"] = append(fields["namespaces"], ns.Name, ns.URI)
	}
	for _, field := range slices.Sorted(maps.Keys(fields)) {
		for _, s := range fields[field] {
			if HasControl(s) {
				return errors.Wrapf(ErrInvalidVariant, "%s: %q contains a control character", field, s)
			}
		}
	}
	return nil
}

// HasControl reports whether s contains a control character, which would
// break out of the line it is rendered into.
func HasControl(s string) bool {
	return strings.ContainsFunc(s, unicode.IsControl)
}

func sortedSet(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}
