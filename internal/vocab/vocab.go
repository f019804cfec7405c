// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package vocab provides the built-in vocabulary tables and loads
// additional vocabularies from YAML files.
//
// A vocabulary file describes a single variant:
//
//	version_path: [Svg11, Tiny]
//	doctype:
//	  - <?xml version="1.0" encoding="UTF-8"?>
//	parents: [svg, g]
//	leafs: [rect, circle]
//	attributes: [cx, cy, id]
//	self_closing: true
package vocab

import (
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/phadej/blaze-svg/model"
)

// ErrDuplicateVariant is returned when two variants share a display name.
var ErrDuplicateVariant = errors.New("duplicate vocabulary variant")

// Builtin returns the variants compiled into the generator.
func Builtin() []*model.Variant {
	return []*model.Variant{SVG11()}
}

// Decode reads one variant from r. Unknown keys are rejected.
func Decode(r io.Reader) (*model.Variant, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var v model.Variant
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Wrap(model.ErrInvalidVariant, "empty vocabulary document")
		}
		return nil, errors.Wrap(err, "failed to parse vocabulary")
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// LoadFile reads a variant from a YAML vocabulary file.
func LoadFile(path string) (*model.Variant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read vocabulary file %s", path)
	}
	v, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "vocabulary file %s", path)
	}
	return v, nil
}

// LoadFiles reads every path in order.
func LoadFiles(paths []string) ([]*model.Variant, error) {
	variants := make([]*model.Variant, 0, len(paths))
	for _, p := range paths {
		v, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, nil
}

// Set keys variants by display name. Two variants with the same name are
// an error.
func Set(variants ...*model.Variant) (map[string]*model.Variant, error) {
	set := make(map[string]*model.Variant, len(variants))
	for _, v := range variants {
		name := v.Name()
		if _, ok := set[name]; ok {
			return nil, errors.Wrapf(ErrDuplicateVariant, "variant %s", name)
		}
		set[name] = v
	}
	return set, nil
}
