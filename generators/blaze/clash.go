// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package blaze

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/phadej/blaze-svg/generator"
	"github.com/phadej/blaze-svg/internal/names"
	"github.com/phadej/blaze-svg/model"
)

// IsNameClash reports whether name is used as both an element and an
// attribute of v, or sanitizes to a reserved identifier.
func IsNameClash(v *model.Variant, reserved names.Reserved, name string) bool {
	return CheckName(v, reserved, name) != nil
}

// CheckName is IsNameClash returning the rule that fired as a
// *generator.NameError, or nil. Detection only; names are never rewritten.
func CheckName(v *model.Variant, reserved names.Reserved, name string) error {
	ident := names.Sanitize(name)
	switch {
	case v.IsElement(name) && v.IsAttribute(name):
		return nameError(v, name, ident, generator.ErrAmbiguousName)
	case reserved.Has(ident):
		return nameError(v, name, ident, generator.ErrReservedIdentifier)
	}
	return nil
}

// CheckVariant runs every check that must pass before any module of v is
// rendered and returns the first failure.
func CheckVariant(v *model.Variant, reserved names.Reserved) error {
	if err := v.Validate(); err != nil {
		return err
	}

	elements := v.Elements()
	attributes := v.SortedAttributes()
	if len(elements) == 0 {
		return errors.Wrap(generator.ErrEmptyExportList, "no elements")
	}
	if len(attributes) == 0 {
		return errors.Wrap(generator.ErrEmptyExportList, "no attributes")
	}

	for _, name := range elements {
		if v.IsParent(name) && v.IsLeaf(name) {
			return nameError(v, name, names.Sanitize(name), generator.ErrElementRoleConflict)
		}
	}

	root := v.RootElement()
	if !v.IsParent(root) {
		return errors.WithHint(
			nameError(v, root, names.Sanitize(root), generator.ErrMissingRoot),
			"add the root element to the parents or set root explicitly")
	}

	for _, name := range slices.Concat(elements, attributes) {
		if err := CheckName(v, reserved, name); err != nil {
			return err
		}
	}

	return checkUnique(v, elements, attributes)
}

// checkUnique fails when two distinct raw names, or a raw name and one of
// the fixed combinators, sanitize to the same identifier.
func checkUnique(v *model.Variant, elements, attributes []string) error {
	rootIdent := RootName(v.RootElement())
	seen := map[string]string{
		docTypeIdent: docTypeIdent,
		rootIdent:    rootIdent,
	}
	for _, name := range slices.Concat(elements, attributes) {
		id := names.New(name)
		prev, ok := seen[id.Ident]
		if ok && prev != id.Raw {
			return &generator.NameError{
				Variant: v.Name(),
				Name:    id.Raw,
				Other:   prev,
				Ident:   id.Ident,
				Err:     generator.ErrIdentifierCollision,
			}
		}
		seen[id.Ident] = id.Raw
	}
	return nil
}

func nameError(v *model.Variant, name, ident string, rule error) error {
	return &generator.NameError{Variant: v.Name(), Name: name, Ident: ident, Err: rule}
}
