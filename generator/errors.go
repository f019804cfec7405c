// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/phadej/blaze-svg/model"
)

// Rule sentinels. Every generation failure wraps exactly one of these;
// check with errors.Is.
var (
	// ErrAmbiguousName: a raw name is both an element and an attribute.
	ErrAmbiguousName = errors.New("name is used as both element and attribute")

	// ErrReservedIdentifier: a sanitized name is a reserved identifier.
	ErrReservedIdentifier = errors.New("identifier is reserved by the runtime")

	// ErrEmptyExportList: a module would export no combinators.
	ErrEmptyExportList = errors.New("module exports no combinators")

	// ErrIdentifierCollision: distinct raw names sanitize to one identifier.
	ErrIdentifierCollision = errors.New("distinct names sanitize to the same identifier")

	// ErrElementRoleConflict: a name is both a parent and a leaf.
	ErrElementRoleConflict = errors.New("element is both parent and leaf")

	// ErrMissingRoot: the root element is not a parent element.
	ErrMissingRoot = errors.New("root element is not a parent element")

	// ErrInvalidVariant: the variant is structurally broken.
	ErrInvalidVariant = model.ErrInvalidVariant
)

// NameError reports the raw name that made a variant fail and the rule
// it broke. It unwraps to the rule sentinel.
type NameError struct {
	// Variant is the display name of the variant.
	Variant string

	// Name is the offending raw name.
	Name string

	// Ident is the sanitized identifier of Name.
	Ident string

	// Other is the second raw name for identifier collisions.
	Other string

	// Err is the rule sentinel.
	Err error
}

func (e *NameError) Error() string {
	if e.Other != "" {
		return fmt.Sprintf("variant %s: names %q and %q: %v (%s)", e.Variant, e.Other, e.Name, e.Err, e.Ident)
	}
	return fmt.Sprintf("variant %s: name %q: %v (%s)", e.Variant, e.Name, e.Err, e.Ident)
}

func (e *NameError) Unwrap() error { return e.Err }

// RejectedName returns the raw name carried by err, if any.
func RejectedName(err error) (string, bool) {
	var ne *NameError
	if errors.As(err, &ne) {
		return ne.Name, true
	}
	return "", false
}
