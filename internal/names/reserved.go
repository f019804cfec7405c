// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package names

import "slices"

// defaultReserved are identifiers exported by the blaze runtime modules
// that generated code imports or re-exports. "id" is left out on purpose
// so vocabularies can define an id attribute.
var defaultReserved = []string{
	"attribute",
	"contents",
	"customAttribute",
	"customLeaf",
	"customParent",
	"dataAttribute",
	"docType",
	"external",
	"lazyText",
	"lazyTextComment",
	"lazyTextValue",
	"null",
	"preEscapedLazyText",
	"preEscapedLazyTextValue",
	"preEscapedString",
	"preEscapedStringValue",
	"preEscapedText",
	"preEscapedTextBuilder",
	"preEscapedTextBuilderValue",
	"preEscapedTextValue",
	"preEscapedToMarkup",
	"preEscapedToSvg",
	"preEscapedToValue",
	"string",
	"stringComment",
	"stringTag",
	"stringValue",
	"textBuilder",
	"textBuilderValue",
	"textComment",
	"textTag",
	"textValue",
	"toMarkup",
	"toSvg",
	"toValue",
	"unsafeByteString",
	"unsafeByteStringComment",
	"unsafeByteStringValue",
	"unsafeLazyByteString",
	"unsafeLazyByteStringComment",
	"unsafeLazyByteStringValue",
}

// Reserved is an immutable set of identifiers already taken by the host
// runtime. The zero value is an empty set.
type Reserved struct {
	set map[string]struct{}
}

// NewReserved builds a set from names.
func NewReserved(names ...string) Reserved {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return Reserved{set: set}
}

// DefaultReserved returns the identifiers reserved by the blaze runtime.
func DefaultReserved() Reserved {
	return NewReserved(defaultReserved...)
}

// Has reports whether ident is reserved.
func (r Reserved) Has(ident string) bool {
	_, ok := r.set[ident]
	return ok
}

// With returns a copy of r extended with names. r is left unchanged.
func (r Reserved) With(names ...string) Reserved {
	return NewReserved(append(r.Names(), names...)...)
}

// Names returns the reserved identifiers, sorted.
func (r Reserved) Names() []string {
	out := make([]string, 0, len(r.set))
	for n := range r.set {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Len returns the number of reserved identifiers.
func (r Reserved) Len() int {
	return len(r.set)
}
