// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package generator defines the interface for combinator module generators
// and the pieces shared between them and the emitter: configuration,
// output files, the variant registry and the error taxonomy.
package generator

import (
	"context"

	"github.com/phadej/blaze-svg/model"
)

// Generator is the interface that all code generators must implement.
type Generator interface {
	// Metadata returns information about this generator.
	Metadata() Metadata

	// Generate produces the output files for one vocabulary variant.
	// It returns no output at all when any name in the variant is rejected.
	Generate(ctx context.Context, v *model.Variant, cfg Config) (*Output, error)
}

// Metadata describes a generator.
type Metadata struct {
	// Name is the short identifier (e.g., "blaze").
	Name string

	// Version is the generator version (semver).
	Version string

	// Description is a human-readable description.
	Description string

	// FileExtensions lists typical output extensions (e.g., [".hs"]).
	FileExtensions []string
}
