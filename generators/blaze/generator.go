// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package blaze

import (
	"context"

	"github.com/phadej/blaze-svg/generator"
	"github.com/phadej/blaze-svg/model"
)

// Generator implements [generator.Generator] for blaze combinator modules.
type Generator struct{}

// NewGenerator creates a new blaze generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "blaze",
		Version:        "1.0.0",
		Description:    "Generate blaze element and attribute combinator modules",
		FileExtensions: []string{".hs"},
	}
}

// Generate produces the element and attribute modules of v, keyed by
// their paths relative to cfg.OutputDir.
func (g *Generator) Generate(ctx context.Context, v *model.Variant, cfg generator.Config) (*generator.Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err := New(v, cfg).Generate()
	if err != nil {
		return nil, err
	}

	result := generator.NewOutput(v.Name())
	result.Add(cfg.ElementsPath(v), out.Elements)
	result.Add(cfg.AttributesPath(v), out.Attributes)
	return result, nil
}
