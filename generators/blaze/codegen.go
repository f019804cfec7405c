// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package blaze generates Haskell combinator modules for the blaze markup
// runtime from a vocabulary variant.
//
// Each variant yields two modules:
//   - an element module exporting one combinator per element, plus the
//     doctype and root combinators, and re-exporting the runtime
//   - an attribute module exporting one combinator per attribute
//
// Generated code is compiled against the runtime constructors Parent,
// Leaf and attribute. Output is byte-stable: the same variant and config
// always produce the same text.
package blaze

import (
	"bytes"
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/phadej/blaze-svg/generator"
	"github.com/phadej/blaze-svg/model"
)

// Codegen synthesizes the modules of one variant.
type Codegen struct {
	variant *model.Variant
	config  generator.Config
	render  Renderer

	elements   *orderedMap[Combinator]
	attributes *orderedMap[Combinator]
}

// Output contains the generated module texts.
type Output struct {
	Elements   []byte
	Attributes []byte
}

// New creates a new Codegen.
func New(v *model.Variant, cfg generator.Config) *Codegen {
	return &Codegen{
		variant: v,
		config:  cfg,
		render: Renderer{
			MarkupType:  cfg.MarkupType,
			SelfClosing: v.SelfClosing,
			Root:        v.RootElement(),
			DocType:     v.DocType,
			Namespaces:  cfg.NamespacesFor(v),
		},
		elements:   newOrderedMap[Combinator](),
		attributes: newOrderedMap[Combinator](),
	}
}

// Generate checks every name of the variant and renders both modules.
// On any failure it returns no output.
func (g *Codegen) Generate() (*Output, error) {
	if err := CheckVariant(g.variant, g.config.Reserved); err != nil {
		return nil, err
	}

	for _, name := range g.variant.Parents {
		g.elements.set(name, g.render.Parent(name))
	}
	for _, name := range g.variant.Leafs {
		g.elements.set(name, g.render.Leaf(name))
	}
	for _, name := range g.variant.Attributes {
		g.attributes.set(name, g.render.Attribute(name))
	}

	elements, err := g.emitElements()
	if err != nil {
		return nil, err
	}
	attributes, err := g.emitAttributes()
	if err != nil {
		return nil, err
	}
	return &Output{Elements: elements, Attributes: attributes}, nil
}

// ── Emit final files ────────────────────────────────────────────────

func (g *Codegen) emitElements() ([]byte, error) {
	if g.elements.len() == 0 {
		return nil, errors.Wrapf(generator.ErrEmptyExportList, "module %s", g.config.ModuleName(g.variant))
	}

	docType := g.render.DocTypeCombinator()
	root := g.render.RootCombinator()

	exports := []string{
		"module " + g.config.ModulePrefix,
		"module " + g.config.RuntimeModule(),
		docType.Ident,
		root.Ident,
	}
	for _, c := range g.elements.values() {
		exports = append(exports, c.Ident)
	}

	var buf bytes.Buffer
	buf.WriteString(g.fileHeader())
	buf.WriteString("{-# LANGUAGE OverloadedStrings #-}\n\n")
	fmt.Fprintf(&buf, "-- | This module exports combinators used to create %s documents.\n", g.variant.Name())
	buf.WriteString(exportList(g.config.ModuleName(g.variant), exports))
	buf.WriteString("\n")
	buf.WriteString("import Prelude ((>>), (.), ($))\n\n")
	fmt.Fprintf(&buf, "import %s\n", g.config.ModulePrefix)
	fmt.Fprintf(&buf, "import %s\n", g.config.RuntimeModule())
	fmt.Fprintf(&buf, "import %s.Internal\n", g.config.ModulePrefix)

	for _, c := range append([]Combinator{docType, root}, g.elements.values()...) {
		buf.WriteString("\n")
		buf.WriteString(c.Text)
	}

	return buf.Bytes(), nil
}

func (g *Codegen) emitAttributes() ([]byte, error) {
	module := g.config.AttributesModuleName(g.variant)
	if g.attributes.len() == 0 {
		return nil, errors.Wrapf(generator.ErrEmptyExportList, "module %s", module)
	}

	var exports []string
	for _, c := range g.attributes.values() {
		exports = append(exports, c.Ident)
	}

	var buf bytes.Buffer
	buf.WriteString(g.fileHeader())
	buf.WriteString("{-# LANGUAGE OverloadedStrings #-}\n\n")
	fmt.Fprintf(&buf, "-- | This module exports combinators that set attributes on %s elements.\n", g.variant.Name())
	buf.WriteString(exportList(module, exports))
	buf.WriteString("\n")
	buf.WriteString("import Prelude ()\n\n")
	fmt.Fprintf(&buf, "import %s.Internal (Attribute, AttributeValue, attribute)\n", g.config.ModulePrefix)

	for _, c := range g.attributes.values() {
		buf.WriteString("\n")
		buf.WriteString(c.Text)
	}

	return buf.Bytes(), nil
}

func (g *Codegen) fileHeader() string {
	return fmt.Sprintf("-- Code generated by blazegen. DO NOT EDIT.\n-- Vocabulary: %s\n\n", g.variant.Name())
}
