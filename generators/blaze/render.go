// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package blaze

import (
	"fmt"
	"strings"

	"github.com/phadej/blaze-svg/internal/names"
	"github.com/phadej/blaze-svg/model"
)

// Kind classifies a rendered combinator.
type Kind int

const (
	KindParent Kind = iota
	KindLeaf
	KindAttribute
	KindDocType
	KindRoot
)

func (k Kind) String() string {
	switch k {
	case KindParent:
		return "parent"
	case KindLeaf:
		return "leaf"
	case KindAttribute:
		return "attribute"
	case KindDocType:
		return "doctype"
	case KindRoot:
		return "root"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// docTypeIdent is the name of the doctype combinator.
const docTypeIdent = "docType"

// externalTags hold content that must not be escaped.
var externalTags = map[string]bool{
	"script": true,
	"style":  true,
}

// Combinator is one rendered source block and the identifier it defines.
type Combinator struct {
	names.Identifier
	Kind Kind
	Text string
}

// Renderer renders the combinators of one variant. It is a value type
// and every method is pure.
type Renderer struct {
	// MarkupType is the runtime markup type ("Svg").
	MarkupType string

	// SelfClosing renders leafs with a " />" suffix.
	SelfClosing bool

	// Root is the raw root element name.
	Root string

	// DocType lines are emitted verbatim by the doctype combinator.
	DocType []string

	// Namespaces are attached to the root element.
	Namespaces []model.Namespace
}

// RootName returns the name of the root combinator for a raw root
// element name ("svg" -> "docTypeSvg").
func RootName(root string) string {
	return docTypeIdent + names.Capitalize(names.Sanitize(root))
}

// Parent renders the combinator for a container element.
func (r Renderer) Parent(tag string) Combinator {
	id := names.New(tag)
	ident := id.Ident
	modifier := ""
	if externalTags[tag] {
		modifier = " . external"
	}

	var b block
	b.haddock(
		[]string{fmt.Sprintf(`Combinator for the @\<%s>@ element.`, tag)},
		[]string{ident + ` $ text "foo"`},
		[]string{fmt.Sprintf("<%s>foo</%s>", tag, tag)},
	)
	b.linef("%s :: %s  -- ^ Inner markup.", ident, r.MarkupType)
	b.linef("%s -> %s  -- ^ Resulting markup.", spaces(ident), r.MarkupType)
	b.linef("%s = Parent %s %s %s%s", ident,
		haskellString(tag), haskellString("<"+tag), haskellString("</"+tag+">"), modifier)
	b.inline(ident)

	return Combinator{Identifier: id, Kind: KindParent, Text: b.String()}
}

// Leaf renders the combinator for an element without content.
func (r Renderer) Leaf(tag string) Combinator {
	id := names.New(tag)
	ident := id.Ident
	closing := ">"
	if r.SelfClosing {
		closing = " />"
	}

	var b block
	b.haddock(
		[]string{fmt.Sprintf(`Combinator for the @\<%s%s@ element.`, tag, closing)},
		[]string{ident},
		[]string{"<" + tag + closing},
	)
	b.linef("%s :: %s  -- ^ Resulting markup.", ident, r.MarkupType)
	b.linef("%s = Leaf %s %s %s", ident,
		haskellString(tag), haskellString("<"+tag), haskellString(closing))
	b.inline(ident)

	return Combinator{Identifier: id, Kind: KindLeaf, Text: b.String()}
}

// Attribute renders the combinator for an attribute.
func (r Renderer) Attribute(name string) Combinator {
	id := names.New(name)
	ident := id.Ident
	root := names.Sanitize(r.Root)

	var b block
	b.haddock(
		[]string{fmt.Sprintf("Combinator for the @%s@ attribute.", name)},
		[]string{fmt.Sprintf(`%s ! %s "bar" $ "Hello."`, root, ident)},
		[]string{fmt.Sprintf(`<%s %s="bar">Hello.</%s>`, r.Root, name, r.Root)},
	)
	b.linef("%s :: AttributeValue  -- ^ Attribute value.", ident)
	b.linef("%s -> Attribute       -- ^ Resulting attribute.", spaces(ident))
	b.linef("%s = attribute %s %s", ident, haskellString(name), haskellString(" "+name+`="`))
	b.inline(ident)

	return Combinator{Identifier: id, Kind: KindAttribute, Text: b.String()}
}

// DocTypeCombinator renders the zero-argument doctype value.
func (r Renderer) DocTypeCombinator() Combinator {
	var b block
	b.haddock(
		[]string{
			"Combinator for the document type. This should be placed at the top",
			"of every document.",
		},
		[]string{docTypeIdent},
		r.DocType,
	)
	b.linef("%s :: %s  -- ^ The document type.", docTypeIdent, r.MarkupType)
	b.linef("%s = preEscapedText %s", docTypeIdent, haskellString(r.docTypeText()))
	b.inline(docTypeIdent)

	return Combinator{Identifier: names.Identifier{Ident: docTypeIdent}, Kind: KindDocType, Text: b.String()}
}

// RootCombinator renders the root element combinator that emits the
// doctype first and attaches the namespace attributes to the root.
func (r Renderer) RootCombinator() Combinator {
	ident := RootName(r.Root)
	root := names.Sanitize(r.Root)

	open := "<" + r.Root
	element := root
	for _, ns := range r.Namespaces {
		open += fmt.Sprintf(` %s="%s"`, ns.Name, ns.URI)
		element += fmt.Sprintf(" ! attribute %s %s %s",
			haskellString(ns.Name), haskellString(" "+ns.Name+`="`), haskellString(ns.URI))
	}

	result := append([]string{}, r.DocType...)
	result = append(result, open+">foo</"+r.Root+">")

	var b block
	b.haddock(
		[]string{
			fmt.Sprintf(`Combinator for the @\<%s>@ element. This combinator will also`, r.Root),
			"insert the correct doctype.",
		},
		[]string{ident + ` $ text "foo"`},
		result,
	)
	b.linef("%s :: %s  -- ^ Inner markup.", ident, r.MarkupType)
	b.linef("%s -> %s  -- ^ Resulting markup.", spaces(ident), r.MarkupType)
	b.linef("%s inner = %s >> (%s $ inner)", ident, docTypeIdent, element)
	b.inline(ident)

	return Combinator{Identifier: names.Identifier{Raw: r.Root, Ident: ident}, Kind: KindRoot, Text: b.String()}
}

// docTypeText joins the doctype lines, each newline-terminated.
func (r Renderer) docTypeText() string {
	var sb strings.Builder
	for _, l := range r.DocType {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	return sb.String()
}
