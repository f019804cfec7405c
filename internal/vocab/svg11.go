// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package vocab

import (
	"slices"

	"github.com/phadej/blaze-svg/model"
)

// SVG 1.1 vocabulary tables.
//
// The attribute forms of names that are also elements ("filter", "mask",
// "path", "style", "cursor", "color-profile", "glyphRef", and the "title"
// attribute of <style>) are left out: a name is either an element or an
// attribute, never both. "string" is left out as it shadows the runtime.
var (
	svg11DocType = []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN"`,
		`    "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">`,
	}

	svg11Parents = []string{
		"a", "altGlyph", "altGlyphDef", "altGlyphItem", "animateMotion",
		"clipPath", "color-profile", "cursor", "defs", "desc",
		"feComponentTransfer", "feDiffuseLighting", "feMerge",
		"feSpecularLighting", "filter", "font", "font-face", "font-face-src",
		"foreignObject", "g", "glyph", "linearGradient", "marker", "mask",
		"metadata", "missing-glyph", "pattern", "radialGradient", "script",
		"style", "svg", "switch", "symbol", "text", "textPath", "title", "tspan",
		"view",
	}

	svg11Leafs = []string{
		"animate", "animateColor", "animateTransform", "circle", "ellipse",
		"feBlend", "feColorMatrix", "feComposite", "feConvolveMatrix",
		"feDisplacementMap", "feDistantLight", "feFlood", "feFuncA", "feFuncB",
		"feFuncG", "feFuncR", "feGaussianBlur", "feImage", "feMergeNode",
		"feMorphology", "feOffset", "fePointLight", "feSpotLight", "feTile",
		"feTurbulence", "font-face-format", "font-face-name", "font-face-uri",
		"glyphRef", "hkern", "image", "line", "mpath", "path", "polygon",
		"polyline", "rect", "set", "stop", "tref", "use", "vkern",
	}

	svg11Attributes = []string{
		"accent-height", "accumulate", "additive", "alignment-baseline",
		"alphabetic", "amplitude", "arabic-form", "ascent", "attributeName",
		"attributeType", "azimuth", "baseFrequency", "baseProfile",
		"baseline-shift", "bbox", "begin", "bias", "by", "calcMode", "cap-height",
		"class", "clip", "clip-path", "clip-rule", "clipPathUnits", "color",
		"color-interpolation", "color-interpolation-filters", "color-rendering",
		"contentScriptType", "contentStyleType", "cx", "cy", "d", "descent",
		"diffuseConstant", "direction", "display", "divisor", "dominant-baseline",
		"dur", "dx", "dy", "edgeMode", "elevation", "enable-background", "end",
		"exponent", "externalResourcesRequired", "fill", "fill-opacity",
		"fill-rule", "filterRes", "filterUnits", "flood-color", "flood-opacity",
		"font-family", "font-size", "font-size-adjust", "font-stretch",
		"font-style", "font-variant", "font-weight", "format", "from", "fx", "fy",
		"g1", "g2", "glyph-name", "glyph-orientation-horizontal",
		"glyph-orientation-vertical", "gradientTransform", "gradientUnits",
		"hanging", "height", "horiz-adv-x", "horiz-origin-x", "horiz-origin-y",
		"id", "ideographic", "image-rendering", "in", "in2", "intercept", "k",
		"k1", "k2", "k3", "k4", "kernelMatrix", "kernelUnitLength", "kerning",
		"keyPoints", "keySplines", "keyTimes", "lang", "lengthAdjust",
		"letter-spacing", "lighting-color", "limitingConeAngle", "local",
		"marker-end", "marker-mid", "marker-start", "markerHeight", "markerUnits",
		"markerWidth", "maskContentUnits", "maskUnits", "mathematical", "max",
		"media", "method", "min", "mode", "name", "numOctaves", "offset",
		"onabort", "onactivate", "onbegin", "onclick", "onend", "onerror",
		"onfocusin", "onfocusout", "onload", "onmousedown", "onmousemove",
		"onmouseout", "onmouseover", "onmouseup", "onrepeat", "onresize",
		"onscroll", "onunload", "onzoom", "opacity", "operator", "order",
		"orient", "orientation", "origin", "overflow", "overline-position",
		"overline-thickness", "panose-1", "pathLength", "patternContentUnits",
		"patternTransform", "patternUnits", "pointer-events", "points",
		"pointsAtX", "pointsAtY", "pointsAtZ", "preserveAlpha",
		"preserveAspectRatio", "primitiveUnits", "r", "radius", "refX", "refY",
		"rendering-intent", "repeatCount", "repeatDur", "requiredExtensions",
		"requiredFeatures", "restart", "result", "rotate", "rx", "ry", "scale",
		"seed", "shape-rendering", "slope", "spacing", "specularConstant",
		"specularExponent", "spreadMethod", "startOffset", "stdDeviation",
		"stemh", "stemv", "stitchTiles", "stop-color", "stop-opacity",
		"strikethrough-position", "strikethrough-thickness", "stroke",
		"stroke-dasharray", "stroke-dashoffset", "stroke-linecap",
		"stroke-linejoin", "stroke-miterlimit", "stroke-opacity", "stroke-width",
		"surfaceScale", "systemLanguage", "tableValues", "target", "targetX",
		"targetY", "text-anchor", "text-decoration", "text-rendering",
		"textLength", "to", "transform", "type", "u1", "u2", "underline-position",
		"underline-thickness", "unicode", "unicode-bidi", "unicode-range",
		"units-per-em", "v-alphabetic", "v-hanging", "v-ideographic",
		"v-mathematical", "values", "version", "vert-adv-y", "vert-origin-x",
		"vert-origin-y", "viewBox", "viewTarget", "visibility", "width", "widths",
		"word-spacing", "writing-mode", "x", "x-height", "x1", "x2",
		"xChannelSelector", "xlink:actuate", "xlink:arcrole", "xlink:href",
		"xlink:role", "xlink:show", "xlink:title", "xlink:type", "xml:base",
		"xml:lang", "xml:space", "y", "y1", "y2", "yChannelSelector", "z",
		"zoomAndPan",
	}
)

// SVG11 returns the SVG 1.1 variant. Every call returns a fresh copy.
func SVG11() *model.Variant {
	return &model.Variant{
		VersionPath: []string{"Svg11"},
		DocType:     slices.Clone(svg11DocType),
		Parents:     slices.Clone(svg11Parents),
		Leafs:       slices.Clone(svg11Leafs),
		Attributes:  slices.Clone(svg11Attributes),
		SelfClosing: true,
		Root:        "svg",
	}
}
