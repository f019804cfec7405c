// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"path/filepath"
	"strings"

	"github.com/phadej/blaze-svg/internal/names"
	"github.com/phadej/blaze-svg/model"
)

// Namespace URIs attached to the root element by default.
const (
	SVGNamespace   = "http://www.w3.org/2000/svg"
	XLinkNamespace = "http://www.w3.org/1999/xlink"
)

// OptionRuntimeModule overrides the markup runtime module that element
// modules import and re-export.
const OptionRuntimeModule = "runtime_module"

// DefaultNamespaces are the namespace attributes the root combinator
// attaches unless the config or the variant overrides them.
var DefaultNamespaces = []model.Namespace{
	{Name: "xmlns", URI: SVGNamespace},
	{Name: "xmlns:xlink", URI: XLinkNamespace},
}

// Config contains generator configuration.
type Config struct {
	// OutputDir is the root directory modules are written under.
	OutputDir string

	// ModulePrefix is the Haskell module prefix, e.g. "Text.Blaze".
	ModulePrefix string

	// Extension is the output file extension, including the dot.
	Extension string

	// MarkupType is the runtime markup type used in signatures ("Svg").
	// The runtime module re-exported by element modules is
	// ModulePrefix + "." + MarkupType unless OptionRuntimeModule is set.
	MarkupType string

	// Reserved holds identifiers generated names must not collide with.
	Reserved names.Reserved

	// Namespaces are attached to the root element by the root combinator.
	Namespaces []model.Namespace

	// Options contains target-specific options, such as
	// OptionRuntimeModule.
	Options map[string]string
}

// DefaultConfig returns the configuration used when no config file is
// given.
func DefaultConfig() Config {
	return Config{
		OutputDir:    "src",
		ModulePrefix: "Text.Blaze",
		Extension:    ".hs",
		MarkupType:   "Svg",
		Reserved:     names.DefaultReserved(),
		Namespaces:   DefaultNamespaces,
	}
}

// Option returns a target-specific option with default.
func (c Config) Option(key, defaultValue string) string {
	if v, ok := c.Options[key]; ok {
		return v
	}
	return defaultValue
}

// ModuleName returns the element module name for v ("Text.Blaze.Svg11").
func (c Config) ModuleName(v *model.Variant) string {
	return c.ModulePrefix + "." + v.Name()
}

// AttributesModuleName returns the attribute module name for v.
func (c Config) AttributesModuleName(v *model.Variant) string {
	return c.ModuleName(v) + ".Attributes"
}

// RuntimeModule returns the markup runtime module ("Text.Blaze.Svg").
func (c Config) RuntimeModule() string {
	return c.Option(OptionRuntimeModule, c.ModulePrefix+"."+c.MarkupType)
}

// ModuleDir returns the directory of v's modules relative to OutputDir.
// Every module prefix and version path segment is one directory level.
func (c Config) ModuleDir(v *model.Variant) string {
	parts := strings.Split(c.ModulePrefix, ".")
	parts = append(parts, v.VersionPath...)
	return filepath.Join(parts...)
}

// ElementsPath returns the element module path relative to OutputDir.
func (c Config) ElementsPath(v *model.Variant) string {
	return c.ModuleDir(v) + c.Extension
}

// AttributesPath returns the attribute module path relative to OutputDir.
func (c Config) AttributesPath(v *model.Variant) string {
	return filepath.Join(c.ModuleDir(v), "Attributes"+c.Extension)
}

// NamespacesFor returns the namespace attributes for v's root element.
func (c Config) NamespacesFor(v *model.Variant) []model.Namespace {
	if len(v.Namespaces) > 0 {
		return v.Namespaces
	}
	return c.Namespaces
}
