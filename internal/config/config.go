// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package config loads generator settings from a blazegen.toml file.
package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"

	"github.com/phadej/blaze-svg/generator"
	"github.com/phadej/blaze-svg/internal/names"
	"github.com/phadej/blaze-svg/model"
)

// FileName is the configuration file looked up when no path is given.
const FileName = "blazegen.toml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("config file not found")

// ErrUnknownKey is returned for keys the loader does not understand.
var ErrUnknownKey = errors.New("unknown config key")

// File mirrors the TOML document. Unset fields keep their defaults.
type File struct {
	OutputDir     string            `toml:"output_dir"`
	ModulePrefix  string            `toml:"module_prefix"`
	Extension     string            `toml:"extension"`
	MarkupType    string            `toml:"markup_type"`
	Reserved      *[]string         `toml:"reserved"`
	ExtraReserved []string          `toml:"extra_reserved"`
	Namespaces    []model.Namespace `toml:"namespaces"`
	Vocabularies  []string          `toml:"vocabularies"`
	Options       map[string]string `toml:"options"`
}

// Settings is a loaded configuration: the generator config plus the
// vocabulary files to read alongside the built-in tables.
type Settings struct {
	Generator    generator.Config
	Vocabularies []string
}

// Default returns the settings used when no file is present.
func Default() *Settings {
	return &Settings{Generator: generator.DefaultConfig()}
}

// Load reads the file at path and applies it over the defaults.
func Load(path string) (*Settings, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(ErrConfigNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.WithHint(
			errors.Wrapf(ErrUnknownKey, "%s: %s", path, strings.Join(keys, ", ")),
			"known keys: output_dir, module_prefix, extension, markup_type, reserved, extra_reserved, namespaces, vocabularies, options")
	}

	s, err := f.apply(Default())
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return s, nil
}

// LoadOptional is Load, except a missing file at the default location
// yields the defaults. An explicitly named file must exist.
func LoadOptional(path string) (*Settings, error) {
	explicit := path != ""
	if !explicit {
		path = FileName
	}
	s, err := Load(path)
	if err != nil && !explicit && errors.Is(err, ErrConfigNotFound) {
		return Default(), nil
	}
	return s, err
}

func (f *File) apply(s *Settings) (*Settings, error) {
	cfg := &s.Generator
	if f.OutputDir != "" {
		cfg.OutputDir = f.OutputDir
	}
	if f.ModulePrefix != "" {
		cfg.ModulePrefix = f.ModulePrefix
	}
	if f.Extension != "" {
		cfg.Extension = f.Extension
		if !strings.HasPrefix(cfg.Extension, ".") {
			cfg.Extension = "." + cfg.Extension
		}
	}
	if f.MarkupType != "" {
		cfg.MarkupType = f.MarkupType
	}
	if f.Reserved != nil {
		cfg.Reserved = names.NewReserved(*f.Reserved...)
	}
	if len(f.ExtraReserved) > 0 {
		cfg.Reserved = cfg.Reserved.With(f.ExtraReserved...)
	}
	if len(f.Namespaces) > 0 {
		for i, ns := range f.Namespaces {
			if ns.Name == "" || ns.URI == "" {
				return nil, errors.Newf("namespace %d: name and uri are required", i)
			}
			if model.HasControl(ns.Name) || model.HasControl(ns.URI) {
				return nil, errors.Newf("namespace %d: control character in name or uri", i)
			}
		}
		cfg.Namespaces = f.Namespaces
	}
	if len(f.Options) > 0 {
		cfg.Options = f.Options
	}
	s.Vocabularies = f.Vocabularies
	return s, nil
}
