// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import "slices"

// Output contains generated files.
type Output struct {
	// Variant is the display name of the variant the files belong to.
	Variant string

	// Files maps a path relative to the output root to its content.
	Files map[string][]byte
}

// NewOutput creates a new Output.
func NewOutput(variant string) *Output {
	return &Output{Variant: variant, Files: make(map[string][]byte)}
}

// Add adds a file to the output.
func (o *Output) Add(name string, content []byte) {
	o.Files[name] = content
}

// Paths returns the file paths, sorted.
func (o *Output) Paths() []string {
	paths := make([]string, 0, len(o.Files))
	for p := range o.Files {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}
