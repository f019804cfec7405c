// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/phadej/blaze-svg/model"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]*model.Variant)
)

// Register adds a vocabulary variant to the registry under its display
// name.
func Register(v *model.Variant) {
	mu.Lock()
	defer mu.Unlock()
	name := v.Name()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("variant %q already registered", name))
	}
	registry[name] = v
}

// Get returns a variant by display name.
func Get(name string) (*model.Variant, bool) {
	mu.RLock()
	defer mu.RUnlock()
	v, ok := registry[name]
	return v, ok
}

// List returns all registered variant names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Sorted(maps.Keys(registry))
}

// All returns a copy of the registry keyed by display name.
func All() map[string]*model.Variant {
	mu.RLock()
	defer mu.RUnlock()
	return maps.Clone(registry)
}

// Reset clears the registry (for testing).
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]*model.Variant)
}
