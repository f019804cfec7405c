// SPDX-License-Identifier: MIT

package blaze

import (
	"maps"
	"slices"
)

// orderedMap holds rendered blocks keyed by raw name. Keys come back in
// ascending order so output never depends on insertion or map order.
type orderedMap[T any] struct {
	m map[string]T
}

func newOrderedMap[T any]() *orderedMap[T] {
	return &orderedMap[T]{
		m: make(map[string]T),
	}
}

func (m *orderedMap[T]) set(key string, value T) {
	m.m[key] = value
}

func (m *orderedMap[T]) len() int {
	return len(m.m)
}

func (m *orderedMap[T]) keys() []string {
	return slices.Sorted(maps.Keys(m.m))
}

// values returns the values in key order.
func (m *orderedMap[T]) values() []T {
	keys := m.keys()
	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, m.m[k])
	}
	return out
}
