// Package fields provides Mapping, the ordered key/value form objects are
// extracted into and hydrated from.
package fields

import (
	"iter"
	"maps"
	"reflect"
	"slices"
)

// Pair is a single entry of a Mapping.
type Pair struct {
	Key   string
	Value any
}

// Mapping is an ordered sequence of pairs with unique keys.
// The zero value is an empty mapping ready to use.
type Mapping struct {
	pairs []Pair
	index map[string]int
}

// New creates an empty mapping with room for capacity pairs.
func New(capacity int) *Mapping {
	return &Mapping{
		pairs: make([]Pair, 0, capacity),
		index: make(map[string]int, capacity),
	}
}

// Of builds a mapping from pairs. Later duplicates replace earlier values in place.
func Of(pairs ...Pair) *Mapping {
	m := New(len(pairs))
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}

	return m
}

// FromMap builds a mapping from a Go map. Keys are sorted so the result is deterministic.
func FromMap(src map[string]any) *Mapping {
	m := New(len(src))
	for _, key := range slices.Sorted(maps.Keys(src)) {
		m.Set(key, src[key])
	}

	return m
}

// Set stores value under key. Replacing an existing key keeps its position.
func (m *Mapping) Set(key string, value any) {
	if m.index == nil {
		m.index = make(map[string]int)
	}

	if i, ok := m.index[key]; ok {
		m.pairs[i].Value = value
		return
	}

	m.index[key] = len(m.pairs)
	m.pairs = append(m.pairs, Pair{Key: key, Value: value})
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}

	i, ok := m.index[key]
	if !ok {
		return nil, false
	}

	return m.pairs[i].Value, true
}

// Has returns true if key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key, preserving the order of the remaining pairs.
func (m *Mapping) Delete(key string) bool {
	if m == nil {
		return false
	}

	i, ok := m.index[key]
	if !ok {
		return false
	}

	m.pairs = slices.Delete(m.pairs, i, i+1)
	delete(m.index, key)

	for j := i; j < len(m.pairs); j++ {
		m.index[m.pairs[j].Key] = j
	}

	return true
}

// Len returns the number of pairs.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}

	return len(m.pairs)
}

// Keys returns the keys in order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}

	keys := make([]string, len(m.pairs))
	for i, p := range m.pairs {
		keys[i] = p.Key
	}

	return keys
}

// Pairs returns a copy of the pairs in order.
func (m *Mapping) Pairs() []Pair {
	if m == nil {
		return nil
	}

	return slices.Clone(m.pairs)
}

// All iterates over the pairs in order.
func (m *Mapping) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if m == nil {
			return
		}

		for _, p := range m.pairs {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Clone returns a shallow copy.
func (m *Mapping) Clone() *Mapping {
	return Of(m.Pairs()...)
}

// ToMap converts the mapping to a Go map, losing the order.
func (m *Mapping) ToMap() map[string]any {
	out := make(map[string]any, m.Len())
	for k, v := range m.All() {
		out[k] = v
	}

	return out
}

// Equal reports whether both mappings hold deeply equal pairs in the same order.
func (m *Mapping) Equal(other *Mapping) bool {
	if m.Len() != other.Len() {
		return false
	}

	for i, p := range m.Pairs() {
		q := other.pairs[i]
		if p.Key != q.Key || !reflect.DeepEqual(p.Value, q.Value) {
			return false
		}
	}

	return true
}
