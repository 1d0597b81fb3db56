// Package naming translates field names to extracted keys and back.
package naming

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var ErrAmbiguousName = errors.New("ambiguous name mapping")

// Strategy renames keys. Hydrate must invert Extract for the names it handles.
type Strategy interface {
	Extract(name string) string
	Hydrate(name string) string
}

// Identity keeps names unchanged.
type Identity struct{}

func (Identity) Extract(name string) string { return name }

func (Identity) Hydrate(name string) string { return name }

// Map renames through an explicit table; names missing from it are kept.
type Map struct {
	extract map[string]string
	hydrate map[string]string
}

// NewMap builds a Map from field name to extracted key. Two fields may not
// share a key.
func NewMap(table map[string]string) (*Map, error) {
	m := &Map{
		extract: make(map[string]string, len(table)),
		hydrate: make(map[string]string, len(table)),
	}

	for _, field := range slices.Sorted(maps.Keys(table)) {
		key := table[field]
		if other, ok := m.hydrate[key]; ok {
			return nil, fmt.Errorf("%w: %q and %q both extract to %q", ErrAmbiguousName, other, field, key)
		}

		m.extract[field] = key
		m.hydrate[key] = field
	}

	return m, nil
}

// Check reports keys that collide with a field of fields left unrenamed,
// which would make hydration ambiguous.
func (m *Map) Check(fields []string) error {
	for _, field := range fields {
		if _, renamed := m.extract[field]; renamed {
			continue
		}

		if owner, ok := m.hydrate[field]; ok {
			return fmt.Errorf("%w: key %q of field %q shadows the unrenamed field %q",
				ErrAmbiguousName, field, owner, field)
		}
	}

	return nil
}

func (m *Map) Extract(name string) string {
	if key, ok := m.extract[name]; ok {
		return key
	}

	return name
}

func (m *Map) Hydrate(name string) string {
	if field, ok := m.hydrate[name]; ok {
		return field
	}

	return name
}
