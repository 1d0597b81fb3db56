// Package strategy provides per-field value strategies: bidirectional
// transforms applied to single values while an object is extracted or hydrated.
package strategy

import "hydrator/fields"

// Strategy converts one field value in both directions.
//
// Implementations must satisfy Hydrate(Extract(v)) == v for every value in
// their domain, and must pass nil through untouched.
type Strategy interface {
	// Extract converts a field value read from object into its extracted form.
	Extract(value any, object any) (any, error)
	// Hydrate converts an extracted value back; data is the whole mapping being hydrated.
	Hydrate(value any, data *fields.Mapping) (any, error)
}

// Identity returns values unchanged.
type Identity struct{}

func (Identity) Extract(value any, _ any) (any, error) { return value, nil }

func (Identity) Hydrate(value any, _ *fields.Mapping) (any, error) { return value, nil }

// Func adapts a pair of closures. A nil side behaves as Identity.
// Nil values never reach the closures.
type Func struct {
	ExtractFunc func(value any, object any) (any, error)
	HydrateFunc func(value any, data *fields.Mapping) (any, error)
}

func (f Func) Extract(value any, object any) (any, error) {
	if value == nil || f.ExtractFunc == nil {
		return value, nil
	}

	return f.ExtractFunc(value, object)
}

func (f Func) Hydrate(value any, data *fields.Mapping) (any, error) {
	if value == nil || f.HydrateFunc == nil {
		return value, nil
	}

	return f.HydrateFunc(value, data)
}
