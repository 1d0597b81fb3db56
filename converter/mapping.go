package converter

import (
	"fmt"

	"hydrator/fields"
	"hydrator/primitive"
)

// MappingConverter treats a *fields.Mapping as the object itself: extraction
// copies it and hydration writes every pair into it.
type MappingConverter struct{}

func (MappingConverter) Extract(object any) (*fields.Mapping, error) {
	m, ok := object.(*fields.Mapping)
	if !ok {
		return nil, fmt.Errorf("%w: expected *fields.Mapping, got %s", ErrInvalidObject, primitive.TypeName(object))
	}

	return m.Clone(), nil
}

// Hydrate writes into object, or returns a fresh mapping when object is nil.
func (MappingConverter) Hydrate(data *fields.Mapping, object any) (any, error) {
	if object == nil {
		return data.Clone(), nil
	}

	m, ok := object.(*fields.Mapping)
	if !ok || m == nil {
		return nil, fmt.Errorf("%w: expected non-nil *fields.Mapping, got %s", ErrInvalidObject, primitive.TypeName(object))
	}

	for k, v := range data.All() {
		m.Set(k, v)
	}

	return m, nil
}
