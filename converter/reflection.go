package converter

import (
	"fmt"

	"go.uber.org/zap"

	"hydrator/fields"
)

// Reflection extracts and hydrates struct fields through a FieldAccessor,
// a StructAccessor by default. Extraction follows field declaration order.
// Hydration writes into the given struct pointer and ignores keys that do
// not name a field.
type Reflection struct {
	accessor FieldAccessor
	logger   *zap.Logger
}

// NewReflection creates a reflection converter using a StructAccessor
// configured by WithTag.
func NewReflection(opts ...Option) *Reflection {
	o := newOptions(opts)

	return &Reflection{
		accessor: NewStructAccessor(o.tag),
		logger:   o.logger,
	}
}

// NewReflectionWithAccessor creates a reflection converter over a custom accessor.
func NewReflectionWithAccessor(accessor FieldAccessor, opts ...Option) *Reflection {
	o := newOptions(opts)

	return &Reflection{
		accessor: accessor,
		logger:   o.logger,
	}
}

// Accessor returns the field accessor in use.
func (r *Reflection) Accessor() FieldAccessor { return r.accessor }

func (r *Reflection) Extract(object any) (*fields.Mapping, error) {
	names, err := r.accessor.Fields(object)
	if err != nil {
		return nil, err
	}

	out := fields.New(len(names))

	for _, name := range names {
		value, err := r.accessor.Get(object, name)
		if err != nil {
			return nil, err
		}

		out.Set(name, value)
	}

	return out, nil
}

// Hydrate sets every known field of the struct pointer object; unknown keys are skipped.
func (r *Reflection) Hydrate(data *fields.Mapping, object any) (any, error) {
	names, err := r.accessor.Fields(object)
	if err != nil {
		return nil, err
	}

	known := make(map[string]struct{}, len(names))
	for _, name := range names {
		known[name] = struct{}{}
	}

	for name, value := range data.All() {
		if _, ok := known[name]; !ok {
			r.logger.Debug("ignoring unknown field", zap.String("type", KeyOf(object).String()), zap.String("field", name))
			continue
		}

		if err := r.accessor.Set(object, name, value); err != nil {
			return nil, fmt.Errorf("hydrate %s: %w", KeyOf(object), err)
		}
	}

	return object, nil
}
