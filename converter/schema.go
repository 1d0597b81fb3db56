package converter

import (
	"errors"
	"fmt"

	"hydrator/filter"
	"hydrator/naming"
	"hydrator/strategy"
)

// FieldSpec binds an optional value strategy and an optional filter to a field.
type FieldSpec struct {
	Name     string
	Strategy strategy.Strategy
	Filter   filter.Filter
}

// Schema declares how one struct type is converted.
type Schema struct {
	Type   TypeKey
	Fields []FieldSpec
	// Filter is consulted for every field, in addition to per-field filters.
	Filter filter.Filter
	Naming naming.Strategy
}

// SchemaFor starts a schema for T.
func SchemaFor[T any](specs ...FieldSpec) Schema {
	return Schema{Type: KeyFor[T](), Fields: specs}
}

// Validate checks every field spec against the struct layout and reports all
// problems at once.
func (s Schema) Validate(accessor *StructAccessor) error {
	if !s.Type.IsValid() {
		return fmt.Errorf("%w: schema without a type", ErrInvalidObject)
	}

	names, err := accessor.FieldsOf(s.Type.Type())
	if err != nil {
		return err
	}

	known := make(map[string]struct{}, len(names))
	for _, name := range names {
		known[name] = struct{}{}
	}

	var errs []error

	seen := make(map[string]struct{}, len(s.Fields))

	for _, spec := range s.Fields {
		if _, ok := known[spec.Name]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s has no field %q", ErrUnknownField, s.Type, spec.Name))
		}

		if _, dup := seen[spec.Name]; dup {
			errs = append(errs, fmt.Errorf("%w: %s.%s declared twice", ErrDuplicateField, s.Type, spec.Name))
		}

		seen[spec.Name] = struct{}{}
	}

	return errors.Join(errs...)
}

// Build validates the schema and returns a StrategyEnabled over a Reflection
// converter for the type.
func (s Schema) Build(opts ...Option) (*StrategyEnabled, error) {
	base := NewReflection(opts...)

	accessor, _ := base.Accessor().(*StructAccessor)
	if err := s.Validate(accessor); err != nil {
		return nil, err
	}

	return s.Configure(NewStrategyEnabled(base, opts...)), nil
}

// Configure applies the filter, naming and field specs of the schema to c
// without validating them against a struct type.
func (s Schema) Configure(c *StrategyEnabled) *StrategyEnabled {
	c.SetFilter(s.Filter).SetNaming(s.Naming)

	for _, spec := range s.Fields {
		if spec.Strategy != nil {
			c.AddStrategy(spec.Name, spec.Strategy)
		}

		if spec.Filter != nil {
			c.AddFieldFilter(spec.Name, spec.Filter)
		}
	}

	return c
}

// RegisterSchema builds the schema and registers the result for its type.
func RegisterSchema(r *MapRegistry, s Schema, opts ...Option) error {
	c, err := s.Build(opts...)
	if err != nil {
		return err
	}

	return r.Register(s.Type, c)
}
