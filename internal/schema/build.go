package schema

import (
	"errors"
	"fmt"

	"hydrator/converter"
	"hydrator/filter"
	"hydrator/naming"
	"hydrator/strategy"
)

var (
	ErrInvalidSchema   = errors.New("invalid binding file")
	ErrUnknownBinding  = errors.New("no binding for type")
	ErrCatalogRequired = errors.New("strategy needs a catalog")
)

// Build validates f against catalog and registers a converter for every
// bound type. Nested and collection strategies resolve their converters
// through the returned registry.
func Build(f *File, catalog *Catalog, opts ...converter.Option) (*converter.MapRegistry, error) {
	if catalog == nil {
		return nil, fmt.Errorf("%w: nil catalog", ErrCatalogRequired)
	}

	if diags := Validate(f, catalog); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, diags.Err())
	}

	opts = append(opts, converter.WithTag(catalog.Tag()))

	registry := converter.NewRegistry(opts...)
	b := builder{catalog: catalog, delegating: converter.NewDelegating(registry, opts...)}

	for i := range f.Types {
		tb := &f.Types[i]

		s, err := b.schema(tb)
		if err != nil {
			return nil, err
		}

		t, _ := catalog.Type(tb.Type)
		s.Type = converter.KeyOfType(t)

		if err := converter.RegisterSchema(registry, s, opts...); err != nil {
			return nil, err
		}
	}

	return registry, nil
}

// Converter builds the converter of a single binding around base, without
// resolving Go types. Bindings using casters, nested or collection
// strategies fail with ErrCatalogRequired.
func Converter(f *File, typeName string, base converter.Converter, opts ...converter.Option) (*converter.StrategyEnabled, error) {
	if diags := Validate(f, nil); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, diags.Err())
	}

	tb, ok := f.Binding(typeName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBinding, typeName)
	}

	s, err := builder{}.schema(tb)
	if err != nil {
		return nil, err
	}

	return s.Configure(converter.NewStrategyEnabled(base, opts...)), nil
}

type builder struct {
	catalog    *Catalog
	delegating *converter.Delegating
}

func (b builder) schema(tb *TypeBinding) (converter.Schema, error) {
	var s converter.Schema

	n, err := buildNaming(tb)
	if err != nil {
		return s, err
	}

	s.Naming = n

	if tb.Filter != nil {
		s.Filter = buildFilter(tb.Filter)
	}

	for i := range tb.Fields {
		fb := &tb.Fields[i]
		spec := converter.FieldSpec{Name: fb.Name}

		if fb.Strategy != nil {
			spec.Strategy, err = b.strategy(fb.Strategy)
			if err != nil {
				return s, fmt.Errorf("%s.%s: %w", tb.Type, fb.Name, err)
			}
		}

		if fb.Filter != nil {
			spec.Filter = buildFilter(fb.Filter)
		}

		s.Fields = append(s.Fields, spec)
	}

	return s, nil
}

func (b builder) strategy(def *StrategyDef) (strategy.Strategy, error) {
	switch {
	case def.Boolean != nil:
		return strategy.NewBoolean(def.Boolean.TrueValue, def.Boolean.FalseValue)

	case def.Chain != nil:
		chain := make([]strategy.Strategy, 0, len(def.Chain))

		for i := range def.Chain {
			s, err := b.strategy(&def.Chain[i])
			if err != nil {
				return nil, err
			}

			chain = append(chain, s)
		}

		return strategy.NewChain(chain...), nil

	case def.Caster != nil:
		if b.catalog == nil {
			return nil, fmt.Errorf("%w: caster", ErrCatalogRequired)
		}

		extract, _ := b.catalog.Func(def.Caster.Extract)
		hydrate, _ := b.catalog.Func(def.Caster.Hydrate)

		return strategy.NewCaster(extract, hydrate)

	case def.Nested != "" || def.Collection != "":
		if b.catalog == nil {
			return nil, fmt.Errorf("%w: nested", ErrCatalogRequired)
		}

		if def.Collection != "" {
			prototype, err := b.catalog.Prototype(def.Collection)
			if err != nil {
				return nil, err
			}

			return converter.NewCollection(b.delegating, prototype)
		}

		prototype, err := b.catalog.Prototype(def.Nested)
		if err != nil {
			return nil, err
		}

		return converter.NewNested(b.delegating, prototype)

	default:
		return nil, &strategy.ConfigurationError{Strategy: "schema", Param: "strategy", Reason: "no strategy kind set"}
	}
}

func buildNaming(tb *TypeBinding) (naming.Strategy, error) {
	switch tb.Naming {
	case NamingUnderscore:
		return naming.Underscore{}, nil
	case NamingMap:
		return naming.NewMap(tb.Rename)
	default:
		return naming.Identity{}, nil
	}
}

// buildFilter expects a validated definition.
func buildFilter(def *FilterDef) filter.Filter {
	switch {
	case def.Match != nil:
		return filter.NewMethodMatch(def.Match.Name, def.Match.Exclude)
	case def.Prefix != "":
		return filter.Prefix(def.Prefix)
	case def.Not != nil:
		return filter.Not(buildFilter(def.Not))
	case def.Any != nil:
		return filter.Any(buildFilters(def.Any))
	default:
		return filter.All(buildFilters(def.All))
	}
}

func buildFilters(defs []FilterDef) []filter.Filter {
	out := make([]filter.Filter, len(defs))
	for i := range defs {
		out[i] = buildFilter(&defs[i])
	}

	return out
}
