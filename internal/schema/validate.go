package schema

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"hydrator/internal/diagnostic"
	"hydrator/internal/match"
	"hydrator/naming"
	"hydrator/strategy"
)

var namings = []string{NamingIdentity, NamingUnderscore, NamingMap}

// Validate checks a binding file. With a nil catalog only the file itself is
// checked; with a catalog type names, field names, caster functions and
// nested types are resolved as well.
func Validate(f *File, catalog *Catalog) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "binding file is nil", "", "")
		return res
	}

	if len(f.Types) == 0 {
		res.AddWarning("no_types", "binding file declares no types", "", "")
	}

	bound := make(map[string]struct{}, len(f.Types))

	for i := range f.Types {
		name := f.Types[i].Type
		if name == "" {
			continue
		}

		if _, ok := bound[name]; ok {
			res.AddError("duplicate_type", fmt.Sprintf("type %q is bound more than once", name), name, "")
		}

		bound[name] = struct{}{}
	}

	for i := range f.Types {
		v := validator{res: res, catalog: catalog, bound: bound, binding: &f.Types[i]}
		v.validate()
	}

	return res
}

type validator struct {
	res     *diagnostic.Diagnostics
	catalog *Catalog
	bound   map[string]struct{}
	binding *TypeBinding
	names   []string
	known   map[string]struct{} // nil when fields cannot be resolved
}

func (v *validator) validate() {
	tb := v.binding
	if tb.Type == "" {
		v.res.AddError("missing_type", "binding without a type name", "", "")
		return
	}

	if v.catalog != nil {
		names, err := v.catalog.Fields(tb.Type)
		if err != nil {
			v.res.AddError("unknown_type", fmt.Sprintf("type %q is not in the catalog", tb.Type), tb.Type, "",
				match.Suggest(tb.Type, v.catalog.TypeNames(), 3)...)
		} else {
			v.names = names
			v.known = make(map[string]struct{}, len(names))
			for _, name := range names {
				v.known[name] = struct{}{}
			}
		}
	}

	v.validateNaming()

	if tb.Filter != nil {
		v.validateFilter(tb.Filter, "", false)
	}

	if len(tb.Fields) == 0 {
		v.res.AddInfo("no_fields", "binding declares no fields", tb.Type, "")
	}

	seen := make(map[string]struct{}, len(tb.Fields))

	for i := range tb.Fields {
		fb := &tb.Fields[i]
		if fb.Name == "" {
			v.res.AddError("missing_field_name", fmt.Sprintf("field #%d has no name", i+1), tb.Type, "")
			continue
		}

		if _, ok := seen[fb.Name]; ok {
			v.res.AddError("duplicate_field", fmt.Sprintf("field %q is declared more than once", fb.Name), tb.Type, fb.Name)
		}

		seen[fb.Name] = struct{}{}

		if v.known != nil {
			if _, ok := v.known[fb.Name]; !ok {
				v.res.AddError("unknown_field", fmt.Sprintf("type has no field %q", fb.Name), tb.Type, fb.Name,
					match.Suggest(fb.Name, v.names, 3)...)
			}
		}

		if fb.Strategy == nil && fb.Filter == nil {
			v.res.AddWarning("unused_field", "field has neither a strategy nor a filter", tb.Type, fb.Name)
		}

		if fb.Strategy != nil {
			v.validateStrategy(fb.Strategy, fb.Name)
		}

		if fb.Filter != nil {
			v.validateFilter(fb.Filter, fb.Name, true)
		}
	}
}

func (v *validator) validateNaming() {
	tb := v.binding

	if !slices.Contains(namings, tb.Naming) {
		v.res.AddError("unknown_naming",
			fmt.Sprintf("unknown naming %q, expected one of: %s", tb.Naming, strings.Join(namings, ", ")), tb.Type, "",
			match.Suggest(tb.Naming, namings, 1)...)
		return
	}

	if tb.Naming != NamingMap {
		if len(tb.Rename) > 0 {
			v.res.AddWarning("unused_rename", fmt.Sprintf("rename table is ignored by %s naming", tb.Naming), tb.Type, "")
		}

		return
	}

	m, err := naming.NewMap(tb.Rename)
	if err != nil {
		v.res.AddError("invalid_rename", err.Error(), tb.Type, "")
		return
	}

	if v.known == nil {
		return
	}

	if err := m.Check(slices.Sorted(maps.Keys(v.known))); err != nil {
		v.res.AddError("invalid_rename", err.Error(), tb.Type, "")
	}

	for _, field := range slices.Sorted(maps.Keys(tb.Rename)) {
		if _, ok := v.known[field]; !ok {
			v.res.AddError("unknown_field", fmt.Sprintf("rename of unknown field %q", field), tb.Type, field,
				match.Suggest(field, v.names, 3)...)
		}
	}
}

func (v *validator) validateStrategy(def *StrategyDef, field string) {
	tb := v.binding

	kinds := def.Kinds()
	if len(kinds) != 1 {
		v.res.AddError("invalid_strategy",
			fmt.Sprintf("strategy must set exactly one of boolean, chain, caster, nested, collection; got %d", len(kinds)),
			tb.Type, field)

		return
	}

	switch kinds[0] {
	case "boolean":
		if _, err := strategy.NewBoolean(def.Boolean.TrueValue, def.Boolean.FalseValue); err != nil {
			v.res.AddError("invalid_boolean", err.Error(), tb.Type, field)
		}

	case "chain":
		if len(def.Chain) == 0 {
			v.res.AddWarning("empty_chain", "chain has no strategies", tb.Type, field)
		}

		for i := range def.Chain {
			v.validateStrategy(&def.Chain[i], field)
		}

	case "caster":
		v.validateCaster(def.Caster, field)

	case "nested":
		v.validateNested(def.Nested, field)

	case "collection":
		v.validateNested(def.Collection, field)
	}
}

func (v *validator) validateCaster(def *CasterDef, field string) {
	tb := v.binding

	if def.Extract == "" || def.Hydrate == "" {
		v.res.AddError("invalid_caster", "caster needs both extract and hydrate functions", tb.Type, field)
		return
	}

	if v.catalog == nil {
		return
	}

	extract, okExtract := v.catalog.Func(def.Extract)
	if !okExtract {
		v.res.AddError("unknown_func", fmt.Sprintf("function %q is not in the catalog", def.Extract), tb.Type, field)
	}

	hydrate, okHydrate := v.catalog.Func(def.Hydrate)
	if !okHydrate {
		v.res.AddError("unknown_func", fmt.Sprintf("function %q is not in the catalog", def.Hydrate), tb.Type, field)
	}

	if okExtract && okHydrate {
		if _, err := strategy.NewCaster(extract, hydrate); err != nil {
			v.res.AddError("invalid_caster", err.Error(), tb.Type, field)
		}
	}
}

func (v *validator) validateNested(ref, field string) {
	tb := v.binding
	name := strings.TrimPrefix(ref, "*")

	if _, ok := v.bound[name]; !ok {
		v.res.AddError("unbound_type", fmt.Sprintf("nested type %q has no binding", name), tb.Type, field)
	}

	if v.catalog == nil {
		return
	}

	if _, err := v.catalog.Prototype(ref); err != nil {
		v.res.AddError("unknown_type", fmt.Sprintf("nested type %q is not in the catalog", name), tb.Type, field)
	}
}

func (v *validator) validateFilter(def *FilterDef, field string, fieldLevel bool) {
	tb := v.binding

	kinds := def.Kinds()
	if len(kinds) != 1 {
		v.res.AddError("invalid_filter",
			fmt.Sprintf("filter must set exactly one of match, prefix, not, any, all; got %d", len(kinds)),
			tb.Type, field)

		return
	}

	switch kinds[0] {
	case "match":
		if def.Match.Name == "" {
			v.res.AddError("invalid_filter", "match filter needs a name", tb.Type, field)
		} else if fieldLevel && def.Match.Name != field {
			v.res.AddWarning("foreign_match",
				fmt.Sprintf("match on %q never sees any field but %q", def.Match.Name, field), tb.Type, field)
		}

	case "not":
		v.validateFilter(def.Not, field, fieldLevel)

	case "any", "all":
		for i := range def.Any {
			v.validateFilter(&def.Any[i], field, fieldLevel)
		}

		for i := range def.All {
			v.validateFilter(&def.All[i], field, fieldLevel)
		}
	}
}
