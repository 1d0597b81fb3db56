package converter

import (
	"fmt"
	"reflect"

	"hydrator/fields"
	"hydrator/primitive"
	"hydrator/strategy"
)

// Nested is a value strategy for fields holding another object. It extracts
// the object through a converter, which may pick its own converter per type
// when it is a Delegating one, and hydrates mappings into fresh instances of
// the prototype type.
type Nested struct {
	converter Converter
	prototype reflect.Type // struct or pointer to struct
}

// NewNested builds a Nested strategy. prototype is a value or a pointer of
// the nested struct type and decides whether Hydrate returns a value or a pointer.
func NewNested(c Converter, prototype any) (*Nested, error) {
	t := reflect.TypeOf(prototype)
	key := KeyOfType(t)

	if c == nil {
		return nil, &strategy.ConfigurationError{Strategy: "Nested", Param: "converter", Reason: "is nil"}
	}

	if !key.IsValid() || key.Type().Kind() != reflect.Struct {
		return nil, &strategy.ConfigurationError{
			Strategy: "Nested",
			Param:    "prototype",
			Reason:   "expected a struct or a pointer to a struct, " + primitive.TypeName(prototype) + " was given",
		}
	}

	if t.Kind() == reflect.Ptr && t.Elem().Kind() == reflect.Ptr {
		return nil, &strategy.ConfigurationError{Strategy: "Nested", Param: "prototype", Reason: strategy.ErrDoublePointer.Error()}
	}

	return &Nested{converter: c, prototype: t}, nil
}

// Extract converts a nested object; nil stays nil.
func (n *Nested) Extract(value any, _ any) (any, error) {
	if isNil(value) {
		return nil, nil
	}

	return n.converter.Extract(value)
}

// Hydrate accepts a *fields.Mapping or a map[string]any. Values already of
// the prototype type are returned unchanged.
func (n *Nested) Hydrate(value any, _ *fields.Mapping) (any, error) {
	if isNil(value) {
		return nil, nil
	}

	if reflect.TypeOf(value) == n.prototype {
		return value, nil
	}

	var data *fields.Mapping

	switch v := value.(type) {
	case *fields.Mapping:
		data = v
	case map[string]any:
		data = fields.FromMap(v)
	default:
		return nil, &strategy.InputError{Op: "hydrate", Expected: "mapping", Got: primitive.TypeName(value)}
	}

	target := reflect.New(KeyOfType(n.prototype).Type())

	hydrated, err := n.converter.Hydrate(data, target.Interface())
	if err != nil {
		return nil, err
	}

	out := reflect.ValueOf(hydrated)
	if !out.IsValid() || out.Type() != target.Type() {
		return nil, fmt.Errorf("%w: converter returned %s for %s", ErrInvalidObject, primitive.TypeName(hydrated), target.Type())
	}

	if n.prototype.Kind() == reflect.Ptr {
		return out.Interface(), nil
	}

	return out.Elem().Interface(), nil
}

// Collection applies a Nested strategy to every element of a slice or array.
type Collection struct {
	nested *Nested
}

// NewCollection builds a Collection over objects of the prototype type.
func NewCollection(c Converter, prototype any) (*Collection, error) {
	nested, err := NewNested(c, prototype)
	if err != nil {
		return nil, err
	}

	return &Collection{nested: nested}, nil
}

// Extract returns a []any of extracted mappings.
func (c *Collection) Extract(value any, object any) (any, error) {
	if isNil(value) {
		return nil, nil
	}

	v := reflect.ValueOf(value)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, &strategy.InputError{Op: "extract", Expected: "slice", Got: primitive.TypeName(value)}
	}

	out := make([]any, v.Len())
	for i := range v.Len() {
		item, err := c.nested.Extract(v.Index(i).Interface(), object)
		if err != nil {
			return nil, err
		}

		out[i] = item
	}

	return out, nil
}

// Hydrate returns a slice of the prototype type.
func (c *Collection) Hydrate(value any, data *fields.Mapping) (any, error) {
	if isNil(value) {
		return nil, nil
	}

	sliceType := reflect.SliceOf(c.nested.prototype)
	if reflect.TypeOf(value) == sliceType {
		return value, nil
	}

	v := reflect.ValueOf(value)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, &strategy.InputError{Op: "hydrate", Expected: "slice", Got: primitive.TypeName(value)}
	}

	out := reflect.MakeSlice(sliceType, v.Len(), v.Len())
	for i := range v.Len() {
		item, err := c.nested.Hydrate(v.Index(i).Interface(), data)
		if err != nil {
			return nil, err
		}

		if item != nil {
			out.Index(i).Set(reflect.ValueOf(item))
		}
	}

	return out.Interface(), nil
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
