package schema

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"hydrator/converter"
	"hydrator/strategy"
)

var (
	ErrDuplicateType = errors.New("type already in catalog")
	ErrDuplicateFunc = errors.New("function already in catalog")
	ErrUnknownType   = errors.New("type not in catalog")
)

// Catalog resolves the names used in a binding file to Go types and
// conversion functions.
type Catalog struct {
	types    map[string]reflect.Type
	funcs    map[string]any
	tag      string
	accessor *converter.StructAccessor
}

// NewCatalog creates an empty catalog whose field names follow tag.
func NewCatalog(tag string) *Catalog {
	return &Catalog{
		types:    make(map[string]reflect.Type),
		funcs:    make(map[string]any),
		tag:      tag,
		accessor: converter.NewStructAccessor(tag),
	}
}

// AddType adds the struct types of the given values under their type key
// names, such as "store.Customer". Values may be pointers.
func (c *Catalog) AddType(values ...any) error {
	for _, v := range values {
		key := converter.KeyOf(v)
		if !key.IsValid() || key.Type().Kind() != reflect.Struct {
			return fmt.Errorf("%w: expected a struct, got %s", converter.ErrInvalidObject, key)
		}

		name := key.String()
		if _, ok := c.types[name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateType, name)
		}

		c.types[name] = key.Type()
	}

	return nil
}

// AddFunc adds a conversion function usable by caster strategies.
func (c *Catalog) AddFunc(name string, fn any) error {
	if _, ok := c.funcs[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateFunc, name)
	}

	if _, err := strategy.ParseCaster(fn); err != nil {
		return fmt.Errorf("function %s: %w", name, err)
	}

	c.funcs[name] = fn

	return nil
}

// Tag returns the struct tag field names are read from.
func (c *Catalog) Tag() string { return c.tag }

func (c *Catalog) Type(name string) (reflect.Type, bool) {
	t, ok := c.types[name]
	return t, ok
}

func (c *Catalog) Func(name string) (any, bool) {
	fn, ok := c.funcs[name]
	return fn, ok
}

// TypeNames returns the names of all types, sorted.
func (c *Catalog) TypeNames() []string {
	return slices.Sorted(maps.Keys(c.types))
}

// Fields lists the field names of the named type.
func (c *Catalog) Fields(name string) ([]string, error) {
	t, ok := c.types[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, name)
	}

	return c.accessor.FieldsOf(t)
}

// Prototype resolves a nested type reference. A leading "*" yields a pointer prototype.
func (c *Catalog) Prototype(ref string) (any, error) {
	name, pointer := strings.CutPrefix(ref, "*")

	t, ok := c.types[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, name)
	}

	if pointer {
		t = reflect.PointerTo(t)
	}

	return reflect.Zero(t).Interface(), nil
}
