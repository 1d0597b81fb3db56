package converter

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"hydrator/primitive"
)

// FieldAccessor reads and writes named fields of objects.
type FieldAccessor interface {
	// Fields lists the field names of object in a stable order.
	Fields(object any) ([]string, error)
	Get(object any, name string) (any, error)
	// Set writes value into the named field; object must be addressable.
	Set(object any, name string, value any) error
}

// StructAccessor accesses exported struct fields by reflection. Field names
// come from the configured struct tag, falling back to the Go field name;
// a tag of "-" hides the field. Untagged embedded structs are flattened.
type StructAccessor struct {
	tag     string
	layouts sync.Map // reflect.Type -> *structLayout
}

type structLayout struct {
	names []string
	index map[string][]int
}

// NewStructAccessor creates an accessor reading names from tag.
func NewStructAccessor(tag string) *StructAccessor {
	return &StructAccessor{tag: tag}
}

// FieldsOf lists the field names of a struct type without an instance.
func (a *StructAccessor) FieldsOf(t reflect.Type) ([]string, error) {
	layout, err := a.layout(KeyOfType(t))
	if err != nil {
		return nil, err
	}

	return append([]string(nil), layout.names...), nil
}

func (a *StructAccessor) Fields(object any) ([]string, error) {
	return a.FieldsOf(reflect.TypeOf(object))
}

func (a *StructAccessor) Get(object any, name string) (any, error) {
	v, err := structValue(object, false)
	if err != nil {
		return nil, err
	}

	key := KeyOf(object)

	layout, err := a.layout(key)
	if err != nil {
		return nil, err
	}

	idx, ok := layout.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no field %q", ErrUnknownField, key, name)
	}

	return v.FieldByIndex(idx).Interface(), nil
}

func (a *StructAccessor) Set(object any, name string, value any) error {
	v, err := structValue(object, true)
	if err != nil {
		return err
	}

	key := KeyOf(object)

	layout, err := a.layout(key)
	if err != nil {
		return err
	}

	idx, ok := layout.index[name]
	if !ok {
		return fmt.Errorf("%w: %s has no field %q", ErrUnknownField, key, name)
	}

	field := v.FieldByIndex(idx)
	if err := assign(field, value); err != nil {
		return &FieldTypeError{Type: key, Field: name, Expected: field.Type().String(), Got: primitive.TypeName(value)}
	}

	return nil
}

func (a *StructAccessor) layout(key TypeKey) (*structLayout, error) {
	if !key.IsValid() || key.Type().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: expected a struct, got %s", ErrInvalidObject, key)
	}

	if cached, ok := a.layouts.Load(key.Type()); ok {
		return cached.(*structLayout), nil
	}

	layout := &structLayout{index: make(map[string][]int)}
	a.collect(layout, key.Type(), nil)

	cached, _ := a.layouts.LoadOrStore(key.Type(), layout)

	return cached.(*structLayout), nil
}

func (a *StructAccessor) collect(layout *structLayout, t reflect.Type, prefix []int) {
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		idx := append(append([]int(nil), prefix...), i)

		tag := sf.Tag.Get(a.tag)
		if tag == "-" {
			continue
		}

		name, _, _ := strings.Cut(tag, ",")

		if sf.Anonymous && name == "" && sf.Type.Kind() == reflect.Struct {
			a.collect(layout, sf.Type, idx)
			continue
		}

		if name == "" {
			name = sf.Name
		}

		// outer fields shadow promoted ones
		if _, exists := layout.index[name]; exists {
			continue
		}

		layout.names = append(layout.names, name)
		layout.index[name] = idx
	}
}

// structValue dereferences object down to its struct value.
// Writable access requires a non-nil pointer.
func structValue(object any, writable bool) (reflect.Value, error) {
	v := reflect.ValueOf(object)
	if writable && v.Kind() != reflect.Ptr {
		return reflect.Value{}, fmt.Errorf("%w: hydration needs a pointer to a struct, got %s",
			ErrInvalidObject, primitive.TypeName(object))
	}

	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: nil %s", ErrInvalidObject, primitive.TypeName(object))
		}

		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: expected a struct, got %s", ErrInvalidObject, primitive.TypeName(object))
	}

	return v, nil
}

// assign stores value into field. Besides plain assignability it allows
// lossless numeric conversions and conversions between types sharing an
// underlying bool or string kind. Nil resets the field to its zero value.
func assign(field reflect.Value, value any) error {
	if value == nil {
		field.Set(reflect.Zero(field.Type()))
		return nil
	}

	v := reflect.ValueOf(value)
	if v.Type().AssignableTo(field.Type()) {
		field.Set(v)
		return nil
	}

	from := primitive.FromKind(v.Kind())
	to := primitive.FromKind(field.Kind())

	switch {
	case from.IsSigned() && to.IsInteger():
		n := v.Int()
		if to.IsUnsigned() && (n < 0 || field.OverflowUint(uint64(n))) || to.IsSigned() && field.OverflowInt(n) {
			return fmt.Errorf("%d overflows %s", n, field.Type())
		}

		field.Set(v.Convert(field.Type()))

	case from.IsUnsigned() && to.IsInteger():
		n := v.Uint()
		if to.IsSigned() && (n > math.MaxInt64 || field.OverflowInt(int64(n))) || to.IsUnsigned() && field.OverflowUint(n) {
			return fmt.Errorf("%d overflows %s", n, field.Type())
		}

		field.Set(v.Convert(field.Type()))

	case from.IsInteger() && to.IsFloat():
		field.Set(v.Convert(field.Type()))

	case from.IsFloat() && to.IsFloat():
		if field.OverflowFloat(v.Float()) {
			return fmt.Errorf("%v overflows %s", v.Float(), field.Type())
		}

		field.Set(v.Convert(field.Type()))

	case from != 0 && from == to && (from == primitive.KindString || from == primitive.KindBool):
		field.Set(v.Convert(field.Type()))

	default:
		return fmt.Errorf("cannot assign %s to %s", v.Type(), field.Type())
	}

	return nil
}
