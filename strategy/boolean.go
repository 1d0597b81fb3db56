package strategy

import (
	"reflect"

	"hydrator/fields"
	"hydrator/primitive"
)

// Boolean maps bool field values to a configured integer or string
// representation and back.
type Boolean struct {
	trueValue  Scalar
	falseValue Scalar
}

// NewBoolean builds a Boolean strategy. Both representations must be of an
// integer or string type and must differ from each other.
func NewBoolean(trueValue, falseValue any) (*Boolean, error) {
	t, err := ScalarOf(trueValue)
	if err != nil {
		return nil, &ConfigurationError{Strategy: "Boolean", Param: "trueValue", Reason: err.Error()}
	}

	f, err := ScalarOf(falseValue)
	if err != nil {
		return nil, &ConfigurationError{Strategy: "Boolean", Param: "falseValue", Reason: err.Error()}
	}

	if t.Equal(f) {
		return nil, &ConfigurationError{
			Strategy: "Boolean",
			Param:    "falseValue",
			Reason:   "must differ from trueValue, both are " + t.String(),
		}
	}

	return &Boolean{trueValue: t, falseValue: f}, nil
}

// MustBoolean is like NewBoolean but panics on invalid configuration.
func MustBoolean(trueValue, falseValue any) *Boolean {
	b, err := NewBoolean(trueValue, falseValue)
	if err != nil {
		panic(err)
	}

	return b
}

// TrueValue returns the configured representation of true.
func (b *Boolean) TrueValue() any { return b.trueValue.Value() }

// FalseValue returns the configured representation of false.
func (b *Boolean) FalseValue() any { return b.falseValue.Value() }

// Extract maps a bool, or a value of a named bool type, to its
// representation. Nil passes through.
func (b *Boolean) Extract(value any, _ any) (any, error) {
	if value == nil {
		return nil, nil
	}

	if primitive.UnderlyingOf(value) != primitive.KindBool {
		return nil, &InputError{Op: "extract", Expected: "bool", Got: primitive.TypeName(value)}
	}

	if reflect.ValueOf(value).Bool() {
		return b.trueValue.Value(), nil
	}

	return b.falseValue.Value(), nil
}

// Hydrate maps a representation back to a bool, comparing against the true
// value first. Bools pass through as plain bool.
func (b *Boolean) Hydrate(value any, _ *fields.Mapping) (any, error) {
	if value == nil {
		return nil, nil
	}

	if primitive.UnderlyingOf(value) == primitive.KindBool {
		return reflect.ValueOf(value).Bool(), nil
	}

	s, err := ScalarOf(value)
	if err != nil {
		return nil, &InputError{Op: "hydrate", Expected: "bool, int or string", Got: primitive.TypeName(value)}
	}

	switch {
	case s.Equal(b.trueValue):
		return true, nil
	case s.Equal(b.falseValue):
		return false, nil
	default:
		return nil, &UnrecognizedValueError{Value: value, Expected: []Scalar{b.trueValue, b.falseValue}}
	}
}
