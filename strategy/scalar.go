package strategy

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"hydrator/primitive"
	"hydrator/utils"
)

// ScalarKind tells which side of the Scalar union is populated.
type ScalarKind int

const (
	ScalarInvalid ScalarKind = iota
	ScalarInt
	ScalarString
)

// Scalar is an integer or a string representation. Values of any other type
// are rejected at construction, so comparisons never mix the two families.
type Scalar struct {
	kind ScalarKind
	i    int64
	s    string
	raw  any
}

// Int builds an integer scalar.
func Int(v int64) Scalar {
	return Scalar{kind: ScalarInt, i: v, raw: v}
}

// String builds a string scalar.
func String(v string) Scalar {
	return Scalar{kind: ScalarString, s: v, raw: v}
}

// ScalarOf accepts any Go integer or string kind, including named types.
// The original value is kept and returned by Value.
func ScalarOf(value any) (Scalar, error) {
	kind := primitive.UnderlyingOf(value)

	switch {
	case kind.IsSigned():
		return Scalar{kind: ScalarInt, i: reflect.ValueOf(value).Int(), raw: value}, nil

	case kind.IsUnsigned():
		u := reflect.ValueOf(value).Uint()
		if !utils.IsInRange(0, u, math.MaxInt64) {
			return Scalar{}, fmt.Errorf("integer %d overflows int64", u)
		}

		return Scalar{kind: ScalarInt, i: int64(u), raw: value}, nil

	case kind == primitive.KindString:
		return Scalar{kind: ScalarString, s: reflect.ValueOf(value).String(), raw: value}, nil

	default:
		return Scalar{}, fmt.Errorf("expected int or string, %s was given", primitive.TypeName(value))
	}
}

// Kind returns the populated side of the union.
func (s Scalar) Kind() ScalarKind { return s.kind }

// IsValid is false for the zero Scalar.
func (s Scalar) IsValid() bool { return s.kind != ScalarInvalid }

// Value returns the value the scalar was built from.
func (s Scalar) Value() any { return s.raw }

// Equal compares family and value; an integer never equals a string.
func (s Scalar) Equal(other Scalar) bool {
	if s.kind != other.kind {
		return false
	}

	switch s.kind {
	case ScalarInt:
		return s.i == other.i
	case ScalarString:
		return s.s == other.s
	default:
		return true
	}
}

func (s Scalar) String() string {
	switch s.kind {
	case ScalarInt:
		return strconv.FormatInt(s.i, 10)
	case ScalarString:
		return strconv.Quote(s.s)
	default:
		return "<invalid>"
	}
}
