package strategy

import (
	"errors"
	"fmt"
	"reflect"

	"hydrator/fields"
	"hydrator/primitive"
)

var (
	ErrIsNotACaster         = errors.New("provided function is not a recognizable caster")
	ErrCasterIsNotAFunction = errors.New("provided caster is not a function")
	ErrDoublePointer        = errors.New("caster function does not support double pointers")
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// CasterFunc describes a plain conversion function used as one side of a strategy.
type CasterFunc struct {
	Src, Dst reflect.Type
	HasBool  bool
	HasErr   bool

	fn reflect.Value
}

// ParseCaster inspects the provided function and returns a CasterFunc if it is a valid caster function.
//
// Supports interfaces:
//   - func(src Type) (dst Type)
//   - func(src Type) (dst Type, bool)
//   - func(src Type) (dst Type, error)
//   - func(src Type) (dst Type, bool, error)
//
// A false bool result is reported as ErrUnrecognizedValue.
func ParseCaster(fn any) (CasterFunc, error) {
	if fn == nil {
		return CasterFunc{}, ErrCasterIsNotAFunction
	}

	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func {
		return CasterFunc{}, ErrCasterIsNotAFunction
	}

	if fnType.NumIn() != 1 || fnType.NumOut() == 0 || fnType.IsVariadic() {
		return CasterFunc{}, ErrIsNotACaster
	}

	src := fnType.In(0)
	if src.Kind() == reflect.Ptr && src.Elem().Kind() == reflect.Ptr {
		return CasterFunc{}, ErrDoublePointer
	}

	dst := fnType.Out(0)
	if dst.Kind() == reflect.Ptr && dst.Elem().Kind() == reflect.Ptr {
		return CasterFunc{}, ErrDoublePointer
	}

	caster := CasterFunc{Src: src, Dst: dst, fn: fnVal}

	switch fnType.NumOut() {
	default:
		return CasterFunc{}, ErrIsNotACaster

	case 1:
		return caster, nil

	case 2:
		last := fnType.Out(1)

		switch {
		default:
			return CasterFunc{}, ErrIsNotACaster
		case last.Kind() == reflect.Bool:
			caster.HasBool = true
		case last.Implements(errorType):
			caster.HasErr = true
		}
		return caster, nil

	case 3:
		tbool, terr := fnType.Out(1), fnType.Out(2)
		if tbool.Kind() != reflect.Bool || !terr.Implements(errorType) {
			return CasterFunc{}, ErrIsNotACaster
		}

		caster.HasBool = true
		caster.HasErr = true
		return caster, nil
	}
}

// Call converts value, checking that it is assignable to the source type.
func (c CasterFunc) Call(op string, value any) (any, error) {
	in := reflect.ValueOf(value)
	if !in.Type().AssignableTo(c.Src) {
		return nil, &InputError{Op: op, Expected: c.Src.String(), Got: primitive.TypeName(value)}
	}

	out := c.fn.Call([]reflect.Value{in})

	if c.HasErr {
		if err, _ := out[len(out)-1].Interface().(error); err != nil {
			return nil, err
		}
	}

	if c.HasBool && !out[1].Bool() {
		return nil, &UnrecognizedValueError{Value: value}
	}

	return out[0].Interface(), nil
}

// Caster is a strategy assembled from two plain conversion functions, one per direction.
type Caster struct {
	extract CasterFunc
	hydrate CasterFunc
}

// NewCaster validates both functions once and requires them to be inverse in shape:
// the extractor's destination must be the hydrator's source and vice versa.
func NewCaster(extractFn, hydrateFn any) (*Caster, error) {
	extract, err := ParseCaster(extractFn)
	if err != nil {
		return nil, &ConfigurationError{Strategy: "Caster", Param: "extractFn", Reason: err.Error()}
	}

	hydrate, err := ParseCaster(hydrateFn)
	if err != nil {
		return nil, &ConfigurationError{Strategy: "Caster", Param: "hydrateFn", Reason: err.Error()}
	}

	if extract.Dst != hydrate.Src || extract.Src != hydrate.Dst {
		return nil, &ConfigurationError{
			Strategy: "Caster",
			Param:    "hydrateFn",
			Reason: fmt.Sprintf("signature %s -> %s does not invert %s -> %s",
				hydrate.Src, hydrate.Dst, extract.Src, extract.Dst),
		}
	}

	return &Caster{extract: extract, hydrate: hydrate}, nil
}

func (c *Caster) Extract(value any, _ any) (any, error) {
	if value == nil {
		return nil, nil
	}

	return c.extract.Call("extract", value)
}

// Hydrate passes values already of the hydrated type through unchanged.
func (c *Caster) Hydrate(value any, _ *fields.Mapping) (any, error) {
	if value == nil {
		return nil, nil
	}

	if reflect.TypeOf(value) == c.hydrate.Dst && c.hydrate.Dst != c.hydrate.Src {
		return value, nil
	}

	return c.hydrate.Call("hydrate", value)
}
