package strategy

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidConfiguration is returned when a strategy is built from unusable settings.
	ErrInvalidConfiguration = errors.New("invalid strategy configuration")
	// ErrInvalidInput is returned when a value of an unsupported type is extracted or hydrated.
	ErrInvalidInput = errors.New("invalid input value")
	// ErrUnrecognizedValue is returned when a value matches none of the configured representations.
	ErrUnrecognizedValue = errors.New("unrecognized value")
)

// ConfigurationError names the offending constructor parameter.
type ConfigurationError struct {
	Strategy string
	Param    string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unable to instantiate %s: %s: %s", e.Strategy, e.Param, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrInvalidConfiguration }

// InputError reports a value whose type the strategy cannot process.
type InputError struct {
	Op       string // "extract" or "hydrate"
	Expected string
	Got      string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("unable to %s: expected %s, got %s", e.Op, e.Expected, e.Got)
}

func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }

// UnrecognizedValueError carries the rejected value and the accepted representations.
type UnrecognizedValueError struct {
	Value    any
	Expected []Scalar
}

func (e *UnrecognizedValueError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("unexpected value %#v can't be hydrated", e.Value)
	}

	expected := make([]string, len(e.Expected))
	for i, s := range e.Expected {
		expected[i] = s.String()
	}

	return fmt.Sprintf("unexpected value %#v can't be hydrated, expected one of: %s",
		e.Value, strings.Join(expected, ", "))
}

func (e *UnrecognizedValueError) Is(target error) bool { return target == ErrUnrecognizedValue }
