package converter

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"hydrator/fields"
)

var (
	ErrNoConverterRegistered = errors.New("no converter registered")
	ErrDuplicateConverter    = errors.New("converter already registered")
	ErrRecursiveDelegation   = errors.New("converter delegates to itself")
	ErrInvalidObject         = errors.New("invalid object")
	ErrUnknownField          = errors.New("unknown field")
	ErrDuplicateField        = errors.New("duplicate field")
	ErrFieldType             = errors.New("field type mismatch")
)

// Converter extracts an object into a mapping and hydrates a mapping into an object.
type Converter interface {
	Extract(object any) (*fields.Mapping, error)
	// Hydrate writes data into object and returns the hydrated object.
	Hydrate(data *fields.Mapping, object any) (any, error)
}

// NoConverterError is returned when a registry has no converter for a type.
type NoConverterError struct {
	Type TypeKey
}

func (e *NoConverterError) Error() string {
	return fmt.Sprintf("%s for type %s", ErrNoConverterRegistered, e.Type)
}

func (e *NoConverterError) Is(target error) bool { return target == ErrNoConverterRegistered }

// FieldTypeError is returned when a value cannot be stored in a field.
type FieldTypeError struct {
	Type     TypeKey
	Field    string
	Expected string
	Got      string
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("%s: %s.%s expects %s, got %s", ErrFieldType, e.Type, e.Field, e.Expected, e.Got)
}

func (e *FieldTypeError) Is(target error) bool { return target == ErrFieldType }

// DefaultTag is the struct tag consulted for field names.
const DefaultTag = "hydrator"

// Option configures converters and registries.
type Option func(*options)

type options struct {
	logger *zap.Logger
	tag    string
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTag sets the struct tag used to name fields, DefaultTag by default.
func WithTag(tag string) Option {
	return func(o *options) {
		o.tag = tag
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger: zap.NewNop(),
		tag:    DefaultTag,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
