package converter

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Registry resolves the converter responsible for a type.
type Registry interface {
	Has(key TypeKey) bool
	// Get returns a *NoConverterError when nothing is registered for key.
	Get(key TypeKey) (Converter, error)
}

// MapRegistry is a Registry backed by a map. It is meant to be filled at
// startup; lookups are safe while registrations happen concurrently.
type MapRegistry struct {
	mu         sync.RWMutex
	converters map[TypeKey]Converter
	logger     *zap.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *MapRegistry {
	o := newOptions(opts)

	return &MapRegistry{
		converters: make(map[TypeKey]Converter),
		logger:     o.logger,
	}
}

// Register binds c to key. Registering a key twice is an error.
func (r *MapRegistry) Register(key TypeKey, c Converter) error {
	if !key.IsValid() {
		return fmt.Errorf("%w: cannot register a converter for nil", ErrInvalidObject)
	}

	if c == nil {
		return fmt.Errorf("%w: nil converter for type %s", ErrInvalidObject, key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.converters[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateConverter, key)
	}

	r.converters[key] = c
	r.logger.Debug("converter registered", zap.String("type", key.String()), zap.String("converter", fmt.Sprintf("%T", c)))

	return nil
}

// Register binds c to the type T.
func Register[T any](r *MapRegistry, c Converter) error {
	return r.Register(KeyFor[T](), c)
}

// Has returns true if a converter is registered for key.
func (r *MapRegistry) Has(key TypeKey) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.converters[key]

	return exists
}

// Get returns the converter registered for key.
func (r *MapRegistry) Get(key TypeKey) (Converter, error) {
	r.mu.RLock()
	c, exists := r.converters[key]
	r.mu.RUnlock()

	if !exists {
		return nil, &NoConverterError{Type: key}
	}

	return c, nil
}

// Keys returns all registered keys ordered by name.
func (r *MapRegistry) Keys() []TypeKey {
	r.mu.RLock()
	keys := make([]TypeKey, 0, len(r.converters))
	for k := range r.converters {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	slices.SortFunc(keys, func(a, b TypeKey) int {
		return strings.Compare(a.String(), b.String())
	})

	return keys
}
