package converter

import (
	"fmt"

	"go.uber.org/zap"

	"hydrator/fields"
)

// Delegating forwards every call to the converter registered for the
// object's runtime type. It performs no field access itself.
type Delegating struct {
	registry Registry
	logger   *zap.Logger
}

// NewDelegating creates a converter routing through registry.
func NewDelegating(registry Registry, opts ...Option) *Delegating {
	o := newOptions(opts)

	return &Delegating{
		registry: registry,
		logger:   o.logger,
	}
}

// Extract extracts object with the converter registered for its type.
func (d *Delegating) Extract(object any) (*fields.Mapping, error) {
	c, err := d.resolve(object, "extract")
	if err != nil {
		return nil, err
	}

	return c.Extract(object)
}

// Hydrate hydrates object with the converter registered for its type.
func (d *Delegating) Hydrate(data *fields.Mapping, object any) (any, error) {
	c, err := d.resolve(object, "hydrate")
	if err != nil {
		return nil, err
	}

	return c.Hydrate(data, object)
}

func (d *Delegating) resolve(object any, op string) (Converter, error) {
	key := KeyOf(object)
	if !key.IsValid() {
		return nil, &NoConverterError{Type: key}
	}

	c, err := d.registry.Get(key)
	if err != nil {
		d.logger.Debug("no converter", zap.String("op", op), zap.String("type", key.String()))
		return nil, err
	}

	if d.routesBack(key, c) {
		return nil, fmt.Errorf("%w: converter for %s routes back to its delegating converter", ErrRecursiveDelegation, key)
	}

	d.logger.Debug("delegating", zap.String("op", op), zap.String("type", key.String()), zap.String("converter", fmt.Sprintf("%T", c)))

	return c, nil
}

// routesBack reports whether c leads back to d, or to any delegating
// converter already passed, for key. It follows converters exposing Base
// and the registries of other delegating converters.
func (d *Delegating) routesBack(key TypeKey, c Converter) bool {
	seen := map[*Delegating]struct{}{d: {}}

	for c != nil {
		switch cur := c.(type) {
		case *Delegating:
			if _, ok := seen[cur]; ok {
				return true
			}

			seen[cur] = struct{}{}

			next, err := cur.registry.Get(key)
			if err != nil {
				return false
			}

			c = next

		case interface{ Base() Converter }:
			c = cur.Base()

		default:
			return false
		}
	}

	return false
}
