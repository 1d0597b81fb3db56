package converter

import (
	"maps"
	"slices"

	"go.uber.org/zap"

	"hydrator/fields"
	"hydrator/filter"
	"hydrator/naming"
	"hydrator/strategy"
)

// StrategyEnabled wraps a base converter with field level behaviour:
//
//   - on Extract every raw pair is filtered, then passed through the value
//     strategy registered for its field, then renamed by the naming strategy;
//   - on Hydrate every key is renamed back and its value passed through the
//     strategy's Hydrate before the base converter writes it.
//
// Filters only restrict extraction. Strategies and filters are keyed by the
// field name the base converter uses, before renaming. Filters receive the
// qualified identifier "<type>::<field>".
//
// Registration methods are not safe for use concurrently with conversions;
// configure the converter before sharing it.
type StrategyEnabled struct {
	base         Converter
	strategies   map[string]strategy.Strategy
	fieldFilters map[string]filter.Filter
	filter       filter.Filter
	naming       naming.Strategy
	logger       *zap.Logger
}

// NewStrategyEnabled wraps base with no strategies, filters or renaming.
func NewStrategyEnabled(base Converter, opts ...Option) *StrategyEnabled {
	o := newOptions(opts)

	return &StrategyEnabled{
		base:         base,
		strategies:   make(map[string]strategy.Strategy),
		fieldFilters: make(map[string]filter.Filter),
		naming:       naming.Identity{},
		logger:       o.logger,
	}
}

// AddStrategy binds s to the named field, replacing any previous strategy.
func (c *StrategyEnabled) AddStrategy(name string, s strategy.Strategy) *StrategyEnabled {
	c.strategies[name] = s
	return c
}

// RemoveStrategy unbinds the strategy of the named field.
func (c *StrategyEnabled) RemoveStrategy(name string) *StrategyEnabled {
	delete(c.strategies, name)
	return c
}

// HasStrategy returns true if the named field has a strategy.
func (c *StrategyEnabled) HasStrategy(name string) bool {
	_, ok := c.strategies[name]
	return ok
}

// Strategy returns the strategy bound to the named field.
func (c *StrategyEnabled) Strategy(name string) (strategy.Strategy, bool) {
	s, ok := c.strategies[name]
	return s, ok
}

// StrategyNames returns the fields with a bound strategy, sorted.
func (c *StrategyEnabled) StrategyNames() []string {
	return slices.Sorted(maps.Keys(c.strategies))
}

// AddFieldFilter binds f to the named field. Fields without a filter are included.
func (c *StrategyEnabled) AddFieldFilter(name string, f filter.Filter) *StrategyEnabled {
	c.fieldFilters[name] = f
	return c
}

// RemoveFieldFilter unbinds the filter of the named field.
func (c *StrategyEnabled) RemoveFieldFilter(name string) *StrategyEnabled {
	delete(c.fieldFilters, name)
	return c
}

// SetFilter sets a filter consulted for every field; nil disables it.
func (c *StrategyEnabled) SetFilter(f filter.Filter) *StrategyEnabled {
	c.filter = f
	return c
}

// SetNaming sets the naming strategy; nil restores identity.
func (c *StrategyEnabled) SetNaming(n naming.Strategy) *StrategyEnabled {
	if n == nil {
		n = naming.Identity{}
	}

	c.naming = n

	return c
}

// Base returns the wrapped converter.
func (c *StrategyEnabled) Base() Converter { return c.base }

// Extract runs the base converter, then per field: drops it unless both its
// field filter and the converter filter accept the qualified name, applies
// its strategy, and renames the key through the naming strategy.
func (c *StrategyEnabled) Extract(object any) (*fields.Mapping, error) {
	raw, err := c.base.Extract(object)
	if err != nil {
		return nil, err
	}

	owner := KeyOf(object).String()
	out := fields.New(raw.Len())

	for name, value := range raw.All() {
		if !c.includes(owner, name) {
			c.logger.Debug("field filtered", zap.String("type", owner), zap.String("field", name))
			continue
		}

		if s, ok := c.strategies[name]; ok {
			value, err = s.Extract(value, object)
			if err != nil {
				c.logger.Debug("strategy failed", zap.String("op", "extract"), zap.String("type", owner),
					zap.String("field", name), zap.Error(err))
				return nil, err
			}
		}

		out.Set(c.naming.Extract(name), value)
	}

	return out, nil
}

// Hydrate maps keys back to field names, applies strategies and hands the
// result to the base converter. Filters do not apply.
func (c *StrategyEnabled) Hydrate(data *fields.Mapping, object any) (any, error) {
	converted := fields.New(data.Len())

	for key, value := range data.All() {
		name := c.naming.Hydrate(key)

		if s, ok := c.strategies[name]; ok {
			var err error

			value, err = s.Hydrate(value, data)
			if err != nil {
				c.logger.Debug("strategy failed", zap.String("op", "hydrate"), zap.String("type", KeyOf(object).String()),
					zap.String("field", name), zap.Error(err))
				return nil, err
			}
		}

		converted.Set(name, value)
	}

	return c.base.Hydrate(converted, object)
}

func (c *StrategyEnabled) includes(owner, name string) bool {
	qualified := filter.Qualify(owner, name)

	if f, ok := c.fieldFilters[name]; ok && !f.Filter(qualified) {
		return false
	}

	return c.filter == nil || c.filter.Filter(qualified)
}
