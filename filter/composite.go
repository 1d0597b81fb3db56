package filter

import "slices"

// Composite combines named filters in two groups: a field is included when
// any OR filter accepts it and every AND filter accepts it. An empty group
// does not restrict.
type Composite struct {
	or    map[string]Filter
	and   map[string]Filter
	order []string
}

// NewComposite creates an empty composite that includes everything.
func NewComposite() *Composite {
	return &Composite{
		or:  make(map[string]Filter),
		and: make(map[string]Filter),
	}
}

// AddOr registers f under name in the OR group, replacing any filter with that name.
func (c *Composite) AddOr(name string, f Filter) {
	c.Remove(name)
	c.or[name] = f
	c.order = append(c.order, name)
}

// AddAnd registers f under name in the AND group, replacing any filter with that name.
func (c *Composite) AddAnd(name string, f Filter) {
	c.Remove(name)
	c.and[name] = f
	c.order = append(c.order, name)
}

// Has returns true if a filter is registered under name in either group.
func (c *Composite) Has(name string) bool {
	_, inOr := c.or[name]
	_, inAnd := c.and[name]

	return inOr || inAnd
}

// Remove drops the filter registered under name.
func (c *Composite) Remove(name string) bool {
	if !c.Has(name) {
		return false
	}

	delete(c.or, name)
	delete(c.and, name)
	c.order = slices.DeleteFunc(c.order, func(n string) bool { return n == name })

	return true
}

// Names returns the registered filter names in registration order.
func (c *Composite) Names() []string {
	return slices.Clone(c.order)
}

func (c *Composite) Filter(name string) bool {
	matchedOr := len(c.or) == 0

	for _, n := range c.order {
		if f, ok := c.or[n]; ok && f.Filter(name) {
			matchedOr = true
			break
		}
	}

	if !matchedOr {
		return false
	}

	for _, n := range c.order {
		if f, ok := c.and[n]; ok && !f.Filter(name) {
			return false
		}
	}

	return true
}
