// Package filter decides which fields take part in extraction.
//
// Field identifiers are either a bare field name ("IsActive") or a name
// qualified by its owning type ("store.Customer::IsActive"); every filter in
// this package matches on the part after the first "::".
package filter

import (
	"strings"

	"hydrator/utils"
)

// Separator splits an owning type from a field name in a qualified identifier.
const Separator = "::"

// Filter reports whether a field is included in extraction output.
type Filter interface {
	Filter(name string) bool
}

// Func adapts a plain predicate.
type Func func(name string) bool

func (f Func) Filter(name string) bool { return f(name) }

// ShortName strips the owning type from a qualified identifier.
func ShortName(name string) string {
	return utils.Last(strings.SplitN(name, Separator, 2))
}

// Qualify joins an owner and a field name into a qualified identifier.
func Qualify(owner, name string) string {
	if owner == "" {
		return name
	}

	return owner + Separator + name
}

// MethodMatch matches a single field name exactly.
type MethodMatch struct {
	name    string
	exclude bool
}

// NewMethodMatch returns a filter matching name. With exclude set the match
// is inverted: every field except name is included.
func NewMethodMatch(name string, exclude bool) *MethodMatch {
	return &MethodMatch{name: name, exclude: exclude}
}

func (m *MethodMatch) Filter(name string) bool {
	return (ShortName(name) == m.name) != m.exclude
}

// Prefix includes fields whose name starts with prefix.
type Prefix string

func (p Prefix) Filter(name string) bool {
	return strings.HasPrefix(ShortName(name), string(p))
}

// Not inverts a filter.
func Not(f Filter) Filter {
	return Func(func(name string) bool { return !f.Filter(name) })
}

// Any includes a field when at least one filter does. No filters includes everything.
type Any []Filter

func (a Any) Filter(name string) bool {
	if len(a) == 0 {
		return true
	}

	for _, f := range a {
		if f.Filter(name) {
			return true
		}
	}

	return false
}

// All includes a field only when every filter does.
type All []Filter

func (a All) Filter(name string) bool {
	for _, f := range a {
		if !f.Filter(name) {
			return false
		}
	}

	return true
}
