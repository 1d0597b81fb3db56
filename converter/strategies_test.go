package converter_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hydrator/converter"
	"hydrator/fields"
	"hydrator/filter"
	"hydrator/naming"
	"hydrator/store"
	"hydrator/strategy"
)

func newCustomerConverter() *converter.StrategyEnabled {
	return converter.NewStrategyEnabled(converter.NewReflection()).
		AddStrategy("IsActive", strategy.MustBoolean("yes", "no")).
		AddStrategy("Newsletter", strategy.MustBoolean(1, 0)).
		AddFieldFilter("PasswordHash", filter.NewMethodMatch("PasswordHash", true))
}

func TestStrategyEnabled_Extract(t *testing.T) {
	t.Parallel()

	c := newCustomerConverter()

	m, err := c.Extract(&store.Customer{ID: 1, Email: "a@b.c", PasswordHash: "secret", IsActive: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"ID", "Email", "FullName", "Address", "IsActive", "Newsletter"}, m.Keys())
	assert.Equal(t, map[string]any{
		"ID":         int64(1),
		"Email":      "a@b.c",
		"FullName":   "",
		"Address":    (*store.Address)(nil),
		"IsActive":   "yes",
		"Newsletter": 0,
	}, m.ToMap())
}

func TestStrategyEnabled_HydrateIgnoresFilters(t *testing.T) {
	t.Parallel()

	c := newCustomerConverter()

	var customer store.Customer

	_, err := c.Hydrate(pairs(
		"IsActive", "yes",
		"Newsletter", 1,
		"PasswordHash", "imported",
	), &customer)
	require.NoError(t, err)

	assert.True(t, customer.IsActive)
	assert.True(t, customer.Newsletter)
	assert.Equal(t, "imported", customer.PasswordHash)
}

func TestStrategyEnabled_RoundTrip(t *testing.T) {
	t.Parallel()

	c := newCustomerConverter().RemoveFieldFilter("PasswordHash")

	in := store.Customer{ID: 5, Email: "x@y.z", FullName: "X", PasswordHash: "h", Newsletter: true}

	m, err := c.Extract(in)
	require.NoError(t, err)

	var out store.Customer
	_, err = c.Hydrate(m, &out)
	require.NoError(t, err)

	assert.Equal(t, in, out)
}

type flag bool

type subscription struct {
	Plan   string
	Active flag
}

func TestStrategyEnabled_NamedBoolRoundTrip(t *testing.T) {
	t.Parallel()

	c := converter.NewStrategyEnabled(converter.NewReflection()).
		AddStrategy("Active", strategy.MustBoolean("Y", "N"))

	var out subscription
	_, err := c.Hydrate(pairs("Plan", "pro", "Active", "Y"), &out)
	require.NoError(t, err)
	assert.Equal(t, subscription{Plan: "pro", Active: true}, out)

	m, err := c.Extract(out)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"Plan": "pro", "Active": "Y"}, m.ToMap())
}

func TestStrategyEnabled_ErrorsPropagateUnchanged(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	failing := strategy.Func{
		ExtractFunc: func(any, any) (any, error) { return nil, boom },
		HydrateFunc: func(any, *fields.Mapping) (any, error) { return nil, boom },
	}

	c := converter.NewStrategyEnabled(converter.NewReflection()).AddStrategy("Email", failing)

	_, err := c.Extract(store.Customer{Email: "a"})
	assert.Same(t, boom, err)

	_, err = c.Hydrate(pairs("Email", "a"), &store.Customer{})
	assert.Same(t, boom, err)

	c = newCustomerConverter()
	_, err = c.Hydrate(pairs("IsActive", "maybe"), &store.Customer{})
	require.ErrorIs(t, err, strategy.ErrUnrecognizedValue)
}

func TestStrategyEnabled_StrategyArguments(t *testing.T) {
	t.Parallel()

	var seenObject any
	var seenData *fields.Mapping

	spy := strategy.Func{
		ExtractFunc: func(v any, object any) (any, error) {
			seenObject = object
			return v, nil
		},
		HydrateFunc: func(v any, data *fields.Mapping) (any, error) {
			seenData = data
			return v, nil
		},
	}

	c := converter.NewStrategyEnabled(converter.NewReflection()).AddStrategy("Email", spy)

	customer := &store.Customer{Email: "a"}
	_, err := c.Extract(customer)
	require.NoError(t, err)
	assert.Same(t, customer, seenObject)

	data := pairs("Email", "b")
	_, err = c.Hydrate(data, &store.Customer{})
	require.NoError(t, err)
	assert.Same(t, data, seenData)
}

func TestStrategyEnabled_QualifiedFilter(t *testing.T) {
	t.Parallel()

	var seen []string

	c := converter.NewStrategyEnabled(converter.NewReflection()).
		SetFilter(filter.Func(func(name string) bool {
			seen = append(seen, name)
			return filter.Prefix("Is").Filter(name) || filter.NewMethodMatch("Email", false).Filter(name)
		}))

	m, err := c.Extract(store.Customer{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Email", "IsActive"}, m.Keys())
	assert.Contains(t, seen, "store.Customer::PasswordHash")
}

func TestStrategyEnabled_Naming(t *testing.T) {
	t.Parallel()

	c := newCustomerConverter().SetNaming(naming.Underscore{})

	m, err := c.Extract(store.Customer{ID: 9, FullName: "Ada", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "email", "full_name", "address", "is_active", "newsletter"}, m.Keys())

	active, _ := m.Get("is_active")
	assert.Equal(t, "yes", active)

	var out store.Customer
	_, err = c.Hydrate(pairs("id", 9, "full_name", "Ada", "is_active", "yes"), &out)
	require.NoError(t, err)
	assert.Equal(t, store.Customer{ID: 9, FullName: "Ada", IsActive: true}, out)

	c.SetNaming(nil)
	m, err = c.Extract(store.Customer{})
	require.NoError(t, err)
	assert.Equal(t, "ID", m.Keys()[0])
}

func TestStrategyEnabled_Registrations(t *testing.T) {
	t.Parallel()

	c := newCustomerConverter()

	assert.True(t, c.HasStrategy("IsActive"))
	assert.Equal(t, []string{"IsActive", "Newsletter"}, c.StrategyNames())

	s, ok := c.Strategy("Newsletter")
	require.True(t, ok)
	assert.IsType(t, &strategy.Boolean{}, s)

	c.RemoveStrategy("IsActive")
	assert.False(t, c.HasStrategy("IsActive"))

	m, err := c.Extract(store.Customer{IsActive: true})
	require.NoError(t, err)

	active, _ := m.Get("IsActive")
	assert.Equal(t, true, active, "fields without a strategy are extracted as is")
	assert.IsType(t, &converter.Reflection{}, c.Base())
}

func TestStrategyEnabled_BaseErrors(t *testing.T) {
	t.Parallel()

	stub := &mockConverter{}
	boom := errors.New("base failed")
	stub.On("Extract", "object").Return(nil, boom)

	_, err := converter.NewStrategyEnabled(stub).Extract("object")
	assert.Same(t, boom, err)
}
