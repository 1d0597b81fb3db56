package converter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hydrator/converter"
	"hydrator/fields"
	"hydrator/store"
	"hydrator/strategy"
)

func newOrderConverter(t *testing.T) (*converter.Delegating, *converter.MapRegistry) {
	t.Helper()

	registry := converter.NewRegistry()
	delegating := converter.NewDelegating(registry)

	require.NoError(t, converter.Register[store.OrderItem](registry, converter.NewReflection()))
	require.NoError(t, converter.Register[store.Address](registry, converter.NewReflection()))

	items, err := converter.NewCollection(delegating, store.OrderItem{})
	require.NoError(t, err)

	address, err := converter.NewNested(delegating, &store.Address{})
	require.NoError(t, err)

	require.NoError(t, converter.Register[store.Order](registry,
		converter.NewStrategyEnabled(converter.NewReflection()).AddStrategy("Items", items)))
	require.NoError(t, converter.Register[store.Customer](registry,
		converter.NewStrategyEnabled(converter.NewReflection()).AddStrategy("Address", address)))

	return delegating, registry
}

func TestNested_Collection(t *testing.T) {
	t.Parallel()

	c, _ := newOrderConverter(t)

	order := &store.Order{
		ID:     1,
		Status: store.StatusPaid,
		Items: []store.OrderItem{
			{ProductID: 10, Name: "pen", Quantity: 2, UnitPrice: 150},
			{ProductID: 11, Name: "ink", Quantity: 1, UnitPrice: 900},
		},
	}

	m, err := c.Extract(order)
	require.NoError(t, err)

	raw, ok := m.Get("Items")
	require.True(t, ok)

	items, ok := raw.([]any)
	require.True(t, ok)
	require.Len(t, items, 2)

	first, ok := items[0].(*fields.Mapping)
	require.True(t, ok)
	assert.Equal(t, []string{"ProductID", "Name", "Quantity", "UnitPrice"}, first.Keys())

	var out store.Order
	_, err = c.Hydrate(m, &out)
	require.NoError(t, err)
	assert.Equal(t, *order, out)
}

func TestNested_HydrateFromPlainMaps(t *testing.T) {
	t.Parallel()

	c, _ := newOrderConverter(t)

	var out store.Order
	_, err := c.Hydrate(pairs(
		"ID", 3,
		"Items", []any{
			map[string]any{"ProductID": 7, "Quantity": 4},
			nil,
		},
	), &out)
	require.NoError(t, err)

	assert.Equal(t, int64(3), out.ID)
	assert.Equal(t, []store.OrderItem{{ProductID: 7, Quantity: 4}, {}}, out.Items)
}

func TestNested_PointerPrototype(t *testing.T) {
	t.Parallel()

	c, _ := newOrderConverter(t)

	customer := store.Customer{ID: 1, Address: &store.Address{City: "Oslo"}}

	m, err := c.Extract(customer)
	require.NoError(t, err)

	address, _ := m.Get("Address")
	assert.True(t, pairs("Street", "", "City", "Oslo", "Zip", "").Equal(address.(*fields.Mapping)))

	var out store.Customer
	_, err = c.Hydrate(m, &out)
	require.NoError(t, err)
	require.NotNil(t, out.Address)
	assert.Equal(t, "Oslo", out.Address.City)

	m.Set("Address", nil)
	out = store.Customer{}
	_, err = c.Hydrate(m, &out)
	require.NoError(t, err)
	assert.Nil(t, out.Address)
}

func TestNested_Passthrough(t *testing.T) {
	t.Parallel()

	c, _ := newOrderConverter(t)

	nested, err := converter.NewNested(c, store.Address{})
	require.NoError(t, err)

	address := store.Address{City: "Rome"}
	out, err := nested.Hydrate(address, nil)
	require.NoError(t, err)
	assert.Equal(t, address, out)

	out, err = nested.Extract(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestNested_Errors(t *testing.T) {
	t.Parallel()

	c, _ := newOrderConverter(t)

	_, err := converter.NewNested(nil, store.Address{})
	require.ErrorIs(t, err, strategy.ErrInvalidConfiguration)

	_, err = converter.NewNested(c, 42)
	require.ErrorIs(t, err, strategy.ErrInvalidConfiguration)

	nested, err := converter.NewNested(c, store.Address{})
	require.NoError(t, err)

	_, err = nested.Hydrate("Oslo", nil)
	require.ErrorIs(t, err, strategy.ErrInvalidInput)

	collection, err := converter.NewCollection(c, store.Address{})
	require.NoError(t, err)

	_, err = collection.Extract(store.Address{}, nil)
	require.ErrorIs(t, err, strategy.ErrInvalidInput)

	_, err = collection.Hydrate([]any{pairs("City", 1)}, nil)
	require.ErrorIs(t, err, converter.ErrFieldType)

	unregistered, err := converter.NewNested(c, store.Product{})
	require.NoError(t, err)

	_, err = unregistered.Extract(store.Product{}, nil)
	require.ErrorIs(t, err, converter.ErrNoConverterRegistered)
}
