package converter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hydrator/converter"
	"hydrator/fields"
	"hydrator/store"
)

func TestReflection_Extract(t *testing.T) {
	t.Parallel()

	address := &store.Address{City: "Oslo"}
	customer := store.Customer{
		ID:       3,
		Email:    "ada@example.com",
		FullName: "Ada",
		Address:  address,
		IsActive: true,
	}.WithNote("vip")

	m, err := converter.NewReflection().Extract(&customer)
	require.NoError(t, err)

	assert.Equal(t, []string{"ID", "Email", "FullName", "PasswordHash", "Address", "IsActive", "Newsletter"}, m.Keys())

	v, _ := m.Get("Address")
	assert.Same(t, address, v)

	v, _ = m.Get("IsActive")
	assert.Equal(t, true, v)
}

func TestReflection_TagsAndEmbedding(t *testing.T) {
	t.Parallel()

	coupon := store.Coupon{
		Audited: store.Audited{CreatedBy: "ops", Revision: 2},
		Code:    "SPRING",
		Percent: 15,
		Secret:  "hidden",
	}

	m, err := converter.NewReflection().Extract(coupon)
	require.NoError(t, err)
	assert.Equal(t, []string{"CreatedBy", "Revision", "Code", "Percent"}, m.Keys())

	var out store.Coupon
	_, err = converter.NewReflection().Hydrate(pairs("Revision", 3, "Secret", "x", "Code", "FALL"), &out)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Revision)
	assert.Equal(t, "FALL", out.Code)
	assert.Empty(t, out.Secret, "hidden fields are never written")
}

func TestReflection_CustomTag(t *testing.T) {
	t.Parallel()

	type row struct {
		Name  string `db:"name"`
		Count int    `db:"-"`
	}

	m, err := converter.NewReflection(converter.WithTag("db")).Extract(row{Name: "a", Count: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, m.Keys())
}

func TestReflection_Hydrate(t *testing.T) {
	t.Parallel()

	target := &store.Order{Gift: true}

	got, err := converter.NewReflection().Hydrate(pairs(
		"ID", 10, // int into int64
		"Status", "PAID", // string into OrderStatus
		"TotalCents", uint8(99),
		"Gift", nil, // nil resets
		"Unknown", "ignored",
	), target)
	require.NoError(t, err)
	assert.Same(t, target, got)

	assert.Equal(t, int64(10), target.ID)
	assert.Equal(t, store.StatusPaid, target.Status)
	assert.Equal(t, int64(99), target.TotalCents)
	assert.False(t, target.Gift)
}

func TestReflection_HydrateErrors(t *testing.T) {
	t.Parallel()

	r := converter.NewReflection()

	tests := []struct {
		name    string
		object  any
		data    []any
		wantErr error
	}{
		{name: "struct value", object: store.Product{}, data: []any{"id", 1}, wantErr: converter.ErrInvalidObject},
		{name: "nil pointer", object: (*store.Product)(nil), data: []any{"id", 1}, wantErr: converter.ErrInvalidObject},
		{name: "not a struct", object: new(int), data: []any{"id", 1}, wantErr: converter.ErrInvalidObject},
		{name: "string into int", object: &store.Product{}, data: []any{"id", "1"}, wantErr: converter.ErrFieldType},
		{name: "int into string", object: &store.Product{}, data: []any{"name", 65}, wantErr: converter.ErrFieldType},
		{name: "overflow", object: &store.Coupon{}, data: []any{"Percent", 300}, wantErr: converter.ErrFieldType},
		{name: "negative into unsigned", object: &store.Coupon{}, data: []any{"Percent", -1}, wantErr: converter.ErrFieldType},
		{name: "float into int", object: &store.Product{}, data: []any{"inventory_count", 1.5}, wantErr: converter.ErrFieldType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := r.Hydrate(pairs(tt.data...), tt.object)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReflection_FieldTypeErrorDetails(t *testing.T) {
	t.Parallel()

	_, err := converter.NewReflection().Hydrate(pairs("price_cents", "free"), &store.Product{})

	var typeErr *converter.FieldTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "price_cents", typeErr.Field)
	assert.Equal(t, "int64", typeErr.Expected)
	assert.Equal(t, "string", typeErr.Got)
	assert.Equal(t, "store.Product", typeErr.Type.String())
}

func TestMappingConverter(t *testing.T) {
	t.Parallel()

	var c converter.MappingConverter

	source := pairs("a", 1, "b", 2)

	m, err := c.Extract(source)
	require.NoError(t, err)
	assert.True(t, source.Equal(m))
	assert.NotSame(t, source, m)

	target := pairs("b", 0, "z", 9)
	got, err := c.Hydrate(source, target)
	require.NoError(t, err)
	assert.Same(t, target, got)
	assert.Equal(t, []string{"b", "z", "a"}, target.Keys())

	fresh, err := c.Hydrate(source, nil)
	require.NoError(t, err)
	assert.True(t, source.Equal(fresh.(*fields.Mapping)))

	_, err = c.Extract(store.Product{})
	require.ErrorIs(t, err, converter.ErrInvalidObject)
}
