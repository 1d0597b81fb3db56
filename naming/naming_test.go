package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnderscore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		field string
		key   string
	}{
		{"IsActive", "is_active"},
		{"OrderID", "order_id"},
		{"XMLParser", "xml_parser"},
		{"PriceCents", "price_cents"},
		{"SKU", "sku"},
		{"URLPath", "url_path"},
		{"Email", "email"},
	}

	var s Underscore

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.key, s.Extract(tt.field))
			assert.Equal(t, tt.field, s.Hydrate(tt.key))
		})
	}
}

func TestUnderscore_HydrateLenient(t *testing.T) {
	t.Parallel()

	var s Underscore

	assert.Equal(t, "IsActive", s.Hydrate("is__active_"))
	assert.Equal(t, "", s.Hydrate(""))
	assert.Equal(t, "", s.Extract(""))
}

func TestTokenizeIdent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected []string
	}{
		{"OrderID", []string{"order", "id"}},
		{"customerName", []string{"customer", "name"}},
		{"getHTTPResponse", []string{"get", "http", "response"}},
		{"order_item-ID", []string{"order", "item", "id"}},
		{"", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, TokenizeIdent(tt.input), tt.input)
	}
}

func TestMap(t *testing.T) {
	t.Parallel()

	m, err := NewMap(map[string]string{"FullName": "name", "IsActive": "active"})
	require.NoError(t, err)

	assert.Equal(t, "name", m.Extract("FullName"))
	assert.Equal(t, "Email", m.Extract("Email"))
	assert.Equal(t, "FullName", m.Hydrate("name"))
	assert.Equal(t, "email", m.Hydrate("email"))
}

func TestMap_Ambiguous(t *testing.T) {
	t.Parallel()

	_, err := NewMap(map[string]string{"FullName": "name", "DisplayName": "name"})
	require.ErrorIs(t, err, ErrAmbiguousName)

	m, err := NewMap(map[string]string{"FullName": "Email"})
	require.NoError(t, err)
	require.ErrorIs(t, m.Check([]string{"Email", "FullName"}), ErrAmbiguousName)
	require.NoError(t, m.Check([]string{"FullName"}))

	m, err = NewMap(map[string]string{"A": "B", "B": "A"})
	require.NoError(t, err)
	require.NoError(t, m.Check([]string{"A", "B"}), "swapping two names is unambiguous")

	_, err = NewMap(map[string]string{"Same": "Same"})
	require.NoError(t, err)
}
