package schema

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"hydrator/converter"
	"hydrator/store"
)

func centsToString(cents int64) string {
	return strconv.FormatInt(cents, 10)
}

func stringToCents(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func newStoreCatalog(t *testing.T) *Catalog {
	t.Helper()

	c := NewCatalog(converter.DefaultTag)
	require.NoError(t, c.AddType(store.Customer{}, &store.Order{}, store.OrderItem{}, store.Address{}, store.Product{}))
	require.NoError(t, c.AddFunc("CentsToString", centsToString))
	require.NoError(t, c.AddFunc("StringToCents", stringToCents))

	return c
}

func mustParse(t *testing.T, data string) *File {
	t.Helper()

	f, err := Parse([]byte(data))
	require.NoError(t, err)

	return f
}
