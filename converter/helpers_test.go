package converter_test

import (
	"github.com/stretchr/testify/mock"

	"hydrator/converter"
	"hydrator/fields"
)

type mockConverter struct {
	mock.Mock
}

func (m *mockConverter) Extract(object any) (*fields.Mapping, error) {
	args := m.Called(object)
	mapping, _ := args.Get(0).(*fields.Mapping)

	return mapping, args.Error(1)
}

func (m *mockConverter) Hydrate(data *fields.Mapping, object any) (any, error) {
	args := m.Called(data, object)
	return args.Get(0), args.Error(1)
}

// countingAccessor records every field access made through it.
type countingAccessor struct {
	inner *converter.StructAccessor
	calls int
}

func (a *countingAccessor) Fields(object any) ([]string, error) {
	a.calls++
	return a.inner.Fields(object)
}

func (a *countingAccessor) Get(object any, name string) (any, error) {
	a.calls++
	return a.inner.Get(object, name)
}

func (a *countingAccessor) Set(object any, name string, value any) error {
	a.calls++
	return a.inner.Set(object, name, value)
}

func pairs(kv ...any) *fields.Mapping {
	m := fields.New(len(kv) / 2)
	for i := 0; i+1 < len(kv); i += 2 {
		m.Set(kv[i].(string), kv[i+1])
	}

	return m
}
