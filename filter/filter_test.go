package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hydrator/filter"
)

func TestMethodMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		candidate string
		expected  bool
	}{
		{"foo", true},
		{"bar", false},
		{"class::foo", true},
		{"class::bar", false},
		{"a::foo::bar", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.candidate, func(t *testing.T) {
			t.Parallel()

			included := filter.NewMethodMatch("foo", false)
			assert.Equal(t, tt.expected, included.Filter(tt.candidate))

			excluded := filter.NewMethodMatch("foo", true)
			assert.Equal(t, !tt.expected, excluded.Filter(tt.candidate))
		})
	}
}

func TestShortNameAndQualify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "IsActive", filter.ShortName("store.Customer::IsActive"))
	assert.Equal(t, "IsActive", filter.ShortName("IsActive"))
	assert.Equal(t, "b::c", filter.ShortName("a::b::c"))

	assert.Equal(t, "store.Customer::IsActive", filter.Qualify("store.Customer", "IsActive"))
	assert.Equal(t, "IsActive", filter.Qualify("", "IsActive"))
}

func TestPrefixAndCombinators(t *testing.T) {
	t.Parallel()

	isFlag := filter.Prefix("Is")
	assert.True(t, isFlag.Filter("IsActive"))
	assert.True(t, isFlag.Filter("store.Customer::IsActive"))
	assert.False(t, isFlag.Filter("Email"))

	assert.False(t, filter.Not(isFlag).Filter("IsActive"))
	assert.True(t, filter.Not(isFlag).Filter("Email"))

	either := filter.Any{isFlag, filter.NewMethodMatch("Email", false)}
	assert.True(t, either.Filter("Email"))
	assert.True(t, either.Filter("IsActive"))
	assert.False(t, either.Filter("FullName"))
	assert.True(t, filter.Any{}.Filter("FullName"))

	all := filter.All{isFlag, filter.NewMethodMatch("IsDeleted", true)}
	assert.True(t, all.Filter("IsActive"))
	assert.False(t, all.Filter("IsDeleted"))
	assert.True(t, filter.All{}.Filter("anything"))

	fn := filter.Func(func(name string) bool { return len(name) > 3 })
	assert.True(t, fn.Filter("Email"))
	assert.False(t, fn.Filter("ID"))
}

func TestComposite(t *testing.T) {
	t.Parallel()

	c := filter.NewComposite()
	assert.True(t, c.Filter("anything"), "empty composite includes everything")

	c.AddOr("flags", filter.Prefix("Is"))
	c.AddOr("email", filter.NewMethodMatch("Email", false))
	c.AddAnd("no-deleted", filter.NewMethodMatch("IsDeleted", true))

	assert.True(t, c.Filter("IsActive"))
	assert.True(t, c.Filter("Email"))
	assert.False(t, c.Filter("IsDeleted"))
	assert.False(t, c.Filter("FullName"))
	assert.Equal(t, []string{"flags", "email", "no-deleted"}, c.Names())

	assert.True(t, c.Remove("email"))
	assert.False(t, c.Remove("email"))
	assert.False(t, c.Filter("Email"))

	c.AddAnd("flags", filter.Prefix("Has"))
	assert.True(t, c.Has("flags"))
	assert.True(t, c.Filter("HasOrders"), "flags moved from OR to AND group")
	assert.False(t, c.Filter("IsActive"))
	assert.Equal(t, []string{"no-deleted", "flags"}, c.Names())
}
