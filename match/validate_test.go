package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidator(t *testing.T) {
	accepted := []string{
		"hello",
		"Hello World",
		"file-name_2024.txt",
		"héllo",
		"42",
		"",
	}
	for _, value := range accepted {
		assert.True(t, DefaultValidator(value), "should accept %q", value)
	}

	rejected := []string{
		"hello!",
		"a/b",
		"q?x=1",
		"50%",
		"a+b",
		"semi;colon",
	}
	for _, value := range rejected {
		assert.False(t, DefaultValidator(value), "should reject %q", value)
	}
}

func TestBuiltinValidator(t *testing.T) {
	t.Run("unknown name", func(t *testing.T) {
		_, ok := BuiltinValidator("nope")
		assert.False(t, ok)
	})

	cases := []struct {
		name     string
		accepted []string
		rejected []string
	}{
		{
			name:     "int",
			accepted: []string{"0", "42", "00123"},
			rejected: []string{"", "-1", "3.14", "abc"},
		},
		{
			name:     "float",
			accepted: []string{"3.14", "42", ".5"},
			rejected: []string{"", "1.2.3", "abc"},
		},
		{
			name:     "slug",
			accepted: []string{"my-post-title", "post42"},
			rejected: []string{"", "-leading", "trailing-", "under_score"},
		},
		{
			name:     "alpha",
			accepted: []string{"hello", "ABC"},
			rejected: []string{"", "abc123", "a-b"},
		},
		{
			name:     "alphanum",
			accepted: []string{"abc123", "42"},
			rejected: []string{"", "a-b", "a.b"},
		},
		{
			name:     "date",
			accepted: []string{"2024-01-15"},
			rejected: []string{"", "2024-1-5", "15-01-2024x"},
		},
		{
			name:     "hex",
			accepted: []string{"deadBEEF", "0042"},
			rejected: []string{"", "0x42", "xyz"},
		},
		{
			name:     "uuid",
			accepted: []string{"550e8400-e29b-41d4-a716-446655440000"},
			rejected: []string{"", "550e8400", "not-a-uuid-at-all-nope-nah"},
		},
		{
			name:     "domain",
			accepted: []string{"example.com", "sub.example.co.uk"},
			rejected: []string{"", "-bad-.com", "exa mple.com"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := BuiltinValidator(tc.name)
			require.True(t, ok)

			for _, value := range tc.accepted {
				assert.True(t, v(value), "should accept %q", value)
			}
			for _, value := range tc.rejected {
				assert.False(t, v(value), "should reject %q", value)
			}
		})
	}
}
