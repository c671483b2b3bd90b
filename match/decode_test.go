package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasEscape(t *testing.T) {
	assert.True(t, hasEscape("a/%2Fb"))
	assert.True(t, hasEscape("%"))
	assert.False(t, hasEscape("a/b"))
	assert.False(t, hasEscape(""))
}

func TestDecodeSegments(t *testing.T) {
	t.Run("decodes every segment in place", func(t *testing.T) {
		segs := []string{"a%20b", "rates%2Fusd", "plain"}
		require.NoError(t, decodeSegments(segs))
		assert.Equal(t, []string{"a b", "rates/usd", "plain"}, segs)
	})

	t.Run("decodes multi-byte utf-8 escapes", func(t *testing.T) {
		segs := []string{"%C3%A9t%C3%A9"}
		require.NoError(t, decodeSegments(segs))
		assert.Equal(t, []string{"été"}, segs)
	})

	t.Run("malformed escape", func(t *testing.T) {
		err := decodeSegments([]string{"ok", "%zz"})

		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "%zz", decodeErr.Segment)
	})

	t.Run("truncated escape", func(t *testing.T) {
		err := decodeSegments([]string{"abc%2"})

		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
	})

	t.Run("invalid utf-8 after decoding", func(t *testing.T) {
		err := decodeSegments([]string{"%ff%fe"})

		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.ErrorIs(t, err, errInvalidUTF8)
	})
}
