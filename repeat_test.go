package comb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroOrMore(t *testing.T) {
	digit := Pattern(`[0-9]`)

	t.Run("collects matches until the first failure", func(t *testing.T) {
		value, end, err := ZeroOrMore(digit).Parse("123abc", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3"}, value)
		assert.Equal(t, 3, end)
	})

	t.Run("succeeds with zero matches", func(t *testing.T) {
		value, end, err := ZeroOrMore(digit).Parse("abc", 0)
		require.NoError(t, err)
		assert.Empty(t, value)
		assert.Equal(t, 0, end)
	})

	t.Run("discards the failing attempt's offset", func(t *testing.T) {
		item := Seq(NotEmpty(Digits()), ",")
		value, end, err := ZeroOrMore(item).Parse("1,2,3x", 0)
		require.NoError(t, err)
		assert.Equal(t, [][]any{{"1"}, {"2"}}, value)
		assert.Equal(t, 4, end)
	})

	t.Run("omits suppressed values", func(t *testing.T) {
		value, end, err := ZeroOrMore(Ignore(Literal("a"))).Parse("aaab", 0)
		require.NoError(t, err)
		assert.Empty(t, value)
		assert.Equal(t, 3, end)
	})
}

func TestAtMost(t *testing.T) {
	t.Run("stops after max successful matches", func(t *testing.T) {
		value, end, err := AtMost(Pattern(`[0-9]`), 2).Parse("123", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, value)
		assert.Equal(t, 2, end)
	})

	t.Run("bounds an expression that never consumes", func(t *testing.T) {
		value, end, err := AtMost(Digits(), 3).Parse("abc", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"", "", ""}, value)
		assert.Equal(t, 0, end)
	})

	t.Run("rejects a bound below one", func(t *testing.T) {
		assert.PanicsWithValue(t, "Can't repeat at most 0 times", func() { AtMost(Digits(), 0) })
	})
}

func TestOneOrMore(t *testing.T) {
	digit := Pattern(`[0-9]`)

	t.Run("requires the first match", func(t *testing.T) {
		_, _, err := OneOrMore(digit).Parse("abc", 0)
		require.Error(t, err)
		assert.Equal(t, "Expected pattern `[0-9]` @ 0", err.Error())
	})

	t.Run("then behaves like ZeroOrMore", func(t *testing.T) {
		value, end, err := OneOrMore(digit).Parse("12ab", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, value)
		assert.Equal(t, 2, end)
	})
}
