package comb

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	t.Run("matches whole inputs", func(t *testing.T) {
		for _, input := range []string{"", "a", "hello world", "héllo wörld"} {
			value, offset, err := Translate(input, Literal(input))
			require.NoError(t, err)
			assert.Equal(t, input, value)
			assert.Equal(t, len(input), offset)
		}
	})

	t.Run("reports the offending offset on failure", func(t *testing.T) {
		_, _, err := Translate("abc", Literal("abd"))
		require.Error(t, err)
		assert.Equal(t, "Missing `abd` @ 2", err.Error())

		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, LiteralMismatch, perr.Kind)
		assert.Equal(t, 2, perr.Offset)
	})

	t.Run("requires every character to be consumed", func(t *testing.T) {
		_, _, err := Translate("abcx", Literal("abc"))
		require.Error(t, err)
		assert.Equal(t, "Matched 3 of 4 characters @ 3", err.Error())

		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, LengthMismatch, perr.Kind)
		assert.Equal(t, 3, perr.Offset)
	})

	t.Run("resolves a dotted quad", func(t *testing.T) {
		quad := Seq(Digits(), ".", Digits(), ".", Digits(), ".", Digits())
		value, offset, err := Translate("192.168.1.1", quad)
		require.NoError(t, err)
		assert.Equal(t, []any{"192", "168", "1", "1"}, value)
		assert.Equal(t, 11, offset)
	})

	t.Run("yields the same outcome on every run", func(t *testing.T) {
		quad := Seq(Digits(), ".", Digits(), ".", Digits(), ".", Digits())
		for i := 0; i < 3; i++ {
			value, offset, err := Translate("10.0.0.1", quad)
			require.NoError(t, err)
			assert.Equal(t, []any{"10", "0", "0", "1"}, value)
			assert.Equal(t, 8, offset)

			_, _, err = Translate("10.0.0x", quad)
			require.Error(t, err)
			assert.Equal(t, "Missing `.` @ 6", err.Error())
		}
	})

	t.Run("parsers are safely shared between goroutines", func(t *testing.T) {
		quad := Seq(Digits(), ".", Digits(), ".", Digits(), ".", Digits())
		results := make([]string, 8)
		var wg sync.WaitGroup
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				value, _, err := Translate("10.0.0.1", quad)
				if err == nil {
					results[i] = fmt.Sprint(value)
				}
			}(i)
		}
		wg.Wait()
		for _, result := range results {
			assert.Equal(t, "[10 0 0 1]", result)
		}
	})
}
