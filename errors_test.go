package comb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorRendering(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{
			"without a rule",
			&ParseError{Kind: LiteralMismatch, Message: "Missing `x`", Offset: 3},
			"Missing `x` @ 3",
		},
		{
			"with a rule",
			&ParseError{Kind: EmptyMatchRejected, Message: "Empty match", Rule: "Octet", Offset: 7},
			"Octet: Empty match @ 7",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestFailKindString(t *testing.T) {
	assert.Equal(t, "literal mismatch", LiteralMismatch.String())
	assert.Equal(t, "pattern mismatch", PatternMismatch.String())
	assert.Equal(t, "unexpected trailing input", UnexpectedTrailingInput.String())
	assert.Equal(t, "empty match rejected", EmptyMatchRejected.String())
	assert.Equal(t, "existence check failed", ExistenceCheckFailed.String())
	assert.Equal(t, "length mismatch", LengthMismatch.String())
	assert.Equal(t, "predicate failed", PredicateFailed.String())
}
