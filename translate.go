package comb

import "fmt"

// Translate resolves expr against the whole input: the parser runs
// from offset zero and must consume every character.  Anything short
// of that fails with a length mismatch reporting how much was
// actually consumed.  Individual combinators never require end of
// input on their own, the requirement lives here.
func Translate[T any](input string, expr Parser[T]) (T, int, error) {
	m, err := expr.fn(input, 0)
	if err != nil {
		var zero T
		return zero, 0, err
	}
	if m.end != len(input) {
		var zero T
		msg := fmt.Sprintf("Matched %d of %d characters", m.end, len(input))
		return zero, 0, newError(LengthMismatch, "", msg, m.end)
	}
	return m.value, m.end, nil
}
