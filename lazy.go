package comb

// Lazy defers a grammar rule to parse time: resolve runs on every
// invocation, never cached, and the parser it hands back takes over
// from the current offset.  This indirection is what lets a rule
// refer to itself, or to a sibling that hasn't been wired up yet.
func Lazy[T any](resolve func() Parser[T]) Parser[T] {
	return Parser[T]{fn: func(input string, at int) (match[T], error) {
		return resolve().fn(input, at)
	}}
}
