// Package comb is a parser combinator runtime.  Grammars are
// assembled bottom-up by composing small parsers into bigger ones:
// primitives match literal text, regular expression patterns, or
// digit runs, and combinators glue them together with sequencing,
// ordered choice, repetition, and lazy recursion.  There is no
// separate grammar compilation step; composing parsers is the whole
// program.
//
// A Parser is a pure value.  Running one never mutates shared state,
// so a single parser can be reused across inputs and called from
// concurrent goroutines.  Failures are ordinary error values of type
// *ParseError carrying a kind and a byte offset; Choice is the only
// combinator that recovers from one, by retrying the next
// alternative at the original offset.
//
// Repetition runs as a flat loop, but recursive rules still descend
// the call stack once per nesting level, so a deeply nested input
// against a recursive grammar can exhaust it.  Treat grammar depth
// as a resource limit when parsing untrusted input.
//
// Translate runs a parser over a whole input and fails unless every
// character was consumed.  Parse, the single step form, matches a
// prefix and reports where it stopped.
package comb
