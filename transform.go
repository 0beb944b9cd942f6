package comb

import "errors"

// Map runs expr and, on success, replaces its value with fn applied
// to it.  The offset is untouched and failures propagate unchanged.
// A mapped parser always produces a value, even when expr was
// suppressed.
func Map[T, U any](expr Parser[T], fn func(T) U) Parser[U] {
	return Parser[U]{fn: func(input string, at int) (match[U], error) {
		m, err := expr.fn(input, at)
		if err != nil {
			return match[U]{}, err
		}
		return match[U]{value: fn(m.value), end: m.end, keep: true}, nil
	}}
}

// Ignore runs expr and throws its value away while keeping the
// offset, so a sequence can consume a separator without collecting
// it.
func Ignore[T any](expr Parser[T]) Parser[T] {
	return Parser[T]{fn: func(input string, at int) (match[T], error) {
		m, err := expr.fn(input, at)
		if err != nil {
			return match[T]{}, err
		}
		return match[T]{end: m.end}, nil
	}}
}

// Check runs expr as a lookahead: on success the offset snaps back
// to the starting position and the value is dropped.  Unlike Ignore,
// Check consumes nothing.
func Check[T any](expr Parser[T]) Parser[T] {
	return Parser[T]{fn: func(input string, at int) (match[T], error) {
		if _, err := expr.fn(input, at); err != nil {
			return match[T]{}, err
		}
		return match[T]{end: at}, nil
	}}
}

// Not is the negative lookahead: it succeeds, consuming nothing and
// producing no value, exactly when expr fails at the offset.
func Not[T any](expr Parser[T]) Parser[any] {
	return Parser[any]{fn: func(input string, at int) (match[any], error) {
		if _, err := expr.fn(input, at); err == nil {
			return match[any]{}, newError(PredicateFailed, "!", "Unexpected match", at)
		}
		return match[any]{end: at}, nil
	}}
}

// NotEmpty turns a zero length match into a failure.  It guards
// matchers like Digits that are allowed to match nothing when the
// caller requires at least one character.
func NotEmpty(expr Parser[string]) Parser[string] {
	return Parser[string]{fn: func(input string, at int) (match[string], error) {
		m, err := expr.fn(input, at)
		if err != nil {
			return match[string]{}, err
		}
		if m.value == "" {
			return match[string]{}, newError(EmptyMatchRejected, "", "Empty match", at)
		}
		return m, nil
	}}
}

// Named labels a grammar rule.  Failures bubbling out of expr carry
// the innermost rule name, which shows up as a prefix in the error
// message.
func Named[T any](name string, expr Parser[T]) Parser[T] {
	return Parser[T]{fn: func(input string, at int) (match[T], error) {
		m, err := expr.fn(input, at)
		if err == nil {
			return m, nil
		}
		var perr *ParseError
		if errors.As(err, &perr) && perr.Rule == "" {
			named := *perr
			named.Rule = name
			return match[T]{}, &named
		}
		return match[T]{}, err
	}}
}
