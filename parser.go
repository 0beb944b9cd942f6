package comb

// Parser matches a prefix of an input string starting at a byte
// offset, producing a typed value and the offset right past the
// consumed text.  Parsers are immutable once constructed and keep no
// state between runs, so the same value can be shared freely.
type Parser[T any] struct {
	fn parseFn[T]
}

// parseFn is the signature shared by every parser in this package.
// It unfortunately can't describe a heterogeneous sequence because
// of Go's generics limitations, so sequence plans erase their
// component types through Parser[any] instead.
type parseFn[T any] func(input string, at int) (match[T], error)

// match is one successful parse step: the produced value, the offset
// right past the consumed text, and whether the value counts as
// output.  Suppressed matches, from Ignore, Check, Empty, and
// unmatched Optional, still advance a sequence but are omitted from
// its collected values.
type match[T any] struct {
	value T
	end   int
	keep  bool
}

// Parse runs the parser against input starting at offset at.  On
// success it returns the produced value and the offset right past
// the consumed text.  On failure it returns a *ParseError and leaves
// the offset at the starting position.
func (p Parser[T]) Parse(input string, at int) (T, int, error) {
	m, err := p.fn(input, at)
	if err != nil {
		var zero T
		return zero, at, err
	}
	return m.value, m.end, nil
}

// Expression is satisfied by every Parser regardless of its value
// type.  Sequence plans accept Expressions alongside literal string
// fragments and *regexp.Regexp patterns.
type Expression interface {
	parser() Parser[any]
}

func (p Parser[T]) parser() Parser[any] { return erase(p) }

// erase drops a parser's value type so parsers of different types
// can run side by side within a sequence plan.
func erase[T any](p Parser[T]) Parser[any] {
	return Parser[any]{fn: func(input string, at int) (match[any], error) {
		m, err := p.fn(input, at)
		if err != nil {
			return match[any]{}, err
		}
		return match[any]{value: m.value, end: m.end, keep: m.keep}, nil
	}}
}
