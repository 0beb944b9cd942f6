package comb

import "fmt"

// ZeroOrMore applies expr over and over until it fails, collecting
// the values of the successful applications.  The failing attempt is
// discarded entirely, leaving the offset at the last success, so the
// combinator itself never fails.
//
// An expr that can succeed without consuming anything will spin here
// forever.  Bound such grammars with AtMost or guard the inner
// expression with NotEmpty.
func ZeroOrMore[T any](expr Parser[T]) Parser[[]T] {
	return repeat(expr, 0)
}

// AtMost is ZeroOrMore with an upper bound: the loop also stops
// after max successful applications.  A max below one panics.
func AtMost[T any](expr Parser[T], max int) Parser[[]T] {
	if max < 1 {
		panic(fmt.Sprintf("Can't repeat at most %d times", max))
	}
	return repeat(expr, max)
}

// OneOrMore matches expr once and then hands the rest of the input
// over to ZeroOrMore.
func OneOrMore[T any](expr Parser[T]) Parser[[]T] {
	rest := ZeroOrMore(expr)
	return Parser[[]T]{fn: func(input string, at int) (match[[]T], error) {
		head, err := expr.fn(input, at)
		if err != nil {
			return match[[]T]{}, err
		}
		tail, _ := rest.fn(input, head.end)
		values := tail.value
		if head.keep {
			values = append([]T{head.value}, tail.value...)
		}
		return match[[]T]{value: values, end: tail.end, keep: true}, nil
	}}
}

// repeat runs the loop shared by ZeroOrMore and AtMost, where a max
// of zero means unbounded.  The loop is flat on purpose: repetition
// must not grow the call stack along with the input.
func repeat[T any](expr Parser[T], max int) Parser[[]T] {
	return Parser[[]T]{fn: func(input string, at int) (match[[]T], error) {
		var values []T
		end, count := at, 0
		for max == 0 || count < max {
			m, err := expr.fn(input, end)
			if err != nil {
				break
			}
			end = m.end
			count++
			if m.keep {
				values = append(values, m.value)
			}
		}
		return match[[]T]{value: values, end: end, keep: true}, nil
	}}
}
