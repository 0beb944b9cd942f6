package comb

// Choice walks through the alternatives and picks the first one to
// succeed, always trying from the original offset.  Matching is
// ordered, not longest-wins: an earlier alternative that matches a
// shorter prefix still wins.  When every alternative fails, the last
// failure is the one callers see.
func Choice[T any](options ...Parser[T]) Parser[T] {
	if len(options) == 0 {
		panic("Can't choose between zero alternatives")
	}
	return Parser[T]{fn: func(input string, at int) (match[T], error) {
		var err error
		for _, option := range options {
			var m match[T]
			m, err = option.fn(input, at)
			if err == nil {
				return m, nil
			}
		}
		return match[T]{}, err
	}}
}

// Optional is a syntax sugar for an ordered choice in which the
// second alternative matches nothing.  It never fails: when expr
// doesn't match, no input is consumed and no value is produced.
func Optional[T any](expr Parser[T]) Parser[T] {
	return Choice(expr, Parser[T]{fn: func(_ string, at int) (match[T], error) {
		return match[T]{end: at}, nil
	}})
}
