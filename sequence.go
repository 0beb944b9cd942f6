package comb

import (
	"fmt"
	"regexp"
	"strings"
)

// Seq returns a parser that runs a plan of components in order, each
// one starting where the previous one stopped.  Plan items can be
// literal string fragments, *regexp.Regexp patterns, or parsers.
// Literal fragments are matched and consumed but left out of the
// result; adjacent fragments are concatenated and empty ones elided
// when the plan is built.  Any other item type panics.
//
// The first failing component aborts the whole sequence and its
// failure propagates unchanged, so no partial value ever escapes.
// On success the value is the component values in encounter order,
// with suppressed entries omitted.
func Seq(items ...any) Parser[[]any] {
	plan := resolvePlan(items)
	return Parser[[]any]{fn: func(input string, at int) (match[[]any], error) {
		var values []any
		end := at
		for _, step := range plan {
			m, err := step.fn(input, end)
			if err != nil {
				return match[[]any]{}, err
			}
			end = m.end
			if m.keep {
				values = append(values, m.value)
			}
		}
		return match[[]any]{value: values, end: end, keep: true}, nil
	}}
}

// resolvePlan turns the heterogeneous argument list of Seq into
// runnable parsers.
func resolvePlan(items []any) []Parser[any] {
	var (
		plan []Parser[any]
		lit  strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			plan = append(plan, erase(Ignore(Literal(lit.String()))))
			lit.Reset()
		}
	}
	for _, item := range items {
		switch v := item.(type) {
		case string:
			lit.WriteString(v)
		case *regexp.Regexp:
			flush()
			plan = append(plan, erase(Regexp(v)))
		case Expression:
			flush()
			plan = append(plan, v.parser())
		default:
			panic(fmt.Sprintf("Can't use `%T` in a sequence plan", item))
		}
	}
	flush()
	return plan
}
