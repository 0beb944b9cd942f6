package comb

import (
	"fmt"
	"regexp"
	"strings"
)

// Until restricts what expr can see.  The input is truncated right
// before the first occurrence of boundary at or after the current
// offset, and expr runs against that window from the original
// position.  The boundary is searched for, not anchored, and when it
// never occurs the window reaches the end of the input.  Offsets in
// the result stay relative to the original input, truncation only
// hides the tail.
//
// The boundary is a literal string or a *regexp.Regexp; anything
// else panics.
func Until[T any](boundary any, expr Parser[T]) Parser[T] {
	locate := boundaryLocator(boundary)
	return Parser[T]{fn: func(input string, at int) (match[T], error) {
		return expr.fn(input[:locate(input, at)], at)
	}}
}

func boundaryLocator(boundary any) func(string, int) int {
	switch b := boundary.(type) {
	case string:
		return func(input string, at int) int {
			if i := strings.Index(input[at:], b); i >= 0 {
				return at + i
			}
			return len(input)
		}
	case *regexp.Regexp:
		return func(input string, at int) int {
			if loc := b.FindStringIndex(input[at:]); loc != nil {
				return at + loc[0]
			}
			return len(input)
		}
	default:
		panic(fmt.Sprintf("Can't use `%T` as an until boundary", boundary))
	}
}
