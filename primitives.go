package comb

import (
	"fmt"
	"regexp"
)

// Literal returns a parser that matches text exactly at the current
// offset.  The failure offset points at the first offending byte, so
// a partially matching input is not blamed on its first character.
func Literal(text string) Parser[string] {
	return Parser[string]{fn: func(input string, at int) (match[string], error) {
		end, ok := advance(input, at, text)
		if !ok {
			msg := fmt.Sprintf("Missing `%s`", text)
			return match[string]{}, newError(LiteralMismatch, text, msg, end)
		}
		return match[string]{value: text, end: end, keep: true}, nil
	}}
}

// advance walks text against input starting at offset at.  It
// returns the offset right past the matched prefix and whether the
// whole text matched.  On a mismatch the returned offset is the
// first offending position instead.
func advance(input string, at int, text string) (int, bool) {
	pos := at
	for i := 0; i < len(text); i++ {
		if pos >= len(input) || input[pos] != text[i] {
			return pos, false
		}
		pos++
	}
	return pos, true
}

// Pattern returns a parser for a regular expression, anchored to the
// current offset.  The expression is compiled eagerly, so a
// malformed one panics at construction time rather than at parse
// time.
func Pattern(expr string) Parser[string] {
	return regexpParser(regexp.MustCompile(`\A(?:`+expr+`)`), expr)
}

// Regexp is Pattern for an already compiled expression.  A match
// beginning past the current offset counts as a failure, even though
// the engine would happily report one further along.
func Regexp(re *regexp.Regexp) Parser[string] {
	return regexpParser(re, re.String())
}

func regexpParser(re *regexp.Regexp, source string) Parser[string] {
	return Parser[string]{fn: func(input string, at int) (match[string], error) {
		loc := re.FindStringIndex(input[at:])
		if loc == nil || loc[0] != 0 {
			msg := fmt.Sprintf("Expected pattern `%s`", source)
			return match[string]{}, newError(PatternMismatch, source, msg, at)
		}
		return match[string]{value: input[at : at+loc[1]], end: at + loc[1], keep: true}, nil
	}}
}

// Digits returns a parser that greedily consumes a run of ASCII
// digits.  It never fails and the run may be empty; wrap it in
// NotEmpty when at least one digit is required.
func Digits() Parser[string] {
	return Parser[string]{fn: func(input string, at int) (match[string], error) {
		end := at
		for end < len(input) && input[end] >= '0' && input[end] <= '9' {
			end++
		}
		return match[string]{value: input[at:end], end: end, keep: true}, nil
	}}
}

// Identifier returns a parser for one or more word characters.
func Identifier() Parser[string] {
	return Pattern(`\w+`)
}

// Exists matches text like Literal but produces the constant true
// instead of the matched string, for assertions that don't care
// about the captured text.
func Exists(text string) Parser[bool] {
	return Parser[bool]{fn: func(input string, at int) (match[bool], error) {
		end, ok := advance(input, at, text)
		if !ok {
			msg := fmt.Sprintf("Missing `%s`", text)
			return match[bool]{}, newError(ExistenceCheckFailed, text, msg, end)
		}
		return match[bool]{value: true, end: end, keep: true}, nil
	}}
}

// Empty returns a parser that always succeeds, consumes nothing, and
// produces no value.
func Empty() Parser[any] {
	return Parser[any]{fn: func(_ string, at int) (match[any], error) {
		return match[any]{end: at}, nil
	}}
}

// End returns a parser that succeeds only at the end of the input.
func End() Parser[any] {
	return Parser[any]{fn: func(input string, at int) (match[any], error) {
		if at != len(input) {
			return match[any]{}, newError(UnexpectedTrailingInput, "", "Unexpected trailing input", at)
		}
		return match[any]{end: at}, nil
	}}
}
