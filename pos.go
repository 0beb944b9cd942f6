package comb

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Location is a human oriented position within an input: 1-based
// line and rune column.  Parsers themselves only track byte offsets;
// derive a Location when presenting a failure to a person.
type Location struct {
	Line   int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// LocationAt converts a byte offset into a Location.  Offsets out of
// range are clamped to the input.
func LocationAt(input string, offset int) Location {
	if offset < 0 {
		offset = 0
	}
	if offset > len(input) {
		offset = len(input)
	}
	before := input[:offset]
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return Location{
		Line:   strings.Count(before, "\n") + 1,
		Column: utf8.RuneCountInString(before[lineStart:]) + 1,
	}
}
