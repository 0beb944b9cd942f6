package comb

import "fmt"

// FailKind classifies a parse failure.
type FailKind int

const (
	LiteralMismatch FailKind = iota
	PatternMismatch
	UnexpectedTrailingInput
	EmptyMatchRejected
	ExistenceCheckFailed
	LengthMismatch
	PredicateFailed
)

func (k FailKind) String() string {
	return map[FailKind]string{
		LiteralMismatch:         "literal mismatch",
		PatternMismatch:         "pattern mismatch",
		UnexpectedTrailingInput: "unexpected trailing input",
		EmptyMatchRejected:      "empty match rejected",
		ExistenceCheckFailed:    "existence check failed",
		LengthMismatch:          "length mismatch",
		PredicateFailed:         "predicate failed",
	}[k]
}

// ParseError is the failure reported when a parser can't match the
// input at an offset.  Combinators propagate it unchanged on the way
// out; Choice is the only recovery point.  Offset is the offending
// byte position, which for literals sits past any matching prefix
// rather than at the start of the attempt.
type ParseError struct {
	Kind     FailKind
	Message  string
	Expected string
	Rule     string
	Offset   int
}

// Error returns the human readable representation of a parse error
func (e *ParseError) Error() string {
	if e.Rule != "" {
		return fmt.Sprintf("%s: %s @ %d", e.Rule, e.Message, e.Offset)
	}
	return fmt.Sprintf("%s @ %d", e.Message, e.Offset)
}

func newError(kind FailKind, expected, message string, offset int) *ParseError {
	return &ParseError{Kind: kind, Message: message, Expected: expected, Offset: offset}
}
