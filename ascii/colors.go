// Package ascii provides terminal ANSI color codes and semantic
// names for colors so output styling stays in one place.
package ascii

import "fmt"

const (
	Reset  = "\033[0m"
	Red    = "\033[1;31m"
	Green  = "\033[1;32m"
	Yellow = "\033[1;33m"
	Cyan   = "\033[1;36m"
	Gray   = "\033[90m" // Bright black, actually
)

// Theme defines semantic color mappings for the CLI output.
type Theme struct {
	Error   string
	Muted   string
	Literal string
	Branch  string
}

// DefaultTheme provides a sensible default color mapping.
var DefaultTheme = Theme{
	Error:   Red,
	Muted:   Gray,
	Literal: Green,
	Branch:  Cyan,
}

func Color(color, format string, args ...any) string {
	return fmt.Sprintf(color+format+Reset, args...)
}
