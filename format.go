package comb

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

type FormatToken int

const (
	FormatToken_None FormatToken = iota
	FormatToken_Branch
	FormatToken_Literal
)

// FormatFn decorates a rendered token, e.g. with terminal colors.
type FormatFn func(text string, token FormatToken) string

// Branch lets a domain value control its own tree rendering: a label
// for the node and the children printed underneath it.
type Branch interface {
	Label() string
	Children() []any
}

// RenderTree returns a box-drawing tree describing a parse result.
// Strings are quoted leaves, slices become Sequence branches, and
// values implementing Branch pick their own label and children.
func RenderTree(value any) string {
	return RenderTreeWith(value, func(text string, _ FormatToken) string { return text })
}

// RenderTreeWith is RenderTree with every token routed through
// format first.
func RenderTreeWith(value any, format FormatFn) string {
	p := &treePrinter{format: format}
	p.visit(value)
	return p.output.String()
}

type treePrinter struct {
	padStr []string
	output strings.Builder
	format FormatFn
}

func (p *treePrinter) visit(value any) {
	if value == nil {
		p.write(p.format("<no value>", FormatToken_None))
		return
	}
	if branch, ok := value.(Branch); ok {
		p.branch(p.format(branch.Label(), FormatToken_Branch), branch.Children())
		return
	}
	if s, ok := value.(string); ok {
		p.write(p.format(strconv.Quote(s), FormatToken_Literal))
		return
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice {
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		p.branch(p.format(fmt.Sprintf("Sequence<%d>", len(items)), FormatToken_Branch), items)
		return
	}
	p.write(p.format(fmt.Sprint(value), FormatToken_None))
}

func (p *treePrinter) branch(label string, items []any) {
	if len(items) == 0 {
		p.write(label)
		return
	}
	p.writel(label)
	for i, item := range items {
		switch {
		case i == len(items)-1:
			p.pwrite("└── ")
			p.indent("    ")
			p.visit(item)
			p.unindent()
		default:
			p.pwrite("├── ")
			p.indent("│   ")
			p.visit(item)
			p.unindent()
			p.write("\n")
		}
	}
}

func (p *treePrinter) indent(s string) {
	p.padStr = append(p.padStr, s)
}

func (p *treePrinter) unindent() {
	p.padStr = p.padStr[:len(p.padStr)-1]
}

func (p *treePrinter) padding() {
	for _, item := range p.padStr {
		p.write(item)
	}
}

func (p *treePrinter) writel(s string) {
	p.write(s)
	p.output.WriteRune('\n')
}

func (p *treePrinter) pwrite(s string) {
	p.padding()
	p.write(s)
}

func (p *treePrinter) write(s string) {
	p.output.WriteString(s)
}
