package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	expressions "github.com/ilslv/cucumber-expressions-1"
)

var (
	caretStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// expressionError turns a positional parse or compile error into a
// diagnostic that underlines the offending span of the source:
//
//	unfinished parameter: '{' is missing its '}': "{int"
//	  I have a {int
//	           ^^^^
//
// Errors without positions pass through unchanged.
func expressionError(input string, err error) error {
	var head expressions.Error
	if !errors.As(err, &head) {
		return err
	}
	span := head.Bounds()
	indent := lipgloss.Width(input[:span.Start])
	width := lipgloss.Width(span.In(input))
	if width < 1 {
		width = 1
	}
	var out strings.Builder
	out.WriteString(head.Message())
	fmt.Fprintf(&out, "\n  %s\n", input)
	fmt.Fprintf(&out, "  %s%s", strings.Repeat(" ", indent), caretStyle.Render(strings.Repeat("^", width)))
	return errors.New(out.String())
}
