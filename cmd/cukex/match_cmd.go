package main

import (
	"fmt"
	"regexp"

	"github.com/charmbracelet/lipgloss"

	expressions "github.com/ilslv/cucumber-expressions-1"
	"github.com/ilslv/cucumber-expressions-1/pattern"
)

var (
	matchStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	noMatchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type matchCmd struct {
	Expression string   `arg:"" help:"Cucumber expression to match against."`
	Sentences  []string `arg:"" name:"sentence" help:"Sentences to try."`
}

func (c *matchCmd) Help() string {
	return `
Compiles the expression and tries each sentence against it, printing
the captured parameters of every match.
`
}

func (c *matchCmd) Run() error {
	types, err := resolver()
	if err != nil {
		return err
	}
	expr, err := expressions.Parse(c.Expression)
	if err != nil {
		return expressionError(c.Expression, err)
	}
	compiled, err := pattern.Compile(expr, types)
	if err != nil {
		return expressionError(c.Expression, err)
	}
	re, err := regexp.Compile(compiled.Source)
	if err != nil {
		return err
	}
	for _, sentence := range c.Sentences {
		groups := re.FindStringSubmatch(sentence)
		if groups == nil {
			fmt.Printf("%s %s\n", noMatchStyle.Render("no match"), sentence)
			continue
		}
		fmt.Printf("%s %s\n", matchStyle.Render("match"), sentence)
		for _, param := range compiled.Parameters {
			fmt.Printf("  {%s} = %q\n", param.Name, groups[param.Position+1])
		}
	}
	return nil
}
