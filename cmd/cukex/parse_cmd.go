package main

import (
	"fmt"

	"github.com/alecthomas/repr"

	expressions "github.com/ilslv/cucumber-expressions-1"
)

type parseCmd struct {
	Expression string `arg:"" help:"Cucumber expression to parse."`
}

func (c *parseCmd) Help() string {
	return `
Prints the syntax tree of the expression with the byte range each node
was parsed from, followed by the canonical rendering.
`
}

func (c *parseCmd) Run() error {
	expr, err := expressions.Parse(c.Expression)
	if err != nil {
		return expressionError(c.Expression, err)
	}
	fmt.Println(repr.String(expr, repr.Indent("  ")))
	fmt.Println(faintStyle.Render("canonical:"), expr)
	return nil
}
