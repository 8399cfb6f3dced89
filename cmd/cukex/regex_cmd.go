package main

import (
	"fmt"

	expressions "github.com/ilslv/cucumber-expressions-1"
	"github.com/ilslv/cucumber-expressions-1/pattern"
)

type regexCmd struct {
	Expression string `arg:"" help:"Cucumber expression to compile."`
}

func (c *regexCmd) Help() string {
	return `
Prints the anchored regular expression the expression compiles to and
one line per capturing group: its position, parameter type name and the
fragment inside the group.
`
}

func (c *regexCmd) Run() error {
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
	fmt.Println(compiled.Source)
	for _, param := range compiled.Parameters {
		fmt.Printf("%s {%s} %s\n", faintStyle.Render(fmt.Sprintf("%d:", param.Position)), param.Name, param.Pattern)
	}
	return nil
}
