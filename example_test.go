package cucumberexpressions_test

import (
	"fmt"

	expressions "github.com/ilslv/cucumber-expressions-1"
)

func ExampleParse() {
	expr, err := expressions.Parse("I have {int} cucumber(s) in my belly")
	if err != nil {
		panic(err)
	}
	fmt.Println(expr)
	for _, node := range expr.Nodes {
		fmt.Printf("%s %q\n", node.Bounds(), node.String())
	}
	// Output:
	// I have {int} cucumber(s) in my belly
	// 0..7 "I have "
	// 7..12 "{int}"
	// 12..21 " cucumber"
	// 21..24 "(s)"
	// 24..36 " in my belly"
}

func ExampleParse_error() {
	_, err := expressions.Parse("I have a {int")
	fmt.Println(err)
	// Output:
	// 9..13: unfinished parameter: '{' is missing its '}': "{int"
}
