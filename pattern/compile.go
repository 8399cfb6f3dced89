// Package pattern compiles parsed Cucumber expressions into anchored
// regular expressions.
//
// Text matches literally, an optional becomes a (?:...)? group, an
// alternation becomes (?:a|b), and each parameter becomes one
// capturing group whose body is supplied by a Resolver. Compilation is
// pure: the same tree and resolver always produce byte identical
// output.
package pattern

import (
	"fmt"
	"regexp"
	"strings"

	expressions "github.com/ilslv/cucumber-expressions-1"
)

// A Parameter describes one capturing group of a compiled pattern.
type Parameter struct {
	Name     string // parameter type name as written in the expression
	Position int    // zero based capture order, left to right
	Pattern  string // resolver fragment inside the capturing group
}

// A Pattern is a compiled expression: the anchored regular expression
// source and the descriptors of its capturing groups, in order.
type Pattern struct {
	Source     string
	Parameters []Parameter
}

// UnknownTypeError is returned by Compile when an expression names a
// parameter type the resolver cannot supply.
type UnknownTypeError struct {
	Name string
	Span expressions.Span
}

var _ expressions.Error = (*UnknownTypeError)(nil)

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Span, e.Message())
}

// Message returns the error without positional information.
func (e *UnknownTypeError) Message() string {
	return fmt.Sprintf("unknown parameter type %q", e.Name)
}

// Bounds returns the byte range of the parameter in the source text.
func (e *UnknownTypeError) Bounds() expressions.Span { return e.Span }

// Compile renders the expression as an anchored regular expression in
// RE2 syntax. The resolver is consulted once per parameter occurrence,
// left to right; nil means BuiltinTypes. The only possible error is
// *UnknownTypeError.
func Compile(expr *expressions.Expression, resolver Resolver) (*Pattern, error) {
	if resolver == nil {
		resolver = BuiltinTypes()
	}
	c := &compiler{resolver: resolver}
	c.buf.WriteByte('^')
	if err := c.nodes(expr.Nodes); err != nil {
		return nil, err
	}
	c.buf.WriteByte('$')
	return &Pattern{Source: c.buf.String(), Parameters: c.params}, nil
}

// Regex parses and compiles source text straight to a regexp.
func Regex(input string, resolver Resolver) (*regexp.Regexp, error) {
	expr, err := expressions.Parse(input)
	if err != nil {
		return nil, err
	}
	compiled, err := Compile(expr, resolver)
	if err != nil {
		return nil, err
	}
	return regexp.Compile(compiled.Source)
}

type compiler struct {
	buf      strings.Builder
	params   []Parameter
	resolver Resolver
}

func (c *compiler) nodes(nodes []expressions.Node) error {
	for _, n := range nodes {
		if err := c.node(n); err != nil {
			return err
		}
	}
	return nil
}

func (c *compiler) node(n expressions.Node) error {
	switch n := n.(type) {
	case *expressions.Text:
		c.buf.WriteString(regexp.QuoteMeta(n.Value))
	case *expressions.Optional:
		c.buf.WriteString("(?:")
		if err := c.nodes(n.Inner); err != nil {
			return err
		}
		c.buf.WriteString(")?")
	case *expressions.Alternation:
		c.buf.WriteString("(?:")
		for i, alt := range n.Alternatives {
			if i > 0 {
				c.buf.WriteByte('|')
			}
			if err := c.nodes(alt); err != nil {
				return err
			}
		}
		c.buf.WriteByte(')')
	case *expressions.Parameter:
		fragment, ok := c.resolver.Resolve(n.Name)
		if !ok {
			return &UnknownTypeError{Name: n.Name, Span: n.Span}
		}
		c.buf.WriteByte('(')
		c.buf.WriteString(fragment)
		c.buf.WriteByte(')')
		c.params = append(c.params, Parameter{Name: n.Name, Position: len(c.params), Pattern: fragment})
	}
	return nil
}
