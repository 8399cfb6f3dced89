// Package cucumberexpressions parses Cucumber expressions, the human
// friendly step pattern syntax, into a syntax tree.
//
// The grammar is:
//
//	expression  = ( text | optional | alternation | parameter )*
//	text        = any characters; \ escapes { } ( ) / \
//	optional    = "(" ( text | parameter )* ")"
//	alternation = alternative ( "/" alternative )+, bounded by whitespace
//	alternative = ( text | optional )+ with at least one text
//	parameter   = "{" name "}"
//
// Every node records the half open byte range it was parsed from, so
// tooling can point at the exact offending characters when reporting
// errors. Parsing never fails with more than one error: the first
// violation wins and is returned as a *ParseError.
//
// The sibling package pattern turns the tree into an anchored regular
// expression with one capturing group per parameter. Programs that
// only need the tree never pay for the compiler.
package cucumberexpressions
