package cucumberexpressions

import "fmt"

// A Span is a half-open byte range [Start, End) into the expression
// source text. Spans always index the original input: an escape
// sequence covers both of its bytes even though the unescaped value
// keeps only one character.
type Span struct {
	Start int
	End   int
}

func (s Span) String() string { return fmt.Sprintf("%d..%d", s.Start, s.End) }

// Len returns the number of source bytes covered.
func (s Span) Len() int { return s.End - s.Start }

// In returns the source text the span covers.
func (s Span) In(input string) string { return input[s.Start:s.End] }
