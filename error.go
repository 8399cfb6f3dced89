package cucumberexpressions

import "fmt"

// Error represents an error while parsing or compiling an expression.
//
// The error always carries the byte range of the offending source text.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Source range the error refers to.
	Bounds() Span
}

// ErrorKind identifies the grammar rule a ParseError violated.
type ErrorKind int

const (
	// A backslash not followed by one of the six reserved characters.
	DanglingEscape ErrorKind = iota
	// An optional opened with ( but never closed.
	UnfinishedOptional
	// A parameter opened with { but never closed.
	UnfinishedParameter
	// An optional opened inside another optional.
	NestedOptional
	// An alternative that cannot alternate: it contains a parameter,
	// or no text at all, or a / appeared inside an optional.
	AmbiguousAlternation
	// Nothing on one side of an alternation separator.
	EmptyAlternative
	// A reserved character or whitespace inside a parameter name.
	InvalidParameterName
	// A parameter with no name at all: {}.
	EmptyParameterName
)

var errorKindNames = [...]string{
	DanglingEscape:       "DanglingEscape",
	UnfinishedOptional:   "UnfinishedOptional",
	UnfinishedParameter:  "UnfinishedParameter",
	NestedOptional:       "NestedOptional",
	AmbiguousAlternation: "AmbiguousAlternation",
	EmptyAlternative:     "EmptyAlternative",
	InvalidParameterName: "InvalidParameterName",
	EmptyParameterName:   "EmptyParameterName",
}

func (k ErrorKind) String() string { return errorKindNames[k] }

func (k ErrorKind) message() string {
	switch k {
	case DanglingEscape:
		return `dangling escape: only '{', '}', '(', ')', '/' and '\' can be escaped`
	case UnfinishedOptional:
		return "unfinished optional: '(' is missing its ')'"
	case UnfinishedParameter:
		return "unfinished parameter: '{' is missing its '}'"
	case NestedOptional:
		return "an optional cannot contain another optional"
	case AmbiguousAlternation:
		return "ambiguous alternation: an alternative can hold only text and optional text"
	case EmptyAlternative:
		return "an alternative cannot be empty"
	case InvalidParameterName:
		return "invalid parameter name: reserved characters and whitespace are not allowed"
	case EmptyParameterName:
		return "a parameter name cannot be empty"
	}
	return "malformed expression"
}

// ParseError describes the first grammar violation found in an
// expression. Parsing stops at the first error, so there is never more
// than one.
type ParseError struct {
	Kind    ErrorKind
	Span    Span
	Snippet string // the offending source text
}

var _ Error = (*ParseError)(nil)

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Span, e.Message())
}

// Message returns the error without positional information.
func (e *ParseError) Message() string {
	return fmt.Sprintf("%s: %q", e.Kind.message(), e.Snippet)
}

// Bounds returns the byte range of the offending source text.
func (e *ParseError) Bounds() Span { return e.Span }
