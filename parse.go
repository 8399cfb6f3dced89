package cucumberexpressions

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// reserved reports whether r is one of the six characters with
// structural meaning: { } ( ) / \.
func reserved(r rune) bool {
	switch r {
	case '{', '}', '(', ')', '/', '\\':
		return true
	}
	return false
}

// Parse parses a single Cucumber expression into its syntax tree. The
// returned error, if any, is always a *ParseError describing the first
// violation encountered, in source order.
func Parse(input string) (*Expression, error) {
	p := &parser{input: input}
	nodes, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &Expression{Nodes: nodes, Span: Span{0, len(input)}}, nil
}

// MustParse is like Parse but panics on error. It simplifies step
// tables built at package initialisation.
func MustParse(input string) *Expression {
	expr, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return expr
}

type parser struct {
	input string
	pos   int
}

func (p *parser) eof() bool { return p.pos >= len(p.input) }

// peek decodes the rune at the cursor without advancing.
func (p *parser) peek() rune {
	r, _ := utf8.DecodeRuneInString(p.input[p.pos:])
	return r
}

// next decodes the rune at the cursor and advances past it.
func (p *parser) next() rune {
	r, size := utf8.DecodeRuneInString(p.input[p.pos:])
	p.pos += size
	return r
}

func (p *parser) error(kind ErrorKind, span Span) *ParseError {
	return &ParseError{Kind: kind, Span: span, Snippet: span.In(p.input)}
}

// text materialises a literal run, dropping escape backslashes. The
// span keeps the raw source range.
func (p *parser) text(start, end int) *Text {
	return &Text{Value: unescape(p.input[start:end]), Span: Span{start, end}}
}

// expression parses top level nodes until end of input. Pending
// literal text is tracked as a source range rather than a buffer so
// that alternations can split it retroactively.
func (p *parser) expression() ([]Node, error) {
	var (
		nodes     []Node
		textStart = -1 // start of pending literal text, -1 when none
	)
	flush := func() {
		if textStart >= 0 {
			nodes = append(nodes, p.text(textStart, p.pos))
			textStart = -1
		}
	}
	for !p.eof() {
		switch p.peek() {
		case '\\':
			if textStart < 0 {
				textStart = p.pos
			}
			if err := p.escape(); err != nil {
				return nil, err
			}
		case '(':
			flush()
			opt, err := p.optional(false)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, opt)
		case '{':
			flush()
			param, err := p.parameter()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, param)
		case '/':
			var err error
			nodes, err = p.alternation(nodes, textStart)
			if err != nil {
				return nil, err
			}
			textStart = -1
		default:
			// Bare ) and } are literal.
			if textStart < 0 {
				textStart = p.pos
			}
			p.next()
		}
	}
	flush()
	return nodes, nil
}

// escape validates the two character escape at the cursor and advances
// past it. Only the six reserved characters can be escaped; anything
// else, including end of input, dangles.
func (p *parser) escape() error {
	start := p.pos
	p.next()
	if p.eof() {
		return p.error(DanglingEscape, Span{start, p.pos})
	}
	if r := p.next(); !reserved(r) {
		return p.error(DanglingEscape, Span{start, p.pos})
	}
	return nil
}

// optional parses ( ... ) from the opening parenthesis. Nested
// optionals and alternation separators are rejected outright;
// parameters are additionally rejected when the optional is itself
// part of an alternation.
func (p *parser) optional(inAlternation bool) (*Optional, error) {
	start := p.pos
	p.next()
	var (
		inner     []Node
		textStart = -1
	)
	flush := func() {
		if textStart >= 0 {
			inner = append(inner, p.text(textStart, p.pos))
			textStart = -1
		}
	}
	for !p.eof() {
		switch p.peek() {
		case ')':
			flush()
			p.next()
			return &Optional{Inner: inner, Span: Span{start, p.pos}}, nil
		case '\\':
			if textStart < 0 {
				textStart = p.pos
			}
			if err := p.escape(); err != nil {
				return nil, err
			}
		case '(':
			return nil, p.error(NestedOptional, Span{p.pos, p.pos + 1})
		case '/':
			return nil, p.error(AmbiguousAlternation, Span{p.pos, p.pos + 1})
		case '{':
			flush()
			param, err := p.parameter()
			if err != nil {
				return nil, err
			}
			if inAlternation {
				return nil, p.error(AmbiguousAlternation, param.Span)
			}
			inner = append(inner, param)
		default:
			if textStart < 0 {
				textStart = p.pos
			}
			p.next()
		}
	}
	return nil, p.error(UnfinishedOptional, Span{start, len(p.input)})
}

// parameter parses { name } from the opening brace. Names cannot be
// empty and cannot contain reserved characters or whitespace; escapes
// do not apply inside the braces.
func (p *parser) parameter() (*Parameter, error) {
	start := p.pos
	p.next()
	nameStart := p.pos
	for !p.eof() {
		r := p.peek()
		switch {
		case r == '}':
			name := p.input[nameStart:p.pos]
			p.next()
			if name == "" {
				return nil, p.error(EmptyParameterName, Span{start, p.pos})
			}
			return &Parameter{Name: name, Span: Span{start, p.pos}}, nil
		case reserved(r) || unicode.IsSpace(r):
			return nil, p.error(InvalidParameterName, Span{p.pos, p.pos + utf8.RuneLen(r)})
		default:
			p.next()
		}
	}
	return nil, p.error(UnfinishedParameter, Span{start, len(p.input)})
}

// alternation parses the whitespace delimited run of alternatives
// around the separator at the cursor. The first alternative is
// recovered from input already consumed; the rest are scanned forward
// until whitespace or end of input.
func (p *parser) alternation(nodes []Node, textStart int) ([]Node, error) {
	sep := p.pos
	nodes, first, altsStart := p.leadingAlternative(nodes, textStart)
	if len(first) == 0 {
		return nil, p.error(EmptyAlternative, Span{sep, sep + 1})
	}
	if err := p.checkAlternative(first, Span{altsStart, sep}); err != nil {
		return nil, err
	}
	alternatives := [][]Node{first}
	for {
		p.next()
		start := p.pos
		var (
			alt     []Node
			altText = -1
		)
		flush := func() {
			if altText >= 0 {
				alt = append(alt, p.text(altText, p.pos))
				altText = -1
			}
		}
		more := false
	scan:
		for !p.eof() {
			switch r := p.peek(); {
			case r == '/':
				more = true
				break scan
			case unicode.IsSpace(r):
				break scan
			case r == '\\':
				if altText < 0 {
					altText = p.pos
				}
				if err := p.escape(); err != nil {
					return nil, err
				}
			case r == '(':
				flush()
				opt, err := p.optional(true)
				if err != nil {
					return nil, err
				}
				alt = append(alt, opt)
			case r == '{':
				flush()
				param, err := p.parameter()
				if err != nil {
					return nil, err
				}
				alt = append(alt, param)
			default:
				if altText < 0 {
					altText = p.pos
				}
				p.next()
			}
		}
		flush()
		if len(alt) == 0 {
			return nil, p.error(EmptyAlternative, Span{start - 1, start})
		}
		if err := p.checkAlternative(alt, Span{start, p.pos}); err != nil {
			return nil, err
		}
		alternatives = append(alternatives, alt)
		if !more {
			break
		}
	}
	nodes = append(nodes, &Alternation{Alternatives: alternatives, Span: Span{altsStart, p.pos}})
	return nodes, nil
}

// leadingAlternative recovers the first alternative from input already
// consumed. Pending text splits at its last whitespace, and whole
// nodes before the split are pulled in while they stay byte adjacent.
// Splitting on the raw source is safe because whitespace cannot be
// escaped.
func (p *parser) leadingAlternative(nodes []Node, textStart int) ([]Node, []Node, int) {
	start := p.pos
	var first []Node
	if textStart >= 0 {
		if _, wsEnd, ok := lastSpace(p.input[textStart:p.pos]); ok {
			cut := textStart + wsEnd
			if cut < p.pos {
				first = []Node{p.text(cut, p.pos)}
				start = cut
			}
			nodes = append(nodes, p.text(textStart, cut))
			return nodes, first, start
		}
		first = []Node{p.text(textStart, p.pos)}
		start = textStart
	}
	for len(nodes) > 0 {
		last := nodes[len(nodes)-1]
		if last.Bounds().End != start {
			break
		}
		if t, ok := last.(*Text); ok {
			if _, wsEnd, ok := lastSpace(p.input[t.Span.Start:t.Span.End]); ok {
				cut := t.Span.Start + wsEnd
				if cut < t.Span.End {
					first = append([]Node{p.text(cut, t.Span.End)}, first...)
					start = cut
				}
				nodes[len(nodes)-1] = p.text(t.Span.Start, cut)
				return nodes, first, start
			}
		}
		nodes = nodes[:len(nodes)-1]
		first = append([]Node{last}, first...)
		start = last.Bounds().Start
	}
	return nodes, first, start
}

// checkAlternative enforces what an alternative may hold: at least one
// text run, no parameters, and optionals of plain text only. Forward
// scanned alternatives reject parameters as they appear; this catches
// the ones pulled in by leadingAlternative.
func (p *parser) checkAlternative(alt []Node, span Span) error {
	hasText := false
	for _, n := range alt {
		switch n := n.(type) {
		case *Text:
			hasText = true
		case *Parameter:
			return p.error(AmbiguousAlternation, n.Span)
		case *Optional:
			for _, inner := range n.Inner {
				if param, ok := inner.(*Parameter); ok {
					return p.error(AmbiguousAlternation, param.Span)
				}
			}
		}
	}
	if !hasText {
		return p.error(AmbiguousAlternation, span)
	}
	return nil
}

// lastSpace locates the final whitespace rune in s, returning its byte
// range within s.
func lastSpace(s string) (start, end int, ok bool) {
	for i, r := range s {
		if unicode.IsSpace(r) {
			start, end, ok = i, i+utf8.RuneLen(r), true
		}
	}
	return
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var out strings.Builder
	out.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' {
			i++
			if i == len(s) {
				break
			}
		}
		out.WriteByte(s[i])
	}
	return out.String()
}
