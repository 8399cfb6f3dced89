package cucumberexpressions

import "strings"

// escapeText prefixes every reserved character with a backslash. The
// canonical form escapes all six, including ')' and '}' which the
// parser also accepts bare.
func escapeText(s string) string {
	if !strings.ContainsAny(s, `{}()/\`) {
		return s
	}
	var out strings.Builder
	out.Grow(len(s) + 2)
	for _, r := range s {
		if reserved(r) {
			out.WriteByte('\\')
		}
		out.WriteRune(r)
	}
	return out.String()
}

// String renders the expression in canonical syntax. The result parses
// back to an equal tree up to spans; original escaping choices are not
// preserved.
func (e *Expression) String() (out string) {
	for _, n := range e.Nodes {
		out += n.String()
	}
	return
}

func (t *Text) String() string { return escapeText(t.Value) }

func (o *Optional) String() (out string) {
	out = "("
	for _, n := range o.Inner {
		out += n.String()
	}
	return out + ")"
}

func (a *Alternation) String() (out string) {
	for i, alt := range a.Alternatives {
		if i > 0 {
			out += "/"
		}
		for _, n := range alt {
			out += n.String()
		}
	}
	return
}

func (p *Parameter) String() string { return "{" + p.Name + "}" }
