package cucumberexpressions

// An Expression is the parsed form of a single Cucumber expression.
//
// Nodes holds the top level nodes in source order. Their spans tile the
// input exactly: every byte of the source belongs to exactly one top
// level node.
type Expression struct {
	Nodes []Node
	Span  Span
}

// Equal reports whether two expressions are structurally identical,
// spans included.
func (e *Expression) Equal(o *Expression) bool {
	if e == nil || o == nil {
		return e == o
	}
	return e.Span == o.Span && equalNodes(e.Nodes, o.Nodes)
}

// A Node is a single construct within an expression. The concrete
// types are *Text, *Optional, *Alternation and *Parameter.
type Node interface {
	// Bounds returns the byte range the node covers in the source text.
	Bounds() Span
	// Equal reports structural equality, spans included.
	Equal(Node) bool
	// String renders the node back to expression syntax.
	String() string

	node()
}

// Literal text between constructs, escapes already applied.
type Text struct {
	Value string
	Span  Span
}

func (t *Text) node()        {}
func (t *Text) Bounds() Span { return t.Span }
func (t *Text) Equal(o Node) bool {
	u, ok := o.(*Text)
	return ok && *t == *u
}

// "(" (<text> | <parameter>)* ")"
type Optional struct {
	Inner []Node
	Span  Span
}

func (o *Optional) node()        {}
func (o *Optional) Bounds() Span { return o.Span }
func (o *Optional) Equal(n Node) bool {
	u, ok := n.(*Optional)
	return ok && o.Span == u.Span && equalNodes(o.Inner, u.Inner)
}

// <alternative> ("/" <alternative>)+, delimited by whitespace. Each
// alternative holds *Text and *Optional nodes, at least one of them
// text.
type Alternation struct {
	Alternatives [][]Node
	Span         Span
}

func (a *Alternation) node()        {}
func (a *Alternation) Bounds() Span { return a.Span }
func (a *Alternation) Equal(n Node) bool {
	u, ok := n.(*Alternation)
	if !ok || a.Span != u.Span || len(a.Alternatives) != len(u.Alternatives) {
		return false
	}
	for i := range a.Alternatives {
		if !equalNodes(a.Alternatives[i], u.Alternatives[i]) {
			return false
		}
	}
	return true
}

// "{" <name> "}"
type Parameter struct {
	Name string
	Span Span
}

func (p *Parameter) node()        {}
func (p *Parameter) Bounds() Span { return p.Span }
func (p *Parameter) Equal(o Node) bool {
	u, ok := o.(*Parameter)
	return ok && *p == *u
}

func equalNodes(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
