package cucumberexpressions

// Walk calls visit for every node of the subtree rooted at n in depth
// first, source order. Children are skipped when visit returns false.
func Walk(n Node, visit func(Node) bool) {
	if !visit(n) {
		return
	}
	switch n := n.(type) {
	case *Optional:
		for _, inner := range n.Inner {
			Walk(inner, visit)
		}
	case *Alternation:
		for _, alt := range n.Alternatives {
			for _, inner := range alt {
				Walk(inner, visit)
			}
		}
	}
}

// Walk visits every node of the expression in depth first, source
// order.
func (e *Expression) Walk(visit func(Node) bool) {
	for _, n := range e.Nodes {
		Walk(n, visit)
	}
}
