package match

// node is a single segment position in the pattern graph. Literal children
// live in their own map while the variable and wildcard edges are dedicated
// fields, so a literal segment can never collide with a reserved edge kind.
type node struct {
	static   map[string]*node
	variable *node
	wildcard *node

	// routes holds the patterns terminating here, in registration order.
	routes []*route
}

func newNode() *node {
	return &node{static: make(map[string]*node)}
}

// staticChild returns the literal child for seg, creating it if absent.
func (n *node) staticChild(seg string) *node {
	child, ok := n.static[seg]
	if !ok {
		child = newNode()
		n.static[seg] = child
	}
	return child
}

// variableChild returns the single-segment variable child, creating it
// if absent.
func (n *node) variableChild() *node {
	if n.variable == nil {
		n.variable = newNode()
	}
	return n.variable
}

// wildcardChild returns the wildcard variable child, creating it if absent.
func (n *node) wildcardChild() *node {
	if n.wildcard == nil {
		n.wildcard = newNode()
	}
	return n.wildcard
}
