package css

import (
	"csc/cascade"
)

// Rule is a single style rule of a stylesheet.
type Rule struct {
	Selector string
	// Layer is dotted name of cascade layer rule belongs to, empty for
	// unlayered rules.
	Layer      string
	LayerOrder uint16
	Properties *cascade.PropertySet
}

// IsLayered reports whether rule is inside a cascade layer.
func (r Rule) IsLayered() bool {
	return r.Layer != ""
}

// Stylesheet is a parsed stylesheet. Rules are kept in source order, grouped
// selectors produce one rule per selector sharing the same properties.
type Stylesheet struct {
	Rules []Rule
	// Layers lists layer names in cascade order, the first one has the
	// lowest priority.
	Layers   []string
	Warnings []string
}

// RulesBySelector returns all rules with exact selector text.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var rules []Rule
	for _, r := range s.Rules {
		if r.Selector == selector {
			rules = append(rules, r)
		}
	}
	return rules
}

// layerNode is a node of the cascade layer tree. Layer order is post-order
// of the tree: sublayers go before rules of their parent layer.
type layerNode struct {
	name     string
	full     string
	children []*layerNode
	order    uint16
}

func (n *layerNode) child(name string) *layerNode {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	c := &layerNode{name: name, full: name}
	if n.full != "" {
		c.full = n.full + "." + name
	}
	n.children = append(n.children, c)
	return c
}

// declare registers dotted layer path and returns its node.
func (n *layerNode) declare(path []string) *layerNode {
	node := n
	for _, name := range path {
		node = node.child(name)
	}
	return node
}

// assign sets orders of all layers below n and returns their names in
// cascade order.
func (n *layerNode) assign(next *uint16, names []string) []string {
	for _, c := range n.children {
		names = c.assign(next, names)
		c.order = *next
		*next++
		names = append(names, c.full)
	}
	return names
}
