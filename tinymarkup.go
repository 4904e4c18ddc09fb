// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package tinymarkup turns a small HTML-like markup into a tree of text and tag nodes.
//
// Tags are bare letter-only names, <b> and </b>. There are no attributes,
// no self-closing tags and no entities. Anything that does not form a tag
// is kept as text.
package tinymarkup

// Parse tokenizes raw and builds the node forest.
// It returns a *StructuralMismatch if the tags do not nest.
func Parse(raw string) ([]Node, error) {
	return Build(Tokenize(raw))
}

// ParseOrText is Parse for callers that never want an error.
// If the tags do not nest, it returns the whole input as a single text node.
func ParseOrText(raw string) []Node {
	nodes, err := Parse(raw)
	if err != nil {
		return []Node{NewText(raw)}
	}
	return nodes
}
