// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package tinymarkup

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Node is the interface implemented by the two node variants, *TextNode and *TagNode.
//
// Span covers the node's original text in the input, including the open and
// close tags of a TagNode. Source returns that text, so concatenating Source
// over a forest built from well-formed input reproduces the input.
type Node interface {
	Span() Span
	Source(input []byte) string

	node()
}

// TextNode is a run of literal text.
type TextNode struct {
	Text string
	span Span
}

func (n *TextNode) Span() Span                 { return n.span }
func (n *TextNode) Source(input []byte) string { return string(n.span.Text(input)) }
func (n *TextNode) node()                      {}

// TagNode is a matched open/close tag pair and everything between them.
type TagNode struct {
	Name     string
	Children []Node
	span     Span
}

func (n *TagNode) Span() Span                 { return n.span }
func (n *TagNode) Source(input []byte) string { return string(n.span.Text(input)) }
func (n *TagNode) node()                      {}

// NewText returns a text node that is not tied to a position in any input.
func NewText(text string) *TextNode {
	return &TextNode{Text: text, span: Span{Start: 0, End: len(text), Line: 1, Column: 1}}
}

// Source concatenates the source of every node in the forest.
func Source(nodes []Node, input []byte) string {
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(n.Source(input))
	}
	return sb.String()
}

// WireNode is the serialized shape of a node:
//
//	{ "kind": "text", "text": "..." }
//	{ "kind": "tag", "name": "...", "children": [ ... ] }
type WireNode struct {
	Kind     string     `json:"kind" msgpack:"kind"`
	Text     string     `json:"text,omitempty" msgpack:"text,omitempty"`
	Name     string     `json:"name,omitempty" msgpack:"name,omitempty"`
	Children []WireNode `json:"children,omitempty" msgpack:"children,omitempty"`
}

const (
	WireText = "text"
	WireTag  = "tag"
)

// MarshalJSON always emits children for tags, even when there are none.
func (w WireNode) MarshalJSON() ([]byte, error) {
	if w.Kind == WireTag {
		children := w.Children
		if children == nil {
			children = []WireNode{}
		}
		return marshalJSON(struct {
			Kind     string     `json:"kind"`
			Name     string     `json:"name"`
			Children []WireNode `json:"children"`
		}{Kind: w.Kind, Name: w.Name, Children: children})
	}
	return marshalJSON(struct {
		Kind string `json:"kind"`
		Text string `json:"text"`
	}{Kind: w.Kind, Text: w.Text})
}

// marshalJSON is json.Marshal without HTML escaping, so markup text stays readable.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// Wire converts a forest into its serialized shape.
func Wire(nodes []Node) []WireNode {
	list := make([]WireNode, 0, len(nodes))
	for _, n := range nodes {
		switch n := n.(type) {
		case *TextNode:
			list = append(list, WireNode{Kind: WireText, Text: n.Text})
		case *TagNode:
			list = append(list, WireNode{Kind: WireTag, Name: n.Name, Children: Wire(n.Children)})
		}
	}
	return list
}
