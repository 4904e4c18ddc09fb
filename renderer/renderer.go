// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package renderer turns markup trees into HTML nodes.
package renderer

import (
	"io"
	"log/slog"
	"strings"

	"github.com/KenyStev/tinymarkup"
	g "maragu.dev/gomponents"
)

type Renderer struct {
	tagFunc TagFunc
	tags    map[string]string
	logger  *slog.Logger
}

func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		tags:   make(map[string]string),
		logger: slog.Default(),
	}
	for _, option := range options {
		err := option(r)
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Nodes renders a forest. Text is escaped when the result is rendered.
func (r *Renderer) Nodes(nodes []tinymarkup.Node) g.Node {
	return g.Group(r.render(nodes))
}

// Markup parses raw and renders it. If the tags in raw do not nest,
// the whole of raw is rendered as text.
func (r *Renderer) Markup(raw string) g.Node {
	nodes, err := tinymarkup.Parse(raw)
	if err != nil {
		r.logger.Debug("renderer: markup rendered as text", "error", err)
		return g.Text(raw)
	}
	return r.Nodes(nodes)
}

// Render writes the HTML for raw to w.
func (r *Renderer) Render(w io.Writer, raw string) error {
	return r.Markup(raw).Render(w)
}

// String returns the HTML for raw.
func (r *Renderer) String(raw string) (string, error) {
	var sb strings.Builder
	if err := r.Render(&sb, raw); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (r *Renderer) render(nodes []tinymarkup.Node) []g.Node {
	var list []g.Node
	for _, n := range nodes {
		switch n := n.(type) {
		case *tinymarkup.TextNode:
			list = append(list, g.Text(n.Text))
		case *tinymarkup.TagNode:
			if node := r.tag(n); node != nil {
				list = append(list, node)
			}
		}
	}
	return list
}

// tag renders a tag node, returning nil if the tag is removed.
func (r *Renderer) tag(n *tinymarkup.TagNode) g.Node {
	children := r.render(n.Children)

	result := Default
	if r.tagFunc != nil {
		result = r.tagFunc(n.Name, children)
	}

	switch result.action {
	case actionReplace:
		return result.node
	case actionUnwrap:
		return g.Group(children)
	case actionRemove:
		return nil
	}
	if name, ok := r.tags[n.Name]; ok {
		return Element(name, children)
	}
	return Element(n.Name, children)
}
