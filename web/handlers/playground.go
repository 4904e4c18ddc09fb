// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package handlers

import (
	"net/http"

	"github.com/KenyStev/tinymarkup"
	"github.com/KenyStev/tinymarkup/web/templates"
)

// Index renders the playground page. A "markup" query parameter is rendered
// into the preview.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	markup, ok := markupFromRequest(w, r)
	if !ok {
		return
	}
	if err := templates.PlaygroundPage(h.preview(markup), h.getLayoutData()).Render(r.Context(), w); err != nil {
		h.logger.Error("index: render", "error", err)
	}
}

// Render returns only the preview fragment for the posted markup.
func (h *Handlers) Render(w http.ResponseWriter, r *http.Request) {
	markup, ok := markupFromRequest(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Preview(h.preview(markup)).Render(r.Context(), w); err != nil {
		h.logger.Error("render: render", "error", err)
	}
}

// preview renders markup, falling back to text and reporting the error
// when the tags do not nest.
func (h *Handlers) preview(markup string) templates.PlaygroundData {
	data := templates.PlaygroundData{Markup: markup}
	if markup == "" {
		return data
	}
	nodes, err := tinymarkup.Parse(markup)
	if err != nil {
		data.Error = err.Error()
		nodes = []tinymarkup.Node{tinymarkup.NewText(markup)}
	}
	data.Preview = h.renderer.Nodes(nodes)
	return data
}
