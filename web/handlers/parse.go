// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package handlers

import (
	"errors"
	"net/http"

	"github.com/KenyStev/tinymarkup"
)

type parseResponse struct {
	Nodes []tinymarkup.WireNode `json:"nodes"`
}

type errorResponse struct {
	Error parseError `json:"error"`
}

type parseError struct {
	Message  string `json:"message"`
	Expected string `json:"expected,omitempty"`
	Found    string `json:"found,omitempty"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// Parse returns the node tree for the posted markup as JSON.
// If the tags do not nest, it returns the mismatch with status 422.
func (h *Handlers) Parse(w http.ResponseWriter, r *http.Request) {
	markup, ok := markupFromRequest(w, r)
	if !ok {
		return
	}
	nodes, err := tinymarkup.Parse(markup)
	if err != nil {
		var mismatch *tinymarkup.StructuralMismatch
		if !errors.As(err, &mismatch) {
			h.logger.Error("parse: unexpected error", "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: parseError{
			Message:  mismatch.Diagnostic().Message,
			Expected: mismatch.Expected,
			Found:    mismatch.Found,
			Line:     mismatch.Span.Line,
			Column:   mismatch.Span.Column,
		}})
		return
	}
	writeJSON(w, http.StatusOK, parseResponse{Nodes: tinymarkup.Wire(nodes)})
}
