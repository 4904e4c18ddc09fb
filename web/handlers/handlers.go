// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/KenyStev/tinymarkup"
	"github.com/KenyStev/tinymarkup/renderer"
	"github.com/KenyStev/tinymarkup/web/templates"
)

// maxMarkupBytes limits the size of a request body.
const maxMarkupBytes = 1 << 20

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	renderer *renderer.Renderer
	logger   *slog.Logger
}

// New creates a new Handlers with the given renderer.
// If logger is nil, slog.Default() is used.
func New(r *renderer.Renderer, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{renderer: r, logger: logger}
}

// Routes returns the playground routes.
func (h *Handlers) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Index)
	mux.HandleFunc("POST /render", h.Render)
	mux.HandleFunc("POST /parse", h.Parse)
	return mux
}

// getLayoutData returns layout data for every page.
func (h *Handlers) getLayoutData() templates.LayoutData {
	return templates.LayoutData{Version: tinymarkup.Version().String()}
}

// markupFromRequest reads the "markup" form field, from the query or the body.
func markupFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxMarkupBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return "", false
	}
	return r.FormValue("markup"), true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}
