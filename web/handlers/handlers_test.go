// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/KenyStev/tinymarkup/renderer"
	"github.com/KenyStev/tinymarkup/web/handlers"
)

func newServer(t *testing.T, options ...renderer.Option) http.Handler {
	t.Helper()
	r, err := renderer.New(options...)
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	return handlers.New(r, nil).Routes()
}

func post(t *testing.T, h http.Handler, path, markup string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"markup": {markup}}
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIndex(t *testing.T) {
	h := newServer(t)

	req := httptest.NewRequest(http.MethodGet, "/?markup="+url.QueryEscape("a<b>x</b>"), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"<title>tinymarkup playground</title>",
		`<textarea name="markup">a&lt;b&gt;x&lt;/b&gt;</textarea>`,
		`<div class="preview">a<b>x</b></div>`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body: missing %q", want)
		}
	}

	req = httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown path: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRender(t *testing.T) {
	h := newServer(t, renderer.WithTags(map[string]string{"b": "strong"}))

	rec := post(t, h, "/render", "a<b>x & y</b>")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if got, want := rec.Body.String(), `<div class="preview">a<strong>x &amp; y</strong></div>`; got != want {
		t.Errorf("body: got %q, want %q", got, want)
	}

	rec = post(t, h, "/render", "<a></b>")
	if rec.Code != http.StatusOK {
		t.Fatalf("mismatch status: got %d, want %d", rec.Code, http.StatusOK)
	}
	want := `<p class="error">1:4: expected &lt;/a&gt;, found &lt;/b&gt;</p>` +
		`<div class="preview">&lt;a&gt;&lt;/b&gt;</div>`
	if got := rec.Body.String(); got != want {
		t.Errorf("mismatch body: got %q, want %q", got, want)
	}
}

func TestParse(t *testing.T) {
	h := newServer(t)

	for _, tc := range []struct {
		name   string
		markup string
		status int
		want   string
	}{
		{name: "empty", markup: "", status: http.StatusOK, want: `{"nodes":[]}`},
		{
			name:   "nested",
			markup: "a<b>x<i></i></b>",
			status: http.StatusOK,
			want:   `{"nodes":[{"kind":"text","text":"a"},{"kind":"tag","name":"b","children":[{"kind":"text","text":"x"},{"kind":"tag","name":"i","children":[]}]}]}`,
		},
		{
			name:   "mismatch",
			markup: "abc<a><b></c>",
			status: http.StatusUnprocessableEntity,
			want:   `{"error":{"message":"expected </b>, found </c>","expected":"b","found":"c","line":1,"column":10}}`,
		},
		{
			name:   "orphan close",
			markup: "</a>",
			status: http.StatusUnprocessableEntity,
			want:   `{"error":{"message":"unexpected </a>: no tag is open","found":"a","line":1,"column":1}}`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(t, h, "/parse", tc.markup)
			if rec.Code != tc.status {
				t.Fatalf("status: got %d, want %d", rec.Code, tc.status)
			}
			if got := rec.Header().Get("Content-Type"); got != "application/json" {
				t.Errorf("content type: got %q", got)
			}
			if got := strings.TrimSpace(rec.Body.String()); got != tc.want {
				t.Errorf("body:\n got %s\nwant %s", got, tc.want)
			}
		})
	}
}

func TestParse_MethodNotAllowed(t *testing.T) {
	h := newServer(t)
	req := httptest.NewRequest(http.MethodGet, "/parse", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
