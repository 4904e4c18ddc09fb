// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package templates_test

import (
	"context"
	"strings"
	"testing"

	"github.com/KenyStev/tinymarkup/web/templates"
	g "maragu.dev/gomponents"
)

func TestPreview(t *testing.T) {
	for _, tc := range []struct {
		name string
		data templates.PlaygroundData
		want string
	}{
		{name: "empty", data: templates.PlaygroundData{}, want: `<div class="preview"></div>`},
		{
			name: "preview",
			data: templates.PlaygroundData{Preview: g.Group{g.Text("a "), g.El("b", g.Text("x"))}},
			want: `<div class="preview">a <b>x</b></div>`,
		},
		{
			name: "error is escaped",
			data: templates.PlaygroundData{Error: `<x> & "y"`, Preview: g.Text("<x>")},
			want: `<p class="error">&lt;x&gt; &amp; &#34;y&#34;</p><div class="preview">&lt;x&gt;</div>`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var sb strings.Builder
			if err := templates.Preview(tc.data).Render(context.Background(), &sb); err != nil {
				t.Fatalf("render: %v", err)
			}
			if got := sb.String(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPlaygroundPage(t *testing.T) {
	data := templates.PlaygroundData{Markup: `</textarea><script>alert("x")</script>`}
	var sb strings.Builder
	if err := templates.PlaygroundPage(data, templates.LayoutData{Version: "0.1.0"}).Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	page := sb.String()

	if want := `<!doctype html><html lang="en"><head><meta charset="utf-8"><title>tinymarkup playground</title>`; !strings.HasPrefix(page, want) {
		t.Errorf("head: got %q, want prefix %q", page[:min(len(page), len(want))], want)
	}
	for _, want := range []string{
		`<form method="get" action="/">`,
		`<textarea name="markup">&lt;/textarea&gt;&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;</textarea>`,
		`<footer>tinymarkup 0.1.0</footer></body></html>`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page: missing %q", want)
		}
	}
	if strings.Contains(page, "<script>") {
		t.Errorf("page: markup was not escaped")
	}
}
