// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// LayoutData holds the values shared by every page.
type LayoutData struct {
	Title   string
	Version string
}

// Layout wraps body in the common page chrome.
func Layout(data LayoutData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := data.Title
		if title == "" {
			title = "tinymarkup"
		}
		return h.Doctype(
			h.HTML(h.Lang("en"),
				h.Head(
					h.Meta(h.Charset("utf-8")),
					h.TitleEl(g.Text(title)),
					h.StyleEl(g.Raw(style)),
				),
				h.Body(
					h.Main(component(ctx, body)),
					h.Footer(g.Text("tinymarkup "+data.Version)),
				),
			),
		).Render(w)
	})
}

// component embeds a templ component in a gomponents tree.
func component(ctx context.Context, c templ.Component) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		return c.Render(ctx, w)
	})
}

const style = `body{font-family:sans-serif;margin:2rem auto;max-width:48rem}` +
	`textarea{width:100%;min-height:8rem;font-family:monospace}` +
	`.preview{border:1px solid #ccc;padding:1rem;min-height:2rem}` +
	`.error{color:#b00}` +
	`footer{margin-top:2rem;color:#888;font-size:smaller}`
