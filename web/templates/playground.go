// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// PlaygroundData is the state of the playground form.
type PlaygroundData struct {
	Markup  string
	Preview g.Node // rendered markup; nil when there is nothing to show
	Error   string // parse error shown above the preview
}

// PlaygroundPage is the full playground page.
func PlaygroundPage(data PlaygroundData, layout LayoutData) templ.Component {
	layout.Title = "tinymarkup playground"
	return Layout(layout, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return g.Group{
			h.H1(g.Text("tinymarkup playground")),
			h.Form(h.Method("get"), h.Action("/"),
				h.Textarea(h.Name("markup"), g.Text(data.Markup)),
				h.Button(h.Type("submit"), g.Text("Render")),
			),
			preview(data),
		}.Render(w)
	}))
}

// Preview is the fragment showing the rendered markup and any parse error.
func Preview(data PlaygroundData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return preview(data).Render(w)
	})
}

func preview(data PlaygroundData) g.Node {
	return g.Group{
		g.If(data.Error != "", h.P(h.Class("error"), g.Text(data.Error))),
		h.Div(h.Class("preview"), data.Preview),
	}
}
