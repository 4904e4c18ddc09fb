// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer_test

import (
	"strings"
	"testing"

	"github.com/KenyStev/tinymarkup"
	"github.com/KenyStev/tinymarkup/renderer"
	g "maragu.dev/gomponents"
)

func mustRenderer(t *testing.T, options ...renderer.Option) *renderer.Renderer {
	t.Helper()
	r, err := renderer.New(options...)
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	return r
}

func render(t *testing.T, r *renderer.Renderer, input string) string {
	t.Helper()
	got, err := r.String(input)
	if err != nil {
		t.Fatalf("render %q: %v", input, err)
	}
	return got
}

// only renames the tags it is given, the rest are emitted verbatim
func renameTo(from, to string) renderer.TagFunc {
	return func(tag string, children []g.Node) renderer.Result {
		if tag == from {
			return renderer.Replace(g.El(to, children...))
		}
		return renderer.Default
	}
}

func TestRenderer_Nodes(t *testing.T) {
	nodes, err := tinymarkup.Parse("abc<a>a</a>bc<a>de</a>")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	r := mustRenderer(t, renderer.WithTagFunc(renameTo("a", "strong")))

	var sb strings.Builder
	if err := r.Nodes(nodes).Render(&sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	if got, want := sb.String(), "abc<strong>a</strong>bc<strong>de</strong>"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderer_Default(t *testing.T) {
	r := mustRenderer(t)
	for _, tc := range []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "verbatim", input: "abc<strong>a</strong>bcde", want: "abc<strong>a</strong>bcde"},
		{name: "unicode", input: "ěšč<a>./\\</a>🐞<a>🏢☠️</a>", want: "ěšč<a>./\\</a>🐞<a>🏢☠️</a>"},
		{
			name:  "broken tags are escaped",
			input: "abc<a><b>><>>/</</b>beh<ind</a>",
			want:  "abc<a><b>&gt;&lt;&gt;&gt;/&lt;/</b>beh&lt;ind</a>",
		},
		{name: "mismatch falls back to text", input: "abc<a><b></c>", want: "abc&lt;a&gt;&lt;b&gt;&lt;/c&gt;"},
		{name: "unclosed falls back to text", input: "x <i>y & z", want: "x &lt;i&gt;y &amp; z"},
		{name: "void names keep children", input: "<br>x</br>", want: "<br>x</br>"},
		{name: "void name between text", input: "a<img>alt & text</img>b", want: "a<img>alt &amp; text</img>b"},
		{name: "nested void names", input: "<input><b>secret</b><hr></hr></input>", want: "<input><b>secret</b><hr></hr></input>"},
		{name: "void name check is exact", input: "<BR>x</BR>", want: "<BR>x</BR>"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := render(t, r, tc.input); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRenderer_TagFunc(t *testing.T) {
	r := mustRenderer(t, renderer.WithTagFunc(renameTo("strong", "i")))
	if got, want := render(t, r, "abc<strong>a</strong>bcde"), "abc<i>a</i>bcde"; got != want {
		t.Errorf("strong: got %q, want %q", got, want)
	}

	r = mustRenderer(t, renderer.WithTagFunc(renameTo("a", "i")))
	if got, want := render(t, r, "ěšč<a>./\\</a>🐞<a>🏢☠️</a>"), "ěšč<i>./\\</i>🐞<i>🏢☠️</i>"; got != want {
		t.Errorf("unicode: got %q, want %q", got, want)
	}
}

func TestRenderer_ReplaceRemoveUnwrap(t *testing.T) {
	const input = "<ooo>inner</ooo><remove>invi<b>s</b>ible</remove><b>left in</b>"

	r := mustRenderer(t, renderer.WithTagFunc(func(tag string, children []g.Node) renderer.Result {
		switch tag {
		case "ooo":
			return renderer.Replace(g.El("c", children...))
		case "remove":
			return renderer.Remove
		}
		return renderer.Default
	}))
	if got, want := render(t, r, input), "<c>inner</c><b>left in</b>"; got != want {
		t.Errorf("remove: got %q, want %q", got, want)
	}

	r = mustRenderer(t, renderer.WithTagFunc(func(tag string, children []g.Node) renderer.Result {
		if tag == "b" {
			return renderer.Replace(g.El("bbb", children...))
		}
		return renderer.Unwrap
	}))
	if got, want := render(t, r, input), "innerinvi<bbb>s</bbb>ible<bbb>left in</bbb>"; got != want {
		t.Errorf("unwrap: got %q, want %q", got, want)
	}

	r = mustRenderer(t, renderer.WithTagFunc(func(tag string, children []g.Node) renderer.Result {
		return renderer.Replace(nil)
	}))
	if got, want := render(t, r, "a<b>b</b>c"), "ac"; got != want {
		t.Errorf("replace nil: got %q, want %q", got, want)
	}
}

func TestRenderer_WithTags(t *testing.T) {
	r := mustRenderer(t,
		renderer.WithTags(map[string]string{"b": "strong", "i": "em"}),
		renderer.WithTagFunc(func(tag string, children []g.Node) renderer.Result {
			if tag == "i" {
				return renderer.Unwrap
			}
			return renderer.Default
		}),
	)
	if got, want := render(t, r, "<b>bold <i>it</i></b> <u>u</u>"), "<strong>bold it</strong> <u>u</u>"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	for _, tags := range []map[string]string{
		{"b": ""},
		{"": "strong"},
		{"b": "1b"},
		{"b": "b onclick=x"},
		{"b": "b><script"},
	} {
		if _, err := renderer.New(renderer.WithTags(tags)); err == nil {
			t.Errorf("mapping %v: got nil, want error", tags)
		}
	}
	if _, err := renderer.New(renderer.WithTags(map[string]string{"h": "h1", "x": "my-tag"})); err != nil {
		t.Errorf("digits and hyphens: got %v, want nil", err)
	}

	r = mustRenderer(t, renderer.WithTags(map[string]string{"nl": "br"}))
	if got, want := render(t, r, "a<nl>b</nl>c"), "a<br>b</br>c"; got != want {
		t.Errorf("renamed to void: got %q, want %q", got, want)
	}
}
