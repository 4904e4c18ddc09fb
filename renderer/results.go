// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer

import (
	g "maragu.dev/gomponents"
)

// TagFunc is called once for every tag node, after its children are rendered.
// It returns what the tag should become.
type TagFunc func(tag string, children []g.Node) Result

type action int

const (
	actionDefault action = iota
	actionReplace
	actionUnwrap
	actionRemove
)

// Result tells the renderer what to do with a tag.
// The zero value is Default.
type Result struct {
	action action
	node   g.Node
}

var (
	// Default declines the tag; the renderer emits it verbatim.
	Default = Result{action: actionDefault}
	// Unwrap drops the tag but keeps its children.
	Unwrap = Result{action: actionUnwrap}
	// Remove drops the tag and its children.
	Remove = Result{action: actionRemove}
)

// Replace puts node in place of the tag. A nil node is the same as Remove.
func Replace(node g.Node) Result {
	if node == nil {
		return Remove
	}
	return Result{action: actionReplace, node: node}
}

// Element returns the tag as an element with the same name wrapping the children.
// It is what Default renders when no tag is renamed.
//
// g.El drops the children of HTML void elements such as br and img, so those
// are written as an explicit open tag, the children, and a close tag.
// Element names are letters, digits and hyphens, so they need no escaping.
func Element(tag string, children []g.Node) g.Node {
	if _, ok := voidElements[tag]; !ok {
		return g.El(tag, children...)
	}
	return g.Group{g.Raw("<" + tag + ">"), g.Group(children), g.Raw("</" + tag + ">")}
}

// voidElements matches the names g.El renders without children.
var voidElements = map[string]struct{}{
	"area":    {},
	"base":    {},
	"br":      {},
	"col":     {},
	"command": {},
	"embed":   {},
	"hr":      {},
	"img":     {},
	"input":   {},
	"keygen":  {},
	"link":    {},
	"meta":    {},
	"param":   {},
	"source":  {},
	"track":   {},
	"wbr":     {},
}
