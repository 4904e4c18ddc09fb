// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package tinymarkup

/*
Invariants:
 * The token slice is never copied, sliced or modified. The builder walks it
   once with a single cursor, so every token is visited exactly once.
 * The stack holds one frame per open tag, innermost last, plus the root
   frame at the bottom. The root frame has no open token.
 * A frame owns the nodes collected since its open tag. When the matching
   close tag arrives, the frame is popped and becomes a TagNode appended to
   the frame below it.
 * A close tag that does not match the innermost open tag, or that arrives
   when only the root frame is left, stops the build. So does reaching the
   end of the tokens with any tag still open. No partial tree is returned.
 * The stack replaces recursion, so deep nesting costs heap, not call stack.
*/

type frame struct {
	open  *Token // nil for the root frame
	nodes []Node
}

// Build reconciles tokens into a forest of nodes.
//
// It returns a *StructuralMismatch if the tags do not nest.
// An EndOfInput token, if present, ends the build.
func Build(tokens []*Token) ([]Node, error) {
	stack := []*frame{{}}

scanning:
	for cursor := 0; cursor < len(tokens); cursor++ {
		tok, top := tokens[cursor], stack[len(stack)-1]

		switch tok.Kind {
		case Text:
			top.nodes = append(top.nodes, &TextNode{Text: tok.Value, span: tok.Span()})
		case OpenTag:
			stack = append(stack, &frame{open: tok})
		case CloseTag:
			if top.open == nil {
				return nil, &StructuralMismatch{Found: tok.Value, Span: tok.Span()}
			} else if top.open.Value != tok.Value {
				return nil, &StructuralMismatch{
					Expected: top.open.Value,
					Found:    tok.Value,
					Span:     tok.Span(),
					Opened:   top.open.Span(),
				}
			}
			stack = stack[:len(stack)-1]
			parent := stack[len(stack)-1]
			parent.nodes = append(parent.nodes, &TagNode{
				Name:     top.open.Value,
				Children: top.nodes,
				span:     spanFromTokens(top.open, tok),
			})
		case EndOfInput:
			break scanning
		default:
			panic("assert(tok.Kind is OpenTag, CloseTag, Text or EndOfInput)")
		}
	}

	if top := stack[len(stack)-1]; top.open != nil {
		return nil, &StructuralMismatch{
			Expected: top.open.Value,
			Span:     top.open.Span(),
			Opened:   top.open.Span(),
		}
	}
	return stack[0].nodes, nil
}
