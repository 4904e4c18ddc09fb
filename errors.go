// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package tinymarkup

import (
	"fmt"
	"log/slog"
)

// StructuralMismatch is returned when the tags in the input do not nest.
//
// Expected is the name of the innermost open tag, or empty if no tag was open.
// Found is the name of the close tag that did not match, or empty if the
// input ended while Expected was still open.
type StructuralMismatch struct {
	Expected string
	Found    string
	Span     Span // the close tag, or the unclosed open tag at end of input
	Opened   Span // the innermost open tag; zero if no tag was open
}

func (e *StructuralMismatch) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("%d:%d: unexpected </%s>: no tag is open", e.Span.Line, e.Span.Column, e.Found)
	} else if e.Found == "" {
		return fmt.Sprintf("%d:%d: <%s> is never closed", e.Span.Line, e.Span.Column, e.Expected)
	}
	return fmt.Sprintf("%d:%d: expected </%s>, found </%s>", e.Span.Line, e.Span.Column, e.Expected, e.Found)
}

// Diagnostic returns the mismatch as an error diagnostic.
func (e *StructuralMismatch) Diagnostic() Diagnostic {
	d := Diagnostic{
		Severity: slog.LevelError,
		Span:     e.Span,
	}
	if e.Expected == "" {
		d.Message = fmt.Sprintf("unexpected </%s>: no tag is open", e.Found)
	} else if e.Found == "" {
		d.Message = fmt.Sprintf("<%s> is never closed", e.Expected)
		d.Notes = append(d.Notes, fmt.Sprintf("add </%s> before the end of the input", e.Expected))
	} else {
		d.Message = fmt.Sprintf("expected </%s>, found </%s>", e.Expected, e.Found)
		d.Notes = append(d.Notes, fmt.Sprintf("<%s> was opened at %d:%d", e.Expected, e.Opened.Line, e.Opened.Column))
	}
	return d
}
