// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package tinymarkup

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Diagnostic represents a parse error/warning
// with a span in the original source.
type Diagnostic struct {
	Severity slog.Level // Error, Warning, Info
	Message  string     // "expected </b>, found </c>"
	Span     Span       // where in the input it occurred
	Notes    []string   // optional additional help messages
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	caretColor   = color.New(color.FgGreen, color.Bold)
)

func severityColor(level slog.Level) *color.Color {
	switch {
	case level >= slog.LevelError:
		return errorColor
	case level >= slog.LevelWarn:
		return warningColor
	}
	return infoColor
}

// PrintDiagnostic writes the diagnostic, the line it occurred on, and a caret
// under the start of the span. Only the first line of a multi-line span is shown.
//
// Colors follow color.NoColor, which is set when stdout is not a terminal.
func PrintDiagnostic(w io.Writer, diag Diagnostic, filename string, src []byte) {
	// Header: file:line:column: error: message
	span := diag.Span
	_, _ = fmt.Fprintf(w, "%s:%d:%d: %s: %s\n",
		filename, span.Line, span.Column,
		severityColor(diag.Severity).Sprint(strings.ToLower(diag.Severity.String())), diag.Message)

	line, lineStart := findLine(src, span.Start)
	_, _ = fmt.Fprintf(w, "    %s\n", line)

	// caret underline, padded to the display width of the text before the span
	prefix := src[lineStart:min(span.Start, lineStart+len(line))]
	_, _ = fmt.Fprintf(w, "    %s%s\n", caretPadding(prefix), caretColor.Sprint("^"))

	// Notes
	for _, note := range diag.Notes {
		_, _ = fmt.Fprintf(w, "    note: %s\n", note)
	}
}

// findLine returns the line containing the start byte and the offset of the
// first byte of that line. The returned line does not include the new-line.
// If start is at the end of the input, the last line is returned.
func findLine(src []byte, start int) ([]byte, int) {
	if start > len(src) {
		start = len(src)
	}

	// find the line start (backward scan from start)
	lineStart := 0
	for i := start - 1; i >= 0; i-- {
		if src[i] == '\n' {
			lineStart = i + 1
			break
		}
	}

	// find the line end (forward scan from start)
	lineEnd := len(src)
	for i := start; i < len(src); i++ {
		if src[i] == '\n' {
			lineEnd = i
			break
		}
	}

	return src[lineStart:lineEnd], lineStart
}

// caretPadding returns the blanks that put a caret under the rune following b.
// Tabs are kept as tabs and wide runes get as many spaces as the cells they use.
func caretPadding(b []byte) string {
	var sb strings.Builder
	for len(b) != 0 {
		// b is not empty, so DecodeRune will always return a width of 1 or more
		r, w := utf8.DecodeRune(b)
		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}
		b = b[w:]
	}
	return sb.String()
}
