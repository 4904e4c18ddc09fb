// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package tinymarkup_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/KenyStev/tinymarkup"
	"github.com/fatih/color"
)

func TestPrintDiagnostic(t *testing.T) {
	color.NoColor = true

	for _, tc := range []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "mismatch",
			input: "abc<a><b></c>",
			want: "msg.txt:1:10: error: expected </b>, found </c>\n" +
				"    abc<a><b></c>\n" +
				"             ^\n" +
				"    note: <b> was opened at 1:7\n",
		},
		{
			name:  "second line",
			input: "first\nsecond</x>\nthird",
			want: "msg.txt:2:7: error: unexpected </x>: no tag is open\n" +
				"    second</x>\n" +
				"          ^\n",
		},
		{
			name:  "wide runes",
			input: "🐞漢<i>",
			want: "msg.txt:1:3: error: <i> is never closed\n" +
				"    🐞漢<i>\n" +
				"        ^\n" +
				"    note: add </i> before the end of the input\n",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tinymarkup.Parse(tc.input)
			var mismatch *tinymarkup.StructuralMismatch
			if !errors.As(err, &mismatch) {
				t.Fatalf("parse: got %v, want *StructuralMismatch", err)
			}
			var buf bytes.Buffer
			tinymarkup.PrintDiagnostic(&buf, mismatch.Diagnostic(), "msg.txt", []byte(tc.input))
			if got := buf.String(); got != tc.want {
				t.Errorf("got\n%s\nwant\n%s", got, tc.want)
			}
		})
	}
}
