// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package tinymarkup

// Kind implements enums for tokens
type Kind int

const (
	UNKNOWN Kind = iota

	OpenTag  // <name>
	CloseTag // </name>
	Text     // run of characters that didn't form a tag

	EndOfInput // end of input
)

func (k Kind) String() string {
	switch k {
	case OpenTag:
		return "OpenTag"
	case CloseTag:
		return "CloseTag"
	case Text:
		return "Text"
	case EndOfInput:
		return "EndOfInput"
	}
	return "UNKNOWN"
}
