// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package tinymarkup

const (
	// LF is 0x0A or '\n'. It is the only rune that starts a new line
	// for the purpose of diagnostics.
	LF rune = rune(10)

	// EOF is a sentinel for end of input
	EOF rune = rune(-1)
)

func init() {
	for ch := 'a'; ch <= 'z'; ch++ {
		letters[ch] = true
	}
	for ch := 'A'; ch <= 'Z'; ch++ {
		letters[ch] = true
	}
}

var (
	// tag names are restricted to ASCII letters
	letters = [256]bool{}
)

func isletter(ch byte) bool {
	return letters[ch]
}
