// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package tinymarkup

import (
	"fmt"
	"log/slog"
	"unicode/utf8"
)

// Lexer invariants and coordinate system
//
// The lexer treats input as an immutable UTF-8 byte slice.
//
// Fields:
//   input       - the original []byte
//   length      - len(input)
//
//   r           - the current rune, or EOF when we have read past the end.
//                 Invalid UTF-8 is read as utf8.RuneError with a width of
//                 one byte, so the bytes still land in a Text token untouched.
//
//   posCurrRune - index into input of the first byte of r,
//                 or length when r == EOF.
//   posNextRune - index into input of the first byte of the *next* rune,
//                 or length when r == EOF.
//   anchorPos   - index into input where the current token starts.
//
// Invariants (must always hold):
//   0 <= posCurrRune <= posNextRune <= length
//
//   r == EOF  <=> posCurrRune == posNextRune == length
//
//   r != EOF  => posCurrRune < length && posNextRune > posCurrRune
//                and input[posCurrRune:posNextRune] encodes exactly r.
//
// Tag patterns:
//
//   - An open tag is "<" letters ">" and a close tag is "</" letters ">",
//     where letters is [A-Za-z]+. Both patterns are pure ASCII, so matchTag
//     checks them against the bytes at posCurrRune without moving the lexer.
//   - The open tag pattern is tried first, then the close tag pattern.
//     Anything else is consumed one rune at a time as text, and a run of
//     text ends at the first position where either pattern matches.
//
// Every byte of the input belongs to exactly one token, so concatenating
// the lexemes of all tokens reproduces the input.

type Lexer struct {
	name        string // name of the input source
	r           rune   // current rune
	line        int    // line number of current rune
	column      int    // column number of current rune
	posCurrRune int    // position of current rune
	posNextRune int    // position of next rune
	length      int    // length of input buffer
	input       []byte

	anchorPos    int
	anchorLine   int
	anchorColumn int

	// returns a canonical end of input token
	endToken *Token

	// logging
	logger     *slog.Logger
	tokenCount int
}

// NewLexer returns a lexer for input. The name is only used in log messages.
// The logger may be nil.
func NewLexer(name string, input []byte, logger *slog.Logger) *Lexer {
	l := &Lexer{
		name:   name,
		input:  input,
		length: len(input),
		line:   1,
		logger: logger,
	}
	// read the first character to initialize the lexer.
	l.advance()
	return l
}

// Tokenize scans the entire input and returns the OpenTag, CloseTag and Text
// tokens in input order. It never fails; empty input returns an empty slice.
func Tokenize(input string) []*Token {
	return NewLexer("", []byte(input), nil).ScanAll()
}

// ScanAll returns every remaining token, not including the end of input token.
func (l *Lexer) ScanAll() []*Token {
	var tokens []*Token
	for tok := l.Scan(); !tok.Is(EndOfInput); tok = l.Scan() {
		tokens = append(tokens, tok)
	}
	return tokens
}

// Scan returns the next token from the input buffer.
//
// Once we reach end of input, we always return the same EndOfInput token.
func (l *Lexer) Scan() *Token {
	if l.iseof() {
		if l.endToken == nil {
			l.seteof()
		}
		return l.endToken
	}

	l.setAnchor()

	var tok *Token
	if kind, name, end := l.matchTag(); kind != UNKNOWN {
		for l.posCurrRune < end {
			l.advance()
		}
		tok = l.token(kind, name)
	} else {
		// consume at least one rune, then keep going until a tag starts
		l.advance()
		for !l.iseof() && !l.atTag() {
			l.advance()
		}
		tok = l.token(Text, string(l.input[l.anchorPos:l.posCurrRune]))
	}

	l.tokenCount++
	l.debug("%d: %s %q", l.tokenCount, tok.Kind, tok.Value)
	return tok
}

// token returns a token running from the anchor to the current rune.
func (l *Lexer) token(kind Kind, value string) *Token {
	return &Token{
		Position: Position{
			Line:   l.anchorLine,
			Column: l.anchorColumn,
			Start:  l.anchorPos,
		},
		End:   l.posCurrRune,
		Kind:  kind,
		Value: value,
	}
}

// atTag reports whether an open or close tag starts at the current rune.
func (l *Lexer) atTag() bool {
	if l.r != '<' {
		return false
	}
	kind, _, _ := l.matchTag()
	return kind != UNKNOWN
}

// matchTag checks for a tag at the current rune without advancing the input.
// It returns UNKNOWN if there is no tag. Otherwise, it returns the kind of tag,
// the tag name, and the offset of the first byte after the tag.
func (l *Lexer) matchTag() (kind Kind, name string, end int) {
	pos := l.posCurrRune
	if pos >= l.length || l.input[pos] != '<' {
		return UNKNOWN, "", 0
	}
	pos, kind = pos+1, OpenTag
	if pos < l.length && l.input[pos] == '/' {
		pos, kind = pos+1, CloseTag
	}
	start := pos
	for pos < l.length && isletter(l.input[pos]) {
		pos++
	}
	if pos == start || pos >= l.length || l.input[pos] != '>' {
		return UNKNOWN, "", 0
	}
	return kind, string(l.input[start:pos]), pos + 1
}

// setAnchor marks the start of the current token.
func (l *Lexer) setAnchor() {
	l.anchorPos = l.posCurrRune
	l.anchorLine = l.line
	l.anchorColumn = l.column
}

// advance moves to the next rune and updates line/col.
// On end of input, it sets r == EOF and both positions to length and returns.
func (l *Lexer) advance() {
	// update line/col wrt the *current* rune before stepping
	if l.r == LF {
		l.line++
		l.column = 1
	} else if l.r != EOF {
		l.column++
	}

	// already at or past the end?
	if l.posNextRune >= l.length {
		l.posCurrRune, l.posNextRune = l.length, l.length
		l.r = EOF
		return
	}

	l.posCurrRune = l.posNextRune

	// read the next rune, optimizing for ASCII input.
	r, w := rune(l.input[l.posCurrRune]), 1
	if r >= utf8.RuneSelf {
		// the current rune must be decoded
		r, w = utf8.DecodeRune(l.input[l.posCurrRune:])
	}
	l.posNextRune = l.posCurrRune + w
	l.r = r
}

func (l *Lexer) iseof() bool {
	return l.r == EOF
}

func (l *Lexer) debug(format string, args ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Debug(fmt.Sprintf("%s:%d:%d %s", l.name, l.anchorLine, l.anchorColumn, fmt.Sprintf(format, args...)))
}

// seteof updates the Lexer state to enforce the end of input invariants:
// * r is EOF
// * posCurrRune = posNextRune = length
// * endToken is set to the canonical EOF token
func (l *Lexer) seteof() {
	l.r = EOF
	l.posCurrRune = l.length
	l.posNextRune = l.length
	if l.endToken == nil {
		l.endToken = &Token{
			Position: Position{
				Line:   l.line,
				Column: l.column,
				Start:  l.length,
			},
			End:  l.length,
			Kind: EndOfInput,
		}
	}
}
