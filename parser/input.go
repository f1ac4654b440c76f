package parser

// Input is a zero-copy view over a source buffer.
//
// The view approach:
// - The source buffer is never copied or modified
// - Consuming input returns a new view with a larger offset
// - Every view remembers the full source for error positions
// - Views of one run share the cache used by Memo

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

// Input is an immutable view of the unconsumed part of a source buffer.
type Input struct {
	src  []byte     // Full source buffer
	off  int        // Byte offset of the first unconsumed byte
	memo *memoTable // Results cached by Memo, shared by every view of src
}

// NewInput creates a view over the whole of src.
func NewInput(src []byte) Input {
	return Input{src: src, memo: newMemoTable()}
}

// NewInputString creates a view over a copy of s.
func NewInputString(s string) Input {
	return NewInput([]byte(s))
}

// Bytes returns the unconsumed bytes. No allocation occurs.
func (in Input) Bytes() []byte {
	return in.src[in.off:]
}

// String materializes the unconsumed bytes as a string.
func (in Input) String() string {
	return string(in.src[in.off:])
}

// Source returns the full buffer the view was created from.
func (in Input) Source() []byte {
	return in.src
}

// Offset returns the byte offset of the view into its source.
func (in Input) Offset() int {
	return in.off
}

// Len returns the number of unconsumed bytes.
func (in Input) Len() int {
	return len(in.src) - in.off
}

// AtEnd reports whether the view is empty.
func (in Input) AtEnd() bool {
	return in.off >= len(in.src)
}

// Advance returns a view with n more bytes consumed, clamped to the end.
func (in Input) Advance(n int) Input {
	off := in.off + n
	if off > len(in.src) {
		off = len(in.src)
	}
	return Input{src: in.src, off: off, memo: in.memo}
}

// Peek decodes the next character without consuming it.
// At end of input it returns utf8.RuneError and a size of 0.
func (in Input) Peek() (rune, int) {
	if in.AtEnd() {
		return utf8.RuneError, 0
	}
	if c := in.src[in.off]; c < utf8.RuneSelf {
		return rune(c), 1
	}
	return utf8.DecodeRune(in.src[in.off:])
}

// PeekAt decodes the character n bytes ahead without consuming anything.
func (in Input) PeekAt(n int) (rune, int) {
	return in.Advance(n).Peek()
}

// HasPrefix reports whether the unconsumed bytes start with s.
func (in Input) HasPrefix(s string) bool {
	rest := in.src[in.off:]
	return len(rest) >= len(s) && string(rest[:len(s)]) == s
}

// SkipSpace returns a view past any leading whitespace.
func (in Input) SkipSpace() Input {
	for !in.AtEnd() {
		r, size := in.Peek()
		if !unicode.IsSpace(r) {
			break
		}
		in = in.Advance(size)
	}
	return in
}

// Until returns the bytes consumed between in and a later view of the same source.
func (in Input) Until(later Input) []byte {
	if later.off < in.off {
		return nil
	}
	return in.src[in.off:later.off]
}

// Position computes the line and column of the view's offset.
// Lines and columns are 1-indexed; columns count characters, not bytes.
func (in Input) Position() Position {
	prefix := in.src[:in.off]
	line := 1 + bytes.Count(prefix, []byte{'\n'})
	lineStart := bytes.LastIndexByte(prefix, '\n') + 1

	return Position{
		Offset: in.off,
		Line:   line,
		Column: 1 + utf8.RuneCount(prefix[lineStart:]),
	}
}
