package literal

import (
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/robinvdvleuten/readshow/parser"
)

type mnemonic struct {
	name string
	code rune
}

// mnemonics maps the first letter of each control code name to its
// candidates, longest first so that SOH wins over SO.
var mnemonics = map[rune][]mnemonic{
	'A': {{"ACK", 0x06}},
	'B': {{"BEL", 0x07}, {"BS", 0x08}},
	'C': {{"CAN", 0x18}, {"CR", 0x0D}},
	'D': {{"DEL", 0x7F}, {"DLE", 0x10}, {"DC1", 0x11}, {"DC2", 0x12}, {"DC3", 0x13}, {"DC4", 0x14}},
	'E': {{"EOT", 0x04}, {"ENQ", 0x05}, {"ETX", 0x03}, {"ETB", 0x17}, {"ESC", 0x1B}, {"EM", 0x19}},
	'F': {{"FF", 0x0C}, {"FS", 0x1C}},
	'G': {{"GS", 0x1D}},
	'H': {{"HT", 0x09}},
	'L': {{"LF", 0x0A}},
	'N': {{"NUL", 0x00}, {"NAK", 0x15}},
	'R': {{"RS", 0x1E}},
	'S': {{"SOH", 0x01}, {"STX", 0x02}, {"SYN", 0x16}, {"SUB", 0x1A}, {"SO", 0x0E}, {"SI", 0x0F}, {"SP", 0x20}},
	'U': {{"US", 0x1F}},
	'V': {{"VT", 0x0B}},
}

// controlNames holds the canonical name of every code below space.
var controlNames = [...]string{
	"NUL", "SOH", "STX", "ETX", "EOT", "ENQ", "ACK", "BEL",
	"BS", "HT", "LF", "VT", "FF", "CR", "SO", "SI",
	"DLE", "DC1", "DC2", "DC3", "DC4", "NAK", "SYN", "ETB",
	"CAN", "EM", "SUB", "ESC", "FS", "GS", "RS", "US",
}

var singleEscapes = map[rune]rune{
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'\\': '\\',
	'"':  '"',
	'\'': '\'',
}

// EscapedChar decodes one possibly escaped character.
func EscapedChar() parser.Parser[rune] {
	return func(in parser.Input) parser.Result[rune] {
		c, size := in.Peek()
		if size == 0 {
			return parser.Failure[rune](in, parser.Soft, "unexpected end of input")
		}
		if c != '\\' {
			return parser.Ok(in.Advance(size), c)
		}
		return escape(in.Advance(size))
	}
}

// escape decodes what follows a backslash. Every failure is hard.
func escape(in parser.Input) parser.Result[rune] {
	c, size := in.Peek()
	if size == 0 {
		return parser.Failure[rune](in, parser.Hard, "unexpected end of input in escape sequence")
	}

	if v, ok := singleEscapes[c]; ok {
		return parser.Ok(in.Advance(size), v)
	}

	switch {
	case c == '^':
		ctrl, n := in.PeekAt(1)
		if n == 0 {
			return parser.Failure[rune](in.Advance(1), parser.Hard, "unexpected end of input in escape sequence")
		}
		if ctrl < '@' || ctrl > '_' {
			return parser.Failure[rune](in, parser.Hard, fmt.Sprintf(`unrecognised escape sequence \^%c`, ctrl))
		}
		return parser.Ok(in.Advance(1+n), ctrl-'@')
	case isDecimalDigit(c):
		return charCode(in, Natural(Decimal))
	case c == 'o':
		return charCode(in.Advance(1), Natural(Octal))
	case c == 'x':
		return charCode(in.Advance(1), Natural(Hex))
	case c >= 'A' && c <= 'Z':
		if candidates, ok := mnemonics[c]; ok {
			return lookupMnemonic(in, candidates)
		}
	}
	return parser.Failure[rune](in, parser.Hard, fmt.Sprintf(`unrecognised escape sequence \%c`, c))
}

func charCode(in parser.Input, digits parser.Parser[*big.Int]) parser.Result[rune] {
	r := parser.Commit(digits)(in)
	if r.Err != nil {
		return parser.Propagate[rune](r)
	}
	if !r.Value.IsInt64() || r.Value.Int64() > utf8.MaxRune {
		return parser.Failure[rune](in, parser.Hard, fmt.Sprintf("character code %s out of range", r.Value))
	}
	return parser.Ok(r.Rest, rune(r.Value.Int64()))
}

func lookupMnemonic(in parser.Input, candidates []mnemonic) parser.Result[rune] {
	names := make([]string, len(candidates))
	for i, m := range candidates {
		if in.HasPrefix(m.name) {
			return parser.Ok(in.Advance(len(m.name)), m.code)
		}
		names[i] = m.name
	}
	return parser.Failure[rune](in, parser.Hard, "expected one of "+strings.Join(names, ", "))
}
