package literal

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/robinvdvleuten/readshow/parser"
)

// CharLiteral decodes a single quoted character such as 'x' or '\SOH'.
func CharLiteral() parser.Parser[rune] {
	body := parser.Commit(EscapedChar())
	return func(in parser.Input) parser.Result[rune] {
		if !in.HasPrefix("'") {
			return parser.Failure[rune](in, parser.Soft, "expected a character literal")
		}
		start := in.Advance(1)
		if start.HasPrefix("'") {
			return parser.Failure[rune](start, parser.Hard, "empty character literal")
		}

		r := body(start)
		if r.Err != nil {
			return r
		}
		if !r.Rest.HasPrefix("'") {
			return parser.Failure[rune](r.Rest, parser.Hard, "unterminated character literal")
		}
		return parser.Ok(r.Rest.Advance(1), r.Value)
	}
}

// StringLiteral decodes a double quoted string, resolving escapes, the empty
// escape \& and string gaps. Once the opening quote is consumed every failure
// is hard.
func StringLiteral() parser.Parser[string] {
	return func(in parser.Input) parser.Result[string] {
		if !in.HasPrefix(`"`) {
			return parser.Failure[string](in, parser.Soft, "expected a string literal")
		}

		var sb strings.Builder
		cur := in.Advance(1)
		for {
			c, size := cur.Peek()
			switch {
			case size == 0:
				return parser.Failure[string](cur, parser.Hard, "unterminated string literal")
			case c == '"':
				return parser.Ok(cur.Advance(1), sb.String())
			case c != '\\':
				// Copy the plain run up to the next quote or backslash.
				start := cur
				for size != 0 && c != '"' && c != '\\' {
					cur = cur.Advance(size)
					c, size = cur.Peek()
				}
				sb.Write(start.Until(cur))
				continue
			}

			next, n := cur.PeekAt(1)
			switch {
			case next == '&':
				cur = cur.Advance(1 + n)
			case n > 0 && unicode.IsSpace(next):
				gap := cur.Advance(1).SkipSpace()
				if !gap.HasPrefix(`\`) {
					return parser.Failure[string](gap, parser.Hard, "invalid string gap")
				}
				cur = gap.Advance(1)
			default:
				r := escape(cur.Advance(1))
				if r.Err != nil {
					return parser.Propagate[string](r)
				}
				sb.WriteRune(r.Value)
				cur = r.Rest
			}
		}
	}
}

// QuoteChar renders r as a character literal in the printed form.
func QuoteChar(r rune) string {
	if r == '\'' {
		return `'\''`
	}
	if r == '"' {
		return `'"'`
	}
	return "'" + escapeChar(r) + "'"
}

// QuoteString renders s as a string literal in the printed form.
func QuoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')

	runes := []rune(s)
	for i, r := range runes {
		if r == '"' {
			sb.WriteString(`\"`)
			continue
		}
		esc := escapeChar(r)
		sb.WriteString(esc)
		if i+1 < len(runes) && needsEmptyEscape(esc, runes[i+1]) {
			sb.WriteString(`\&`)
		}
	}

	sb.WriteByte('"')
	return sb.String()
}

// needsEmptyEscape reports whether an escape followed by next would be read
// back differently, as in "\SO" followed by 'H' or "\1" followed by '2'.
func needsEmptyEscape(esc string, next rune) bool {
	if len(esc) < 2 || esc[0] != '\\' {
		return false
	}
	switch {
	case esc == `\SO`:
		return next == 'H'
	case isDecimalDigit(rune(esc[1])):
		return isDecimalDigit(next)
	}
	return false
}

func escapeChar(r rune) string {
	if r < 0 {
		r = unicode.ReplacementChar
	}

	switch {
	case r == '\\':
		return `\\`
	case r == 0x7F:
		return `\DEL`
	case r > 0x7F:
		return `\` + strconv.Itoa(int(r))
	case r >= ' ':
		return string(r)
	}

	for letter, v := range singleEscapes {
		if v == r && letter >= 'a' && letter <= 'v' {
			return `\` + string(letter)
		}
	}
	return `\` + controlNames[r]
}
