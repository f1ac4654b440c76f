// Package lexer splits printed values into tokens following the lexical rules
// of the show-style syntax.
package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/robinvdvleuten/readshow/literal"
	"github.com/robinvdvleuten/readshow/parser"
)

const (
	punctuation = ",;()[]{}`"
	symbols     = `!@#$%&*+./<=>?\^|:-~`
)

func isPunct(r rune) bool {
	return r < utf8.RuneSelf && strings.IndexByte(punctuation, byte(r)) >= 0
}

func isSymbol(r rune) bool {
	return r < utf8.RuneSelf && strings.IndexByte(symbols, byte(r)) >= 0
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentChar(r rune) bool {
	return r == '_' || r == '\'' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// NextToken skips whitespace and scans one token.
func NextToken(in parser.Input) parser.Result[Token] {
	in = in.SkipSpace()

	c, size := in.Peek()
	if size == 0 {
		return parser.Failure[Token](in, parser.Soft, "end of input")
	}

	switch {
	case c == '\'':
		r := literal.CharLiteral()(in)
		if r.Err != nil {
			return parser.Propagate[Token](r)
		}
		return emit(in, r.Rest, CHAR, []byte(literal.QuoteChar(r.Value)))

	case c == '"':
		r := literal.StringLiteral()(in)
		if r.Err != nil {
			return parser.Propagate[Token](r)
		}
		return emit(in, r.Rest, STRING, []byte(`"`+r.Value+`"`))

	case c == '0':
		if rest, ok := scanRadixLiteral(in); ok {
			return emit(in, rest, NUMBER, in.Until(rest))
		}
		return scanNumber(in)

	case isIdentStart(c):
		rest := parser.ManySatisfy(isIdentChar)(in.Advance(size)).Rest
		return emit(in, rest, IDENT, in.Until(rest))

	case isDigit(c):
		return scanNumber(in)

	case isPunct(c):
		rest := in.Advance(size)
		return emit(in, rest, PUNCT, in.Until(rest))

	case isSymbol(c):
		rest := parser.ManySatisfy(isSymbol)(in).Rest
		return emit(in, rest, SYMBOL, in.Until(rest))
	}

	return parser.Failure[Token](in, parser.Soft, fmt.Sprintf("bad character %s", literal.QuoteChar(c)))
}

func emit(start, rest parser.Input, typ TokenType, text []byte) parser.Result[Token] {
	return parser.Ok(rest, Token{
		Type:  typ,
		Text:  text,
		Start: start.Offset(),
		End:   rest.Offset(),
	})
}

// scanRadixLiteral recognizes 0x and 0o literals. The prefix only counts when
// at least one digit of its radix follows.
func scanRadixLiteral(in parser.Input) (parser.Input, bool) {
	var radix literal.Radix
	switch marker, _ := in.PeekAt(1); marker {
	case 'x', 'X':
		radix = literal.Hex
	case 'o', 'O':
		radix = literal.Octal
	default:
		return in, false
	}

	digits := parser.ManySatisfy(radix.IsDigit)(in.Advance(2))
	if len(digits.Value) == 0 {
		return in, false
	}
	return digits.Rest, true
}

func scanNumber(in parser.Input) parser.Result[Token] {
	num, rest, err := literal.ScanNumber(in)
	if err != nil {
		return parser.Result[Token]{Rest: err.At, Err: err}
	}
	return emit(in, rest, NUMBER, num.Text)
}

// ExpectWord requires the next token to be exactly word.
func ExpectWord(word string) parser.Parser[Token] {
	return func(in parser.Input) parser.Result[Token] {
		r := NextToken(in)
		if r.Err != nil {
			if r.Err.IsHard() {
				return r
			}
			return parser.Failure[Token](in.SkipSpace(), parser.Soft, fmt.Sprintf("expected %q, got %s", word, r.Err.Message))
		}

		if string(r.Value.Text) != word {
			return parser.Failure[Token](in.SkipSpace(), parser.Soft, fmt.Sprintf("expected %q, got %q", word, r.Value.Text))
		}
		return r
	}
}

// ExpectLiteral matches text byte for byte, without skipping whitespace or
// tokenizing.
func ExpectLiteral(text string) parser.Parser[[]byte] {
	return func(in parser.Input) parser.Result[[]byte] {
		if !in.HasPrefix(text) {
			got := in.Bytes()
			if len(got) > len(text) {
				got = got[:len(text)]
			}
			return parser.Failure[[]byte](in, parser.Soft, fmt.Sprintf("expected %q, got %q", text, got))
		}

		rest := in.Advance(len(text))
		return parser.Ok(rest, in.Until(rest))
	}
}

// Lexer tokenizes a whole buffer, tracking line and column per token.
type Lexer struct {
	source   []byte // Source buffer
	filename string // Filename for error reporting
	pos      int    // Byte offset line and column refer to
	line     int    // Current line (1-indexed)
	column   int    // Current column (1-indexed)
	tokens   []Token
}

// NewLexer creates a new lexer for the given source.
func NewLexer(source []byte, filename string) *Lexer {
	return &Lexer{
		source:   source,
		filename: filename,
		line:     1,
		column:   1,
		tokens:   make([]Token, 0, len(source)/4+1),
	}
}

// ScanAll lexes the entire source and returns all tokens followed by EOF.
// On failure the tokens scanned so far are returned with a *parser.ParseError.
func (l *Lexer) ScanAll() ([]Token, error) {
	in := parser.NewInput(l.source)

	for !in.SkipSpace().AtEnd() {
		r := NextToken(in)
		if r.Err != nil {
			return l.tokens, parser.NewParseError(l.filename, r.Err)
		}

		tok := r.Value
		l.advanceTo(tok.Start)
		tok.Line, tok.Column = l.line, l.column
		l.tokens = append(l.tokens, tok)
		in = r.Rest
	}

	l.advanceTo(len(l.source))
	l.tokens = append(l.tokens, Token{
		Type:   EOF,
		Start:  len(l.source),
		End:    len(l.source),
		Line:   l.line,
		Column: l.column,
	})

	return l.tokens, nil
}

// advanceTo moves the line and column counters forward to offset.
func (l *Lexer) advanceTo(offset int) {
	for l.pos < offset {
		r, size := utf8.DecodeRune(l.source[l.pos:])
		if size == 0 {
			return
		}
		l.pos += size
		if r == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
	}
}
