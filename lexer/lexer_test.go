package lexer

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/robinvdvleuten/readshow/parser"
)

func scan(t *testing.T, input string) []Token {
	t.Helper()
	tokens, err := NewLexer([]byte(input), "test").ScanAll()
	assert.NoError(t, err)
	return tokens
}

func TestLexerTokenTypes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []TokenType
	}{
		{name: "empty", input: "", want: []TokenType{EOF}},
		{name: "whitespace only", input: " \t\n ", want: []TokenType{EOF}},
		{name: "constructor application", input: "Just 5", want: []TokenType{IDENT, NUMBER, EOF}},
		{name: "tuple", input: "(1,'a')", want: []TokenType{PUNCT, NUMBER, PUNCT, CHAR, PUNCT, EOF}},
		{name: "list", input: `["x", "y"]`, want: []TokenType{PUNCT, STRING, PUNCT, STRING, PUNCT, EOF}},
		{name: "record", input: "P {x = 1}", want: []TokenType{IDENT, PUNCT, IDENT, SYMBOL, NUMBER, PUNCT, EOF}},
		{name: "negative number", input: "-3", want: []TokenType{SYMBOL, NUMBER, EOF}},
		{name: "operator run", input: "a :| b", want: []TokenType{IDENT, SYMBOL, IDENT, EOF}},
		{name: "backquote", input: "`div`", want: []TokenType{PUNCT, IDENT, PUNCT, EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := scan(t, tt.input)

			assert.Equal(t, len(tt.want), len(tokens), "token count mismatch")
			for i, tok := range tokens {
				assert.Equal(t, tt.want[i], tok.Type, "token type mismatch")
			}
		})
	}
}

func TestNextTokenText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		typ   TokenType
		want  string
		rest  string
	}{
		{name: "identifier", input: "  foo'_1 bar", typ: IDENT, want: "foo'_1", rest: " bar"},
		{name: "underscore", input: "_x", typ: IDENT, want: "_x"},
		{name: "unicode identifier", input: "λx", typ: IDENT, want: "λx"},
		{name: "symbols", input: "->x", typ: SYMBOL, want: "->", rest: "x"},
		{name: "single punctuation", input: "((", typ: PUNCT, want: "(", rest: "("},
		{name: "integer", input: "42,", typ: NUMBER, want: "42", rest: ","},
		{name: "float", input: "3.14e-2)", typ: NUMBER, want: "3.14e-2", rest: ")"},
		{name: "bare trailing dot", input: "1.", typ: NUMBER, want: "1", rest: "."},
		{name: "hex", input: "0x1Fz", typ: NUMBER, want: "0x1F", rest: "z"},
		{name: "octal", input: "0O17", typ: NUMBER, want: "0O17"},
		{name: "hex prefix without digits", input: "0xg", typ: NUMBER, want: "0", rest: "xg"},
		{name: "leading zero", input: "007", typ: NUMBER, want: "007"},
		{name: "char", input: `'a'`, typ: CHAR, want: `'a'`},
		{name: "char rendered", input: `'\x41'`, typ: CHAR, want: `'A'`},
		{name: "char mnemonic", input: `'\^A'`, typ: CHAR, want: `'\SOH'`},
		{name: "string", input: `"a\tb" x`, typ: STRING, want: "\"a\tb\"", rest: " x"},
		{name: "string empty escape", input: `"\SO\&H"`, typ: STRING, want: "\"\x0eH\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NextToken(parser.NewInputString(tt.input))
			assert.False(t, r.Failed(), "%v", r.Err)
			assert.Equal(t, tt.typ, r.Value.Type)
			assert.Equal(t, tt.want, r.Value.String())
			assert.Equal(t, tt.rest, r.Rest.String())
		})
	}
}

func TestNextTokenFailures(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		severity parser.Severity
		want     string
	}{
		{name: "end of input", input: "   ", severity: parser.Soft, want: "end of input"},
		{name: "bad character", input: "€", severity: parser.Soft, want: `bad character '\8364'`},
		{name: "unterminated string", input: `"abc`, severity: parser.Hard, want: "unterminated string literal"},
		{name: "malformed exponent", input: "1e+", severity: parser.Hard, want: "malformed exponent in numeric literal"},
		{name: "bad escape", input: `'\Q'`, severity: parser.Hard, want: `unrecognised escape sequence \Q`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NextToken(parser.NewInputString(tt.input))
			assert.True(t, r.Failed())
			assert.Equal(t, tt.severity, r.Err.Severity)
			assert.Equal(t, tt.want, r.Err.Message)
		})
	}
}

func TestTokenZeroCopy(t *testing.T) {
	source := []byte("Left  value")
	r := NextToken(parser.NewInput(source))
	assert.False(t, r.Failed())

	source[0] = 'R'
	assert.Equal(t, "Reft", r.Value.String())
	assert.Equal(t, 0, r.Value.Start)
	assert.Equal(t, 4, r.Value.Len())
}

func TestExpectWord(t *testing.T) {
	r := ExpectWord("Just").RunString("  Just 1")
	assert.False(t, r.Failed())
	assert.Equal(t, " 1", r.Rest.String())

	r = ExpectWord("Just").RunString("Nothing")
	assert.Equal(t, parser.Soft, r.Err.Severity)
	assert.Equal(t, `expected "Just", got "Nothing"`, r.Err.Message)

	r = ExpectWord("Foo").RunString("Foobar")
	assert.True(t, r.Failed())

	r = ExpectWord("Just").RunString("")
	assert.Equal(t, `expected "Just", got end of input`, r.Err.Message)
}

func TestExpectLiteral(t *testing.T) {
	r := ExpectLiteral("Foo").RunString("Foobar")
	assert.False(t, r.Failed())
	assert.Equal(t, "Foo", string(r.Value))
	assert.Equal(t, "bar", r.Rest.String())

	r = ExpectLiteral("Foo").RunString(" Foo")
	assert.Equal(t, `expected "Foo", got " Fo"`, r.Err.Message)
}

func TestLexerPositions(t *testing.T) {
	tokens := scan(t, "Just\n  (λ, 1)")

	want := []struct {
		text   string
		line   int
		column int
	}{
		{"Just", 1, 1},
		{"(", 2, 3},
		{"λ", 2, 4},
		{",", 2, 5},
		{"1", 2, 7},
		{")", 2, 8},
		{"", 2, 9},
	}

	assert.Equal(t, len(want), len(tokens))
	for i, w := range want {
		assert.Equal(t, w.text, tokens[i].String())
		assert.Equal(t, w.line, tokens[i].Line, "line of %q", w.text)
		assert.Equal(t, w.column, tokens[i].Column, "column of %q", w.text)
	}
}

func TestLexerError(t *testing.T) {
	tokens, err := NewLexer([]byte("a\n  \"open"), "value.txt").ScanAll()
	assert.Error(t, err)
	assert.Equal(t, 1, len(tokens))

	perr, ok := err.(*parser.ParseError)
	assert.True(t, ok)
	assert.Equal(t, "value.txt", perr.Pos.Filename)
	assert.Equal(t, 2, perr.Pos.Line)
	assert.Contains(t, perr.Message, "unterminated string literal")
}
