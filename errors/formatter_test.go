package errors

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/robinvdvleuten/readshow/parser"
)

func parseError(t *testing.T, p parser.Parser[rune], source string) *parser.ParseError {
	t.Helper()
	r := p.RunString(source)
	assert.True(t, r.Failed())
	return parser.NewParseError("value.txt", r.Err)
}

func letter(c rune) parser.Parser[rune] {
	return parser.Satisfy(func(r rune) bool { return r == c }, string(c))
}

func TestTextFormatter_Format_WithSourceContext(t *testing.T) {
	source := "line one\nline two\n\tab日本x\nline four\nline five"
	err := &parser.ParseError{
		Pos:     parser.Position{Filename: "value.txt", Line: 3, Column: 5},
		Message: "expected y",
		Source:  []byte(source),
	}

	output := NewTextFormatter().Format(err)
	expected := "value.txt:3:5: expected y\n\n" +
		"   line one\n" +
		"   line two\n" +
		"   \tab日本x\n" +
		"   \t    ^\n" +
		"   line four\n"

	assert.Equal(t, expected, output)
}

func TestTextFormatter_ContextLines(t *testing.T) {
	err := parseError(t, parser.Then(letter('a'), parser.Commit(letter('b'))), "ac\nz")

	output := NewTextFormatter(WithContextLines(0, 0)).Format(err)
	assert.Equal(t, "value.txt:3:2: expected b, got 'c'\n\n   ac\n    ^\n", output)
}

func TestTextFormatter_WithSource(t *testing.T) {
	err := &parser.ParseError{
		Pos:     parser.Position{Line: 1, Column: 3},
		Message: "boom",
	}

	assert.Equal(t, "line 1, column 3: boom", NewTextFormatter().Format(err))

	output := NewTextFormatter(WithSource([]byte("abcd"))).Format(err)
	assert.Equal(t, "line 1, column 3: boom\n\n   abcd\n     ^\n", output)
}

func TestTextFormatter_PlainErrors(t *testing.T) {
	tf := NewTextFormatter()
	assert.Equal(t, "plain", tf.Format(stderrors.New("plain")))
	assert.Equal(t, "a\n\nb", tf.FormatAll([]error{stderrors.New("a"), stderrors.New("b")}))
	assert.Equal(t, "", tf.FormatAll(nil))
}

func TestCaretPadding(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		column int
		want   string
	}{
		{name: "first column", line: "abc", column: 1, want: ""},
		{name: "ascii", line: "abc", column: 3, want: "  "},
		{name: "wide characters", line: "日本x", column: 3, want: "    "},
		{name: "tab", line: "\tx", column: 2, want: "\t"},
		{name: "past end of line", line: "ab", column: 5, want: "    "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CaretPadding(tt.line, tt.column))
		})
	}
}

func TestJSONFormatter(t *testing.T) {
	err := parseError(t, parser.Then(letter('a'), parser.Commit(parser.Decorate(letter('b'), parser.Prefix("after a\n\t")))), "ac")

	var got ErrorJSON
	assert.NoError(t, json.Unmarshal([]byte(NewJSONFormatter().Format(err)), &got))

	assert.Equal(t, "*parser.ParseError", got.Type)
	assert.Equal(t, "hard", got.Severity)
	assert.Equal(t, []string{"after a", "expected b, got 'c'"}, got.Trace)
	assert.Equal(t, &PositionJSON{Filename: "value.txt", Offset: 1, Line: 1, Column: 2}, got.Position)

	plain := NewJSONFormatter().FormatAllToSlice([]error{stderrors.New("plain")})
	assert.Equal(t, 1, len(plain))
	assert.Zero(t, plain[0].Position)
	assert.Equal(t, "plain", plain[0].Message)
}
