package schema

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/robinvdvleuten/readshow/decode"
	"github.com/robinvdvleuten/readshow/parser"
)

func TestParseRoundTrip(t *testing.T) {
	tests := []string{
		"Int",
		"()",
		"[Int]",
		"[[Char]]",
		"(Int, [Char])",
		"(Int, Bool, Double)",
		"Maybe Int",
		"Maybe (Either Int Bool)",
		"Either (Maybe Int) [Bool]",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			expr, err := Parse("", text)
			assert.NoError(t, err)
			assert.Equal(t, text, expr.String())
		})
	}
}

func TestParseNormalizesSpacing(t *testing.T) {
	expr, err := Parse("", "  Maybe(  Either Int   [ Char ] )")
	assert.NoError(t, err)
	assert.Equal(t, "Maybe (Either Int [Char])", expr.String())
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse("type", "[Int")
	assert.Error(t, err)

	parseErr, ok := err.(*parser.ParseError)
	assert.True(t, ok)
	assert.Equal(t, "type", parseErr.Pos.Filename)
	assert.Equal(t, 1, parseErr.Pos.Line)
	assert.Equal(t, "[Int", string(parseErr.Source))
}

func TestCompile(t *testing.T) {
	tests := []struct {
		schema string
		input  string
		want   any
	}{
		{schema: "Int", input: "-5", want: -5},
		{schema: "Word8", input: "255", want: uint8(255)},
		{schema: "Double", input: "2.5", want: 2.5},
		{schema: "Bool", input: "True", want: true},
		{schema: "Ordering", input: "GT", want: decode.GT},
		{schema: "()", input: "()", want: decode.Unit{}},
		{schema: "Char", input: `'x'`, want: 'x'},
		{schema: "[Char]", input: `"hi"`, want: "hi"},
		{schema: "String", input: `"hi"`, want: "hi"},
		{schema: "[Int]", input: "[1,2]", want: []any{1, 2}},
		{schema: "[[Int]]", input: "[[1],[]]", want: []any{[]any{1}, []any{}}},
		{schema: "(Int)", input: "7", want: 7},
		{schema: "(Int, Bool)", input: "(1,True)", want: decode.Pair[any, any]{First: 1, Second: true}},
		{
			schema: "(Int, Bool, [Char])",
			input:  `(1,False,"x")`,
			want:   decode.Triple[any, any, any]{First: 1, Second: false, Third: "x"},
		},
		{schema: "Maybe Int", input: "Just 3", want: decode.Just[any](3)},
		{schema: "Maybe Int", input: "Nothing", want: decode.Nothing[any]()},
		{
			schema: "Maybe (Either Int Bool)",
			input:  "Just (Right True)",
			want:   decode.Just[any](decode.Right[any, any](true)),
		},
		{schema: "Either String Int", input: `Left "no"`, want: decode.Left[any, any]("no")},
	}

	for _, tt := range tests {
		t.Run(tt.schema+" "+tt.input, func(t *testing.T) {
			typ, err := Compile("", tt.schema)
			assert.NoError(t, err)

			r := typ.ParsePrec(0).RunString(tt.input)
			assert.Zero(t, r.Err)
			assert.Equal(t, tt.want, r.Value)
			assert.Equal(t, 0, r.Rest.Len())
		})
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		schema  string
		message string
		column  int
	}{
		{schema: "Foo", message: `unknown type "Foo"`, column: 1},
		{schema: "[Bar]", message: `unknown type "Bar"`, column: 2},
		{schema: "Maybe", message: "Maybe expects 1 argument(s), got 0", column: 1},
		{schema: "Either Int", message: "Either expects 2 argument(s), got 1", column: 1},
		{schema: "Int Bool", message: "Int does not take arguments", column: 1},
		{schema: "(Int, Int, Int, Int)", message: "tuples of 4 elements are not supported", column: 1},
	}

	for _, tt := range tests {
		t.Run(tt.schema, func(t *testing.T) {
			_, err := Compile("", tt.schema)
			assert.Error(t, err)

			parseErr, ok := err.(*parser.ParseError)
			assert.True(t, ok)
			assert.Equal(t, tt.message, parseErr.Message)
			assert.Equal(t, tt.column, parseErr.Pos.Column)
		})
	}
}

func TestExamplesCompile(t *testing.T) {
	for _, text := range Examples {
		t.Run(text, func(t *testing.T) {
			_, err := Compile("", text)
			assert.NoError(t, err)
		})
	}
}
