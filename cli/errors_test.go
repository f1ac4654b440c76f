package cli

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/readshow/parser"
)

func TestErrorRenderer_RenderParseErrorWithSourceContext(t *testing.T) {
	source := "[1,\n 2,\n\tx]\n"
	parseErr := &parser.ParseError{
		Pos:     parser.Position{Filename: "value.txt", Offset: 9, Line: 3, Column: 2},
		Message: "after separator in a group:\n\texpected a number",
		Source:  []byte(source),
	}

	output := NewErrorRenderer(nil).Render(parseErr)

	assert.Contains(t, output, "value.txt:3:2")
	assert.Contains(t, output, "expected a number")
	assert.Contains(t, output, "   [1,\n")
	assert.Contains(t, output, "   \tx]\n")
	assert.Contains(t, output, "   \t^\n")
}

func TestErrorRenderer_WideCharacters(t *testing.T) {
	parseErr := &parser.ParseError{
		Pos:     parser.Position{Line: 1, Column: 4},
		Message: "bad character",
		Source:  []byte(`"日本"x`),
	}

	output := NewErrorRenderer(nil).Render(parseErr)
	assert.Contains(t, output, "   \"日本\"x\n")
	assert.Contains(t, output, "        ^\n")
}

func TestErrorRenderer_SourceOverride(t *testing.T) {
	parseErr := &parser.ParseError{
		Pos:     parser.Position{Line: 1, Column: 1},
		Message: "boom",
	}

	assert.Contains(t, NewErrorRenderer(nil).Render(parseErr), "line 1, column 1: boom")
	assert.Contains(t, NewErrorRenderer([]byte("xyz")).Render(parseErr), "   xyz\n   ^\n")
}

func TestErrorRenderer_WrappedErrors(t *testing.T) {
	parseErr := &parser.ParseError{
		Pos:     parser.Position{Line: 1, Column: 2},
		Message: "boom",
		Source:  []byte("ab"),
	}

	output := NewErrorRenderer(nil).Render(fmt.Errorf("reading: %w", parseErr))
	assert.Contains(t, output, "    ^\n")
}

func TestErrorRenderer_RenderAll(t *testing.T) {
	renderer := NewErrorRenderer(nil)

	assert.Equal(t, "", renderer.RenderAll(nil))

	output := renderer.RenderAll([]error{stdErrors.New("first"), stdErrors.New("second")})
	assert.Contains(t, output, "first")
	assert.Contains(t, output, "\n\n")
	assert.Contains(t, output, "second")
}
