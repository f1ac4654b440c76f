// Package errors renders decode errors for people and programs.
//
// The package defines a Formatter interface and two implementations:
//   - TextFormatter: the error message followed by the source lines around the
//     failure with a caret under the offending column
//   - JSONFormatter: structured JSON for tooling
//
// Errors are produced by the parser package; this package only handles
// presentation.
package errors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/robinvdvleuten/readshow/parser"
)

// Formatter formats errors for output in different formats.
type Formatter interface {
	// Format formats a single error.
	Format(err error) string

	// FormatAll formats multiple errors.
	FormatAll(errs []error) string
}

// positioned is implemented by errors that know where they happened.
type positioned interface {
	GetPosition() parser.Position
	Error() string
}

// TextFormatter formats errors for command-line output.
type TextFormatter struct {
	source []byte // Overrides the source carried by the error
	before int    // Context lines shown above the failing line
	after  int    // Context lines shown below it
}

// TextFormatterOption is an option for configuring TextFormatter.
type TextFormatterOption func(*TextFormatter)

// WithSource sets the source content shown around the failure.
func WithSource(source []byte) TextFormatterOption {
	return func(tf *TextFormatter) {
		tf.source = source
	}
}

// WithContextLines sets how many lines are shown around the failing line.
func WithContextLines(before, after int) TextFormatterOption {
	return func(tf *TextFormatter) {
		tf.before = before
		tf.after = after
	}
}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter(opts ...TextFormatterOption) *TextFormatter {
	tf := &TextFormatter{before: 2, after: 1}
	for _, opt := range opts {
		opt(tf)
	}
	return tf
}

// Format formats a single error.
func (tf *TextFormatter) Format(err error) string {
	var source []byte
	if e, ok := err.(*parser.ParseError); ok {
		source = e.Source
	}
	if tf.source != nil {
		source = tf.source
	}

	if e, ok := err.(positioned); ok && source != nil {
		return tf.formatWithSourceContext(e.GetPosition(), e.Error(), source)
	}
	return err.Error()
}

// FormatAll formats multiple errors, separating them with blank lines.
func (tf *TextFormatter) FormatAll(errs []error) string {
	parts := make([]string, len(errs))
	for i, err := range errs {
		parts[i] = tf.Format(err)
	}
	return strings.Join(parts, "\n\n")
}

func (tf *TextFormatter) formatWithSourceContext(pos parser.Position, message string, source []byte) string {
	var buf bytes.Buffer
	buf.WriteString(message)
	buf.WriteString("\n\n")

	lines := strings.Split(string(source), "\n")
	first := max(pos.Line-1-tf.before, 0)
	last := min(pos.Line-1+tf.after, len(lines)-1)

	for i := first; i <= last; i++ {
		buf.WriteString("   ")
		buf.WriteString(lines[i])
		buf.WriteByte('\n')

		if i == pos.Line-1 && pos.Column > 0 {
			buf.WriteString("   ")
			buf.WriteString(CaretPadding(lines[i], pos.Column))
			buf.WriteString("^\n")
		}
	}

	return buf.String()
}

// CaretPadding returns the whitespace that lines a caret up under a 1-indexed
// character column of line. Tabs are kept and wide characters count double.
func CaretPadding(line string, column int) string {
	var pad strings.Builder
	runes := []rune(line)
	for i := 0; i < column-1; i++ {
		switch {
		case i >= len(runes):
			pad.WriteByte(' ')
		case runes[i] == '\t':
			pad.WriteByte('\t')
		default:
			pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(runes[i])))
		}
	}
	return pad.String()
}

// JSONFormatter formats errors as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// ErrorJSON represents an error in JSON format.
type ErrorJSON struct {
	Type     string        `json:"type"`
	Message  string        `json:"message"`
	Severity string        `json:"severity,omitempty"`
	Trace    []string      `json:"trace,omitempty"`
	Position *PositionJSON `json:"position,omitempty"`
}

// PositionJSON represents a source position in JSON format.
type PositionJSON struct {
	Filename string `json:"filename,omitempty"`
	Offset   int    `json:"offset"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// Format formats a single error as JSON.
func (jf *JSONFormatter) Format(err error) string {
	data, _ := json.Marshal(jf.toJSON(err))
	return string(data)
}

// FormatAll formats multiple errors as a JSON array.
func (jf *JSONFormatter) FormatAll(errs []error) string {
	data, _ := json.MarshalIndent(jf.FormatAllToSlice(errs), "", "  ")
	return string(data)
}

// FormatAllToSlice returns errors as a slice of ErrorJSON structs.
func (jf *JSONFormatter) FormatAllToSlice(errs []error) []ErrorJSON {
	result := make([]ErrorJSON, 0, len(errs))
	for _, err := range errs {
		result = append(result, jf.toJSON(err))
	}
	return result
}

func (jf *JSONFormatter) toJSON(err error) ErrorJSON {
	errJSON := ErrorJSON{
		Type:    fmt.Sprintf("%T", err),
		Message: err.Error(),
	}

	if e, ok := err.(positioned); ok {
		pos := e.GetPosition()
		errJSON.Position = &PositionJSON{
			Filename: pos.Filename,
			Offset:   pos.Offset,
			Line:     pos.Line,
			Column:   pos.Column,
		}
	}

	if e, ok := err.(*parser.ParseError); ok {
		errJSON.Message = e.Message
		errJSON.Trace = Trace(e.Message)
		errJSON.Severity = parser.Soft.String()
		if e.Hard() {
			errJSON.Severity = parser.Hard.String()
		}
	}

	return errJSON
}

// Trace splits a decorated message into its context lines, outermost first.
func Trace(message string) []string {
	var trace []string
	for _, line := range strings.Split(message, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			trace = append(trace, line)
		}
	}
	return trace
}
