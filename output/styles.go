// Package output provides styling helpers for terminal output.
package output

import (
	"io"

	"github.com/muesli/termenv"
)

// ANSI palette indices used by the styles.
const (
	red     = "1"
	green   = "2"
	yellow  = "3"
	magenta = "5"
	cyan    = "6"
)

// Styles renders decoded values, tokens and reports for a terminal. Colors
// are dropped automatically when the writer is not a color capable terminal.
type Styles struct {
	output *termenv.Output
}

// NewStyles creates a new Styles instance for the given writer.
func NewStyles(w io.Writer) *Styles {
	return &Styles{
		output: termenv.NewOutput(w),
	}
}

func (s *Styles) paint(text, color string, bold bool) string {
	styled := s.output.String(text)
	if color != "" {
		styled = styled.Foreground(s.output.Color(color))
	}
	if bold {
		styled = styled.Bold()
	}
	return styled.String()
}

// Success returns a styled success string (green + bold).
func (s *Styles) Success(text string) string {
	return s.paint(text, green, true)
}

// Error returns a styled error string (red + bold).
func (s *Styles) Error(text string) string {
	return s.paint(text, red, true)
}

// Warning returns a styled warning (yellow + bold).
func (s *Styles) Warning(text string) string {
	return s.paint(text, yellow, true)
}

// FilePath returns a styled file path (cyan).
func (s *Styles) FilePath(text string) string {
	return s.paint(text, cyan, false)
}

// Constructor returns a styled constructor or identifier (yellow).
func (s *Styles) Constructor(text string) string {
	return s.paint(text, yellow, false)
}

// Literal returns a styled numeric, character or string literal (magenta).
func (s *Styles) Literal(text string) string {
	return s.paint(text, magenta, false)
}

// Keyword returns a styled keyword (bold).
func (s *Styles) Keyword(text string) string {
	return s.paint(text, "", true)
}

// Dim returns dimmed text (for secondary information).
func (s *Styles) Dim(text string) string {
	return s.output.String(text).Faint().String()
}

// Timing returns a timing string, red when the operation was slow.
func (s *Styles) Timing(text string, slow bool) string {
	if slow {
		return s.paint(text, red, false)
	}
	return s.Dim(text)
}

// Output returns the underlying termenv Output for advanced usage.
func (s *Styles) Output() *termenv.Output {
	return s.output
}
