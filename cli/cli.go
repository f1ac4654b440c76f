// Package cli implements the readshow command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/tliron/commonlog"
	"golang.org/x/term"

	"github.com/robinvdvleuten/readshow"
	"github.com/robinvdvleuten/readshow/output"
	"github.com/robinvdvleuten/readshow/schema"
	"github.com/robinvdvleuten/readshow/telemetry"
)

var (
	successSymbol = "✓"
	errorSymbol   = "✗"
	infoSymbol    = "→"

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D7D7", Dark: "#00D7D7"})

	log = commonlog.GetLogger("readshow.cli")
)

func printSuccess(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		successStyle.Render(successSymbol),
		message,
	)
}

func printError(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		errorStyle.Render(errorSymbol),
		errorStyle.Render(message),
	)
}

func printInfof(w io.Writer, format string, args ...interface{}) {
	formatted := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(w, "%s %s\n",
		infoStyle.Render(infoSymbol),
		formatted,
	)
}

// promptType asks the user to pick a type expression.
// Fails if stdin is not a terminal.
func promptType() (string, error) {
	if !isTerminal() {
		return "", fmt.Errorf("a type expression is required when stdin is not a terminal")
	}

	var choice string

	form := huh.NewSelect[string]().
		Title("Decode the input as").
		Options(huh.NewOptions(schema.Examples...)...).
		Value(&choice)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("failed to read type: %w", err)
	}

	return choice, nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// TypeExpr is a type expression naming the decoder to use.
type TypeExpr string

// Resolve returns the expression, prompting for one when it was omitted.
func (t TypeExpr) Resolve() (string, error) {
	if t != "" {
		return string(t), nil
	}
	return promptType()
}

// FileOrStdin accepts either a file path or "-" for stdin.
type FileOrStdin struct {
	Filename string
	Contents []byte
}

// Decode implements kong.MapperValue.
func (f *FileOrStdin) Decode(ctx *kong.DecodeContext) error {
	var filename string
	if err := ctx.Scan.PopValueInto("filename", &filename); err != nil {
		return err
	}

	if filename == "-" || filename == "" {
		return f.readStdin()
	}

	contents, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	f.Filename = filename
	f.Contents = contents

	return nil
}

// EnsureContents populates Contents from stdin if no file was given.
func (f *FileOrStdin) EnsureContents() error {
	if f.Filename == "" {
		return f.readStdin()
	}
	return nil
}

func (f *FileOrStdin) readStdin() error {
	contents, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read from stdin: %w", err)
	}
	f.Filename = "<stdin>"
	f.Contents = contents
	return nil
}

// decodeInput compiles the type expression and reads the whole input as a
// value of that type.
func decodeInput(ctx context.Context, typ TypeExpr, file *FileOrStdin) (any, error) {
	expr, err := typ.Resolve()
	if err != nil {
		return nil, err
	}

	t, err := schema.Compile("<type>", expr)
	if err != nil {
		return nil, err
	}

	if err := file.EnsureContents(); err != nil {
		return nil, err
	}

	log.Infof("decoding %s as %s", file.Filename, expr)
	return readshow.Read(ctx, t, file.Contents, readshow.WithFilename(file.Filename))
}

// startTelemetry installs a timing collector when telemetry is enabled. The
// returned function prints the report once, however often it is called.
func startTelemetry(ctx context.Context, globals *Globals, stderr io.Writer, name string) (context.Context, func()) {
	if !globals.Telemetry {
		return ctx, func() {}
	}

	collector := telemetry.NewTimingCollector()
	ctx = telemetry.WithCollector(ctx, collector)
	timer := collector.Start(name)

	var once sync.Once
	return ctx, func() {
		once.Do(func() {
			timer.End()
			_, _ = fmt.Fprintln(stderr)
			collector.Report(stderr, output.NewStyles(stderr))
		})
	}
}
