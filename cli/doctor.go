package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/readshow/lexer"
)

// DoctorCmd provides doctor utilities for debugging printed values.
type DoctorCmd struct {
	Lex LexCmd `cmd:"" help:"Show lexical tokens of an input."`
}

// LexCmd shows lexical tokens of an input.
type LexCmd struct {
	File FileOrStdin `help:"Input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

// Run executes the lex command.
func (cmd *LexCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	tokens, err := lexer.NewLexer(cmd.File.Contents, cmd.File.Filename).ScanAll()
	if err != nil {
		_, _ = fmt.Fprintln(ctx.Stderr, NewErrorRenderer(nil).Render(err))
		return NewCommandError(1)
	}

	// Format: TYPE line:col length "content"
	for _, token := range tokens {
		if token.Type == lexer.EOF {
			continue
		}

		_, _ = fmt.Fprintf(ctx.Stdout, "%-10s %d:%-6d %3d  %q\n",
			token.Type.String(),
			token.Line,
			token.Column,
			token.Len(),
			token.String())
	}

	return nil
}
