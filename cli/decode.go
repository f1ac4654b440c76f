package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
)

type DecodeCmd struct {
	Type TypeExpr    `help:"Type expression, e.g. 'Maybe [Int]' (prompted for when omitted)." arg:"" optional:""`
	File FileOrStdin `help:"Input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

func (cmd *DecodeCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx, reportTelemetry := startTelemetry(context.Background(), globals, ctx.Stderr, fmt.Sprintf("decode %s", filepath.Base(cmd.File.Filename)))
	defer reportTelemetry()

	value, err := decodeInput(runCtx, cmd.Type, &cmd.File)
	if err != nil {
		_, _ = fmt.Fprintln(ctx.Stderr, NewErrorRenderer(nil).Render(err))
		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, "decode error")
		return NewCommandError(1)
	}

	_, _ = fmt.Fprintln(ctx.Stdout, repr.String(value, repr.Indent("  ")))

	return nil
}
