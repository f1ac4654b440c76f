package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/readshow/errors"
)

type CheckCmd struct {
	Type   TypeExpr    `help:"Type expression, e.g. 'Maybe [Int]' (prompted for when omitted)." arg:"" optional:""`
	File   FileOrStdin `help:"Input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Format string      `help:"Output format for errors." enum:"text,json" default:"text" env:"READSHOW_FORMAT"`
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx, reportTelemetry := startTelemetry(context.Background(), globals, ctx.Stderr, fmt.Sprintf("check %s", filepath.Base(cmd.File.Filename)))
	defer reportTelemetry()

	_, err := decodeInput(runCtx, cmd.Type, &cmd.File)

	if cmd.Format == "json" {
		var errs []error
		if err != nil {
			errs = append(errs, err)
		}
		_, _ = fmt.Fprintln(ctx.Stdout, errors.NewJSONFormatter().FormatAll(errs))
		if err != nil {
			return NewCommandError(1)
		}
		return nil
	}

	if err != nil {
		_, _ = fmt.Fprintln(ctx.Stderr, NewErrorRenderer(nil).Render(err))
		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, "check failed")
		return NewCommandError(1)
	}

	printSuccess(ctx.Stdout, "Check passed")

	return nil
}
