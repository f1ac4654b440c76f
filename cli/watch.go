package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"
	"github.com/tliron/commonlog"

	"github.com/robinvdvleuten/readshow"
	"github.com/robinvdvleuten/readshow/decode"
	"github.com/robinvdvleuten/readshow/schema"
)

// Editors often write files in several steps.
const debounceDelay = 100 * time.Millisecond

var watchLog = commonlog.GetLogger("readshow.watch")

type WatchCmd struct {
	Type TypeExpr `help:"Type expression, e.g. 'Maybe [Int]'." arg:""`
	File string   `help:"Input file to watch." arg:"" type:"existingfile"`
}

func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	expr, err := cmd.Type.Resolve()
	if err != nil {
		return err
	}
	t, err := schema.Compile("<type>", expr)
	if err != nil {
		_, _ = fmt.Fprintln(ctx.Stderr, NewErrorRenderer(nil).Render(err))
		return NewCommandError(1)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	check := func() {
		checkCtx, reportTelemetry := startTelemetry(runCtx, globals, ctx.Stderr, fmt.Sprintf("check %s", filepath.Base(cmd.File)))
		checkFile(checkCtx, ctx.Stdout, ctx.Stderr, t, cmd.File)
		reportTelemetry()
	}
	check()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(cmd.File); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", cmd.File, err)
	}

	printInfof(ctx.Stdout, "Watching %s", pathStyle.Render(cmd.File))

	runWatcher(runCtx, watcher, cmd.File, check)
	return nil
}

// checkFile decodes file and reports the outcome.
func checkFile(ctx context.Context, stdout, stderr io.Writer, t decode.Type[any], file string) {
	contents, err := os.ReadFile(file)
	if err == nil {
		_, err = readshow.Read(ctx, t, contents, readshow.WithFilename(file))
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, NewErrorRenderer(nil).Render(err))
		printError(stderr, "check failed")
		return
	}

	printSuccess(stdout, fmt.Sprintf("%s decodes", file))
}

// runWatcher calls onChange after the watched file changes, debouncing bursts
// of events. onChange runs on the calling goroutine, one call at a time. It
// returns when ctx is done or the watcher is closed.
func runWatcher(ctx context.Context, watcher *fsnotify.Watcher, file string, onChange func()) {
	var (
		debounceTimer *time.Timer
		settled       <-chan time.Time
	)
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		_ = watcher.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			// Remove/Rename are common in atomic saves
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			watchLog.Debugf("%s: %s", event.Name, event.Op)

			if debounceTimer == nil {
				debounceTimer = time.NewTimer(debounceDelay)
			} else {
				debounceTimer.Reset(debounceDelay)
			}
			settled = debounceTimer.C

		case <-settled:
			settled = nil

			// Re-add to catch files re-created by an atomic save.
			if err := watcher.Add(file); err != nil {
				watchLog.Warningf("failed to watch %s: %s", file, err)
			}
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			watchLog.Errorf("file watcher error: %s", err)
		}
	}
}
