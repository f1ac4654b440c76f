package cli

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestCommandError(t *testing.T) {
	t.Run("returns exit code", func(t *testing.T) {
		err := NewCommandError(42)
		assert.Equal(t, 42, err.ExitCode())
		assert.EqualError(t, err, "command failed with exit code 42")
	})

	t.Run("survives wrapping", func(t *testing.T) {
		var err error = fmt.Errorf("watch: %w", NewCommandError(2))

		var cmdErr *CommandError
		assert.True(t, stdErrors.As(err, &cmdErr))
		assert.Equal(t, 2, cmdErr.ExitCode())
	})
}
