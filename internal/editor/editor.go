// Package editor opens files in the user's editor.
package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/watercooler-labs/toggl-cli/internal/cmd"
)

// Runner runs a command attached to the terminal.
type Runner func(ctx context.Context, dir, name string, args ...string) error

// Split turns an editor setting like "code --wait" into a program and its
// arguments, with path appended.
func Split(editor, path string) (string, []string, error) {
	fields := strings.Fields(editor)
	if len(fields) == 0 {
		return "", nil, errors.New("no editor configured")
	}
	args := append(fields[1:len(fields):len(fields)], path)
	return fields[0], args, nil
}

// Open edits path with editor and waits for it to exit.
func Open(ctx context.Context, editor, path string) error {
	return OpenWith(ctx, cmd.RunAttached, editor, path)
}

// OpenWith is Open with an explicit runner.
func OpenWith(ctx context.Context, run Runner, editor, path string) error {
	name, args, err := Split(editor, path)
	if err != nil {
		return err
	}
	if err := run(ctx, "", name, args...); err != nil {
		return fmt.Errorf("editor %s failed: %w", name, err)
	}
	return nil
}
