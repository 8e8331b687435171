package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/watercooler-labs/toggl-cli/internal/cmd"
)

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

// outputGit executes a git command with context support and verbose logging,
// returning stdout. Missing git and "not a git repository" failures are
// mapped to ErrGitNotFound and ErrNotRepository.
func outputGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	out, err := cmd.OutputContext(ctx, "", "git", gitArgs(dir, args)...)
	if err != nil {
		return nil, classify(dir, err)
	}
	return out, nil
}

func classify(dir string, err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return ErrGitNotFound
	}
	var exitErr *cmd.ExitError
	if errors.As(err, &exitErr) && strings.Contains(strings.ToLower(exitErr.Stderr), "not a git repository") {
		return fmt.Errorf("%w: %s", ErrNotRepository, dir)
	}
	return err
}
