package git

import (
	"context"
	"fmt"
	"strings"
)

// Backend names accepted by New.
const (
	BackendCLI    = "cli"
	BackendNative = "native"
)

// Querier is the version-control collaborator used by macro resolution and
// branch matching.
type Querier interface {
	// CurrentBranch returns the branch checked out in the repository
	// containing dir.
	CurrentBranch(ctx context.Context, dir string) (string, error)
	// TopLevel returns the absolute top-level directory of the working tree
	// containing dir. For a linked worktree this is the worktree itself.
	TopLevel(ctx context.Context, dir string) (string, error)
}

// New returns the Querier for a backend name. An empty name selects the CLI.
func New(backend string) (Querier, error) {
	switch backend {
	case "", BackendCLI:
		return CLI{}, nil
	case BackendNative:
		return Native{}, nil
	default:
		return nil, fmt.Errorf("unknown git backend %q: must be %q or %q", backend, BackendCLI, BackendNative)
	}
}

// CLI implements Querier by running the git binary.
type CLI struct{}

// CurrentBranch returns the current branch name via `git branch --show-current`.
// An unborn branch (fresh repo, no commits) is reported by name.
func (CLI) CurrentBranch(ctx context.Context, dir string) (string, error) {
	output, err := outputGit(ctx, dir, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get branch: %w", err)
	}
	branch := strings.TrimSpace(string(output))
	if branch == "" {
		return "", ErrDetachedHead
	}
	return branch, nil
}

// TopLevel returns the repository root via `git rev-parse --show-toplevel`.
func (CLI) TopLevel(ctx context.Context, dir string) (string, error) {
	output, err := outputGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("failed to get repository root: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}
