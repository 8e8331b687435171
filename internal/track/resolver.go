package track

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/watercooler-labs/toggl-cli/internal/cmd"
	"github.com/watercooler-labs/toggl-cli/internal/git"
	"github.com/watercooler-labs/toggl-cli/internal/log"
)

// ShellRunner runs script through a shell in dir and returns its stdout.
type ShellRunner func(ctx context.Context, dir, script string) (string, error)

// DefaultShell runs script with the platform shell.
func DefaultShell(ctx context.Context, dir, script string) (string, error) {
	out, err := cmd.Shell(ctx, dir, script)
	return string(out), err
}

// Resolver expands {{token}} macros.
type Resolver struct {
	// BaseDir is the tracked root, used by base_dir and parent_base_dir.
	BaseDir string
	// WorkDir is where git and shell commands run. Defaults to os.Getwd().
	WorkDir string
	// Git answers branch and repository root queries. Defaults to git.CLI.
	Git git.Querier
	// Shell runs {{$ ...}} commands. Defaults to DefaultShell.
	Shell ShellRunner
}

// NewResolver returns a Resolver for a located config.
func NewResolver(loc Location, workDir string, q git.Querier) *Resolver {
	return &Resolver{BaseDir: loc.Root, WorkDir: workDir, Git: q}
}

// Process expands every macro in raw. Text outside macros is copied
// verbatim and a value without "{{" is returned as is. Any failing macro
// fails the whole value.
func (r *Resolver) Process(ctx context.Context, raw string) (string, error) {
	if !strings.Contains(raw, "{{") {
		return raw, nil
	}

	var b strings.Builder
	rest := raw
	for {
		start := strings.Index(rest, "{{")
		if start < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		b.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end < 0 {
			return "", &UnterminatedMacroError{Input: raw}
		}
		m, err := ParseMacro(rest[:end])
		if err != nil {
			return "", err
		}
		val, err := r.resolve(ctx, m)
		if err != nil {
			return "", err
		}
		b.WriteString(val)
		rest = rest[end+2:]
	}
}

func (r *Resolver) resolve(ctx context.Context, m Macro) (string, error) {
	log.FromContext(ctx).Debug("resolving macro", "macro", m.String())

	switch m.Kind {
	case MacroBranch:
		branch, err := r.git().CurrentBranch(ctx, r.workDir())
		if err != nil {
			return "", gitError("git branch --show-current", err)
		}
		return branch, nil
	case MacroBaseDir:
		if r.BaseDir == "" {
			return "", errors.New("tracked root is not known")
		}
		return filepath.Base(r.BaseDir), nil
	case MacroParentBaseDir:
		if r.BaseDir == "" {
			return "", errors.New("tracked root is not known")
		}
		return filepath.Base(filepath.Dir(r.BaseDir)), nil
	case MacroCurrentDir:
		return filepath.Base(r.workDir()), nil
	case MacroParentDir:
		return filepath.Base(filepath.Dir(r.workDir())), nil
	case MacroGitRoot:
		root, err := r.gitRoot(ctx)
		if err != nil {
			return "", err
		}
		return filepath.Base(root), nil
	case MacroParentGitRoot:
		root, err := r.gitRoot(ctx)
		if err != nil {
			return "", err
		}
		return filepath.Base(filepath.Dir(root)), nil
	case MacroShell:
		return r.shell(ctx, m.Command)
	default:
		return "", &UnrecognizedMacroError{Token: m.String()}
	}
}

// gitRoot returns the repository root, following a linked worktree back to
// the main worktree.
func (r *Resolver) gitRoot(ctx context.Context) (string, error) {
	top, err := r.git().TopLevel(ctx, r.workDir())
	if err != nil {
		return "", gitError("git rev-parse --show-toplevel", err)
	}
	root, err := git.MainWorktreeRoot(top)
	if err != nil {
		return "", fmt.Errorf("failed to resolve worktree of %s: %w", top, err)
	}
	return root, nil
}

func (r *Resolver) shell(ctx context.Context, command string) (string, error) {
	run := r.Shell
	if run == nil {
		run = DefaultShell
	}
	out, err := run(ctx, r.workDir(), command)
	if err != nil {
		return "", &ShellError{Command: command, Output: stderrOf(err), Err: err}
	}
	return strings.TrimSpace(out), nil
}

func (r *Resolver) git() git.Querier {
	if r.Git == nil {
		return git.CLI{}
	}
	return r.Git
}

func (r *Resolver) workDir() string {
	if r.WorkDir != "" {
		return r.WorkDir
	}
	wd, _ := os.Getwd()
	return wd
}

func gitError(command string, err error) error {
	return &ShellError{Command: command, Output: stderrOf(err), Err: err}
}

func stderrOf(err error) string {
	var exitErr *cmd.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Stderr
	}
	return ""
}
