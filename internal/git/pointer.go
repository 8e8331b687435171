package git

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadGitdirPointer parses the .git file of a linked worktree and returns the
// absolute gitdir it points to. ok is false when dir/.git is a directory (a
// main working tree) or does not exist.
func ReadGitdirPointer(dir string) (gitdir string, ok bool, err error) {
	gitFile := filepath.Join(dir, ".git")
	info, err := os.Stat(gitFile)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	if info.IsDir() {
		return "", false, nil
	}

	content, err := os.ReadFile(gitFile)
	if err != nil {
		return "", false, fmt.Errorf("failed to read .git file: %w", err)
	}

	// Only the first line matters; any additional lines are ignored
	line := strings.TrimSpace(string(content))
	if idx := strings.Index(line, "\n"); idx != -1 {
		line = strings.TrimSpace(line[:idx])
	}
	if !strings.HasPrefix(line, "gitdir:") {
		return "", false, fmt.Errorf("invalid .git file format in %s: expected 'gitdir: <path>'", dir)
	}

	gitdir = strings.TrimSpace(strings.TrimPrefix(line, "gitdir:"))
	if gitdir == "" {
		return "", false, fmt.Errorf("invalid .git file format in %s: empty gitdir path", dir)
	}

	// gitdir can be relative to the worktree
	if !filepath.IsAbs(gitdir) {
		gitdir = filepath.Join(dir, gitdir)
	}
	return filepath.Clean(gitdir), true, nil
}

// MainWorktreeRoot returns the main repository directory for a top-level
// directory. For a main working tree that is topLevel itself. For a linked
// worktree the gitdir pointer (<main>/.git/worktrees/<name>) is walked up
// three levels.
//
// The fixed three-level walk assumes the default layout; a gitdir stored
// elsewhere (e.g. a separate --separate-git-dir) yields its own ancestor.
func MainWorktreeRoot(topLevel string) (string, error) {
	gitdir, ok, err := ReadGitdirPointer(topLevel)
	if err != nil {
		return "", err
	}
	if !ok {
		return topLevel, nil
	}
	return filepath.Dir(filepath.Dir(filepath.Dir(gitdir))), nil
}
