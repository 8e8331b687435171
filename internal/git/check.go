package git

import (
	"errors"
	"os/exec"
)

var (
	// ErrGitNotFound indicates git is not installed or not in PATH
	ErrGitNotFound = errors.New("git not found: please install git (https://git-scm.com)")

	// ErrNotRepository indicates the directory is not inside a git repository
	ErrNotRepository = errors.New("not a git repository")

	// ErrDetachedHead indicates HEAD does not point at a branch
	ErrDetachedHead = errors.New("HEAD is detached")
)

// CheckGit verifies that git is available in PATH
func CheckGit() error {
	_, err := exec.LookPath("git")
	if err != nil {
		return ErrGitNotFound
	}
	return nil
}
