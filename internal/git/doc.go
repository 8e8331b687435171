// Package git answers the two questions toggl asks of version control:
// which branch is checked out, and where the repository top level is.
//
// Two [Querier] backends exist:
//
//   - [CLI] shells out to the git binary (the default). It honours the
//     user's git configuration, including worktrees and safe.directory.
//   - [Native] reads the repository with go-git and needs no git binary.
//
// Both report a directory outside any repository as [ErrNotRepository], so
// callers can tell "not a repo" apart from other failures. A detached HEAD
// is [ErrDetachedHead].
//
// # Worktree Pointers
//
// A linked worktree has a .git file instead of a directory:
//
//	gitdir: /path/to/main/.git/worktrees/feature
//
// [MainWorktreeRoot] follows that pointer back to /path/to/main so that the
// {{git_root}} macro names the main repository rather than the worktree
// folder.
package git
