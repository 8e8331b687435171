package track

import (
	"context"

	"github.com/watercooler-labs/toggl-cli/internal/git"
	"github.com/watercooler-labs/toggl-cli/internal/log"
)

// Select returns the block for branch. Without a branch (ok false) or when
// no rule matches, the default block is returned. Otherwise the first
// matching rule in document order wins.
func (c *TrackConfig) Select(branch string, ok bool) BranchConfig {
	if ok {
		for _, r := range c.Rules {
			if r.Matches(branch) {
				return r.Config
			}
		}
	}
	return c.Default
}

// Match returns the pattern Select would pick for branch, or DefaultPattern.
func (c *TrackConfig) Match(branch string, ok bool) string {
	if ok {
		for _, r := range c.Rules {
			if r.Matches(branch) {
				return r.Pattern
			}
		}
	}
	return DefaultPattern
}

// Active selects the block for the branch checked out in dir. Outside a
// repository or on a detached HEAD the default block is used.
func (c *TrackConfig) Active(ctx context.Context, q git.Querier, dir string) (BranchConfig, string) {
	branch, err := q.CurrentBranch(ctx, dir)
	if err != nil {
		log.FromContext(ctx).Debug("no branch, using default block", "dir", dir, "err", err)
		return c.Default, ""
	}
	return c.Select(branch, true), branch
}
