package main

import (
	"context"
	"errors"
	"os"

	"github.com/watercooler-labs/toggl-cli/internal/config"
	"github.com/watercooler-labs/toggl-cli/internal/git"
	"github.com/watercooler-labs/toggl-cli/internal/log"
	"github.com/watercooler-labs/toggl-cli/internal/output"
	"github.com/watercooler-labs/toggl-cli/internal/track"
	"github.com/watercooler-labs/toggl-cli/internal/ui/progress"
)

// querier returns the git backend selected in settings.
func querier(ctx context.Context) git.Querier {
	q, err := git.New(config.FromContext(ctx).GitBackend)
	if err != nil {
		// validated in setup
		return git.CLI{}
	}
	return q
}

// shellRunner runs shell macros, with a spinner on stderr when it is a
// terminal and nothing else is being logged there.
func shellRunner(ctx context.Context) track.ShellRunner {
	l := log.FromContext(ctx)
	if l.IsVerbose() || l.Writer() != os.Stderr || !output.IsTerminal(os.Stderr) {
		return track.DefaultShell
	}
	return func(ctx context.Context, dir, script string) (string, error) {
		sp := progress.NewSpinner(os.Stderr, "$ "+script)
		sp.Start()
		defer sp.Stop()
		return track.DefaultShell(ctx, dir, script)
	}
}

func locator(ctx context.Context) track.Locator {
	return track.NewLocator(config.FromContext(ctx).Dir)
}

// loadedTrack is a located and parsed track config.
type loadedTrack struct {
	Location track.Location
	Config   *track.TrackConfig
}

// loadTrack locates and parses the config for the working directory and
// logs a warning for every value dropped by a failing macro.
func loadTrack(ctx context.Context, opts ...track.ParseOption) (loadedTrack, error) {
	workDir := config.WorkDirFromContext(ctx)
	loc, err := locator(ctx).Locate(workDir)
	if err != nil {
		return loadedTrack{}, err
	}
	log.FromContext(ctx).Debug("located config", "file", loc.File, "root", loc.Root, "global", loc.Global)

	r := &track.Resolver{
		BaseDir: loc.Root,
		WorkDir: workDir,
		Git:     querier(ctx),
		Shell:   shellRunner(ctx),
	}
	cfg, err := track.Load(ctx, loc, r, opts...)
	if err != nil {
		return loadedTrack{}, err
	}

	l := log.FromContext(ctx)
	for _, d := range cfg.Diagnostics {
		l.Warnf("%s", d)
	}
	return loadedTrack{Location: loc, Config: cfg}, nil
}

// selectBlock picks the block for branch, or for the current branch when
// branch is empty. It returns the block, the branch used (empty if none)
// and the pattern that selected the block.
func selectBlock(ctx context.Context, cfg *track.TrackConfig, branch string) (track.BranchConfig, string, string) {
	if branch == "" {
		var block track.BranchConfig
		block, branch = cfg.Active(ctx, querier(ctx), config.WorkDirFromContext(ctx))
		return block, branch, cfg.Match(branch, branch != "")
	}
	return cfg.Select(branch, true), branch, cfg.Match(branch, true)
}

// isNotFound reports whether err means no track config applies.
func isNotFound(err error) bool {
	return errors.Is(err, track.ErrFileNotFound)
}
