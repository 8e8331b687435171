package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/watercooler-labs/toggl-cli/internal/config"
	"github.com/watercooler-labs/toggl-cli/internal/entry"
	"github.com/watercooler-labs/toggl-cli/internal/git"
	"github.com/watercooler-labs/toggl-cli/internal/track"
)

// Env is what the checks run against.
type Env struct {
	Settings    config.Settings
	SettingsErr error // error from loading settings, if any
	WorkDir     string
	Git         git.Querier
	Shell       track.ShellRunner
	Now         time.Time
}

// Check runs every check and returns the report.
func Check(ctx context.Context, env Env) Report {
	var r Report
	checkSettings(&r, env)
	checkGit(ctx, &r, env)
	cfg := checkConfig(ctx, &r, env)
	checkSnapshot(ctx, &r, env, cfg)
	checkOrphans(&r, env)
	return r
}

func (r *Report) pass(cat IssueCategory, format string, args ...any) {
	r.Passed = append(r.Passed, Passed{Category: cat, Message: fmt.Sprintf(format, args...)})
}

func (r *Report) add(i Issue) {
	r.Issues = append(r.Issues, i)
}

func checkSettings(r *Report, env Env) {
	path := config.SettingsPath(env.Settings.Dir)
	if env.SettingsErr != nil {
		r.add(Issue{
			Category:    CategorySettings,
			Severity:    SeverityError,
			Key:         path,
			Description: env.SettingsErr.Error(),
			Hint:        "fix or remove the file; defaults are used meanwhile",
		})
		return
	}
	r.pass(CategorySettings, "settings valid (git backend %s)", env.Settings.GitBackend)
}

func checkGit(ctx context.Context, r *Report, env Env) {
	if env.Settings.GitBackend != git.BackendNative {
		if err := git.CheckGit(); err != nil {
			r.add(Issue{
				Category:    CategoryGit,
				Severity:    SeverityWarning,
				Key:         "git",
				Description: err.Error(),
				Hint:        `install git or set git_backend = "native"`,
			})
			return
		}
	}

	branch, err := env.Git.CurrentBranch(ctx, env.WorkDir)
	switch {
	case err == nil:
		r.pass(CategoryGit, "on branch %s", branch)
	case errors.Is(err, git.ErrNotRepository):
		r.pass(CategoryGit, "not in a git repository, default blocks apply")
	case errors.Is(err, git.ErrDetachedHead):
		r.pass(CategoryGit, "HEAD is detached, default blocks apply")
	default:
		r.add(Issue{
			Category:    CategoryGit,
			Severity:    SeverityWarning,
			Key:         env.WorkDir,
			Description: fmt.Sprintf("failed to query branch: %v", err),
		})
	}
}

func checkConfig(ctx context.Context, r *Report, env Env) *track.TrackConfig {
	loc, err := track.NewLocator(env.Settings.Dir).Locate(env.WorkDir)
	if err != nil {
		r.add(Issue{
			Category:    CategoryConfig,
			Severity:    SeverityWarning,
			Key:         env.WorkDir,
			Description: "no track config for this directory or its parents",
			Hint:        "run 'toggl config init'",
		})
		return nil
	}

	resolver := &track.Resolver{BaseDir: loc.Root, WorkDir: env.WorkDir, Git: env.Git, Shell: env.Shell}
	cfg, err := track.Load(ctx, loc, resolver)
	if err != nil {
		r.add(Issue{
			Category:    CategoryConfig,
			Severity:    SeverityError,
			Key:         loc.File,
			Description: err.Error(),
			Hint:        "run 'toggl config edit'",
		})
		return nil
	}

	if loc.Global {
		r.pass(CategoryConfig, "using global config %s", loc.File)
	} else {
		r.pass(CategoryConfig, "config for %s (%d rule(s))", loc.Root, len(cfg.Rules))
	}
	for _, d := range cfg.Diagnostics {
		r.add(Issue{
			Category:    CategoryConfig,
			Severity:    SeverityWarning,
			Key:         fmt.Sprintf("[%q] %s", d.Block, d.Field),
			Description: firstLine(d.Err.Error()),
			Hint:        "the value is left unset until the macro resolves",
		})
	}
	return cfg
}

func checkSnapshot(ctx context.Context, r *Report, env Env, cfg *track.TrackConfig) {
	path := config.SnapshotPath(env.Settings.Dir)
	ents, err := entry.LoadSnapshot(path)
	if err != nil {
		r.add(Issue{
			Category:    CategorySnapshot,
			Severity:    SeverityWarning,
			Key:         path,
			Description: err.Error(),
			Hint:        "project and task names can't be resolved without it",
		})
		return
	}

	age := ents.Age(env.Now)
	if maxAge := env.Settings.SnapshotMaxAge.Duration; maxAge > 0 && age > maxAge {
		r.add(Issue{
			Category:    CategorySnapshot,
			Severity:    SeverityWarning,
			Key:         path,
			Description: fmt.Sprintf("snapshot is %s old (limit %s)", age.Round(time.Minute), maxAge),
			Hint:        "re-import it with 'toggl entities import'",
		})
	} else {
		r.pass(CategorySnapshot, "%d project(s), %d task(s)", len(ents.Projects), len(ents.Tasks))
	}

	if cfg == nil {
		return
	}
	active, _ := cfg.Active(ctx, env.Git, env.WorkDir)
	draft := entry.Build(active, ents, 0)
	for _, miss := range entry.Unresolved(active, draft, ents) {
		hint := ""
		if len(miss.Suggestions) > 0 {
			hint = "did you mean " + quoteJoin(miss.Suggestions) + "?"
		}
		r.add(Issue{
			Category:    CategorySnapshot,
			Severity:    SeverityWarning,
			Key:         miss.Kind,
			Description: fmt.Sprintf("%s %q not found in snapshot", miss.Kind, miss.Name),
			Hint:        hint,
		})
	}
}

func checkOrphans(r *Report, env Env) {
	configs, err := track.NewLocator(env.Settings.Dir).List()
	if err != nil {
		r.add(Issue{Category: CategoryOrphan, Severity: SeverityWarning, Key: env.Settings.Dir, Description: err.Error()})
		return
	}
	orphans := 0
	for _, c := range configs {
		if c.Dir == "" {
			continue
		}
		if _, err := os.Stat(c.Dir); errors.Is(err, os.ErrNotExist) {
			orphans++
			r.add(Issue{
				Category:    CategoryOrphan,
				Severity:    SeverityWarning,
				Key:         c.File,
				Description: fmt.Sprintf("directory %s no longer exists", c.Dir),
				FixAction:   "remove",
			})
		}
	}
	if orphans == 0 {
		r.pass(CategoryOrphan, "%d track config(s), none orphaned", len(configs))
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(quoted, ", ")
}
