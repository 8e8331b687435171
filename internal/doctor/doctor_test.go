package doctor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/watercooler-labs/toggl-cli/internal/config"
	"github.com/watercooler-labs/toggl-cli/internal/entry"
	"github.com/watercooler-labs/toggl-cli/internal/git"
	"github.com/watercooler-labs/toggl-cli/internal/track"
	"github.com/watercooler-labs/toggl-cli/internal/ui/styles"
)

func init() {
	styles.Apply(styles.NoneTheme)
}

type fakeGit struct {
	branch string
	err    error
}

func (f fakeGit) CurrentBranch(context.Context, string) (string, error) {
	return f.branch, f.err
}

func (f fakeGit) TopLevel(context.Context, string) (string, error) {
	return "", f.err
}

var now = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

// newEnv returns an Env with a native backend, so no git binary is needed.
func newEnv(t *testing.T) Env {
	t.Helper()
	settings := config.Default(t.TempDir())
	settings.GitBackend = git.BackendNative
	return Env{
		Settings: settings,
		WorkDir:  t.TempDir(),
		Git:      fakeGit{branch: "feature/login"},
		Now:      now,
	}
}

func writeTrack(t *testing.T, env Env, dir, content string) string {
	t.Helper()
	path := track.NewLocator(env.Settings.Dir).PathFor(dir)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func saveSnapshot(t *testing.T, env Env, fetched time.Time) {
	t.Helper()
	ents := entry.Entities{
		Workspaces: []entry.Workspace{{ID: 1, Name: "Acme"}},
		Projects:   []entry.Project{{ID: 10, WorkspaceID: 1, Name: "Website", Active: true}},
		FetchedAt:  fetched,
	}
	if err := entry.SaveSnapshot(config.SnapshotPath(env.Settings.Dir), ents); err != nil {
		t.Fatal(err)
	}
}

func categories(issues []Issue) []IssueCategory {
	var out []IssueCategory
	for _, i := range issues {
		out = append(out, i.Category)
	}
	return out
}

func TestCheck_Healthy(t *testing.T) {
	t.Parallel()

	env := newEnv(t)
	writeTrack(t, env, env.WorkDir, "[\"*\"]\nproject = \"Website\"\n")
	saveSnapshot(t, env, now.Add(-time.Hour))

	r := Check(context.Background(), env)
	if len(r.Issues) != 0 {
		t.Fatalf("Issues = %+v, want none", r.Issues)
	}
	if r.HasErrors() {
		t.Error("HasErrors() = true")
	}
	if len(r.Passed) != 5 {
		t.Errorf("len(Passed) = %d, want 5: %+v", len(r.Passed), r.Passed)
	}
}

func TestCheck_Problems(t *testing.T) {
	t.Parallel()

	env := newEnv(t)
	env.SettingsErr = errors.New("unknown settings in settings.toml: colour")
	writeTrack(t, env, env.WorkDir, "[\"*\"]\nproject = \"Websit\"\n")
	orphan := writeTrack(t, env, filepath.Join(env.WorkDir, "gone"), "[\"*\"]\n")
	saveSnapshot(t, env, now.Add(-48*time.Hour))

	r := Check(context.Background(), env)

	want := []IssueCategory{CategorySettings, CategorySnapshot, CategorySnapshot, CategoryOrphan}
	if diff := cmp.Diff(want, categories(r.Issues)); diff != "" {
		t.Fatalf("issue categories mismatch (-want +got):\n%s", diff)
	}
	if !r.HasErrors() {
		t.Error("HasErrors() = false, want true for broken settings")
	}

	miss := r.Issues[2]
	if !strings.Contains(miss.Description, `"Websit"`) || !strings.Contains(miss.Hint, `"Website"`) {
		t.Errorf("unresolved project issue = %+v", miss)
	}

	fixable := r.Fixable()
	if len(fixable) != 1 || fixable[0].Key != orphan {
		t.Fatalf("Fixable() = %+v, want orphan %s", fixable, orphan)
	}
}

func TestCheck_MissingConfigAndSnapshot(t *testing.T) {
	t.Parallel()

	env := newEnv(t)
	env.Git = fakeGit{err: git.ErrNotRepository}

	r := Check(context.Background(), env)

	want := []IssueCategory{CategoryConfig, CategorySnapshot}
	if diff := cmp.Diff(want, categories(r.Issues)); diff != "" {
		t.Fatalf("issue categories mismatch (-want +got):\n%s", diff)
	}
	if r.HasErrors() {
		t.Error("HasErrors() = true, want only warnings")
	}
	if r.Issues[0].Hint != "run 'toggl config init'" {
		t.Errorf("config hint = %q", r.Issues[0].Hint)
	}
}

func TestCheck_ParseError(t *testing.T) {
	t.Parallel()

	env := newEnv(t)
	path := writeTrack(t, env, env.WorkDir, "[\"*\"]\nbillable = \"yes\"\n")
	saveSnapshot(t, env, now)

	r := Check(context.Background(), env)
	if !r.HasErrors() {
		t.Fatal("HasErrors() = false, want parse error")
	}
	if r.Issues[0].Category != CategoryConfig || r.Issues[0].Key != path {
		t.Errorf("first issue = %+v, want config error for %s", r.Issues[0], path)
	}
}

func TestCheck_MacroDiagnostics(t *testing.T) {
	t.Parallel()

	env := newEnv(t)
	env.Shell = func(context.Context, string, string) (string, error) {
		return "", errors.New("exit status 1")
	}
	writeTrack(t, env, env.WorkDir, "[\"*\"]\ndescription = \"{{$ false}}\"\n")
	saveSnapshot(t, env, now)

	r := Check(context.Background(), env)
	if len(r.Issues) != 1 {
		t.Fatalf("Issues = %+v, want one macro warning", r.Issues)
	}
	got := r.Issues[0]
	if got.Category != CategoryConfig || got.Severity != SeverityWarning {
		t.Errorf("issue = %+v, want config warning", got)
	}
	if !strings.Contains(got.Key, "description") {
		t.Errorf("issue key = %q, want field name", got.Key)
	}
}

func TestRun_Fix(t *testing.T) {
	t.Parallel()

	env := newEnv(t)
	writeTrack(t, env, env.WorkDir, "[\"*\"]\n")
	orphan := writeTrack(t, env, filepath.Join(env.WorkDir, "gone"), "[\"*\"]\n")
	saveSnapshot(t, env, now)

	var buf bytes.Buffer
	if err := Run(context.Background(), env, &buf, false); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(buf.String(), "toggl doctor --fix") {
		t.Errorf("output missing fix hint:\n%s", buf.String())
	}
	if _, err := os.Stat(orphan); err != nil {
		t.Fatalf("orphan removed without --fix: %v", err)
	}

	buf.Reset()
	if err := Run(context.Background(), env, &buf, true); err != nil {
		t.Fatalf("Run(fix) error = %v", err)
	}
	if _, err := os.Stat(orphan); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("orphan still exists after --fix: %v", err)
	}
	if !strings.Contains(buf.String(), "1 issue(s) fixed") {
		t.Errorf("output missing fix count:\n%s", buf.String())
	}
}

func TestRun_ErrorsReturned(t *testing.T) {
	t.Parallel()

	env := newEnv(t)
	env.SettingsErr = errors.New("bad")

	var buf bytes.Buffer
	err := Run(context.Background(), env, &buf, false)
	if !errors.Is(err, ErrIssuesFound) {
		t.Errorf("Run() error = %v, want ErrIssuesFound", err)
	}
	for _, heading := range []string{"Settings", "Track config", "Entity snapshot"} {
		if !strings.Contains(buf.String(), heading) {
			t.Errorf("output missing %q:\n%s", heading, buf.String())
		}
	}
}

func TestFix_UnknownAction(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n, err := Fix(&buf, []Issue{{Key: "x", FixAction: "explode"}})
	if err == nil || n != 0 {
		t.Errorf("Fix() = %d, %v, want 0 and error", n, err)
	}
}
