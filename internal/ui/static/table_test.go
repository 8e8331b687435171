package static

import (
	"strings"
	"testing"

	"github.com/watercooler-labs/toggl-cli/internal/entry"
	"github.com/watercooler-labs/toggl-cli/internal/track"
	"github.com/watercooler-labs/toggl-cli/internal/ui/styles"
)

func init() {
	// Plain output keeps the expectations readable.
	styles.Apply(styles.NoneTheme)
}

func ptr(s string) *string { return &s }

func TestRenderTable(t *testing.T) {
	t.Parallel()

	if got := RenderTable([]string{"A"}, nil); got != "" {
		t.Errorf("RenderTable with no rows = %q, want empty", got)
	}

	got := RenderTable([]string{"DIR", "FILE"}, [][]string{
		{"/work/acme", "L3dvcmsvYWNtZQ.toml"},
		{"(global)", "global.toml"},
	})
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("RenderTable lines = %d, want 3:\n%s", len(lines), got)
	}
	if !strings.Contains(lines[0], "DIR") {
		t.Errorf("header line = %q", lines[0])
	}
	// columns are aligned
	if strings.Index(lines[1], "L3dv") != strings.Index(lines[2], "global.toml") {
		t.Errorf("columns not aligned:\n%s", got)
	}
}

func TestRenderBranchConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		bc   track.BranchConfig
		want string
	}{
		{
			name: "empty",
			bc:   track.BranchConfig{},
			want: "workspace: Default\ndescription: None\nproject: None\ntask: None\ntags: None\nbillable: false\n",
		},
		{
			name: "full",
			bc: track.BranchConfig{
				Workspace:   ptr("Acme"),
				Description: ptr("login"),
				Project:     ptr("Website"),
				Task:        ptr("Dev"),
				Tags:        []string{"a", "b"},
				Billable:    true,
			},
			want: "workspace: Acme\ndescription: login\nproject: Website\ntask: Dev\ntags: [a, b]\nbillable: true\n",
		},
		{
			name: "empty tag list",
			bc:   track.BranchConfig{Tags: []string{}},
			want: "workspace: Default\ndescription: None\nproject: None\ntask: None\ntags: []\nbillable: false\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := RenderBranchConfig(tt.bc); got != tt.want {
				t.Errorf("RenderBranchConfig =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestRenderTrackConfig(t *testing.T) {
	t.Parallel()

	cfg := &track.TrackConfig{
		Default: track.BranchConfig{Description: ptr("default")},
		Rules: []track.Rule{
			{Pattern: "^feature-", Config: track.BranchConfig{Billable: true}},
		},
	}
	got := RenderTrackConfig(cfg)
	def := strings.Index(got, `["*"]`)
	rule := strings.Index(got, `["^feature-"]`)
	if def != 0 || rule <= def {
		t.Errorf("RenderTrackConfig block order wrong:\n%s", got)
	}
	if !strings.Contains(got, "description: default") || !strings.Contains(got, "billable: true") {
		t.Errorf("RenderTrackConfig missing fields:\n%s", got)
	}
}

func TestRenderEntry(t *testing.T) {
	t.Parallel()

	e := entry.Entry{
		WorkspaceID: 2,
		Description: "login",
		Project:     &entry.Project{ID: 10, Name: "Website"},
		Task:        &entry.Task{ID: 100, ProjectID: 10, Name: "Dev"},
		Tags:        []string{},
	}
	want := "workspace: 2\ndescription: login\nproject: Website (10)\ntask: Dev (100)\ntags: None\nbillable: false\n"
	if got := RenderEntry(e); got != want {
		t.Errorf("RenderEntry =\n%s\nwant\n%s", got, want)
	}
}
