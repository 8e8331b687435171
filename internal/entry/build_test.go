package entry

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/watercooler-labs/toggl-cli/internal/track"
)

func ptr[T any](v T) *T { return &v }

func testEntities() Entities {
	return Entities{
		User: User{DefaultWorkspaceID: 1, Email: "me@example.com"},
		Workspaces: []Workspace{
			{ID: 1, Name: "Personal"},
			{ID: 2, Name: "Acme"},
		},
		Projects: []Project{
			{ID: 10, WorkspaceID: 2, Name: "Website", Billable: ptr(true), Active: true},
			{ID: 11, WorkspaceID: 2, Name: "Internal", Billable: ptr(false), Active: true},
			{ID: 12, WorkspaceID: 1, Name: "Reading", Active: true},
		},
		Tasks: []Task{
			{ID: 100, ProjectID: 10, WorkspaceID: 2, Name: "Development"},
			{ID: 101, ProjectID: 11, WorkspaceID: 2, Name: "Meetings"},
			{ID: 102, ProjectID: 11, WorkspaceID: 2, Name: "Development"},
		},
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()
	ents := testEntities()

	tests := []struct {
		name     string
		cfg      track.BranchConfig
		fallback int64
		want     Entry
	}{
		{
			name:     "empty config uses fallback workspace",
			cfg:      track.BranchConfig{},
			fallback: 7,
			want:     Entry{WorkspaceID: 7, Tags: []string{}},
		},
		{
			name: "zero fallback uses user default",
			cfg:  track.BranchConfig{},
			want: Entry{WorkspaceID: 1, Tags: []string{}},
		},
		{
			name: "everything resolves",
			cfg: track.BranchConfig{
				Workspace:   ptr("Acme"),
				Description: ptr("Login page"),
				Project:     ptr("Website"),
				Task:        ptr("Development"),
				Tags:        []string{"feature/login", "dev"},
				Billable:    true,
			},
			want: Entry{
				WorkspaceID: 2,
				Description: "Login page",
				Project:     &ents.Projects[0],
				Task:        &ents.Tasks[0],
				Tags:        []string{"feature/login", "dev"},
				Billable:    true,
			},
		},
		{
			name: "task resolved within its project",
			cfg:  track.BranchConfig{Project: ptr("Internal"), Task: ptr("Development")},
			want: Entry{WorkspaceID: 1, Project: &ents.Projects[1], Task: &ents.Tasks[2], Tags: []string{}},
		},
		{
			name: "task of another project is dropped",
			cfg:  track.BranchConfig{Project: ptr("Website"), Task: ptr("Meetings")},
			want: Entry{WorkspaceID: 1, Project: &ents.Projects[0], Tags: []string{}},
		},
		{
			name: "task without project is dropped",
			cfg:  track.BranchConfig{Task: ptr("Development")},
			want: Entry{WorkspaceID: 1, Tags: []string{}},
		},
		{
			name: "unknown names degrade",
			cfg:  track.BranchConfig{Workspace: ptr("Nope"), Project: ptr("website"), Task: ptr("Development")},
			want: Entry{WorkspaceID: 1, Tags: []string{}},
		},
		{
			name: "billable copied, not taken from project",
			cfg:  track.BranchConfig{Project: ptr("Website")},
			want: Entry{WorkspaceID: 1, Project: &ents.Projects[0], Tags: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Build(tt.cfg, ents, tt.fallback)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Build mismatch (-want +got):\n%s", diff)
			}
			if got.Task != nil && (got.Project == nil || got.Task.ProjectID != got.Project.ID) {
				t.Errorf("Build attached task %d to project %v", got.Task.ID, got.Project)
			}
		})
	}
}

func TestBuild_DoesNotAlias(t *testing.T) {
	t.Parallel()
	ents := testEntities()
	cfg := track.BranchConfig{Project: ptr("Website"), Tags: []string{"a"}}

	got := Build(cfg, ents, 0)
	got.Tags[0] = "changed"
	got.Project.Name = "changed"

	if cfg.Tags[0] != "a" {
		t.Error("Build shares the tag slice with the config")
	}
	if ents.Projects[0].Name != "Website" {
		t.Error("Build shares the project with the snapshot")
	}
}

func TestBuild_ProjectPrefersWorkspace(t *testing.T) {
	t.Parallel()

	ents := Entities{
		User:       User{DefaultWorkspaceID: 1},
		Workspaces: []Workspace{{ID: 1, Name: "Personal"}, {ID: 2, Name: "Acme"}},
		Projects: []Project{
			{ID: 10, WorkspaceID: 1, Name: "Website"},
			{ID: 20, WorkspaceID: 2, Name: "Website"},
			{ID: 30, WorkspaceID: 1, Name: "Blog"},
		},
	}

	tests := []struct {
		name   string
		cfg    track.BranchConfig
		wantID int64
	}{
		{"default workspace", track.BranchConfig{Project: ptr("Website")}, 10},
		{"named workspace", track.BranchConfig{Workspace: ptr("Acme"), Project: ptr("Website")}, 20},
		{"falls back to other workspace", track.BranchConfig{Workspace: ptr("Acme"), Project: ptr("Blog")}, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := Build(tt.cfg, ents, 0)
			if e.Project == nil || e.Project.ID != tt.wantID {
				t.Errorf("Project = %+v, want id %d", e.Project, tt.wantID)
			}
		})
	}

	e := ApplyOverrides(Entry{WorkspaceID: 2, Tags: []string{}}, Overrides{Project: "Website"}, ents)
	if e.Project == nil || e.Project.ID != 20 {
		t.Errorf("override Project = %+v, want id 20", e.Project)
	}
}
