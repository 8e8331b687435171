package entry

import (
	"slices"

	"github.com/watercooler-labs/toggl-cli/internal/track"
)

// Overrides are values given on the command line. Empty fields keep the
// draft's value.
type Overrides struct {
	Description string
	Project     string
	Tags        []string
	Billable    bool
}

// ApplyOverrides returns e with the overrides applied. A new project drops
// a task that doesn't belong to it; an unknown one keeps the draft's project. The entry is billable if the flag, the
// draft or the project says so.
func ApplyOverrides(e Entry, o Overrides, ents Entities) Entry {
	if o.Description != "" {
		e.Description = o.Description
	}
	if o.Project != "" {
		if p, ok := ents.ProjectByName(o.Project, e.WorkspaceID); ok {
			e.Project = &p
		}
		if e.Task != nil && (e.Project == nil || e.Task.ProjectID != e.Project.ID) {
			e.Task = nil
		}
	}
	if len(o.Tags) > 0 {
		e.Tags = slices.Clone(o.Tags)
	}
	e.Billable = o.Billable || e.Billable || (e.Project != nil && e.Project.Billable != nil && *e.Project.Billable)
	return e
}

// Unresolved lists the names in cfg that did not resolve in e, with
// near-miss suggestions from the snapshot.
func Unresolved(cfg track.BranchConfig, e Entry, ents Entities) []Miss {
	var misses []Miss
	if cfg.Workspace != nil {
		if _, ok := ents.WorkspaceByName(*cfg.Workspace); !ok {
			misses = append(misses, Miss{Kind: "workspace", Name: *cfg.Workspace, Suggestions: Suggest(*cfg.Workspace, workspaceNames(ents))})
		}
	}
	if cfg.Project != nil && (e.Project == nil || e.Project.Name != *cfg.Project) {
		misses = append(misses, Miss{Kind: "project", Name: *cfg.Project, Suggestions: Suggest(*cfg.Project, projectNames(ents))})
	}
	if cfg.Task != nil && e.Task == nil {
		var candidates []string
		if e.Project != nil {
			candidates = taskNames(ents, e.Project.ID)
		}
		misses = append(misses, Miss{Kind: "task", Name: *cfg.Task, Suggestions: Suggest(*cfg.Task, candidates)})
	}
	return misses
}

// Miss is a configured name that matched nothing in the snapshot.
type Miss struct {
	Kind        string   `json:"kind"`
	Name        string   `json:"name"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func workspaceNames(ents Entities) []string {
	names := make([]string, len(ents.Workspaces))
	for i, w := range ents.Workspaces {
		names[i] = w.Name
	}
	return names
}

func projectNames(ents Entities) []string {
	names := make([]string, 0, len(ents.Projects))
	for _, p := range ents.Projects {
		names = append(names, p.Name)
	}
	return names
}

func taskNames(ents Entities, projectID int64) []string {
	var names []string
	for _, t := range ents.Tasks {
		if t.ProjectID == projectID {
			names = append(names, t.Name)
		}
	}
	return names
}
