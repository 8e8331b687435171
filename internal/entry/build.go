package entry

import (
	"slices"

	"github.com/watercooler-labs/toggl-cli/internal/track"
)

// Build resolves cfg against ents.
//
// The workspace falls back to fallbackWorkspace, or to the user's default
// workspace when that is zero. Projects and tasks match by exact name, a
// project in the resolved workspace wins over a namesake elsewhere, and a
// task must belong to the resolved project.
func Build(cfg track.BranchConfig, ents Entities, fallbackWorkspace int64) Entry {
	e := Entry{
		WorkspaceID: fallbackWorkspace,
		Tags:        slices.Clone(cfg.Tags),
		Billable:    cfg.Billable,
	}
	if e.WorkspaceID == 0 {
		e.WorkspaceID = ents.User.DefaultWorkspaceID
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}

	if cfg.Workspace != nil {
		if w, ok := ents.WorkspaceByName(*cfg.Workspace); ok {
			e.WorkspaceID = w.ID
		}
	}
	if cfg.Description != nil {
		e.Description = *cfg.Description
	}
	if cfg.Project != nil {
		if p, ok := ents.ProjectByName(*cfg.Project, e.WorkspaceID); ok {
			e.Project = &p
		}
	}
	if cfg.Task != nil && e.Project != nil {
		if t, ok := ents.TaskByName(*cfg.Task, e.Project.ID); ok {
			e.Task = &t
		}
	}
	return e
}
