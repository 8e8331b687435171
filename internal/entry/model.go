// Package entry turns a selected track block into a draft time entry.
//
// Names from the config are resolved against an Entities snapshot fetched
// elsewhere. Nothing here performs I/O; names that don't resolve leave the
// corresponding field empty.
package entry

import "time"

// Workspace is a remote workspace.
type Workspace struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Project is a remote project. Billable is nil when the workspace doesn't
// support billing.
type Project struct {
	ID          int64  `json:"id" yaml:"id"`
	WorkspaceID int64  `json:"workspace_id" yaml:"workspace_id"`
	Name        string `json:"name" yaml:"name"`
	Billable    *bool  `json:"billable,omitempty" yaml:"billable,omitempty"`
	Active      bool   `json:"active" yaml:"active"`
}

// Task belongs to exactly one project.
type Task struct {
	ID          int64  `json:"id" yaml:"id"`
	ProjectID   int64  `json:"project_id" yaml:"project_id"`
	WorkspaceID int64  `json:"workspace_id" yaml:"workspace_id"`
	Name        string `json:"name" yaml:"name"`
}

// User is the account the snapshot was fetched for.
type User struct {
	DefaultWorkspaceID int64  `json:"default_workspace_id" yaml:"default_workspace_id"`
	Email              string `json:"email,omitempty" yaml:"email,omitempty"`
}

// Entities is a snapshot of the remote objects names are resolved against.
type Entities struct {
	User       User        `json:"user" yaml:"user"`
	Workspaces []Workspace `json:"workspaces" yaml:"workspaces"`
	Projects   []Project   `json:"projects" yaml:"projects"`
	Tasks      []Task      `json:"tasks" yaml:"tasks"`
	FetchedAt  time.Time   `json:"fetched_at" yaml:"fetched_at"`
}

// Entry is a draft time entry. Task is only set together with its Project.
type Entry struct {
	WorkspaceID int64    `json:"workspace_id" yaml:"workspace_id"`
	Description string   `json:"description" yaml:"description"`
	Project     *Project `json:"project,omitempty" yaml:"project,omitempty"`
	Task        *Task    `json:"task,omitempty" yaml:"task,omitempty"`
	Tags        []string `json:"tags" yaml:"tags"`
	Billable    bool     `json:"billable" yaml:"billable"`
}

// WorkspaceByName returns the workspace with exactly this name.
func (e *Entities) WorkspaceByName(name string) (Workspace, bool) {
	for _, w := range e.Workspaces {
		if w.Name == name {
			return w, true
		}
	}
	return Workspace{}, false
}

// ProjectByName returns the project with exactly this name, preferring one
// in workspaceID over the first match elsewhere.
func (e *Entities) ProjectByName(name string, workspaceID int64) (Project, bool) {
	var (
		first Project
		found bool
	)
	for _, p := range e.Projects {
		if p.Name != name {
			continue
		}
		if p.WorkspaceID == workspaceID {
			return p, true
		}
		if !found {
			first, found = p, true
		}
	}
	return first, found
}

// TaskByName returns the task with this name inside project projectID.
func (e *Entities) TaskByName(name string, projectID int64) (Task, bool) {
	for _, t := range e.Tasks {
		if t.Name == name && t.ProjectID == projectID {
			return t, true
		}
	}
	return Task{}, false
}
