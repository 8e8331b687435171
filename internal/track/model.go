package track

import (
	"regexp"
	"slices"
)

// DefaultPattern is the key of the default block.
const DefaultPattern = "*"

// BranchConfig holds the entry defaults of one block. Nil fields are
// absent, either unset in the file or degraded by a failing macro.
type BranchConfig struct {
	Workspace   *string  `json:"workspace,omitempty" yaml:"workspace,omitempty"`
	Description *string  `json:"description,omitempty" yaml:"description,omitempty"`
	Project     *string  `json:"project,omitempty" yaml:"project,omitempty"`
	Task        *string  `json:"task,omitempty" yaml:"task,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Billable    bool     `json:"billable" yaml:"billable"`
}

// Rule is a branch pattern and the block it selects.
type Rule struct {
	Pattern string       `json:"pattern" yaml:"pattern"`
	Config  BranchConfig `json:"config" yaml:"config"`

	re *regexp.Regexp
}

// Matches reports whether branch matches the rule's pattern.
// The pattern is unanchored.
func (r Rule) Matches(branch string) bool {
	if r.re == nil {
		return false
	}
	return r.re.MatchString(branch)
}

// Diagnostic records a value that was dropped because a macro failed.
type Diagnostic struct {
	Block string `json:"block"`
	// Field is the key, with the element index for tags (e.g. "tags[1]").
	Field string `json:"field"`
	Err   error  `json:"-"`
}

func (d Diagnostic) String() string {
	return "[" + d.Block + "] " + d.Field + ": " + d.Err.Error()
}

// TrackConfig is a parsed config document. Rules are in document order,
// which is also their match priority.
type TrackConfig struct {
	Default     BranchConfig `json:"default" yaml:"default"`
	Rules       []Rule       `json:"rules" yaml:"rules"`
	Diagnostics []Diagnostic `json:"-" yaml:"-"`
}

// Clone returns a deep copy of c.
func (c BranchConfig) Clone() BranchConfig {
	out := c
	out.Workspace = clonePtr(c.Workspace)
	out.Description = clonePtr(c.Description)
	out.Project = clonePtr(c.Project)
	out.Task = clonePtr(c.Task)
	out.Tags = slices.Clone(c.Tags)
	return out
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
