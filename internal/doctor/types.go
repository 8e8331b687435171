package doctor

// IssueCategory groups issues by type.
type IssueCategory string

const (
	CategorySettings IssueCategory = "settings"
	CategoryGit      IssueCategory = "git"
	CategoryConfig   IssueCategory = "config"
	CategorySnapshot IssueCategory = "snapshot"
	CategoryOrphan   IssueCategory = "orphan"
)

// categoryOrder is the order issues are reported in.
var categoryOrder = []IssueCategory{
	CategorySettings,
	CategoryGit,
	CategoryConfig,
	CategorySnapshot,
	CategoryOrphan,
}

var categoryNames = map[IssueCategory]string{
	CategorySettings: "Settings",
	CategoryGit:      "Git",
	CategoryConfig:   "Track config",
	CategorySnapshot: "Entity snapshot",
	CategoryOrphan:   "Orphaned configs",
}

// Severity tells whether an issue breaks toggl or only degrades it.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// Issue represents a problem detected by doctor.
type Issue struct {
	Category    IssueCategory
	Severity    Severity
	Key         string // file path or field
	Description string // human-readable description
	Hint        string // what the user can do about it
	FixAction   string // what --fix would do; empty if not fixable
}

// Passed is a check that found nothing wrong.
type Passed struct {
	Category IssueCategory
	Message  string
}

// Report is the outcome of all checks.
type Report struct {
	Passed []Passed
	Issues []Issue
}

// HasErrors reports whether any issue is an error.
func (r Report) HasErrors() bool {
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Fixable returns the issues --fix can repair.
func (r Report) Fixable() []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.FixAction != "" {
			out = append(out, i)
		}
	}
	return out
}
