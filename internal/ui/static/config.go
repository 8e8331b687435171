package static

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/watercooler-labs/toggl-cli/internal/entry"
	"github.com/watercooler-labs/toggl-cli/internal/track"
	"github.com/watercooler-labs/toggl-cli/internal/ui/styles"
)

// none is shown for absent values.
const none = "None"

// RenderBranchConfig lists the fields of one block. An absent workspace
// reads "Default" since the user's default workspace applies.
func RenderBranchConfig(bc track.BranchConfig) string {
	tags := none
	if bc.Tags != nil {
		tags = "[" + strings.Join(bc.Tags, ", ") + "]"
	}
	return renderFields([][2]string{
		{"workspace", valueOr(bc.Workspace, "Default")},
		{"description", valueOr(bc.Description, none)},
		{"project", valueOr(bc.Project, none)},
		{"task", valueOr(bc.Task, none)},
		{"tags", tags},
		{"billable", strconv.FormatBool(bc.Billable)},
	})
}

// RenderTrackConfig lists the default block followed by every rule in
// match order.
func RenderTrackConfig(cfg *track.TrackConfig) string {
	var b strings.Builder
	b.WriteString(blockHeader(track.DefaultPattern))
	b.WriteString(RenderBranchConfig(cfg.Default))
	for _, r := range cfg.Rules {
		b.WriteString("\n")
		b.WriteString(blockHeader(r.Pattern))
		b.WriteString(RenderBranchConfig(r.Config))
	}
	return b.String()
}

// RenderEntry lists a draft entry with resolved names and ids.
func RenderEntry(e entry.Entry) string {
	project, task := none, none
	if e.Project != nil {
		project = fmt.Sprintf("%s (%d)", e.Project.Name, e.Project.ID)
	}
	if e.Task != nil {
		task = fmt.Sprintf("%s (%d)", e.Task.Name, e.Task.ID)
	}
	description := e.Description
	if description == "" {
		description = none
	}
	tags := none
	if len(e.Tags) > 0 {
		tags = "[" + strings.Join(e.Tags, ", ") + "]"
	}
	return renderFields([][2]string{
		{"workspace", strconv.FormatInt(e.WorkspaceID, 10)},
		{"description", description},
		{"project", project},
		{"task", task},
		{"tags", tags},
		{"billable", strconv.FormatBool(e.Billable)},
	})
}

func blockHeader(pattern string) string {
	return styles.AccentStyle.Render(fmt.Sprintf("[%q]", pattern)) + "\n"
}

func renderFields(fields [][2]string) string {
	var b strings.Builder
	for _, f := range fields {
		value := f[1]
		if value == none || value == "Default" {
			value = styles.MutedStyle.Render(value)
		}
		fmt.Fprintf(&b, "%s: %s\n", styles.KeyStyle.Render(f[0]), value)
	}
	return b.String()
}

func valueOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
