package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/watercooler-labs/toggl-cli/internal/config"
	"github.com/watercooler-labs/toggl-cli/internal/entry"
	"github.com/watercooler-labs/toggl-cli/internal/log"
	"github.com/watercooler-labs/toggl-cli/internal/output"
	"github.com/watercooler-labs/toggl-cli/internal/track"
	"github.com/watercooler-labs/toggl-cli/internal/ui/static"
)

// draftResult is the JSON/YAML shape of 'draft'.
type draftResult struct {
	Entry      entry.Entry  `json:"entry" yaml:"entry"`
	Branch     string       `json:"branch,omitempty" yaml:"branch,omitempty"`
	Pattern    string       `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	File       string       `json:"file,omitempty" yaml:"file,omitempty"`
	Unresolved []entry.Miss `json:"unresolved,omitempty" yaml:"unresolved,omitempty"`
}

func newDraftCmd() *cobra.Command {
	var (
		branch    string
		overrides entry.Overrides
		strict    bool
		jsonFlag  bool
		yamlFlag  bool
	)

	cmd := &cobra.Command{
		Use:     "draft",
		Short:   "Build the default time entry for the current directory",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Build the time entry that would be started here.

The track config for the current directory is loaded, the block for the
current git branch is selected, and its names are resolved against the
entity snapshot. Flags override the configured values.`,
		Example: `  toggl draft
  toggl draft -d "Code review" -t review
  toggl draft --branch fix/login --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			format, err := output.ParseFormat(jsonFlag, yamlFlag)
			if err != nil {
				return err
			}

			var opts []track.ParseOption
			if strict {
				opts = append(opts, track.Strict())
			}

			var (
				block track.BranchConfig
				res   draftResult
			)
			lt, err := loadTrack(ctx, opts...)
			switch {
			case err == nil:
				block, res.Branch, res.Pattern = selectBlock(ctx, lt.Config, branch)
				res.File = lt.Location.File
			case isNotFound(err):
				l.Warnf("no track config, drafting from flags only")
			default:
				return err
			}

			ents, snapErr := entry.LoadSnapshot(config.SnapshotPath(config.FromContext(ctx).Dir))
			if snapErr != nil && !errors.Is(snapErr, entry.ErrNoSnapshot) {
				return snapErr
			}
			if snapErr != nil && (block.Project != nil || block.Task != nil || overrides.Project != "") {
				l.Warnf("no entity snapshot, project and task can't be resolved (run 'toggl entities import')")
			}

			e := entry.Build(block, ents, ents.User.DefaultWorkspaceID)
			e = entry.ApplyOverrides(e, overrides, ents)
			res.Entry = e

			if snapErr == nil {
				effective := block.Clone()
				if overrides.Project != "" {
					effective.Project = &overrides.Project
				}
				res.Unresolved = entry.Unresolved(effective, e, ents)
				for _, m := range res.Unresolved {
					l.Warnf("%s", missMessage(m))
				}
			}

			return output.FromContext(ctx).Render(format, res, func(p *output.Printer) error {
				p.Print(static.RenderEntry(e))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Match this branch instead of the current one")
	cmd.Flags().StringVarP(&overrides.Description, "description", "d", "", "Override the description")
	cmd.Flags().StringVarP(&overrides.Project, "project", "p", "", "Override the project")
	cmd.Flags().StringArrayVarP(&overrides.Tags, "tag", "t", nil, "Override the tags (repeatable)")
	cmd.Flags().BoolVar(&overrides.Billable, "billable", false, "Mark the entry billable")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail if a macro in the default block fails")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&yamlFlag, "yaml", false, "Output as YAML")

	return cmd
}

func missMessage(m entry.Miss) string {
	msg := fmt.Sprintf("%s %q not found in snapshot", m.Kind, m.Name)
	if len(m.Suggestions) > 0 {
		quoted := make([]string, len(m.Suggestions))
		for i, s := range m.Suggestions {
			quoted[i] = fmt.Sprintf("%q", s)
		}
		msg += ", did you mean " + strings.Join(quoted, ", ") + "?"
	}
	return msg
}
