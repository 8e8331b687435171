package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/watercooler-labs/toggl-cli/internal/config"
	"github.com/watercooler-labs/toggl-cli/internal/entry"
	"github.com/watercooler-labs/toggl-cli/internal/log"
	"github.com/watercooler-labs/toggl-cli/internal/output"
	"github.com/watercooler-labs/toggl-cli/internal/ui/static"
	"github.com/watercooler-labs/toggl-cli/internal/ui/styles"
)

func newEntitiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "entities",
		Short:   "Manage the workspace/project/task snapshot",
		Aliases: []string{"ent"},
		GroupID: GroupCore,
		Long: `Manage the local snapshot of workspaces, projects and tasks that
project and task names in track configs are resolved against.`,
	}

	cmd.AddCommand(newEntitiesImportCmd())
	cmd.AddCommand(newEntitiesListCmd())

	return cmd
}

func newEntitiesImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the snapshot with a JSON or YAML file",
		Args:  cobra.ExactArgs(1),
		Example: `  toggl entities import entities.json
  toggl entities import export.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ents, err := entry.ReadFile(args[0], time.Now())
			if err != nil {
				return err
			}
			path := config.SnapshotPath(config.FromContext(ctx).Dir)
			if err := entry.SaveSnapshot(path, ents); err != nil {
				return err
			}
			output.FromContext(ctx).Printf("%s Imported %d workspace(s), %d project(s), %d task(s) into %s\n",
				styles.OK(), len(ents.Workspaces), len(ents.Projects), len(ents.Tasks), path)
			return nil
		},
	}
}

func newEntitiesListCmd() *cobra.Command {
	var (
		jsonFlag bool
		yamlFlag bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "Show the snapshot",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			format, err := output.ParseFormat(jsonFlag, yamlFlag)
			if err != nil {
				return err
			}
			s := config.FromContext(ctx)
			ents, err := entry.LoadSnapshot(config.SnapshotPath(s.Dir))
			if err != nil {
				return err
			}
			if age := ents.Age(time.Now()); s.SnapshotMaxAge.Duration > 0 && age > s.SnapshotMaxAge.Duration {
				log.FromContext(ctx).Warnf("snapshot is %s old, re-import it", age.Round(time.Minute))
			}

			return output.FromContext(ctx).Render(format, ents, func(p *output.Printer) error {
				p.Print(renderEntities(ents))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&yamlFlag, "yaml", false, "Output as YAML")

	return cmd
}

func renderEntities(ents entry.Entities) string {
	workspaces := make(map[int64]string, len(ents.Workspaces))
	for _, w := range ents.Workspaces {
		workspaces[w.ID] = w.Name
	}
	projects := make(map[int64]string, len(ents.Projects))
	for _, p := range ents.Projects {
		projects[p.ID] = p.Name
	}

	rows := make([][]string, 0, len(ents.Projects)+len(ents.Tasks))
	for _, p := range ents.Projects {
		billable := styles.MutedStyle.Render("-")
		if p.Billable != nil {
			billable = strconv.FormatBool(*p.Billable)
		}
		name := p.Name
		if !p.Active {
			name += styles.MutedStyle.Render(" (archived)")
		}
		rows = append(rows, []string{workspaces[p.WorkspaceID], name, "", billable})
	}
	for _, t := range ents.Tasks {
		rows = append(rows, []string{workspaces[t.WorkspaceID], projects[t.ProjectID], t.Name, ""})
	}

	out := static.RenderTable([]string{"WORKSPACE", "PROJECT", "TASK", "BILLABLE"}, rows)
	if !ents.FetchedAt.IsZero() {
		out += styles.MutedStyle.Render(fmt.Sprintf("fetched %s", ents.FetchedAt.Local().Format(time.DateTime))) + "\n"
	}
	return out
}
