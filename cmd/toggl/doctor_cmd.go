package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/watercooler-labs/toggl-cli/internal/config"
	"github.com/watercooler-labs/toggl-cli/internal/doctor"
	"github.com/watercooler-labs/toggl-cli/internal/output"
)

func newDoctorCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Diagnose and repair issues",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Diagnose the toggl setup for the current directory.

Checks:
- settings.toml is valid
- the git backend works and which branch is checked out
- a track config applies, parses, and its macros resolve
- the entity snapshot exists, is fresh, and knows the configured names
- no track configs are left for deleted directories

Only orphaned configs can be fixed automatically.`,
		Example: `  toggl doctor          # Check for issues
  toggl doctor --fix    # Remove orphaned configs`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			env := doctor.Env{
				Settings:    *config.FromContext(ctx),
				SettingsErr: config.SettingsErrorFromContext(ctx),
				WorkDir:     config.WorkDirFromContext(ctx),
				Git:         querier(ctx),
				Shell:       shellRunner(ctx),
				Now:         time.Now(),
			}
			return doctor.Run(ctx, env, output.FromContext(ctx).Writer(), fix)
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Remove orphaned configs")

	return cmd
}
