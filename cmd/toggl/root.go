package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/watercooler-labs/toggl-cli/internal/config"
	"github.com/watercooler-labs/toggl-cli/internal/git"
	"github.com/watercooler-labs/toggl-cli/internal/log"
	"github.com/watercooler-labs/toggl-cli/internal/output"
	"github.com/watercooler-labs/toggl-cli/internal/ui/styles"
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupConfig = "config"
)

// globalFlags are shared by every command.
type globalFlags struct {
	verbose bool
	quiet   bool
	timeout time.Duration
	dir     string
}

func newRootCmd() *cobra.Command {
	var (
		flags  globalFlags
		cancel context.CancelFunc
	)

	rootCmd := &cobra.Command{
		Use:   "toggl",
		Short: "Directory-scoped defaults for Toggl time entries",
		Long: `toggl derives time-entry defaults from where you work.

A track config belongs to a directory and applies to everything below it.
Its blocks are matched against the current git branch and may use macros
such as {{branch}} or {{$ command}} that are expanded on load.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, c, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			cancel = c
			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if cancel != nil {
				cancel()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", 0, "Abort if loading takes longer than this (e.g. 5s)")
	rootCmd.PersistentFlags().StringVarP(&flags.dir, "dir", "C", "", "Run as if started in this directory")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	_ = rootCmd.MarkPersistentFlagDirname("dir")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	rootCmd.AddCommand(newDraftCmd())
	rootCmd.AddCommand(newEntitiesCmd())

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// setup loads settings and attaches logger, printer, settings and working
// directory to the command context.
func setup(cmd *cobra.Command, flags globalFlags) (context.Context, context.CancelFunc, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := log.New(cmd.ErrOrStderr(), flags.verbose, flags.quiet)
	ctx = log.WithLogger(ctx, logger)

	settings, err := config.Load()
	ctx = config.WithSettingsError(ctx, err)
	if err != nil {
		// Defaults are still usable; doctor reports the details.
		logger.Warnf("%v", err)
	}
	ctx = config.WithSettings(ctx, &settings)

	if _, err := git.New(settings.GitBackend); err != nil {
		return nil, nil, err
	}

	workDir, err := resolveWorkDir(flags.dir)
	if err != nil {
		return nil, nil, err
	}
	ctx = config.WithWorkDir(ctx, workDir)

	interactive := output.IsTerminal(os.Stdin) && output.IsTerminal(os.Stderr)
	styles.Init(settings.Color, interactive)
	ctx = output.WithPrinter(ctx, output.NewColorWriter(cmd.OutOrStdout(), settings.Color, os.Environ()))

	cancel := context.CancelFunc(func() {})
	if flags.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, flags.timeout)
	}
	return ctx, cancel, nil
}

func resolveWorkDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", errors.New(abs + " is not a directory")
	}
	return abs, nil
}
