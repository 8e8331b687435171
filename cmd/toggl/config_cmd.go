package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/watercooler-labs/toggl-cli/internal/config"
	"github.com/watercooler-labs/toggl-cli/internal/editor"
	"github.com/watercooler-labs/toggl-cli/internal/log"
	"github.com/watercooler-labs/toggl-cli/internal/output"
	"github.com/watercooler-labs/toggl-cli/internal/track"
	"github.com/watercooler-labs/toggl-cli/internal/ui/prompt"
	"github.com/watercooler-labs/toggl-cli/internal/ui/static"
	"github.com/watercooler-labs/toggl-cli/internal/ui/styles"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage track configs",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage track configs.

Track configs live in the toggl config directory, one file per tracked
directory, plus an optional global.toml used when no directory matches.
The directory is $TOGGL_CONFIG_HOME, or toggl-cli under $XDG_CONFIG_HOME
or ~/.config.`,
		Example: `  toggl config init          # Create a config for this directory
  toggl config show          # Show the parsed config
  toggl config active        # Show the block for the current branch
  toggl config edit          # Open the config in $EDITOR`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigActiveCmd())
	cmd.AddCommand(newConfigPathCmd())
	cmd.AddCommand(newConfigEditCmd())
	cmd.AddCommand(newConfigDeleteCmd())
	cmd.AddCommand(newConfigListCmd())
	cmd.AddCommand(newConfigMacrosCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force    bool
		stdout   bool
		global   bool
		edit     bool
		settings bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a track config from the default template",
		Args:  cobra.NoArgs,
		Long: `Create a track config from the default template.

Without flags, the config belongs to the current directory. If a config
in this directory or a parent already applies, init refuses (or opens it
with --edit); -f creates one for this directory anyway. With --global,
the fallback config used everywhere else is created instead. With
--settings, settings.toml is written as well.`,
		Example: `  toggl config init            # Config for this directory
  toggl config init --global   # Global fallback config
  toggl config init -e         # Create and open in $EDITOR
  toggl config init -s         # Print the template to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			s := config.FromContext(ctx)

			if stdout {
				out.Print(track.DefaultTemplate())
				return nil
			}

			loc := locator(ctx)
			workDir := config.WorkDirFromContext(ctx)
			path := loc.PathFor(workDir)
			if global {
				path = loc.GlobalPath()
			} else if !force {
				// A config in this directory or a parent already applies here.
				if found, err := loc.Locate(workDir); err == nil && !found.Global {
					if edit {
						out.Printf("Config file already exists at %s\n", found.File)
						return editor.Open(ctx, s.EditorCommand(), found.File)
					}
					return fmt.Errorf("config file already exists at %s (use -f to create one for this directory)", found.File)
				}
			}
			if err := writeNew(path, track.DefaultTemplate(), force); err != nil {
				return err
			}
			out.Printf("Created config file: %s\n", path)

			if settings {
				p, err := config.WriteDefault(s.Dir, force)
				if err != nil {
					return err
				}
				out.Printf("Created settings file: %s\n", p)
			}

			if edit {
				return editor.Open(ctx, s.EditorCommand(), path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print the template to stdout")
	cmd.Flags().BoolVarP(&global, "global", "g", false, "Create the global fallback config")
	cmd.Flags().BoolVarP(&edit, "edit", "e", false, "Open the new config in the editor")
	cmd.Flags().BoolVar(&settings, "settings", false, "Also write the default settings.toml")
	cmd.MarkFlagsMutuallyExclusive("stdout", "edit")

	return cmd
}

// writeNew writes content to path, creating parent directories. An
// existing file is only replaced with force.
func writeNew(path, content string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

func newConfigShowCmd() *cobra.Command {
	var (
		branch   string
		jsonFlag bool
		yamlFlag bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the parsed track config",
		Args:  cobra.NoArgs,
		Long: `Show the track config for the current directory with every macro
expanded. Values whose macro failed are shown as None.`,
		Example: `  toggl config show
  toggl config show --branch feature/login
  toggl config show --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			format, err := output.ParseFormat(jsonFlag, yamlFlag)
			if err != nil {
				return err
			}
			lt, err := loadTrack(ctx)
			if err != nil {
				return err
			}
			_, usedBranch, pattern := selectBlock(ctx, lt.Config, branch)

			return output.FromContext(ctx).Render(format, lt.Config, func(p *output.Printer) error {
				p.Printf("%s %s\n", styles.MutedStyle.Render("#"), lt.Location.File)
				if usedBranch != "" {
					p.Printf("%s branch %s selects [%q]\n\n", styles.MutedStyle.Render("#"), usedBranch, pattern)
				} else {
					p.Printf("%s no branch, default block applies\n\n", styles.MutedStyle.Render("#"))
				}
				p.Print(static.RenderTrackConfig(lt.Config))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Match this branch instead of the current one")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&yamlFlag, "yaml", false, "Output as YAML")

	return cmd
}

// activeResult is the JSON/YAML shape of 'config active'.
type activeResult struct {
	File    string             `json:"file" yaml:"file"`
	Root    string             `json:"root" yaml:"root"`
	Global  bool               `json:"global" yaml:"global"`
	Branch  string             `json:"branch,omitempty" yaml:"branch,omitempty"`
	Pattern string             `json:"pattern" yaml:"pattern"`
	Config  track.BranchConfig `json:"config" yaml:"config"`
}

func newConfigActiveCmd() *cobra.Command {
	var (
		branch   string
		jsonFlag bool
		yamlFlag bool
	)

	cmd := &cobra.Command{
		Use:   "active",
		Short: "Show the block that applies to the current branch",
		Args:  cobra.NoArgs,
		Example: `  toggl config active
  toggl config active -b release-1.2 --yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			format, err := output.ParseFormat(jsonFlag, yamlFlag)
			if err != nil {
				return err
			}
			lt, err := loadTrack(ctx)
			if err != nil {
				return err
			}
			block, usedBranch, pattern := selectBlock(ctx, lt.Config, branch)
			res := activeResult{
				File:    lt.Location.File,
				Root:    lt.Location.Root,
				Global:  lt.Location.Global,
				Branch:  usedBranch,
				Pattern: pattern,
				Config:  block,
			}

			return output.FromContext(ctx).Render(format, res, func(p *output.Printer) error {
				p.Printf("%s\n", styles.AccentStyle.Render(fmt.Sprintf("[%q]", pattern)))
				p.Print(static.RenderBranchConfig(block))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Match this branch instead of the current one")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&yamlFlag, "yaml", false, "Output as YAML")

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	var (
		copyPath bool
		forCwd   bool
	)

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the path of the track config",
		Args:  cobra.NoArgs,
		Long: `Print the path of the track config that applies to the current
directory. With --for-cwd, print where the config for this exact directory
is (or would be) stored, whether or not it exists.`,
		Example: `  toggl config path
  toggl config path --for-cwd
  toggl config path --copy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			workDir := config.WorkDirFromContext(ctx)

			var path string
			if forCwd {
				path = locator(ctx).PathFor(workDir)
			} else {
				loc, err := locator(ctx).Locate(workDir)
				if err != nil {
					return err
				}
				path = loc.File
			}

			output.FromContext(ctx).Println(path)
			if copyPath {
				if err := clipboard.WriteAll(path); err != nil {
					log.FromContext(ctx).Warnf("failed to copy to clipboard: %v", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&copyPath, "copy", "c", false, "Copy the path to the clipboard")
	cmd.Flags().BoolVar(&forCwd, "for-cwd", false, "Path for this directory, even if no config exists")

	return cmd
}

func newConfigEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the track config in your editor",
		Args:  cobra.NoArgs,
		Long: `Open the track config that applies to the current directory in the
editor from settings.toml, $VISUAL or $EDITOR. The file is parsed again
afterwards and problems are reported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			loc, err := locator(ctx).Locate(config.WorkDirFromContext(ctx))
			if err != nil {
				return err
			}
			if err := editor.Open(ctx, config.FromContext(ctx).EditorCommand(), loc.File); err != nil {
				return err
			}
			if _, err := loadTrack(ctx); err != nil {
				log.FromContext(ctx).Warnf("%v", err)
			}
			return nil
		},
	}
}

func newConfigDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete",
		Short:   "Delete the track config",
		Aliases: []string{"rm"},
		Args:    cobra.NoArgs,
		Long: `Delete the track config that applies to the current directory.
Asks for confirmation unless --yes is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			loc, err := locator(ctx).Locate(config.WorkDirFromContext(ctx))
			if err != nil {
				return err
			}

			if !yes {
				if !output.IsTerminal(os.Stdin) {
					return errors.New("refusing to delete without confirmation (use --yes)")
				}
				res, err := prompt.Confirm(fmt.Sprintf("Delete %s?", loc.File))
				if err != nil {
					return err
				}
				if !res.Confirmed {
					return nil
				}
			}

			if err := os.Remove(loc.File); err != nil {
				return err
			}
			output.FromContext(ctx).Printf("Deleted %s\n", loc.File)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Don't ask for confirmation")

	return cmd
}

func newConfigListCmd() *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List all track configs",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			configs, err := locator(ctx).List()
			if err != nil {
				return err
			}
			format, _ := output.ParseFormat(jsonFlag, false)

			return output.FromContext(ctx).Render(format, configs, func(p *output.Printer) error {
				if len(configs) == 0 {
					log.FromContext(ctx).Println("No track configs. Run 'toggl config init' to create one.")
					return nil
				}
				rows := make([][]string, 0, len(configs))
				for _, c := range configs {
					dir := c.Dir
					switch {
					case c.Global:
						dir = styles.MutedStyle.Render("(global)")
					case dir == "":
						dir = styles.MutedStyle.Render("(unknown)")
					}
					rows = append(rows, []string{dir, filepath.Base(c.File)})
				}
				p.Print(static.RenderTable([]string{"DIRECTORY", "FILE"}, rows))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Output as JSON")

	return cmd
}

func newConfigMacrosCmd() *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "macros",
		Short: "List the macros available in track configs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			docs := track.MacroDocs()
			format, _ := output.ParseFormat(jsonFlag, false)
			return output.FromContext(cmd.Context()).Render(format, docs, func(p *output.Printer) error {
				rows := make([][]string, 0, len(docs))
				for _, d := range docs {
					rows = append(rows, []string{styles.KeyStyle.Render(d.Token), d.Description})
				}
				p.Print(static.RenderTable([]string{"MACRO", "DESCRIPTION"}, rows))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Output as JSON")

	return cmd
}
