// Package config handles toggl's application settings and the directory
// they live in.
//
// The same directory holds the per-directory track configs (see package
// track), the global fallback config and the entity snapshot.
//
// # Directory Resolution (highest priority first)
//
//   - TOGGL_CONFIG_HOME env var
//   - $XDG_CONFIG_HOME/toggl-cli
//   - %AppData%\toggl-cli on Windows
//   - ~/.config/toggl-cli
//
// # Settings
//
// settings.toml is optional; missing keys keep their defaults:
//
//	git_backend = "cli"        # "cli" (git binary) or "native" (go-git)
//	color = "auto"             # "auto", "always" or "never"
//	editor = "nvim"            # falls back to $VISUAL, $EDITOR, then vi
//	snapshot_max_age = "24h"   # doctor warns about older entity snapshots
//
// TOGGL_GIT_BACKEND and TOGGL_COLOR override the file. Unknown keys are an
// error so that typos don't silently fall back to defaults.
package config
