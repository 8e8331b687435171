package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Duration is a time.Duration that decodes from a TOML string like "36h".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	if parsed < 0 {
		return fmt.Errorf("duration must not be negative: %s", text)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Settings holds the toggl application settings
type Settings struct {
	GitBackend     string   `toml:"git_backend" json:"git_backend"`
	Color          string   `toml:"color" json:"color"`
	Editor         string   `toml:"editor" json:"editor,omitempty"`
	SnapshotMaxAge Duration `toml:"snapshot_max_age" json:"snapshot_max_age"`

	// Dir is the directory the settings were loaded from. It is also where
	// track configs and the entity snapshot live.
	Dir string `toml:"-" json:"dir"`
}

// DefaultSnapshotMaxAge is the age after which doctor flags the entity snapshot.
const DefaultSnapshotMaxAge = 24 * time.Hour

// Default returns the default settings rooted at dir.
func Default(dir string) Settings {
	return Settings{
		GitBackend:     "cli",
		Color:          "auto",
		SnapshotMaxAge: Duration{DefaultSnapshotMaxAge},
		Dir:            dir,
	}
}

// Load reads settings.toml from Dir() and applies environment overrides.
// Returns Default() if the file doesn't exist (no error).
func Load() (Settings, error) {
	return LoadFrom(Dir())
}

// LoadFrom reads settings.toml from dir and applies environment overrides.
// Returns an error only if the file exists but is invalid; the defaults are
// returned alongside so callers can warn and continue.
func LoadFrom(dir string) (Settings, error) {
	s := Default(dir)

	data, err := os.ReadFile(SettingsPath(dir))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Default(dir), fmt.Errorf("failed to read settings file: %w", err)
	}
	if err == nil {
		md, err := toml.Decode(string(data), &s)
		if err != nil {
			return Default(dir), fmt.Errorf("failed to parse settings file: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return Default(dir), fmt.Errorf("unknown settings in %s: %s", SettingsPath(dir), strings.Join(keys, ", "))
		}
	}

	applyEnv(&s)

	if err := s.Validate(); err != nil {
		return Default(dir), err
	}

	// Use defaults for empty values
	if s.GitBackend == "" {
		s.GitBackend = "cli"
	}
	if s.Color == "" {
		s.Color = "auto"
	}
	if s.SnapshotMaxAge.Duration == 0 {
		s.SnapshotMaxAge = Duration{DefaultSnapshotMaxAge}
	}
	s.Dir = dir

	return s, nil
}

// applyEnv overrides file values with TOGGL_* environment variables.
func applyEnv(s *Settings) {
	if v := os.Getenv("TOGGL_GIT_BACKEND"); v != "" {
		s.GitBackend = v
	}
	if v := os.Getenv("TOGGL_COLOR"); v != "" {
		s.Color = v
	}
}

// Validate checks enum fields.
func (s *Settings) Validate() error {
	if err := validateEnum(s.GitBackend, "git_backend", ValidGitBackends); err != nil {
		return err
	}
	return validateEnum(s.Color, "color", ValidColorModes)
}

// EditorCommand returns the editor to open configs with:
// settings, then $VISUAL, then $EDITOR, then vi.
func (s *Settings) EditorCommand() string {
	if s.Editor != "" {
		return s.Editor
	}
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	if v := os.Getenv("EDITOR"); v != "" {
		return v
	}
	return "vi"
}

const defaultSettings = `# toggl settings

# How to query git for {{branch}} and {{git_root}}:
#   "cli"    - run the git binary (honours your git config)
#   "native" - read the repository directly (no git binary needed)
git_backend = "cli"

# Colored output: "auto", "always" or "never" (NO_COLOR is respected)
color = "auto"

# Editor for 'toggl config edit' (default: $VISUAL, $EDITOR, vi)
# editor = "nvim"

# 'toggl doctor' warns when the entity snapshot is older than this
snapshot_max_age = "24h"
`

// DefaultSettings returns the default settings file content.
func DefaultSettings() string {
	return defaultSettings
}

// WriteDefault writes the default settings file into dir.
// Returns the path written; fails if the file exists and force is false.
func WriteDefault(dir string, force bool) (string, error) {
	path := SettingsPath(dir)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("settings file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(defaultSettings), 0644); err != nil {
		return "", err
	}

	return path, nil
}
