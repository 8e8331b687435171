package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName is the directory name used under the platform config home.
const AppName = "toggl-cli"

// Dir returns the toggl configuration directory.
func Dir() string {
	if dir := os.Getenv("TOGGL_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", AppName)
}

// SettingsPath returns the path to settings.toml inside dir.
func SettingsPath(dir string) string {
	return filepath.Join(dir, SettingsFileName)
}

// SnapshotPath returns the path of the cached entity snapshot inside dir.
func SnapshotPath(dir string) string {
	return filepath.Join(dir, SnapshotFileName)
}

// File names inside the config directory.
const (
	SettingsFileName = "settings.toml"
	SnapshotFileName = "entities.json"
)
