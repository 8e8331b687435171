package track

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Location is where a config was found.
type Location struct {
	// File is the config file path.
	File string
	// Root is the tracked root: the directory the file belongs to. For the
	// global config it is the directory the search started from.
	Root string
	// Global reports whether File is the global fallback.
	Global bool
}

// Locator finds track configs stored in Dir.
type Locator struct {
	Dir string
}

// NewLocator returns a Locator for the given config directory.
func NewLocator(dir string) Locator {
	return Locator{Dir: dir}
}

// Locate walks from cwd to the filesystem root and returns the first
// directory with a config. It only checks for existence.
func (l Locator) Locate(cwd string) (Location, error) {
	if l.Dir == "" {
		return Location{}, errors.New("config directory not set")
	}
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return Location{}, fmt.Errorf("failed to resolve %s: %w", cwd, err)
	}

	for dir := abs; ; {
		candidate := l.PathFor(dir)
		if isFile(candidate) {
			return Location{File: candidate, Root: dir}, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if global := l.GlobalPath(); isFile(global) {
		return Location{File: global, Root: abs, Global: true}, nil
	}
	return Location{}, ErrFileNotFound
}

// PathFor returns the config path for dir itself, whether or not it exists.
func (l Locator) PathFor(dir string) string {
	return EncodePath(l.Dir, dir)
}

// GlobalPath returns the path of the global fallback config.
func (l Locator) GlobalPath() string {
	return filepath.Join(l.Dir, GlobalFileName)
}

// ListedConfig is a config file found in the config directory.
type ListedConfig struct {
	File string `json:"file"`
	// Dir is the directory the config belongs to; empty if it can't be
	// decoded from the file name.
	Dir    string `json:"dir,omitempty"`
	Global bool   `json:"global,omitempty"`
}

// List returns every track config in the config directory, the global one
// first and the rest sorted by directory.
func (l Locator) List() ([]ListedConfig, error) {
	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	var configs []ListedConfig
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, configExt) {
			continue
		}
		file := filepath.Join(l.Dir, name)
		switch {
		case name == GlobalFileName:
			configs = append(configs, ListedConfig{File: file, Global: true})
		case strings.HasPrefix(name, hashPrefix):
			configs = append(configs, ListedConfig{File: file})
		default:
			// settings.toml and other files don't decode to a path
			if dir, ok := DecodeName(name); ok {
				configs = append(configs, ListedConfig{File: file, Dir: dir})
			}
		}
	}

	sort.SliceStable(configs, func(i, j int) bool {
		if configs[i].Global != configs[j].Global {
			return configs[i].Global
		}
		if configs[i].Dir != configs[j].Dir {
			return configs[i].Dir < configs[j].Dir
		}
		return configs[i].File < configs[j].File
	})
	return configs, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
