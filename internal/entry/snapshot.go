package entry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/watercooler-labs/toggl-cli/internal/storage"
)

// ErrNoSnapshot is returned when no entity snapshot has been imported yet.
var ErrNoSnapshot = errors.New("no entity snapshot: run 'toggl entities import <file>' first")

// LoadSnapshot reads the snapshot stored at path. A missing snapshot is
// reported without touching the config directory.
func LoadSnapshot(path string) (Entities, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Entities{}, ErrNoSnapshot
	}

	var ents Entities
	err := storage.WithReadLock(path, func() error {
		return storage.LoadJSON(path, &ents)
	})
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Entities{}, ErrNoSnapshot
		}
		return Entities{}, fmt.Errorf("failed to load entity snapshot: %w", err)
	}
	return ents, nil
}

// SaveSnapshot validates ents and stores them at path.
func SaveSnapshot(path string, ents Entities) error {
	if err := ents.Validate(); err != nil {
		return err
	}
	return storage.WithLock(path, func() error {
		return storage.SaveJSON(path, ents)
	})
}

// ReadFile decodes entities from a JSON or YAML export. FetchedAt defaults
// to now when the export doesn't carry it.
func ReadFile(path string, now time.Time) (Entities, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Entities{}, err
	}

	var ents Entities
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &ents)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&ents)
	}
	if err != nil {
		return Entities{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if ents.FetchedAt.IsZero() {
		ents.FetchedAt = now.UTC()
	}
	return ents, nil
}

// Validate checks that ids are unique and every task points at a known
// project.
func (e *Entities) Validate() error {
	var errs []error

	workspaces := make(map[int64]bool)
	for _, w := range e.Workspaces {
		if workspaces[w.ID] {
			errs = append(errs, fmt.Errorf("duplicate workspace id %d", w.ID))
		}
		workspaces[w.ID] = true
	}

	projects := make(map[int64]bool)
	for _, p := range e.Projects {
		if projects[p.ID] {
			errs = append(errs, fmt.Errorf("duplicate project id %d", p.ID))
		}
		projects[p.ID] = true
	}

	tasks := make(map[int64]bool)
	for _, t := range e.Tasks {
		if tasks[t.ID] {
			errs = append(errs, fmt.Errorf("duplicate task id %d", t.ID))
		}
		tasks[t.ID] = true
		if !projects[t.ProjectID] {
			errs = append(errs, fmt.Errorf("task %q (%d) references unknown project %d", t.Name, t.ID, t.ProjectID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid entities: %w", errors.Join(errs...))
	}
	return nil
}

// Age returns how old the snapshot is at now.
func (e *Entities) Age(now time.Time) time.Duration {
	if e.FetchedAt.IsZero() {
		return 0
	}
	return now.Sub(e.FetchedAt)
}
