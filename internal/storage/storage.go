// Package storage provides atomic JSON files guarded by advisory file locks.
//
// toggl keeps its entity snapshot in the config directory; readers and
// writers serialize through a sibling lock file so a concurrent import
// never leaves a half-written snapshot behind.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SaveJSON atomically writes data as JSON to the specified path.
// It ensures the parent directory exists, writes to a temp file,
// then renames to the final path for atomic operation.
func SaveJSON(path string, data any) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tempPath := path + ".tmp"

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(tempPath, jsonData, 0o600); err != nil {
		return err
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return err
	}
	return nil
}

// LoadJSON reads JSON from the specified path into dest.
// Returns os.ErrNotExist if file doesn't exist (caller should handle).
func LoadJSON(path string, dest any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

// LockPath returns the lock file guarding path ("entities.json" ->
// "entities.lock").
func LockPath(path string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)] + ".lock"
}

// LockMode selects between a shared (read) and an exclusive (write) lock.
type LockMode int

const (
	Exclusive LockMode = iota
	Shared
)

// WithLock runs fn while holding the exclusive lock for path.
func WithLock(path string, fn func() error) error {
	return withLock(path, Exclusive, fn)
}

// WithReadLock runs fn while holding a shared lock for path, so readers
// don't block each other but do wait for a writer.
func WithReadLock(path string, fn func() error) error {
	return withLock(path, Shared, fn)
}

func withLock(path string, mode LockMode, fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	lock, err := Acquire(LockPath(path), mode)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer lock.Release()
	return fn()
}
