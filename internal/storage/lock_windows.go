//go:build windows

package storage

import "os"

// Lock holds the lock file open. Windows has no flock; SaveJSON's atomic
// rename keeps readers from seeing partial writes.
type Lock struct {
	f *os.File
}

// Acquire creates the lock file at path. mode is ignored.
func Acquire(path string, _ LockMode) (*Lock, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, err
	}
	return &Lock{f: f}, nil
}

// Release closes the lock file. Releasing twice is a no-op.
func (l *Lock) Release() error {
	if l == nil || l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	return err
}
