package config

import (
	"context"
	"os"
)

type settingsKey struct{}

type workDirKey struct{}

type settingsErrKey struct{}

// WithSettings returns a new context with the settings stored in it.
func WithSettings(ctx context.Context, s *Settings) context.Context {
	return context.WithValue(ctx, settingsKey{}, s)
}

// FromContext returns the settings from context.
// Returns defaults rooted at Dir() if none are stored.
func FromContext(ctx context.Context) *Settings {
	if s, ok := ctx.Value(settingsKey{}).(*Settings); ok {
		return s
	}
	s := Default(Dir())
	return &s
}

// WithSettingsError stores the error from loading settings, if any.
func WithSettingsError(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, settingsErrKey{}, err)
}

// SettingsErrorFromContext returns the stored settings load error.
func SettingsErrorFromContext(ctx context.Context) error {
	err, _ := ctx.Value(settingsErrKey{}).(error)
	return err
}

// WithWorkDir stores the working directory the command runs in.
func WithWorkDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, workDirKey{}, dir)
}

// WorkDirFromContext returns the stored working directory.
// Falls back to os.Getwd() when unset or empty.
func WorkDirFromContext(ctx context.Context) string {
	if dir, ok := ctx.Value(workDirKey{}).(string); ok && dir != "" {
		return dir
	}
	wd, _ := os.Getwd()
	return wd
}
