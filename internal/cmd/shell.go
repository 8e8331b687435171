package cmd

import (
	"context"
	"runtime"
)

// ShellCommand returns the platform shell invocation for script:
// "sh -c" on Unix-like systems and "cmd /C" on Windows.
func ShellCommand(script string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", script}
	}
	return "sh", []string{"-c", script}
}

// Shell runs script through the platform shell in dir and returns stdout.
func Shell(ctx context.Context, dir, script string) ([]byte, error) {
	name, args := ShellCommand(script)
	return OutputContext(ctx, dir, name, args...)
}
