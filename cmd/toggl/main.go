package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"syscall"

	"github.com/charmbracelet/fang"
)

// Version information - set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	err := fang.Execute(context.Background(), newRootCmd(),
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	)
	if err != nil {
		os.Exit(1)
	}
}

// versionString returns the version string.
func versionString() string {
	return fmt.Sprintf("%s (%s, %s, %s)", version, commit[:min(7, len(commit))], date, runtime.Version())
}
