// Package cmd provides helpers for executing external commands with proper
// error handling.
//
// Commands are run with [os/exec.CommandContext] so that cancelling the
// command context (Ctrl-C, --timeout) stops a hung git query or shell macro.
// Stderr is captured and used as the error message, which is what the user
// sees when a `{{$ ...}}` macro fails.
//
// # Usage
//
//	out, err := cmd.OutputContext(ctx, dir, "git", "branch", "--show-current")
//	if err != nil {
//	    var exitErr *cmd.ExitError
//	    if errors.As(err, &exitErr) {
//	        // exitErr.Stderr holds the trimmed stderr output
//	    }
//	}
//
//	// Platform shell (sh -c on Unix, cmd /C on Windows):
//	out, err := cmd.Shell(ctx, dir, "git config user.name")
//
// Every invocation is logged through the context logger in verbose mode.
package cmd
