package track

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFileNotFound is returned when neither the working directory, any of its
// ancestors, nor the global fallback has a config.
var ErrFileNotFound = errors.New("no track config found: run 'toggl config init' to create one")

// ParseError reports a malformed config document.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid track config: %v", e.Err)
	}
	return fmt.Sprintf("invalid track config %s: %v (run 'toggl config edit' to fix it)", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnrecognizedMacroError is returned for a {{token}} outside the known set.
type UnrecognizedMacroError struct {
	Token string
}

func (e *UnrecognizedMacroError) Error() string {
	return fmt.Sprintf("unrecognized macro {{%s}}", e.Token)
}

// ShellError reports a failed command run on behalf of a macro.
// Output holds the captured error output, if any.
type ShellError struct {
	Command string
	Output  string
	Err     error
}

func (e *ShellError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "macro command %q failed", e.Command)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if e.Output != "" && (e.Err == nil || !strings.Contains(e.Err.Error(), e.Output)) {
		fmt.Fprintf(&b, "\n%s", e.Output)
	}
	return b.String()
}

func (e *ShellError) Unwrap() error { return e.Err }

// UnterminatedMacroError is returned when a "{{" has no closing "}}".
type UnterminatedMacroError struct {
	Input string
}

func (e *UnterminatedMacroError) Error() string {
	return fmt.Sprintf("unterminated macro in %q", e.Input)
}
