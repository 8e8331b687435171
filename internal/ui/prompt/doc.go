// Package prompt provides simple interactive prompts.
//
// Prompts render on stderr so stdout stays clean for piped output.
// Callers check for a terminal first (see output.IsTerminal) and fall back
// to a flag such as --yes when there is none.
package prompt
