// Package doctor diagnoses toggl's setup and optionally repairs it.
//
// Checks are grouped into categories:
//
//   - [CategorySettings]: settings.toml can't be read or is invalid.
//   - [CategoryGit]: the selected git backend can't be used.
//   - [CategoryConfig]: no track config applies to the working directory,
//     it doesn't parse, or some of its macros fail.
//   - [CategorySnapshot]: the entity snapshot is missing or stale, or the
//     active block names projects or tasks it doesn't contain.
//   - [CategoryOrphan]: track configs whose directory no longer exists.
//
// Only orphaned configs can be fixed automatically (they are deleted);
// everything else comes with a hint.
package doctor
