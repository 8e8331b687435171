// Package track resolves the directory-scoped time-entry defaults for the
// current working directory.
//
// A track config is a TOML document stored in the toggl config directory
// under a name derived from the directory it belongs to (see EncodePath).
// Each top-level table is either the default block, keyed "*", or a
// branch pattern (a regular expression):
//
//	["*"]
//	workspace = "Acme"
//	description = "{{base_dir}}"
//
//	["^feature-.*"]
//	description = "{{branch}}"
//	project = "Website"
//	tags = ["{{branch}}", "dev"]
//	billable = true
//
// # Resolution
//
// A command resolves its defaults in four steps:
//
//  1. Locator.Locate walks from the working directory upward and returns the
//     first directory with a config (the tracked root), falling back to
//     global.toml.
//  2. Parse decodes the document, expanding every string through
//     Resolver.Process exactly once.
//  3. (*TrackConfig).Select picks the first rule whose pattern matches the
//     current branch, or the default block.
//  4. package entry turns the selected BranchConfig into a draft entry.
//
// # Macros
//
// Values may embed {{token}} macros, see ParseMacro for the token set. A
// macro that cannot be resolved makes the whole value absent instead of
// leaving template text behind; inside tags only the failing element is
// dropped. Failures are reported through TrackConfig.Diagnostics.
package track
