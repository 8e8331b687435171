package track

const defaultTemplate = `# toggl track config
#
# Each table sets the defaults for new time entries. ["*"] applies when no
# branch pattern matches (or outside a git repository). Other tables are
# keyed by a regular expression matched against the current branch; the
# first match in file order wins. Quote the keys.
#
# Fields: workspace, description, project, task, tags, billable
#
# Values may use macros, resolved when the config is loaded:
#   {{branch}}            current git branch
#   {{base_dir}}          name of the directory this config belongs to
#   {{parent_base_dir}}   its parent's name
#   {{current_dir}}       name of the working directory
#   {{parent_dir}}        its parent's name
#   {{git_root}}          name of the repository root
#   {{parent_git_root}}   its parent's name
#   {{$ command}}         output of a shell command
# A value whose macro fails is left unset.

["*"]
description = "{{base_dir}}"
tags = ["{{git_root}}"]
billable = false

["^(feature|fix)/"]
description = "{{branch}}"
tags = ["{{git_root}}", "dev"]

# ["^release-.*"]
# project = "Maintenance"
# task = "Releases"
# billable = true
`

// DefaultTemplate returns the content written by 'toggl config init'.
func DefaultTemplate() string {
	return defaultTemplate
}
