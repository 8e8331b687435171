package track

import "strings"

// MacroKind identifies what a {{token}} expands to.
type MacroKind int

const (
	MacroBranch MacroKind = iota + 1
	MacroBaseDir
	MacroParentBaseDir
	MacroCurrentDir
	MacroParentDir
	MacroGitRoot
	MacroParentGitRoot
	MacroShell
)

// Macro is a parsed {{token}}. Command is only set for MacroShell.
type Macro struct {
	Kind    MacroKind
	Command string
}

var macroTokens = map[string]MacroKind{
	"branch":          MacroBranch,
	"base_dir":        MacroBaseDir,
	"parent_base_dir": MacroParentBaseDir,
	"current_dir":     MacroCurrentDir,
	"parent_dir":      MacroParentDir,
	"git_root":        MacroGitRoot,
	"parent_git_root": MacroParentGitRoot,
}

// ParseMacro parses the text between "{{" and "}}". Surrounding whitespace
// is ignored; names are case-sensitive. A token starting with "$" is a shell
// command.
func ParseMacro(token string) (Macro, error) {
	token = strings.TrimSpace(token)
	if cmd, ok := strings.CutPrefix(token, "$"); ok {
		cmd = strings.TrimSpace(cmd)
		if cmd == "" {
			return Macro{}, &UnrecognizedMacroError{Token: token}
		}
		return Macro{Kind: MacroShell, Command: cmd}, nil
	}
	if kind, ok := macroTokens[token]; ok {
		return Macro{Kind: kind}, nil
	}
	return Macro{}, &UnrecognizedMacroError{Token: token}
}

// String returns the macro in template syntax.
func (m Macro) String() string {
	if m.Kind == MacroShell {
		return "{{$ " + m.Command + "}}"
	}
	for name, kind := range macroTokens {
		if kind == m.Kind {
			return "{{" + name + "}}"
		}
	}
	return "{{?}}"
}

// MacroDoc describes a macro for help output.
type MacroDoc struct {
	Token       string `json:"token"`
	Description string `json:"description"`
}

// MacroDocs lists the supported macros in display order.
func MacroDocs() []MacroDoc {
	return []MacroDoc{
		{"{{branch}}", "current git branch"},
		{"{{base_dir}}", "name of the directory the config belongs to"},
		{"{{parent_base_dir}}", "name of that directory's parent"},
		{"{{current_dir}}", "name of the working directory"},
		{"{{parent_dir}}", "name of the working directory's parent"},
		{"{{git_root}}", "name of the repository root (main worktree for linked worktrees)"},
		{"{{parent_git_root}}", "name of the repository root's parent"},
		{"{{$ command}}", "trimmed output of a shell command run in the working directory"},
	}
}
