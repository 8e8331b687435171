package styles

import (
	"image/color"
	"os"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for UI components
type Theme struct {
	Primary color.Color // main accent color (titles)
	Accent  color.Color // block headers
	Success color.Color // checkmarks, field names
	Error   color.Color // error messages
	Muted   color.Color // absent values
	Normal  color.Color // standard text
	Info    color.Color // hints
	Warning color.Color // warnings
}

var (
	// DefaultTheme is used on dark backgrounds
	DefaultTheme = Theme{
		Primary: lipgloss.Color("62"),  // cyan/teal
		Accent:  lipgloss.Color("212"), // pink/magenta
		Success: lipgloss.Color("82"),  // green
		Error:   lipgloss.Color("196"), // red
		Muted:   lipgloss.Color("240"), // dark gray
		Normal:  lipgloss.Color("252"), // light gray
		Info:    lipgloss.Color("244"), // gray
		Warning: lipgloss.Color("214"), // orange
	}

	// LightTheme is used on light backgrounds
	LightTheme = Theme{
		Primary: lipgloss.Color("25"),  // blue
		Accent:  lipgloss.Color("127"), // magenta
		Success: lipgloss.Color("28"),  // green
		Error:   lipgloss.Color("160"), // red
		Muted:   lipgloss.Color("247"), // gray
		Normal:  lipgloss.Color("236"), // near black
		Info:    lipgloss.Color("242"), // gray
		Warning: lipgloss.Color("130"), // dark orange
	}

	// NoneTheme renders without any colors (uses terminal defaults)
	// Formatting (bold/italic/underline) is preserved
	NoneTheme = Theme{
		Primary: lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
		Normal:  lipgloss.NoColor{},
		Info:    lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
	}
)

// currentTheme holds the active theme
var currentTheme = DefaultTheme

// Current returns the current theme
func Current() Theme {
	return currentTheme
}

// Init selects the theme for a color mode ("auto", "always", "never").
// Call this after loading settings and before rendering anything.
// Background detection only runs when stdin and stderr are terminals.
func Init(colorMode string, interactive bool) {
	theme := DefaultTheme
	switch {
	case colorMode == "never":
		theme = NoneTheme
	case interactive && !lipgloss.HasDarkBackground(os.Stdin, os.Stderr):
		theme = LightTheme
	}
	Apply(theme)
}

// Apply makes t the current theme and rebuilds the global styles.
func Apply(t Theme) {
	currentTheme = t

	Primary = t.Primary
	Accent = t.Accent
	Success = t.Success
	Error = t.Error
	Muted = t.Muted
	Normal = t.Normal
	Info = t.Info
	Warning = t.Warning

	PrimaryStyle = lipgloss.NewStyle().Foreground(t.Primary)
	AccentStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
	NormalStyle = lipgloss.NewStyle().Foreground(t.Normal)
	InfoStyle = lipgloss.NewStyle().Foreground(t.Info).Italic(true)
	WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)
	KeyStyle = lipgloss.NewStyle().Foreground(t.Success)
}
