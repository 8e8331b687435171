// Package styles provides shared lipgloss styles for UI components.
//
// Colors are written as full ANSI; the stdout writer from package output
// downsamples or strips them depending on the terminal and the color
// setting.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette colors, updated by Init.
var (
	Primary color.Color = DefaultTheme.Primary
	Accent  color.Color = DefaultTheme.Accent
	Success color.Color = DefaultTheme.Success
	Error   color.Color = DefaultTheme.Error
	Muted   color.Color = DefaultTheme.Muted
	Normal  color.Color = DefaultTheme.Normal
	Info    color.Color = DefaultTheme.Info
	Warning color.Color = DefaultTheme.Warning
)

// Common styles
var (
	Bold = lipgloss.NewStyle().Bold(true)

	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	// AccentStyle is used for section headers such as ["*"]
	AccentStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)

	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	NormalStyle  = lipgloss.NewStyle().Foreground(Normal)
	InfoStyle    = lipgloss.NewStyle().Foreground(Info).Italic(true)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	// KeyStyle renders field names in key/value listings
	KeyStyle = lipgloss.NewStyle().Foreground(Success)
)
