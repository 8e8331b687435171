package output

import (
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
)

// Color modes accepted by NewColorWriter.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// NewColorWriter wraps w so ANSI styles are downsampled to what the
// terminal supports. "auto" detects the profile from w and environ (pipes
// and NO_COLOR get plain text), "always" forces full color and "never"
// drops colors while keeping bold and italics.
func NewColorWriter(w io.Writer, mode string, environ []string) *colorprofile.Writer {
	cw := colorprofile.NewWriter(w, environ)
	switch mode {
	case ColorAlways:
		cw.Profile = colorprofile.TrueColor
	case ColorNever:
		cw.Profile = colorprofile.Ascii
	}
	return cw
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
