package styles

// Status symbols used by doctor and the draft summary.
const (
	SymbolOK      = "✓"
	SymbolError   = "✗"
	SymbolWarning = "!"
	SymbolArrow   = "→"
)

// OK renders the success symbol.
func OK() string { return SuccessStyle.Render(SymbolOK) }

// Fail renders the error symbol.
func Fail() string { return ErrorStyle.Render(SymbolError) }

// Warn renders the warning symbol.
func Warn() string { return WarningStyle.Render(SymbolWarning) }
