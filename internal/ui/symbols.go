package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // Paid / valid
	SymbolFail     = "✗" // Failed
	SymbolPending  = "○" // Unlit indicator dot
	SymbolProgress = "◐" // Partially lit dot
	SymbolComplete = "●" // Lit indicator dot
	SymbolArrow    = "→" // Next tier
)
