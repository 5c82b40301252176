package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/parkmeter/internal/tier"
)

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// Ticket surface colors.
const (
	ColorTicketBg     lipgloss.Color = "#18181B" // zinc-900
	ColorTicketBorder lipgloss.Color = "#3F3F46" // zinc-700
	ColorDotOff       lipgloss.Color = "#27272A" // zinc-800
	ColorPaid         lipgloss.Color = "#22C55E" // green-500
)

// Text colors per tier level, green through red.
var tierText = map[tier.Level]lipgloss.Color{
	tier.LevelLow:      "#4ADE80", // green-400
	tier.LevelModerate: "#FACC15", // yellow-400
	tier.LevelElevated: "#FBBF24", // amber-400
	tier.LevelHigh:     "#FB923C", // orange-400
	tier.LevelPeak:     "#F87171", // red-400
}

// Fill colors per tier level, used for lit dots and bars.
var tierFill = map[tier.Level]lipgloss.Color{
	tier.LevelLow:      "#22C55E", // green-500
	tier.LevelModerate: "#EAB308", // yellow-500
	tier.LevelElevated: "#F59E0B", // amber-500
	tier.LevelHigh:     "#F97316", // orange-500
	tier.LevelPeak:     "#EF4444", // red-500
}

// TierColor returns the text color for a tier index.
func TierColor(index int) lipgloss.Color {
	return tierText[tier.LevelOf(index)]
}

// TierFill returns the fill color for a tier index.
func TierFill(index int) lipgloss.Color {
	return tierFill[tier.LevelOf(index)]
}

// TierStyle returns a bold style in the tier's text color.
func TierStyle(index int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(TierColor(index)).Bold(true)
}

// SuccessStyle returns the style for success text.
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorSuccess)
}

// ErrorStyle returns the style for error text.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorError)
}

// MutedStyle returns the style for secondary text.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

// ApplyColorMode sets the global color profile. mode is "auto", "always" or
// "never"; in auto mode color is dropped when isTTY is false.
func ApplyColorMode(mode string, isTTY bool) {
	switch mode {
	case "never":
		DisableColors()
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	default:
		if !isTTY {
			DisableColors()
		}
	}
}

// DisableColors switches all styled output to monochrome.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
