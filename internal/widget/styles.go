package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/parkmeter/internal/ui"
)

const (
	cardWidth  = 36
	innerWidth = cardWidth - 2 // horizontal padding
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorTicketBorder).
			Padding(0, 1).
			Width(cardWidth)

	titleStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)

	valueStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary)

	paidStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPaid).
			Bold(true)

	dotOffStyle = lipgloss.NewStyle().
			Foreground(ui.ColorDotOff)

	dividerStyle = lipgloss.NewStyle().
			Foreground(ui.ColorTicketBorder)
)

// spread puts left and right on one line of the given width.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func divider() string {
	return dividerStyle.Render(strings.Repeat("─", innerWidth))
}
