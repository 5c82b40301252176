package widget

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/parkmeter/internal/ticket"
	"github.com/rileyhilliard/parkmeter/internal/tier"
	"github.com/rileyhilliard/parkmeter/internal/ui"
)

// View renders the widget.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return m.place(m.renderCard())
}

// place positions the card in the configured corner. Before the first
// WindowSizeMsg the card is returned as is.
func (m Model) place(card string) string {
	if m.width <= 0 || m.height <= 0 {
		return card
	}

	h, v := lipgloss.Right, lipgloss.Bottom
	switch m.position {
	case BottomLeft:
		h = lipgloss.Left
	case TopRight:
		v = lipgloss.Top
	case TopLeft:
		h, v = lipgloss.Left, lipgloss.Top
	}
	return lipgloss.Place(m.width, m.height, h, v, card)
}

func (m Model) renderCard() string {
	var body []string

	switch m.state.Phase {
	case ticket.PhaseScanning:
		body = m.renderScanning()
	case ticket.PhasePaid:
		body = m.renderPaid()
	case ticket.PhaseResetting:
		body = []string{
			titleStyle.Render("PARKING TICKET"),
			labelStyle.Render("Resetting…"),
		}
	default:
		body = m.renderTicket()
	}

	return cardStyle.Render(strings.Join(body, "\n"))
}

func (m Model) renderScanning() []string {
	lines := []string{titleStyle.Render("PARKING TICKET")}
	if m.state.ScanInProgress {
		lines = append(lines, m.spinner.View()+" "+valueStyle.Render("Scanning ticket…"))
	} else {
		lines = append(lines, labelStyle.Render("Press enter to scan your ticket"))
	}
	return lines
}

func (m Model) renderPaid() []string {
	v := m.Snapshot()
	lines := []string{
		spread(paidStyle.Render(ui.SymbolSuccess+" Paid"), paidStyle.Render(v.PaidAmount), innerWidth),
		renderDots(v.Dots, paidStyle),
		paidStyle.Render("Payment Complete"),
		valueStyle.Render("Thank you for your payment"),
	}
	if !v.PaidAt.IsZero() {
		lines = append(lines, labelStyle.Render("Paid at ")+valueStyle.Render(v.PaidAt.Format("15:04")))
	}
	return lines
}

func (m Model) renderTicket() []string {
	v := m.Snapshot()
	price := ui.TierStyle(v.Tier.Index)

	lines := []string{
		spread(labelStyle.Render("Parked ")+valueStyle.Render(ui.FormatMinutes(v.CurrentMinute)), price.Render(v.Tier.Price), innerWidth),
		renderDots(v.Dots, lipgloss.NewStyle().Foreground(ui.TierFill(v.Tier.Index))),
	}

	if !v.Expanded() {
		return append(lines, labelStyle.Render("enter for details"))
	}

	lines = append(lines, divider(), m.renderRate(v, price))

	if v.HasCountdown {
		lines = append(lines,
			spread(labelStyle.Render("Time until rate change"), valueStyle.Render(v.Countdown.String()), innerWidth),
			m.renderBar(v),
		)
	}
	if v.HasNext {
		next := ui.TierStyle(v.Tier.Index + 1).Render(v.Next.Price)
		lines = append(lines, spread(labelStyle.Render("Next rate "+ui.SymbolArrow+" ")+next, labelStyle.Render("from "+ui.FormatClock(v.Next.StartMinute)), innerWidth))
	} else {
		lines = append(lines, labelStyle.Render("Maximum daily rate"))
	}

	lines = append(lines, divider(), labelStyle.Render("[p] ")+valueStyle.Render("Pay Now ")+price.Render(v.Tier.Price))
	return lines
}

func (m Model) renderRate(v ticket.View, price lipgloss.Style) string {
	span := fmt.Sprintf("%s–%s", ui.FormatClock(v.Tier.StartMinute), ui.FormatClock(v.Tier.EndMinute))
	return spread(labelStyle.Render("Current rate ")+price.Render(v.Tier.Price), labelStyle.Render(span), innerWidth)
}

// renderBar shows how much of the current tier is left.
func (m Model) renderBar(v ticket.View) string {
	bar := m.progress
	bar.FullColor = string(ui.TierFill(v.Tier.Index))
	return bar.ViewAs(v.Countdown.Percentage / 100)
}

// renderDots draws the indicator row. A fractional count lights the next
// dot halfway.
func renderDots(dots float64, lit lipgloss.Style) string {
	whole := int(math.Floor(dots))
	frac := dots - float64(whole)

	cells := make([]string, tier.MaxDots)
	for i := range cells {
		switch {
		case i < whole:
			cells[i] = lit.Render(ui.SymbolComplete)
		case i == whole && frac > 0:
			cells[i] = lit.Render(ui.SymbolProgress)
		default:
			cells[i] = dotOffStyle.Render(ui.SymbolPending)
		}
	}
	return strings.Join(cells, " ")
}
