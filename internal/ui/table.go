package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/parkmeter/internal/tier"
)

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a new Bubbles table with default styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Cell = s.Cell.
		Foreground(ColorPrimary)
	// Unfocused tables still highlight row 0; keep it looking like any other row.
	s.Selected = s.Cell

	t.SetStyles(s)
	return t
}

// RenderSimpleTable renders a non-interactive table string.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	t := NewTable(columns, tableRows)
	return t.View()
}

// TierRows formats a tier table as rows of (#, from, to, duration, price).
func TierRows(t tier.Table) [][]string {
	rows := make([][]string, len(t))
	for i, tr := range t {
		start := t.Start(i)
		rows[i] = []string{
			fmt.Sprintf("%d", i),
			FormatClock(start),
			FormatClock(tr.MaxMinutes),
			FormatMinutes(tr.MaxMinutes - start),
			tr.Price,
		}
	}
	return rows
}

// RenderTierTable renders the tier table for CLI output.
func RenderTierTable(t tier.Table) string {
	return RenderSimpleTable([]TableColumn{
		{Title: "#", Width: 3},
		{Title: "FROM", Width: 7},
		{Title: "UNTIL", Width: 7},
		{Title: "LENGTH", Width: 8},
		{Title: "PRICE", Width: 10},
	}, TierRows(t))
}

// FormatClock renders a minute offset as HH:MM.
func FormatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// FormatMinutes renders a minute count as "3h", "45m" or "1h 30m".
func FormatMinutes(m int) string {
	h, rem := m/60, m%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", rem)
	case rem == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, rem)
	}
}
