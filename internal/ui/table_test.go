package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/parkmeter/internal/tier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSimpleTable_Empty(t *testing.T) {
	assert.Empty(t, RenderSimpleTable([]TableColumn{{Title: "A", Width: 3}}, nil))
}

func TestTierRows(t *testing.T) {
	rows := TierRows(tier.DefaultTable())

	require.Len(t, rows, 5)
	assert.Equal(t, []string{"0", "00:00", "03:00", "3h", "R10"}, rows[0])
	assert.Equal(t, []string{"2", "06:00", "07:00", "1h", "R30"}, rows[2])
	assert.Equal(t, []string{"4", "08:00", "24:00", "16h", "R80"}, rows[4])
}

func TestRenderTierTable(t *testing.T) {
	original := lipgloss.ColorProfile()
	defer lipgloss.SetColorProfile(original)
	lipgloss.SetColorProfile(termenv.Ascii)

	out := RenderTierTable(tier.DefaultTable())

	for _, want := range []string{"PRICE", "R10", "R20", "R30", "R50", "R80", "08:00"} {
		assert.Contains(t, out, want)
	}
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), 5)
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "3h", FormatMinutes(180))
	assert.Equal(t, "1h 30m", FormatMinutes(90))
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "07:05", FormatClock(425))
	assert.Equal(t, "24:00", FormatClock(1440))
}
