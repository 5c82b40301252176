package widget

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/parkmeter/internal/ticket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asciiProfile(t *testing.T) {
	t.Helper()
	original := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(original) })
}

func TestView_Scanning(t *testing.T) {
	asciiProfile(t)
	m, _ := newTestModel(t, nil)

	out := m.View()
	assert.Contains(t, out, "PARKING TICKET")
	assert.Contains(t, out, "Press enter to scan")

	m, _ = send(t, m, key("enter"))
	assert.Contains(t, m.View(), "Scanning ticket")
}

func TestView_Idle(t *testing.T) {
	asciiProfile(t)
	m, _ := newTestModel(t, func(c *Config) {
		c.Options.ScanStep = false
		c.Options.InitialMinute = 90
	})

	out := m.View()
	assert.Contains(t, out, "Parked 1h 30m")
	assert.Contains(t, out, "R10")
	assert.Contains(t, out, "enter for details")
	assert.NotContains(t, out, "Next rate")
	assert.Equal(t, 5, strings.Count(out, "●"), "half way through the tier lights five dots")
}

func TestView_Expanded(t *testing.T) {
	asciiProfile(t)
	m, _ := expanded(t, 30)

	out := m.View()
	assert.Contains(t, out, "Current rate R10")
	assert.Contains(t, out, "00:00–03:00")
	assert.Contains(t, out, "Time until rate change")
	assert.Contains(t, out, "2h 30m")
	assert.Contains(t, out, "Next rate")
	assert.Contains(t, out, "R20")
	assert.Contains(t, out, "from 03:00")
	assert.Contains(t, out, "Pay Now R10")
}

func TestView_TerminalTier(t *testing.T) {
	asciiProfile(t)
	m, _ := expanded(t, 600)

	out := m.View()
	assert.Contains(t, out, "R80")
	assert.Contains(t, out, "Maximum daily rate")
	assert.NotContains(t, out, "Next rate")
	assert.NotContains(t, out, "Time until rate change")
}

func TestView_Paid(t *testing.T) {
	asciiProfile(t)
	m, _ := expanded(t, 400)

	m, _ = send(t, m, key("p"))
	out := m.View()

	assert.Contains(t, out, "Paid")
	assert.Contains(t, out, "R30")
	assert.Contains(t, out, "Payment Complete")
	assert.Contains(t, out, "14:05")
	assert.Equal(t, 9, strings.Count(out, "●"))
}

func TestView_Resetting(t *testing.T) {
	asciiProfile(t)
	m, _ := expanded(t, 10)

	m, _ = send(t, m, key("p"))
	m, _ = send(t, m, timerMsg{kind: ticket.EventResetDue})
	assert.Contains(t, m.View(), "Resetting")
}

func TestView_Help(t *testing.T) {
	asciiProfile(t)
	m, _ := newTestModel(t, nil)

	m, _ = send(t, m, key("?"))
	out := m.View()
	assert.Contains(t, out, "Keyboard Shortcuts")
	assert.Contains(t, out, "Pay (expanded)")
}

func TestView_Position(t *testing.T) {
	asciiProfile(t)

	tests := []struct {
		position Position
		check    func(t *testing.T, lines []string)
	}{
		{BottomRight, func(t *testing.T, lines []string) {
			assert.True(t, strings.HasSuffix(lines[len(lines)-1], "╯"))
			assert.Empty(t, strings.TrimSpace(lines[0]))
		}},
		{BottomLeft, func(t *testing.T, lines []string) {
			assert.True(t, strings.HasPrefix(lines[len(lines)-1], "╰"))
		}},
		{TopRight, func(t *testing.T, lines []string) {
			assert.True(t, strings.HasSuffix(lines[0], "╮"))
		}},
		{TopLeft, func(t *testing.T, lines []string) {
			assert.True(t, strings.HasPrefix(lines[0], "╭"))
			assert.Empty(t, strings.TrimSpace(lines[len(lines)-1]))
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.position), func(t *testing.T) {
			m, _ := newTestModel(t, func(c *Config) {
				c.Position = tt.position
				c.Options.ScanStep = false
			})
			m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

			lines := strings.Split(m.View(), "\n")
			require.Len(t, lines, 30)
			tt.check(t, lines)
		})
	}
}

func TestRenderDots(t *testing.T) {
	asciiProfile(t)
	plain := lipgloss.NewStyle()

	assert.Equal(t, "○ ○ ○ ○ ○ ○ ○ ○ ○", renderDots(0, plain))
	assert.Equal(t, "● ● ◐ ○ ○ ○ ○ ○ ○", renderDots(2.05, plain))
	assert.Equal(t, "● ● ● ● ● ● ● ● ●", renderDots(9, plain))
}
