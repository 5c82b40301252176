package widget

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/parkmeter/internal/ticket"
)

// Key bindings as constants for consistency.
const (
	KeyQuit       = "q"
	KeyQuitAlt    = "ctrl+c"
	KeyToggle     = "enter"
	KeyToggleAlt  = " "
	KeyScan       = "s"
	KeyPay        = "p"
	KeyCollapse   = "esc"
	KeyToggleHelp = "?"
)

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Help toggle takes priority
	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	if key == KeyQuit || key == KeyQuitAlt {
		m.quitting = true
		return true, tea.Quit
	}

	// The overlay hides the ticket, so nothing else may change it.
	if m.showHelp {
		if key == KeyCollapse {
			m.showHelp = false
		}
		return true, nil
	}

	switch key {

	case KeyToggle, KeyToggleAlt:
		// The same tap that expands the ticket starts the scan while scanning.
		if m.state.Phase == ticket.PhaseScanning {
			return true, m.dispatch(ticket.EventStartScan)
		}
		return true, m.dispatch(ticket.EventToggleExpand)

	case KeyScan:
		return true, m.dispatch(ticket.EventStartScan)

	case KeyPay:
		return true, m.dispatch(ticket.EventPay)

	case KeyCollapse:
		if m.state.Phase == ticket.PhaseExpanded {
			return true, m.dispatch(ticket.EventToggleExpand)
		}
		return true, nil
	}

	return false, nil
}
