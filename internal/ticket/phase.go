package ticket

import (
	"fmt"
	"strings"
)

// Phase is the widget's lifecycle stage.
type Phase int

const (
	PhaseScanning Phase = iota
	PhaseIdle
	PhaseExpanded
	PhasePaid
	PhaseResetting
)

// String returns a lower-case phase name.
func (p Phase) String() string {
	switch p {
	case PhaseScanning:
		return "scanning"
	case PhaseIdle:
		return "idle"
	case PhaseExpanded:
		return "expanded"
	case PhasePaid:
		return "paid"
	case PhaseResetting:
		return "resetting"
	default:
		return "unknown"
	}
}

// Ticking reports whether the clock runs in this phase.
func (p Phase) Ticking() bool {
	return p == PhaseIdle || p == PhaseExpanded
}

// ParseResetTarget parses the phase a widget returns to after a reset.
// Only "scanning" and "idle" are valid targets.
func ParseResetTarget(s string) (Phase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scanning", "scan":
		return PhaseScanning, nil
	case "idle", "":
		return PhaseIdle, nil
	default:
		return PhaseIdle, fmt.Errorf("unknown reset target %q (expected scanning or idle)", s)
	}
}

// MarshalText renders the phase by name in JSON output.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
