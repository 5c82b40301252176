package ticket

import (
	"encoding/json"
	"time"

	"github.com/rileyhilliard/parkmeter/internal/tier"
)

// FrameCycle is the number of animation frames before the frame counter wraps.
const FrameCycle = 20

// Default timings.
const (
	DefaultTickInterval = 100 * time.Millisecond
	DefaultScanDuration = 2 * time.Second
	DefaultResetDelay   = 4 * time.Second
	DefaultResetFade    = 300 * time.Millisecond
)

// State is everything one widget instance remembers.
type State struct {
	Phase          Phase
	CurrentMinute  int
	PaidAmount     string
	PaidAt         time.Time
	AnimationFrame int
	ScanInProgress bool
}

// stateJSON is the wire form of State. PaidAt is a pointer so an unpaid
// ticket omits it.
type stateJSON struct {
	Phase          Phase      `json:"phase"`
	CurrentMinute  int        `json:"current_minute"`
	PaidAmount     string     `json:"paid_amount,omitempty"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
	AnimationFrame int        `json:"animation_frame"`
	ScanInProgress bool       `json:"scan_in_progress,omitempty"`
}

func (s State) wire() stateJSON {
	out := stateJSON{
		Phase:          s.Phase,
		CurrentMinute:  s.CurrentMinute,
		PaidAmount:     s.PaidAmount,
		AnimationFrame: s.AnimationFrame,
		ScanInProgress: s.ScanInProgress,
	}
	if !s.PaidAt.IsZero() {
		at := s.PaidAt
		out.PaidAt = &at
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.wire())
}

// IsPaid reports whether the ticket has been paid and not yet reset.
func (s State) IsPaid() bool {
	return s.Phase == PhasePaid
}

// Expanded reports whether the detail section is visible.
func (s State) Expanded() bool {
	return s.Phase == PhaseExpanded
}

// Options configures a widget instance.
type Options struct {
	Tiers         tier.Table
	InitialMinute int
	TickInterval  time.Duration

	// ScanStep puts the widget in PhaseScanning until a simulated scan completes.
	ScanStep     bool
	ScanDuration time.Duration

	// ResetDelay is how long the paid confirmation stays up.
	ResetDelay time.Duration
	// ResetFade is how long the widget stays in PhaseResetting.
	ResetFade time.Duration
	// ResetTo is where the widget lands after a reset: PhaseScanning or PhaseIdle.
	ResetTo Phase

	// StartExpanded opens the detail section on mount. Ignored with ScanStep.
	StartExpanded bool
}

// DefaultOptions returns options for the stock widget with a scan step.
func DefaultOptions() Options {
	return Options{
		Tiers:        tier.DefaultTable(),
		TickInterval: DefaultTickInterval,
		ScanStep:     true,
		ScanDuration: DefaultScanDuration,
		ResetDelay:   DefaultResetDelay,
		ResetFade:    DefaultResetFade,
		ResetTo:      PhaseScanning,
	}
}

// Normalize fills zero timings with defaults and forces ResetTo to Idle when
// there is no scan step to return to.
func (o Options) Normalize() Options {
	if len(o.Tiers) == 0 {
		o.Tiers = tier.DefaultTable()
	}
	if o.TickInterval <= 0 {
		o.TickInterval = DefaultTickInterval
	}
	if o.ScanDuration <= 0 {
		o.ScanDuration = DefaultScanDuration
	}
	if o.ResetDelay <= 0 {
		o.ResetDelay = DefaultResetDelay
	}
	if o.ResetFade < 0 {
		o.ResetFade = 0
	}
	if o.ResetTo != PhaseScanning && o.ResetTo != PhaseIdle {
		o.ResetTo = PhaseIdle
	}
	if !o.ScanStep {
		o.ResetTo = PhaseIdle
	}
	o.InitialMinute = wrapMinute(o.InitialMinute)
	return o
}

// Initial returns the mount state and the effects needed to start it.
func Initial(o Options) (State, []Effect) {
	o = o.Normalize()

	s := State{CurrentMinute: o.InitialMinute}
	switch {
	case o.ScanStep:
		s.Phase = PhaseScanning
	case o.StartExpanded:
		s.Phase = PhaseExpanded
	default:
		s.Phase = PhaseIdle
	}

	if s.Phase.Ticking() {
		return s, []Effect{{Kind: EffectStartTicking, Delay: o.TickInterval}}
	}
	return s, nil
}

func wrapMinute(m int) int {
	m %= tier.MinutesPerDay
	if m < 0 {
		m += tier.MinutesPerDay
	}
	return m
}
