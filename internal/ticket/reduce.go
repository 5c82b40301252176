package ticket

import (
	"time"

	"github.com/rileyhilliard/parkmeter/internal/tier"
)

// EventKind identifies an input to the state machine.
type EventKind int

const (
	EventTick EventKind = iota
	EventStartScan
	EventScanComplete
	EventToggleExpand
	EventPay
	EventResetDue
	EventResetDone
)

func (k EventKind) String() string {
	switch k {
	case EventTick:
		return "tick"
	case EventStartScan:
		return "start-scan"
	case EventScanComplete:
		return "scan-complete"
	case EventToggleExpand:
		return "toggle-expand"
	case EventPay:
		return "pay"
	case EventResetDue:
		return "reset-due"
	case EventResetDone:
		return "reset-done"
	default:
		return "unknown"
	}
}

// Event is one input. At is the wall-clock time it happened; only Pay uses it.
type Event struct {
	Kind EventKind
	At   time.Time
}

// EffectKind identifies work the runtime must do after a transition.
type EffectKind int

const (
	// EffectStartTicking registers the periodic tick source (period Delay).
	EffectStartTicking EffectKind = iota
	// EffectStopTicking deregisters the periodic tick source.
	EffectStopTicking
	// EffectScheduleScanComplete fires EventScanComplete after Delay.
	EffectScheduleScanComplete
	// EffectScheduleReset fires EventResetDue after Delay.
	EffectScheduleReset
	// EffectScheduleResetDone fires EventResetDone after Delay.
	EffectScheduleResetDone
	// EffectNotifyPayment hands Amount to the payment callback.
	EffectNotifyPayment
)

func (k EffectKind) String() string {
	switch k {
	case EffectStartTicking:
		return "start-ticking"
	case EffectStopTicking:
		return "stop-ticking"
	case EffectScheduleScanComplete:
		return "schedule-scan-complete"
	case EffectScheduleReset:
		return "schedule-reset"
	case EffectScheduleResetDone:
		return "schedule-reset-done"
	case EffectNotifyPayment:
		return "notify-payment"
	default:
		return "unknown"
	}
}

// Effect is a side effect requested by Reduce.
type Effect struct {
	Kind   EffectKind
	Delay  time.Duration
	Amount string
}

// Reduce applies ev to s. Events that are not valid in the current phase
// return s unchanged with no effects.
func Reduce(s State, ev Event, o Options) (State, []Effect) {
	o = o.Normalize()

	switch ev.Kind {
	case EventTick:
		if !s.Phase.Ticking() {
			return s, nil
		}
		if s.AnimationFrame%2 == 0 {
			s.CurrentMinute = wrapMinute(s.CurrentMinute + 1)
		}
		s.AnimationFrame = (s.AnimationFrame + 1) % FrameCycle
		return s, nil

	case EventStartScan:
		if s.Phase != PhaseScanning || s.ScanInProgress {
			return s, nil
		}
		s.ScanInProgress = true
		return s, []Effect{{Kind: EffectScheduleScanComplete, Delay: o.ScanDuration}}

	case EventScanComplete:
		if s.Phase != PhaseScanning || !s.ScanInProgress {
			return s, nil
		}
		s.ScanInProgress = false
		s.Phase = PhaseIdle
		return s, []Effect{{Kind: EffectStartTicking, Delay: o.TickInterval}}

	case EventToggleExpand:
		switch s.Phase {
		case PhaseIdle:
			s.Phase = PhaseExpanded
		case PhaseExpanded:
			s.Phase = PhaseIdle
		}
		return s, nil

	case EventPay:
		if s.Phase != PhaseExpanded {
			return s, nil
		}
		amount := tier.Resolve(s.CurrentMinute, o.Tiers).Price
		s.PaidAmount = amount
		s.PaidAt = ev.At
		s.Phase = PhasePaid
		return s, []Effect{
			{Kind: EffectStopTicking},
			{Kind: EffectNotifyPayment, Amount: amount},
			{Kind: EffectScheduleReset, Delay: o.ResetDelay},
		}

	case EventResetDue:
		if s.Phase != PhasePaid {
			return s, nil
		}
		return State{
			Phase:         PhaseResetting,
			CurrentMinute: o.InitialMinute,
		}, []Effect{{Kind: EffectScheduleResetDone, Delay: o.ResetFade}}

	case EventResetDone:
		if s.Phase != PhaseResetting {
			return s, nil
		}
		s.Phase = o.ResetTo
		if s.Phase.Ticking() {
			return s, []Effect{{Kind: EffectStartTicking, Delay: o.TickInterval}}
		}
		return s, nil
	}

	return s, nil
}
