package ticket

import (
	"time"

	"github.com/rileyhilliard/parkmeter/internal/logger"
)

// Machine runs one widget instance: it owns the State, feeds events through
// Reduce, and carries out the resulting effects. It is not safe for
// concurrent use; drive it from a single goroutine (see Scheduler).
type Machine struct {
	opts     Options
	state    State
	sched    Scheduler
	notifier PaymentNotifier
	log      logger.Logger
	now      func() time.Time

	stopTick func()
	pending  map[EventKind]func()

	subs   map[int]func(State)
	nextID int
	closed bool
}

// MachineOption customizes a Machine.
type MachineOption func(*Machine)

// WithLogger sets the logger used for transition and payment messages.
func WithLogger(l logger.Logger) MachineOption {
	return func(m *Machine) { m.log = l }
}

// WithClock overrides the wall clock used to stamp payments.
func WithClock(now func() time.Time) MachineOption {
	return func(m *Machine) { m.now = now }
}

// WithNotifier sets the payment callback.
func WithNotifier(n PaymentNotifier) MachineOption {
	return func(m *Machine) {
		if n != nil {
			m.notifier = n
		}
	}
}

// NewMachine creates a machine in its mount state. Call Start to arm timers.
func NewMachine(opts Options, sched Scheduler, mopts ...MachineOption) *Machine {
	opts = opts.Normalize()
	s, _ := Initial(opts)

	m := &Machine{
		opts:     opts,
		state:    s,
		sched:    sched,
		notifier: noopNotifier{},
		log:      logger.Noop(),
		now:      time.Now,
		pending:  make(map[EventKind]func()),
		subs:     make(map[int]func(State)),
	}
	for _, o := range mopts {
		o(m)
	}
	return m
}

// Start runs the mount effects (the tick loop, when the widget starts ticking).
func (m *Machine) Start() {
	_, effects := Initial(m.opts)
	m.apply(effects)
	m.publish()
}

// Options returns the normalized options.
func (m *Machine) Options() Options {
	return m.opts
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Snapshot returns the current state with all derived display values.
func (m *Machine) Snapshot() View {
	return Derive(m.state, m.opts.Tiers)
}

// Subscribe registers fn to receive every new state. The returned func
// removes the subscription.
func (m *Machine) Subscribe(fn func(State)) (unsubscribe func()) {
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	return func() { delete(m.subs, id) }
}

// StartScan begins the simulated ticket scan.
func (m *Machine) StartScan() { m.Dispatch(EventStartScan) }

// ToggleExpand shows or hides the detail section.
func (m *Machine) ToggleExpand() { m.Dispatch(EventToggleExpand) }

// Pay pays the ticket at the current tier's price.
func (m *Machine) Pay() { m.Dispatch(EventPay) }

// Dispatch feeds one event through the reducer. Events after Close are dropped.
func (m *Machine) Dispatch(kind EventKind) {
	if m.closed {
		return
	}

	prev := m.state
	next, effects := Reduce(prev, Event{Kind: kind, At: m.now()}, m.opts)
	m.state = next

	if prev.Phase != next.Phase {
		m.log.Debug("phase %s -> %s on %s (minute %d)", prev.Phase, next.Phase, kind, next.CurrentMinute)
	}

	m.apply(effects)

	if next != prev {
		m.publish()
	}
}

// Close cancels every timer. It models the widget unmounting.
func (m *Machine) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.stopTicking()
	for k, cancel := range m.pending {
		cancel()
		delete(m.pending, k)
	}
}

func (m *Machine) apply(effects []Effect) {
	for _, e := range effects {
		switch e.Kind {
		case EffectStartTicking:
			m.stopTicking()
			m.stopTick = m.sched.Every(e.Delay, func() { m.Dispatch(EventTick) })
		case EffectStopTicking:
			m.stopTicking()
		case EffectScheduleScanComplete:
			m.arm(EventScanComplete, e.Delay)
		case EffectScheduleReset:
			m.arm(EventResetDue, e.Delay)
		case EffectScheduleResetDone:
			m.arm(EventResetDone, e.Delay)
		case EffectNotifyPayment:
			m.log.Info("ticket paid: %s", e.Amount)
			m.notifier.PaymentMade(e.Amount)
		}
	}
}

func (m *Machine) arm(kind EventKind, d time.Duration) {
	if cancel, ok := m.pending[kind]; ok {
		cancel()
	}
	m.pending[kind] = m.sched.After(d, func() {
		delete(m.pending, kind)
		m.Dispatch(kind)
	})
}

func (m *Machine) stopTicking() {
	if m.stopTick != nil {
		m.stopTick()
		m.stopTick = nil
	}
}

func (m *Machine) publish() {
	for _, fn := range m.subs {
		fn(m.state)
	}
}
