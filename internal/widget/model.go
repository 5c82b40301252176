package widget

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/parkmeter/internal/logger"
	"github.com/rileyhilliard/parkmeter/internal/ticket"
	"github.com/rileyhilliard/parkmeter/internal/ui"
)

// Position names a terminal corner.
type Position string

const (
	BottomRight Position = "bottom-right"
	BottomLeft  Position = "bottom-left"
	TopRight    Position = "top-right"
	TopLeft     Position = "top-left"
)

// Config configures a widget Model.
type Config struct {
	Options  ticket.Options
	Position Position
	Notifier ticket.PaymentNotifier
	Logger   logger.Logger
	// Now stamps payments. Defaults to time.Now.
	Now func() time.Time
}

// Model is the Bubble Tea model for one ticket widget.
type Model struct {
	opts     ticket.Options
	state    ticket.State
	position Position
	notifier ticket.PaymentNotifier
	log      logger.Logger
	now      func() time.Time

	// tickGen identifies the live tick loop. Ticks from older loops are dropped.
	tickGen int

	width    int
	height   int
	showHelp bool
	quitting bool

	spinner  spinner.Model
	progress progress.Model
}

// tickMsg drives the simulated clock.
type tickMsg struct {
	gen int
}

// timerMsg delivers a one-shot event armed by an effect.
type timerMsg struct {
	kind ticket.EventKind
}

// NewModel creates a widget in its mount state.
func NewModel(cfg Config) Model {
	opts := cfg.Options.Normalize()
	s, _ := ticket.Initial(opts)

	m := Model{
		opts:     opts,
		state:    s,
		position: cfg.Position,
		notifier: cfg.Notifier,
		log:      cfg.Logger,
		now:      cfg.Now,
		spinner:  ui.NewScanSpinner(),
		progress: progress.New(
			progress.WithoutPercentage(),
			progress.WithWidth(innerWidth),
			progress.WithSolidFill(string(ui.TierFill(0))),
		),
	}
	m.progress.EmptyColor = string(ui.ColorDotOff)

	if m.position == "" {
		m.position = BottomRight
	}
	if m.notifier == nil {
		m.notifier = ticket.PaymentFunc(nil)
	}
	if m.log == nil {
		m.log = logger.Noop()
	}
	if m.now == nil {
		m.now = time.Now
	}
	return m
}

// Init starts the tick loop when the widget mounts in a ticking phase.
func (m Model) Init() tea.Cmd {
	if m.state.Phase.Ticking() {
		return m.tickCmd(m.opts.TickInterval)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		if msg.gen != m.tickGen || !m.state.Phase.Ticking() {
			return m, nil
		}
		m.dispatch(ticket.EventTick)
		return m, m.tickCmd(m.opts.TickInterval)

	case timerMsg:
		return m, m.dispatch(msg.kind)

	case spinner.TickMsg:
		// Letting the tick drop ends the spinner loop once the scan is done.
		if !m.state.ScanInProgress {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// State returns the current widget state.
func (m Model) State() ticket.State {
	return m.state
}

// Snapshot returns the state with its derived tier values.
func (m Model) Snapshot() ticket.View {
	return ticket.Derive(m.state, m.opts.Tiers)
}

// dispatch runs one event through the reducer and turns the effects into commands.
func (m *Model) dispatch(kind ticket.EventKind) tea.Cmd {
	prev := m.state
	next, effects := ticket.Reduce(prev, ticket.Event{Kind: kind, At: m.now()}, m.opts)
	m.state = next

	if next.Phase != prev.Phase {
		m.log.Debug("widget: %s -> %s on %s", prev.Phase, next.Phase, kind)
	}

	cmds := make([]tea.Cmd, 0, len(effects)+1)
	for _, e := range effects {
		cmds = append(cmds, m.effectCmd(e))
	}
	if next.ScanInProgress && !prev.ScanInProgress {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (m *Model) effectCmd(e ticket.Effect) tea.Cmd {
	switch e.Kind {
	case ticket.EffectStartTicking:
		m.tickGen++
		return m.tickCmd(e.Delay)
	case ticket.EffectStopTicking:
		m.tickGen++
		return nil
	case ticket.EffectScheduleScanComplete:
		return timerCmd(e.Delay, ticket.EventScanComplete)
	case ticket.EffectScheduleReset:
		return timerCmd(e.Delay, ticket.EventResetDue)
	case ticket.EffectScheduleResetDone:
		return timerCmd(e.Delay, ticket.EventResetDone)
	case ticket.EffectNotifyPayment:
		m.log.Info("ticket paid: %s", e.Amount)
		m.notifier.PaymentMade(e.Amount)
	}
	return nil
}

// tickCmd returns a command that sends a tick for the current loop after d.
func (m Model) tickCmd(d time.Duration) tea.Cmd {
	gen := m.tickGen
	return tea.Tick(d, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func timerCmd(d time.Duration, kind ticket.EventKind) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{kind: kind}
	})
}
