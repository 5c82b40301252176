package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"time"

	"github.com/rileyhilliard/parkmeter/internal/errors"
	"github.com/rileyhilliard/parkmeter/internal/logger"
	"github.com/rileyhilliard/parkmeter/internal/ticket"
	"github.com/rileyhilliard/parkmeter/internal/ui"
	"github.com/rileyhilliard/parkmeter/internal/util"
)

// simulateOptions holds the simulate command's flags.
type simulateOptions struct {
	Ticks    int
	PayAt    string
	Realtime bool
}

// Transition is one phase change seen during a simulation.
type Transition struct {
	Elapsed time.Duration `json:"elapsed"`
	From    string        `json:"from"`
	To      string        `json:"to"`
	Minute  int           `json:"minute"`
	Price   string        `json:"price"`
}

// SimulationResult summarizes a headless run.
type SimulationResult struct {
	Ticks       int          `json:"ticks"`
	Transitions []Transition `json:"transitions"`
	Payments    []string     `json:"payments"`
	Final       ticket.View  `json:"final"`
}

// simulateCommand loads config and runs the simulation.
func simulateCommand(ctx context.Context, w io.Writer, so simulateOptions) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	opts, err := cfg.TicketOptions()
	if err != nil {
		return err
	}

	payAt := -1
	if so.PayAt != "" {
		if payAt, err = ParseMinute(so.PayAt); err != nil {
			return err
		}
	}
	if so.Ticks <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("--ticks must be positive, got %d", so.Ticks),
			"Two ticks make one simulated minute; try --ticks 200.")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	live := w
	if machineMode {
		live = nil
	}

	res, err := Simulate(ctx, live, opts, SimulationPlan{
		Ticks:    so.Ticks,
		PayAt:    payAt,
		Realtime: so.Realtime,
		Logger:   logger.NewEnvLogger("[ticket]"),
	})
	if err != nil {
		return err
	}

	if machineMode {
		return WriteJSONSuccess(w, res)
	}
	writeSimulationSummary(w, res)
	return nil
}

// SimulationPlan scripts a headless run.
type SimulationPlan struct {
	// Ticks is the most clock ticks to run before stopping.
	Ticks int
	// PayAt pays once the clock reaches this minute. Negative never pays.
	PayAt int
	// Realtime runs on a LoopScheduler instead of a virtual clock.
	Realtime bool
	Logger   logger.Logger
}

// Simulate scans the ticket, expands it, lets the clock run and optionally
// pays, then waits for the reset. Phase changes are written to w as they
// happen when w is non-nil.
func Simulate(ctx context.Context, w io.Writer, opts ticket.Options, plan SimulationPlan) (SimulationResult, error) {
	opts = opts.Normalize()
	if plan.Logger == nil {
		plan.Logger = logger.Noop()
	}

	d := &driver{w: w, plan: plan}

	if !plan.Realtime {
		sched := ticket.NewManualScheduler()
		d.sched = sched
		d.elapsed = sched.Now
		d.stop = func() {}

		m := d.mount(opts, ticket.WithClock(sched.Clock().Now))
		for !d.done && sched.Pending() > 0 {
			sched.Advance(opts.TickInterval)
		}
		m.Close()
		return d.result(m), nil
	}

	sched := ticket.NewLoopScheduler()
	d.sched = sched
	start := time.Now()
	d.elapsed = func() time.Duration { return time.Since(start) }

	budget := opts.ScanDuration + time.Duration(plan.Ticks)*opts.TickInterval + opts.ResetDelay + opts.ResetFade + time.Second
	ctx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()
	d.stop = cancel

	var m *ticket.Machine
	sched.After(0, func() { m = d.mount(opts) })
	err := sched.Run(ctx)

	if m == nil {
		return SimulationResult{}, errors.WrapWithCode(err, errors.ErrExec,
			"Simulation never started",
			"Try again without --realtime")
	}
	m.Close()

	if !d.done && stderrors.Is(err, context.DeadlineExceeded) {
		return d.result(m), errors.WrapWithCode(err, errors.ErrExec,
			"Simulation timed out",
			"Lower --ticks or tick_interval")
	}
	return d.result(m), nil
}

// driver plays a user against a Machine. It reacts to published states and
// posts its next action through the scheduler so it never re-enters Dispatch.
type driver struct {
	w       io.Writer
	plan    SimulationPlan
	sched   ticket.Scheduler
	elapsed func() time.Duration
	stop    func()

	m            *ticket.Machine
	prev         ticket.State
	ticks        int
	scanned      bool
	expanded     bool
	payRequested bool
	done         bool
	transitions  []Transition
	payments     []string
}

func (d *driver) mount(opts ticket.Options, extra ...ticket.MachineOption) *ticket.Machine {
	mopts := append([]ticket.MachineOption{
		ticket.WithLogger(d.plan.Logger),
		ticket.WithNotifier(ticket.PaymentFunc(func(amount string) {
			d.payments = append(d.payments, amount)
		})),
	}, extra...)

	d.m = ticket.NewMachine(opts, d.sched, mopts...)
	d.prev = d.m.State()
	d.m.Subscribe(d.observe)
	d.m.Start()
	return d.m
}

func (d *driver) observe(s ticket.State) {
	if d.done {
		return
	}
	prev := d.prev
	d.prev = s

	if s.Phase != prev.Phase {
		d.record(prev.Phase, s)
	} else if s.Phase.Ticking() && s.AnimationFrame != prev.AnimationFrame {
		d.ticks++
	}

	switch {
	case prev.Phase == ticket.PhaseResetting && s.Phase != ticket.PhaseResetting:
		d.finish()
	case d.ticks >= d.plan.Ticks:
		d.finish()
	case s.Phase == ticket.PhaseScanning && !s.ScanInProgress && !d.scanned:
		d.scanned = true
		d.post(d.m.StartScan)
	case s.Phase == ticket.PhaseIdle && !d.expanded:
		d.expanded = true
		d.post(d.m.ToggleExpand)
	case s.Phase == ticket.PhaseExpanded && d.plan.PayAt >= 0 && !d.payRequested && s.CurrentMinute >= d.plan.PayAt:
		d.payRequested = true
		d.post(d.m.Pay)
	}
}

func (d *driver) post(fn func()) {
	d.sched.After(0, fn)
}

func (d *driver) finish() {
	d.done = true
	d.stop()
}

func (d *driver) record(from ticket.Phase, s ticket.State) {
	v := ticket.Derive(s, d.m.Options().Tiers)
	price := v.Tier.Price
	if s.IsPaid() {
		price = s.PaidAmount
	}

	tr := Transition{
		Elapsed: d.elapsed(),
		From:    from.String(),
		To:      s.Phase.String(),
		Minute:  s.CurrentMinute,
		Price:   price,
	}
	d.transitions = append(d.transitions, tr)

	if d.w != nil {
		fmt.Fprintf(d.w, "%9s  %-9s %s %-9s  %s  %s\n",
			formatElapsed(tr.Elapsed), tr.From, ui.SymbolArrow, tr.To,
			ui.FormatClock(tr.Minute), ui.TierStyle(v.Tier.Index).Render(price))
	}
}

func (d *driver) result(m *ticket.Machine) SimulationResult {
	return SimulationResult{
		Ticks:       d.ticks,
		Transitions: d.transitions,
		Payments:    d.payments,
		Final:       m.Snapshot(),
	}
}

func writeSimulationSummary(w io.Writer, res SimulationResult) {
	label := ui.MutedStyle()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", label.Render("Ran:     "), util.Count(res.Ticks, "tick", "ticks"))
	fmt.Fprintf(w, "%s %s (%s)\n", label.Render("Final:   "), res.Final.Phase, ui.FormatClock(res.Final.CurrentMinute))

	paid := util.JoinOrNone(res.Payments)
	if len(res.Payments) > 0 {
		paid = ui.SuccessStyle().Render(ui.SymbolSuccess) + " " + paid
	}
	fmt.Fprintf(w, "%s %s\n", label.Render("Payments:"), paid)
}

// formatElapsed renders a duration as seconds with millisecond precision.
func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.3fs", d.Seconds())
}
