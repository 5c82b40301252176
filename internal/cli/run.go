package cli

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/parkmeter/internal/config"
	"github.com/rileyhilliard/parkmeter/internal/errors"
	"github.com/rileyhilliard/parkmeter/internal/logger"
	"github.com/rileyhilliard/parkmeter/internal/ticket"
	"github.com/rileyhilliard/parkmeter/internal/ui"
	"github.com/rileyhilliard/parkmeter/internal/widget"
)

// debugLogFile receives widget logs while the TUI owns the screen.
const debugLogFile = "parkmeter-debug.log"

// runOptions holds the run command's overrides of the widget config.
type runOptions struct {
	Minute     string
	MinuteSet  bool
	ResetDelay string
	NoScan     bool
	ResetTo    string
	Expanded   bool
	Position   string
}

// runCommand opens the widget in the alternate screen.
func runCommand(opts runOptions) error {
	if !stdoutIsTerminal() {
		return errors.New(errors.ErrTerminal,
			"parkmeter run needs an interactive terminal",
			"Use 'parkmeter simulate' to drive the ticket without one.")
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	if err := applyRunOptions(cfg, opts); err != nil {
		return err
	}

	tOpts, err := cfg.TicketOptions()
	if err != nil {
		return err
	}

	log := logger.Noop()
	if logger.DebugEnabled() {
		f, err := tea.LogToFile(debugLogFile, "parkmeter")
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrExec,
				"Couldn't open the debug log",
				fmt.Sprintf("Unset %s or check you can write %s", logger.DebugEnv, debugLogFile))
		}
		defer f.Close()
		log = logger.NewEnvLogger("[widget]")
	}

	var payments []payment
	model := widget.NewModel(widget.Config{
		Options:  tOpts,
		Position: widget.Position(cfg.Widget.Position),
		Logger:   log,
		Notifier: ticket.PaymentFunc(func(amount string) {
			payments = append(payments, payment{Amount: amount, At: time.Now()})
		}),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrExec,
			"The ticket widget stopped unexpectedly",
			"Try again, or run with "+logger.DebugEnv+"=1 and check "+debugLogFile)
	}

	for _, pm := range payments {
		fmt.Fprintln(os.Stdout, ui.SuccessStyle().Render(ui.SymbolSuccess)+" Paid "+pm.Amount+" at "+pm.At.Format("15:04"))
	}
	return nil
}

type payment struct {
	Amount string
	At     time.Time
}

// applyRunOptions layers command-line overrides onto the widget config and
// re-validates it.
func applyRunOptions(cfg *config.Config, opts runOptions) error {
	w := &cfg.Widget

	if opts.MinuteSet {
		minute, err := ParseMinute(opts.Minute)
		if err != nil {
			return err
		}
		w.InitialMinute = minute
	}

	if opts.ResetDelay != "" {
		d, err := ParseDurationFlag("reset-delay", opts.ResetDelay)
		if err != nil {
			return err
		}
		w.ResetDelay = d
	}

	if opts.NoScan {
		w.ScanStep = false
		// There is no scan step to return to.
		if opts.ResetTo == "" {
			w.ResetTo = ticket.PhaseIdle.String()
		}
	}

	if opts.ResetTo != "" {
		w.ResetTo = opts.ResetTo
	}
	if opts.Expanded {
		w.StartExpanded = true
	}
	if opts.Position != "" {
		w.Position = opts.Position
	}

	return config.Validate(cfg)
}
