package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/rileyhilliard/parkmeter/internal/config"
	"github.com/rileyhilliard/parkmeter/internal/errors"
	"github.com/rileyhilliard/parkmeter/internal/logger"
	"github.com/rileyhilliard/parkmeter/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Global flags
var (
	cfgFile string
	noColor bool
)

// rootCmd is the base command when called without subcommands
var rootCmd = &cobra.Command{
	Use:   "parkmeter",
	Short: "A parking ticket timer for your terminal",
	Long: `parkmeter shows a simulated parking ticket whose price climbs through
time-based tiers. Scan the ticket, watch the clock run, expand it to see
when the rate changes next, and pay before it does.

Tiers and widget behaviour are read from .parkmeter.yaml (see 'parkmeter init').`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if machineMode {
			_ = WriteJSONFromError(os.Stdout, err)
		} else {
			writeError(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// writeError prints err for a person. Structured errors carry their own
// marker; anything else (usually cobra argument errors) gets one here.
func writeError(w io.Writer, err error) {
	var pmErr *errors.Error
	if stderrors.As(err, &pmErr) {
		fmt.Fprintln(w, err)
		return
	}
	fmt.Fprintf(w, "%s %s\n", ui.ErrorStyle().Render(ui.SymbolFail), err)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .parkmeter.yaml, then ~/.config/parkmeter/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&machineMode, "json", false, "output JSON for scripts")
}

// loadConfig finds and loads the config, then applies its color mode.
// path is empty when built-in defaults are used.
func loadConfig() (*config.Config, string, error) {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, "", err
	}

	if path == "" {
		logger.Default().Debug("no config file found, using defaults")
	} else {
		logger.Default().Debug("loaded config from %s", path)
	}

	applyColor(cfg.Output.Color)
	return cfg, path, nil
}

func applyColor(mode string) {
	if noColor || machineMode {
		mode = "never"
	}
	ui.ApplyColorMode(mode, stdoutIsTerminal())
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
