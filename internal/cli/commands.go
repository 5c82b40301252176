package cli

import (
	"os"

	"github.com/rileyhilliard/parkmeter/internal/errors"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	runFlags      runOptions
	simulateFlags simulateOptions
	initForce     bool
)

// runCmd opens the interactive ticket widget
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the parking ticket widget",
	Long: `Open the interactive parking ticket in the terminal.

The ticket starts by asking for a scan (unless scan_step is off), then runs a
simulated clock. The price follows the configured tiers.

Keyboard shortcuts:
  Enter/Space  Scan, or expand/collapse the ticket
  s            Scan ticket
  p            Pay (when expanded)
  Esc          Collapse / close help
  ?            Show help
  q / Ctrl+C   Quit

Examples:
  parkmeter run
  parkmeter run --minute 05:30 --no-scan --expanded
  parkmeter run --reset-delay 8s --reset-to idle`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runFlags
		opts.MinuteSet = cmd.Flags().Changed("minute")
		return runCommand(opts)
	},
}

// quoteCmd prices a single minute
var quoteCmd = &cobra.Command{
	Use:   "quote [minute]",
	Short: "Show the price and countdown for a minute of parking",
	Long: `Show which tier a minute of parking falls into, the next tier,
how long until the price changes, and how many indicator dots are lit.

The minute is a number (0-1439) or a clock time like 06:15. Without one,
widget.initial_minute from the config is used.

Examples:
  parkmeter quote 200
  parkmeter quote 07:45
  parkmeter quote 400 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arg := ""
		if len(args) == 1 {
			arg = args[0]
		}
		return quoteCommand(cmd.OutOrStdout(), arg)
	},
}

// tiersCmd prints the tier table
var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Show the configured price tiers",
	Long: `Print the tier table from the config (or the built-in defaults).

Examples:
  parkmeter tiers
  parkmeter tiers --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tiersCommand(cmd.OutOrStdout())
	},
}

// simulateCmd drives the widget without a terminal
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the ticket without a UI and print each phase change",
	Long: `Drive the ticket state machine headlessly: scan, expand, let the clock
run, optionally pay, and wait for the reset. Every phase change is printed.

By default time is simulated and the run finishes instantly. Use --realtime
to run on the wall clock.

Examples:
  parkmeter simulate --ticks 400
  parkmeter simulate --ticks 800 --pay-at 06:30
  parkmeter simulate --ticks 50 --pay-at 10 --realtime`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return simulateCommand(cmd.Context(), cmd.OutOrStdout(), simulateFlags)
	},
}

// initCmd creates a new .parkmeter.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .parkmeter.yaml configuration",
	Long: `Create a .parkmeter.yaml file in the current directory with the default
tier table and widget settings.

Asks before overwriting an existing file, and asks for the widget position
and scan step when run in a terminal.

Examples:
  parkmeter init
  parkmeter init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(cmd.OutOrStdout(), initForce)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for parkmeter.

Examples:
  # Bash
  parkmeter completion bash > /etc/bash_completion.d/parkmeter

  # Zsh
  parkmeter completion zsh > "${fpath[1]}/_parkmeter"

  # Fish
  parkmeter completion fish > ~/.config/fish/completions/parkmeter.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrExec,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// run command flags
	runCmd.Flags().StringVar(&runFlags.Minute, "minute", "", "start the clock at this minute (e.g., 90 or 01:30)")
	runCmd.Flags().StringVar(&runFlags.ResetDelay, "reset-delay", "", "how long the paid confirmation stays up (e.g., 4s)")
	runCmd.Flags().BoolVar(&runFlags.NoScan, "no-scan", false, "skip the scan step")
	runCmd.Flags().StringVar(&runFlags.ResetTo, "reset-to", "", "where the ticket lands after payment: scanning or idle")
	runCmd.Flags().BoolVar(&runFlags.Expanded, "expanded", false, "open the ticket expanded (with --no-scan)")
	runCmd.Flags().StringVar(&runFlags.Position, "position", "", "corner to draw the ticket in (bottom-right, bottom-left, top-right, top-left)")

	// simulate command flags
	simulateCmd.Flags().IntVar(&simulateFlags.Ticks, "ticks", 200, "number of clock ticks to run (two ticks per simulated minute)")
	simulateCmd.Flags().StringVar(&simulateFlags.PayAt, "pay-at", "", "pay once the clock reaches this minute (e.g., 120 or 02:00)")
	simulateCmd.Flags().BoolVar(&simulateFlags.Realtime, "realtime", false, "run on the wall clock instead of simulated time")

	// init command flags
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	// Register all commands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
