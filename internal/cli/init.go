package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/parkmeter/internal/config"
	"github.com/rileyhilliard/parkmeter/internal/errors"
	"github.com/rileyhilliard/parkmeter/internal/ticket"
	"github.com/rileyhilliard/parkmeter/internal/ui"
	"gopkg.in/yaml.v3"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Dir            string // Directory to write into (default: current)
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use defaults
}

// configHeader is written above the generated YAML.
const configHeader = `# parkmeter configuration
# Run 'parkmeter run' to open the ticket, 'parkmeter tiers' to check the table.
# Each tier applies until max_minutes; bounds must strictly increase.

`

// Init creates a new .parkmeter.yaml configuration file.
func Init(w io.Writer, opts InitOptions) error {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	configPath := filepath.Join(dir, config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()

	if !opts.NonInteractive {
		if err := promptWidget(&cfg.Widget); err != nil {
			return err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	if err := os.WriteFile(configPath, []byte(configHeader+string(data)), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Fprintf(w, "%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, "  parkmeter tiers  - Check the price table")
	fmt.Fprintln(w, "  parkmeter run    - Open the ticket")

	return nil
}

// promptWidget asks for the settings people most often change.
func promptWidget(wc *config.WidgetConfig) error {
	position := wc.Position
	scan := wc.ScanStep

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Where should the ticket sit?").
				Options(
					huh.NewOption("Bottom right", config.PositionBottomRight),
					huh.NewOption("Bottom left", config.PositionBottomLeft),
					huh.NewOption("Top right", config.PositionTopRight),
					huh.NewOption("Top left", config.PositionTopLeft),
				).
				Value(&position),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Start with a ticket scan?").
				Description("Off starts the clock immediately").
				Value(&scan),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Run from a terminal, or set CI=1 to accept the defaults")
	}

	wc.Position = position
	wc.ScanStep = scan
	if !scan {
		wc.ResetTo = ticket.PhaseIdle.String()
	}
	return nil
}

// initCommand is the implementation called by the cobra command.
func initCommand(w io.Writer, force bool) error {
	return Init(w, InitOptions{
		Overwrite:      force,
		NonInteractive: !stdinIsTerminal() || os.Getenv("CI") != "",
	})
}
