package config

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/parkmeter/internal/errors"
	"github.com/rileyhilliard/parkmeter/internal/ticket"
	"github.com/rileyhilliard/parkmeter/internal/tier"
)

// MinTickInterval keeps the widget from redrawing faster than a terminal can.
const MinTickInterval = 10 * time.Millisecond

// ValidPositions lists accepted widget.position values.
var ValidPositions = []string{
	PositionBottomRight,
	PositionBottomLeft,
	PositionTopRight,
	PositionTopLeft,
}

// ValidColorModes lists accepted output.color values.
var ValidColorModes = []string{"auto", "always", "never"}

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but parkmeter only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade parkmeter or lower the version field.")
	}

	if err := cfg.Tiers.Validate(); err != nil {
		return err
	}
	if bound := cfg.Tiers.Bound(); bound != tier.MinutesPerDay {
		return errors.New(errors.ErrTier,
			fmt.Sprintf("The last tier ends at %d, but the clock wraps at %d", bound, tier.MinutesPerDay),
			fmt.Sprintf("Set max_minutes of the last tier to %d.", tier.MinutesPerDay))
	}

	if err := validateWidget(cfg.Widget); err != nil {
		return errors.New(errors.ErrConfig, err.Error(), "Check the 'widget' section in your .parkmeter.yaml.")
	}

	if !contains(ValidColorModes, cfg.Output.Color) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("output.color %q isn't a color mode", cfg.Output.Color),
			"Use one of: auto, always, never.")
	}

	return nil
}

func validateWidget(w WidgetConfig) error {
	if w.InitialMinute < 0 || w.InitialMinute >= tier.MinutesPerDay {
		return fmt.Errorf("widget.initial_minute must be in [0, %d), got %d", tier.MinutesPerDay, w.InitialMinute)
	}
	if w.TickInterval < MinTickInterval {
		return fmt.Errorf("widget.tick_interval must be at least %s, got %s", MinTickInterval, w.TickInterval)
	}
	if w.ScanDuration <= 0 {
		return fmt.Errorf("widget.scan_duration must be positive, got %s", w.ScanDuration)
	}
	if w.ResetDelay <= 0 {
		return fmt.Errorf("widget.reset_delay must be positive, got %s", w.ResetDelay)
	}
	if w.ResetFade < 0 {
		return fmt.Errorf("widget.reset_fade cannot be negative, got %s", w.ResetFade)
	}

	target, err := ticket.ParseResetTarget(w.ResetTo)
	if err != nil {
		return fmt.Errorf("widget.reset_to: %w", err)
	}
	if target == ticket.PhaseScanning && !w.ScanStep {
		return fmt.Errorf("widget.reset_to is scanning but widget.scan_step is off")
	}

	if !contains(ValidPositions, w.Position) {
		return fmt.Errorf("widget.position %q isn't a corner (want one of %v)", w.Position, ValidPositions)
	}

	return nil
}

// TicketOptions converts the config into options for a widget instance.
func (c *Config) TicketOptions() (ticket.Options, error) {
	target, err := ticket.ParseResetTarget(c.Widget.ResetTo)
	if err != nil {
		return ticket.Options{}, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid widget.reset_to",
			"Use 'scanning' or 'idle'.")
	}

	return ticket.Options{
		Tiers:         c.Tiers,
		InitialMinute: c.Widget.InitialMinute,
		TickInterval:  c.Widget.TickInterval,
		ScanStep:      c.Widget.ScanStep,
		ScanDuration:  c.Widget.ScanDuration,
		ResetDelay:    c.Widget.ResetDelay,
		ResetFade:     c.Widget.ResetFade,
		ResetTo:       target,
		StartExpanded: c.Widget.StartExpanded,
	}.Normalize(), nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
