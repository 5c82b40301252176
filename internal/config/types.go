package config

import (
	"time"

	"github.com/rileyhilliard/parkmeter/internal/tier"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Widget positions, matching the corners the card can be pinned to.
const (
	PositionBottomRight = "bottom-right"
	PositionBottomLeft  = "bottom-left"
	PositionTopRight    = "top-right"
	PositionTopLeft     = "top-left"
)

// Config represents the complete .parkmeter.yaml configuration file.
type Config struct {
	Version int          `yaml:"version" mapstructure:"version"`
	Tiers   tier.Table   `yaml:"tiers" mapstructure:"tiers"`
	Widget  WidgetConfig `yaml:"widget" mapstructure:"widget"`
	Output  OutputConfig `yaml:"output" mapstructure:"output"`
}

// WidgetConfig controls the ticket widget's clock and phase timings.
type WidgetConfig struct {
	// InitialMinute is where the simulated clock starts, in [0, 1440).
	InitialMinute int `yaml:"initial_minute" mapstructure:"initial_minute"`

	// TickInterval is the period of the animation tick. Every second tick
	// advances the clock by one minute.
	TickInterval time.Duration `yaml:"tick_interval" mapstructure:"tick_interval"`

	// ScanStep starts the widget in the scanning phase.
	ScanStep bool `yaml:"scan_step" mapstructure:"scan_step"`

	// ScanDuration is how long the simulated scan takes.
	ScanDuration time.Duration `yaml:"scan_duration" mapstructure:"scan_duration"`

	// ResetDelay is how long the payment confirmation stays before the reset.
	ResetDelay time.Duration `yaml:"reset_delay" mapstructure:"reset_delay"`

	// ResetFade is how long the resetting phase lasts.
	ResetFade time.Duration `yaml:"reset_fade" mapstructure:"reset_fade"`

	// ResetTo is the phase after a reset: "scanning" or "idle".
	ResetTo string `yaml:"reset_to" mapstructure:"reset_to"`

	// Position pins the card to a terminal corner.
	Position string `yaml:"position" mapstructure:"position"`

	// StartExpanded opens the detail section on mount (no-scan widgets only).
	StartExpanded bool `yaml:"start_expanded" mapstructure:"start_expanded"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Tiers:   tier.DefaultTable(),
		Widget: WidgetConfig{
			InitialMinute: 0,
			TickInterval:  100 * time.Millisecond,
			ScanStep:      true,
			ScanDuration:  2 * time.Second,
			ResetDelay:    4 * time.Second,
			ResetFade:     300 * time.Millisecond,
			ResetTo:       "scanning",
			Position:      PositionBottomRight,
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

// fileWidget is WidgetConfig as written to disk, with human-readable durations.
type fileWidget struct {
	InitialMinute int    `yaml:"initial_minute"`
	TickInterval  string `yaml:"tick_interval"`
	ScanStep      bool   `yaml:"scan_step"`
	ScanDuration  string `yaml:"scan_duration"`
	ResetDelay    string `yaml:"reset_delay"`
	ResetFade     string `yaml:"reset_fade"`
	ResetTo       string `yaml:"reset_to"`
	Position      string `yaml:"position"`
	StartExpanded bool   `yaml:"start_expanded,omitempty"`
}

// MarshalYAML writes durations as "100ms"/"4s" instead of nanosecond integers.
func (w WidgetConfig) MarshalYAML() (interface{}, error) {
	return fileWidget{
		InitialMinute: w.InitialMinute,
		TickInterval:  w.TickInterval.String(),
		ScanStep:      w.ScanStep,
		ScanDuration:  w.ScanDuration.String(),
		ResetDelay:    w.ResetDelay.String(),
		ResetFade:     w.ResetFade.String(),
		ResetTo:       w.ResetTo,
		Position:      w.Position,
		StartExpanded: w.StartExpanded,
	}, nil
}
