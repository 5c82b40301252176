package cli

import (
	"testing"
	"time"

	"github.com/rileyhilliard/parkmeter/internal/config"
	"github.com/rileyhilliard/parkmeter/internal/errors"
	"github.com/rileyhilliard/parkmeter/internal/ticket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyRunOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    runOptions
		check   func(t *testing.T, cfg *config.Config)
		wantErr string
	}{
		{
			name: "no overrides keeps config",
			opts: runOptions{},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, config.DefaultConfig().Widget, cfg.Widget)
			},
		},
		{
			name: "minute as clock time",
			opts: runOptions{Minute: "01:30", MinuteSet: true},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 90, cfg.Widget.InitialMinute)
			},
		},
		{
			name: "minute zero is honoured when set",
			opts: runOptions{Minute: "0", MinuteSet: true},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 0, cfg.Widget.InitialMinute)
			},
		},
		{
			name: "no-scan resets to idle",
			opts: runOptions{NoScan: true, Expanded: true},
			check: func(t *testing.T, cfg *config.Config) {
				assert.False(t, cfg.Widget.ScanStep)
				assert.Equal(t, "idle", cfg.Widget.ResetTo)
				assert.True(t, cfg.Widget.StartExpanded)
			},
		},
		{
			name: "reset delay and position",
			opts: runOptions{ResetDelay: "8s", Position: "top-left", ResetTo: "idle"},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 8*time.Second, cfg.Widget.ResetDelay)
				assert.Equal(t, config.PositionTopLeft, cfg.Widget.Position)
				assert.Equal(t, "idle", cfg.Widget.ResetTo)
				assert.True(t, cfg.Widget.ScanStep)
			},
		},
		{
			name:    "scanning target without a scan step",
			opts:    runOptions{NoScan: true, ResetTo: "scanning"},
			wantErr: "scan_step",
		},
		{
			name:    "bad minute",
			opts:    runOptions{Minute: "99:00", MinuteSet: true},
			wantErr: "isn't a minute of the day",
		},
		{
			name:    "bad reset delay",
			opts:    runOptions{ResetDelay: "forever"},
			wantErr: "reset-delay",
		},
		{
			name:    "bad position",
			opts:    runOptions{Position: "middle"},
			wantErr: "corner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			err := applyRunOptions(cfg, tt.opts)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestApplyRunOptions_TicketOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, applyRunOptions(cfg, runOptions{NoScan: true, Minute: "170", MinuteSet: true}))

	opts, err := cfg.TicketOptions()
	require.NoError(t, err)
	assert.False(t, opts.ScanStep)
	assert.Equal(t, ticket.PhaseIdle, opts.ResetTo)
	assert.Equal(t, 170, opts.InitialMinute)

	s, _ := ticket.Initial(opts)
	assert.Equal(t, ticket.PhaseIdle, s.Phase)
}

func TestRunCommand_RequiresTerminal(t *testing.T) {
	isolate(t)
	if stdoutIsTerminal() {
		t.Skip("stdout is a terminal")
	}

	err := runCommand(runOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrTerminal))
}
