package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rileyhilliard/parkmeter/internal/config"
	"github.com/rileyhilliard/parkmeter/internal/tier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuote(t *testing.T) {
	q := NewQuote(200, tier.DefaultTable())

	assert.Equal(t, 200, q.Minute)
	assert.Equal(t, "03:20", q.Clock)
	assert.Equal(t, 1, q.Tier.Index)
	assert.Equal(t, "R20", q.Tier.Price)
	assert.Equal(t, "moderate", q.Level)
	require.NotNil(t, q.Next)
	assert.Equal(t, "R30", q.Next.Price)
	assert.Equal(t, 360, q.Next.StartMinute)
	require.NotNil(t, q.Countdown)
	assert.Equal(t, 160, q.Countdown.TotalMinutes)
	assert.Equal(t, 1.0, q.Dots)
}

func TestNewQuote_TerminalTier(t *testing.T) {
	q := NewQuote(600, tier.DefaultTable())

	assert.Equal(t, 4, q.Tier.Index)
	assert.Equal(t, "R80", q.Tier.Price)
	assert.Equal(t, "peak", q.Level)
	assert.Nil(t, q.Next)
	assert.Nil(t, q.Countdown)
}

func TestWriteQuote(t *testing.T) {
	isolate(t)

	var buf bytes.Buffer
	writeQuote(&buf, NewQuote(200, tier.DefaultTable()))
	out := buf.String()

	assert.Contains(t, out, "3h 20m (03:20)")
	assert.Contains(t, out, "R20")
	assert.Contains(t, out, "tier 1, 03:00-06:00")
	assert.Contains(t, out, "R30 in 2h 40m")
	assert.Contains(t, out, "1.0/9")

	buf.Reset()
	writeQuote(&buf, NewQuote(500, tier.DefaultTable()))
	assert.Contains(t, buf.String(), "maximum daily rate")
}

func TestQuoteCommand_JSON(t *testing.T) {
	isolate(t)
	machineMode = true

	var buf bytes.Buffer
	require.NoError(t, quoteCommand(&buf, "06:15"))

	var env struct {
		Success bool  `json:"success"`
		Data    Quote `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))

	assert.True(t, env.Success)
	assert.Equal(t, 375, env.Data.Minute)
	assert.Equal(t, "R30", env.Data.Tier.Price)
	require.NotNil(t, env.Data.Countdown)
	assert.Equal(t, 45, env.Data.Countdown.TotalMinutes)
}

func TestQuoteCommand_UsesConfig(t *testing.T) {
	dir := isolate(t)

	content := `
tiers:
  - max_minutes: 60
    price: "$1"
  - max_minutes: 1440
    price: "$5"
widget:
  initial_minute: 45
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(content), 0644))

	var buf bytes.Buffer
	require.NoError(t, quoteCommand(&buf, ""))

	out := buf.String()
	assert.Contains(t, out, "45m (00:45)")
	assert.Contains(t, out, "$1")
	assert.Contains(t, out, "$5 in 15m")
}

func TestQuoteCommand_BadMinute(t *testing.T) {
	isolate(t)

	err := quoteCommand(&bytes.Buffer{}, "25:00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "isn't a minute of the day")
}

func TestTiersCommand(t *testing.T) {
	isolate(t)

	var buf bytes.Buffer
	require.NoError(t, tiersCommand(&buf))

	out := buf.String()
	for _, want := range []string{"R10", "R20", "R30", "R50", "R80", "from defaults"} {
		assert.Contains(t, out, want)
	}
}

func TestTiersCommand_JSON(t *testing.T) {
	isolate(t)
	machineMode = true

	var buf bytes.Buffer
	require.NoError(t, tiersCommand(&buf))

	var env struct {
		Data tiersOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.Equal(t, "defaults", env.Data.Source)
	assert.Equal(t, tier.DefaultTable(), env.Data.Tiers)
}
