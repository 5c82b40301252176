package cli

import (
	"testing"
	"time"

	"github.com/rileyhilliard/parkmeter/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDurationFlag(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		want    time.Duration
		wantErr bool
	}{
		{name: "empty string returns zero", flag: "", want: 0},
		{name: "valid seconds", flag: "4s", want: 4 * time.Second},
		{name: "valid milliseconds", flag: "500ms", want: 500 * time.Millisecond},
		{name: "valid complex duration", flag: "1m30s", want: 90 * time.Second},
		{name: "bare number", flag: "5", wantErr: true},
		{name: "not a duration", flag: "soon", wantErr: true},
		{name: "negative", flag: "-5s", wantErr: true},
		{name: "zero", flag: "0s", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDurationFlag("reset-delay", tt.flag)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
				assert.Contains(t, err.Error(), "reset-delay")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMinute(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "0", want: 0},
		{input: "375", want: 375},
		{input: " 42 ", want: 42},
		{input: "1439", want: 1439},
		{input: "06:15", want: 375},
		{input: "0:05", want: 5},
		{input: "23:59", want: 1439},
		{input: "1440", wantErr: true},
		{input: "-1", wantErr: true},
		{input: "24:00", wantErr: true},
		{input: "06:60", wantErr: true},
		{input: "noon", wantErr: true},
		{input: "6:xx", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMinute(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "isn't a minute of the day")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
