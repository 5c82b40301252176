package tier

import (
	"testing"

	"github.com/rileyhilliard/parkmeter/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	tbl := DefaultTable()

	require.NoError(t, tbl.Validate())
	assert.Len(t, tbl, 5)
	assert.Equal(t, MinutesPerDay, tbl.Bound())
	assert.Equal(t, 4, tbl.Last())
}

func TestTable_Start(t *testing.T) {
	tbl := DefaultTable()

	assert.Equal(t, 0, tbl.Start(0))
	assert.Equal(t, 180, tbl.Start(1))
	assert.Equal(t, 480, tbl.Start(4))
	assert.Equal(t, 0, tbl.Start(-1))
	assert.Equal(t, 0, tbl.Start(99))
}

func TestTable_Validate(t *testing.T) {
	tests := []struct {
		name    string
		table   Table
		wantErr string
	}{
		{
			name:  "single tier",
			table: Table{{MaxMinutes: 1440, Price: "R5"}},
		},
		{
			name:    "empty",
			table:   Table{},
			wantErr: "empty",
		},
		{
			name:    "nil",
			table:   nil,
			wantErr: "empty",
		},
		{
			name:    "zero bound",
			table:   Table{{MaxMinutes: 0, Price: "R1"}},
			wantErr: "must be positive",
		},
		{
			name:    "missing price",
			table:   Table{{MaxMinutes: 60, Price: "  "}},
			wantErr: "no price label",
		},
		{
			name: "equal bounds",
			table: Table{
				{MaxMinutes: 60, Price: "R1"},
				{MaxMinutes: 60, Price: "R2"},
			},
			wantErr: "not after tier 0",
		},
		{
			name: "descending bounds",
			table: Table{
				{MaxMinutes: 360, Price: "R1"},
				{MaxMinutes: 180, Price: "R2"},
				{MaxMinutes: 1440, Price: "R3"},
			},
			wantErr: "Tier 1 ends at 180",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.IsCode(err, errors.ErrTier))
		})
	}
}

func TestLevelOf(t *testing.T) {
	tests := []struct {
		index int
		want  Level
	}{
		{-1, LevelLow},
		{0, LevelLow},
		{1, LevelModerate},
		{2, LevelElevated},
		{3, LevelHigh},
		{4, LevelPeak},
		{12, LevelPeak},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, LevelOf(tt.index))
		})
	}

	assert.Equal(t, "unknown", Level(42).String())
}
