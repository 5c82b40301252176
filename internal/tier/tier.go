package tier

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/parkmeter/internal/errors"
)

// MinutesPerDay is the wraparound bound of the simulated clock.
const MinutesPerDay = 1440

// Tier is one breakpoint of the price table. MaxMinutes is an exclusive upper bound.
type Tier struct {
	MaxMinutes int    `yaml:"max_minutes" mapstructure:"max_minutes" json:"max_minutes"`
	Price      string `yaml:"price" mapstructure:"price" json:"price"`
}

// Table is an ascending list of tiers.
type Table []Tier

// DefaultTable returns the stock parking tariff.
func DefaultTable() Table {
	return Table{
		{MaxMinutes: 180, Price: "R10"},  // 0-3h
		{MaxMinutes: 360, Price: "R20"},  // 3-6h
		{MaxMinutes: 420, Price: "R30"},  // 6-7h
		{MaxMinutes: 480, Price: "R50"},  // 7-8h
		{MaxMinutes: 1440, Price: "R80"}, // 8-24h
	}
}

// Last returns the index of the terminal tier, or -1 for an empty table.
func (t Table) Last() int {
	return len(t) - 1
}

// Bound returns the upper bound of the last tier (the clock wrap point).
func (t Table) Bound() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].MaxMinutes
}

// Start returns the first minute covered by tier i.
func (t Table) Start(i int) int {
	if i <= 0 || i > len(t) {
		return 0
	}
	return t[i-1].MaxMinutes
}

// Validate rejects tables that cannot partition the minute axis.
func (t Table) Validate() error {
	if len(t) == 0 {
		return errors.New(errors.ErrTier,
			"Tier table is empty",
			"Add at least one entry under 'tiers', e.g. {max_minutes: 1440, price: R80}.")
	}

	prev := 0
	for i, tr := range t {
		if tr.MaxMinutes <= 0 {
			return errors.New(errors.ErrTier,
				fmt.Sprintf("Tier %d has max_minutes %d; it must be positive", i, tr.MaxMinutes),
				"Set max_minutes to the minute where this tier ends.")
		}
		if strings.TrimSpace(tr.Price) == "" {
			return errors.New(errors.ErrTier,
				fmt.Sprintf("Tier %d has no price label", i),
				"Give every tier a display price like \"R20\".")
		}
		if i > 0 && tr.MaxMinutes <= prev {
			return errors.New(errors.ErrTier,
				fmt.Sprintf("Tier %d ends at %d, which is not after tier %d (%d)", i, tr.MaxMinutes, i-1, prev),
				"List tiers in strictly increasing max_minutes order.")
		}
		prev = tr.MaxMinutes
	}

	return nil
}
