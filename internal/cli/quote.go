package cli

import (
	"fmt"
	"io"

	"github.com/rileyhilliard/parkmeter/internal/tier"
	"github.com/rileyhilliard/parkmeter/internal/ui"
)

// Quote is what the quote command reports for one minute.
type Quote struct {
	Minute    int             `json:"minute"`
	Clock     string          `json:"clock"`
	Tier      tier.Info       `json:"tier"`
	Level     string          `json:"level"`
	Next      *tier.NextInfo  `json:"next,omitempty"`
	Countdown *tier.Countdown `json:"countdown,omitempty"`
	Dots      float64         `json:"dots"`
}

// quoteCommand prints the quote for the minute in arg, or the configured
// initial minute when arg is empty.
func quoteCommand(w io.Writer, arg string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	minute := cfg.Widget.InitialMinute
	if arg != "" {
		if minute, err = ParseMinute(arg); err != nil {
			return err
		}
	}

	q := NewQuote(minute, cfg.Tiers)
	if machineMode {
		return WriteJSONSuccess(w, q)
	}
	writeQuote(w, q)
	return nil
}

// NewQuote resolves minute against t.
func NewQuote(minute int, t tier.Table) Quote {
	info := tier.Resolve(minute, t)
	q := Quote{
		Minute: minute,
		Clock:  ui.FormatClock(minute),
		Tier:   info,
		Level:  tier.LevelOf(info.Index).String(),
		Dots:   tier.ActiveDots(info, minute, 0, false),
	}

	if next, ok := tier.Next(info, t); ok {
		q.Next = &next
	}
	if cd, ok := tier.Until(info, minute, t); ok {
		q.Countdown = &cd
	}
	return q
}

func writeQuote(w io.Writer, q Quote) {
	label := ui.MutedStyle()
	price := ui.TierStyle(q.Tier.Index)

	fmt.Fprintf(w, "%s %s (%s)\n", label.Render("Parked:"), ui.FormatMinutes(q.Minute), q.Clock)
	fmt.Fprintf(w, "%s %s  %s\n", label.Render("Rate:  "), price.Render(q.Tier.Price),
		label.Render(fmt.Sprintf("tier %d, %s-%s", q.Tier.Index, ui.FormatClock(q.Tier.StartMinute), ui.FormatClock(q.Tier.EndMinute))))

	if q.Next != nil && q.Countdown != nil {
		fmt.Fprintf(w, "%s %s %s %s\n", label.Render("Next:  "), ui.TierStyle(q.Tier.Index+1).Render(q.Next.Price),
			label.Render("in"), q.Countdown.String())
	} else {
		fmt.Fprintf(w, "%s %s\n", label.Render("Next:  "), label.Render("maximum daily rate"))
	}

	fmt.Fprintf(w, "%s %.1f/%d\n", label.Render("Dots:  "), q.Dots, tier.MaxDots)
}
