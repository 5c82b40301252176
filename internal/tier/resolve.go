package tier

import (
	"fmt"
	"math"
)

// MaxDots is the number of the progress indicator lights that can be lit.
const MaxDots = 9

// frameCycle is the length of the animation frame loop.
const frameCycle = 20

// Info describes the tier a minute falls into.
type Info struct {
	Index       int    `json:"tier"`
	Price       string `json:"price"`
	StartMinute int    `json:"start_minute"`
	EndMinute   int    `json:"end_minute"`
}

// Duration returns the tier length in minutes.
func (i Info) Duration() int {
	return i.EndMinute - i.StartMinute
}

// NextInfo describes the tier that follows the current one.
type NextInfo struct {
	Price       string `json:"price"`
	StartMinute int    `json:"start_minute"`
}

// Countdown is the time left before the price escalates.
type Countdown struct {
	Hours        int     `json:"hours"`
	Minutes      int     `json:"minutes"`
	TotalMinutes int     `json:"total_minutes"`
	Percentage   float64 `json:"percentage"`
}

// String renders the countdown as "2h 30m", or "10m" under an hour.
func (c Countdown) String() string {
	if c.Hours > 0 {
		return fmt.Sprintf("%dh %dm", c.Hours, c.Minutes)
	}
	return fmt.Sprintf("%dm", c.Minutes)
}

// Resolve returns the tier containing minute. Minutes at or past the last
// bound saturate to the last tier. An empty table yields the zero Info.
func Resolve(minute int, t Table) Info {
	for i, tr := range t {
		if minute < tr.MaxMinutes {
			return Info{
				Index:       i,
				Price:       tr.Price,
				StartMinute: t.Start(i),
				EndMinute:   tr.MaxMinutes,
			}
		}
	}

	last := t.Last()
	if last < 0 {
		return Info{}
	}
	return Info{
		Index:       last,
		Price:       t[last].Price,
		StartMinute: t.Start(last),
		EndMinute:   t[last].MaxMinutes,
	}
}

// Next returns the tier after cur. ok is false when cur is the terminal tier.
func Next(cur Info, t Table) (NextInfo, bool) {
	if cur.Index >= t.Last() {
		return NextInfo{}, false
	}
	return NextInfo{
		Price:       t[cur.Index+1].Price,
		StartMinute: cur.EndMinute,
	}, true
}

// Until returns how long until the price changes. ok is false when cur is the
// terminal tier, since no further change can happen.
func Until(cur Info, minute int, t Table) (Countdown, bool) {
	if cur.Index >= t.Last() {
		return Countdown{}, false
	}

	left := cur.EndMinute - minute
	if left < 0 {
		left = 0
	}

	var pct float64
	if d := cur.Duration(); d > 0 {
		pct = float64(left) / float64(d) * 100
	}

	return Countdown{
		Hours:        left / 60,
		Minutes:      left % 60,
		TotalMinutes: left,
		Percentage:   pct,
	}, true
}

// ActiveDots returns how many indicator lights are lit, in [0, MaxDots].
// The fractional part is a small animation offset driven by frame and has
// no billing meaning.
func ActiveDots(cur Info, minute, frame int, paid bool) float64 {
	if paid {
		return MaxDots
	}

	d := cur.Duration()
	if d <= 0 {
		return 0
	}

	elapsed := float64(minute-cur.StartMinute) / float64(d)
	elapsed = math.Max(0, math.Min(1, elapsed))

	scaled := elapsed * 10
	whole := math.Floor(scaled)
	dots := math.Min(MaxDots, whole)

	if scaled-whole > 0 {
		f := frame % frameCycle
		if f < 0 {
			f += frameCycle
		}
		dots += float64(f) / frameCycle * 0.1
	}

	return math.Max(0, math.Min(MaxDots, dots))
}
