package ticket

import (
	"encoding/json"

	"github.com/rileyhilliard/parkmeter/internal/tier"
)

// View is a State plus every value the presentation layer derives from it.
// Next and Countdown are only meaningful when HasNext and HasCountdown are set.
type View struct {
	State

	Tier         tier.Info
	Next         tier.NextInfo
	HasNext      bool
	Countdown    tier.Countdown
	HasCountdown bool
	Dots         float64
}

// Derive recomputes the tier and display values for s. Nothing is cached;
// every call starts from scratch.
func Derive(s State, t tier.Table) View {
	info := tier.Resolve(s.CurrentMinute, t)
	next, hasNext := tier.Next(info, t)
	cd, hasCountdown := tier.Until(info, s.CurrentMinute, t)

	return View{
		State:        s,
		Tier:         info,
		Next:         next,
		HasNext:      hasNext,
		Countdown:    cd,
		HasCountdown: hasCountdown,
		Dots:         tier.ActiveDots(info, s.CurrentMinute, s.AnimationFrame, s.IsPaid()),
	}
}

// MarshalJSON flattens the state and leaves out next and countdown on the
// terminal tier.
func (v View) MarshalJSON() ([]byte, error) {
	out := struct {
		stateJSON
		Tier      tier.Info       `json:"tier"`
		Next      *tier.NextInfo  `json:"next,omitempty"`
		Countdown *tier.Countdown `json:"countdown,omitempty"`
		Dots      float64         `json:"dots"`
	}{
		stateJSON: v.State.wire(),
		Tier:      v.Tier,
		Dots:      v.Dots,
	}
	if v.HasNext {
		next := v.Next
		out.Next = &next
	}
	if v.HasCountdown {
		cd := v.Countdown
		out.Countdown = &cd
	}
	return json.Marshal(out)
}
