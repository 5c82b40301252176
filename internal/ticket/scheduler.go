package ticket

import (
	"context"
	"sort"
	"time"

	"github.com/jonboulle/clockwork"
)

// minPeriod guards periodic timers against a zero or negative period.
const minPeriod = time.Millisecond

// Scheduler arms periodic and one-shot timers for a Machine. The returned
// cancel func deregisters the timer; calling it twice is harmless.
type Scheduler interface {
	Every(d time.Duration, fire func()) (cancel func())
	After(d time.Duration, fire func()) (cancel func())
}

// LoopScheduler fires timers on its clock, but only from inside Run, so every
// callback executes on the goroutine that called Run.
type LoopScheduler struct {
	clock clockwork.Clock
	queue chan func()
	done  chan struct{}
}

// NewLoopScheduler creates a scheduler on the wall clock. Call Run to start
// dispatching.
func NewLoopScheduler() *LoopScheduler {
	return NewLoopSchedulerWithClock(clockwork.NewRealClock())
}

// NewLoopSchedulerWithClock creates a scheduler driven by clock.
func NewLoopSchedulerWithClock(clock clockwork.Clock) *LoopScheduler {
	return &LoopScheduler{
		clock: clock,
		queue: make(chan func(), 64),
		done:  make(chan struct{}),
	}
}

// Every posts fire to the loop every d until cancelled.
func (s *LoopScheduler) Every(d time.Duration, fire func()) func() {
	if d < minPeriod {
		d = minPeriod
	}
	stop := make(chan struct{})
	cancelled := false
	ticker := s.clock.NewTicker(d)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-s.done:
				return
			case <-ticker.Chan():
				s.post(func() {
					if !cancelled {
						fire()
					}
				}, stop)
			}
		}
	}()

	var once bool
	return func() {
		if once {
			return
		}
		once = true
		cancelled = true
		close(stop)
	}
}

// After posts fire to the loop once after d unless cancelled first.
func (s *LoopScheduler) After(d time.Duration, fire func()) func() {
	cancelled := false
	t := s.clock.AfterFunc(d, func() {
		s.post(func() {
			if !cancelled {
				fire()
			}
		}, nil)
	})
	return func() {
		cancelled = true
		t.Stop()
	}
}

func (s *LoopScheduler) post(fn func(), stop <-chan struct{}) {
	select {
	case s.queue <- fn:
	case <-stop:
	case <-s.done:
	}
}

// Run dispatches timer callbacks until ctx is done.
func (s *LoopScheduler) Run(ctx context.Context) error {
	defer close(s.done)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-s.queue:
			fn()
		}
	}
}

// ManualScheduler runs timers on a fake clock. Timers fire synchronously from
// Advance, in due-time order, on the caller's goroutine. Used by the headless
// simulator and by tests.
type ManualScheduler struct {
	clock  *clockwork.FakeClock
	start  time.Time
	seq    int
	timers []*manualTimer
}

// manualTimer is one armed clockwork timer or ticker. due mirrors its next
// expiration so Advance can step the clock one expiry at a time.
type manualTimer struct {
	due       time.Time
	period    time.Duration
	seq       int
	ch        <-chan time.Time
	stop      func()
	fire      func()
	cancelled bool
}

// NewManualScheduler returns a scheduler on a fresh fake clock.
func NewManualScheduler() *ManualScheduler {
	return NewManualSchedulerWithClock(clockwork.NewFakeClock())
}

// NewManualSchedulerWithClock returns a scheduler on clock. Only this
// scheduler should advance it.
func NewManualSchedulerWithClock(clock *clockwork.FakeClock) *ManualScheduler {
	return &ManualScheduler{clock: clock, start: clock.Now()}
}

// Clock returns the fake clock behind the scheduler.
func (s *ManualScheduler) Clock() clockwork.Clock {
	return s.clock
}

// Now returns the virtual time elapsed since creation.
func (s *ManualScheduler) Now() time.Duration {
	return s.clock.Since(s.start)
}

// Pending returns the number of armed timers.
func (s *ManualScheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Every arms a periodic timer.
func (s *ManualScheduler) Every(d time.Duration, fire func()) func() {
	if d < minPeriod {
		d = minPeriod
	}
	ticker := s.clock.NewTicker(d)
	return s.add(&manualTimer{
		due:    s.clock.Now().Add(d),
		period: d,
		ch:     ticker.Chan(),
		stop:   ticker.Stop,
		fire:   fire,
	})
}

// After arms a one-shot timer.
func (s *ManualScheduler) After(d time.Duration, fire func()) func() {
	if d < 0 {
		d = 0
	}
	timer := s.clock.NewTimer(d)
	return s.add(&manualTimer{
		due:  s.clock.Now().Add(d),
		ch:   timer.Chan(),
		stop: func() { timer.Stop() },
		fire: fire,
	})
}

func (s *ManualScheduler) add(t *manualTimer) func() {
	s.seq++
	t.seq = s.seq
	s.timers = append(s.timers, t)
	return func() {
		if !t.cancelled {
			t.cancelled = true
			t.stop()
		}
	}
}

// Advance moves the clock forward by d, firing every timer that comes due.
// Timers armed by a callback fire in the same call if they fall inside d.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.clock.Now().Add(d)
	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		s.clock.Advance(t.due.Sub(s.clock.Now()))
		<-t.ch

		if t.period > 0 {
			t.due = t.due.Add(t.period)
		} else {
			t.cancelled = true
		}
		t.fire()
		s.compact()
	}
	s.clock.Advance(target.Sub(s.clock.Now()))
}

func (s *ManualScheduler) nextDue(target time.Time) *manualTimer {
	live := make([]*manualTimer, 0, len(s.timers))
	for _, t := range s.timers {
		if !t.cancelled && !t.due.After(target) {
			live = append(live, t)
		}
	}
	if len(live) == 0 {
		return nil
	}
	sort.Slice(live, func(i, j int) bool {
		if !live[i].due.Equal(live[j].due) {
			return live[i].due.Before(live[j].due)
		}
		return live[i].seq < live[j].seq
	})
	return live[0]
}

func (s *ManualScheduler) compact() {
	kept := s.timers[:0]
	for _, t := range s.timers {
		if !t.cancelled {
			kept = append(kept, t)
		}
	}
	s.timers = kept
}
