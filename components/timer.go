package components

import "time"

// timerEpsilon absorbs float drift from summing fixed steps.
const timerEpsilon = 1e-9

// Timer counts simulation seconds up to Duration.
type Timer struct {
	Duration  float64
	Elapsed   float64
	Repeating bool

	fired bool
}

func NewTimer(d time.Duration, repeating bool) Timer {
	return Timer{Duration: d.Seconds(), Repeating: repeating}
}

// Tick advances the timer by dt seconds and reports whether it completed on
// this tick. A non-positive duration completes on the first tick. Repeating
// timers carry the overshoot into the next cycle; one-shot timers report
// completion once.
func (t *Timer) Tick(dt float64) bool {
	if t.fired && !t.Repeating {
		return false
	}
	t.Elapsed += dt
	if t.Elapsed+timerEpsilon < t.Duration {
		return false
	}
	if !t.Repeating {
		t.fired = true
		t.Elapsed = t.Duration
		return true
	}
	if t.Duration > 0 {
		t.Elapsed -= t.Duration
		if t.Elapsed < 0 {
			t.Elapsed = 0
		}
	} else {
		t.Elapsed = 0
	}
	return true
}

// Finished reports whether a one-shot timer has run out.
func (t *Timer) Finished() bool {
	return t.fired
}

// Fraction is the completed share of the current cycle in [0, 1].
func (t *Timer) Fraction() float64 {
	if t.Duration <= 0 {
		return 1
	}
	f := t.Elapsed / t.Duration
	if f > 1 {
		return 1
	}
	return f
}

// Remaining is the time left in the current cycle, in seconds.
func (t *Timer) Remaining() float64 {
	r := t.Duration - t.Elapsed
	if r < 0 {
		return 0
	}
	return r
}

// Reset re-arms the timer with a new duration.
func (t *Timer) Reset(d time.Duration) {
	t.Duration = d.Seconds()
	t.Elapsed = 0
	t.fired = false
}
