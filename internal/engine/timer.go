package engine

import "time"

// Timer counts down a duration across frames.
type Timer struct {
	duration     time.Duration
	elapsed      time.Duration
	repeating    bool
	finished     bool
	justFinished bool
}

// NewTimer creates a timer for d. A repeating timer restarts after it
// finishes; a one-shot timer stays finished.
func NewTimer(d time.Duration, repeating bool) Timer {
	return Timer{duration: d, repeating: repeating}
}

// TimerFromSeconds creates a timer from a duration in seconds.
func TimerFromSeconds(secs float64, repeating bool) Timer {
	return NewTimer(time.Duration(secs*float64(time.Second)), repeating)
}

// Tick advances the timer by delta and returns it for chaining.
func (t *Timer) Tick(delta time.Duration) *Timer {
	t.justFinished = false
	if t.finished && !t.repeating {
		return t
	}

	t.elapsed += delta
	if t.elapsed < t.duration {
		return t
	}

	t.justFinished = true
	if t.repeating {
		if t.duration > 0 {
			t.elapsed %= t.duration
		} else {
			t.elapsed = 0
		}
		return t
	}
	t.finished = true
	t.elapsed = t.duration
	return t
}

// JustFinished reports whether the most recent Tick completed the timer.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Finished reports whether a one-shot timer has run out.
// Repeating timers report the same as JustFinished.
func (t *Timer) Finished() bool {
	if t.repeating {
		return t.justFinished
	}
	return t.finished
}

// Duration returns the configured duration.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Remaining returns the time left before the timer finishes.
func (t *Timer) Remaining() time.Duration {
	return max(t.duration-t.elapsed, 0)
}
