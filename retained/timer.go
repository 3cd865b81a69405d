package retained

import (
	"slices"
	"sync"
	"time"
)

// Clock supplies the time timers are measured against.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to. Headless drivers and tests use it to
// step timers deterministically.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock starts a clock at t.
func NewManualClock(t time.Time) *ManualClock {
	return &ManualClock{now: t}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Timer fires a callback from Window.Update once its interval elapses.
type Timer struct {
	window   *Window
	interval time.Duration
	repeat   bool
	fn       func()
	deadline time.Time
	running  bool
}

// CreateTimer creates a stopped timer owned by the window.
func (w *Window) CreateTimer(interval time.Duration, repeat bool, fn func()) *Timer {
	return &Timer{window: w, interval: interval, repeat: repeat, fn: fn}
}

func (t *Timer) Interval() time.Duration { return t.interval }
func (t *Timer) IsRunning() bool         { return t.running }

// SetInterval applies from the next Start or, for a repeating timer, from
// the re-arm that follows the current firing.
func (t *Timer) SetInterval(d time.Duration) {
	t.interval = d
}

// Start arms the timer. Starting a running timer restarts its countdown.
func (t *Timer) Start() {
	t.deadline = t.window.clock.Now().Add(t.interval)
	if !t.running {
		t.running = true
		t.window.timers = append(t.window.timers, t)
	}
}

// Stop disarms the timer.
func (t *Timer) Stop() {
	if !t.running {
		return
	}
	t.running = false
	t.window.timers = slices.DeleteFunc(t.window.timers, func(o *Timer) bool { return o == t })
}

// updateTimers fires every due timer. One-shot timers are removed before
// their callback runs so the callback can start them again. Repeating timers
// are re-armed after it with the interval current at that point, unless the
// callback stopped or restarted them.
func (w *Window) updateTimers() {
	if len(w.timers) == 0 {
		return
	}
	now := w.clock.Now()
	due := make([]*Timer, 0, len(w.timers))
	for _, t := range w.timers {
		if !now.Before(t.deadline) {
			due = append(due, t)
		}
	}
	for _, t := range due {
		if !t.running {
			continue
		}
		if !t.repeat {
			t.Stop()
		}
		deadline := t.deadline
		if t.fn != nil {
			t.fn()
		}
		if t.repeat && t.running && t.deadline.Equal(deadline) {
			t.deadline = now.Add(t.interval)
		}
	}
}
