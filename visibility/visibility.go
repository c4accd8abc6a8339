// Package visibility implements the auto-hide state machine of the control overlay.
package visibility

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// State of the overlay.
type State int

const (
	Visible State = iota
	Hidden
)

func (s State) String() string {
	if s == Hidden {
		return "hidden"
	}
	return "visible"
}

// Timer shows the overlay on activity and hides it after a quiet delay.
// At most one expiry is pending at any time.
type Timer struct {
	mu      sync.Mutex
	clock   clockwork.Clock
	delay   time.Duration
	onHide  func()
	state   State
	pending clockwork.Timer
	// generation invalidates expiries that fire after being superseded.
	generation uint64
	stopped    bool
}

// New returns a visible, armed timer. onHide, if set, runs after each
// automatic transition to Hidden, outside the timer's lock.
func New(clock clockwork.Clock, delay time.Duration, onHide func()) *Timer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	t := &Timer{clock: clock, delay: delay, onHide: onHide}

	t.mu.Lock()
	t.arm()
	t.mu.Unlock()

	return t
}

// arm must be called with mu held.
func (t *Timer) arm() {
	t.disarm()

	generation := t.generation
	t.pending = t.clock.AfterFunc(t.delay, func() { t.expire(generation) })
}

// disarm must be called with mu held.
func (t *Timer) disarm() {
	t.generation++
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
}

func (t *Timer) expire(generation uint64) {
	t.mu.Lock()
	if t.stopped || generation != t.generation {
		t.mu.Unlock()
		return
	}

	t.state = Hidden
	t.pending = nil
	onHide := t.onHide
	t.mu.Unlock()

	if onHide != nil {
		onHide()
	}
}

// Activity forces the overlay visible and restarts the countdown.
func (t *Timer) Activity() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return
	}

	t.state = Visible
	t.arm()
}

// Hide hides the overlay immediately and cancels the countdown.
func (t *Timer) Hide() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return
	}

	t.disarm()
	t.state = Hidden
}

// Stop cancels any pending expiry. The timer ignores all later calls.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.disarm()
	t.stopped = true
}

// State reports the current overlay state.
func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state
}

// Visible is shorthand for State() == Visible.
func (t *Timer) Visible() bool {
	return t.State() == Visible
}

// Pending reports whether an expiry is scheduled.
func (t *Timer) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.pending != nil
}
