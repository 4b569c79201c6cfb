package suggest

import (
	"sync"
	"time"
)

// DefaultQuietPeriod is the debounce window between a keystroke and the
// suggestion refresh it triggers.
const DefaultQuietPeriod = 300 * time.Millisecond

// CancelFunc cancels a pending scheduled callback. Cancelling an already
// fired or superseded callback is a no-op.
type CancelFunc func()

// Debouncer coalesces bursts of calls per logical key into a single callback
// after a quiet period. Scheduling under a key cancels any pending callback
// for the same key and restarts the timer, so only the last call in a burst
// fires.
type Debouncer struct {
	quiet time.Duration

	mu      sync.Mutex
	pending map[string]*time.Timer
	stopped bool
}

// NewDebouncer builds a Debouncer. A non-positive quiet period falls back to
// DefaultQuietPeriod.
func NewDebouncer(quiet time.Duration) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &Debouncer{
		quiet:   quiet,
		pending: make(map[string]*time.Timer),
	}
}

// Schedule arranges for fn to run after the quiet period unless another
// Schedule with the same key supersedes it first. The returned CancelFunc
// drops the pending callback.
func (d *Debouncer) Schedule(key string, fn func()) CancelFunc {
	if d == nil || fn == nil {
		return func() {}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return func() {}
	}
	if prior, ok := d.pending[key]; ok {
		prior.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(d.quiet, func() {
		d.mu.Lock()
		if d.pending[key] == timer {
			delete(d.pending, key)
		}
		d.mu.Unlock()
		fn()
	})
	d.pending[key] = timer

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.pending[key] == timer {
			timer.Stop()
			delete(d.pending, key)
		}
	}
}

// Stop cancels every pending callback and rejects future scheduling.
func (d *Debouncer) Stop() {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	for key, timer := range d.pending {
		timer.Stop()
		delete(d.pending, key)
	}
}
