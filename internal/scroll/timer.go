package scroll

import (
	"sync"
	"time"
)

// Throttler coalesces a burst of calls into at most one execution per
// interval. The executed function is always the most recent one passed
// to Call; intermediate calls are discarded, not queued. Stop cancels
// any pending execution; nothing fires after Stop.
type Throttler struct {
	mu       sync.Mutex
	interval time.Duration
	timer    *time.Timer
	latest   func()
	pending  bool
	stopped  bool
}

// NewThrottler creates a throttler with the given interval.
func NewThrottler(interval time.Duration) *Throttler {
	return &Throttler{interval: interval}
}

// Call schedules fn. If an execution is already pending, fn replaces
// the previously scheduled function and no extra execution is added.
func (t *Throttler) Call(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.latest = fn
	if !t.pending {
		t.pending = true
		t.timer = time.AfterFunc(t.interval, t.fire)
	}
}

func (t *Throttler) fire() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	fn := t.latest
	t.latest = nil
	t.pending = false
	t.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Stop cancels any pending execution. Idempotent.
func (t *Throttler) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	t.latest = nil
	if t.timer != nil {
		t.timer.Stop()
	}
}

// Debouncer delays execution until a quiet period follows the last
// call: every Call cancels the previously scheduled function outright
// and re-arms the timer, so only the final call in a burst executes.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	latest  func()
	stopped bool
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Call schedules fn after the quiet period, replacing any pending
// function.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.latest = fn
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	fn := d.latest
	d.latest = nil
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Stop cancels any pending execution. Idempotent.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.latest = nil
	if d.timer != nil {
		d.timer.Stop()
	}
}
