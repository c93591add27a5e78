package debounce

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of triggers into a single invocation. Each
// Trigger cancels any pending invocation and schedules a new one; the target
// runs only after the quiet window elapses without further triggers. The last
// function passed to Trigger wins.
type Debouncer struct {
	window time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func New(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

// Trigger schedules fn to run after the quiet window, replacing any pending
// invocation.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, fn)
}

// Flush runs any pending invocation immediately.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	t := d.timer
	d.timer = nil
	d.mu.Unlock()

	if t != nil && t.Stop() {
		// Stop returned true: the callback has not fired, reschedule now
		t.Reset(0)
	}
}

// Stop cancels any pending invocation.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
