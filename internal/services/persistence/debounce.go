package persistence

import (
	"sync"
	"time"

	"github.com/graretg02/Superbowl-app2/internal/dependencies/clock"
)

// Debouncer runs a call once no new trigger has arrived for the delay.
// Each Trigger cancels the pending call and schedules a fresh one.
type Debouncer struct {
	clock clock.Clock
	delay time.Duration

	mu    sync.Mutex
	timer clock.Timer
	fn    func()
	gen   uint64
}

// NewDebouncer creates a Debouncer that waits delay after the last trigger
func NewDebouncer(clk clock.Clock, delay time.Duration) *Debouncer {
	return &Debouncer{
		clock: clk,
		delay: delay,
	}
}

// Trigger schedules fn, replacing any call still waiting
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.fn = fn
	d.timer = d.clock.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Pending reports whether a call is waiting to run
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fn != nil
}

// Flush runs the waiting call now, if there is one
func (d *Debouncer) Flush() {
	if fn := d.take(0, false); fn != nil {
		fn()
	}
}

// Stop cancels the waiting call without running it
func (d *Debouncer) Stop() {
	_ = d.take(0, false)
}

func (d *Debouncer) fire(gen uint64) {
	if fn := d.take(gen, true); fn != nil {
		fn()
	}
}

// take claims the waiting call. When checkGen is set it only succeeds for
// the generation that scheduled it, so a superseded timer that fired late
// does nothing.
func (d *Debouncer) take(gen uint64, checkGen bool) func() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if checkGen && gen != d.gen {
		return nil
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	fn := d.fn
	d.fn = nil
	return fn
}
