package mocks

import (
	"sort"
	"sync"
	"time"

	"github.com/graretg02/Superbowl-app2/internal/dependencies/clock"
)

// MockClock is a mock implementation of Clock for testing.
// Scheduled calls only fire when the clock is moved past their deadline.
type MockClock struct {
	mu          sync.Mutex
	CurrentTime time.Time
	timers      []*MockTimer
}

// Ensure MockClock implements Clock
var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// Now returns the mocked current time
func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.CurrentTime
}

// AfterFunc registers f to run once the clock reaches Now()+d
func (c *MockClock) AfterFunc(d time.Duration, f func()) clock.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &MockTimer{clock: c, deadline: c.CurrentTime.Add(d), fn: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by the given duration, firing due timers in deadline order
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.CurrentTime.Add(d)
	c.mu.Unlock()
	c.Set(target)
}

// Set sets the clock to the given time, firing due timers in deadline order
func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	c.CurrentTime = t

	var due, pending []*MockTimer
	for _, timer := range c.timers {
		if !timer.deadline.After(t) {
			due = append(due, timer)
		} else {
			pending = append(pending, timer)
		}
	}
	c.timers = pending
	c.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].deadline.Before(due[j].deadline)
	})
	for _, timer := range due {
		timer.fn()
	}
}

// PendingTimers returns the number of scheduled calls that have not fired or been stopped
func (c *MockClock) PendingTimers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// MockTimer is a call scheduled on a MockClock
type MockTimer struct {
	clock    *MockClock
	deadline time.Time
	fn       func()
}

// Stop removes the timer from the clock's schedule
func (t *MockTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	for i, timer := range t.clock.timers {
		if timer == t {
			t.clock.timers = append(t.clock.timers[:i], t.clock.timers[i+1:]...)
			return true
		}
	}
	return false
}
