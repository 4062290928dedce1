package clock

import "time"

// Clock is injected wherever elapsed time is measured so tests can pin it.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

func (c *RealClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// MockClock only moves when told to; every Now() call can optionally advance it by step.
type MockClock struct {
	currentTime time.Time
	step        time.Duration
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	now := c.currentTime
	c.currentTime = c.currentTime.Add(c.step)
	return now
}

func (c *MockClock) Since(t time.Time) time.Duration {
	return c.currentTime.Sub(t)
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}

// WithStep makes each Now() call advance the clock by d.
func (c *MockClock) WithStep(d time.Duration) *MockClock {
	c.step = d
	return c
}
