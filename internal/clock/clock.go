package clock

import (
	"sync"
	"time"
)

// TimeSource supplies wall-clock readings. Injected so tests can drive
// the clock deterministically.
type TimeSource func() time.Time

// Clock maps wall-clock time to animation time with pause correction.
// Resuming shifts the recorded start forward by the paused duration, so
// Elapsed is continuous across a pause and never jumps.
type Clock struct {
	mu          sync.Mutex
	now         TimeSource
	start       time.Time
	paused      bool
	pauseStart  time.Time
	totalPaused time.Duration
}

// New creates a running clock starting at elapsed 0.
func New() *Clock {
	return NewWithSource(time.Now)
}

// NewWithSource creates a clock reading time from src.
func NewWithSource(src TimeSource) *Clock {
	return &Clock{now: src, start: src()}
}

// Elapsed returns animation seconds since start, excluding paused time.
// While paused it returns the frozen value at the pause instant.
func (c *Clock) Elapsed() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.paused {
		return (c.pauseStart.Sub(c.start) - c.totalPaused).Seconds()
	}
	return (c.now().Sub(c.start) - c.totalPaused).Seconds()
}

// Pause freezes animation time, recording the pause instant. Pausing an
// already paused clock is a no-op.
func (c *Clock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.paused {
		return
	}
	c.paused = true
	c.pauseStart = c.now()
}

// Resume continues animation time from where Pause froze it.
func (c *Clock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.paused {
		return
	}
	c.totalPaused += c.now().Sub(c.pauseStart)
	c.paused = false
	c.pauseStart = time.Time{}
}

// IsPaused reports the pause state.
func (c *Clock) IsPaused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// Reset rewinds elapsed time to 0 and clears pause accounting.
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.start = c.now()
	c.paused = false
	c.pauseStart = time.Time{}
	c.totalPaused = 0
}
