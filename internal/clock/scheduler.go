package clock

import (
	"sync"
	"sync/atomic"
	"time"
)

// FrameFunc is invoked once per scheduled frame with the clock's
// current elapsed animation time.
type FrameFunc func(elapsed float64)

// Scheduler drives a single render task on a fixed refresh interval.
// Pausing stops scheduling entirely (not merely skipping drawing);
// Stop cancels the pending callback and is idempotent.
type Scheduler struct {
	clock    *Clock
	interval time.Duration
	frame    FrameFunc

	pauseCh  chan bool
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
	frames   atomic.Uint64
}

// NewScheduler wires a frame callback to a clock at the given refresh
// interval. A non-positive interval defaults to ~60 Hz.
func NewScheduler(c *Clock, interval time.Duration, frame FrameFunc) *Scheduler {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &Scheduler{
		clock:    c,
		interval: interval,
		frame:    frame,
		pauseCh:  make(chan bool, 1),
		stopCh:   make(chan struct{}),
	}
}

// Start launches the scheduling loop. Calling Start twice is an error
// kept harmless: the second call is ignored.
func (s *Scheduler) Start() {
	if !s.running.CompareAndSwap(false, true) {
		return
	}
	s.wg.Add(1)
	go s.loop()
}

func (s *Scheduler) loop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	paused := false

	for {
		select {
		case <-s.stopCh:
			return
		case p := <-s.pauseCh:
			if p == paused {
				continue
			}
			paused = p
			if paused {
				// No ticks while paused: the render task is
				// unscheduled, not skipped.
				ticker.Stop()
			} else {
				ticker.Reset(s.interval)
			}
		case <-ticker.C:
			if paused {
				continue
			}
			// Elapsed comes from the clock, never from tick
			// count, so a slow frame cannot desynchronize
			// animation speed.
			s.frame(s.clock.Elapsed())
			s.frames.Add(1)
		}
	}
}

// Pause suspends scheduling and freezes the clock.
func (s *Scheduler) Pause() {
	s.clock.Pause()
	s.signalPause(true)
}

// Resume restarts scheduling with continuous elapsed time.
func (s *Scheduler) Resume() {
	s.clock.Resume()
	s.signalPause(false)
}

func (s *Scheduler) signalPause(p bool) {
	select {
	case s.pauseCh <- p:
	case <-s.stopCh:
	}
}

// Stop cancels the pending callback and waits for the loop to exit.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
	s.wg.Wait()
	s.running.Store(false)
}

// Frames returns the number of frame callbacks delivered so far.
func (s *Scheduler) Frames() uint64 {
	return s.frames.Load()
}
