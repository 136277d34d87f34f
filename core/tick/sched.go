// Package tick paces frame callbacks for hosts that have no display refresh
// signal of their own (headless runs, tests).
package tick

import (
	"time"
)

const DefaultTPS = 60

// Scheduler fires OnTick once per elapsed interval. It is polled: callers
// invoke Tick as often as they like and the scheduler decides whether a frame
// is due. Missed intervals are reported as a larger frame count rather than
// replayed one by one.
type Scheduler struct {
	TPS     int
	now     func() time.Time
	last    time.Time
	running bool
	frames  uint64
	OnTick  func(frames float64)
}

func NewScheduler(tps int) *Scheduler {
	if tps <= 0 {
		tps = DefaultTPS
	}
	return &Scheduler{TPS: tps, now: time.Now}
}

// Interval is the wall-clock length of one frame.
func (s *Scheduler) Interval() time.Duration {
	if s.TPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(s.TPS)
}

// Start arms the scheduler and fires the first frame immediately.
func (s *Scheduler) Start() {
	s.running = true
	s.last = s.now()
	s.fire(1)
}

func (s *Scheduler) Stop() { s.running = false }

func (s *Scheduler) Running() bool { return s.running }

// Frames counts display frames elapsed since creation, including the
// frames a single catch-up callback covers.
func (s *Scheduler) Frames() uint64 { return s.frames }

// Tick fires OnTick when at least one interval has passed since the last
// frame and reports whether it did.
func (s *Scheduler) Tick() bool {
	if !s.running {
		return false
	}
	iv := s.Interval()
	if iv <= 0 {
		return false
	}
	now := s.now()
	elapsed := now.Sub(s.last)
	if elapsed < iv {
		return false
	}
	n := elapsed / iv
	s.last = s.last.Add(n * iv)
	s.fire(float64(n))
	return true
}

func (s *Scheduler) fire(frames float64) {
	s.frames += uint64(frames)
	if s.OnTick != nil {
		s.OnTick(frames)
	}
}
