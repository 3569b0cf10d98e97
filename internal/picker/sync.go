package picker

import "time"

// DefaultSyncInterval is the default delay between automatic rebuilds.
// Ref-change notifications are not reliable everywhere, so the picker polls
// with bounded staleness instead of watching.
const DefaultSyncInterval = 10 * time.Minute

// Scheduler tracks the rebuild cycle: Idle -> Loading -> Idle. At most one
// rebuild is scheduled or running at a time. Timers are identified by a
// generation counter; starting a rebuild bumps the generation, which
// invalidates any timer still in flight.
type Scheduler struct {
	interval time.Duration
	loading  bool
	armed    bool
	gen      int
}

// NewScheduler returns an idle scheduler with the given rebuild interval.
func NewScheduler(interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}
	return &Scheduler{interval: interval}
}

// Interval returns the automatic rebuild interval.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Loading reports whether a rebuild is running.
func (s *Scheduler) Loading() bool {
	return s.loading
}

// Armed reports whether a timer generation is pending.
func (s *Scheduler) Armed() bool {
	return s.armed
}

// Start moves Idle -> Loading, cancelling any pending timer. Returns false
// when a rebuild is already running.
func (s *Scheduler) Start() bool {
	if s.loading {
		return false
	}
	s.loading = true
	s.armed = false
	s.gen++
	return true
}

// Finish moves Loading -> Idle. When rearm is true the next timer
// generation is armed and returned; the caller schedules a tick carrying
// that generation. Without rearm no timer is pending (the workspace has
// nothing to synchronize until an explicit refresh).
func (s *Scheduler) Finish(rearm bool) int {
	s.loading = false
	if !rearm {
		s.armed = false
		return -1
	}
	s.gen++
	s.armed = true
	return s.gen
}

// TimerValid reports whether a fired timer of the given generation is still
// the armed one. Stale generations (superseded by a refresh or a newer
// cycle) are ignored.
func (s *Scheduler) TimerValid(gen int) bool {
	return s.armed && !s.loading && gen == s.gen
}
