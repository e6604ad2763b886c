package reveal

import (
	"sort"
	"time"
)

// Effect is a deferred action run by the frame loop.
type Effect func()

// scheduled is a descriptor: due time plus action.
type scheduled struct {
	due    time.Duration
	seq    uint64
	action Effect
}

// Scheduler holds fire-and-forget effects keyed by due time on the session
// clock. There is no cancellation; effects still pending when the session
// ends are dropped with it.
type Scheduler struct {
	pending []scheduled
	seq     uint64
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After registers action to run once the clock reaches now+delay.
func (s *Scheduler) After(now, delay time.Duration, action Effect) {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	s.pending = append(s.pending, scheduled{due: now + delay, seq: s.seq, action: action})
}

// Run executes every effect due at or before now, ordered by due time and
// then by registration order. Effects scheduled by a running effect are
// picked up in the same call if they are already due.
// Returns the number of effects executed.
func (s *Scheduler) Run(now time.Duration) int {
	ran := 0
	for {
		due := s.takeDue(now)
		if len(due) == 0 {
			return ran
		}
		for _, e := range due {
			e.action()
			ran++
		}
	}
}

// Pending returns the number of effects not yet run.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// takeDue removes and returns the due effects in execution order.
func (s *Scheduler) takeDue(now time.Duration) []scheduled {
	var due []scheduled
	kept := s.pending[:0]
	for _, e := range s.pending {
		if e.due <= now {
			due = append(due, e)
		} else {
			kept = append(kept, e)
		}
	}
	clear(s.pending[len(kept):])
	s.pending = kept

	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	return due
}
