package game

import (
	"sort"
	"time"
)

// action is a deferred callback tagged with the epoch it was scheduled in.
type action struct {
	at    time.Time
	epoch uint64
	name  string
	fn    func(now time.Time)
}

// scheduler runs deferred actions against frame timestamps.
// Cancelling bumps the epoch, so an action scheduled before a cancel
// can never fire, even if it is already due in the current run.
type scheduler struct {
	epoch   uint64
	pending []action
}

// after schedules fn to run at the first step at or past now+d.
func (s *scheduler) after(now time.Time, d time.Duration, name string, fn func(now time.Time)) {
	s.pending = append(s.pending, action{
		at:    now.Add(d),
		epoch: s.epoch,
		name:  name,
		fn:    fn,
	})
}

// cancelAll drops every pending action.
func (s *scheduler) cancelAll() {
	s.epoch++
	s.pending = nil
}

// run fires all due actions in time order. Each action fires at most once.
func (s *scheduler) run(now time.Time) {
	if len(s.pending) == 0 {
		return
	}

	var due []action
	kept := s.pending[:0]
	for _, a := range s.pending {
		if now.Before(a.at) {
			kept = append(kept, a)
		} else {
			due = append(due, a)
		}
	}
	s.pending = kept

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].at.Before(due[j].at)
	})

	for _, a := range due {
		if a.epoch != s.epoch {
			continue // cancelled by an earlier action in this run
		}
		a.fn(now)
	}
}

// count returns the number of pending actions.
func (s *scheduler) count() int {
	return len(s.pending)
}
