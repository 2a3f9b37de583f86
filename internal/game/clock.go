package game

import "time"

// TimerID identifies a scheduled action. The zero value is never issued.
type TimerID int

type deferred struct {
	id  TimerID
	due time.Duration
	fn  func()
}

// scheduler owns the session's logical clock and its one-shot deferred
// actions (respawn delay, invincibility window, round transition). Time only
// moves when the session advances, so pausing freezes every pending action,
// and cancelAll on reset guarantees no stale callback outlives the state it
// was scheduled against.
type scheduler struct {
	now    time.Duration
	nextID TimerID
	timers []deferred
}

func newScheduler() *scheduler {
	return &scheduler{}
}

func (s *scheduler) clock() time.Duration { return s.now }

// after schedules fn once, d from now.
func (s *scheduler) after(d time.Duration, fn func()) TimerID {
	s.nextID++
	s.timers = append(s.timers, deferred{id: s.nextID, due: s.now + d, fn: fn})
	return s.nextID
}

func (s *scheduler) cancel(id TimerID) {
	for i, t := range s.timers {
		if t.id == id {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}

func (s *scheduler) cancelAll() {
	s.timers = s.timers[:0]
}

// advance moves the clock and fires due actions in due order. Actions
// scheduled by a firing callback are honored within the same advance if
// they come due inside it.
func (s *scheduler) advance(dt time.Duration) {
	s.now += dt
	for {
		best := -1
		for i, t := range s.timers {
			if t.due > s.now {
				continue
			}
			if best == -1 || t.due < s.timers[best].due ||
				(t.due == s.timers[best].due && t.id < s.timers[best].id) {
				best = i
			}
		}
		if best == -1 {
			return
		}
		fn := s.timers[best].fn
		s.timers = append(s.timers[:best], s.timers[best+1:]...)
		fn()
	}
}
