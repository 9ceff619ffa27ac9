package engine

import (
	"sort"
	"time"
)

// manualScheduler fires callbacks only when Advance moves its clock.
type manualScheduler struct {
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &manualTimer{at: s.now + d, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *manualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		due := s.due(target)
		if due == nil {
			break
		}
		s.now = due.at
		due.fired = true
		due.f()
	}
	s.now = target
}

func (s *manualScheduler) due(target time.Duration) *manualTimer {
	live := make([]*manualTimer, 0, len(s.timers))
	for _, t := range s.timers {
		if !t.stopped && !t.fired && t.at <= target {
			live = append(live, t)
		}
	}
	if len(live) == 0 {
		return nil
	}
	sort.SliceStable(live, func(i, j int) bool { return live[i].at < live[j].at })
	return live[0]
}

func (s *manualScheduler) pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}
