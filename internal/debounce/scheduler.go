package debounce

import (
	"sync"
	"time"
)

// Scheduler runs delayed actions keyed by logical input. Scheduling a key
// that is already pending cancels the earlier action.
type Scheduler struct {
	mu      sync.Mutex
	pending map[string]*entry
	gen     uint64
	closed  bool
}

type entry struct {
	timer *time.Timer
	gen   uint64
}

func New() *Scheduler {
	return &Scheduler{pending: make(map[string]*entry)}
}

func (s *Scheduler) Schedule(key string, delay time.Duration, action func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if prev, ok := s.pending[key]; ok {
		prev.timer.Stop()
	}

	s.gen++
	e := &entry{gen: s.gen}
	e.timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		cur, ok := s.pending[key]
		if !ok || cur.gen != e.gen {
			s.mu.Unlock()
			return
		}
		delete(s.pending, key)
		s.mu.Unlock()

		action()
	})
	s.pending[key] = e
}

func (s *Scheduler) Cancel(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.pending[key]; ok {
		e.timer.Stop()
		delete(s.pending, key)
	}
}

func (s *Scheduler) Pending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.pending[key]
	return ok
}

// Close cancels everything pending and rejects later schedules.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, e := range s.pending {
		e.timer.Stop()
		delete(s.pending, key)
	}
	s.closed = true
}
