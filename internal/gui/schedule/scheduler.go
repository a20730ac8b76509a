// Package schedule runs deferred callbacks back on the Fyne UI thread.
package schedule

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// Scheduler defers one-shot callbacks onto the UI thread.
type Scheduler interface {
	AfterFunc(delay time.Duration, fn func())
}

// UIScheduler fires callbacks through fyne.Do so they never race widget updates.
type UIScheduler struct {
	mu      sync.Mutex
	pending map[*time.Timer]struct{}
	stopped bool
	run     func(func())
}

func NewUIScheduler() *UIScheduler {
	return &UIScheduler{
		pending: make(map[*time.Timer]struct{}),
		run:     fyne.Do,
	}
}

func (s *UIScheduler) AfterFunc(delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		_, live := s.pending[timer]
		delete(s.pending, timer)
		s.mu.Unlock()

		if live {
			s.run(fn)
		}
	})
	s.pending[timer] = struct{}{}
}

// Pending reports how many callbacks have not fired yet.
func (s *UIScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Shutdown drops every pending callback and refuses new ones.
func (s *UIScheduler) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for timer := range s.pending {
		timer.Stop()
		delete(s.pending, timer)
	}
}

// Manual is a Scheduler that only fires when told to. Used by tests.
type Manual struct {
	queue []Task
}

type Task struct {
	Delay time.Duration
	Fn    func()
}

func (m *Manual) AfterFunc(delay time.Duration, fn func()) {
	m.queue = append(m.queue, Task{Delay: delay, Fn: fn})
}

func (m *Manual) Pending() int { return len(m.queue) }

// RunAll fires queued callbacks in order, including ones queued while running.
func (m *Manual) RunAll() {
	for len(m.queue) > 0 {
		task := m.queue[0]
		m.queue = m.queue[1:]
		task.Fn()
	}
}
