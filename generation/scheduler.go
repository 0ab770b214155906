package generation

import (
	"sync"
	"time"
)

// Ticket is a handle to a scheduled callback.
type Ticket interface {
	// Cancel prevents the callback from running if it has not started yet.
	Cancel()
}

// Scheduler runs fn once after d.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Ticket
}

// TimerScheduler schedules on the runtime timer.
type TimerScheduler struct{}

type timerTicket struct {
	timer *time.Timer
}

func (t timerTicket) Cancel() {
	t.timer.Stop()
}

func (TimerScheduler) Schedule(d time.Duration, fn func()) Ticket {
	return timerTicket{timer: time.AfterFunc(d, fn)}
}

// ManualScheduler holds callbacks until they are fired explicitly, in any order.
type ManualScheduler struct {
	mu    sync.Mutex
	tasks []*manualTask
}

type manualTask struct {
	delay     time.Duration
	fn        func()
	cancelled bool
	fired     bool
}

func (t *manualTask) Cancel() {
	t.cancelled = true
}

// NewManualScheduler returns an empty ManualScheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) Schedule(d time.Duration, fn func()) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := &manualTask{delay: d, fn: fn}
	s.tasks = append(s.tasks, task)
	return &manualTicket{scheduler: s, task: task}
}

type manualTicket struct {
	scheduler *ManualScheduler
	task      *manualTask
}

func (t *manualTicket) Cancel() {
	t.scheduler.mu.Lock()
	defer t.scheduler.mu.Unlock()
	t.task.Cancel()
}

// Len is the number of callbacks ever scheduled.
func (s *ManualScheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Delay returns the delay requested for the i-th callback.
func (s *ManualScheduler) Delay(i int) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks[i].delay
}

// Fire runs the i-th callback, ignoring cancellation, as a timer that already
// fired before Cancel was called would. It runs at most once.
func (s *ManualScheduler) Fire(i int) {
	s.mu.Lock()
	task := s.tasks[i]
	if task.fired {
		s.mu.Unlock()
		return
	}
	task.fired = true
	s.mu.Unlock()

	task.fn()
}

// FireLive runs the i-th callback unless it was cancelled. It reports whether it ran.
func (s *ManualScheduler) FireLive(i int) bool {
	s.mu.Lock()
	cancelled := s.tasks[i].cancelled
	s.mu.Unlock()

	if cancelled {
		return false
	}
	s.Fire(i)
	return true
}

// FireAll runs every live callback in scheduling order.
func (s *ManualScheduler) FireAll() {
	for i := 0; i < s.Len(); i++ {
		s.FireLive(i)
	}
}
