// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package anim

import (
	"container/heap"
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
)

var (
	// ErrSchedulerClosed is returned when a timer is requested after Close.
	ErrSchedulerClosed = errors.New("anim: scheduler closed")
	// ErrSchedulerRunning is returned by a second concurrent call to Run.
	ErrSchedulerRunning = errors.New("anim: scheduler already running")
)

// minDelay keeps a zero or negative delay from being due in the same pass
// that scheduled it.
const minDelay = time.Millisecond

// =============================================================================
// SCHEDULER
// =============================================================================

// Scheduler runs timed callbacks from a min-heap of deadlines on a single
// goroutine. Callbacks never overlap; a callback that panics is logged and
// the loop carries on with the next deadline.
type Scheduler struct {
	clock  clockwork.Clock
	logger *slog.Logger
	redraw func()

	mu     sync.Mutex
	queue  timerQueue
	seq    uint64
	closed bool

	wake    chan struct{}
	done    chan struct{}
	running atomic.Bool
	fired   atomic.Uint64
	panics  atomic.Uint64
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithClock replaces the wall clock, typically with clockwork.NewFakeClock.
func WithClock(c clockwork.Clock) SchedulerOption {
	return func(s *Scheduler) { s.clock = c }
}

// WithSchedulerLogger sets the logger for recovered callback panics.
func WithSchedulerLogger(l *slog.Logger) SchedulerOption {
	return func(s *Scheduler) { s.logger = l }
}

// WithDefaultRedraw sets the redraw hook inherited by every animation
// created on this scheduler that does not supply its own.
func WithDefaultRedraw(fn func()) SchedulerOption {
	return func(s *Scheduler) { s.redraw = fn }
}

// NewScheduler creates an idle scheduler. Call Run to start firing timers.
func NewScheduler(opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		clock:  clockwork.NewRealClock(),
		logger: slog.Default(),
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Clock returns the scheduler's time source.
func (s *Scheduler) Clock() clockwork.Clock { return s.clock }

// Logger returns the scheduler's logger.
func (s *Scheduler) Logger() *slog.Logger { return s.logger }

// Redraw returns the default redraw hook, which may be nil.
func (s *Scheduler) Redraw() func() { return s.redraw }

// =============================================================================
// TIMERS
// =============================================================================

// Timer is a pending one-shot callback. A Timer is either queued, fired or
// canceled; it never fires twice.
type Timer struct {
	s     *Scheduler
	when  time.Time
	seq   uint64
	fn    func()
	index int // position in the heap, -1 once removed
}

// Cancel removes the timer if it has not fired yet and reports whether it
// did so. Canceling a fired or canceled timer is a no-op.
func (t *Timer) Cancel() bool {
	if t == nil || t.s == nil {
		return false
	}
	s := t.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.index < 0 {
		return false
	}
	heap.Remove(&s.queue, t.index)
	return true
}

// When returns the deadline the timer was scheduled for.
func (t *Timer) When() time.Time { return t.when }

// AfterFunc schedules fn to run once on the scheduler goroutine after d.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) (*Timer, error) {
	if d < minDelay {
		d = minDelay
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrSchedulerClosed
	}
	s.seq++
	t := &Timer{s: s, when: s.clock.Now().Add(d), seq: s.seq, fn: fn}
	heap.Push(&s.queue, t)
	head := s.queue[0] == t
	s.mu.Unlock()

	if head {
		s.poke()
	}
	return t, nil
}

// Len returns the number of queued timers.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Fired returns how many callbacks have run, including ones that panicked.
func (s *Scheduler) Fired() uint64 { return s.fired.Load() }

// Panics returns how many callbacks panicked.
func (s *Scheduler) Panics() uint64 { return s.panics.Load() }

func (s *Scheduler) poke() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// =============================================================================
// LOOP
// =============================================================================

// Run fires timers until ctx is canceled or Close is called. Only one Run
// may be active at a time.
func (s *Scheduler) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrSchedulerRunning
	}
	defer s.running.Store(false)

	for {
		wait, ok := s.nextWait()
		if ok && wait <= 0 {
			s.RunDue()
			continue
		}

		var timer clockwork.Timer
		var expired <-chan time.Time
		if ok {
			timer = s.clock.NewTimer(wait)
			expired = timer.Chan()
		}

		select {
		case <-ctx.Done():
			stopTimer(timer)
			return ctx.Err()
		case <-s.done:
			stopTimer(timer)
			return nil
		case <-s.wake:
		case <-expired:
		}
		stopTimer(timer)
		s.RunDue()
	}
}

func stopTimer(t clockwork.Timer) {
	if t != nil {
		t.Stop()
	}
}

// nextWait reports the delay until the earliest deadline.
func (s *Scheduler) nextWait() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return 0, false
	}
	return s.queue[0].when.Sub(s.clock.Now()), true
}

// RunDue runs every timer whose deadline is not after the current time on
// the calling goroutine and returns how many ran. Hosts that own their event
// loop, and tests on a fake clock, call it instead of Run; it must not be
// called while Run is active. Timers scheduled by those callbacks are due no
// earlier than now+minDelay, so a single pass always terminates.
func (s *Scheduler) RunDue() int {
	now := s.clock.Now()
	n := 0
	for {
		s.mu.Lock()
		if len(s.queue) == 0 || s.queue[0].when.After(now) {
			s.mu.Unlock()
			return n
		}
		t := heap.Pop(&s.queue).(*Timer)
		s.mu.Unlock()

		s.invoke(t)
		n++
	}
}

func (s *Scheduler) invoke(t *Timer) {
	s.fired.Add(1)
	defer func() {
		if r := recover(); r != nil {
			s.panics.Add(1)
			s.logger.Error("animation callback panicked", "panic", r, "deadline", t.when)
		}
	}()
	t.fn()
}

// Close stops Run, drops every queued timer and refuses new ones.
// Close is idempotent.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for _, t := range s.queue {
		t.index = -1
	}
	s.queue = nil
	close(s.done)
}

// =============================================================================
// HEAP
// =============================================================================

type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].when.Equal(q[j].when) {
		return q[i].seq < q[j].seq
	}
	return q[i].when.Before(q[j].when)
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*Timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
