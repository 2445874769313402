// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package anim

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// recorder is a Target that keeps every value written to it.
type recorder struct {
	mu      sync.Mutex
	known   map[string]bool
	values  map[string]float64
	history map[string][]float64
}

func newRecorder(props ...string) *recorder {
	r := &recorder{
		known:   make(map[string]bool),
		values:  make(map[string]float64),
		history: make(map[string][]float64),
	}
	for _, p := range props {
		r.known[p] = true
	}
	return r
}

func (r *recorder) SetProperty(name string, v float64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.known[name] {
		return false
	}
	r.values[name] = v
	r.history[name] = append(r.history[name], v)
	return true
}

func (r *recorder) get(name string) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.values[name]
}

func (r *recorder) writes(name string) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]float64(nil), r.history[name]...)
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = make(map[string][]float64)
}

type advancer interface {
	Advance(d time.Duration)
}

// newTestScheduler returns a scheduler on a fake clock. Tests drive it with
// tick instead of Run so every frame is deterministic.
func newTestScheduler(opts ...SchedulerOption) (*Scheduler, advancer) {
	fc := clockwork.NewFakeClock()
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	opts = append([]SchedulerOption{WithClock(fc), WithSchedulerLogger(quiet)}, opts...)
	return NewScheduler(opts...), fc
}

// tick advances the fake clock by d and fires everything that became due.
func tick(s *Scheduler, fc advancer, d time.Duration) int {
	fc.Advance(d)
	return s.RunDue()
}

// runFrames ticks n times at interval d.
func runFrames(s *Scheduler, fc advancer, d time.Duration, n int) {
	for i := 0; i < n; i++ {
		tick(s, fc, d)
	}
}
