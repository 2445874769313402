// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package micro

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/jeranaias/textshell/internal/anim"
	"github.com/jeranaias/textshell/internal/config"
)

// widget is a target with every animated property and an explicit ID.
type widget struct {
	id string

	// broken names a property whose writes panic.
	broken string

	mu         sync.Mutex
	values     map[string]float64
	history    map[string][]float64
	animating  []bool
	transition []string
}

func newWidget(id string) *widget {
	return &widget{
		id:      id,
		values:  make(map[string]float64),
		history: make(map[string][]float64),
	}
}

func (w *widget) AnimationID() string { return w.id }

func (w *widget) SetProperty(name string, v float64) bool {
	if name == w.broken {
		panic("write to " + name)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.values[name] = v
	w.history[name] = append(w.history[name], v)
	return true
}

func (w *widget) SetAnimating(on bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.animating = append(w.animating, on)
}

func (w *widget) SetTransition(from, to int, active bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	state := "end"
	if active {
		state = "start"
	}
	w.transition = append(w.transition, state)
}

func (w *widget) get(name string) float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.values[name]
}

func (w *widget) writes(name string) []float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]float64(nil), w.history[name]...)
}

func (w *widget) flags() []bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]bool(nil), w.animating...)
}

func (w *widget) transitions() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.transition...)
}

type advancer interface {
	Advance(d time.Duration)
}

type harness struct {
	sched *anim.Scheduler
	clock advancer
	mgr   *anim.Manager
	a     *Animator
}

func newHarness(t *testing.T, mutate ...func(*config.AnimationConfig)) *harness {
	t.Helper()
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	fc := clockwork.NewFakeClock()
	s := anim.NewScheduler(anim.WithClock(fc), anim.WithSchedulerLogger(quiet))
	t.Cleanup(s.Close)

	cfg := config.Default().Animations
	for _, m := range mutate {
		m(&cfg)
	}
	mgr := anim.NewManager(anim.WithManagerLogger(quiet))
	return &harness{sched: s, clock: fc, mgr: mgr, a: New(s, mgr, cfg, WithLogger(quiet))}
}

// run advances the fake clock in 5ms steps for d, firing due frames.
func (h *harness) run(d time.Duration) {
	const step = 5 * time.Millisecond
	for elapsed := time.Duration(0); elapsed < d; elapsed += step {
		h.clock.Advance(step)
		h.sched.RunDue()
	}
}
