// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package anim

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Defaults for a new Animation.
const (
	DefaultMaxSteps = 10
	DefaultDuration = 300 * time.Millisecond
)

// Player is the start/stop surface shared by primitives and composites.
type Player interface {
	Start() error
	Stop()
	Animating() bool
}

// Frame is a snapshot of an animation step handed to a Driver.
type Frame struct {
	Step     int
	MaxSteps int
	Easing   Easing
}

// Progress returns min(1, Step/MaxSteps).
func (f Frame) Progress() float64 {
	if f.MaxSteps <= 0 || f.Step >= f.MaxSteps {
		return 1
	}
	return float64(f.Step) / float64(f.MaxSteps)
}

// Eased returns Progress shaped by the frame's easing.
func (f Frame) Eased() float64 {
	return Ease(f.Easing, f.Progress())
}

// EasedWith returns Progress shaped by kind.
func (f Frame) EasedWith(kind Easing) float64 {
	return Ease(kind, f.Progress())
}

// Driver decides what an Animation writes. Frame runs for every step before
// the last and Complete runs once on the last; both return the value they
// wrote so OnUpdate callbacks can observe it. Drivers run with the
// animation's lock held and must not call back into the same Animation.
type Driver interface {
	Frame(f Frame) float64
	Complete(f Frame) float64
}

// =============================================================================
// ANIMATION
// =============================================================================

// Animation is a timed state machine that advances a Driver through
// MaxSteps frames spread evenly over Duration.
type Animation struct {
	sched  *Scheduler
	driver Driver
	name   string
	logger *slog.Logger

	mu        sync.Mutex
	animating bool
	startTime time.Time
	step      int
	maxSteps  int
	duration  time.Duration
	easing    Easing
	repeat    bool
	timer     *Timer
	gen       uint64
	cycleDone func()

	// cycleAbort ends the run when a frame fails instead of completing.
	cycleAbort func()

	onUpdate   func(v float64)
	onComplete []func()
	redraw     func()
}

// Option configures an Animation.
type Option func(*Animation)

// WithDuration sets the total run time.
func WithDuration(d time.Duration) Option {
	return func(a *Animation) {
		if d > 0 {
			a.duration = d
		}
	}
}

// WithMaxSteps sets the number of discrete frames.
func WithMaxSteps(n int) Option {
	return func(a *Animation) {
		if n > 0 {
			a.maxSteps = n
		}
	}
}

// WithEasing sets the curve used by interpolating drivers.
func WithEasing(e Easing) Option {
	return func(a *Animation) { a.easing = e }
}

// WithOnUpdate registers a callback receiving every written value.
func WithOnUpdate(fn func(v float64)) Option {
	return func(a *Animation) { a.onUpdate = fn }
}

// WithOnComplete registers a callback run after the final frame.
func WithOnComplete(fn func()) Option {
	return func(a *Animation) {
		if fn != nil {
			a.onComplete = append(a.onComplete, fn)
		}
	}
}

// WithRedraw overrides the scheduler's default redraw hook.
func WithRedraw(fn func()) Option {
	return func(a *Animation) { a.redraw = fn }
}

// WithRepeat makes the animation loop from step 0 instead of completing.
// A repeating animation runs until Stop and never calls OnComplete.
func WithRepeat() Option {
	return func(a *Animation) { a.repeat = true }
}

// WithName labels the animation in log output.
func WithName(name string) Option {
	return func(a *Animation) { a.name = name }
}

// WithLogger sets the logger used for recovered panics.
func WithLogger(l *slog.Logger) Option {
	return func(a *Animation) { a.logger = l }
}

// NewAnimation creates an idle animation driven by d on scheduler s.
func NewAnimation(s *Scheduler, d Driver, opts ...Option) *Animation {
	a := &Animation{
		sched:    s,
		driver:   d,
		maxSteps: DefaultMaxSteps,
		duration: DefaultDuration,
		easing:   Linear,
		redraw:   s.Redraw(),
		logger:   s.Logger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// =============================================================================
// LIFECYCLE
// =============================================================================

// Start restarts the animation from step 0, canceling any pending frame.
// When no frame can be scheduled the animation is left stopped and the
// error is returned; the caller may retry.
func (a *Animation) Start() error {
	return a.startCycle(nil, nil)
}

// startCycle is Start with callbacks bound to this run only. done runs when
// the run completes and abort when a frame fails or cannot be scheduled; a
// stopped run calls neither. A callback that belongs to an earlier run never
// sees a later run.
func (a *Animation) startCycle(done, abort func()) error {
	a.mu.Lock()
	a.cancelLocked()
	a.gen++
	a.step = 0
	a.startTime = a.sched.Clock().Now()
	a.animating = true
	a.cycleDone = done
	a.cycleAbort = abort
	err := a.scheduleLocked(a.gen)
	if err != nil {
		a.animating = false
		a.clearCycleLocked()
	}
	a.mu.Unlock()

	if err != nil {
		a.logger.Warn("animation did not start", "animation", a.name, "error", err)
	}
	return err
}

// Stop cancels the pending frame and leaves every property at its last
// written value. Stopping an idle animation does nothing.
func (a *Animation) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.animating {
		return
	}
	a.animating = false
	a.gen++
	a.clearCycleLocked()
	a.cancelLocked()
}

func (a *Animation) clearCycleLocked() {
	a.cycleDone = nil
	a.cycleAbort = nil
}

// abortLocked stops a failed run and returns its abort callback. The caller
// runs it after unlocking.
func (a *Animation) abortLocked() func() {
	abort := a.cycleAbort
	a.animating = false
	a.clearCycleLocked()
	return abort
}

func (a *Animation) abort(fn func()) {
	if fn != nil {
		a.guard("cycle_abort", fn)
	}
}

func (a *Animation) cancelLocked() {
	if a.timer != nil {
		a.timer.Cancel()
		a.timer = nil
	}
}

func (a *Animation) interval() time.Duration {
	return a.duration / time.Duration(a.maxSteps)
}

func (a *Animation) scheduleLocked(gen uint64) error {
	t, err := a.sched.AfterFunc(a.interval(), func() { a.tick(gen) })
	if err != nil {
		return fmt.Errorf("schedule frame: %w", err)
	}
	a.timer = t
	return nil
}

// tick advances one step. A tick from a stopped or restarted run is dropped
// before it touches the target.
func (a *Animation) tick(gen uint64) {
	a.mu.Lock()
	if !a.animating || gen != a.gen {
		a.mu.Unlock()
		return
	}
	a.timer = nil
	a.step++

	if a.step >= a.maxSteps && !a.repeat {
		a.animating = false
		done := a.cycleDone
		a.clearCycleLocked()
		v, ok := a.drive(a.driver.Complete, a.frameLocked())
		a.mu.Unlock()

		if ok {
			a.notify(v)
		}
		a.finish(done)
		return
	}
	if a.step >= a.maxSteps {
		a.step = 0
	}

	v, ok := a.drive(a.driver.Frame, a.frameLocked())
	if !ok {
		abort := a.abortLocked()
		a.mu.Unlock()
		a.abort(abort)
		return
	}
	if err := a.scheduleLocked(gen); err != nil {
		abort := a.abortLocked()
		a.mu.Unlock()
		a.logger.Warn("animation halted", "animation", a.name, "error", err)
		a.notify(v)
		a.abort(abort)
		return
	}
	a.mu.Unlock()
	a.notify(v)
}

func (a *Animation) frameLocked() Frame {
	return Frame{Step: a.step, MaxSteps: a.maxSteps, Easing: a.easing}
}

// drive runs a driver hook and converts a panic into ok=false.
func (a *Animation) drive(hook func(Frame) float64, f Frame) (v float64, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("animation frame panicked", "animation", a.name, "step", f.Step, "panic", r)
			ok = false
		}
	}()
	return hook(f), true
}

func (a *Animation) notify(v float64) {
	if a.onUpdate != nil {
		a.guard("on_update", func() { a.onUpdate(v) })
	}
	if a.redraw != nil {
		a.guard("redraw", a.redraw)
	}
}

func (a *Animation) finish(done func()) {
	if done != nil {
		a.guard("cycle_done", done)
	}
	for _, fn := range a.onComplete {
		a.guard("on_complete", fn)
	}
}

func (a *Animation) guard(what string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("animation callback panicked", "animation", a.name, "callback", what, "panic", r)
		}
	}()
	fn()
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Animating reports whether frames are still scheduled.
func (a *Animation) Animating() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.animating
}

// Step returns the current step. It resets to 0 on Start, and on every loop
// of a repeating animation.
func (a *Animation) Step() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.step
}

// MaxSteps returns the number of frames per run.
func (a *Animation) MaxSteps() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.maxSteps
}

// Duration returns the configured run time.
func (a *Animation) Duration() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.duration
}

// Interval returns the delay between two frames.
func (a *Animation) Interval() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.interval()
}

// StartTime returns when the current run began.
func (a *Animation) StartTime() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.startTime
}

// Name returns the label given by WithName.
func (a *Animation) Name() string { return a.name }

// Progress returns min(1, step/maxSteps).
func (a *Animation) Progress() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.frameLocked().Progress()
}

// EasedProgress returns Progress shaped by kind.
func (a *Animation) EasedProgress(kind Easing) float64 {
	return Ease(kind, a.Progress())
}

// SetDuration changes the run time. A running animation picks it up at its
// next frame.
func (a *Animation) SetDuration(d time.Duration) {
	if d <= 0 {
		return
	}
	a.mu.Lock()
	a.duration = d
	a.mu.Unlock()
}

// SetMaxSteps changes the frame count. A running animation picks it up at
// its next frame.
func (a *Animation) SetMaxSteps(n int) {
	if n <= 0 {
		return
	}
	a.mu.Lock()
	a.maxSteps = n
	a.mu.Unlock()
}
