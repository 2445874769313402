// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package anim

import (
	"log/slog"
	"math"
	"sync"
	"time"
)

// Child scale durations relative to the fade. The scale settles before the
// fade finishes so the element reads as "popping" rather than zooming.
const (
	popInScaleRatio  = 0.8
	popOutScaleRatio = 0.7
)

// PopDirection tells a pop-in from a pop-out.
type PopDirection int

const (
	PopInDirection PopDirection = iota
	PopOutDirection
)

func (d PopDirection) String() string {
	if d == PopOutDirection {
		return "out"
	}
	return "in"
}

type popConfig struct {
	duration   time.Duration
	preScale   float64
	startScale float64
	endScale   float64
	easing     Easing
	onUpdate   func(v float64)
	onComplete func()
	onAbort    func()
	redraw     func()
	hasRedraw  bool
	logger     *slog.Logger
}

// PopOption configures a PopIn or PopOut.
type PopOption func(*popConfig)

// PopDuration sets the fade duration; the scale child derives its own.
func PopDuration(d time.Duration) PopOption {
	return func(c *popConfig) {
		if d > 0 {
			c.duration = d
		}
	}
}

// PopScale sets the scale the element starts from and settles at. The
// start value is also written before the first frame.
func PopScale(start, end float64) PopOption {
	return func(c *popConfig) {
		c.preScale = start
		c.startScale = start
		c.endScale = end
	}
}

// PopEasing sets the fade child's easing. The scale child stays elastic.
func PopEasing(e Easing) PopOption {
	return func(c *popConfig) { c.easing = e }
}

// PopOnUpdate receives every value written by either child.
func PopOnUpdate(fn func(v float64)) PopOption {
	return func(c *popConfig) { c.onUpdate = fn }
}

// PopOnComplete runs once when both children of a cycle have finished.
func PopOnComplete(fn func()) PopOption {
	return func(c *popConfig) { c.onComplete = fn }
}

// PopOnAbort runs once when a cycle ends because a child failed. Neither
// callback runs for a stopped or superseded cycle.
func PopOnAbort(fn func()) PopOption {
	return func(c *popConfig) { c.onAbort = fn }
}

// PopRedraw overrides the scheduler's default redraw hook.
func PopRedraw(fn func()) PopOption {
	return func(c *popConfig) {
		c.redraw = fn
		c.hasRedraw = true
	}
}

// PopLogger sets the logger for recovered callback panics.
func PopLogger(l *slog.Logger) PopOption {
	return func(c *popConfig) { c.logger = l }
}

// =============================================================================
// POP
// =============================================================================

// Pop runs a fade and a scale as one unit. Each Start begins a new cycle
// that supersedes the previous one; the completion callback fires exactly
// once for every cycle that runs to the end and never for a stopped or
// superseded one. A cycle whose child fails ends at once: the other child
// is stopped and the abort callback fires instead.
type Pop struct {
	dir         PopDirection
	target      Target
	opacityProp string
	scaleProp   string
	cfg         popConfig
	fade        *Interp
	scale       *Interp

	mu        sync.Mutex
	cycle     uint64
	remaining int
}

// NewPopIn fades opacityProp 0->1 while scaling scaleProp from 1.05 to 1.0
// over 300ms unless options say otherwise. Without PopScale the element
// is shown at 1.1 before the first frame.
func NewPopIn(s *Scheduler, target Target, opacityProp, scaleProp string, opts ...PopOption) *Pop {
	cfg := popConfig{
		duration:   DefaultDuration,
		preScale:   1.1,
		startScale: 1.05,
		endScale:   1.0,
		easing:     EaseOutQuad,
	}
	return newPop(s, PopInDirection, target, opacityProp, scaleProp, cfg, opts)
}

// NewPopOut fades opacityProp 1->0 while shrinking scaleProp from 1.0 to 0.9
// over 250ms unless options say otherwise.
func NewPopOut(s *Scheduler, target Target, opacityProp, scaleProp string, opts ...PopOption) *Pop {
	cfg := popConfig{
		duration:   250 * time.Millisecond,
		preScale:   1.0,
		startScale: 1.0,
		endScale:   0.9,
		easing:     EaseInQuad,
	}
	return newPop(s, PopOutDirection, target, opacityProp, scaleProp, cfg, opts)
}

func newPop(s *Scheduler, dir PopDirection, target Target, opacityProp, scaleProp string, cfg popConfig, opts []PopOption) *Pop {
	cfg.logger = s.Logger()
	for _, opt := range opts {
		opt(&cfg)
	}

	ratio := popInScaleRatio
	from, to := 0.0, 1.0
	if dir == PopOutDirection {
		ratio = popOutScaleRatio
		from, to = 1.0, 0.0
	}

	common := []Option{WithLogger(cfg.logger), WithName("pop_" + dir.String())}
	if cfg.onUpdate != nil {
		common = append(common, WithOnUpdate(cfg.onUpdate))
	}
	if cfg.hasRedraw {
		common = append(common, WithRedraw(cfg.redraw))
	}

	fadeOpts := append([]Option{WithDuration(cfg.duration), WithEasing(cfg.easing)}, common...)
	scaleOpts := append([]Option{WithDuration(time.Duration(math.Round(float64(cfg.duration) * ratio)))}, common...)

	return &Pop{
		dir:         dir,
		target:      target,
		opacityProp: opacityProp,
		scaleProp:   scaleProp,
		cfg:         cfg,
		fade:        NewFade(s, target, opacityProp, from, to, fadeOpts...),
		scale:       NewScale(s, target, scaleProp, cfg.startScale, cfg.endScale, scaleOpts...),
	}
}

// Start writes the pre-animation values and starts both children,
// canceling any cycle still in flight.
func (p *Pop) Start() error {
	p.mu.Lock()
	p.cycle++
	c := p.cycle
	p.remaining = 2

	if p.dir == PopInDirection {
		p.write(p.opacityProp, 0)
	} else {
		p.write(p.opacityProp, 1)
	}
	p.write(p.scaleProp, p.cfg.preScale)

	done := func() { p.childDone(c) }
	abort := func() { p.childAbort(c) }
	if err := p.fade.startCycle(done, abort); err != nil {
		p.remaining = 0
		p.mu.Unlock()
		return err
	}
	if err := p.scale.startCycle(done, abort); err != nil {
		p.fade.Stop()
		p.remaining = 0
		p.mu.Unlock()
		return err
	}
	p.mu.Unlock()

	p.requestRedraw()
	return nil
}

// Stop halts both children without firing the completion callback.
func (p *Pop) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cycle++
	p.remaining = 0
	p.fade.Stop()
	p.scale.Stop()
}

// Animating reports whether the current cycle is still running.
func (p *Pop) Animating() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.remaining > 0
}

// Direction reports whether this is a pop-in or a pop-out.
func (p *Pop) Direction() PopDirection { return p.dir }

// Fade returns the opacity child.
func (p *Pop) Fade() *Interp { return p.fade }

// Scale returns the scale child.
func (p *Pop) Scale() *Interp { return p.scale }

// childDone joins the two children of cycle c. The final values are written
// under the pop's lock so a concurrent Start cannot be overwritten by the
// previous cycle's settle.
func (p *Pop) childDone(c uint64) {
	p.mu.Lock()
	if c != p.cycle || p.remaining == 0 {
		p.mu.Unlock()
		return
	}
	p.remaining--
	if p.remaining > 0 {
		p.mu.Unlock()
		return
	}
	if p.dir == PopInDirection {
		p.write(p.opacityProp, 1)
	} else {
		p.write(p.opacityProp, 0)
	}
	p.write(p.scaleProp, p.cfg.endScale)
	p.mu.Unlock()

	p.requestRedraw()
	if p.cfg.onComplete != nil {
		p.fade.guard("pop_on_complete", p.cfg.onComplete)
	}
}

// childAbort ends cycle c after a child failed. Properties stay where the
// last good frame left them.
func (p *Pop) childAbort(c uint64) {
	p.mu.Lock()
	if c != p.cycle || p.remaining == 0 {
		p.mu.Unlock()
		return
	}
	p.cycle++
	p.remaining = 0
	p.fade.Stop()
	p.scale.Stop()
	p.mu.Unlock()

	p.cfg.logger.Warn("pop aborted", "direction", p.dir.String())
	p.requestRedraw()
	if p.cfg.onAbort != nil {
		p.fade.guard("pop_on_abort", p.cfg.onAbort)
	}
}

// write sets a property, recovering a panicking target so the pop's lock is
// always released.
func (p *Pop) write(prop string, v float64) {
	p.fade.guard("pop_write", func() { Set(p.target, prop, v) })
}

func (p *Pop) requestRedraw() {
	fn := p.fade.redraw
	if fn != nil {
		p.fade.guard("redraw", fn)
	}
}
