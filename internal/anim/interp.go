// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package anim

// Interp interpolates one property between two values. Fade, Slide and
// Scale are Interps with different default easing.
type Interp struct {
	*Animation
	lerp *lerpDriver
}

type lerpDriver struct {
	out      Applicator
	from, to float64
}

func (d *lerpDriver) Frame(f Frame) float64 {
	v := Lerp(d.from, d.to, f.Eased())
	d.out.Apply(v)
	return v
}

// Complete lands exactly on the end value; the eased curve only reaches it
// at progress 1, which no intermediate frame sees.
func (d *lerpDriver) Complete(Frame) float64 {
	d.out.Apply(d.to)
	return d.to
}

// NewInterp creates an interpolation from from to to written through out.
// Easing defaults to Linear.
func NewInterp(s *Scheduler, out Applicator, from, to float64, opts ...Option) *Interp {
	d := &lerpDriver{out: out, from: from, to: to}
	return &Interp{Animation: NewAnimation(s, d, opts...), lerp: d}
}

// From returns the start value.
func (i *Interp) From() float64 { return i.lerp.from }

// To returns the end value.
func (i *Interp) To() float64 { return i.lerp.to }

// NewFade fades prop on target from start to end with ease_out_quad unless
// an easing option overrides it.
func NewFade(s *Scheduler, target Target, prop string, start, end float64, opts ...Option) *Interp {
	return NewInterp(s, Property(target, prop), start, end, withDefaultEasing(EaseOutQuad, opts)...)
}

// NewSlide moves a position property from start to end.
func NewSlide(s *Scheduler, target Target, prop string, start, end float64, opts ...Option) *Interp {
	return NewInterp(s, Property(target, prop), start, end, withDefaultEasing(EaseOutQuad, opts)...)
}

// NewScale scales prop from start to end with an elastic overshoot.
func NewScale(s *Scheduler, target Target, prop string, start, end float64, opts ...Option) *Interp {
	return NewInterp(s, Property(target, prop), start, end, withDefaultEasing(EaseOutElastic, opts)...)
}

func withDefaultEasing(e Easing, opts []Option) []Option {
	return append([]Option{WithEasing(e)}, opts...)
}
