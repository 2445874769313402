// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package anim

import "math"

// Curve maps eased progress in [0,1] to a property value.
type Curve func(p float64) float64

// Wave writes an arbitrary curve of progress. It covers the one-off effects
// (pulses, flashes, pops) that would otherwise each need their own type.
type Wave struct {
	*Animation
	wave *waveDriver
}

type waveDriver struct {
	out    Applicator
	curve  Curve
	settle float64
	fixed  bool
}

func (d *waveDriver) Frame(f Frame) float64 {
	v := d.curve(f.Eased())
	d.out.Apply(v)
	return v
}

func (d *waveDriver) Complete(Frame) float64 {
	v := d.settle
	if !d.fixed {
		v = d.curve(1)
	}
	d.out.Apply(v)
	return v
}

// NewWave creates a Wave whose final frame writes curve(1).
func NewWave(s *Scheduler, out Applicator, curve Curve, opts ...Option) *Wave {
	d := &waveDriver{out: out, curve: curve}
	return &Wave{Animation: NewAnimation(s, d, opts...), wave: d}
}

// NewSettlingWave creates a Wave whose final frame writes settle instead of
// curve(1).
func NewSettlingWave(s *Scheduler, out Applicator, curve Curve, settle float64, opts ...Option) *Wave {
	d := &waveDriver{out: out, curve: curve, settle: settle, fixed: true}
	return &Wave{Animation: NewAnimation(s, d, opts...), wave: d}
}

// =============================================================================
// CURVES
// =============================================================================

// Triangle rises and falls between 0 and 1 pulses times across the run.
func Triangle(pulses int) Curve {
	if pulses < 1 {
		pulses = 1
	}
	n := float64(pulses)
	return func(p float64) float64 {
		x := p * n
		phase := x - math.Floor(x)
		return 1 - math.Abs(phase*2-1)
	}
}

// SinePulse oscillates once per run between lo and hi, starting midway.
func SinePulse(lo, hi float64) Curve {
	return func(p float64) float64 {
		return lo + (hi-lo)*(0.5+0.5*math.Sin(p*2*math.Pi))
	}
}

// Peak climbs linearly from base to peak over the first half and falls to
// end over the second.
func Peak(base, peak, end float64) Curve {
	return func(p float64) float64 {
		if p < 0.5 {
			return base + (peak-base)*(p*2)
		}
		return peak - (peak-end)*((p-0.5)*2)
	}
}

// Step is 1 for the first half of the run and 0 for the second.
func Step(p float64) float64 {
	if p < 0.5 {
		return 1
	}
	return 0
}

// Ramp interpolates linearly from from to to.
func Ramp(from, to float64) Curve {
	return func(p float64) float64 {
		return Lerp(from, to, p)
	}
}
