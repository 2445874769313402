// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package anim

// Blink toggles a property on and off count times. Tick i (counting from 1)
// writes 1 when i is odd and 0 when it is even, so Blink(3) produces
// 1,0,1,0,1,0 and finishes off.
type Blink struct {
	*Animation
	count int
}

type blinkDriver struct {
	out Applicator
}

func (d blinkDriver) Frame(f Frame) float64 {
	v := 0.0
	if (f.Step-1)%2 == 0 {
		v = 1
	}
	d.out.Apply(v)
	return v
}

func (d blinkDriver) Complete(Frame) float64 {
	d.out.Apply(0)
	return 0
}

// NewBlink creates a blink of count on/off pairs over the animation's
// duration. Any WithMaxSteps option is overridden by 2*count.
func NewBlink(s *Scheduler, target Target, prop string, count int, opts ...Option) *Blink {
	if count < 1 {
		count = 1
	}
	opts = append(opts, WithMaxSteps(2*count))
	return &Blink{
		Animation: NewAnimation(s, blinkDriver{out: Property(target, prop)}, opts...),
		count:     count,
	}
}

// Count returns the number of on/off pairs.
func (b *Blink) Count() int { return b.count }
