// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package anim

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// =============================================================================
// EASING KINDS
// =============================================================================

// ErrUnknownEasing is returned by ParseEasing for names outside the closed set.
var ErrUnknownEasing = errors.New("unknown easing")

// Easing selects the curve that maps linear progress to eased progress.
type Easing int

const (
	Linear Easing = iota
	EaseInQuad
	EaseOutQuad
	EaseInOutQuad
	EaseOutBounce
	EaseInElastic
	EaseOutElastic
	EaseOutCubic
)

var easingNames = [...]string{
	Linear:         "linear",
	EaseInQuad:     "ease_in_quad",
	EaseOutQuad:    "ease_out_quad",
	EaseInOutQuad:  "ease_in_out_quad",
	EaseOutBounce:  "ease_out_bounce",
	EaseInElastic:  "ease_in_elastic",
	EaseOutElastic: "ease_out_elastic",
	EaseOutCubic:   "ease_out_cubic",
}

// Easings lists every supported kind in declaration order.
func Easings() []Easing {
	out := make([]Easing, len(easingNames))
	for i := range easingNames {
		out[i] = Easing(i)
	}
	return out
}

// String returns the snake_case name used in configuration files.
func (e Easing) String() string {
	if e < 0 || int(e) >= len(easingNames) {
		return fmt.Sprintf("easing(%d)", int(e))
	}
	return easingNames[e]
}

// ParseEasing resolves a configuration name such as "ease_out_quad".
func ParseEasing(name string) (Easing, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range easingNames {
		if s == n {
			return Easing(i), nil
		}
	}
	return Linear, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
}

// MarshalText implements encoding.TextMarshaler.
func (e Easing) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Easing) UnmarshalText(b []byte) error {
	v, err := ParseEasing(string(b))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// =============================================================================
// CURVES
// =============================================================================

// Ease maps t in [0,1] through the curve selected by kind. Values outside
// [0,1] are clamped first. Every kind returns exactly 0 at t=0 and exactly 1
// at t=1; bounce and elastic curves may leave [0,1] in between. Invalid kinds
// fall back to linear.
func Ease(kind Easing, t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}

	switch kind {
	case EaseInQuad:
		return t * t
	case EaseOutQuad:
		return -(t * (t - 2))
	case EaseInOutQuad:
		p := t * 2
		if p < 1 {
			return 0.5 * p * p
		}
		p--
		return -0.5 * (p*(p-2) - 1)
	case EaseOutBounce:
		return bounce(t)
	case EaseInElastic:
		p := t - 1
		return -(math.Pow(2, 10*p) * math.Sin((p*40-3)*math.Pi/6))
	case EaseOutElastic:
		return math.Pow(2, -10*t)*math.Sin((t*40-3)*math.Pi/6) + 1
	case EaseOutCubic:
		p := t - 1
		return p*p*p + 1
	default:
		return t
	}
}

func bounce(t float64) float64 {
	const k = 7.5625
	switch {
	case t < 1/2.75:
		return k * t * t
	case t < 2/2.75:
		p := t - 1.5/2.75
		return k*p*p + 0.75
	case t < 2.5/2.75:
		p := t - 2.25/2.75
		return k*p*p + 0.9375
	default:
		p := t - 2.625/2.75
		return k*p*p + 0.984375
	}
}

// Lerp interpolates between from and to by p.
func Lerp(from, to, p float64) float64 {
	return from + (to-from)*p
}
