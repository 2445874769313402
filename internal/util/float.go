// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"math"
	"sync/atomic"
)

// Float64 is a float64 that can be stored and loaded concurrently. The zero
// value holds 0.
//
// Animation frames write these from the scheduler goroutine while the
// renderer reads them; a reader may see a value mid-interpolation but never
// a torn one.
type Float64 struct {
	bits atomic.Uint64
}

// NewFloat64 returns a cell holding v.
func NewFloat64(v float64) *Float64 {
	f := &Float64{}
	f.Store(v)
	return f
}

// Load returns the current value.
func (f *Float64) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Store sets the value.
func (f *Float64) Store(v float64) {
	f.bits.Store(math.Float64bits(v))
}

// Swap sets the value and returns the previous one.
func (f *Float64) Swap(v float64) float64 {
	return math.Float64frombits(f.bits.Swap(math.Float64bits(v)))
}

// Clamp01 returns v limited to [0,1]. Elastic and bounce curves overshoot;
// renderers that map a value to a colour or a column want it bounded.
func Clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
