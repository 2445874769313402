// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 30 * time.Millisecond // DefaultDuration / DefaultMaxSteps

// =============================================================================
// PROGRESS
// =============================================================================

func TestAnimation_ProgressReachesOne(t *testing.T) {
	s, fc := newTestScheduler()
	r := newRecorder(PropOpacity)
	a := NewFade(s, r, PropOpacity, 0, 1)
	require.Equal(t, frame, a.Interval())

	require.NoError(t, a.Start())
	assert.Equal(t, 0.0, a.Progress())

	last := 0.0
	for i := 1; i <= DefaultMaxSteps; i++ {
		tick(s, fc, frame)
		p := a.Progress()
		assert.GreaterOrEqual(t, p, last, "step %d", i)
		last = p
		assert.Equal(t, i, a.Step())
	}
	assert.Equal(t, 1.0, last)
	assert.False(t, a.Animating())
	assert.Equal(t, 0, s.Len(), "no frame left behind")
}

func TestFade_RunsToCompletion(t *testing.T) {
	s, fc := newTestScheduler()
	r := newRecorder(PropOpacity)
	completed := 0
	var updates []float64
	a := NewFade(s, r, PropOpacity, 0, 1,
		WithDuration(300*time.Millisecond),
		WithMaxSteps(10),
		WithOnUpdate(func(v float64) { updates = append(updates, v) }),
		WithOnComplete(func() { completed++ }),
	)

	require.NoError(t, a.Start())
	assert.True(t, a.Animating())
	runFrames(s, fc, frame, 10)

	assert.Equal(t, 1.0, r.get(PropOpacity))
	assert.False(t, a.Animating())
	assert.Equal(t, 1, completed)
	assert.Equal(t, r.writes(PropOpacity), updates)
	assert.Len(t, updates, 10)
	assert.InDelta(t, Ease(EaseOutQuad, 0.1), updates[0], 1e-9)
}

func TestAnimation_RestartResetsStep(t *testing.T) {
	s, fc := newTestScheduler()
	r := newRecorder(PropOpacity)
	a := NewFade(s, r, PropOpacity, 0, 1)

	require.NoError(t, a.Start())
	runFrames(s, fc, frame, 5)
	first := r.writes(PropOpacity)[0]
	require.Equal(t, 5, a.Step())

	require.NoError(t, a.Start())
	assert.Equal(t, 0, a.Step())
	r.reset()

	tick(s, fc, frame)
	assert.Equal(t, 1, a.Step())
	assert.Equal(t, []float64{first}, r.writes(PropOpacity), "trajectory restarts")
	assert.Equal(t, 1, s.Len(), "one timer chain")
}

func TestAnimation_StopHaltsWrites(t *testing.T) {
	s, fc := newTestScheduler()
	r := newRecorder(PropPosition)
	completed := false
	a := NewSlide(s, r, PropPosition, 0, 10, WithOnComplete(func() { completed = true }))

	require.NoError(t, a.Start())
	runFrames(s, fc, frame, 3)
	held := r.get(PropPosition)
	n := len(r.writes(PropPosition))

	a.Stop()
	a.Stop()
	runFrames(s, fc, frame, 5)

	assert.Equal(t, held, r.get(PropPosition))
	assert.Len(t, r.writes(PropPosition), n)
	assert.False(t, a.Animating())
	assert.False(t, completed)
}

func TestAnimation_StopWithoutStart(t *testing.T) {
	s, _ := newTestScheduler()
	a := NewFade(s, newRecorder(), PropOpacity, 0, 1)
	require.NotPanics(t, a.Stop)
	assert.False(t, a.Animating())
}

func TestAnimation_MissingPropertyIsNoop(t *testing.T) {
	s, fc := newTestScheduler()
	r := newRecorder()
	a := NewFade(s, r, "not_there", 0, 1)

	require.NoError(t, a.Start())
	runFrames(s, fc, frame, DefaultMaxSteps)
	assert.False(t, a.Animating())
	assert.Empty(t, r.writes("not_there"))

	var nilTarget Target
	b := NewFade(s, nilTarget, PropOpacity, 0, 1)
	require.NoError(t, b.Start())
	require.NotPanics(t, func() { runFrames(s, fc, frame, DefaultMaxSteps) })
}

// =============================================================================
// BLINK AND WAVES
// =============================================================================

func TestBlink_Sequence(t *testing.T) {
	s, fc := newTestScheduler()
	r := newRecorder(PropVisibility)
	b := NewBlink(s, r, PropVisibility, 3, WithDuration(600*time.Millisecond), WithMaxSteps(99))
	require.Equal(t, 6, b.MaxSteps())
	require.Equal(t, 3, b.Count())

	require.NoError(t, b.Start())
	runFrames(s, fc, 100*time.Millisecond, 5)
	assert.True(t, b.Animating())

	tick(s, fc, 100*time.Millisecond)
	assert.False(t, b.Animating())
	assert.Equal(t, []float64{1, 0, 1, 0, 1, 0}, r.writes(PropVisibility))
}

func TestWave_SettlesOnFixedValue(t *testing.T) {
	s, fc := newTestScheduler()
	r := newRecorder(PropHighlight)
	w := NewSettlingWave(s, Property(r, PropHighlight), Peak(0.5, 1, 0.8), 0.8, WithMaxSteps(4))

	require.NoError(t, w.Start())
	runFrames(s, fc, 75*time.Millisecond, 4)

	got := r.writes(PropHighlight)
	require.Len(t, got, 4)
	assert.InDelta(t, 0.75, got[0], 1e-9)
	assert.InDelta(t, 1.0, got[1], 1e-9)
	assert.InDelta(t, 0.9, got[2], 1e-9)
	assert.Equal(t, 0.8, got[3])
}

func TestCurves(t *testing.T) {
	tri := Triangle(2)
	assert.InDelta(t, 0.0, tri(0), 1e-9)
	assert.InDelta(t, 1.0, tri(0.25), 1e-9)
	assert.InDelta(t, 0.0, tri(0.5), 1e-9)
	assert.InDelta(t, 1.0, tri(0.75), 1e-9)
	assert.InDelta(t, 0.0, tri(1), 1e-9)

	sine := SinePulse(0.7, 1.0)
	assert.InDelta(t, 0.85, sine(0), 1e-9)
	assert.InDelta(t, 1.0, sine(0.25), 1e-9)
	assert.InDelta(t, 0.7, sine(0.75), 1e-9)

	assert.Equal(t, 1.0, Step(0.2))
	assert.Equal(t, 0.0, Step(0.5))
	assert.InDelta(t, 0.45, Ramp(0.2, 0.7)(0.5), 1e-9)
}

// =============================================================================
// FAILURE MODES
// =============================================================================

func TestAnimation_StartFailsOnClosedScheduler(t *testing.T) {
	s, _ := newTestScheduler()
	s.Close()
	a := NewFade(s, newRecorder(PropOpacity), PropOpacity, 0, 1)

	err := a.Start()
	require.ErrorIs(t, err, ErrSchedulerClosed)
	assert.False(t, a.Animating())
}

func TestAnimation_PanickingFrameStopsOnlyThatAnimation(t *testing.T) {
	s, fc := newTestScheduler()
	r := newRecorder(PropOpacity)
	bad := NewWave(s, ApplyFunc(func(float64) { panic("bad frame") }), Ramp(0, 1))
	good := NewFade(s, r, PropOpacity, 0, 1)

	require.NoError(t, bad.Start())
	require.NoError(t, good.Start())
	runFrames(s, fc, frame, DefaultMaxSteps)

	assert.False(t, bad.Animating())
	assert.Equal(t, 1.0, r.get(PropOpacity))
}

func TestAnimation_PanickingCallbackKeepsTicking(t *testing.T) {
	s, fc := newTestScheduler()
	r := newRecorder(PropOpacity)
	completed := false
	a := NewFade(s, r, PropOpacity, 0, 1,
		WithOnUpdate(func(float64) { panic("bad update") }),
		WithOnComplete(func() { completed = true }),
	)

	require.NoError(t, a.Start())
	runFrames(s, fc, frame, DefaultMaxSteps)
	assert.Len(t, r.writes(PropOpacity), DefaultMaxSteps)
	assert.True(t, completed)
}

// =============================================================================
// REPEAT AND REDRAW
// =============================================================================

func TestAnimation_RepeatLoops(t *testing.T) {
	s, fc := newTestScheduler()
	r := newRecorder(PropHighlight)
	completed := false
	w := NewWave(s, Property(r, PropHighlight), Ramp(0, 1),
		WithMaxSteps(4), WithDuration(40*time.Millisecond), WithRepeat(),
		WithOnComplete(func() { completed = true }))

	require.NoError(t, w.Start())
	runFrames(s, fc, 10*time.Millisecond, 4)
	assert.Equal(t, 0, w.Step())
	assert.True(t, w.Animating())

	runFrames(s, fc, 10*time.Millisecond, 6)
	assert.True(t, w.Animating())
	assert.False(t, completed)
	assert.Equal(t, []float64{0.25, 0.5, 0.75, 0, 0.25, 0.5, 0.75, 0, 0.25, 0.5}, r.writes(PropHighlight))

	w.Stop()
	assert.Equal(t, 0, s.Len())
}

func TestAnimation_RedrawAfterEveryWrite(t *testing.T) {
	redraws := 0
	s, fc := newTestScheduler(WithDefaultRedraw(func() { redraws++ }))
	a := NewFade(s, newRecorder(PropOpacity), PropOpacity, 0, 1)

	require.NoError(t, a.Start())
	runFrames(s, fc, frame, DefaultMaxSteps)
	assert.Equal(t, DefaultMaxSteps, redraws)

	own := 0
	b := NewFade(s, newRecorder(PropOpacity), PropOpacity, 0, 1, WithRedraw(func() { own++ }))
	require.NoError(t, b.Start())
	runFrames(s, fc, frame, DefaultMaxSteps)
	assert.Equal(t, DefaultMaxSteps, own)
	assert.Equal(t, DefaultMaxSteps, redraws, "override replaces the default")
}

func TestAnimation_SetDuration(t *testing.T) {
	s, _ := newTestScheduler()
	a := NewFade(s, newRecorder(), PropOpacity, 0, 1)
	a.SetDuration(100 * time.Millisecond)
	a.SetDuration(0)
	a.SetMaxSteps(4)
	a.SetMaxSteps(-1)
	assert.Equal(t, 100*time.Millisecond, a.Duration())
	assert.Equal(t, 4, a.MaxSteps())
	assert.Equal(t, 25*time.Millisecond, a.Interval())
}
