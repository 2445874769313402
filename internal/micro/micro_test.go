// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package micro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/textshell/internal/anim"
	"github.com/jeranaias/textshell/internal/config"
)

func TestRecipes_MatchConfig(t *testing.T) {
	assert.ElementsMatch(t, config.Recipes, Recipes)
}

func TestNew_RegistersFactories(t *testing.T) {
	h := newHarness(t)
	for _, name := range []string{FactoryButtonPress, FactoryToggleOn, FactoryToggleOff, FactoryPanelFocus, FactoryPulse, FactoryTabFlash,
		FactoryTooltipPopIn, FactoryPanelSlideIn, FactoryNotificationPopIn} {
		_, ok := h.mgr.Factory(name)
		assert.True(t, ok, name)
	}
	assert.False(t, h.mgr.Start(FactoryButtonPress), "factories are not startable")
}

// =============================================================================
// CONTROLS
// =============================================================================

func TestButtonPress(t *testing.T) {
	h := newHarness(t)
	w := newWidget("save")

	p1 := h.a.ButtonPress(w)
	require.NotNil(t, p1)
	assert.Equal(t, 0.95, w.writes(anim.PropScale)[0])

	h.run(20 * time.Millisecond)
	p2 := h.a.ButtonPress(w)
	assert.Same(t, p1, p2, "repeat presses reuse the player")
	assert.LessOrEqual(t, h.sched.Len(), 2, "one fade and one scale frame pending")

	h.run(300 * time.Millisecond)
	assert.False(t, p2.Animating())
	assert.Equal(t, 1.0, w.get(anim.PropScale))
	assert.Equal(t, 1.0, w.get(PropPressFade))
	assert.Empty(t, w.writes(anim.PropOpacity), "the press never touches opacity")
}

func TestToggle_TargetsAreIndependent(t *testing.T) {
	h := newHarness(t)
	w1, w2 := newWidget("wrap"), newWidget("numbers")

	p1 := h.a.Toggle(w1, true)
	p2 := h.a.Toggle(w2, true)
	require.NotSame(t, p1, p2)

	h.run(100 * time.Millisecond)
	h.a.Stop(w1)
	held := w1.get(anim.PropHighlight)
	n := len(w1.writes(anim.PropHighlight))

	h.run(400 * time.Millisecond)
	assert.Equal(t, 1.0, w2.get(anim.PropHighlight))
	assert.Less(t, held, 1.0)
	assert.Equal(t, held, w1.get(anim.PropHighlight))
	assert.Len(t, w1.writes(anim.PropHighlight), n)
}

func TestToggle_DirectionChangeRebuilds(t *testing.T) {
	h := newHarness(t)
	w := newWidget("wrap")

	on := h.a.Toggle(w, true)
	h.run(400 * time.Millisecond)
	assert.Equal(t, 1.0, w.get(anim.PropHighlight))

	off := h.a.Toggle(w, false)
	assert.NotSame(t, on, off)
	h.run(400 * time.Millisecond)
	assert.Equal(t, 0.0, w.get(anim.PropHighlight))

	assert.Same(t, off, h.a.Toggle(w, false))
}

func TestPanelFocus(t *testing.T) {
	h := newHarness(t)
	w := newWidget("panel")
	h.a.PanelFocus(w)
	h.run(400 * time.Millisecond)
	assert.Equal(t, 1.0, w.get(anim.PropBorderHighlight))
}

func TestNotification_Pulses(t *testing.T) {
	h := newHarness(t)
	w := newWidget("toast")
	p := h.a.Notification(w)

	h.run(1600 * time.Millisecond)
	assert.False(t, p.Animating())
	got := w.writes(anim.PropPulseIntensity)
	require.Len(t, got, 10)
	assert.InDelta(t, 0.6, got[0], 1e-9)
	assert.InDelta(t, 0.8, got[1], 1e-9)
	assert.InDelta(t, 0.0, got[9], 1e-9, "ends between pulses")
}

func TestNotificationPopIn_BouncesAlongsidePulse(t *testing.T) {
	h := newHarness(t)
	w := newWidget("toast")
	pulse := h.a.Notification(w)
	p := h.a.NotificationPopIn(w)
	require.NotNil(t, p)
	assert.Equal(t, 350*time.Millisecond, p.(*anim.Pop).Fade().Duration())
	assert.Equal(t, 1.1, w.writes(anim.PropScale)[0])

	h.run(35 * time.Millisecond)
	assert.InDelta(t, anim.Ease(anim.EaseOutBounce, 0.1), w.get(anim.PropOpacity), 1e-9)

	h.run(600 * time.Millisecond)
	assert.False(t, p.Animating())
	assert.True(t, pulse.Animating(), "the pulse outlasts the pop")
	assert.Equal(t, 1.0, w.get(anim.PropOpacity))
	assert.Equal(t, 1.0, w.get(anim.PropScale))

	h.run(time.Second)
	assert.Empty(t, h.mgr.Animating())
}

func TestTooltipShow(t *testing.T) {
	h := newHarness(t)
	w := newWidget("hint")

	p := h.a.TooltipShow(w)
	require.NotNil(t, p)
	assert.Equal(t, 250*time.Millisecond, p.(*anim.Pop).Fade().Duration())
	assert.Equal(t, 0.0, w.writes(anim.PropOpacity)[0])
	assert.Equal(t, 1.05, w.writes(anim.PropScale)[0])

	h.run(400 * time.Millisecond)
	assert.False(t, p.Animating())
	assert.Equal(t, 1.0, w.get(anim.PropOpacity))
	assert.Equal(t, 1.0, w.get(anim.PropScale))
	assert.Same(t, p, h.a.TooltipShow(w))
}

func TestDisabled_RecipesAreNoops(t *testing.T) {
	h := newHarness(t, func(c *config.AnimationConfig) { c.Enabled = false })
	w := newWidget("x")

	assert.False(t, h.a.Enabled())
	assert.Nil(t, h.a.ButtonPress(w))
	assert.Nil(t, h.a.Toggle(w, true))
	assert.Nil(t, h.a.PanelFocus(w))
	assert.Nil(t, h.a.Notification(w))
	assert.Nil(t, h.a.TabActivation(w))
	assert.Nil(t, h.a.TabTransition(w, 0, 1))
	assert.Nil(t, h.a.PanelFade(w, true))
	assert.Nil(t, h.a.CursorBlink(w, 0))
	assert.Nil(t, h.a.SearchResult(w, true))
	assert.Nil(t, h.a.SearchNavigation(w))
	assert.Nil(t, h.a.CompletionPopup(w, true))
	assert.Nil(t, h.a.CompletionSelection(w))
	assert.Nil(t, h.a.TooltipShow(w))
	assert.Nil(t, h.a.PanelSlideIn(w))
	assert.Nil(t, h.a.NotificationPopIn(w))

	h.run(time.Second)
	assert.Empty(t, w.writes(anim.PropScale))
	assert.Equal(t, 0, h.sched.Len())
}

// =============================================================================
// TABS AND PANELS
// =============================================================================

func TestTabActivation(t *testing.T) {
	h := newHarness(t)
	w := newWidget("tab1")
	p := h.a.TabActivation(w)
	assert.Equal(t, 200*time.Millisecond, p.(*anim.Interp).Duration())

	h.run(250 * time.Millisecond)
	assert.Equal(t, 1.0, w.get(anim.PropFlashHighlight))
}

func TestTabTransition(t *testing.T) {
	h := newHarness(t)
	bar := newWidget("tabs")

	assert.Nil(t, h.a.TabTransition(bar, 1, 1))
	assert.Empty(t, bar.transitions())

	p := h.a.TabTransition(bar, 0, 2)
	require.NotNil(t, p)
	assert.Equal(t, []string{"start"}, bar.transitions())
	assert.Equal(t, 8, p.(*anim.Wave).MaxSteps())

	h.run(250 * time.Millisecond)
	assert.Equal(t, []string{"start", "end"}, bar.transitions())
	assert.Equal(t, 1.0, bar.get(anim.PropTransitionProgress))
	assert.Len(t, bar.writes(anim.PropTransitionProgress), 9)
}

func TestPanelFade(t *testing.T) {
	h := newHarness(t)
	w := newWidget("insights")

	require.NotNil(t, h.a.PanelFade(w, true))
	assert.Equal(t, 0.0, w.writes(anim.PropOpacity)[0])
	h.run(300 * time.Millisecond)
	assert.Equal(t, 1.0, w.get(anim.PropOpacity))

	assert.Nil(t, h.a.PanelFade(w, false))
	assert.Equal(t, 0.0, w.get(anim.PropOpacity))
}

func TestPanelSlideIn(t *testing.T) {
	h := newHarness(t)
	w := newWidget("insights")

	p := h.a.PanelSlideIn(w)
	require.NotNil(t, p)
	assert.Equal(t, 350*time.Millisecond, p.(*anim.Interp).Duration())
	assert.Equal(t, PanelSlideFrom, w.writes(anim.PropPosition)[0])

	h.run(35 * time.Millisecond)
	assert.InDelta(t, -81.0, w.get(anim.PropPosition), 1e-9, "ease out quad first frame")

	h.run(400 * time.Millisecond)
	assert.False(t, p.Animating())
	assert.Equal(t, 0.0, w.get(anim.PropPosition))
}

func TestPanelSlideIn_HonoursOverrides(t *testing.T) {
	h := newHarness(t, func(c *config.AnimationConfig) {
		c.Durations = map[string]config.Duration{RecipePanelSlide: config.D(100 * time.Millisecond)}
		c.Easing = map[string]string{RecipePanelSlide: "linear"}
	})
	w := newWidget("insights")

	h.a.PanelSlideIn(w)
	h.run(10 * time.Millisecond)
	assert.InDelta(t, -90.0, w.get(anim.PropPosition), 1e-9)
}

func TestCursorBlink_Repeats(t *testing.T) {
	h := newHarness(t)
	w := newWidget("cursor")
	p := h.a.CursorBlink(w, 100*time.Millisecond)

	h.run(100 * time.Millisecond)
	assert.Equal(t, []float64{1, 1, 1, 1, 0, 0, 0, 0, 0, 1}, w.writes(anim.PropVisibility))
	assert.True(t, p.Animating())

	assert.Same(t, p, h.a.CursorBlink(w, 100*time.Millisecond))
	assert.NotSame(t, p, h.a.CursorBlink(w, 200*time.Millisecond), "a new rate rebuilds")

	h.a.Stop(w)
	assert.Empty(t, h.mgr.Animating())
}

// =============================================================================
// SEARCH
// =============================================================================

func TestSearchResult_CurrentThenOther(t *testing.T) {
	h := newHarness(t)
	w := newWidget("match3")

	pulse := h.a.SearchResult(w, true)
	h.run(3 * time.Second)
	assert.True(t, pulse.Animating(), "current match keeps pulsing")
	for _, v := range w.writes(anim.PropHighlightIntensity) {
		assert.GreaterOrEqual(t, v, 0.7-1e-9)
		assert.LessOrEqual(t, v, 1.0+1e-9)
	}

	fade := h.a.SearchResult(w, false)
	assert.NotSame(t, pulse, fade)
	assert.False(t, pulse.Animating())
	h.run(400 * time.Millisecond)
	assert.InDelta(t, 0.7, w.get(anim.PropHighlightIntensity), 1e-9)

	again := h.a.SearchResult(w, false)
	assert.Same(t, fade, again)
	assert.False(t, again.Animating(), "other matches fade in once")
}

func TestSearchResult_OtherHonoursOverrides(t *testing.T) {
	h := newHarness(t, func(c *config.AnimationConfig) {
		c.Durations = map[string]config.Duration{RecipeSearchResult: config.D(100 * time.Millisecond)}
		c.Easing = map[string]string{RecipeSearchResult: "linear"}
	})
	w := newWidget("match2")

	p := h.a.SearchResult(w, false)
	require.NotNil(t, p)
	assert.Equal(t, 100*time.Millisecond, p.(*anim.Interp).Duration())

	h.run(10 * time.Millisecond)
	assert.InDelta(t, 0.25, w.get(anim.PropHighlightIntensity), 1e-9, "linear first frame")
	h.run(100 * time.Millisecond)
	assert.InDelta(t, 0.7, w.get(anim.PropHighlightIntensity), 1e-9)
}

func TestSearchNavigation(t *testing.T) {
	h := newHarness(t)
	w := newWidget("match1")
	p := h.a.SearchNavigation(w)

	h.run(40 * time.Millisecond)
	assert.Equal(t, 1.0, w.get(anim.PropHighlightIntensity))
	assert.InDelta(t, 1.04, w.get(anim.PropScale), 1e-9)

	h.run(500 * time.Millisecond)
	assert.False(t, p.Animating())
	assert.Equal(t, 0.7, w.get(anim.PropHighlightIntensity))
	assert.Equal(t, 1.0, w.get(anim.PropScale))
}

// =============================================================================
// COMPLETION
// =============================================================================

func TestCompletionPopup_InAndOut(t *testing.T) {
	h := newHarness(t)
	w := newWidget("popup")

	in := h.a.CompletionPopup(w, true)
	assert.Equal(t, []bool{true}, w.flags())
	assert.Equal(t, 1.05, w.writes(anim.PropScale)[0])
	h.run(400 * time.Millisecond)
	assert.False(t, in.Animating())
	assert.Equal(t, []bool{true, false}, w.flags())
	assert.Equal(t, 1.0, w.get(anim.PropOpacity))

	out := h.a.CompletionPopup(w, false)
	assert.NotSame(t, in, out)
	h.run(400 * time.Millisecond)
	assert.Equal(t, []bool{true, false, true, false}, w.flags())
	assert.Equal(t, 0.0, w.get(anim.PropOpacity))
	assert.Equal(t, 0.95, w.get(anim.PropScale))
}

func TestCompletionPopup_StartFailureClearsFlag(t *testing.T) {
	h := newHarness(t)
	h.sched.Close()
	w := newWidget("popup")

	p := h.a.CompletionPopup(w, true)
	require.NotNil(t, p)
	assert.False(t, p.Animating())
	assert.Equal(t, []bool{true, false}, w.flags())
}

func TestCompletionPopup_FailedFrameClearsFlag(t *testing.T) {
	h := newHarness(t)
	w := newWidget("popup")
	w.broken = anim.PropScale

	p := h.a.CompletionPopup(w, true)
	require.NotNil(t, p)
	h.run(400 * time.Millisecond)

	assert.False(t, p.Animating())
	assert.Empty(t, h.mgr.Animating())
	assert.Equal(t, []bool{true, false}, w.flags())
	assert.Equal(t, 0, h.sched.Len())
}

func TestCompletionSelection(t *testing.T) {
	h := newHarness(t)
	w := newWidget("item")
	h.a.CompletionSelection(w)
	h.run(300 * time.Millisecond)

	got := w.writes(anim.PropHighlightIntensity)
	require.NotEmpty(t, got)
	peak := 0.0
	for _, v := range got {
		peak = max(peak, v)
	}
	assert.Greater(t, peak, 0.9)
	assert.Equal(t, 0.8, got[len(got)-1])
}

// =============================================================================
// LIFECYCLE
// =============================================================================

func TestStopAndForget(t *testing.T) {
	h := newHarness(t)
	w, other := newWidget("w"), newWidget("other")
	h.a.ButtonPress(w)
	h.a.Toggle(w, true)
	h.a.CursorBlink(w, 0)
	h.a.CursorBlink(other, 0)

	h.a.Stop(w)
	assert.Equal(t, []string{anim.Key(RecipeCursorBlink, other)}, h.mgr.Animating())

	h.a.Forget(w)
	for _, r := range Recipes {
		_, ok := h.mgr.Get(anim.Key(r, w))
		assert.False(t, ok, r)
	}
	_, ok := h.mgr.Get(anim.Key(RecipeCursorBlink, other))
	assert.True(t, ok)

	h.a.Shutdown()
	assert.Empty(t, h.mgr.Animating())
}

func TestReconfigure(t *testing.T) {
	h := newHarness(t)
	w := newWidget("btn")
	p1 := h.a.ButtonPress(w)
	blink := h.a.CursorBlink(newWidget("cursor"), 0)

	cfg := h.a.Config()
	cfg.Durations = map[string]config.Duration{RecipeButtonPress: config.D(50 * time.Millisecond)}
	h.a.Reconfigure(cfg)

	p2 := h.a.ButtonPress(w)
	assert.NotSame(t, p1, p2)
	assert.Equal(t, 50*time.Millisecond, p2.(*anim.Pop).Fade().Duration())
	assert.True(t, blink.Animating(), "running players are left alone")

	cfg.Enabled = false
	h.a.Reconfigure(cfg)
	assert.False(t, blink.Animating())
	assert.Nil(t, h.a.ButtonPress(w))
}
