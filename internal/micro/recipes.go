// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package micro

import (
	"time"

	"github.com/jeranaias/textshell/internal/anim"
)

// =============================================================================
// CONTROLS
// =============================================================================

// ButtonPress pops the button from 0.95 back to full size.
func (a *Animator) ButtonPress(t anim.Target) anim.Player {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.cfg.Enabled {
		return nil
	}
	key := anim.Key(RecipeButtonPress, t)
	p, _ := a.ensure(key, "", false, a.fromFactory(FactoryButtonPress, t))
	return a.start(key, p)
}

// Toggle fades the toggle's highlight in when on and out when off. Flipping
// direction replaces the previous fade, stopping it where it was.
func (a *Animator) Toggle(t anim.Target, on bool) anim.Player {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.cfg.Enabled {
		return nil
	}
	factory, variant := FactoryToggleOff, "off"
	if on {
		factory, variant = FactoryToggleOn, "on"
	}
	key := anim.Key(RecipeToggle, t)
	p, _ := a.ensure(key, variant, false, a.fromFactory(factory, t))
	return a.start(key, p)
}

// PanelFocus brightens the panel border.
func (a *Animator) PanelFocus(t anim.Target) anim.Player {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.cfg.Enabled {
		return nil
	}
	key := anim.Key(RecipePanelFocus, t)
	p, _ := a.ensure(key, "", false, a.fromFactory(FactoryPanelFocus, t))
	return a.start(key, p)
}

// Notification pulses the notification's intensity pulse_count times.
func (a *Animator) Notification(t anim.Target) anim.Player {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.cfg.Enabled {
		return nil
	}
	key := anim.Key(RecipeNotification, t)
	p, _ := a.ensure(key, "", false, a.fromFactory(FactoryPulse, t))
	return a.start(key, p)
}

// NotificationPopIn bounces the notification text in, shrinking from 1.1.
// It runs alongside the border pulse.
func (a *Animator) NotificationPopIn(t anim.Target) anim.Player {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.cfg.Enabled {
		return nil
	}
	key := anim.Key(RecipeNotificationPop, t)
	p, _ := a.ensure(key, "", false, a.fromFactory(FactoryNotificationPopIn, t))
	return a.start(key, p)
}

// TooltipShow pops a tooltip in from 1.05.
func (a *Animator) TooltipShow(t anim.Target) anim.Player {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.cfg.Enabled {
		return nil
	}
	key := anim.Key(RecipeTooltip, t)
	p, _ := a.ensure(key, "", false, a.fromFactory(FactoryTooltipPopIn, t))
	return a.start(key, p)
}

// =============================================================================
// TABS AND PANELS
// =============================================================================

// TabActivation flashes a tab that just became active.
func (a *Animator) TabActivation(t anim.Target) anim.Player {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.cfg.Enabled {
		return nil
	}
	key := anim.Key(RecipeTabFlash, t)
	p, _ := a.ensure(key, "", false, a.fromFactory(FactoryTabFlash, t))
	return a.start(key, p)
}

// TabTransition animates the bar's transition_progress from 0 to 1 while
// moving from tab from to tab to. Nothing happens when from equals to.
func (a *Animator) TabTransition(t TabTransitioner, from, to int) anim.Player {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.cfg.Enabled || from == to {
		return nil
	}

	cfg := a.cfg
	key := anim.Key(RecipeTabTransition, t)
	p, _ := a.ensure(key, "", true, func() anim.Player {
		opts := a.common(cfg, RecipeTabTransition, tabTransitionDuration, anim.EaseOutQuad)
		opts = append(opts,
			anim.WithMaxSteps(tabTransitionSteps),
			anim.WithOnComplete(func() { t.SetTransition(from, to, false) }),
		)
		return anim.NewWave(a.sched, anim.Property(t, anim.PropTransitionProgress), anim.Ramp(0, 1), opts...)
	})
	t.SetTransition(from, to, true)
	anim.Set(t, anim.PropTransitionProgress, 0)
	return a.start(key, p)
}

// PanelFade fades a panel in when it is shown. Hiding is immediate.
func (a *Animator) PanelFade(t anim.Target, visible bool) anim.Player {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.cfg.Enabled {
		return nil
	}
	key := anim.Key(RecipePanelFade, t)
	if !visible {
		a.mgr.Stop(key)
		anim.Set(t, anim.PropOpacity, 0)
		a.redraw()
		return nil
	}

	cfg := a.cfg
	p, _ := a.ensure(key, "", false, func() anim.Player {
		return anim.NewFade(a.sched, t, anim.PropOpacity, 0, 1,
			a.common(cfg, RecipePanelFade, panelFadeDuration, anim.EaseOutCubic)...)
	})
	anim.Set(t, anim.PropOpacity, 0)
	return a.start(key, p)
}

// PanelSlideIn slides the panel in from the left.
func (a *Animator) PanelSlideIn(t anim.Target) anim.Player {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.cfg.Enabled {
		return nil
	}
	key := anim.Key(RecipePanelSlide, t)
	p, _ := a.ensure(key, "", false, a.fromFactory(FactoryPanelSlideIn, t))
	anim.Set(t, anim.PropPosition, PanelSlideFrom)
	return a.start(key, p)
}

// CursorBlink blinks the cursor until stopped, visible for the first half
// of each period. A non-positive rate uses the configured blink rate.
func (a *Animator) CursorBlink(t anim.Target, rate time.Duration) anim.Player {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.cfg.Enabled {
		return nil
	}
	cfg := a.cfg
	if rate <= 0 {
		rate = cfg.DurationFor(RecipeCursorBlink, cfg.CursorBlinkRate.Duration)
	}
	key := anim.Key(RecipeCursorBlink, t)
	p, _ := a.ensure(key, rate.String(), false, func() anim.Player {
		return anim.NewWave(a.sched, anim.Property(t, anim.PropVisibility), anim.Step,
			anim.WithName(RecipeCursorBlink),
			anim.WithLogger(a.logger),
			anim.WithMaxSteps(cfg.MaxSteps),
			anim.WithDuration(rate),
			anim.WithRepeat(),
		)
	})
	return a.start(key, p)
}

// =============================================================================
// SEARCH
// =============================================================================

// SearchResult highlights a search match. The current match pulses between
// 0.7 and 1.0 until it stops being current; other matches fade in from 0.2
// to 0.7 once.
func (a *Animator) SearchResult(t anim.Target, current bool) anim.Player {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.cfg.Enabled {
		return nil
	}
	cfg := a.cfg
	key := anim.Key(RecipeSearchResult, t)

	if current {
		p, _ := a.ensure(key, "current", true, func() anim.Player {
			opts := a.common(cfg, RecipeSearchResult, searchPulseDuration, anim.Linear)
			opts = append(opts, anim.WithRepeat())
			return anim.NewWave(a.sched, anim.Property(t, anim.PropHighlightIntensity), anim.SinePulse(0.7, 1.0), opts...)
		})
		return a.start(key, p)
	}

	p, rebuilt := a.ensure(key, "other", false, func() anim.Player {
		return anim.NewFade(a.sched, t, anim.PropHighlightIntensity, 0.2, 0.7,
			a.common(cfg, RecipeSearchResult, searchFadeDuration, anim.EaseOutQuad)...)
	})
	if !rebuilt {
		return p
	}
	return a.start(key, p)
}

// searchNavTarget writes the navigation pop: scale follows the curve while
// the highlight is held at full.
type searchNavTarget struct {
	t anim.Target
}

func (n searchNavTarget) Apply(v float64) {
	anim.Set(n.t, anim.PropScale, v)
	anim.Set(n.t, anim.PropHighlightIntensity, 1.0)
}

// SearchNavigation pops a match the cursor just jumped to: scale goes
// 1.0 -> 1.2 -> 1.0 with the highlight at full, then the highlight settles
// to 0.7.
func (a *Animator) SearchNavigation(t anim.Target) anim.Player {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.cfg.Enabled {
		return nil
	}
	cfg := a.cfg
	key := anim.Key(RecipeSearchNav, t)
	p, _ := a.ensure(key, "", true, func() anim.Player {
		opts := a.common(cfg, RecipeSearchNav, searchNavDuration, anim.Linear)
		opts = append(opts, anim.WithOnComplete(func() {
			anim.Set(t, anim.PropHighlightIntensity, 0.7)
			anim.Set(t, anim.PropScale, 1.0)
			a.redraw()
		}))
		return anim.NewSettlingWave(a.sched, searchNavTarget{t: t}, anim.Peak(1.0, 1.2, 1.0), 1.0, opts...)
	})
	return a.start(key, p)
}

// =============================================================================
// COMPLETION
// =============================================================================

// CompletionPopup pops the completion popup in (1.05 -> 1.0) or out
// (1.0 -> 0.95). Targets implementing Flagged are marked animating until the
// pop completes.
func (a *Animator) CompletionPopup(t anim.Target, appearing bool) anim.Player {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.cfg.Enabled {
		return nil
	}
	cfg := a.cfg
	flag, _ := t.(Flagged)
	done := func() {
		if flag != nil {
			flag.SetAnimating(false)
		}
	}

	variant := "out"
	if appearing {
		variant = "in"
	}
	key := anim.Key(RecipeCompletionPopup, t)
	p, _ := a.ensure(key, variant, false, func() anim.Player {
		easing := anim.PopEasing(cfg.EasingFor(RecipeCompletionPopup, anim.EaseOutQuad))
		if appearing {
			return anim.NewPopIn(a.sched, t, anim.PropOpacity, anim.PropScale,
				anim.PopScale(1.05, 1.0),
				anim.PopDuration(cfg.DurationFor(RecipeCompletionPopup, popupInDuration)),
				anim.PopLogger(a.logger),
				easing,
				anim.PopOnComplete(done),
				anim.PopOnAbort(done),
			)
		}
		return anim.NewPopOut(a.sched, t, anim.PropOpacity, anim.PropScale,
			anim.PopScale(1.0, 0.95),
			anim.PopDuration(cfg.DurationFor(RecipeCompletionPopup, popupOutDuration)),
			anim.PopLogger(a.logger),
			easing,
			anim.PopOnComplete(done),
			anim.PopOnAbort(done),
		)
	})

	if flag != nil {
		flag.SetAnimating(true)
	}
	p = a.start(key, p)
	if !p.Animating() {
		done()
	}
	return p
}

// CompletionSelection flashes a completion item from 0.5 up to 1.0 and
// back down to 0.8.
func (a *Animator) CompletionSelection(t anim.Target) anim.Player {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.cfg.Enabled {
		return nil
	}
	cfg := a.cfg
	key := anim.Key(RecipeCompletionSelect, t)
	p, _ := a.ensure(key, "", true, func() anim.Player {
		return anim.NewSettlingWave(a.sched, anim.Property(t, anim.PropHighlightIntensity),
			anim.Peak(0.5, 1.0, 0.8), 0.8,
			a.common(cfg, RecipeCompletionSelect, selectionDuration, anim.EaseOutQuad)...)
	})
	return a.start(key, p)
}
