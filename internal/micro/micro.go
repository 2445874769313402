// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package micro

import (
	"log/slog"
	"sync"
	"time"

	"github.com/jeranaias/textshell/internal/anim"
	"github.com/jeranaias/textshell/internal/config"
)

// Recipe names. They prefix per-target registry keys and name the entries
// of [animations.durations] and [animations.easing].
const (
	RecipeButtonPress      = "button_press"
	RecipeToggle           = "toggle"
	RecipePanelFocus       = "panel_focus"
	RecipeNotification     = "notification"
	RecipeTabFlash         = "tab_flash"
	RecipeTabTransition    = "tab_transition"
	RecipePanelFade        = "panel_fade"
	RecipeCursorBlink      = "cursor_blink"
	RecipeSearchResult     = "search_result"
	RecipeSearchNav        = "search_nav"
	RecipeCompletionPopup  = "completion_popup"
	RecipeCompletionSelect = "completion_select"
	RecipeTooltip          = "tooltip"
	RecipePanelSlide       = "panel_slide"
	RecipeNotificationPop  = "notification_pop"
)

// Factory names registered on the manager.
const (
	FactoryButtonPress       = "button_press"
	FactoryToggleOn          = "toggle_on"
	FactoryToggleOff         = "toggle_off"
	FactoryPanelFocus        = "panel_focus"
	FactoryPulse             = "notification_pulse"
	FactoryTabFlash          = "tab_flash"
	FactoryTooltipPopIn      = "tooltip_pop_in"
	FactoryPanelSlideIn      = "panel_slide_in"
	FactoryNotificationPopIn = "notification_pop_in"
)

// PanelSlideFrom is where a sliding panel starts, in percent of its width.
const PanelSlideFrom = -100.0

// PropPressFade is the fade channel of the button press pop. Buttons keep
// their own opacity; a target that wants the press to flash exposes this
// property instead.
const PropPressFade = "press_fade"

// Recipes lists every recipe prefix, in the order Stop visits them.
var Recipes = []string{
	RecipeButtonPress,
	RecipeToggle,
	RecipePanelFocus,
	RecipeNotification,
	RecipeTabFlash,
	RecipeTabTransition,
	RecipePanelFade,
	RecipeCursorBlink,
	RecipeSearchResult,
	RecipeSearchNav,
	RecipeCompletionPopup,
	RecipeCompletionSelect,
	RecipeTooltip,
	RecipePanelSlide,
	RecipeNotificationPop,
}

// Built-in timings, overridable per recipe from config.
const (
	buttonPressDuration   = 150 * time.Millisecond
	notificationDuration  = 1500 * time.Millisecond
	tabFlashDuration      = 200 * time.Millisecond
	tabTransitionDuration = 200 * time.Millisecond
	tabTransitionSteps    = 8
	panelFadeDuration     = 250 * time.Millisecond
	searchPulseDuration   = 1200 * time.Millisecond
	searchFadeDuration    = 300 * time.Millisecond
	searchNavDuration     = 400 * time.Millisecond
	popupInDuration       = 250 * time.Millisecond
	popupOutDuration      = 200 * time.Millisecond
	selectionDuration     = 250 * time.Millisecond
	tooltipDuration       = 250 * time.Millisecond
	panelSlideDuration    = 350 * time.Millisecond
	notifyPopDuration     = 350 * time.Millisecond
)

// Flagged targets are told when a popup animation starts and ends.
type Flagged interface {
	SetAnimating(animating bool)
}

// TabTransitioner is a tab bar that tracks which transition is running.
type TabTransitioner interface {
	anim.Target
	SetTransition(from, to int, active bool)
}

// =============================================================================
// ANIMATOR
// =============================================================================

// built records how the player under a key was made, so a recipe can tell
// whether it may reuse it.
type built struct {
	gen     uint64
	variant string
}

// Animator runs the recipes against one scheduler and manager. Recipe calls
// are serialized; completion callbacks may call back into the Animator.
type Animator struct {
	sched  *anim.Scheduler
	mgr    *anim.Manager
	logger *slog.Logger

	mu    sync.Mutex
	cfg   config.AnimationConfig
	gen   uint64
	built map[string]built
}

// Option configures an Animator.
type Option func(*Animator)

// WithLogger sets the logger for recipe failures.
func WithLogger(l *slog.Logger) Option {
	return func(a *Animator) { a.logger = l }
}

// New creates an Animator and registers the base factories on mgr.
func New(s *anim.Scheduler, mgr *anim.Manager, cfg config.AnimationConfig, opts ...Option) *Animator {
	a := &Animator{
		sched:  s,
		mgr:    mgr,
		logger: s.Logger(),
		cfg:    cfg,
		gen:    1,
		built:  make(map[string]built),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.registerFactories()
	return a
}

// Manager returns the registry the Animator uses.
func (a *Animator) Manager() *anim.Manager { return a.mgr }

// Enabled reports whether recipes currently do anything.
func (a *Animator) Enabled() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg.Enabled
}

// Config returns the settings in effect.
func (a *Animator) Config() config.AnimationConfig {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg
}

// Reconfigure swaps the settings. Factories are re-registered and every
// per-target player is rebuilt the next time its recipe runs; players
// already running finish with the old settings. Disabling animations stops
// everything, leaving properties where they were.
func (a *Animator) Reconfigure(cfg config.AnimationConfig) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cfg = cfg
	a.gen++
	a.registerFactories()
	if !cfg.Enabled {
		a.mgr.StopAll()
	}
	a.logger.Debug("animations reconfigured", "enabled", cfg.Enabled, "generation", a.gen)
}

// Stop stops every recipe running on t.
func (a *Animator) Stop(t anim.Target) {
	for _, r := range Recipes {
		a.mgr.Stop(anim.Key(r, t))
	}
}

// Forget stops and unregisters every recipe of t. Call it when the target
// goes away.
func (a *Animator) Forget(t anim.Target) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, r := range Recipes {
		key := anim.Key(r, t)
		a.mgr.Remove(key)
		delete(a.built, key)
	}
}

// Shutdown stops every animation on the manager.
func (a *Animator) Shutdown() {
	a.mgr.StopAll()
}

// =============================================================================
// HELPERS
// =============================================================================

// registerFactories must run with a.mu held.
func (a *Animator) registerFactories() {
	cfg := a.cfg
	s := a.sched

	a.mgr.AddFactory(FactoryButtonPress, func(t anim.Target) anim.Player {
		return anim.NewPopIn(s, t, PropPressFade, anim.PropScale,
			anim.PopScale(0.95, 1.0),
			anim.PopDuration(cfg.DurationFor(RecipeButtonPress, buttonPressDuration)),
			anim.PopEasing(cfg.EasingFor(RecipeButtonPress, anim.EaseOutQuad)),
		)
	})
	a.mgr.AddFactory(FactoryToggleOn, func(t anim.Target) anim.Player {
		return anim.NewFade(s, t, anim.PropHighlight, 0, 1, a.common(cfg, RecipeToggle, cfg.DefaultDuration.Duration, anim.EaseOutQuad)...)
	})
	a.mgr.AddFactory(FactoryToggleOff, func(t anim.Target) anim.Player {
		return anim.NewFade(s, t, anim.PropHighlight, 1, 0, a.common(cfg, RecipeToggle, cfg.DefaultDuration.Duration, anim.EaseOutQuad)...)
	})
	a.mgr.AddFactory(FactoryPanelFocus, func(t anim.Target) anim.Player {
		return anim.NewFade(s, t, anim.PropBorderHighlight, 0, 1, a.common(cfg, RecipePanelFocus, cfg.DefaultDuration.Duration, anim.EaseOutQuad)...)
	})
	a.mgr.AddFactory(FactoryPulse, func(t anim.Target) anim.Player {
		return anim.NewWave(s, anim.Property(t, anim.PropPulseIntensity), anim.Triangle(cfg.PulseCount),
			a.common(cfg, RecipeNotification, notificationDuration, anim.Linear)...)
	})
	a.mgr.AddFactory(FactoryTabFlash, func(t anim.Target) anim.Player {
		return anim.NewFade(s, t, anim.PropFlashHighlight, 0, 1, a.common(cfg, RecipeTabFlash, tabFlashDuration, anim.EaseOutQuad)...)
	})
	a.mgr.AddFactory(FactoryTooltipPopIn, func(t anim.Target) anim.Player {
		return anim.NewPopIn(s, t, anim.PropOpacity, anim.PropScale,
			anim.PopScale(1.05, 1.0),
			anim.PopDuration(cfg.DurationFor(RecipeTooltip, tooltipDuration)),
			anim.PopEasing(cfg.EasingFor(RecipeTooltip, anim.EaseOutQuad)),
			anim.PopLogger(a.logger),
		)
	})
	a.mgr.AddFactory(FactoryPanelSlideIn, func(t anim.Target) anim.Player {
		return anim.NewSlide(s, t, anim.PropPosition, PanelSlideFrom, 0,
			a.common(cfg, RecipePanelSlide, panelSlideDuration, anim.EaseOutQuad)...)
	})
	a.mgr.AddFactory(FactoryNotificationPopIn, func(t anim.Target) anim.Player {
		return anim.NewPopIn(s, t, anim.PropOpacity, anim.PropScale,
			anim.PopScale(1.1, 1.0),
			anim.PopDuration(cfg.DurationFor(RecipeNotificationPop, notifyPopDuration)),
			anim.PopEasing(cfg.EasingFor(RecipeNotificationPop, anim.EaseOutBounce)),
			anim.PopLogger(a.logger),
		)
	})
}

// common returns the options shared by every recipe animation.
func (a *Animator) common(cfg config.AnimationConfig, recipe string, d time.Duration, e anim.Easing) []anim.Option {
	return []anim.Option{
		anim.WithName(recipe),
		anim.WithLogger(a.logger),
		anim.WithMaxSteps(cfg.MaxSteps),
		anim.WithDuration(cfg.DurationFor(recipe, d)),
		anim.WithEasing(cfg.EasingFor(recipe, e)),
	}
}

// ensure returns the player under key, building and registering a new one
// when the key is empty, was built under older settings or for another
// variant, or fresh is set. The second result reports a rebuild.
// Must run with a.mu held.
func (a *Animator) ensure(key, variant string, fresh bool, build func() anim.Player) (anim.Player, bool) {
	if p, ok := a.mgr.Get(key); ok && !fresh {
		if b, seen := a.built[key]; seen && b.gen == a.gen && b.variant == variant {
			return p, false
		}
	}
	p := build()
	a.mgr.Add(key, p)
	a.built[key] = built{gen: a.gen, variant: variant}
	return p, true
}

// start starts key and returns its player. A failed start is logged by the
// manager; the player is still returned so the caller can retry.
func (a *Animator) start(key string, p anim.Player) anim.Player {
	if !a.mgr.Start(key) {
		a.logger.Debug("recipe did not start", "key", key)
	}
	return p
}

// fromFactory builds a player from a registered base factory.
func (a *Animator) fromFactory(name string, t anim.Target) func() anim.Player {
	return func() anim.Player {
		f, ok := a.mgr.Factory(name)
		if !ok {
			// Someone replaced the factory entry; rebuild it.
			a.registerFactories()
			f, _ = a.mgr.Factory(name)
		}
		return f(t)
	}
}

func (a *Animator) redraw() {
	if fn := a.sched.Redraw(); fn != nil {
		fn()
	}
}
