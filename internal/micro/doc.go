// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package micro provides the editor's semantic micro-animations.
//
// Each recipe maps a UI event to an animation on a particular target:
//
//	a := micro.New(sched, mgr, cfg.Animations)
//	a.ButtonPress(saveButton)
//	a.Toggle(wrapToggle, true)
//	a.SearchResult(match, isCurrent)
//
// A recipe derives its registry key from its name and the target's
// identity, so each (recipe, target) pair has at most one live timer chain
// no matter how often the event fires. Recipes return the player they
// started, or nil when animations are disabled.
package micro
