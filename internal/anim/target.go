// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package anim

import "fmt"

// Property names written by the standard animations and recipes.
const (
	PropOpacity            = "opacity"
	PropScale              = "scale"
	PropPosition           = "position"
	PropHighlight          = "highlight"
	PropBorderHighlight    = "border_highlight"
	PropFlashHighlight     = "flash_highlight"
	PropPulseIntensity     = "pulse_intensity"
	PropVisibility         = "visibility"
	PropHighlightIntensity = "highlight_intensity"
	PropTransitionProgress = "transition_progress"
)

// Target is an externally owned object with named numeric properties.
// SetProperty reports whether the target has the property; targets must
// silently ignore names they do not know.
type Target interface {
	SetProperty(name string, v float64) bool
}

// Identified targets supply a stable identity used to derive registry keys.
type Identified interface {
	AnimationID() string
}

// Identity returns the identity used for per-target registry keys.
func Identity(t Target) string {
	if id, ok := t.(Identified); ok {
		return id.AnimationID()
	}
	return fmt.Sprintf("%p", t)
}

// Key derives the registry key for a recipe applied to a target.
func Key(name string, t Target) string {
	return name + "_" + Identity(t)
}

// Applicator writes one animated value somewhere.
type Applicator interface {
	Apply(v float64)
}

// ApplyFunc adapts a plain function to Applicator.
type ApplyFunc func(v float64)

// Apply calls f(v).
func (f ApplyFunc) Apply(v float64) { f(v) }

type property struct {
	target Target
	name   string
}

func (p property) Apply(v float64) {
	if p.target != nil {
		p.target.SetProperty(p.name, v)
	}
}

// Property returns an Applicator writing the named property of t. A nil
// target produces an applicator that drops every write.
func Property(t Target, name string) Applicator {
	return property{target: t, name: name}
}

// Set writes a property on t if t is non-nil.
func Set(t Target, name string, v float64) bool {
	if t == nil {
		return false
	}
	return t.SetProperty(name, v)
}
