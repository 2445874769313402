// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/google/uuid"

	"github.com/jeranaias/textshell/internal/ui/styles"
	"github.com/jeranaias/textshell/internal/util"
)

// element is the animated half of every component. The property set is
// fixed at construction, so the map is read-only afterwards and each cell
// can be written from the scheduler goroutine while View reads it.
type element struct {
	id    string
	props map[string]*util.Float64
}

func newElement(kind string, initial map[string]float64) element {
	props := make(map[string]*util.Float64, len(initial))
	for name, v := range initial {
		props[name] = util.NewFloat64(v)
	}
	return element{
		id:    kind + "-" + uuid.NewString(),
		props: props,
	}
}

// AnimationID returns the component's stable identity.
func (e *element) AnimationID() string { return e.id }

// SetProperty writes a known property and ignores every other name.
func (e *element) SetProperty(name string, v float64) bool {
	cell, ok := e.props[name]
	if !ok {
		return false
	}
	cell.Store(v)
	return true
}

// Property reads a property, returning 0 for unknown names.
func (e *element) Property(name string) float64 {
	if cell, ok := e.props[name]; ok {
		return cell.Load()
	}
	return 0
}

// padding converts a scale property into horizontal padding around base.
func padding(base int, scale float64) int {
	return max(0, base+styles.ScaleMarks(scale))
}
