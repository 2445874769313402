// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"math"
	"strings"
)

// =============================================================================
// PROGRESS INDICATORS
// =============================================================================

// Progress bar characters, used for the tab transition indicator and the
// ease table.
var (
	ProgressFull    = "#"
	ProgressEmpty   = "-"
	ProgressPartial = []string{".", ":", "+"}
)

// RenderProgressBar draws fraction (0-1) of width cells. Values outside
// [0,1] are clamped; elastic overshoot simply fills the bar.
func RenderProgressBar(width int, fraction float64) string {
	if width <= 0 {
		return ""
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	filled := float64(width) * fraction
	full := int(filled)
	partial := int((filled - float64(full)) * float64(len(ProgressPartial)+1))

	var sb strings.Builder
	sb.Grow(width)
	for i := 0; i < full && i < width; i++ {
		sb.WriteString(ProgressFull)
	}
	if full < width && partial > 0 {
		sb.WriteString(ProgressPartial[partial-1])
		full++
	}
	for i := full; i < width; i++ {
		sb.WriteString(ProgressEmpty)
	}
	return sb.String()
}

// =============================================================================
// CONTROL GLYPHS (ASCII-safe)
// =============================================================================

// Toggle marks.
const (
	ToggleOnMark  = "[x]"
	ToggleOffMark = "[ ]"
)

// CursorGlyph is drawn in reverse video while the cursor is visible.
const CursorGlyph = " "

// Ellipsis marks truncated labels.
const Ellipsis = "..."

// ScaleMarks converts a scale property into extra padding cells per side:
// one cell for every 0.05 above 1.0, negative below it.
func ScaleMarks(scale float64) int {
	return int(math.Round((scale - 1.0) / 0.05))
}
