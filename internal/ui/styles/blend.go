// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/jeranaias/textshell/internal/util"
)

// Blend mixes two hex colors in CIE-Lab space. t is clamped to [0,1]; a
// color that does not parse is returned unchanged at its own end of the mix.
func Blend(from, to string, t float64) lipgloss.Color {
	t = util.Clamp01(t)
	a, errA := colorful.Hex(from)
	b, errB := colorful.Hex(to)
	switch {
	case errA != nil && errB != nil:
		return lipgloss.Color("")
	case errA != nil:
		return lipgloss.Color(to)
	case errB != nil:
		return lipgloss.Color(from)
	}
	if t == 0 {
		return lipgloss.Color(a.Hex())
	}
	if t == 1 {
		return lipgloss.Color(b.Hex())
	}
	return lipgloss.Color(a.BlendLab(b, t).Clamped().Hex())
}

// Ramp resolves both adaptive colors for the theme and blends them by
// intensity.
func (t *Theme) Ramp(rest, peak lipgloss.AdaptiveColor, intensity float64) lipgloss.Color {
	return Blend(t.Hex(rest), t.Hex(peak), intensity)
}

// Fade blends fg toward the theme background as opacity drops to 0.
func (t *Theme) Fade(fg lipgloss.AdaptiveColor, opacity float64) lipgloss.Color {
	return Blend(t.Hex(Surface), t.Hex(fg), opacity)
}
