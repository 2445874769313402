// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the palette and theme used by the textshell preview.

# Color System (colors.go)

All colors are Lip Gloss AdaptiveColors. Animated properties blend between
a resting color and an accent:

	FocusRest  -> FocusPeak   panel border_highlight
	ToggleRest -> TogglePeak  toggle highlight
	PulseRest  -> PulsePeak   notification pulse_intensity
	MatchRest  -> MatchPeak   search highlight_intensity
	SelectRest -> SelectPeak  completion item highlight_intensity

# Theme System (theme.go)

	theme := styles.NewThemeFor(cfg.UI.Theme)   // "auto", "dark" or "light"
	border := theme.Ramp(styles.FocusRest, styles.FocusPeak, panel.BorderHighlight())

Blending happens in CIE-Lab space (blend.go) so intermediate frames do not
pass through muddy greys.

# Glyphs (glyphs.go)

ASCII-safe progress bars, toggle marks and the scale-to-padding mapping.
*/
package styles
