// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

// =============================================================================
// THEME TESTS
// =============================================================================

func TestNewThemeFor_ForcedModes(t *testing.T) {
	dark := NewThemeFor(ModeDark)
	assert.True(t, dark.IsDark)
	assert.Equal(t, Cyan.Dark, dark.Hex(Cyan))

	light := NewThemeFor("LIGHT")
	assert.False(t, light.IsDark)
	assert.Equal(t, Cyan.Light, light.Hex(Cyan))
	assert.Equal(t, lipgloss.Color(Cyan.Light), light.Color(Cyan))
}

func TestTheme_LayoutMode(t *testing.T) {
	theme := NewThemeFor(ModeDark)
	tests := []struct {
		width int
		want  LayoutMode
	}{
		{40, LayoutNarrow},
		{59, LayoutNarrow},
		{60, LayoutMedium},
		{99, LayoutMedium},
		{100, LayoutWide},
	}
	for _, tt := range tests {
		theme.SetSize(tt.width, 24)
		assert.Equal(t, tt.want, theme.GetLayoutMode(), "width %d", tt.width)
	}
}

func TestTheme_StylesRender(t *testing.T) {
	theme := NewThemeFor(ModeDark)
	for name, s := range map[string]lipgloss.Style{
		"Title":     theme.Title,
		"Panel":     theme.Panel,
		"Button":    theme.Button,
		"TabActive": theme.TabActive,
		"Popup":     theme.Popup,
	} {
		assert.Contains(t, s.Render("sample"), "sample", name)
	}
}

// =============================================================================
// BLEND TESTS
// =============================================================================

func TestBlend_Endpoints(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#000000"), Blend("#000000", "#ffffff", 0))
	assert.Equal(t, lipgloss.Color("#ffffff"), Blend("#000000", "#ffffff", 1))
	assert.Equal(t, lipgloss.Color("#ffffff"), Blend("#000000", "#ffffff", 3), "clamped")
	assert.Equal(t, lipgloss.Color("#000000"), Blend("#000000", "#ffffff", -1), "clamped")
}

func TestBlend_Midpoint(t *testing.T) {
	mid := string(Blend("#000000", "#ffffff", 0.5))
	assert.Len(t, mid, 7)
	assert.NotEqual(t, "#000000", mid)
	assert.NotEqual(t, "#ffffff", mid)
}

func TestBlend_BadInput(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#ffffff"), Blend("nope", "#ffffff", 0.2))
	assert.Equal(t, lipgloss.Color("#000000"), Blend("#000000", "nope", 0.9))
	assert.Equal(t, lipgloss.Color(""), Blend("x", "y", 0.5))
}

func TestTheme_Ramp(t *testing.T) {
	theme := NewThemeFor(ModeDark)
	assert.Equal(t, lipgloss.Color(strings.ToLower(FocusRest.Dark)), theme.Ramp(FocusRest, FocusPeak, 0))
	assert.Equal(t, lipgloss.Color(strings.ToLower(FocusPeak.Dark)), theme.Ramp(FocusRest, FocusPeak, 1))
	assert.Equal(t, lipgloss.Color(strings.ToLower(Surface.Dark)), theme.Fade(TextPrimary, 0))
}

// =============================================================================
// GLYPH TESTS
// =============================================================================

func TestRenderProgressBar(t *testing.T) {
	assert.Equal(t, "", RenderProgressBar(0, 0.5))
	assert.Equal(t, "----------", RenderProgressBar(10, 0))
	assert.Equal(t, "#####-----", RenderProgressBar(10, 0.5))
	assert.Equal(t, "##########", RenderProgressBar(10, 1.4))
	assert.Equal(t, "##:-", RenderProgressBar(4, 0.625))
}

func TestScaleMarks(t *testing.T) {
	assert.Equal(t, 0, ScaleMarks(1.0))
	assert.Equal(t, 1, ScaleMarks(1.05))
	assert.Equal(t, 4, ScaleMarks(1.2))
	assert.Equal(t, -1, ScaleMarks(0.95))
	assert.Equal(t, -2, ScaleMarks(0.9))
}
