// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme mode names accepted by NewThemeFor and the ui.theme setting.
const (
	ModeAuto  = "auto"
	ModeDark  = "dark"
	ModeLight = "light"
)

// Theme holds the resolved palette and the static styles of the preview.
// Animated colors are not stored here; components ask the theme to blend
// them from the current property values on every render.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// LAYOUT
	// ==========================================================================

	App      lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Status   lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// ==========================================================================
	// COMPONENTS
	// ==========================================================================

	Panel        lipgloss.Style
	PanelTitle   lipgloss.Style
	Button       lipgloss.Style
	Tab          lipgloss.Style
	TabActive    lipgloss.Style
	Notification lipgloss.Style
	Popup        lipgloss.Style
	PopupItem    lipgloss.Style
	Cursor       lipgloss.Style
}

// NewTheme detects the terminal's background and builds a theme for it.
func NewTheme() *Theme {
	return NewThemeFor(ModeAuto)
}

// NewThemeFor builds a theme for mode. Unknown modes behave like auto.
func NewThemeFor(mode string) *Theme {
	profile := termenv.ColorProfile()
	var isDark bool
	switch strings.ToLower(mode) {
	case ModeDark:
		isDark = true
	case ModeLight:
		isDark = false
	default:
		isDark = termenv.HasDarkBackground()
	}

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: profile == termenv.TrueColor,
		ColorProfile: profile,
	}
	t.initStyles()
	return t
}

// Hex picks the side of an adaptive color that matches the theme.
func (t *Theme) Hex(c lipgloss.AdaptiveColor) string {
	if t.IsDark {
		return c.Dark
	}
	return c.Light
}

// Color is Hex as a lipgloss color.
func (t *Theme) Color(c lipgloss.AdaptiveColor) lipgloss.Color {
	return lipgloss.Color(t.Hex(c))
}

func (t *Theme) initStyles() {
	t.App = lipgloss.NewStyle().Padding(0, 1)

	t.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Color(Cyan))

	t.Subtitle = lipgloss.NewStyle().
		Foreground(t.Color(TextSecondary)).
		Italic(true)

	t.Status = lipgloss.NewStyle().
		Foreground(t.Color(TextSecondary)).
		Background(t.Color(SurfaceDim)).
		Padding(0, 1)

	t.HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Color(TextPrimary))

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Color(TextMuted))

	// Components. Border and foreground colors are overridden per frame.
	t.Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Color(Overlay)).
		Padding(0, 1)

	t.PanelTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Color(TextPrimary))

	t.Button = lipgloss.NewStyle().
		Foreground(t.Color(TextInverse)).
		Background(t.Color(Cyan)).
		Padding(0, 2)

	t.Tab = lipgloss.NewStyle().
		Foreground(t.Color(TextSecondary)).
		Padding(0, 1)

	t.TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Color(Cyan)).
		Padding(0, 1)

	t.Notification = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Color(Amber)).
		Padding(0, 1)

	t.Popup = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Color(Purple)).
		Background(t.Color(SurfaceBright))

	t.PopupItem = lipgloss.NewStyle().
		Foreground(t.Color(TextPrimary)).
		Padding(0, 1)

	t.Cursor = lipgloss.NewStyle().
		Reverse(true)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)
