// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/textshell/internal/anim"
	"github.com/jeranaias/textshell/internal/ui/styles"
)

// =============================================================================
// TOGGLE
// =============================================================================

// Toggle is an on/off switch whose highlight fades with its state.
type Toggle struct {
	element
	Label string
	on    bool
}

// NewToggle creates a toggle in the given state, fully settled.
func NewToggle(label string, on bool) *Toggle {
	h := 0.0
	if on {
		h = 1
	}
	return &Toggle{
		element: newElement("toggle", map[string]float64{anim.PropHighlight: h}),
		Label:   label,
		on:      on,
	}
}

// On reports the logical state.
func (t *Toggle) On() bool { return t.on }

// Flip inverts the state and returns the new one.
func (t *Toggle) Flip() bool {
	t.on = !t.on
	return t.on
}

// Highlight returns the animated highlight.
func (t *Toggle) Highlight() float64 { return t.Property(anim.PropHighlight) }

// View renders the toggle.
func (t *Toggle) View(theme *styles.Theme) string {
	mark := styles.ToggleOffMark
	if t.on {
		mark = styles.ToggleOnMark
	}
	style := lipgloss.NewStyle().Foreground(theme.Ramp(styles.ToggleRest, styles.TogglePeak, t.Highlight()))
	return style.Render(mark + " " + t.Label)
}

// =============================================================================
// BUTTON
// =============================================================================

// Button pops when pressed.
type Button struct {
	element
	Label string
}

// NewButton creates a resting button.
func NewButton(label string) *Button {
	return &Button{
		element: newElement("button", map[string]float64{
			anim.PropOpacity: 1,
			anim.PropScale:   1,
		}),
		Label: label,
	}
}

// Opacity returns the animated opacity.
func (b *Button) Opacity() float64 { return b.Property(anim.PropOpacity) }

// Scale returns the animated scale.
func (b *Button) Scale() float64 { return b.Property(anim.PropScale) }

// View renders the button; its padding follows the scale.
func (b *Button) View(theme *styles.Theme) string {
	return theme.Button.
		Padding(0, padding(2, b.Scale())).
		Background(theme.Fade(styles.Cyan, b.Opacity())).
		Render(b.Label)
}

// =============================================================================
// CURSOR
// =============================================================================

// Cursor is the blinking text cursor.
type Cursor struct {
	element
}

// NewCursor creates a visible cursor.
func NewCursor() *Cursor {
	return &Cursor{element: newElement("cursor", map[string]float64{anim.PropVisibility: 1})}
}

// Visible reports whether the blink is in its on phase.
func (c *Cursor) Visible() bool { return c.Property(anim.PropVisibility) >= 0.5 }

// Show resets the cursor to visible, typically after a keystroke.
func (c *Cursor) Show() { c.SetProperty(anim.PropVisibility, 1) }

// View renders the cursor cell.
func (c *Cursor) View(theme *styles.Theme) string {
	if c.Visible() {
		return theme.Cursor.Render(styles.CursorGlyph)
	}
	return styles.CursorGlyph
}

// =============================================================================
// TOOLTIP
// =============================================================================

// Tooltip is a hint bubble that pops in over its anchor and vanishes at
// once.
type Tooltip struct {
	element
	Text    string
	visible bool
}

// NewTooltip creates a hidden tooltip.
func NewTooltip(text string) *Tooltip {
	return &Tooltip{
		element: newElement("tooltip", map[string]float64{
			anim.PropOpacity: 0,
			anim.PropScale:   1,
		}),
		Text: text,
	}
}

// Visible reports the logical visibility.
func (t *Tooltip) Visible() bool { return t.visible }

// Show marks the tooltip visible; the pop is driven by the caller.
func (t *Tooltip) Show() { t.visible = true }

// Hide clears the tooltip without animating.
func (t *Tooltip) Hide() {
	t.visible = false
	t.SetProperty(anim.PropOpacity, 0)
	t.SetProperty(anim.PropScale, 1)
}

// Opacity returns the animated opacity.
func (t *Tooltip) Opacity() float64 { return t.Property(anim.PropOpacity) }

// Scale returns the animated pop scale.
func (t *Tooltip) Scale() float64 { return t.Property(anim.PropScale) }

// View renders the tooltip, or nothing while hidden or transparent.
func (t *Tooltip) View(theme *styles.Theme) string {
	opacity := t.Opacity()
	if !t.visible || opacity <= 0 || t.Text == "" {
		return ""
	}
	return theme.Popup.
		Padding(0, padding(1, t.Scale())).
		Foreground(theme.Fade(styles.TextSecondary, opacity)).
		Render(t.Text)
}
