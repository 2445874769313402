// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"sync/atomic"

	"github.com/jeranaias/textshell/internal/anim"
	"github.com/jeranaias/textshell/internal/ui/styles"
	"github.com/jeranaias/textshell/internal/util"
)

// =============================================================================
// COMPLETION ITEM
// =============================================================================

// CompletionItem is one row of the completion popup.
type CompletionItem struct {
	element
	Label  string
	Detail string
}

// NewCompletionItem creates an unselected item.
func NewCompletionItem(label, detail string) *CompletionItem {
	return &CompletionItem{
		element: newElement("item", map[string]float64{anim.PropHighlightIntensity: 0}),
		Label:   label,
		Detail:  detail,
	}
}

// Intensity returns the animated selection intensity.
func (i *CompletionItem) Intensity() float64 { return i.Property(anim.PropHighlightIntensity) }

// Deselect drops the selection highlight at once.
func (i *CompletionItem) Deselect() { i.SetProperty(anim.PropHighlightIntensity, 0) }

// View renders the item padded to width cells.
func (i *CompletionItem) View(theme *styles.Theme, width int) string {
	text := i.Label
	if i.Detail != "" {
		text += "  " + i.Detail
	}
	row := util.PadWidth(util.TruncateWidth(text, width), width)
	return theme.PopupItem.
		Background(theme.Ramp(styles.SelectRest, styles.SelectPeak, i.Intensity())).
		Render(row)
}

// =============================================================================
// COMPLETION POPUP
// =============================================================================

// CompletionPopup lists completion items. It stays drawn while its pop-out
// animation runs, even after it was logically closed.
type CompletionPopup struct {
	element
	items     []*CompletionItem
	selected  int
	width     int
	open      bool
	animating atomic.Bool
}

// NewCompletionPopup creates a closed popup with the given items.
func NewCompletionPopup(width int, items ...*CompletionItem) *CompletionPopup {
	return &CompletionPopup{
		element: newElement("popup", map[string]float64{
			anim.PropOpacity: 0,
			anim.PropScale:   1,
		}),
		items: items,
		width: width,
	}
}

// SetAnimating is called when a pop animation starts and ends.
func (c *CompletionPopup) SetAnimating(on bool) { c.animating.Store(on) }

// Animating reports whether a pop animation is running.
func (c *CompletionPopup) Animating() bool { return c.animating.Load() }

// Open reports the logical state.
func (c *CompletionPopup) Open() bool { return c.open }

// SetOpen records the logical state and resets the selection on open.
func (c *CompletionPopup) SetOpen(open bool) {
	c.open = open
	if open {
		c.selected = 0
	}
}

// Visible reports whether the popup should be drawn.
func (c *CompletionPopup) Visible() bool { return c.open || c.Animating() }

// Items returns the rows.
func (c *CompletionPopup) Items() []*CompletionItem { return c.items }

// Selected returns the selected row index.
func (c *CompletionPopup) Selected() int { return c.selected }

// SelectedItem returns the selected row, or nil for an empty popup.
func (c *CompletionPopup) SelectedItem() *CompletionItem {
	if c.selected < 0 || c.selected >= len(c.items) {
		return nil
	}
	return c.items[c.selected]
}

// Move shifts the selection by delta, wrapping, and returns the row that
// lost it and the row that gained it.
func (c *CompletionPopup) Move(delta int) (prev, next *CompletionItem) {
	n := len(c.items)
	if n == 0 {
		return nil, nil
	}
	prev = c.items[c.selected]
	c.selected = ((c.selected+delta)%n + n) % n
	return prev, c.items[c.selected]
}

// Opacity returns the animated opacity.
func (c *CompletionPopup) Opacity() float64 { return c.Property(anim.PropOpacity) }

// Scale returns the animated scale.
func (c *CompletionPopup) Scale() float64 { return c.Property(anim.PropScale) }

// View renders the popup, or nothing when it is hidden.
func (c *CompletionPopup) View(theme *styles.Theme) string {
	opacity := c.Opacity()
	if !c.Visible() || opacity <= 0 {
		return ""
	}
	width := max(4, c.width+2*styles.ScaleMarks(c.Scale()))

	rows := make([]string, len(c.items))
	for i, item := range c.items {
		rows[i] = item.View(theme, width)
	}
	return theme.Popup.
		BorderForeground(theme.Fade(styles.Purple, opacity)).
		Render(strings.Join(rows, "\n"))
}
