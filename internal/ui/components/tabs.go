// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"sync"

	"github.com/jeranaias/textshell/internal/anim"
	"github.com/jeranaias/textshell/internal/ui/styles"
	"github.com/jeranaias/textshell/internal/util"
)

// MaxTabLabel is the widest a tab label is drawn.
const MaxTabLabel = 16

// =============================================================================
// TAB
// =============================================================================

// Tab is one entry of a TabBar; it flashes when activated.
type Tab struct {
	element
	Label string
}

// NewTab creates a tab.
func NewTab(label string) *Tab {
	return &Tab{
		element: newElement("tab", map[string]float64{anim.PropFlashHighlight: 0}),
		Label:   label,
	}
}

// Flash returns the animated activation flash.
func (t *Tab) Flash() float64 { return t.Property(anim.PropFlashHighlight) }

func (t *Tab) label() string { return util.TruncateWidth(t.Label, MaxTabLabel) }

// cells is the drawn width of the tab including its padding.
func (t *Tab) cells() int { return util.StringWidth(t.label()) + 2 }

// =============================================================================
// TAB BAR
// =============================================================================

// TabBar draws a row of tabs with an indicator that slides between them.
type TabBar struct {
	element
	tabs   []*Tab
	active int

	mu       sync.Mutex
	from, to int
	inFlight bool
}

// NewTabBar creates a bar with the first tab active.
func NewTabBar(labels ...string) *TabBar {
	b := &TabBar{
		element: newElement("tabbar", map[string]float64{anim.PropTransitionProgress: 1}),
	}
	for _, l := range labels {
		b.tabs = append(b.tabs, NewTab(l))
	}
	if len(b.tabs) > 0 {
		b.tabs[0].SetProperty(anim.PropFlashHighlight, 1)
	}
	return b
}

// Len returns the number of tabs.
func (b *TabBar) Len() int { return len(b.tabs) }

// Tab returns tab i, or nil when out of range.
func (b *TabBar) Tab(i int) *Tab {
	if i < 0 || i >= len(b.tabs) {
		return nil
	}
	return b.tabs[i]
}

// Active returns the active index.
func (b *TabBar) Active() int { return b.active }

// ActiveTab returns the active tab.
func (b *TabBar) ActiveTab() *Tab { return b.Tab(b.active) }

// SetActive activates tab i and returns the previously active index.
// Out-of-range indexes are ignored.
func (b *TabBar) SetActive(i int) int {
	prev := b.active
	if i >= 0 && i < len(b.tabs) {
		b.active = i
	}
	return prev
}

// Next activates the following tab, wrapping, and returns the previous index.
func (b *TabBar) Next() int {
	if len(b.tabs) == 0 {
		return 0
	}
	return b.SetActive((b.active + 1) % len(b.tabs))
}

// Prev activates the preceding tab, wrapping, and returns the previous index.
func (b *TabBar) Prev() int {
	if len(b.tabs) == 0 {
		return 0
	}
	return b.SetActive((b.active - 1 + len(b.tabs)) % len(b.tabs))
}

// SetTransition records the transition the bar is animating. It is called
// from the animation scheduler when a transition ends.
func (b *TabBar) SetTransition(from, to int, active bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.from, b.to, b.inFlight = from, to, active
}

// Transition returns the transition in flight.
func (b *TabBar) Transition() (from, to int, active bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.from, b.to, b.inFlight
}

// Progress returns the animated transition progress.
func (b *TabBar) Progress() float64 { return b.Property(anim.PropTransitionProgress) }

// offsets returns the starting column of each tab.
func (b *TabBar) offsets() []int {
	out := make([]int, len(b.tabs))
	col := 0
	for i, t := range b.tabs {
		out[i] = col
		col += t.cells() + 1
	}
	return out
}

// IndicatorColumn returns where the indicator starts: under the active tab
// at rest, interpolated between the two tabs during a transition.
func (b *TabBar) IndicatorColumn() int {
	if len(b.tabs) == 0 {
		return 0
	}
	offs := b.offsets()
	from, to, active := b.Transition()
	if !active || from < 0 || from >= len(offs) || to < 0 || to >= len(offs) {
		return offs[b.active]
	}
	return int(anim.Lerp(float64(offs[from]), float64(offs[to]), b.Progress()) + 0.5)
}

// View renders the tab row and the indicator line beneath it.
func (b *TabBar) View(theme *styles.Theme) string {
	var row strings.Builder
	for i, t := range b.tabs {
		if i > 0 {
			row.WriteString(" ")
		}
		if i == b.active {
			row.WriteString(theme.TabActive.
				Foreground(theme.Ramp(styles.FlashRest, styles.FlashPeak, t.Flash())).
				Render(t.label()))
			continue
		}
		row.WriteString(theme.Tab.Render(t.label()))
	}

	width := 0
	if t := b.ActiveTab(); t != nil {
		width = t.cells()
	}
	indicator := strings.Repeat(" ", b.IndicatorColumn()) +
		theme.Title.Render(strings.Repeat(styles.ProgressFull, width))
	return row.String() + "\n" + indicator
}
