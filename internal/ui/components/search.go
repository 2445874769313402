// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/textshell/internal/anim"
	"github.com/jeranaias/textshell/internal/ui/styles"
)

// SearchResult is one match of a buffer search.
type SearchResult struct {
	element
	Line int
	Text string
}

// NewSearchResult creates a match that has not been highlighted yet.
func NewSearchResult(line int, text string) *SearchResult {
	return &SearchResult{
		element: newElement("match", map[string]float64{
			anim.PropHighlightIntensity: 0,
			anim.PropScale:              1,
		}),
		Line: line,
		Text: text,
	}
}

// Intensity returns the animated highlight intensity.
func (r *SearchResult) Intensity() float64 { return r.Property(anim.PropHighlightIntensity) }

// Scale returns the animated scale.
func (r *SearchResult) Scale() float64 { return r.Property(anim.PropScale) }

// Clear drops the highlight without animating.
func (r *SearchResult) Clear() {
	r.SetProperty(anim.PropHighlightIntensity, 0)
	r.SetProperty(anim.PropScale, 1)
}

// View renders the match with its line number.
func (r *SearchResult) View(theme *styles.Theme) string {
	num := theme.HelpDesc.Render(fmt.Sprintf("%4d ", r.Line))
	match := lipgloss.NewStyle().
		Foreground(theme.Color(styles.TextPrimary)).
		Background(theme.Ramp(styles.MatchRest, styles.MatchPeak, r.Intensity())).
		Padding(0, padding(0, r.Scale())).
		Render(r.Text)
	return num + match
}
