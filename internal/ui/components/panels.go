// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"math"
	"strings"

	"github.com/jeranaias/textshell/internal/anim"
	"github.com/jeranaias/textshell/internal/ui/styles"
	"github.com/jeranaias/textshell/internal/util"
)

// =============================================================================
// PANEL
// =============================================================================

// Panel is a bordered box whose border brightens on focus and whose
// content fades in when shown. The position property is the slide offset
// in percent of the width: -100 is fully off to the left, 0 is home.
type Panel struct {
	element
	Title   string
	Lines   []string
	Width   int
	visible bool
}

// NewPanel creates a visible, unfocused panel.
func NewPanel(title string, width int, lines ...string) *Panel {
	return &Panel{
		element: newElement("panel", map[string]float64{
			anim.PropBorderHighlight: 0,
			anim.PropOpacity:         1,
			anim.PropPosition:        0,
		}),
		Title:   title,
		Lines:   lines,
		Width:   width,
		visible: true,
	}
}

// Visible reports the logical visibility.
func (p *Panel) Visible() bool { return p.visible }

// SetVisible records the logical visibility; the opacity is animated
// separately.
func (p *Panel) SetVisible(v bool) { p.visible = v }

// BorderHighlight returns the animated focus intensity.
func (p *Panel) BorderHighlight() float64 { return p.Property(anim.PropBorderHighlight) }

// Opacity returns the animated opacity.
func (p *Panel) Opacity() float64 { return p.Property(anim.PropOpacity) }

// Position returns the animated slide offset.
func (p *Panel) Position() float64 { return p.Property(anim.PropPosition) }

// Indent is the number of columns the panel is pushed right while it
// slides in.
func (p *Panel) Indent() int {
	pos := min(0, max(-100, p.Position()))
	return int(math.Round(-pos / 100 * float64(p.Width)))
}

// Blur drops the focus highlight at once.
func (p *Panel) Blur() { p.SetProperty(anim.PropBorderHighlight, 0) }

// View renders the panel, or nothing once it is fully transparent.
func (p *Panel) View(theme *styles.Theme) string {
	opacity := p.Opacity()
	if opacity <= 0 {
		return ""
	}
	inner := max(1, p.Width-4)

	var sb strings.Builder
	sb.WriteString(theme.PanelTitle.Render(util.TruncateWidth(p.Title, inner)))
	for _, line := range p.Lines {
		sb.WriteString("\n")
		sb.WriteString(util.PadWidth(util.TruncateWidth(line, inner), inner))
	}

	return theme.Panel.
		Width(max(1, p.Width-2)).
		MarginLeft(p.Indent()).
		BorderForeground(theme.Ramp(styles.FocusRest, styles.FocusPeak, p.BorderHighlight())).
		Foreground(theme.Fade(styles.TextPrimary, opacity)).
		Render(sb.String())
}

// =============================================================================
// NOTIFICATION
// =============================================================================

// Notification is a one-line message whose border pulses on arrival and
// whose text pops in.
type Notification struct {
	element
	Message string
}

// NewNotification creates a resting notification.
func NewNotification(msg string) *Notification {
	return &Notification{
		element: newElement("notification", map[string]float64{
			anim.PropPulseIntensity: 0,
			anim.PropOpacity:        1,
			anim.PropScale:          1,
		}),
		Message: msg,
	}
}

// Pulse returns the animated pulse intensity.
func (n *Notification) Pulse() float64 { return n.Property(anim.PropPulseIntensity) }

// Opacity returns the animated text opacity.
func (n *Notification) Opacity() float64 { return n.Property(anim.PropOpacity) }

// Scale returns the animated pop scale.
func (n *Notification) Scale() float64 { return n.Property(anim.PropScale) }

// View renders the notification.
func (n *Notification) View(theme *styles.Theme) string {
	if n.Message == "" {
		return ""
	}
	return theme.Notification.
		Padding(0, padding(1, n.Scale())).
		BorderForeground(theme.Ramp(styles.PulseRest, styles.PulsePeak, n.Pulse())).
		Foreground(theme.Fade(styles.TextPrimary, n.Opacity())).
		Render(n.Message)
}
