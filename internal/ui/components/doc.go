// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the animated widgets of the textshell preview.

Every component implements anim.Target and anim.Identified. Animated
properties live in atomic cells written by the animation scheduler and read
by View on the Bubble Tea goroutine; logical state (on/off, active tab,
open/closed) is only touched by the UI.

# Components

	Toggle          highlight
	Button          opacity, scale
	Cursor          visibility
	Panel           border_highlight, opacity
	Notification    pulse_intensity
	Tab             flash_highlight
	TabBar          transition_progress
	SearchResult    highlight_intensity, scale
	CompletionPopup opacity, scale
	CompletionItem  highlight_intensity

IDs are "<kind>-<uuid>", so recipe keys never collide across instances.
*/
package components
