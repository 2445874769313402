// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package preview

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines the preview's bindings. Each key triggers one recipe so
// every animation can be watched in isolation.
type KeyMap struct {
	NextTab    key.Binding
	PrevTab    key.Binding
	Toggle     key.Binding
	Press      key.Binding
	Notify     key.Binding
	Hint       key.Binding
	Search     key.Binding
	NextMatch  key.Binding
	PrevMatch  key.Binding
	ClearMatch key.Binding
	Complete   key.Binding
	ItemUp     key.Binding
	ItemDown   key.Binding
	Focus      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default preview bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "previous tab"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("1", "2", "3"),
			key.WithHelp("1-3", "toggle"),
		),
		Press: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "press button"),
		),
		Notify: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "notify"),
		),
		Hint: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hint"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		NextMatch: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "next match"),
		),
		PrevMatch: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "previous match"),
		),
		ClearMatch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		Complete: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "completion popup"),
		),
		ItemUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("up", "previous item"),
		),
		ItemDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("down", "next item"),
		),
		Focus: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "cycle focus"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the status line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Toggle, k.Press, k.Notify, k.Search, k.Complete, k.Help, k.Quit}
}

// FullHelp returns every binding, grouped by area.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Focus},
		{k.Toggle, k.Press, k.Notify, k.Hint},
		{k.Search, k.NextMatch, k.PrevMatch, k.ClearMatch},
		{k.Complete, k.ItemUp, k.ItemDown},
		{k.Help, k.Quit},
	}
}
