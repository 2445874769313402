// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package anim

import (
	"log/slog"
	"sort"
	"sync"
)

// Factory builds a per-target player. Factories registered with the manager
// are never started directly; callers invoke them and register the result
// under a key derived from the target.
type Factory func(t Target) Player

type entry struct {
	player  Player
	factory Factory
}

// Manager is a registry of named players. Every mutation happens under one
// lock, and players are started and stopped while it is held, so a key
// never has two live timer chains.
//
// Manager methods must not be called from a redraw hook; completion and
// update callbacks are fine.
type Manager struct {
	mu      sync.Mutex
	entries map[string]entry
	logger  *slog.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithManagerLogger sets the logger for start failures.
func WithManagerLogger(l *slog.Logger) ManagerOption {
	return func(m *Manager) { m.logger = l }
}

// NewManager creates an empty registry.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		entries: make(map[string]entry),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Add registers p under key, stopping whatever was registered there before.
func (m *Manager) Add(key string, p Player) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replaceLocked(key, entry{player: p})
}

// AddFactory registers f under key, stopping any live player it replaces.
func (m *Manager) AddFactory(key string, f Factory) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replaceLocked(key, entry{factory: f})
}

func (m *Manager) replaceLocked(key string, e entry) {
	if old, ok := m.entries[key]; ok && old.player != nil && old.player != e.player {
		old.player.Stop()
	}
	m.entries[key] = e
}

// Start starts the player under key from step 0. It returns false when the
// key is absent, holds a factory, or the player could not be scheduled.
func (m *Manager) Start(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok || e.player == nil {
		return false
	}
	if err := e.player.Start(); err != nil {
		m.logger.Warn("animation start failed", "key", key, "error", err)
		return false
	}
	return true
}

// Play starts the player under key, first registering build() if the key is
// empty. The lookup, registration and start happen atomically.
func (m *Manager) Play(key string, build func() Player) (Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok || e.player == nil {
		e = entry{player: build()}
		m.entries[key] = e
	}
	if err := e.player.Start(); err != nil {
		m.logger.Warn("animation start failed", "key", key, "error", err)
		return e.player, err
	}
	return e.player, nil
}

// Stop stops the player under key. It returns false when the key is absent
// or holds a factory.
func (m *Manager) Stop(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok || e.player == nil {
		return false
	}
	e.player.Stop()
	return true
}

// Remove stops and unregisters key.
func (m *Manager) Remove(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return false
	}
	if e.player != nil {
		e.player.Stop()
	}
	delete(m.entries, key)
	return true
}

// StopAll stops every registered player. Entries stay registered.
func (m *Manager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.player != nil {
			e.player.Stop()
		}
	}
}

// Get returns the player registered under key.
func (m *Manager) Get(key string) (Player, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok || e.player == nil {
		return nil, false
	}
	return e.player, true
}

// Factory returns the factory registered under key.
func (m *Manager) Factory(key string) (Factory, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok || e.factory == nil {
		return nil, false
	}
	return e.factory, true
}

// Animating returns the keys whose players are running, sorted.
func (m *Manager) Animating() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var keys []string
	for k, e := range m.entries {
		if e.player != nil && e.player.Animating() {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Keys returns every registered key, sorted.
func (m *Manager) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of registered entries.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
