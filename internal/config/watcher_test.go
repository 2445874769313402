// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, SaveTOML(Default(), path))

	var mu sync.Mutex
	var got []*Config
	w, err := NewWatcher(path, func(c *Config) {
		mu.Lock()
		got = append(got, c)
		mu.Unlock()
	}, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, w.Watch())
	defer w.Close()

	cfg := Default()
	cfg.Animations.PulseCount = 7
	require.NoError(t, SaveTOML(cfg, path))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) > 0 && got[len(got)-1].Animations.PulseCount == 7
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWatcher_ReportsInvalidFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, SaveTOML(Default(), path))

	changes := make(chan *Config, 4)
	errs := make(chan error, 4)
	w, err := NewWatcher(path, func(c *Config) { changes <- c },
		WithDebounce(20*time.Millisecond),
		WithErrorHandler(func(err error) { errs <- err }))
	require.NoError(t, err)
	require.NoError(t, w.Watch())
	defer w.Close()

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1"), 0600))
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"neon\"\n"), 0600))

	select {
	case err := <-errs:
		assert.Contains(t, err.Error(), "ui.theme")
	case <-time.After(5 * time.Second):
		t.Fatal("no reload error reported")
	}
	assert.Empty(t, changes)
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	require.NoError(t, w.Watch())
	assert.Equal(t, path, w.Path())

	require.NoError(t, w.Close())
	assert.NotPanics(t, func() { _ = w.Close() })
}
