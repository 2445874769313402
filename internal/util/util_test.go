// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ATOMIC WRITE TESTS
// =============================================================================

func TestAtomicWriteFile_Basic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, AtomicWriteFile(path, []byte("enabled = true\n"), 0600))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "enabled = true\n", string(got))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}
}

func TestAtomicWriteFile_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".textshell", "deep", "config.toml")
	require.NoError(t, AtomicWriteFile(path, []byte("x"), 0644))
	assert.FileExists(t, path)
}

func TestAtomicWriteFile_OverwritesWithoutLeftovers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, AtomicWriteFile(path, []byte("first"), 0644))
	require.NoError(t, AtomicWriteFile(path, []byte("second"), 0644))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are cleaned up")
}

func TestAtomicWriteFile_FailedReplaceCleansUp(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "config.toml")
	require.NoError(t, os.Mkdir(target, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), []byte("x"), 0644))

	require.Error(t, AtomicWriteFile(target, []byte("data"), 0644))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "only the directory in the way remains")
}

func TestAtomicWriteFileWithDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("directory permissions are not enforced on windows")
	}
	dir := filepath.Join(t.TempDir(), "private")
	path := filepath.Join(dir, "state")
	require.NoError(t, AtomicWriteFileWithDir(path, []byte("x"), 0600, 0700))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

// =============================================================================
// FLOAT64 TESTS
// =============================================================================

func TestFloat64(t *testing.T) {
	var f Float64
	assert.Equal(t, 0.0, f.Load())

	f.Store(0.75)
	assert.Equal(t, 0.75, f.Load())
	assert.Equal(t, 0.75, f.Swap(-1.5))
	assert.Equal(t, -1.5, f.Load())

	assert.Equal(t, 1.1, NewFloat64(1.1).Load())
}

func TestFloat64_Concurrent(t *testing.T) {
	f := NewFloat64(0)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(v float64) {
			defer wg.Done()
			f.Store(v)
		}(float64(i))
		go func() {
			defer wg.Done()
			v := f.Load()
			assert.True(t, v >= 0 && v < 20)
		}()
	}
	wg.Wait()
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.2))
	assert.Equal(t, 0.4, Clamp01(0.4))
	assert.Equal(t, 1.0, Clamp01(1.3))
}

// =============================================================================
// WIDTH TESTS
// =============================================================================

func TestTruncateWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"fits", "Files", 10, "Files"},
		{"exact", "Files", 5, "Files"},
		{"ellipsis", "hello world", 8, "hello..."},
		{"narrow", "hello", 2, "he"},
		{"zero", "hello", 0, ""},
		{"cjk", "日本語テキスト", 7, "日本..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateWidth(tt.input, tt.width)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, StringWidth(got), max(tt.width, 0))
		})
	}
}

func TestPadWidth(t *testing.T) {
	assert.Equal(t, "ab   ", PadWidth("ab", 5))
	assert.Equal(t, "日本 ", PadWidth("日本", 5))
	assert.Equal(t, "toolong", PadWidth("toolong", 3))
	assert.Equal(t, 4, StringWidth("日本"))
}
