// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/lmittmann/tint"

	"github.com/jeranaias/textshell/internal/config"
)

// LogToStderr is the --log-file value that logs to stderr instead of a file.
const LogToStderr = "-"

// DefaultLogPath returns ~/.textshell/textshell.log.
func DefaultLogPath() (string, error) {
	dir, err := config.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "textshell.log"), nil
}

// newLogger builds the process logger. It writes colorized lines to stderr
// for LogToStderr and plain key=value lines to the log file otherwise. The
// file is opened by the first record; the returned closer releases it.
func newLogger(path string, debug bool, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	if path == LogToStderr {
		h := tint.NewHandler(stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    !IsStderrTTY(),
		})
		return slog.New(h), nopCloser{}, nil
	}

	if path == "" {
		p, err := DefaultLogPath()
		if err != nil {
			return nil, nil, err
		}
		path = p
	}
	f := &lazyFile{path: path}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(h), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// lazyFile creates and opens its log file on the first write, so commands
// that log nothing leave no file behind.
type lazyFile struct {
	path string

	mu  sync.Mutex
	f   *os.File
	err error
}

func (l *lazyFile) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil && l.err == nil {
		l.f, l.err = openLogFile(l.path)
	}
	if l.err != nil {
		return 0, l.err
	}
	return l.f.Write(p)
}

// Close closes the file if it was opened and reports a failed open.
func (l *lazyFile) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		return l.err
	}
	err := l.f.Close()
	l.f = nil
	return err
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
