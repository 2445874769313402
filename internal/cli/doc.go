// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the textshell command tree.
//
// # Commands
//
//   - preview: interactive Bubble Tea preview of every animation recipe
//   - config init|show|path: manage ~/.textshell/config.toml
//   - ease [kind]: print sampled easing curves for tuning
//
// Global flags --log-file and --debug configure the slog handler. The TUI
// owns the terminal, so logs go to a file unless --log-file=- sends them,
// colorized, to stderr.
package cli
