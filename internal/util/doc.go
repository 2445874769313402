// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the textshell packages.
//
// # Key Functions
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync and rename
//
// Animated State:
//   - Float64: lock-free float64 cell written by animation frames and read
//     by the render path
//
// Display Width:
//   - TruncateWidth, PadWidth, StringWidth: column-aware helpers built on
//     go-runewidth for fixed-width tab labels and popup rows
//
// # Usage
//
//	var opacity util.Float64
//	opacity.Store(0.5)
//	label := util.PadWidth(util.TruncateWidth(title, 12), 12)
package util
