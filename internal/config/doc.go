// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for textshell.
//
// Configuration is TOML, with sensible defaults, environment variable
// overrides, validation and hot reload.
//
// # Key Types
//
//   - Config: main configuration structure
//   - AnimationConfig: the [animations] table consumed by the micro-animation
//     recipes (enable switch, frame count, durations, easing overrides)
//   - UIConfig: theme and editor display settings
//   - Watcher: fsnotify-based reloader delivering each new Config
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (TEXTSHELL_*)
//   - ~/.textshell/config.toml
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	d := cfg.Animations.DurationFor("button_press", 150*time.Millisecond)
package config
