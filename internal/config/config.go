// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/textshell/internal/anim"
	"github.com/jeranaias/textshell/internal/util"
)

// ErrUnknownEasing is reported through validation for unrecognized easing
// names. It is the same sentinel anim.ParseEasing returns.
var ErrUnknownEasing = anim.ErrUnknownEasing

// ErrUnknownRecipe is reported through validation for override keys that do
// not name a recipe.
var ErrUnknownRecipe = errors.New("unknown animation recipe")

// Recipes lists the recipe names accepted in [animations.durations] and
// [animations.easing].
var Recipes = []string{
	"button_press",
	"toggle",
	"panel_focus",
	"notification",
	"tab_flash",
	"tab_transition",
	"panel_fade",
	"cursor_blink",
	"search_result",
	"search_nav",
	"completion_popup",
	"completion_select",
	"tooltip",
	"panel_slide",
	"notification_pop",
}

// Validation bounds.
const (
	MinMaxSteps   = 1
	MaxMaxSteps   = 240
	MinDuration   = 10 * time.Millisecond
	MaxDuration   = 10 * time.Second
	MinRedrawFPS  = 1
	MaxRedrawFPS  = 240
	MinPulseCount = 1
	MaxPulseCount = 20
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete textshell configuration.
type Config struct {
	Version string `toml:"version"`

	// Animations configures the micro-animation engine.
	Animations AnimationConfig `toml:"animations"`

	// UI configures the editor display.
	UI UIConfig `toml:"ui"`
}

// AnimationConfig is the [animations] table.
type AnimationConfig struct {
	// Enabled turns every recipe into a no-op when false.
	Enabled bool `toml:"enabled"`
	// MaxSteps is the frame count used by recipes without their own.
	MaxSteps int `toml:"max_steps"`
	// DefaultDuration is the run time used by recipes without their own.
	DefaultDuration Duration `toml:"default_duration"`
	// RedrawFPS caps how often animation frames trigger a render.
	RedrawFPS int `toml:"redraw_fps"`
	// PulseCount is the number of notification pulses.
	PulseCount int `toml:"pulse_count"`
	// CursorBlinkRate is one full on/off cursor cycle.
	CursorBlinkRate Duration `toml:"cursor_blink_rate"`
	// Durations overrides a recipe's run time, keyed by recipe name.
	Durations map[string]Duration `toml:"durations,omitempty"`
	// Easing overrides a recipe's easing, keyed by recipe name.
	Easing map[string]string `toml:"easing,omitempty"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "auto", "dark", "light"
	Theme string `toml:"theme"`
	// ShowLineNumbers shows the gutter in the editor view.
	ShowLineNumbers bool `toml:"show_line_numbers"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1",
		Animations: AnimationConfig{
			Enabled:         true,
			MaxSteps:        anim.DefaultMaxSteps,
			DefaultDuration: D(anim.DefaultDuration),
			RedrawFPS:       60,
			PulseCount:      3,
			CursorBlinkRate: D(530 * time.Millisecond),
		},
		UI: UIConfig{
			Theme:           "auto",
			ShowLineNumbers: true,
		},
	}
}

// DurationFor returns the configured duration for recipe, or fallback when
// there is no override.
func (a AnimationConfig) DurationFor(recipe string, fallback time.Duration) time.Duration {
	if d, ok := a.Durations[recipe]; ok && d.Duration > 0 {
		return d.Duration
	}
	return fallback
}

// EasingFor returns the configured easing for recipe, or fallback when there
// is no override or the override does not parse.
func (a AnimationConfig) EasingFor(recipe string, fallback anim.Easing) anim.Easing {
	name, ok := a.Easing[recipe]
	if !ok {
		return fallback
	}
	e, err := anim.ParseEasing(name)
	if err != nil {
		return fallback
	}
	return e
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the textshell configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".textshell"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads ~/.textshell/config.toml, falling back to defaults when the
// file does not exist. Environment overrides are applied last.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		cfg := Default()
		return finish(cfg)
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific file with full
// validation. Keys missing from the file keep their default values.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	return finish(cfg)
}

// LoadTOML decodes the TOML file at path over cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// Parse decodes TOML text over the defaults and validates the result. It
// does not apply environment overrides.
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode TOML: %w", err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// Encode renders cfg as TOML with the file header.
func Encode(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# textshell configuration file")
	fmt.Fprintln(&buf, "# Generated by textshell - edit with care")
	fmt.Fprintln(&buf, "")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveTOML writes cfg to path atomically.
// SECURITY: config files are created 0600 (owner read/write only).
func SaveTOML(cfg *Config, path string) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	if err := util.AtomicWriteFileWithDir(path, data, 0600, 0700); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap returns the sentinel behind the error, if any.
func (e ValidationError) Unwrap() error { return e.Err }

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes every error to errors.Is and errors.As.
func (e ValidateErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, v := range e {
		errs[i] = v
	}
	return errs
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors
	a := c.Animations

	if a.MaxSteps < MinMaxSteps || a.MaxSteps > MaxMaxSteps {
		errs = append(errs, ValidationError{
			Field:   "animations.max_steps",
			Message: fmt.Sprintf("%d out of range, must be %d-%d", a.MaxSteps, MinMaxSteps, MaxMaxSteps),
		})
	}
	if a.RedrawFPS < MinRedrawFPS || a.RedrawFPS > MaxRedrawFPS {
		errs = append(errs, ValidationError{
			Field:   "animations.redraw_fps",
			Message: fmt.Sprintf("%d out of range, must be %d-%d", a.RedrawFPS, MinRedrawFPS, MaxRedrawFPS),
		})
	}
	if a.PulseCount < MinPulseCount || a.PulseCount > MaxPulseCount {
		errs = append(errs, ValidationError{
			Field:   "animations.pulse_count",
			Message: fmt.Sprintf("%d out of range, must be %d-%d", a.PulseCount, MinPulseCount, MaxPulseCount),
		})
	}
	errs = appendDurationError(errs, "animations.default_duration", a.DefaultDuration.Duration)
	errs = appendDurationError(errs, "animations.cursor_blink_rate", a.CursorBlinkRate.Duration)

	for _, name := range sortedKeys(a.Durations) {
		field := "animations.durations." + name
		if !isRecipe(name) {
			errs = append(errs, unknownRecipe(field, name))
			continue
		}
		errs = appendDurationError(errs, field, a.Durations[name].Duration)
	}

	for _, name := range sortedKeys(a.Easing) {
		field := "animations.easing." + name
		if !isRecipe(name) {
			errs = append(errs, unknownRecipe(field, name))
			continue
		}
		if _, err := anim.ParseEasing(a.Easing[name]); err != nil {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("unknown easing '%s', must be one of: %s", a.Easing[name], easingNames()),
				Err:     ErrUnknownEasing,
			})
		}
	}

	validThemes := map[string]bool{"auto": true, "dark": true, "light": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: auto, dark, light", c.UI.Theme),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func appendDurationError(errs ValidateErrors, field string, d time.Duration) ValidateErrors {
	if d < MinDuration || d > MaxDuration {
		errs = append(errs, ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s out of range, must be %s-%s", d, MinDuration, MaxDuration),
		})
	}
	return errs
}

func unknownRecipe(field, name string) ValidationError {
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf("unknown recipe '%s'", name),
		Err:     ErrUnknownRecipe,
	}
}

func isRecipe(name string) bool {
	for _, r := range Recipes {
		if r == name {
			return true
		}
	}
	return false
}

func easingNames() string {
	kinds := anim.Easings()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SetDefaults fills zero-value fields with defaults. Enabled and
// ShowLineNumbers are left alone since false is a valid choice.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.Animations.MaxSteps == 0 {
		c.Animations.MaxSteps = defaults.Animations.MaxSteps
	}
	if c.Animations.DefaultDuration.Duration == 0 {
		c.Animations.DefaultDuration = defaults.Animations.DefaultDuration
	}
	if c.Animations.RedrawFPS == 0 {
		c.Animations.RedrawFPS = defaults.Animations.RedrawFPS
	}
	if c.Animations.PulseCount == 0 {
		c.Animations.PulseCount = defaults.Animations.PulseCount
	}
	if c.Animations.CursorBlinkRate.Duration == 0 {
		c.Animations.CursorBlinkRate = defaults.Animations.CursorBlinkRate
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	c.UI.Theme = strings.ToLower(c.UI.Theme)
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - TEXTSHELL_ANIMATIONS: "0", "false" or "off" disables animations;
//     "1", "true" or "on" enables them
//   - TEXTSHELL_REDRAW_FPS: overrides animations.redraw_fps
//   - TEXTSHELL_THEME: overrides ui.theme
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("TEXTSHELL_ANIMATIONS"); v != "" {
		switch strings.ToLower(v) {
		case "0", "false", "off", "no":
			c.Animations.Enabled = false
		case "1", "true", "on", "yes":
			c.Animations.Enabled = true
		}
	}

	if v := os.Getenv("TEXTSHELL_REDRAW_FPS"); v != "" {
		if fps, err := strconv.Atoi(v); err == nil {
			c.Animations.RedrawFPS = fps
		}
	}

	if v := os.Getenv("TEXTSHELL_THEME"); v != "" {
		c.UI.Theme = v
	}
}

// =============================================================================
// COPY
// =============================================================================

// Clone creates a deep copy of the configuration. Watchers hand clones to
// subscribers so no two goroutines share the override maps.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Animations.Durations != nil {
		clone.Animations.Durations = make(map[string]Duration, len(c.Animations.Durations))
		for k, v := range c.Animations.Durations {
			clone.Animations.Durations[k] = v
		}
	}
	if c.Animations.Easing != nil {
		clone.Animations.Easing = make(map[string]string, len(c.Animations.Easing))
		for k, v := range c.Animations.Easing {
			clone.Animations.Easing[k] = v
		}
	}
	return &clone
}

// String returns the configuration as TOML.
func (c *Config) String() string {
	data, err := Encode(c)
	if err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return string(data)
}
