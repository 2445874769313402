// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/jeranaias/textshell/internal/anim"
	"github.com/jeranaias/textshell/internal/config"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates configuration file or settings error
	ExitConfigError = 3
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// CommandError represents a CLI command error with context.
type CommandError struct {
	Command string // Command that failed (e.g., "config")
	Action  string // Action being performed (e.g., "init")
	Reason  string // Human-readable reason
	Err     error  // Underlying error (if any)
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s failed: %s: %v", e.Command, e.Action, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %s", e.Command, e.Action, e.Reason)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// UsageError represents a flag or argument the user got wrong.
type UsageError struct {
	Field  string
	Value  string
	Reason string
}

func (e *UsageError) Error() string {
	msg := fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	if e.Value != "" {
		msg += fmt.Sprintf(" (got: %s)", e.Value)
	}
	return msg
}

// NewCommandError creates a new command error.
func NewCommandError(command, action, reason string, err error) error {
	return &CommandError{Command: command, Action: action, Reason: reason, Err: err}
}

// =============================================================================
// ERROR DISPLAY
// =============================================================================

// DisplayError prints err to w.
func DisplayError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(w, ErrorStyle.Render("Error:")+" "+err.Error())
}

// GetExitCode determines the appropriate exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Config errors may wrap an easing error, so they are checked first.
	var fieldErr config.ValidationError
	var fieldErrs config.ValidateErrors
	if errors.As(err, &fieldErr) || errors.As(err, &fieldErrs) || errors.Is(err, config.ErrUnknownRecipe) {
		return ExitConfigError
	}

	var usageErr *UsageError
	var ttyErr *TTYRequiredError
	if errors.As(err, &usageErr) || errors.As(err, &ttyErr) || errors.Is(err, anim.ErrUnknownEasing) {
		return ExitUsageError
	}

	return ExitGeneralError
}
