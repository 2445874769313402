// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jeranaias/textshell/internal/config"
	"github.com/jeranaias/textshell/internal/ui/preview"
)

func newPreviewCmd(g *globalOptions) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Run the interactive animation preview",
		Long:  "Opens a full-screen preview with one of every animated component.\nThe config file is watched and changes apply without restarting.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := RequiresTTY("run the preview"); err != nil {
				return err
			}
			width, height := GetTerminalSize()
			if width < MinTerminalWidth {
				return &UsageError{Field: "terminal width", Value: strconv.Itoa(width), Reason: fmt.Sprintf("the preview needs at least %d columns", MinTerminalWidth)}
			}
			cfg, resolved, err := loadConfig(path)
			if err != nil {
				return err
			}
			return preview.Run(cmd.Context(), cfg, preview.Options{
				ConfigPath: resolved,
				Logger:     g.logger,
				Width:      width,
				Height:     height,
			})
		},
	}
	cmd.Flags().StringVar(&path, "config", "", "config file (default ~/.textshell/config.toml)")
	return cmd
}

// loadConfig loads path, or the default location when path is empty, and
// returns the path it resolved to.
func loadConfig(path string) (*config.Config, string, error) {
	if path != "" {
		cfg, err := config.LoadFromPath(path)
		return cfg, path, err
	}
	resolved, err := config.ConfigPath()
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.Load()
	return cfg, resolved, err
}
