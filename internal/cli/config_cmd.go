// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeranaias/textshell/internal/config"
)

func newConfigCmd(g *globalOptions) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.PersistentFlags().StringVar(&path, "config", "", "config file (default ~/.textshell/config.toml)")

	resolve := func() (string, error) {
		if path != "" {
			return path, nil
		}
		return config.ConfigPath()
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := resolve()
			if err != nil {
				return err
			}
			if _, err := os.Stat(p); err == nil && !force {
				return NewCommandError("config", "init", p+" already exists (use --force to overwrite)", nil)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return NewCommandError("config", "init", "stat "+p, err)
			}
			if err := config.SaveTOML(config.Default(), p); err != nil {
				return NewCommandError("config", "init", "write "+p, err)
			}
			g.logger.Info("config written", "path", p)
			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("wrote")+" "+p)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := loadConfig(path)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), cfg.String())
			return nil
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := resolve()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd, pathCmd)
	return cmd
}
