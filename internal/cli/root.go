// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

// globalOptions are the persistent flags and what they set up.
type globalOptions struct {
	logFile string
	debug   bool

	logger *slog.Logger
	closer io.Closer
}

func (g *globalOptions) setup(cmd *cobra.Command) error {
	configureColors()
	logger, closer, err := newLogger(g.logFile, g.debug, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	g.logger, g.closer = logger, closer
	slog.SetDefault(logger)
	logger.Debug("command starting", "command", cmd.CommandPath(), "version", Version)
	return nil
}

func (g *globalOptions) teardown() {
	if g.closer != nil {
		g.closer.Close()
		g.closer = nil
	}
}

// NewRootCmd builds the textshell command tree.
func NewRootCmd() *cobra.Command {
	g := &globalOptions{}
	root := &cobra.Command{
		Use:           "textshell",
		Short:         "Terminal editor animation engine",
		Long:          "textshell drives the micro-animations of a terminal text editor.\nRun 'textshell preview' to try every animation interactively.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			g.teardown()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&g.logFile, "log-file", "", `log file path, "-" for stderr (default ~/.textshell/textshell.log)`)
	flags.BoolVar(&g.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newPreviewCmd(g),
		newConfigCmd(g),
		newEaseCmd(g),
	)
	return root
}

// Execute runs the command tree against os.Args and returns the exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		DisplayError(root.ErrOrStderr(), err)
		return GetExitCode(err)
	}
	return ExitSuccess
}
