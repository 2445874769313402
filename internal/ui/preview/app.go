// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package preview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/jeranaias/textshell/internal/anim"
	"github.com/jeranaias/textshell/internal/config"
	"github.com/jeranaias/textshell/internal/micro"
	"github.com/jeranaias/textshell/internal/redraw"
	"github.com/jeranaias/textshell/internal/ui/styles"
)

// Options configure Run.
type Options struct {
	// ConfigPath is watched for changes when non-empty.
	ConfigPath string
	Logger     *slog.Logger
	// Width and Height size the first frame, before the program reports
	// the real window size.
	Width, Height int
	// ProgramOptions are appended to the defaults (alt screen, ctx).
	ProgramOptions []tea.ProgramOption
}

// Run wires a scheduler, manager, animator and redraw coalescer to a Bubble
// Tea program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, cfg *config.Config, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var program *tea.Program
	coal := redraw.New(cfg.Animations.RedrawFPS, func() {
		program.Send(RedrawMsg{})
	})

	sched := anim.NewScheduler(
		anim.WithDefaultRedraw(coal.Request),
		anim.WithSchedulerLogger(logger),
	)
	defer sched.Close()
	mgr := anim.NewManager(anim.WithManagerLogger(logger))
	animator := micro.New(sched, mgr, cfg.Animations, micro.WithLogger(logger))

	theme := styles.NewThemeFor(cfg.UI.Theme)
	if opts.Width > 0 && opts.Height > 0 {
		theme.SetSize(opts.Width, opts.Height)
	}
	model := New(Deps{
		Animator:  animator,
		Scheduler: sched,
		Coalescer: coal,
		Theme:     theme,
		Logger:    logger,

		LineNumbers: cfg.UI.ShowLineNumbers,
	})
	progOpts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts.ProgramOptions...)
	program = tea.NewProgram(model, progOpts...)

	if opts.ConfigPath != "" {
		w, err := config.NewWatcher(opts.ConfigPath,
			func(c *config.Config) { program.Send(ConfigMsg{Config: c}) },
			config.WithLogger(logger),
			config.WithErrorHandler(func(err error) { program.Send(ConfigErrorMsg{Err: err}) }),
		)
		if err == nil {
			err = w.Watch()
			defer w.Close()
		}
		if err != nil {
			logger.Warn("config hot reload disabled", "path", opts.ConfigPath, "error", err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return ignoreCanceled(sched.Run(gctx)) })
	g.Go(func() error { return ignoreCanceled(coal.Run(gctx)) })

	logger.Info("preview started", "fps", cfg.Animations.RedrawFPS, "enabled", cfg.Animations.Enabled)
	_, runErr := program.Run()

	animator.Shutdown()
	cancel()
	sched.Close()
	if err := g.Wait(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("preview: %w", runErr)
	}
	logger.Info("preview stopped", "frames", sched.Fired(), "panics", sched.Panics())
	return nil
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
