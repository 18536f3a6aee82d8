// Package ui runs the toast stage against the terminal.
package ui

import (
	"context"

	"tableflip.dev/toast/pkg/config"
	"tableflip.dev/toast/pkg/toast"
	"tableflip.dev/toast/pkg/tui/stage"
)

const (
	marginX = 2
	marginY = 1
)

// Show displays a single toast and exits once it has been dismissed.
type Show struct {
	Config  *config.Config
	Request toast.Request
}

// Do runs the stage until the toast is removed.
func (s *Show) Do(ctx context.Context) error {
	return run(ctx, s.Config, stage.Options{
		Template:      s.Request,
		Initial:       []toast.Request{s.Request},
		QuitWhenEmpty: true,
	})
}

func run(ctx context.Context, cfg *config.Config, opts stage.Options) error {
	logger, closer, err := stage.OpenLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	th := cfg.Theme()
	opts.Theme = &th
	opts.Toast = cfg.ToastOptions()
	opts.Logger = logger
	opts.MarginX = marginX
	opts.MarginY = marginY

	logger.Info("stage starting", "interactive", opts.Interactive, "toasts", len(opts.Initial))
	err = stage.Run(ctx, stage.New(opts))
	logger.Info("stage stopped", "error", err)
	return err
}
