package ui

import (
	"context"

	"tableflip.dev/toast/pkg/config"
	"tableflip.dev/toast/pkg/toast"
	"tableflip.dev/toast/pkg/tui/stage"
)

// Demo is an interactive playground: keys spawn toasts of each kind at the
// current anchor.
type Demo struct {
	Config   *config.Config
	Template toast.Request
}

// Do runs the stage until the user quits.
func (d *Demo) Do(ctx context.Context) error {
	return run(ctx, d.Config, stage.Options{
		Template:    d.Template,
		Interactive: true,
	})
}
