package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/toast/pkg/commands/options"
	"tableflip.dev/toast/pkg/config"
	"tableflip.dev/toast/pkg/runner/ui"
)

func addDemo(topLevel *cobra.Command) {
	to := &options.ToastOptions{}

	cmd := &cobra.Command{
		Use:     "demo",
		Aliases: []string{"ui"},
		Short:   "Open an interactive playground that spawns toasts from the keyboard.",
		Example: `
toast demo
toast demo --position bottom-left --draggable=false
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			req, err := cfg.Request()
			if err != nil {
				return err
			}
			req, err = to.Apply(cmd, req)
			if err != nil {
				return err
			}
			d := ui.Demo{Config: cfg, Template: req}
			return d.Do(context.Background())
		},
	}

	options.AddToastArgs(cmd, to)
	topLevel.AddCommand(cmd)
}
