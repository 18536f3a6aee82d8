package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/toast/pkg/commands/options"
	"tableflip.dev/toast/pkg/config"
	"tableflip.dev/toast/pkg/runner/ui"
)

func addShow(topLevel *cobra.Command) {
	to := &options.ToastOptions{}

	cmd := &cobra.Command{
		Use:   "show [title]",
		Short: "Show a single toast and exit once it is dismissed.",
		Example: `
toast show "Deployed" --kind success
toast show -t "Disk almost full" -d "92% used on /var" -k warning -p bottom-center
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) == 1 && to.Title == "" {
				to.Title = args[0]
			}
			if to.Title == "" && to.Description == "" {
				return errors.New("show: a title or a description is required")
			}
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
			s := ui.Show{Config: cfg, Request: req}
			return s.Do(context.Background())
		},
	}

	options.AddToastArgs(cmd, to)
	topLevel.AddCommand(cmd)
}
