package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/toast/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the resolved configuration and where it was read from.",
		Example: `
toast info
TOAST_CONFIG_PATH=~/dotfiles toast info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s := info.Info{}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
