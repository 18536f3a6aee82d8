package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/toast/pkg/commands/options"
	"tableflip.dev/toast/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "key",
		Aliases: []string{"legend"},
		Short:   "Print the toast kinds and screen anchors",
		Example: `
toast key
toast key --json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{JSON: output.JSON}
			err := k.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
