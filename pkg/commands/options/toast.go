package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/toast/pkg/toast"
)

// ToastOptions
type ToastOptions struct {
	Title        string
	Description  string
	Kind         string
	Position     string
	CloseOnClick bool
	Draggable    bool
}

func AddToastArgs(cmd *cobra.Command, o *ToastOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"Headline text.")
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Secondary text shown under the title.")
	cmd.Flags().StringVarP(&o.Kind, "kind", "k", "",
		`One of "success", "error", "info", "warning" or "default".`)
	cmd.Flags().StringVarP(&o.Position, "position", "p", "",
		`Screen anchor, example: --position="bottom-center".`)
	cmd.Flags().BoolVar(&o.CloseOnClick, "close-on-click", true,
		"Dismiss when the body is clicked.")
	cmd.Flags().BoolVar(&o.Draggable, "draggable", true,
		"Allow swipe to dismiss.")
}

// Apply overlays the flags the user set on req. Unset flags keep the
// configured defaults.
func (o *ToastOptions) Apply(cmd *cobra.Command, req toast.Request) (toast.Request, error) {
	flags := cmd.Flags()
	if o.Title != "" {
		req.Title = o.Title
	}
	if o.Description != "" {
		req.Description = o.Description
	}
	if flags.Changed("kind") {
		kind, err := toast.ParseKind(o.Kind)
		if err != nil {
			return req, err
		}
		req.Kind = kind
	}
	if flags.Changed("position") {
		pos, err := toast.ParsePosition(o.Position)
		if err != nil {
			return req, err
		}
		req.Position = pos
	}
	if flags.Changed("close-on-click") {
		req.CloseOnClick = o.CloseOnClick
	}
	if flags.Changed("draggable") {
		req.Draggable = o.Draggable
	}
	return req, nil
}
