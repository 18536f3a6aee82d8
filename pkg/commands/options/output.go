package options

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/toast/pkg/toast"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
	// Out defaults to color.Output.
	Out io.Writer
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

// HandleError reports err as a JSON object when --json is set and swallows
// it, so scripted callers always get parseable output.
func (o *OutputOptions) HandleError(err error) error {
	if !o.JSON || err == nil {
		return err
	}
	out := map[string]string{
		"error": err.Error(),
	}
	if code := errorCode(err); code != "" {
		out["code"] = code
	}
	b, err := json.Marshal(out)
	if err != nil {
		return err
	}
	w := o.Out
	if w == nil {
		w = color.Output
	}
	_, _ = fmt.Fprintln(w, string(b))
	return nil
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, toast.ErrUnknownKind):
		return "unknown_kind"
	case errors.Is(err, toast.ErrUnknownPosition):
		return "unknown_position"
	}
	return ""
}
