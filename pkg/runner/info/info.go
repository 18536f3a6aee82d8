package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/toast/pkg/config"
)

type Info struct {
	Config *config.Config
	Out    io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	if n.Out == nil {
		n.Out = color.Output
	}

	if override := os.Getenv("TOAST_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(n.Out, "TOAST_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(n.Out, "TOAST_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = config.Load()
		if err != nil {
			return err
		}
	}

	file := n.Config.File
	if file == "" {
		file = "none, using defaults"
	}
	_, _ = fmt.Fprintln(n.Out, "Config file:", file)
	_, _ = fmt.Fprintln(n.Out, "")

	c := n.Config
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Key"), bold.Sprint("Value"))
	tbl.AddRow("kind", c.Kind)
	tbl.AddRow("position", c.Position)
	tbl.AddRow("width", c.Width)
	tbl.AddRow("cell_width", c.CellWidth)
	tbl.AddRow("cell_height", c.CellHeight)
	tbl.AddRow("enter_delay", c.EnterDelay)
	tbl.AddRow("exit_delay", c.ExitDelay)
	tbl.AddRow("close_on_click", c.CloseOnClick)
	tbl.AddRow("draggable", c.Draggable)
	tbl.AddRow("backdrop", orUnset(c.Backdrop))
	tbl.AddRow("log_file", orUnset(c.LogFile))
	_, _ = fmt.Fprintln(n.Out, tbl)

	if _, err := c.Request(); err != nil {
		return err
	}
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
