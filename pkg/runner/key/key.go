// Package key provides CLI helpers to display the toast legend.
package key

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/toast/pkg/glyph"
	"tableflip.dev/toast/pkg/toast"
)

// Key prints the kind icons and the motion of each anchor.
type Key struct {
	JSON bool
	Out  io.Writer
}

// KindRow describes one kind in the legend.
type KindRow struct {
	Kind   string `json:"kind"`
	Symbol string `json:"symbol"`
	Icon   string `json:"icon"`
	Color  string `json:"color"`
}

// PositionRow describes one anchor in the legend.
type PositionRow struct {
	Position string  `json:"position"`
	Axis     string  `json:"axis"`
	Initial  float64 `json:"initialOffset"`
	Exit     float64 `json:"exitOffset"`
}

var kindColors = map[toast.Kind]color.Attribute{
	toast.KindSuccess: color.FgGreen,
	toast.KindError:   color.FgRed,
	toast.KindInfo:    color.FgBlue,
	toast.KindWarning: color.FgYellow,
	toast.KindDefault: color.FgHiBlack,
}

// Do renders the legend.
func (k *Key) Do(ctx context.Context) error {
	if k.Out == nil {
		k.Out = color.Output
	}
	kinds, positions := Rows()
	if k.JSON {
		b, err := json.MarshalIndent(map[string]any{
			"kinds":     kinds,
			"positions": positions,
		}, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(k.Out, string(b))
		return err
	}

	_, _ = fmt.Fprintln(k.Out, "")
	k.Kinds(ctx, kinds)
	_, _ = fmt.Fprintln(k.Out, "")
	k.Positions(ctx, positions)
	_, _ = fmt.Fprintln(k.Out, "")
	return nil
}

// Rows returns the legend contents.
func Rows() ([]KindRow, []PositionRow) {
	kinds := make([]KindRow, 0, len(toast.AllKinds()))
	for _, kind := range toast.AllKinds() {
		g := glyph.ForKind(kind)
		kinds = append(kinds, KindRow{
			Kind:   string(kind),
			Symbol: g.Symbol,
			Icon:   g.Meaning,
			Color:  g.Color,
		})
	}
	positions := make([]PositionRow, 0, len(toast.AllPositions()))
	for _, p := range toast.AllPositions() {
		positions = append(positions, PositionRow{
			Position: string(p),
			Axis:     p.Axis().String(),
			Initial:  p.InitialOffset(),
			Exit:     p.ExitOffset(),
		})
	}
	return kinds, positions
}

// Kinds renders the kind table.
func (k *Key) Kinds(_ context.Context, rows []KindRow) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Icon"), bold.Sprint("Kind"), bold.Sprint("Color"))
	for _, r := range rows {
		c := color.New(kindColors[toast.Kind(r.Kind)])
		tbl.AddRow(c.Sprint(r.Symbol), r.Kind, r.Color)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(k.Out, tbl)
}

// Positions renders the anchor table.
func (k *Key) Positions(_ context.Context, rows []PositionRow) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Position"), bold.Sprint("Axis"), bold.Sprint("Enter"), bold.Sprint("Exit"))
	for _, r := range rows {
		tbl.AddRow(r.Position, r.Axis, fmt.Sprintf("%+.0fpx", r.Initial), fmt.Sprintf("%+.0fpx", r.Exit))
	}

	_, _ = fmt.Fprintln(k.Out, tbl)
}
