package toastview

import (
	"fmt"
	"image/color"
	"math"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/toast/pkg/glyph"
	"tableflip.dev/toast/pkg/toast"
	"tableflip.dev/toast/pkg/tui/ui"
	"tableflip.dev/toast/pkg/tui/ui/overlay"
)

// Presentation is the computed transform of a toast: a translation along
// Axis and an opacity.
type Presentation struct {
	Axis      toast.Axis
	Translate float64
	Opacity   float64
}

// Shift converts the translation to whole cells.
func (p Presentation) Shift(metrics Metrics) (dx, dy int) {
	metrics = metrics.normalized()
	if p.Axis == toast.AxisVertical {
		return 0, int(math.Round(p.Translate / float64(metrics.CellHeight)))
	}
	return int(math.Round(p.Translate / float64(metrics.CellWidth))), 0
}

func (p Presentation) String() string {
	fn := "translateX"
	if p.Axis == toast.AxisVertical {
		fn = "translateY"
	}
	return fmt.Sprintf("%s(%gpx) opacity(%.2f)", fn, p.Translate, p.Opacity)
}

// Presentation returns the current transform. Before entry the toast sits
// at its initial offset; afterwards it follows the drag offset.
func (m *Model) Presentation() Presentation {
	translate := m.state.Offset
	if m.state.Phase == PhaseEntering {
		translate = m.req.Position.InitialOffset()
	}
	return Presentation{
		Axis:      m.req.Position.Axis(),
		Translate: translate,
		Opacity:   m.state.Opacity,
	}
}

// Metrics returns the cell-to-pixel conversion in use.
func (m *Model) Metrics() Metrics { return m.metrics }

// Placement maps the toast's anchor to an overlay placement, including
// the current shift.
func (m *Model) Placement(marginX, marginY int) overlay.Placement {
	p := PlacementFor(m.req.Position, marginX, marginY)
	p.ShiftX, p.ShiftY = m.Presentation().Shift(m.metrics)
	return p
}

// PlacementFor maps an anchor to an overlay placement at rest. Unknown
// anchors rest at the top right.
func PlacementFor(pos toast.Position, marginX, marginY int) overlay.Placement {
	p := overlay.Placement{MarginX: marginX, MarginY: marginY}
	switch pos {
	case toast.PositionTopLeft:
		p.Horizontal, p.Vertical = lipgloss.Left, lipgloss.Top
	case toast.PositionTopCenter:
		p.Horizontal, p.Vertical = lipgloss.Center, lipgloss.Top
	case toast.PositionBottomLeft:
		p.Horizontal, p.Vertical = lipgloss.Left, lipgloss.Bottom
	case toast.PositionBottomCenter:
		p.Horizontal, p.Vertical = lipgloss.Center, lipgloss.Bottom
	case toast.PositionBottomRight:
		p.Horizontal, p.Vertical = lipgloss.Right, lipgloss.Bottom
	default:
		p.Horizontal, p.Vertical = lipgloss.Right, lipgloss.Top
	}
	return p
}

// SetOrigin records the resting top-left cell the host draws the toast at.
// Pointer positions are screen cells relative to the same origin.
func (m *Model) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

// SetSize sets the box width in cells. The height follows the content.
func (m *Model) SetSize(width, _ int) {
	if width <= 0 {
		width = DefaultWidth
	}
	if width < minWidth {
		width = minWidth
	}
	m.width = width
	m.geom = m.measure()
}

// Size returns the rendered box size in cells.
func (m *Model) Size() (int, int) { return m.geom.width, m.geom.height }

// Contains reports whether the screen cell is over the toast as currently
// displaced.
func (m *Model) Contains(x, y int) bool {
	return m.hitTest(x, y) != targetNone
}

// View renders the box with every color faded toward the backdrop by the
// current opacity. A fully transparent toast renders nothing.
func (m *Model) View() string {
	if m.disposed || m.state.Opacity <= 0 {
		return ""
	}
	return m.render(m.state.Opacity)
}

type geometry struct {
	width  int
	height int
	close  ui.HitRegion
}

func (m *Model) measure() geometry {
	box := m.render(1)
	g := geometry{
		width:  lipgloss.Width(box),
		height: lipgloss.Height(box),
	}
	frame := m.theme.Frame
	closeWidth := lipgloss.Width(glyph.Close().Symbol)
	closeX := g.width - frame.GetBorderRightSize() - frame.GetPaddingRight() - closeWidth
	closeY := frame.GetBorderTopSize() + frame.GetPaddingTop()
	// One cell of slack on each side makes the control easier to hit.
	g.close = ui.HitRegion{X: closeX - 1, Y: closeY, Width: closeWidth + 2, Height: 1}
	return g
}

func (m *Model) hitTest(x, y int) target {
	if m.disposed {
		return targetNone
	}
	dx, dy := m.Presentation().Shift(m.metrics)
	lx := x - m.originX - dx
	ly := y - m.originY - dy
	body := ui.HitRegion{Width: m.geom.width, Height: m.geom.height}
	if !body.Contains(lx, ly) {
		return targetNone
	}
	if m.geom.close.Contains(lx, ly) {
		return targetClose
	}
	return targetBody
}

func (m *Model) contentWidth() int {
	iconWidth := lipgloss.Width(glyph.ForKind(m.req.Kind).Symbol)
	closeWidth := lipgloss.Width(glyph.Close().Symbol)
	w := m.width - m.theme.Frame.GetHorizontalFrameSize() - iconWidth - closeWidth - 2
	return max(w, 1)
}

func (m *Model) render(opacity float64) string {
	icon := glyph.ForKind(m.req.Kind)
	accent := m.fade(icon.Color, opacity)
	text := m.fade(m.theme.Text, opacity)
	muted := m.fade(m.theme.Muted, opacity)

	width := m.contentWidth()
	var lines []string
	if m.req.Title != "" {
		lines = append(lines, m.theme.Title.Foreground(text).Render(wordwrap.String(m.req.Title, width)))
	}
	if m.req.Description != "" {
		lines = append(lines, m.theme.Description.Foreground(muted).Render(wordwrap.String(m.req.Description, width)))
	}
	content := lipgloss.NewStyle().Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Foreground(accent).Render(icon.Symbol),
		" ",
		content,
		" ",
		m.theme.Close.Foreground(muted).Render(glyph.Close().Symbol),
	)
	return m.theme.Frame.BorderForeground(accent).Render(body)
}

// fade blends hex toward the backdrop. Unparseable colors pass through.
func (m *Model) fade(hex string, opacity float64) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return lipgloss.Color(hex)
	}
	bg, err := colorful.Hex(m.theme.Backdrop)
	if err != nil || opacity >= 1 {
		return lipgloss.Color(c.Hex())
	}
	return lipgloss.Color(bg.BlendRgb(c, math.Max(0, opacity)).Clamped().Hex())
}
