package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Placement controls overlay alignment, sizing and displacement.
type Placement struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
	MarginX    int
	MarginY    int
	Width      int
	Height     int

	// ShiftX and ShiftY move the overlay away from its resting point. The
	// shifted overlay is clipped at the screen edges.
	ShiftX int
	ShiftY int
}

// Compose overlays the foreground view atop the background while preserving
// background content outside the overlay bounds.
func Compose(background string, width, height int, foreground string, placement Placement) string {
	bgLines := normalizeBackground(background, width, height)
	if foreground == "" {
		return strings.Join(bgLines, "\n")
	}

	fgLines := strings.Split(foreground, "\n")

	overlayWidth := placement.Width
	if overlayWidth <= 0 {
		for _, line := range fgLines {
			if w := lipgloss.Width(line); w > overlayWidth {
				overlayWidth = w
			}
		}
	}
	if overlayWidth <= 0 {
		return strings.Join(bgLines, "\n")
	}

	overlayHeight := placement.Height
	if overlayHeight <= 0 {
		overlayHeight = len(fgLines)
	}

	offsetX, offsetY := Origin(width, height, overlayWidth, overlayHeight, placement)
	offsetX += placement.ShiftX
	offsetY += placement.ShiftY

	// Visible column range of the overlay, in overlay-local cells.
	left := max(0, -offsetX)
	right := min(overlayWidth, width-offsetX)
	if left >= right {
		return strings.Join(bgLines, "\n")
	}

	for row := 0; row < overlayHeight; row++ {
		destY := offsetY + row
		if destY < 0 || destY >= len(bgLines) {
			continue
		}
		fgLine := ""
		if row < len(fgLines) {
			fgLine = fgLines[row]
		}
		fgLine = padToWidth(fgLine, overlayWidth)
		visible := ansi.TruncateLeft(ansi.Truncate(fgLine, right, ""), left, "")

		destX := offsetX + left
		baseLine := bgLines[destY]
		prefix := ansi.Truncate(baseLine, destX, "")
		suffix := ansi.TruncateLeft(baseLine, destX+right-left, "")
		bgLines[destY] = prefix + visible + suffix
	}

	return strings.Join(bgLines, "\n")
}

// Origin returns the resting top-left cell of an overlay of the given size,
// ignoring any shift. The zero Placement anchors at the top left, since
// lipgloss.Left and lipgloss.Top are both 0.
func Origin(width, height, overlayWidth, overlayHeight int, placement Placement) (int, int) {
	offsetX := placement.MarginX
	switch placement.Horizontal {
	case lipgloss.Right:
		offsetX = width - overlayWidth - placement.MarginX
	case lipgloss.Center:
		offsetX = (width - overlayWidth) / 2
	}
	if offsetX < 0 {
		offsetX = 0
	}
	if offsetX > width-overlayWidth {
		offsetX = width - overlayWidth
	}

	offsetY := placement.MarginY
	switch placement.Vertical {
	case lipgloss.Bottom:
		offsetY = height - overlayHeight - placement.MarginY
	case lipgloss.Center:
		offsetY = (height - overlayHeight) / 2
	}
	if offsetY < 0 {
		offsetY = 0
	}
	if offsetY > height-overlayHeight {
		offsetY = height - overlayHeight
	}

	return offsetX, offsetY
}

func normalizeBackground(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padToWidth(lines[i], width)
	}
	return lines
}

func padToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	currWidth := lipgloss.Width(s)
	if currWidth >= width {
		return ansi.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-currWidth)
}
