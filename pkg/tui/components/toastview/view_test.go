package toastview

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/toast/pkg/glyph"
	"tableflip.dev/toast/pkg/toast"
	"tableflip.dev/toast/pkg/tui/ui/overlay"
)

func TestViewHiddenUntilEntered(t *testing.T) {
	h := newHarness(t, dragRequest(toast.PositionTopRight))
	if view := h.model.View(); view != "" {
		t.Fatalf("expected empty view before entry, got:\n%s", view)
	}
	h.enter()
	if h.model.View() == "" {
		t.Fatalf("expected a view after entry")
	}
	h.model.Dismiss()
	if view := h.model.View(); view != "" {
		t.Fatalf("expected empty view while exiting, got:\n%s", view)
	}
}

func TestViewRendersOptionalFields(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
	}{
		{"both", "Saved", "Your changes are live."},
		{"title only", "Saved", ""},
		{"description only", "", "Your changes are live."},
		{"neither", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := toast.NewRequest()
			req.Kind = toast.KindSuccess
			req.Title = tt.title
			req.Description = tt.description
			h := newHarness(t, req)
			h.enter()

			plain := xansi.Strip(h.model.View())
			if got := strings.Contains(plain, "Saved"); got != (tt.title != "") {
				t.Fatalf("title presence = %v:\n%s", got, plain)
			}
			if got := strings.Contains(plain, "changes"); got != (tt.description != "") {
				t.Fatalf("description presence = %v:\n%s", got, plain)
			}
			if !strings.Contains(plain, glyph.ForKind(toast.KindSuccess).Symbol) {
				t.Fatalf("missing icon:\n%s", plain)
			}
			if !strings.Contains(plain, glyph.Close().Symbol) {
				t.Fatalf("missing close control:\n%s", plain)
			}
		})
	}
}

func TestViewLinesMatchSize(t *testing.T) {
	req := toast.NewRequest()
	req.Title = "Upload complete"
	req.Description = "All twelve files were uploaded to the shared drive and are ready to review."
	h := newHarness(t, req)
	h.enter()

	width, height := h.model.Size()
	lines := strings.Split(h.model.View(), "\n")
	if len(lines) != height {
		t.Fatalf("view has %d lines, size reports %d", len(lines), height)
	}
	for i, line := range lines {
		if w := ansi.PrintableRuneWidth(line); w != width {
			t.Fatalf("line %d width %d, want %d: %q", i, w, width, line)
		}
	}
}

func TestCloseRegionCoversGlyph(t *testing.T) {
	h := newHarness(t, dragRequest(toast.PositionTopRight))
	h.enter()
	lines := strings.Split(xansi.Strip(h.model.View()), "\n")
	region := h.model.geom.close
	row := []rune(lines[region.Y])
	found := false
	for x := region.X; x < region.X+region.Width && x < len(row); x++ {
		if string(row[x]) == glyph.Close().Symbol {
			found = true
		}
	}
	if !found {
		t.Fatalf("close glyph not inside region %+v on row %q", region, lines[region.Y])
	}
}

func TestFadeTowardBackdrop(t *testing.T) {
	h := newHarness(t, dragRequest(toast.PositionTopRight))
	full := h.model.fade("#ffffff", 1)
	none := h.model.fade("#ffffff", 0)
	half := h.model.fade("#ffffff", 0.5)

	backdrop := h.model.fade(h.model.theme.Backdrop, 1)
	if none != backdrop {
		t.Fatalf("opacity 0 should match the backdrop: %v vs %v", none, backdrop)
	}
	if full == none || half == full || half == none {
		t.Fatalf("expected distinct colors: full=%v half=%v none=%v", full, half, none)
	}
}

func TestPresentationShift(t *testing.T) {
	p := Presentation{Axis: toast.AxisHorizontal, Translate: -16}
	if dx, dy := p.Shift(Metrics{CellWidth: 8, CellHeight: 16}); dx != -2 || dy != 0 {
		t.Fatalf("shift = (%d,%d), want (-2,0)", dx, dy)
	}
	p = Presentation{Axis: toast.AxisVertical, Translate: 100}
	if dx, dy := p.Shift(Metrics{CellWidth: 8, CellHeight: 16}); dx != 0 || dy != 6 {
		t.Fatalf("shift = (%d,%d), want (0,6)", dx, dy)
	}
	if got := p.String(); got != "translateY(100px) opacity(0.00)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestPlacementFollowsDrag(t *testing.T) {
	h := newHarness(t, dragRequest(toast.PositionBottomCenter))
	h.enter()
	h.press(bodyX, bodyY)
	h.move(bodyX, bodyY+4)

	p := h.model.Placement(2, 1)
	if p.ShiftY != 4 || p.ShiftX != 0 {
		t.Fatalf("shift = (%d,%d), want (0,4)", p.ShiftX, p.ShiftY)
	}
	want := PlacementFor(toast.PositionBottomCenter, 2, 1)
	if p.Horizontal != want.Horizontal || p.Vertical != want.Vertical {
		t.Fatalf("anchor mismatch: %+v vs %+v", p, want)
	}
}

func TestHitTestUsesOrigin(t *testing.T) {
	h := newHarness(t, dragRequest(toast.PositionTopRight))
	h.enter()
	width, height := h.model.Size()
	x, y := overlay.Origin(80, 24, width, height, PlacementFor(toast.PositionTopRight, 2, 1))
	h.model.SetOrigin(x, y)
	if !h.model.Contains(x, y) || !h.model.Contains(x+width-1, y+height-1) {
		t.Fatalf("corners of the box should hit")
	}
	if h.model.Contains(x-1, y) || h.model.Contains(x, y+height) {
		t.Fatalf("cells outside the box should miss")
	}
}

func TestPlacementRestsAtEveryAnchor(t *testing.T) {
	want := map[toast.Position][2]int{
		toast.PositionTopLeft:      {2, 1},
		toast.PositionTopCenter:    {25, 1},
		toast.PositionTopRight:     {48, 1},
		toast.PositionBottomLeft:   {2, 19},
		toast.PositionBottomCenter: {25, 19},
		toast.PositionBottomRight:  {48, 19},
	}
	for _, pos := range toast.AllPositions() {
		t.Run(string(pos), func(t *testing.T) {
			x, y := overlay.Origin(80, 24, 30, 4, PlacementFor(pos, 2, 1))
			if got := [2]int{x, y}; got != want[pos] {
				t.Fatalf("origin = %v, want %v", got, want[pos])
			}
		})
	}
}
