// Package toast defines the request model for a single dismissible
// notification and the motion rules derived from its screen anchor.
package toast

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownKind is returned by ParseKind for values outside AllKinds.
	ErrUnknownKind = errors.New("unknown kind")
	// ErrUnknownPosition is returned by ParsePosition for values outside AllPositions.
	ErrUnknownPosition = errors.New("unknown position")
)

// Kind selects the icon and accent color of a toast.
type Kind string

const (
	// KindSuccess renders a green check.
	KindSuccess Kind = "success"
	// KindError renders a red alert.
	KindError Kind = "error"
	// KindInfo renders a blue info mark.
	KindInfo Kind = "info"
	// KindWarning renders an amber triangle.
	KindWarning Kind = "warning"
	// KindDefault renders a gray info mark.
	KindDefault Kind = "default"
)

// AllKinds returns the supported kinds in legend order.
func AllKinds() []Kind {
	return []Kind{
		KindSuccess,
		KindError,
		KindInfo,
		KindWarning,
		KindDefault,
	}
}

// ParseKind converts a string to a Kind. An empty string yields KindDefault.
func ParseKind(raw string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(raw)))
	if k == "" {
		return KindDefault, nil
	}
	for _, candidate := range AllKinds() {
		if candidate == k {
			return candidate, nil
		}
	}
	return KindDefault, fmt.Errorf("toast: %w %q", ErrUnknownKind, raw)
}

// Position is one of the six screen anchors a toast can rest at.
type Position string

const (
	PositionTopLeft      Position = "top-left"
	PositionTopCenter    Position = "top-center"
	PositionTopRight     Position = "top-right"
	PositionBottomLeft   Position = "bottom-left"
	PositionBottomCenter Position = "bottom-center"
	PositionBottomRight  Position = "bottom-right"
)

// AllPositions returns the supported anchors, top row first.
func AllPositions() []Position {
	return []Position{
		PositionTopLeft,
		PositionTopCenter,
		PositionTopRight,
		PositionBottomLeft,
		PositionBottomCenter,
		PositionBottomRight,
	}
}

// ParsePosition converts a string to a Position. An empty string yields
// PositionTopRight.
func ParsePosition(raw string) (Position, error) {
	p := Position(strings.ToLower(strings.TrimSpace(raw)))
	if p == "" {
		return PositionTopRight, nil
	}
	for _, candidate := range AllPositions() {
		if candidate == p {
			return candidate, nil
		}
	}
	return PositionTopRight, fmt.Errorf("toast: %w %q", ErrUnknownPosition, raw)
}

// Next cycles through AllPositions.
func (p Position) Next() Position {
	all := AllPositions()
	for i, candidate := range all {
		if candidate == p {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// Axis is the direction a toast travels while animating or dragging.
type Axis int

const (
	// AxisHorizontal moves along X.
	AxisHorizontal Axis = iota
	// AxisVertical moves along Y.
	AxisVertical
)

func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// Motion constants, in pixels.
const (
	// EntryDistance is how far off its resting point a toast starts.
	EntryDistance = 16
	// ExitDistance is how far a toast travels while fading out.
	ExitDistance = 100
	// FadeStart is the drag distance at which opacity starts to drop.
	FadeStart = 100
	// FadeSpan is the drag distance over which opacity falls from 1 to 0.
	FadeSpan = 100
	// DismissDistance is the drag distance that must be exceeded on release
	// to dismiss the toast.
	DismissDistance = 150
)

// Axis reports the motion axis for the anchor. Only the center anchors
// move vertically.
func (p Position) Axis() Axis {
	if p == PositionTopCenter || p == PositionBottomCenter {
		return AxisVertical
	}
	return AxisHorizontal
}

// InitialOffset is the pre-entry offset along Axis. Unknown anchors rest
// in place.
func (p Position) InitialOffset() float64 {
	switch p {
	case PositionTopLeft, PositionBottomLeft, PositionTopCenter:
		return -EntryDistance
	case PositionTopRight, PositionBottomRight, PositionBottomCenter:
		return EntryDistance
	default:
		return 0
	}
}

// ExitOffset is the offset a toast travels to while exiting. Vertical
// anchors leave through the top or bottom edge, horizontal ones through
// the left edge or otherwise the right.
func (p Position) ExitOffset() float64 {
	s := string(p)
	if p.Axis() == AxisVertical {
		if strings.Contains(s, "top") {
			return -ExitDistance
		}
		return ExitDistance
	}
	if strings.Contains(s, "left") {
		return -ExitDistance
	}
	return ExitDistance
}

// Request describes a toast to display.
type Request struct {
	// Title is rendered in bold when non-empty.
	Title string
	// Description may carry ANSI styling; omitted when empty.
	Description  string
	Kind         Kind
	CloseOnClick bool
	Draggable    bool
	Position     Position
}

// NewRequest returns a request populated with the default behavior: a
// default-kind toast at the top right that closes on click and can be
// dragged away.
func NewRequest() Request {
	return Request{
		Kind:         KindDefault,
		CloseOnClick: true,
		Draggable:    true,
		Position:     PositionTopRight,
	}
}
