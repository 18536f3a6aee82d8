package glyph

import "tableflip.dev/toast/pkg/toast"

// Glyph is an icon symbol paired with the accent color it is drawn in.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
	Color   string
}

// DefaultGlyphs returns the kind icons in legend order.
func DefaultGlyphs() []Glyph {
	return []Glyph{
		{
			Key:     string(toast.KindSuccess),
			Symbol:  "✔",
			Meaning: "check",
			Color:   "#22c55e",
		}, {
			Key:     string(toast.KindError),
			Symbol:  "!",
			Meaning: "alert",
			Color:   "#ef4444",
		}, {
			Key:     string(toast.KindInfo),
			Symbol:  "i",
			Meaning: "info",
			Color:   "#3b82f6",
		}, {
			Key:     string(toast.KindWarning),
			Symbol:  "▲",
			Meaning: "triangle",
			Color:   "#f59e0b",
		}, {
			Key:     string(toast.KindDefault),
			Symbol:  "i",
			Meaning: "info",
			Color:   "#6b7280",
		},
	}
}

// ForKind returns the icon for k. Kinds outside toast.AllKinds get the
// default icon.
func ForKind(k toast.Kind) Glyph {
	all := DefaultGlyphs()
	for _, g := range all {
		if g.Key == string(k) {
			return g
		}
	}
	return all[len(all)-1]
}

// Close is the dismiss control.
func Close() Glyph {
	return Glyph{
		Key:     "close",
		Symbol:  "✕",
		Meaning: "dismiss",
	}
}

func (g Glyph) String() string {
	return g.Symbol
}
