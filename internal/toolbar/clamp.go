package toolbar

import "math"

// Frame is the geometry a settle is computed against.
type Frame struct {
	Container Rect // absolute; positions are relative to its top-left
	Widget    Size // natural (horizontal layout) size of the widget
	Mode      ViewportMode
	Header    HeaderFunc // optional
}

func (f Frame) degenerate(cfg Config) bool {
	return f.Container.W < cfg.MinContainer || f.Container.H < cfg.MinContainer
}

// topInset is the smallest y the toolbar may sit at before the window
// constraint is applied. On mobile it keeps the toolbar out from under the
// header.
func (f Frame) topInset(cfg Config) float64 {
	if f.Mode == Desktop {
		return cfg.TopPad
	}
	if f.Header != nil {
		if bottom, ok := f.Header(); ok {
			return cfg.Pad + math.Max(0, bottom-f.Container.Y)
		}
	}
	return cfg.MobileTopPad
}

// Clamp returns pos moved inside the container. It is a pure function and
// Clamp(Clamp(p)) == Clamp(p).
func Clamp(pos Position, o Orientation, f Frame, cfg Config) Position {
	inset := f.topInset(cfg)
	if f.degenerate(cfg) {
		return Position{X: cfg.Pad, Y: inset}
	}

	fp := footprint(f.Widget, o, f.Mode)
	maxX := f.Container.W - fp.W - cfg.Pad
	maxY := f.Container.H - fp.H - cfg.Pad
	// A short container must not produce an empty window.
	minTop := math.Max(0, math.Min(inset, maxY))

	if !pos.finite() {
		pos = Position{X: cfg.Pad, Y: minTop}
	}
	return Position{
		X: math.Max(cfg.Pad, math.Min(pos.X, maxX)),
		Y: math.Max(minTop, math.Min(pos.Y, maxY)),
	}
}

// Contained reports whether pos lies in the clamp window. Overflowing
// widgets are never contained.
func Contained(pos Position, o Orientation, f Frame, cfg Config) bool {
	if f.degenerate(cfg) {
		return false
	}
	fp := footprint(f.Widget, o, f.Mode)
	maxX := f.Container.W - fp.W - cfg.Pad
	maxY := f.Container.H - fp.H - cfg.Pad
	minTop := math.Max(0, math.Min(f.topInset(cfg), maxY))
	return pos.X >= cfg.Pad && pos.X <= maxX && pos.Y >= minTop && pos.Y <= maxY
}
