package toolbar

import "math"

// Classify decides orientation (and on mobile the docking edge) for a toolbar
// that has just been released at pos. delta is the displacement of the
// gesture that got it there, zero when the settle was not caused by a drag.
// The returned position is always clamped.
func Classify(pos Position, o Orientation, delta Delta, f Frame, cfg Config) Placement {
	if f.degenerate(cfg) {
		p := Placement{Position: Clamp(pos, o, f, cfg), Orientation: o}
		if f.Mode == Mobile {
			p.Edge = EdgeTop
			p.Orientation = Horizontal
		}
		return p
	}
	if f.Mode == Mobile {
		return classifyMobile(pos, delta, f, cfg)
	}
	return classifyDesktop(pos, o, f, cfg)
}

// classifyDesktop sorts the footprint centre into edge zones. Top and bottom
// are checked first so corners resolve to horizontal.
func classifyDesktop(pos Position, o Orientation, f Frame, cfg Config) Placement {
	fp := footprint(f.Widget, o, Desktop)
	fx := (pos.X + fp.W/2) / f.Container.W
	fy := (pos.Y + fp.H/2) / f.Container.H
	zone := cfg.ZoneFraction

	out := Placement{Position: pos, Orientation: Horizontal}
	switch {
	case fy < zone:
		out.Position.Y = f.topInset(cfg)
	case fy >= 1-zone:
		out.Position.Y = f.Container.H - f.Widget.H - cfg.Pad
	case fx < zone:
		out.Orientation = Vertical
		out.Position.X = cfg.Pad
	case fx >= 1-zone:
		out.Orientation = Vertical
		out.Position.X = f.Container.W - f.Widget.H - cfg.Pad
	}
	out.Position = Clamp(out.Position, out.Orientation, f, cfg)
	return out
}

func classifyMobile(pos Position, delta Delta, f Frame, cfg Config) Placement {
	edge, ok := flickEdge(delta, cfg)
	if !ok {
		edge = nearestEdge(pos, f, cfg)
	}
	o := edge.Orientation()
	return Placement{
		Position:    Clamp(Pin(edge, f, cfg), o, f, cfg),
		Orientation: o,
		Edge:        edge,
	}
}

// nearestEdge picks the edge with the smallest gap. Ties go to the first of
// top, bottom, left, right.
func nearestEdge(pos Position, f Frame, cfg Config) Edge {
	gaps := [...]struct {
		edge Edge
		gap  float64
	}{
		{EdgeTop, pos.Y - f.topInset(cfg)},
		{EdgeBottom, f.Container.H - (pos.Y + f.Widget.H)},
		{EdgeLeft, pos.X},
		{EdgeRight, f.Container.W - (pos.X + f.Widget.W)},
	}
	best := gaps[0]
	for _, g := range gaps[1:] {
		if g.gap < best.gap {
			best = g
		}
	}
	return best.edge
}

// flickEdge returns the edge a deliberate directional drag points at.
func flickEdge(d Delta, cfg Config) (Edge, bool) {
	ax, ay := math.Abs(d.DX), math.Abs(d.DY)
	switch {
	case ax >= cfg.FlickMinDistance && ax >= ay*cfg.FlickDominance:
		if d.DX > 0 {
			return EdgeRight, true
		}
		return EdgeLeft, true
	case ay >= cfg.FlickMinDistance && ay >= ax*cfg.FlickDominance:
		if d.DY > 0 {
			return EdgeBottom, true
		}
		return EdgeTop, true
	}
	return EdgeNone, false
}

// Pin returns the unclamped mobile position for docking on edge: flush with
// the edge's pad and centred along it.
func Pin(edge Edge, f Frame, cfg Config) Position {
	c, w := f.Container, f.Widget
	midX := (c.W - w.W) / 2
	midY := (c.H - w.H) / 2
	switch edge {
	case EdgeBottom:
		return Position{X: midX, Y: c.H - w.H - cfg.Pad}
	case EdgeLeft:
		return Position{X: cfg.Pad, Y: midY}
	case EdgeRight:
		return Position{X: c.W - w.W - cfg.Pad, Y: midY}
	default:
		return Position{X: midX, Y: f.topInset(cfg)}
	}
}
