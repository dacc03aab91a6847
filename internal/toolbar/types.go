// Package toolbar positions a floating toolbar inside a bounded container.
//
// Everything in this package works on plain rectangles and numbers. Hosts feed it
// geometry and pointer events through the Geometry interface and the Controller
// methods, and read back where the toolbar should be drawn.
package toolbar

import "math"

// Position is a top-left offset relative to the container's top-left corner.
type Position struct {
	X, Y float64
}

// Add returns p shifted by d.
func (p Position) Add(d Delta) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

func (p Position) finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Size is a width and height.
type Size struct {
	W, H float64
}

// Rect is a rectangle in absolute host coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Size returns the rectangle's width and height.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Center returns the centre point of the rectangle.
func (r Rect) Center() (cx, cy float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Delta is a pointer displacement.
type Delta struct {
	DX, DY float64
}

func (d Delta) lengthSq() float64 {
	return d.DX*d.DX + d.DY*d.DY
}

// Orientation is the toolbar's long axis.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	default:
		return "horizontal"
	}
}

// ParseOrientation parses the persisted orientation text.
func ParseOrientation(s string) (Orientation, bool) {
	switch s {
	case "horizontal":
		return Horizontal, true
	case "vertical":
		return Vertical, true
	}
	return Horizontal, false
}

// Edge is the container edge a mobile toolbar is anchored to.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeTop
	EdgeBottom
	EdgeLeft
	EdgeRight
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return "none"
	}
}

// Orientation returns the orientation implied by docking on e.
func (e Edge) Orientation() Orientation {
	if e == EdgeLeft || e == EdgeRight {
		return Vertical
	}
	return Horizontal
}

// ViewportMode selects desktop or mobile behaviour.
type ViewportMode int

const (
	Desktop ViewportMode = iota
	Mobile
)

func (m ViewportMode) String() string {
	if m == Mobile {
		return "mobile"
	}
	return "desktop"
}

// HeaderFunc reports the bottom edge of a fixed header in the same coordinate
// space as the container rectangle. ok is false when there is no header.
type HeaderFunc func() (bottom float64, ok bool)

// State is what gets persisted between sessions.
type State struct {
	Position    Position
	Orientation Orientation
	Collapsed   bool
}

// Placement is the outcome of classifying a settled toolbar.
type Placement struct {
	Position    Position
	Orientation Orientation
	Edge        Edge
}

// footprint is the space the widget occupies. Desktop rotates the layout of a
// vertical toolbar, so its width and height swap.
func footprint(widget Size, o Orientation, mode ViewportMode) Size {
	if mode == Desktop && o == Vertical {
		return Size{W: widget.H, H: widget.W}
	}
	return widget
}
