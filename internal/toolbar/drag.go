// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package toolbar

// DragState represents the current state of a drag gesture
type DragState int

const (
	DragStateIdle DragState = iota
	DragStateDragging
)

// DragResult is what a finished gesture reports.
type DragResult struct {
	Moved bool
	Delta Delta
}

// DragSession turns raw pointer events into displacements for a single
// pointer. It never looks at geometry.
type DragSession struct {
	state         DragState
	pointerID     int
	startX        float64
	startY        float64
	startPosition Position
	delta         Delta
	moved         bool
	thresholdSq   float64
}

// NewDragSession creates an idle session that reports a drag once the pointer
// has travelled threshold units from where it went down.
func NewDragSession(threshold float64) *DragSession {
	return &DragSession{
		state:       DragStateIdle,
		thresholdSq: threshold * threshold,
	}
}

// Start begins a gesture. It is rejected while another pointer owns the
// session; the owning pointer may restart it.
func (d *DragSession) Start(pointerID int, x, y float64, pos Position) bool {
	if d.state == DragStateDragging && d.pointerID != pointerID {
		return false
	}
	d.state = DragStateDragging
	d.pointerID = pointerID
	d.startX, d.startY = x, y
	d.startPosition = pos
	d.delta = Delta{}
	d.moved = false
	return true
}

// Move records the pointer at (x, y) and returns the displacement from the
// start point. Events from other pointers are ignored.
func (d *DragSession) Move(pointerID int, x, y float64) (Delta, bool) {
	if !d.owns(pointerID) {
		return Delta{}, false
	}
	d.delta = Delta{DX: x - d.startX, DY: y - d.startY}
	if d.delta.lengthSq() >= d.thresholdSq {
		d.moved = true
	}
	return d.delta, true
}

// End finishes the gesture and reports whether it crossed the threshold.
func (d *DragSession) End(pointerID int) (DragResult, bool) {
	if !d.owns(pointerID) {
		return DragResult{}, false
	}
	res := DragResult{Moved: d.moved, Delta: d.delta}
	d.reset()
	return res, true
}

// Cancel abandons the gesture. The caller restores the last committed
// position.
func (d *DragSession) Cancel(pointerID int) bool {
	if !d.owns(pointerID) {
		return false
	}
	d.reset()
	return true
}

// Active returns true if a gesture is in progress
func (d *DragSession) Active() bool {
	return d.state == DragStateDragging
}

// PointerID returns the pointer that owns the active gesture
func (d *DragSession) PointerID() int {
	return d.pointerID
}

// StartPosition returns the widget position when the gesture began
func (d *DragSession) StartPosition() Position {
	return d.startPosition
}

// Moved reports whether the active gesture has crossed the threshold
func (d *DragSession) Moved() bool {
	return d.moved
}

func (d *DragSession) owns(pointerID int) bool {
	return d.state == DragStateDragging && d.pointerID == pointerID
}

func (d *DragSession) reset() {
	d.state = DragStateIdle
	d.pointerID = 0
	d.startX, d.startY = 0, 0
	d.startPosition = Position{}
	d.delta = Delta{}
	d.moved = false
}
