package toolbar

import "time"

// CollapseController owns the collapsed flag and swallows the click that a
// terminal or browser delivers right after a drag is released.
type CollapseController struct {
	collapsed   bool
	suppressTap bool
	lastDragEnd time.Time
	window      time.Duration
	now         func() time.Time
}

// NewCollapseController returns an expanded controller.
func NewCollapseController(window time.Duration, now func() time.Time) *CollapseController {
	if now == nil {
		now = time.Now
	}
	return &CollapseController{window: window, now: now}
}

// DragEnded arms suppression only when the gesture was a real drag.
func (c *CollapseController) DragEnded(moved bool) {
	c.suppressTap = moved
	c.lastDragEnd = c.now()
}

// Tap handles a click on the collapse control and reports whether the flag
// flipped.
func (c *CollapseController) Tap() bool {
	suppress := c.suppressTap
	c.suppressTap = false
	if c.collapsed && suppress && c.now().Sub(c.lastDragEnd) <= c.window {
		return false
	}
	c.collapsed = !c.collapsed
	return true
}

func (c *CollapseController) Collapsed() bool {
	return c.collapsed
}

func (c *CollapseController) SetCollapsed(v bool) {
	c.collapsed = v
}
