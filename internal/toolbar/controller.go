package toolbar

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

// ErrNotMounted is returned by Mount when the host cannot report geometry yet.
var ErrNotMounted = errors.New("toolbar: container or widget not mounted")

// Geometry reports live layout. The container rectangle is in absolute host
// coordinates; widget is the natural size of the expanded toolbar.
type Geometry interface {
	Frame() (container Rect, widget Size, ok bool)
}

// Option configures a Controller.
type Option func(*Controller)

func WithConfig(cfg Config) Option {
	return func(c *Controller) { c.cfg = cfg }
}

// WithViewport sets the viewport mode provider. It is called on every settle
// and never cached.
func WithViewport(fn func() ViewportMode) Option {
	return func(c *Controller) {
		if fn != nil {
			c.viewport = fn
		}
	}
}

func WithHeader(fn HeaderFunc) Option {
	return func(c *Controller) { c.header = fn }
}

func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// Settlement describes how a gesture ended.
type Settlement struct {
	Moved bool
	Placement
}

// Snapshot is the live state a host renders from.
type Snapshot struct {
	Position    Position
	Orientation Orientation
	Edge        Edge
	Collapsed   bool
	Mode        ViewportMode
	Dragging    bool
	// Rotated is true when the host must lay the toolbar out vertically.
	Rotated   bool
	Footprint Size
}

// Controller is one mounted toolbar. It is not safe for concurrent use; hosts
// drive it from their UI loop.
type Controller struct {
	cfg      Config
	geo      Geometry
	store    *PositionStore
	viewport func() ViewportMode
	header   HeaderFunc
	now      func() time.Time
	log      *zap.Logger

	drag     *DragSession
	collapse *CollapseController

	pos       Position // live, moves during a drag
	committed Position // last settled position
	orient    Orientation
	edge      Edge
	disposed  bool
}

// Mount loads persisted state, validates it against the live container and
// returns a ready controller. Nothing is wired when geometry is unavailable.
func Mount(geo Geometry, store *PositionStore, opts ...Option) (*Controller, error) {
	c := &Controller{
		cfg:      DefaultConfig(),
		geo:      geo,
		store:    store,
		viewport: func() ViewportMode { return Desktop },
		now:      time.Now,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if geo == nil || store == nil {
		return nil, ErrNotMounted
	}
	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}
	c.drag = NewDragSession(c.cfg.MoveThreshold)
	c.collapse = NewCollapseController(c.cfg.TapSuppressWindow, c.now)

	f, ok := c.frame()
	if !ok {
		return nil, ErrNotMounted
	}
	st := store.Load(f, c.cfg)
	if f.Mode == Mobile && st.Collapsed {
		c.log.Debug("mobile mount forces toolbar expanded")
		st.Collapsed = false
	}
	c.collapse.SetCollapsed(st.Collapsed)
	c.orient = st.Orientation

	if f, ok = c.frame(); !ok {
		return nil, ErrNotMounted
	}
	if f.Mode == Mobile {
		pl := Classify(st.Position, c.orient, Delta{}, f, c.cfg)
		c.commit(pl, pl != Placement{Position: st.Position, Orientation: st.Orientation, Edge: pl.Edge})
	} else {
		pos := Clamp(st.Position, c.orient, f, c.cfg)
		c.commit(Placement{Position: pos, Orientation: c.orient}, pos != st.Position)
	}
	c.log.Debug("toolbar mounted",
		zap.Stringer("mode", f.Mode),
		zap.Float64("x", c.pos.X),
		zap.Float64("y", c.pos.Y),
		zap.Stringer("orientation", c.orient),
		zap.Bool("collapsed", c.collapse.Collapsed()),
	)
	return c, nil
}

// PointerDown starts a drag if the target allows it.
func (c *Controller) PointerDown(ev PointerEvent, target Target) bool {
	if c.disposed || target == TargetNone {
		return false
	}
	if ev.Type != PointerTouch && !ev.Primary {
		return false
	}
	if Interactive(target, c.collapse.Collapsed()) {
		return false
	}
	if !c.drag.Start(ev.ID, ev.X, ev.Y, c.committed) {
		c.log.Debug("second pointer ignored", zap.Int("pointer", ev.ID), zap.Int("owner", c.drag.PointerID()))
		return false
	}
	return true
}

// PointerMove updates the live position. The result is clamped but not
// committed.
func (c *Controller) PointerMove(ev PointerEvent) bool {
	if c.disposed {
		return false
	}
	d, ok := c.drag.Move(ev.ID, ev.X, ev.Y)
	if !ok {
		return false
	}
	f, ok := c.frame()
	if !ok {
		return false
	}
	c.pos = Clamp(c.drag.StartPosition().Add(d), c.orient, f, c.cfg)
	return true
}

// PointerUp ends the gesture. A real drag is classified, clamped and saved;
// anything shorter than the threshold snaps back.
func (c *Controller) PointerUp(ev PointerEvent) (Settlement, bool) {
	if c.disposed {
		return Settlement{}, false
	}
	res, ok := c.drag.End(ev.ID)
	if !ok {
		return Settlement{}, false
	}
	c.collapse.DragEnded(res.Moved)

	f, ok := c.frame()
	if !res.Moved || !ok {
		c.pos = c.committed
		return Settlement{Moved: false, Placement: c.placement()}, true
	}
	pl := Classify(c.pos, c.orient, res.Delta, f, c.cfg)
	c.commit(pl, true)
	c.log.Debug("toolbar settled after drag",
		zap.Float64("dx", res.Delta.DX),
		zap.Float64("dy", res.Delta.DY),
		zap.Float64("x", pl.Position.X),
		zap.Float64("y", pl.Position.Y),
		zap.Stringer("orientation", pl.Orientation),
		zap.Stringer("edge", pl.Edge),
	)
	return Settlement{Moved: true, Placement: pl}, true
}

// PointerCancel abandons the gesture and restores the committed position.
func (c *Controller) PointerCancel(ev PointerEvent) bool {
	if c.disposed || !c.drag.Cancel(ev.ID) {
		return false
	}
	c.pos = c.committed
	c.log.Debug("drag cancelled", zap.Int("pointer", ev.ID))
	return true
}

// TapCollapse handles a click on the collapse control. When it returns true
// the footprint changed and the host must call Settle once the new layout has
// been applied, and again after it has been measured.
func (c *Controller) TapCollapse() bool {
	if c.disposed {
		return false
	}
	if !c.collapse.Tap() {
		c.log.Debug("tap after drag suppressed")
		return false
	}
	if err := c.store.SaveCollapsed(c.collapse.Collapsed()); err != nil {
		c.log.Warn("persist collapsed flag", zap.Error(err))
	}
	return true
}

// Settle re-validates the committed position against current geometry. On
// mobile the toolbar is re-docked to its nearest edge.
func (c *Controller) Settle() bool {
	if c.disposed || c.drag.Active() {
		return false
	}
	f, ok := c.frame()
	if !ok {
		return false
	}
	var pl Placement
	if f.Mode == Mobile {
		pl = Classify(c.committed, c.orient, Delta{}, f, c.cfg)
	} else {
		pl = Placement{Position: Clamp(c.committed, c.orient, f, c.cfg), Orientation: c.orient}
	}
	c.commit(pl, pl != c.placement())
	return true
}

// Resize is called when the container changes size. It yields to an active
// drag instead of fighting it.
func (c *Controller) Resize() bool {
	if c.disposed || c.drag.Active() {
		return false
	}
	f, ok := c.frame()
	if !ok {
		return false
	}
	pl := Placement{Orientation: c.orient}
	switch {
	case f.Mode == Mobile && c.edge != EdgeNone:
		pl.Edge = c.edge
		pl.Orientation = c.edge.Orientation()
		pl.Position = Clamp(Pin(c.edge, f, c.cfg), pl.Orientation, f, c.cfg)
	case f.Mode == Mobile:
		pl = Classify(c.committed, c.orient, Delta{}, f, c.cfg)
	default:
		pl.Position = Clamp(c.committed, c.orient, f, c.cfg)
	}
	c.commit(pl, pl != c.placement())
	return true
}

// Snapshot returns the state to render.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Position:    c.pos,
		Orientation: c.orient,
		Edge:        c.edge,
		Collapsed:   c.collapse.Collapsed(),
		Mode:        c.viewport(),
		Dragging:    c.drag.Active(),
	}
	s.Rotated = s.Mode == Desktop && s.Orientation == Vertical && !s.Collapsed
	if _, widget, ok := c.geo.Frame(); ok {
		s.Footprint = footprint(c.widget(widget), c.orient, s.Mode)
	}
	return s
}

// Dispose invalidates any in-flight gesture and makes every method a no-op.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	if c.drag.Active() {
		c.drag.Cancel(c.drag.PointerID())
		c.pos = c.committed
	}
	c.disposed = true
}

func (c *Controller) frame() (Frame, bool) {
	container, widget, ok := c.geo.Frame()
	if !ok {
		return Frame{}, false
	}
	return Frame{
		Container: container,
		Widget:    c.widget(widget),
		Mode:      c.viewport(),
		Header:    c.header,
	}, true
}

// widget swaps in the collapsed square when collapsed.
func (c *Controller) widget(natural Size) Size {
	if c.collapse != nil && c.collapse.Collapsed() {
		return Size{W: c.cfg.CollapsedSize, H: c.cfg.CollapsedSize}
	}
	return natural
}

func (c *Controller) placement() Placement {
	return Placement{Position: c.committed, Orientation: c.orient, Edge: c.edge}
}

func (c *Controller) commit(pl Placement, persist bool) {
	c.pos, c.committed = pl.Position, pl.Position
	c.orient, c.edge = pl.Orientation, pl.Edge
	if !persist {
		return
	}
	if err := c.store.SavePlacement(pl.Position, pl.Orientation); err != nil {
		c.log.Warn("persist toolbar placement", zap.Error(err))
	}
}
