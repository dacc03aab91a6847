package toolbar

import (
	"errors"
	"testing"
	"time"

	"github.com/rileylov/dockbar/internal/kv"
)

type fakeGeometry struct {
	container Rect
	widget    Size
	missing   bool
}

func (g *fakeGeometry) Frame() (Rect, Size, bool) {
	return g.container, g.widget, !g.missing
}

type harness struct {
	t     *testing.T
	geo   *fakeGeometry
	slots kv.Memory
	clock *fakeClock
	mode  ViewportMode
	ctrl  *Controller
}

func newHarness(t *testing.T, mode ViewportMode) *harness {
	t.Helper()
	h := &harness{
		t:     t,
		slots: kv.NewMemory(),
		clock: newFakeClock(),
		mode:  mode,
	}
	if mode == Mobile {
		h.geo = &fakeGeometry{container: Rect{W: 400, H: 800}, widget: Size{W: 200, H: 48}}
	} else {
		h.geo = &fakeGeometry{container: Rect{W: 1000, H: 800}, widget: Size{W: 300, H: 40}}
	}
	return h
}

func (h *harness) mount() *Controller {
	h.t.Helper()
	c, err := Mount(h.geo, NewPositionStore(h.slots, "toolbar"),
		WithViewport(func() ViewportMode { return h.mode }),
		WithClock(h.clock.Now),
	)
	if err != nil {
		h.t.Fatalf("mount: %v", err)
	}
	h.ctrl = c
	return c
}

func mouse(id int, x, y float64) PointerEvent {
	return PointerEvent{ID: id, X: x, Y: y, Type: PointerMouse, Primary: true}
}

// drag presses at (x, y), moves by (dx, dy) and releases.
func (h *harness) drag(target Target, x, y, dx, dy float64) Settlement {
	h.t.Helper()
	if !h.ctrl.PointerDown(mouse(1, x, y), target) {
		h.t.Fatalf("pointer down on %s rejected", target)
	}
	h.ctrl.PointerMove(mouse(1, x+dx/2, y+dy/2))
	h.ctrl.PointerMove(mouse(1, x+dx, y+dy))
	s, ok := h.ctrl.PointerUp(mouse(1, x+dx, y+dy))
	if !ok {
		h.t.Fatal("pointer up ignored")
	}
	return s
}

func TestMountWithoutGeometry(t *testing.T) {
	h := newHarness(t, Desktop)
	h.geo.missing = true
	_, err := Mount(h.geo, NewPositionStore(h.slots, ""))
	if !errors.Is(err, ErrNotMounted) {
		t.Fatalf("err = %v, want ErrNotMounted", err)
	}
	if len(h.slots) != 0 {
		t.Fatal("failed mount wrote state")
	}

	if _, err := Mount(nil, NewPositionStore(h.slots, "")); !errors.Is(err, ErrNotMounted) {
		t.Fatalf("nil geometry: err = %v", err)
	}
	if _, err := Mount(h.geo, nil); !errors.Is(err, ErrNotMounted) {
		t.Fatalf("nil store: err = %v", err)
	}
}

func TestMountRejectsBadConfig(t *testing.T) {
	h := newHarness(t, Desktop)
	cfg := DefaultConfig()
	cfg.ZoneFraction = 0.7
	if _, err := Mount(h.geo, NewPositionStore(h.slots, ""), WithConfig(cfg)); err == nil {
		t.Fatal("expected config error")
	}
}

func TestMountClampsStalePosition(t *testing.T) {
	h := newHarness(t, Desktop)
	h.slots["toolbar.x"] = "5000"
	h.slots["toolbar.y"] = "-40"
	c := h.mount()

	if got := c.Snapshot().Position; got != (Position{692, 8}) {
		t.Fatalf("position = %v, want {692 8}", got)
	}
	if h.slots["toolbar.x"] != "692" || h.slots["toolbar.y"] != "8" {
		t.Fatalf("corrected position not persisted: %v", h.slots)
	}
}

func TestMobileMountForcesExpanded(t *testing.T) {
	for _, mode := range []ViewportMode{Desktop, Mobile} {
		h := newHarness(t, mode)
		h.slots["toolbar.collapsed"] = "true"
		c := h.mount()
		want := mode == Desktop
		if got := c.Snapshot().Collapsed; got != want {
			t.Fatalf("%s: collapsed = %v, want %v", mode, got, want)
		}
	}
}

func TestDesktopDragSettles(t *testing.T) {
	h := newHarness(t, Desktop)
	c := h.mount()
	if got := c.Snapshot().Position; got != (Position{350, 16}) {
		t.Fatalf("default position = %v", got)
	}

	s := h.drag(TargetHandle, 500, 30, 0, 400)
	if !s.Moved || s.Position != (Position{350, 416}) || s.Orientation != Horizontal {
		t.Fatalf("unexpected settlement %+v", s)
	}
	if h.slots["toolbar.y"] != "416" {
		t.Fatalf("y not persisted: %v", h.slots)
	}

	// Into the left zone: becomes vertical and snaps to the pad.
	s = h.drag(TargetBody, 500, 430, -340, 0)
	if s.Orientation != Vertical || s.Position != (Position{8, 416}) {
		t.Fatalf("unexpected settlement %+v", s)
	}
	snap := c.Snapshot()
	if !snap.Rotated || snap.Footprint != (Size{40, 300}) {
		t.Fatalf("vertical desktop toolbar must rotate: %+v", snap)
	}
	if h.slots["toolbar.orientation"] != "vertical" {
		t.Fatalf("orientation not persisted: %v", h.slots)
	}
}

func TestMoveIsClamped(t *testing.T) {
	h := newHarness(t, Desktop)
	c := h.mount()
	c.PointerDown(mouse(1, 500, 30), TargetHandle)
	c.PointerMove(mouse(1, 5000, 5000))
	if got := c.Snapshot().Position; got != (Position{692, 752}) {
		t.Fatalf("live position = %v, want {692 752}", got)
	}
}

func TestTapDoesNotMoveOrSuppress(t *testing.T) {
	h := newHarness(t, Desktop)
	c := h.mount()

	s := h.drag(TargetHandle, 500, 30, 3, 4)
	if s.Moved || s.Position != (Position{350, 16}) {
		t.Fatalf("tap moved the toolbar: %+v", s)
	}
	if !c.TapCollapse() || !c.Snapshot().Collapsed {
		t.Fatal("collapse toggle after a tap must work")
	}
}

func TestCollapseSuppressionWindow(t *testing.T) {
	h := newHarness(t, Desktop)
	c := h.mount()

	if !c.TapCollapse() {
		t.Fatal("collapse rejected")
	}
	if h.slots["toolbar.collapsed"] != "true" {
		t.Fatal("collapsed flag not persisted")
	}
	c.Settle()
	c.Settle()

	// Drag the pill, then the trailing click arrives within the window.
	h.drag(TargetCollapse, 370, 30, 0, 200)
	h.clock.Advance(100 * time.Millisecond)
	if c.TapCollapse() || !c.Snapshot().Collapsed {
		t.Fatal("trailing tap must be consumed")
	}

	h.drag(TargetCollapse, 370, 230, 0, 100)
	h.clock.Advance(400 * time.Millisecond)
	if !c.TapCollapse() || c.Snapshot().Collapsed {
		t.Fatal("tap after the window must expand")
	}
	if h.slots["toolbar.collapsed"] != "false" {
		t.Fatal("expanded flag not persisted")
	}
}

func TestPointerDownTargets(t *testing.T) {
	h := newHarness(t, Desktop)
	c := h.mount()

	for _, target := range []Target{TargetNone, TargetButton, TargetInput, TargetScroll, TargetCollapse} {
		if c.PointerDown(mouse(1, 500, 30), target) {
			t.Fatalf("%s must not start a drag while expanded", target)
		}
	}
	if c.PointerDown(PointerEvent{ID: 1, X: 500, Y: 30, Type: PointerMouse}, TargetHandle) {
		t.Fatal("non-primary mouse button must not start a drag")
	}
	if !c.PointerDown(PointerEvent{ID: 7, X: 500, Y: 30, Type: PointerTouch}, TargetHandle) {
		t.Fatal("touch must start a drag without a button")
	}
}

func TestSecondPointerIgnored(t *testing.T) {
	h := newHarness(t, Desktop)
	c := h.mount()
	c.PointerDown(mouse(1, 500, 30), TargetHandle)
	if c.PointerDown(mouse(2, 100, 100), TargetHandle) {
		t.Fatal("second pointer started a drag")
	}
	if c.PointerMove(mouse(2, 900, 700)) {
		t.Fatal("second pointer moved the toolbar")
	}
	if _, ok := c.PointerUp(mouse(2, 900, 700)); ok {
		t.Fatal("second pointer ended the drag")
	}
	if !c.Snapshot().Dragging {
		t.Fatal("owner session lost")
	}
}

func TestCancelRestoresCommitted(t *testing.T) {
	h := newHarness(t, Desktop)
	c := h.mount()
	before := len(h.slots)

	c.PointerDown(mouse(1, 500, 30), TargetHandle)
	c.PointerMove(mouse(1, 700, 300))
	if c.Snapshot().Position == (Position{350, 16}) {
		t.Fatal("move had no effect")
	}
	if !c.PointerCancel(mouse(1, 700, 300)) {
		t.Fatal("cancel rejected")
	}
	snap := c.Snapshot()
	if snap.Position != (Position{350, 16}) || snap.Dragging {
		t.Fatalf("cancel did not restore: %+v", snap)
	}
	if len(h.slots) != before {
		t.Fatal("cancel persisted state")
	}
}

func TestResizeYieldsToDrag(t *testing.T) {
	h := newHarness(t, Desktop)
	c := h.mount()

	c.PointerDown(mouse(1, 500, 30), TargetHandle)
	c.PointerMove(mouse(1, 520, 30))
	live := c.Snapshot().Position

	h.geo.container = Rect{W: 500, H: 400}
	if c.Resize() {
		t.Fatal("resize must no-op during a drag")
	}
	if c.Snapshot().Position != live {
		t.Fatal("resize moved a dragging toolbar")
	}
	c.PointerCancel(mouse(1, 520, 30))

	if !c.Resize() {
		t.Fatal("resize rejected while idle")
	}
	if got := c.Snapshot().Position; got != (Position{192, 16}) {
		t.Fatalf("position after resize = %v, want {192 16}", got)
	}
	if h.slots["toolbar.x"] != "192" {
		t.Fatalf("resize clamp not persisted: %v", h.slots)
	}
}

func TestMobileDirectionalOverride(t *testing.T) {
	h := newHarness(t, Mobile)
	c := h.mount()
	snap := c.Snapshot()
	if snap.Edge != EdgeTop || snap.Position != (Position{100, 12}) {
		t.Fatalf("mobile mount not docked on top: %+v", snap)
	}

	s := h.drag(TargetHandle, 200, 30, 40, 2)
	want := Placement{Position: Position{192, 376}, Orientation: Vertical, Edge: EdgeRight}
	if s.Placement != want {
		t.Fatalf("got %+v, want %+v", s.Placement, want)
	}
	if c.Snapshot().Rotated {
		t.Fatal("mobile never rotates the layout")
	}

	h.geo.container = Rect{W: 300, H: 600}
	c.Resize()
	if got := c.Snapshot(); got.Edge != EdgeRight || got.Position != (Position{92, 276}) {
		t.Fatalf("resize must keep the edge: %+v", got)
	}
}

func TestMobileSettleAfterCollapse(t *testing.T) {
	h := newHarness(t, Mobile)
	c := h.mount()
	h.drag(TargetHandle, 200, 30, 0, 700) // flick down

	if !c.TapCollapse() {
		t.Fatal("collapse rejected")
	}
	c.Settle()
	c.Settle()
	snap := c.Snapshot()
	// Collapsed square is 44; bottom edge at 800-44-8.
	if snap.Edge != EdgeBottom || snap.Position != (Position{178, 748}) {
		t.Fatalf("unexpected placement after collapse: %+v", snap)
	}
}

func TestDisposeMakesControllerInert(t *testing.T) {
	h := newHarness(t, Desktop)
	c := h.mount()
	c.PointerDown(mouse(1, 500, 30), TargetHandle)
	c.PointerMove(mouse(1, 800, 300))
	c.Dispose()

	snap := c.Snapshot()
	if snap.Dragging || snap.Position != (Position{350, 16}) {
		t.Fatalf("dispose left a stale session: %+v", snap)
	}
	if c.PointerDown(mouse(1, 500, 30), TargetHandle) || c.Resize() || c.Settle() || c.TapCollapse() {
		t.Fatal("disposed controller still reacts")
	}

	// A fresh mount is independent.
	d := h.mount()
	if !d.PointerDown(mouse(1, 500, 30), TargetHandle) {
		t.Fatal("new controller rejected a drag")
	}
}
