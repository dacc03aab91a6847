package toolbar

// PointerType is the kind of device behind a pointer event.
type PointerType int

const (
	PointerMouse PointerType = iota
	PointerPen
	PointerTouch
)

// PointerEvent is a host pointer event in the container's coordinate space.
type PointerEvent struct {
	ID      int
	X, Y    float64
	Type    PointerType
	Primary bool // primary button held; ignored for touch
}

// Target is the part of the toolbar a pointer event landed on.
type Target int

const (
	TargetNone Target = iota
	TargetBody
	TargetHandle
	TargetCollapse
	TargetButton
	TargetInput
	TargetScroll
)

func (t Target) String() string {
	switch t {
	case TargetBody:
		return "body"
	case TargetHandle:
		return "handle"
	case TargetCollapse:
		return "collapse"
	case TargetButton:
		return "button"
	case TargetInput:
		return "input"
	case TargetScroll:
		return "scroll"
	default:
		return "none"
	}
}

// Interactive reports whether a press on t belongs to the control under the
// pointer rather than to a drag. The collapsed pill is the whole widget, so
// it doubles as the drag handle.
func Interactive(t Target, collapsed bool) bool {
	switch t {
	case TargetButton, TargetInput, TargetScroll:
		return true
	case TargetCollapse:
		return !collapsed
	}
	return false
}
