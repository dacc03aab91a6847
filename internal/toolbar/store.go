package toolbar

import (
	"errors"
	"math"
	"strconv"

	"github.com/rileylov/dockbar/internal/kv"
)

// PositionStore reads and writes the four persisted slots. Values are never
// trusted as clamped; callers re-validate them against the live container.
type PositionStore struct {
	slots  kv.Surface
	prefix string
}

func NewPositionStore(slots kv.Surface, prefix string) *PositionStore {
	if prefix == "" {
		prefix = "toolbar"
	}
	return &PositionStore{slots: slots, prefix: prefix}
}

// Keys returns the slot names in x, y, orientation, collapsed order.
func (s *PositionStore) Keys() [4]string {
	return [4]string{s.key("x"), s.key("y"), s.key("orientation"), s.key("collapsed")}
}

// Load returns the persisted state, replacing anything absent or malformed
// with defaults for the frame's viewport mode.
func (s *PositionStore) Load(f Frame, cfg Config) State {
	st := State{Position: DefaultPosition(f, cfg), Orientation: Horizontal}

	x, okX := s.float("x")
	y, okY := s.float("y")
	if okX && okY {
		st.Position = Position{X: x, Y: y}
	}
	if v, ok := s.slots.Get(s.key("orientation")); ok {
		st.Orientation, _ = ParseOrientation(v)
	}
	if v, ok := s.slots.Get(s.key("collapsed")); ok {
		st.Collapsed, _ = strconv.ParseBool(v)
	}
	return st
}

// DefaultPosition is where a toolbar with no history starts.
func DefaultPosition(f Frame, cfg Config) Position {
	if f.Mode == Mobile {
		return Position{X: cfg.MobileDefaultLeft, Y: f.topInset(cfg)}
	}
	return Position{X: (f.Container.W - f.Widget.W) / 2, Y: cfg.DefaultTop}
}

func (s *PositionStore) SavePlacement(pos Position, o Orientation) error {
	return errors.Join(
		s.slots.Set(s.key("x"), strconv.FormatFloat(pos.X, 'f', -1, 64)),
		s.slots.Set(s.key("y"), strconv.FormatFloat(pos.Y, 'f', -1, 64)),
		s.slots.Set(s.key("orientation"), o.String()),
	)
}

func (s *PositionStore) SaveCollapsed(collapsed bool) error {
	return s.slots.Set(s.key("collapsed"), strconv.FormatBool(collapsed))
}

func (s *PositionStore) float(name string) (float64, bool) {
	raw, ok := s.slots.Get(s.key(name))
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func (s *PositionStore) key(name string) string {
	return s.prefix + "." + name
}
