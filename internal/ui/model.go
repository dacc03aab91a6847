// Package ui hosts the floating toolbar in a full-screen terminal program.
package ui

import (
	"fmt"
	"math"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"github.com/rileylov/dockbar/internal/kv"
	"github.com/rileylov/dockbar/internal/toolbar"
)

// DefaultBreakpoint is the terminal width below which the toolbar behaves
// like it does on a phone.
const DefaultBreakpoint = 80

// pointerID is the only pointer a terminal has.
const pointerID = 1

type Options struct {
	Title      string
	Config     toolbar.Config
	Breakpoint int
	Slots      kv.Surface
	Prefix     string
	Logger     *zap.Logger
	Clock      func() time.Time
}

// settleMsg is one of the two deferred passes after a collapse toggle. gen
// ties it to the controller that asked for it.
type settleMsg struct {
	gen  int
	pass int
}

type copiedMsg struct {
	err error
}

type Model struct {
	opts  Options
	log   *zap.Logger
	keys  keyMap
	zones *zone.Manager

	header    *header
	footer    *footer
	bar       *bar
	inspector *inspector
	help      *helpView
	store     *toolbar.PositionStore
	ctrl      *toolbar.Controller

	width    int
	height   int
	mode     toolbar.ViewportMode
	gen      int
	showHelp bool

	press   hit
	pressed bool
	hit     func(tea.MouseMsg) hit
}

func New(opts Options) *Model {
	if opts.Breakpoint <= 0 {
		opts.Breakpoint = DefaultBreakpoint
	}
	if opts.Slots == nil {
		opts.Slots = kv.NewMemory()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Title == "" {
		opts.Title = "dockbar"
	}

	zones := zone.New()
	keys := defaultKeyMap()
	store := toolbar.NewPositionStore(opts.Slots, opts.Prefix)
	m := &Model{
		opts:      opts,
		log:       opts.Logger,
		keys:      keys,
		zones:     zones,
		header:    newHeader(zones, opts.Title),
		footer:    newFooter(keys),
		bar:       newBar(zones),
		inspector: newInspector(store, opts.Slots),
		help:      &helpView{},
		store:     store,
	}
	m.hit = m.hitTest
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Close disposes the controller and stops the zone worker.
func (m *Model) Close() {
	if m.ctrl != nil {
		m.ctrl.Dispose()
	}
	m.zones.Close()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.header.Update(msg)
		m.footer.setWidth(msg.Width)
		if mode := m.viewport(); m.ctrl == nil || mode != m.mode {
			m.mount(mode)
		} else if m.ctrl.Resize() {
			m.inspector.refresh()
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case headerActionMsg:
		switch msg.action {
		case headerHelp:
			m.toggleHelp()
		case headerMouse:
			m.toggleMouse()
		}
		return m, nil

	case settleMsg:
		if msg.gen == m.gen && m.ctrl != nil && m.ctrl.Settle() {
			m.inspector.refresh()
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.footer.status = fmt.Sprintf("Couldn't write to clipboard: %v", msg.err)
		} else {
			m.footer.status = "Copied toolbar state"
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.bar.label, cmd = m.bar.label.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.bar.label.Focused() {
		if msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter {
			m.bar.label.Blur()
			return nil
		}
		var cmd tea.Cmd
		m.bar.label, cmd = m.bar.label.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.toggleHelp()
	case key.Matches(msg, m.keys.Mouse):
		m.toggleMouse()
	case key.Matches(msg, m.keys.Cancel):
		if m.ctrl != nil && m.ctrl.PointerCancel(toolbar.PointerEvent{ID: pointerID}) {
			m.pressed = false
		}
	case key.Matches(msg, m.keys.Collapse):
		return m.tapCollapse()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.ctrl == nil {
		return m.header.Update(msg)
	}
	// A drag may end over the header; the gesture owns that release.
	if !m.ctrl.Snapshot().Dragging {
		if cmd := m.header.Update(msg); cmd != nil {
			return cmd
		}
	}

	h := m.hit(msg)
	ev := toolbar.PointerEvent{
		ID:      pointerID,
		X:       float64(msg.X),
		Y:       float64(msg.Y),
		Type:    toolbar.PointerMouse,
		Primary: msg.Button == tea.MouseButtonLeft,
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if tea.MouseEvent(msg).IsWheel() {
			m.wheel(msg, h)
			return nil
		}
		m.press, m.pressed = h, true
		if m.ctrl.PointerDown(ev, h.target) {
			return nil
		}
		if h.target == toolbar.TargetInput {
			return m.bar.label.Focus()
		}
		m.bar.label.Blur()

	case tea.MouseActionMotion:
		m.ctrl.PointerMove(ev)

	case tea.MouseActionRelease:
		press, pressed := m.press, m.pressed
		m.pressed = false
		if s, ok := m.ctrl.PointerUp(ev); ok && s.Moved {
			m.inspector.refresh()
		}
		if !pressed || press.target != h.target {
			return nil
		}
		switch h.target {
		case toolbar.TargetCollapse:
			return m.tapCollapse()
		case toolbar.TargetButton:
			if h.tool == press.tool {
				return m.activate(h.tool)
			}
		case toolbar.TargetScroll:
			if h.swatch >= 0 {
				m.bar.swatch = h.swatch
			}
		}
	}
	return nil
}

func (m *Model) wheel(msg tea.MouseMsg, h hit) {
	if h.target != toolbar.TargetScroll {
		return
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		m.bar.scroll(-1)
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		m.bar.scroll(1)
	}
}

// tapCollapse toggles the collapsed flag and schedules the two settle
// passes: the first after the new shape is rendered, the second once that
// render has been measured.
func (m *Model) tapCollapse() tea.Cmd {
	if m.ctrl == nil || !m.ctrl.TapCollapse() {
		return nil
	}
	m.inspector.refresh()
	gen := m.gen
	return tea.Sequence(
		func() tea.Msg { return settleMsg{gen: gen, pass: 1} },
		func() tea.Msg { return settleMsg{gen: gen, pass: 2} },
	)
}

func (m *Model) activate(i int) tea.Cmd {
	if i < 0 || i >= len(tools) {
		return nil
	}
	m.bar.active = i
	m.footer.status = "tool: " + tools[i].name
	if i != toolCopy {
		return nil
	}
	line := m.stateLine()
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(line)}
	}
}

func (m *Model) stateLine() string {
	s := m.ctrl.Snapshot()
	return fmt.Sprintf("x=%g y=%g orientation=%s collapsed=%t", s.Position.X, s.Position.Y, s.Orientation, s.Collapsed)
}

func (m *Model) toggleHelp() {
	m.showHelp = !m.showHelp
	m.header.setActive(headerHelp, m.showHelp)
}

func (m *Model) toggleMouse() {
	m.zones.SetEnabled(!m.zones.Enabled())
	m.header.setActive(headerMouse, m.zones.Enabled())
}

// mount replaces the controller. The old one is disposed first so a gesture
// in flight cannot leak into the new instance.
func (m *Model) mount(mode toolbar.ViewportMode) {
	if m.ctrl != nil {
		m.ctrl.Dispose()
		m.ctrl = nil
	}
	m.mode = mode
	m.gen++
	m.pressed = false

	cfg := m.opts.Config
	if cfg == (toolbar.Config{}) {
		cfg = toolbar.CellConfig()
	}
	ctrl, err := toolbar.Mount(geometry{m}, m.store,
		toolbar.WithConfig(cfg),
		toolbar.WithViewport(m.viewport),
		toolbar.WithHeader(m.headerBottom),
		toolbar.WithClock(m.opts.Clock),
		toolbar.WithLogger(m.log),
	)
	if err != nil {
		m.log.Debug("toolbar not mounted", zap.Error(err), zap.Int("width", m.width), zap.Int("height", m.height))
		return
	}
	m.ctrl = ctrl
	m.inspector.refresh()
	m.log.Info("toolbar mounted", zap.Stringer("mode", mode), zap.Int("gen", m.gen))
}

func (m *Model) viewport() toolbar.ViewportMode {
	return modeFor(m.width, m.opts.Breakpoint)
}

func (m *Model) headerBottom() (float64, bool) {
	return float64(m.header.height()), true
}

// container is the canvas rectangle in screen cells. In narrow mode the
// header floats over it.
func (m *Model) container() toolbar.Rect {
	top := 0
	if m.viewport() == toolbar.Desktop {
		top = m.header.height()
	}
	h := m.height - top - m.footer.height()
	if h < 0 {
		h = 0
	}
	return toolbar.Rect{Y: float64(top), W: float64(m.width), H: float64(h)}
}

func (m *Model) hitTest(msg tea.MouseMsg) hit {
	if h := m.bar.hitTest(msg); h.target != toolbar.TargetNone {
		return h
	}
	if m.ctrl == nil {
		return noHit
	}
	s := m.ctrl.Snapshot()
	c := m.container()
	x := float64(msg.X) - c.X - s.Position.X
	y := float64(msg.Y) - c.Y - s.Position.Y
	if x >= 0 && y >= 0 && x < s.Footprint.W && y < s.Footprint.H {
		return hit{target: toolbar.TargetBody, tool: -1, swatch: -1}
	}
	return noHit
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	c := m.container()
	cw, ch := int(c.W), int(c.H)

	content := m.inspector.View()
	if m.showHelp {
		content = m.help.View(min(cw-4, 72))
	}
	canvas := lipgloss.NewStyle().MaxWidth(cw).MaxHeight(ch).
		Render(lipgloss.Place(cw, ch, lipgloss.Center, lipgloss.Center, content))

	if m.ctrl != nil {
		s := m.ctrl.Snapshot()
		canvas = overlay(canvas, m.bar.View(s), int(math.Round(s.Position.X)), int(math.Round(s.Position.Y)))
	}

	var screen string
	if m.viewport() == toolbar.Desktop {
		screen = lipgloss.JoinVertical(lipgloss.Left, m.header.View(), canvas, m.footerView())
	} else {
		screen = lipgloss.JoinVertical(lipgloss.Left, overlay(canvas, m.header.View(), 0, 0), m.footerView())
	}
	return m.zones.Scan(screen)
}

func (m *Model) footerView() string {
	var s toolbar.Snapshot
	if m.ctrl != nil {
		s = m.ctrl.Snapshot()
	}
	return m.footer.View(s, m.zones.Enabled())
}

// geometry reads the live layout for the controller.
type geometry struct {
	m *Model
}

func (g geometry) Frame() (toolbar.Rect, toolbar.Size, bool) {
	if g.m.width == 0 || g.m.height == 0 {
		return toolbar.Rect{}, toolbar.Size{}, false
	}
	return g.m.container(), g.m.bar.naturalSize(), true
}

// modeFor picks the viewport mode from the terminal width.
func modeFor(width, breakpoint int) toolbar.ViewportMode {
	if width < breakpoint {
		return toolbar.Mobile
	}
	return toolbar.Desktop
}

var _ tea.Model = (*Model)(nil)
var _ toolbar.Geometry = geometry{}
