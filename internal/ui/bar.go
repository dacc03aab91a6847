package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/dockbar/internal/toolbar"
)

const (
	swatchVisible = 4
	labelWidth    = 8
)

type tool struct {
	name  string
	short string
}

var tools = []tool{
	{name: "pen", short: "P"},
	{name: "rect", short: "R"},
	{name: "oval", short: "O"},
	{name: "erase", short: "E"},
	{name: "copy", short: "C"},
}

const toolCopy = 4

var labelBox = lipgloss.NewStyle().Width(labelWidth).MaxWidth(labelWidth)

// hit is what a mouse event landed on.
type hit struct {
	target toolbar.Target
	tool   int
	swatch int
}

var noHit = hit{target: toolbar.TargetNone, tool: -1, swatch: -1}

type markFunc func(id, v string) string

func plain(_, v string) string { return v }

// bar renders the toolbar in its three shapes and resolves clicks on it.
type bar struct {
	zones        *zone.Manager
	id           string
	active       int
	swatch       int
	swatchOffset int
	label        textinput.Model
}

func newBar(zones *zone.Manager) *bar {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "label"
	ti.CharLimit = 24
	ti.Width = labelWidth - 1
	return &bar{
		zones: zones,
		id:    zones.NewPrefix(),
		label: ti,
	}
}

// naturalSize is the size of the expanded horizontal layout.
func (b *bar) naturalSize() toolbar.Size {
	v := b.horizontal(plain, false)
	return toolbar.Size{W: float64(lipgloss.Width(v)), H: float64(lipgloss.Height(v))}
}

func (b *bar) View(s toolbar.Snapshot) string {
	mark := b.zones.Mark
	switch {
	case s.Collapsed:
		return b.pill(s.Footprint, mark, s.Dragging)
	case s.Rotated:
		return b.vertical(s.Footprint, mark, s.Dragging)
	default:
		return b.horizontal(mark, s.Dragging)
	}
}

func (b *bar) frame(dragging bool) lipgloss.Style {
	if dragging {
		return barDraggingStyle
	}
	return barStyle
}

func (b *bar) horizontal(mark markFunc, dragging bool) string {
	parts := []string{mark(b.id+"handle", handleStyle.Render("≡"))}
	for i, t := range tools {
		style := toolStyle
		if i == b.active {
			style = toolActiveStyle
		}
		parts = append(parts, mark(b.toolID(i), style.Render(t.short)))
	}
	parts = append(parts,
		mark(b.id+"swatch", b.swatches()),
		mark(b.id+"input", labelBox.Render(b.label.View())),
		mark(b.id+"collapse", "▾"),
	)
	return b.frame(dragging).Render(strings.Join(parts, " "))
}

// vertical lays the tools out top to bottom inside the rotated footprint.
func (b *bar) vertical(fp toolbar.Size, mark markFunc, dragging bool) string {
	lines := []string{mark(b.id+"handle", handleStyle.Render("≡"))}
	for i, t := range tools {
		style := toolStyle
		if i == b.active {
			style = toolActiveStyle
		}
		lines = append(lines, mark(b.toolID(i), style.Render(t.short)))
	}
	lines = append(lines, mark(b.id+"collapse", "▸"))

	w, h := inner(fp.W), inner(fp.H)
	return b.frame(dragging).
		Width(w).
		Height(h).
		MaxHeight(h + 2).
		Render(strings.Join(lines, "\n"))
}

func (b *bar) pill(fp toolbar.Size, mark markFunc, dragging bool) string {
	w, h := inner(fp.W), inner(fp.H)
	return mark(b.id+"collapse", b.frame(dragging).Width(w).Height(h).MaxHeight(h+2).Render("▸"))
}

func (b *bar) swatches() string {
	var sb strings.Builder
	sb.WriteString("‹")
	for i := 0; i < swatchVisible; i++ {
		idx := (b.swatchOffset + i) % len(palette)
		ch := "▮"
		if idx == b.swatch {
			ch = "█"
		}
		sb.WriteString(lipgloss.NewStyle().Foreground(palette[idx]).Render(ch))
	}
	sb.WriteString("›")
	return sb.String()
}

// scroll moves the swatch strip sideways.
func (b *bar) scroll(step int) {
	n := len(palette)
	b.swatchOffset = ((b.swatchOffset+step)%n + n) % n
}

// hitTest resolves the toolbar control under msg. The body is not a zone;
// the caller checks it against the rendered rectangle.
func (b *bar) hitTest(msg tea.MouseMsg) hit {
	if inBounds(b.zones.Get(b.id+"collapse"), msg) {
		return hit{target: toolbar.TargetCollapse, tool: -1, swatch: -1}
	}
	if inBounds(b.zones.Get(b.id+"handle"), msg) {
		return hit{target: toolbar.TargetHandle, tool: -1, swatch: -1}
	}
	for i := range tools {
		if inBounds(b.zones.Get(b.toolID(i)), msg) {
			return hit{target: toolbar.TargetButton, tool: i, swatch: -1}
		}
	}
	if z := b.zones.Get(b.id + "swatch"); inBounds(z, msg) {
		h := hit{target: toolbar.TargetScroll, tool: -1, swatch: -1}
		// Skip the leading arrow.
		if x, _ := z.Pos(msg); x >= 1 && x <= swatchVisible {
			h.swatch = (b.swatchOffset + x - 1) % len(palette)
		}
		return h
	}
	if inBounds(b.zones.Get(b.id+"input"), msg) {
		return hit{target: toolbar.TargetInput, tool: -1, swatch: -1}
	}
	return noHit
}

func (b *bar) toolID(i int) string {
	return b.id + "tool_" + string(rune('0'+i))
}

// inner is the content size inside a one-cell border.
func inner(v float64) int {
	n := int(v) - 2
	if n < 1 {
		return 1
	}
	return n
}
