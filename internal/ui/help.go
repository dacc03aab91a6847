package ui

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const helpMarkdown = `# dockbar

Drag the toolbar by its **≡** handle or any empty part of it.

- Near the top or bottom it lies flat; near the left or right it stands up.
- On narrow terminals it always docks to an edge. A quick flick picks the
  edge you flicked towards.
- **▾** collapses the toolbar into a pill. Drag the pill to move it, click it
  to expand.
- Scroll the swatch strip with the mouse wheel.

Position, orientation and the collapsed flag are saved on every move.
`

var helpStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(highlight).
	Padding(0, 1)

// helpView renders the help text once per width.
type helpView struct {
	width    int
	rendered string
}

func (h *helpView) View(width int) string {
	if width < 20 {
		width = 20
	}
	if width != h.width || h.rendered == "" {
		h.width = width
		h.rendered = renderMarkdown(helpMarkdown, width-4)
	}
	return helpStyle.Render(h.rendered)
}

func renderMarkdown(md string, wrap int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
