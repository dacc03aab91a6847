package ui

import "github.com/charmbracelet/lipgloss"

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	muted     = lipgloss.AdaptiveColor{Light: "#969B86", Dark: "#696969"}

	barStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(highlight)

	barDraggingStyle = barStyle.
				BorderForeground(special)

	handleStyle = lipgloss.NewStyle().
			Foreground(muted)

	toolStyle = lipgloss.NewStyle()

	toolActiveStyle = toolStyle.
			Background(highlight).
			Foreground(lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"})

	statusStyle = lipgloss.NewStyle().
			Foreground(special)
)

// palette is the swatch strip; the strip scrolls sideways through it.
var palette = []lipgloss.Color{
	"#E06C75", "#E5C07B", "#98C379", "#56B6C2", "#61AFEF", "#C678DD",
	"#BE5046", "#D19A66", "#7A9F60", "#3A8FB7", "#4078F2", "#A626A4",
}
