// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

var (
	headerStyle = lipgloss.NewStyle().
			Background(subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#333", Dark: "#FFF"}).
			Height(1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight).
			Background(subtle)

	headerButtonStyle = lipgloss.NewStyle().
				Background(highlight).
				Foreground(lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"}).
				Margin(0, 1).
				Padding(0, 1)

	headerButtonActiveStyle = headerButtonStyle.
				Background(special).
				Bold(true)
)

type headerAction int

const (
	headerHelp headerAction = iota
	headerMouse
)

// headerActionMsg is emitted when a header button is clicked.
type headerActionMsg struct {
	action headerAction
}

type headerButton struct {
	label  string
	action headerAction
	active bool
}

// header is the fixed title row. In narrow mode it is drawn over the top of
// the canvas, which is why the toolbar needs to know where it ends.
type header struct {
	zones   *zone.Manager
	id      string
	width   int
	title   string
	buttons []headerButton
}

func newHeader(zones *zone.Manager, title string) *header {
	return &header{
		zones: zones,
		id:    zones.NewPrefix(),
		title: title,
		buttons: []headerButton{
			{label: "Help", action: headerHelp},
			{label: "Mouse", action: headerMouse, active: true},
		},
	}
}

func (h *header) height() int {
	return 1
}

func (h *header) setActive(action headerAction, active bool) {
	for i := range h.buttons {
		if h.buttons[i].action == action {
			h.buttons[i].active = active
		}
	}
}

func (h *header) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease {
			return nil
		}
		for i, b := range h.buttons {
			if inBounds(h.zones.Get(h.buttonID(i)), msg) {
				action := b.action
				return func() tea.Msg { return headerActionMsg{action: action} }
			}
		}
	}
	return nil
}

func (h *header) View() string {
	var buttonViews []string
	for i, button := range h.buttons {
		style := headerButtonStyle
		if button.active {
			style = headerButtonActiveStyle
		}
		buttonViews = append(buttonViews, h.zones.Mark(h.buttonID(i), style.Render(button.label)))
	}
	buttonsSection := lipgloss.JoinHorizontal(lipgloss.Center, buttonViews...)
	buttonsWidth := lipgloss.Width(buttonsSection)

	maxTitleWidth := h.width - buttonsWidth - 2
	if maxTitleWidth < 0 {
		maxTitleWidth = 0
	}
	titleText := h.title
	if lipgloss.Width(titleText) > maxTitleWidth {
		runes := []rune(titleText)
		for len(runes) > 0 && lipgloss.Width(string(runes))+1 > maxTitleWidth {
			runes = runes[:len(runes)-1]
		}
		if maxTitleWidth > 0 {
			titleText = string(runes) + "…"
		} else {
			titleText = ""
		}
	}
	title := titleStyle.Render(titleText)

	spacingWidth := h.width - lipgloss.Width(title) - buttonsWidth
	if spacingWidth < 0 {
		spacingWidth = 0
	}
	spacing := lipgloss.NewStyle().Background(subtle).Width(spacingWidth).Render("")
	content := lipgloss.JoinHorizontal(lipgloss.Center, title, spacing, buttonsSection)
	return headerStyle.Width(h.width).MaxHeight(1).Render(content)
}

func (h *header) buttonID(index int) string {
	return h.id + "button_" + string(rune('0'+index))
}

// inBounds is zone.ZoneInfo.InBounds that tolerates zones not yet scanned.
func inBounds(z *zone.ZoneInfo, msg tea.MouseMsg) bool {
	return z != nil && !z.IsZero() && z.InBounds(msg)
}
