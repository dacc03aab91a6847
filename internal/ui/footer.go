// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/rileylov/dockbar/internal/toolbar"
)

var (
	footerStyle = lipgloss.NewStyle().
			Background(subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#666", Dark: "#AAA"}).
			Height(1)

	debugStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999", Dark: "#666"})
)

type footer struct {
	width  int
	help   help.Model
	keys   keyMap
	status string
}

func newFooter(keys keyMap) *footer {
	return &footer{help: help.New(), keys: keys}
}

func (f *footer) height() int {
	return 1
}

func (f *footer) setWidth(w int) {
	f.width = w
	f.help.Width = w
}

func (f *footer) View(s toolbar.Snapshot, mouseOn bool) string {
	mouseInfo := "Mouse: disabled"
	if mouseOn {
		mouseInfo = "Mouse: enabled"
	}
	info := fmt.Sprintf("%s | %.0f,%.0f %s edge:%s | collapsed:%t | %s",
		s.Mode, s.Position.X, s.Position.Y, s.Orientation, s.Edge, s.Collapsed, mouseInfo)
	if f.status != "" {
		info += " | " + statusStyle.Render(f.status)
	}
	content := debugStyle.Render(info) + "  " + f.help.View(f.keys)
	return footerStyle.Width(f.width).Render(ansi.Truncate(content, f.width, "…"))
}
