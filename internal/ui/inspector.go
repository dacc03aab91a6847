package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/rileylov/dockbar/internal/kv"
	"github.com/rileylov/dockbar/internal/toolbar"
)

var inspectorStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

// inspector shows the persisted slots as they are on the surface.
type inspector struct {
	table table.Model
	store *toolbar.PositionStore
	slots kv.Surface
}

func newInspector(store *toolbar.PositionStore, slots kv.Surface) *inspector {
	columns := []table.Column{
		{Title: "Slot", Width: 22},
		{Title: "Value", Width: 14},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(len(store.Keys())+1),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Cell
	t.SetStyles(s)

	in := &inspector{table: t, store: store, slots: slots}
	in.refresh()
	return in
}

func (in *inspector) refresh() {
	keys := in.store.Keys()
	rows := make([]table.Row, 0, len(keys))
	for _, k := range keys {
		v, ok := in.slots.Get(k)
		if !ok {
			v = "-"
		}
		rows = append(rows, table.Row{k, v})
	}
	in.table.SetRows(rows)
}

func (in *inspector) View() string {
	return inspectorStyle.Render(in.table.View())
}
