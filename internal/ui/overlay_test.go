package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestOverlay(t *testing.T) {
	bg := strings.Join([]string{"..........", "..........", ".........."}, "\n")

	tests := []struct {
		name string
		fg   string
		x, y int
		want []string
	}{
		{
			name: "inside",
			fg:   "ab\ncd",
			x:    3, y: 1,
			want: []string{"..........", "...ab.....", "...cd....."},
		},
		{
			name: "clipped at the bottom",
			fg:   "ab\ncd",
			x:    0, y: 2,
			want: []string{"..........", "..........", "ab........"},
		},
		{
			name: "overhangs the right edge",
			fg:   "abcd",
			x:    8, y: 0,
			want: []string{"........abcd", "..........", ".........."},
		},
		{
			name: "negative column",
			fg:   "ab",
			x:    -3, y: 0,
			want: []string{"ab........", "..........", ".........."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Split(ansi.Strip(overlay(bg, tt.fg, tt.x, tt.y)), "\n")
			if strings.Join(got, "\n") != strings.Join(tt.want, "\n") {
				t.Errorf("overlay() =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(tt.want, "\n"))
			}
		})
	}
}

func TestOverlayKeepsStyledBackground(t *testing.T) {
	bg := lipgloss.NewStyle().Bold(true).Render("0123456789")
	got := ansi.Strip(overlay(bg, "xy", 4, 0))
	if got != "0123xy6789" {
		t.Errorf("overlay() = %q, want %q", got, "0123xy6789")
	}
}

func TestOverlayPadsShortLines(t *testing.T) {
	got := ansi.Strip(overlay("ab", "x", 4, 0))
	if got != "ab  x" {
		t.Errorf("overlay() = %q, want %q", got, "ab  x")
	}
}
