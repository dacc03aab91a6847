package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlay draws fg on top of bg with its top-left corner at column x, row y.
// Rows of fg that fall outside bg are dropped.
func overlay(bg, fg string, x, y int) string {
	if x < 0 {
		x = 0
	}
	bgLines := strings.Split(bg, "\n")
	for i, fl := range strings.Split(fg, "\n") {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}
		line := bgLines[row]
		width := ansi.StringWidth(line)

		left := ansi.Truncate(line, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ""
		if end := x + ansi.StringWidth(fl); end < width {
			right = ansi.TruncateLeft(line, end, "")
		}
		bgLines[row] = left + ansi.ResetStyle + fl + ansi.ResetStyle + right
	}
	return strings.Join(bgLines, "\n")
}
