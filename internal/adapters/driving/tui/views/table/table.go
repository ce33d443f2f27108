// Package table holds the fixed-width cell and scrolling helpers shared by
// the leaderboard and marks views.
package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const ellipsis = "…"

// Cell pads or truncates text to exactly width display columns.
func Cell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(text) <= width {
		return text + strings.Repeat(" ", width-lipgloss.Width(text))
	}
	runes := []rune(text)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	out := string(runes) + ellipsis
	return out + strings.Repeat(" ", width-lipgloss.Width(out))
}

// RightCell right-aligns text within width display columns.
func RightCell(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return Cell(text, width)
	}
	return strings.Repeat(" ", width-w) + text
}

// Scroll keeps selected inside a window of visible rows starting at offset.
// It returns the adjusted offset and the [start, end) row range to draw.
func Scroll(selected, offset, total, visible int) (newOffset, start, end int) {
	if visible < 1 {
		visible = 1
	}
	if selected < offset {
		offset = selected
	}
	if selected >= offset+visible {
		offset = selected - visible + 1
	}
	if offset > total-visible {
		offset = total - visible
	}
	if offset < 0 {
		offset = 0
	}
	end = offset + visible
	if end > total {
		end = total
	}
	return offset, offset, end
}
