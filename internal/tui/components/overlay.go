package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PlaceOverlay draws fg centered on top of bg. The background is padded or
// clipped to width x height first so the result always has that size.
func PlaceOverlay(bg, fg string, width, height int) string {
	x := max((width-lipgloss.Width(fg))/2, 0)
	y := max((height-lipgloss.Height(fg))/2, 0)
	return PlaceOverlayAt(bg, fg, x, y, width, height)
}

// PlaceOverlayAt draws fg with its top-left corner at column x, row y of bg.
// Rows of fg that fall below height are dropped.
func PlaceOverlayAt(bg, fg string, x, y, width, height int) string {
	bgLines := strings.Split(lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, bg), "\n")
	if len(bgLines) > height {
		bgLines = bgLines[:height]
	}
	fgLines := strings.Split(fg, "\n")
	fgW := lipgloss.Width(fg)

	for i, line := range fgLines {
		row := y + i
		if row < 0 {
			continue
		}
		if row >= len(bgLines) {
			break
		}
		bgLines[row] = spliceLine(bgLines[row], line, max(x, 0), fgW)
	}

	return strings.Join(bgLines, "\n")
}

// spliceLine replaces the cells [x, x+w) of base with insert, keeping the
// styling of the cells on either side.
func spliceLine(base, insert string, x, w int) string {
	baseW := ansi.StringWidth(base)
	if baseW < x {
		base += Pad(x - baseW)
	}

	left := ansi.Truncate(base, x, "")
	right := ansi.TruncateLeft(base, x+w, "")
	insert += Pad(w - ansi.StringWidth(insert))

	return left + "\x1b[0m" + insert + "\x1b[0m" + right
}
