package article

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/colonyops/nupedia/internal/core/article"
	"github.com/colonyops/nupedia/internal/core/styles"
)

// RenderTOC renders the table of contents for the given sections. The entry
// at selected is highlighted; pass -1 to highlight nothing. Labels are
// clipped to width display cells.
func RenderTOC(sections []string, selected, width int) string {
	entries := article.TableOfContents(sections)
	if len(entries) == 0 {
		return styles.EmptyPlaceholderStyle.Render("No sections")
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		label := runewidth.Truncate(e.Label, max(width, 1), "…")
		style := styles.TOCEntryStyle
		if e.Index == selected {
			style = styles.TOCEntrySelected
		}
		lines = append(lines, style.Render(label))
	}
	return strings.Join(lines, "\n")
}

// sidebar renders the contents panel with its heading.
func sidebar(sections []string, selected, width, height int) string {
	inner := max(width-2, 1) // horizontal padding
	heading := styles.SidebarTitleStyle.Render(styles.IconMenu + " Contents")
	body := RenderTOC(sections, selected, inner)

	return styles.SidebarStyle.
		Width(width).
		Height(max(height, 1)).
		Render(heading + "\n\n" + body)
}
