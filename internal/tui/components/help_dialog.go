// Package components provides reusable TUI components.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/nupedia/internal/core/styles"
)

// HelpEntry represents a single keyboard shortcut entry.
type HelpEntry struct {
	Key  string
	Desc string
}

// HelpDialogSection groups related help entries under a title.
type HelpDialogSection struct {
	Title   string
	Entries []HelpEntry
}

// HelpDialog displays all available keyboard shortcuts.
type HelpDialog struct {
	title    string
	sections []HelpDialogSection
}

// NewHelpDialog creates a new help dialog with the given sections.
func NewHelpDialog(title string, sections []HelpDialogSection) *HelpDialog {
	return &HelpDialog{
		title:    title,
		sections: sections,
	}
}

// View renders the help dialog in a single column.
func (h *HelpDialog) View() string {
	return h.render(1)
}

func (h *HelpDialog) render(columns int) string {
	blocks := h.sectionBlocks()

	body := strings.Join(blocks, "\n\n")
	if columns > 1 && len(blocks) > 1 {
		split := (len(blocks) + 1) / 2
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			strings.Join(blocks[:split], "\n\n"),
			Pad(helpColumnGap),
			strings.Join(blocks[split:], "\n\n"),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.TextForegroundBoldStyle.Render(h.title),
		"",
		body,
		styles.HelpDialogHelpStyle.Render("esc/? close"),
	)

	return styles.HelpDialogModalStyle.Render(content)
}

const helpColumnGap = 4

// sectionBlocks renders each non-empty section as a block of lines.
func (h *HelpDialog) sectionBlocks() []string {
	separator := styles.TextMutedStyle.Render(strings.Repeat("─", 25))

	blocks := make([]string, 0, len(h.sections))
	for _, section := range h.sections {
		if len(section.Entries) == 0 {
			continue
		}

		var lines []string
		if section.Title != "" {
			lines = append(lines, styles.HelpDialogSectionStyle.Render(section.Title), separator)
		}
		for _, entry := range section.Entries {
			lines = append(lines, formatKeyDesc(entry.Key, entry.Desc))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return blocks
}

// Overlay renders the help dialog centered over the given background. When
// a single column is taller than the background, sections are split into
// two columns if they fit the width.
func (h *HelpDialog) Overlay(background string, width, height int) string {
	modal := h.render(1)
	if lipgloss.Height(modal) > height {
		if wide := h.render(2); lipgloss.Width(wide) <= width {
			modal = wide
		}
	}
	return PlaceOverlay(background, modal, width, height)
}

// formatKeyDesc formats a key-description pair with consistent alignment.
func formatKeyDesc(key, desc string) string {
	const keyWidth = 12

	paddedKey := key + Pad(keyWidth-lipgloss.Width(key))

	return styles.TextPrimaryBoldStyle.Render(paddedKey) + styles.TextForegroundStyle.Render(desc)
}
