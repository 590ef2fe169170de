package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/nupedia/internal/core/styles"
	"github.com/colonyops/nupedia/internal/wiki"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// View renders the TUI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.width, m.height
	if w == 0 {
		w = fallbackWidth
	}
	if h == 0 {
		h = fallbackHeight
	}

	navView := m.nav.View()
	contentHeight := max(h-lipgloss.Height(navView)-statusBarHeight, 1)
	content := lipgloss.NewStyle().
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(m.screenView())

	mode := m.wiki.State().Mode()
	status := styles.StatusBarStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp(mode)))

	out := lipgloss.JoinVertical(lipgloss.Left, navView, content, status)
	if m.showHelp && m.helpDialog != nil {
		out = m.helpDialog.Overlay(out, w, h)
	}
	return m.toastView.Overlay(out, w, h)
}

func (m Model) screenView() string {
	switch m.wiki.State().Mode() {
	case wiki.ModeArticleViewing:
		return m.article.View()
	case wiki.ModeArticleEditing:
		return m.editor.View()
	case wiki.ModeRequest:
		return m.request.View()
	default:
		return m.home.View()
	}
}
