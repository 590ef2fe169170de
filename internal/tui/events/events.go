// Package events defines the outbound messages child views send to the root
// model. Views never touch shared state; the root model turns each message
// into a wiki command.
package events

import tea "github.com/charmbracelet/bubbletea"

// HomeClickedMsg asks to show the home page.
type HomeClickedMsg struct{}

// RequestClickedMsg asks to show the article request form.
type RequestClickedMsg struct{}

// SearchSubmittedMsg carries a trimmed, non-empty search query.
type SearchSubmittedMsg struct {
	Query string
}

// ArticleSelectedMsg asks to open the article with the given title.
type ArticleSelectedMsg struct {
	Title string
}

// RequestSubmittedMsg carries a validated article request.
type RequestSubmittedMsg struct {
	Title       string
	Description string
}

// EditRequestedMsg asks to switch the article view into editing.
type EditRequestedMsg struct{}

// SavedMsg carries the editor draft to store as the active article.
type SavedMsg struct {
	Title   string
	Content string
}

// PreviewRequestedMsg asks to leave editing without saving.
type PreviewRequestedMsg struct{}

// Emit returns a tea.Cmd that produces msg.
func Emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
