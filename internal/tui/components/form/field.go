package form

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/nupedia/internal/core/styles"
)

// Field is the interface implemented by all form field types.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() string
	SetValue(v string)
	SetWidth(w int)
	Label() string
}

// fieldFrame wraps a rendered input with its label and border.
func fieldFrame(label, input string, focused bool) string {
	titleStyle := styles.TextMutedStyle
	borderStyle := styles.FormFieldStyle
	if focused {
		titleStyle = styles.FormTitleStyle
		borderStyle = styles.FormFieldFocusedStyle
	}

	return borderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(label), input))
}
