package form

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/nupedia/internal/core/styles"
)

// TextAreaField is a multi-line text input form field.
type TextAreaField struct {
	input   textarea.Model
	label   string
	focused bool
}

// NewTextAreaField creates a new multi-line text input field.
func NewTextAreaField(label, placeholder, defaultVal string) *TextAreaField {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	ta.BlurredStyle.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	ta.SetHeight(4)
	ta.SetWidth(40)

	if defaultVal != "" {
		ta.SetValue(defaultVal)
	}

	return &TextAreaField{
		input: ta,
		label: label,
	}
}

func (f *TextAreaField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *TextAreaField) View() string {
	return fieldFrame(f.label, f.input.View(), f.focused)
}

func (f *TextAreaField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextAreaField) Blur() {
	f.focused = false
	f.input.Blur()
}

// SetWidth sets the outer width of the field including its frame.
func (f *TextAreaField) SetWidth(w int) {
	f.input.SetWidth(max(w-frameWidth, 1))
}

// SetHeight sets the number of visible lines.
func (f *TextAreaField) SetHeight(h int) {
	f.input.SetHeight(max(h, 1))
}

func (f *TextAreaField) SetValue(v string) { f.input.SetValue(v) }
func (f *TextAreaField) Focused() bool     { return f.focused }
func (f *TextAreaField) Value() string     { return f.input.Value() }
func (f *TextAreaField) Label() string     { return f.label }
