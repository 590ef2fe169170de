package form

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/nupedia/internal/core/styles"
)

// frameWidth is the horizontal space taken by the field border and padding.
const frameWidth = 2

// TextField is a single-line text input form field.
type TextField struct {
	input   textinput.Model
	label   string
	focused bool
}

// NewTextField creates a new single-line text input field.
func NewTextField(label, placeholder, defaultVal string) *TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Width = 40
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.ColorPrimary)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.ColorMuted)

	if defaultVal != "" {
		ti.SetValue(defaultVal)
	}

	return &TextField{
		input: ti,
		label: label,
	}
}

func (f *TextField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *TextField) View() string {
	return fieldFrame(f.label, f.input.View(), f.focused)
}

func (f *TextField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextField) Blur() {
	f.focused = false
	f.input.Blur()
}

// SetWidth sets the outer width of the field including its frame.
func (f *TextField) SetWidth(w int) {
	f.input.Width = max(w-frameWidth-1, 1)
}

func (f *TextField) SetValue(v string) { f.input.SetValue(v) }
func (f *TextField) Focused() bool     { return f.focused }
func (f *TextField) Value() string     { return f.input.Value() }
func (f *TextField) Label() string     { return f.label }
