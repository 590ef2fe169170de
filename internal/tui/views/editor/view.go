// Package editor implements the article editor form.
package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/nupedia/internal/core/styles"
	"github.com/colonyops/nupedia/internal/tui/components/form"
	"github.com/colonyops/nupedia/internal/tui/events"
)

// chromeHeight is the vertical space used by everything except the content
// textarea: heading, title field, field labels, gaps and help.
const chromeHeight = 10

// KeyMap defines the editor key bindings.
type KeyMap struct {
	Save    key.Binding
	Preview key.Binding
}

// DefaultKeyMap returns the built-in editor bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save changes")),
		Preview: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "preview")),
	}
}

// View edits a draft copy of the active article. Drafts never leave the
// editor until they are saved.
type View struct {
	dialog  *form.Dialog
	title   *form.TextField
	content *form.TextAreaField
	keys    KeyMap
	width   int
	height  int
}

// New creates an empty editor.
func New(keys KeyMap) View {
	v := View{keys: keys}
	v.build("", "")
	return v
}

func (v *View) build(title, content string) {
	v.title = form.NewTextField("Article Title", "Enter article title", title)
	v.content = form.NewTextAreaField("Content", "Enter article content...", content)
	v.dialog = form.NewDialog("", []form.Field{v.title, v.content})
	v.dialog.Help = v.keys.Save.Help().Key + ": save  " +
		v.keys.Preview.Help().Key + "/esc: preview  tab: next field"
	v.resize()
}

// Load discards any draft and starts editing title and content.
func (v View) Load(title, content string) (View, tea.Cmd) {
	v.build(title, content)
	return v, v.dialog.Focus()
}

// SetSize updates the available area.
func (v View) SetSize(width, height int) View {
	v.width = width
	v.height = height
	v.resize()
	return v
}

func (v *View) resize() {
	if v.width <= 0 {
		return
	}
	v.dialog.SetWidth(v.width)
	v.content.SetHeight(v.height - chromeHeight)
}

// Draft returns the current draft title and content.
func (v View) Draft() (title, content string) {
	return v.title.Value(), v.content.Value()
}

// Update handles input for the editor.
func (v View) Update(msg tea.Msg) (View, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, v.keys.Save):
			return v, v.save()
		case key.Matches(keyMsg, v.keys.Preview):
			return v, events.Emit(events.PreviewRequestedMsg{})
		}
	}

	var cmd tea.Cmd
	v.dialog, cmd = v.dialog.Update(msg)

	switch {
	case v.dialog.Submitted():
		v.dialog.Reset()
		return v, v.save()
	case v.dialog.Cancelled():
		v.dialog.Reset()
		return v, events.Emit(events.PreviewRequestedMsg{})
	}

	return v, cmd
}

func (v View) save() tea.Cmd {
	title, content := v.Draft()
	return events.Emit(events.SavedMsg{Title: title, Content: content})
}

// View renders the editor.
func (v View) View() string {
	heading := styles.FormHeadingStyle.Render(styles.IconPen + " Editing Article")
	buttons := styles.ButtonStyle.Render(styles.IconEye+" Preview") + " " +
		styles.ButtonPrimaryStyle.Render(styles.IconSave+" Save Changes")

	gap := max(v.width-lipgloss.Width(heading)-lipgloss.Width(buttons), 1)
	header := lipgloss.JoinHorizontal(lipgloss.Top, heading, lipgloss.NewStyle().Width(gap).Render(""), buttons)

	return lipgloss.JoinVertical(lipgloss.Left, header, v.dialog.View())
}
