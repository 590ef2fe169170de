package form

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/nupedia/internal/core/styles"
)

// defaultHelp is shown under the fields when no custom help is set.
const defaultHelp = "tab: next  shift+tab: prev  enter: submit  esc: cancel"

// Dialog is a form container that manages focus cycling, submission, and
// cancellation across a set of form fields.
type Dialog struct {
	fields       []Field
	focusedField int
	submitted    bool
	cancelled    bool
	Title        string
	Help         string
}

// NewDialog creates a form dialog with the given fields. The first field is
// focused automatically.
func NewDialog(title string, fields []Field) *Dialog {
	d := &Dialog{
		fields: fields,
		Title:  title,
		Help:   defaultHelp,
	}
	if len(fields) > 0 {
		fields[0].Focus()
	}
	return d
}

// Update handles key input for the dialog, managing focus cycling and submit/cancel.
func (d *Dialog) Update(msg tea.Msg) (*Dialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d.updateFocusedField(msg)
	}

	switch keyMsg.String() {
	case "tab":
		return d.advanceFocus()
	case "shift+tab":
		return d.retreatFocus()
	case "enter":
		if d.isTextAreaFocused() {
			// Let textarea handle enter for newline insertion
			return d.updateFocusedField(msg)
		}
		return d.advanceFocus()
	case "esc":
		d.cancelled = true
		return d, nil
	}

	return d.updateFocusedField(msg)
}

// View renders all fields vertically with spacing and help text.
func (d *Dialog) View() string {
	var parts []string
	if d.Title != "" {
		parts = append(parts, styles.FormHeadingStyle.Render(d.Title))
	}
	for i, field := range d.fields {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, field.View())
	}

	if d.Help != "" {
		parts = append(parts, "", styles.FormHelpStyle.Render(d.Help))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// SetWidth resizes every field to the given outer width.
func (d *Dialog) SetWidth(w int) {
	for _, field := range d.fields {
		field.SetWidth(w)
	}
}

// Submitted returns whether the form was submitted.
func (d *Dialog) Submitted() bool { return d.submitted }

// Cancelled returns whether the form was cancelled.
func (d *Dialog) Cancelled() bool { return d.cancelled }

// Reset clears the submitted and cancelled flags and moves focus back to
// the first field. Field values are kept.
func (d *Dialog) Reset() tea.Cmd {
	d.submitted = false
	d.cancelled = false
	if len(d.fields) == 0 {
		return nil
	}
	d.fields[d.focusedField].Blur()
	d.focusedField = 0
	return d.fields[0].Focus()
}

// Clear empties every field.
func (d *Dialog) Clear() {
	for _, field := range d.fields {
		field.SetValue("")
	}
}

// Blur removes focus from the active field.
func (d *Dialog) Blur() {
	if len(d.fields) > 0 {
		d.fields[d.focusedField].Blur()
	}
}

// Focus gives focus back to the active field.
func (d *Dialog) Focus() tea.Cmd {
	if len(d.fields) == 0 {
		return nil
	}
	return d.fields[d.focusedField].Focus()
}

// FocusedIndex returns the index of the focused field.
func (d *Dialog) FocusedIndex() int { return d.focusedField }

func (d *Dialog) advanceFocus() (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	next := d.focusedField + 1
	if next >= len(d.fields) {
		// Past the last field: submit
		d.submitted = true
		return d, nil
	}

	d.fields[d.focusedField].Blur()
	d.focusedField = next
	cmd := d.fields[d.focusedField].Focus()
	return d, cmd
}

func (d *Dialog) retreatFocus() (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 || d.focusedField == 0 {
		return d, nil
	}

	d.fields[d.focusedField].Blur()
	d.focusedField--
	cmd := d.fields[d.focusedField].Focus()
	return d, cmd
}

func (d *Dialog) updateFocusedField(msg tea.Msg) (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	var cmd tea.Cmd
	d.fields[d.focusedField], cmd = d.fields[d.focusedField].Update(msg)
	return d, cmd
}

func (d *Dialog) isTextAreaFocused() bool {
	if len(d.fields) == 0 {
		return false
	}
	_, ok := d.fields[d.focusedField].(*TextAreaField)
	return ok
}
