// Package request implements the article request form.
package request

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/colonyops/nupedia/internal/core/styles"
	"github.com/colonyops/nupedia/internal/core/validate"
	"github.com/colonyops/nupedia/internal/tui/components/form"
	"github.com/colonyops/nupedia/internal/tui/events"
)

const (
	maxFormWidth     = 72
	descriptionLines = 6
)

// KeyMap defines the request form key bindings.
type KeyMap struct {
	Submit key.Binding
}

// DefaultKeyMap returns the built-in request form bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit request")),
	}
}

// Options configure a View.
type Options struct {
	Keys   KeyMap
	Logger zerolog.Logger
}

// View collects a title and a reason for a new article.
type View struct {
	dialog      *form.Dialog
	title       *form.TextField
	description *form.TextAreaField
	keys        KeyMap
	log         zerolog.Logger
	width       int
}

// New creates an empty request form.
func New(opts Options) View {
	keys := opts.Keys
	title := form.NewTextField("Article Title", "Enter the topic you'd like to see", "")
	description := form.NewTextAreaField("Why is this topic important?", "Describe why this topic should be added to Nupedia...", "")
	description.SetHeight(descriptionLines)

	dialog := form.NewDialog(styles.IconSend+" Request New Article", []form.Field{title, description})
	dialog.Help = keys.Submit.Help().Key + ": submit  tab: next field  esc: back"
	dialog.Blur()

	return View{
		dialog:      dialog,
		title:       title,
		description: description,
		keys:        keys,
		log:         opts.Logger,
	}
}

// Focus focuses the first field.
func (v View) Focus() (View, tea.Cmd) {
	return v, v.dialog.Reset()
}

// Blur removes focus from the form.
func (v View) Blur() View {
	v.dialog.Blur()
	return v
}

// SetSize updates the available width.
func (v View) SetSize(width, _ int) View {
	v.width = width
	v.dialog.SetWidth(min(width, maxFormWidth))
	return v
}

// Draft returns the raw field values.
func (v View) Draft() (title, description string) {
	return v.title.Value(), v.description.Value()
}

// Update handles input for the request form.
func (v View) Update(msg tea.Msg) (View, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, v.keys.Submit) {
		return v, v.submit()
	}

	var cmd tea.Cmd
	v.dialog, cmd = v.dialog.Update(msg)

	switch {
	case v.dialog.Submitted():
		v.dialog.Reset()
		return v, v.submit()
	case v.dialog.Cancelled():
		v.dialog.Reset()
		return v, events.Emit(events.HomeClickedMsg{})
	}

	return v, cmd
}

// submit emits the trimmed request and clears the form. Invalid drafts are
// left untouched and nothing is emitted.
func (v View) submit() tea.Cmd {
	title, description := v.Draft()
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if err := validate.ArticleRequest(title, description); err != nil {
		v.log.Debug().Err(err).Msg("ignoring incomplete article request")
		return nil
	}

	v.dialog.Clear()
	return tea.Batch(
		events.Emit(events.RequestSubmittedMsg{Title: title, Description: description}),
		v.dialog.Reset(),
	)
}

// View renders the form.
func (v View) View() string {
	button := styles.ButtonPrimaryStyle.Render(styles.IconSend + " Submit Request")
	content := lipgloss.JoinVertical(lipgloss.Left, v.dialog.View(), "", button)

	return lipgloss.PlaceHorizontal(v.width, lipgloss.Center, content)
}
