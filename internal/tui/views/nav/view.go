// Package nav implements the top navigation bar: brand, search box and the
// home and request affordances.
package nav

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/nupedia/internal/core/styles"
	"github.com/colonyops/nupedia/internal/tui/events"
)

const (
	maxSearchWidth = 60
	minSearchWidth = 12
)

// Section identifies which nav action is highlighted.
type Section int

const (
	SectionNone Section = iota
	SectionHome
	SectionRequest
)

// KeyMap defines the navigation key bindings.
type KeyMap struct {
	Home    key.Binding
	Request key.Binding
	Search  key.Binding
}

// DefaultKeyMap returns the built-in navigation bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Home:    key.NewBinding(key.WithKeys("ctrl+o", "g"), key.WithHelp("g", "home")),
		Request: key.NewBinding(key.WithKeys("ctrl+r", "n"), key.WithHelp("n", "request article")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	}
}

// View is the navigation bar. The search draft is local; only submitted
// queries leave the view.
type View struct {
	input  textinput.Model
	keys   KeyMap
	active Section
	width  int
}

// New creates a navigation bar with an empty, unfocused search box.
func New(keys KeyMap) View {
	ti := textinput.New()
	ti.Placeholder = "Search Nupedia"
	ti.Prompt = ""
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.ColorPrimary)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.ColorMuted)

	return View{
		input: ti,
		keys:  keys,
	}
}

// SetWidth updates the bar width.
func (v View) SetWidth(w int) View {
	v.width = w
	v.input.Width = v.searchWidth() - 4 // border + padding
	return v
}

// SetActive highlights the given section.
func (v View) SetActive(s Section) View {
	v.active = s
	return v
}

// Focused reports whether the search box has focus.
func (v View) Focused() bool { return v.input.Focused() }

// Query returns the current search draft.
func (v View) Query() string { return v.input.Value() }

// Focus focuses the search box.
func (v View) Focus() (View, tea.Cmd) {
	return v, v.input.Focus()
}

// Blur removes focus from the search box, keeping the draft.
func (v View) Blur() View {
	v.input.Blur()
	return v
}

// Handles reports whether msg is meant for the navigation bar. While the
// search box is focused the bar takes all keys. Otherwise it takes its own
// bindings; plain keys only count when no other text input is focused.
func (v View) Handles(msg tea.KeyMsg, inputFocused bool) bool {
	if v.Focused() {
		return true
	}
	if !key.Matches(msg, v.keys.Home, v.keys.Request, v.keys.Search) {
		return false
	}
	return !inputFocused || IsChord(msg)
}

// Update handles input for the navigation bar.
func (v View) Update(msg tea.Msg) (View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if !v.Focused() {
			return v, nil
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	if v.Focused() {
		return v.updateFocused(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, v.keys.Home):
		return v, events.Emit(events.HomeClickedMsg{})
	case key.Matches(keyMsg, v.keys.Request):
		return v, events.Emit(events.RequestClickedMsg{})
	case key.Matches(keyMsg, v.keys.Search):
		return v.Focus()
	}
	return v, nil
}

func (v View) updateFocused(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "enter":
		query := strings.TrimSpace(v.input.Value())
		if query == "" {
			return v, nil
		}
		v.input.SetValue("")
		return v, events.Emit(events.SearchSubmittedMsg{Query: query})
	case "esc":
		return v.Blur(), nil
	}

	if IsChord(msg) {
		switch {
		case key.Matches(msg, v.keys.Home):
			return v.Blur(), events.Emit(events.HomeClickedMsg{})
		case key.Matches(msg, v.keys.Request):
			return v.Blur(), events.Emit(events.RequestClickedMsg{})
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// IsChord reports whether msg carries a ctrl or alt modifier. Chords are
// never text, so they stay usable while an input has focus.
func IsChord(msg tea.KeyMsg) bool {
	s := msg.String()
	return msg.Alt || strings.HasPrefix(s, "ctrl+")
}

// View renders the navigation bar.
func (v View) View() string {
	brand := styles.NavBrandStyle.Render(styles.IconBook + " Nupedia")

	searchStyle := styles.NavSearchStyle
	iconStyle := styles.TextMutedStyle
	if v.Focused() {
		searchStyle = styles.NavSearchFocused
		iconStyle = styles.TextPrimaryStyle
	}
	search := searchStyle.Width(v.searchWidth()).Render(iconStyle.Render(styles.IconSearch) + " " + v.input.View())

	home := v.action(styles.IconHome+" Home", SectionHome)
	request := v.action(styles.IconPen+" Request", SectionRequest)
	actions := lipgloss.JoinHorizontal(lipgloss.Center, home, request)

	used := lipgloss.Width(brand) + lipgloss.Width(search) + lipgloss.Width(actions)
	gap := max((v.barInnerWidth()-used)/2, 1)
	spacer := strings.Repeat(" ", gap)

	row := lipgloss.JoinHorizontal(lipgloss.Center, brand, spacer, search, spacer, actions)
	return styles.NavBarStyle.Width(max(v.width, 1)).Render(row)
}

func (v View) action(label string, s Section) string {
	if v.active == s {
		return styles.NavActionActive.Render(label)
	}
	return styles.NavActionStyle.Render(label)
}

// barInnerWidth is the width inside the bar's padding.
func (v View) barInnerWidth() int {
	return max(v.width-2, 0)
}

func (v View) searchWidth() int {
	// brand and actions take roughly 40 cells
	return min(max(v.barInnerWidth()-40, minSearchWidth), maxSearchWidth)
}
