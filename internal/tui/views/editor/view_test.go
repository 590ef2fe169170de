package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/nupedia/internal/tui/events"
	"github.com/colonyops/nupedia/pkg/tuitest"
)

func loaded(t *testing.T, title, content string) View {
	t.Helper()
	v := New(DefaultKeyMap()).SetSize(80, 30)
	v, _ = v.Load(title, content)
	return v
}

func TestView_LoadInitializesDraft(t *testing.T) {
	v := loaded(t, "Title", "para one\n\npara two")

	title, content := v.Draft()
	assert.Equal(t, "Title", title)
	assert.Equal(t, "para one\n\npara two", content)
}

func TestView_TypingChangesDraftOnly(t *testing.T) {
	v := loaded(t, "Go", "body")

	v, _ = tuitest.Feed(v, tuitest.Type("pher")...)

	title, content := v.Draft()
	assert.Equal(t, "Gopher", title)
	assert.Equal(t, "body", content)
}

func TestView_SaveEmitsDraft(t *testing.T) {
	v := loaded(t, "A", "B")
	v, _ = tuitest.Feed(v, tuitest.Type("x")...)

	_, cmd := v.Update(tuitest.Key(tea.KeyCtrlS))

	require.NotNil(t, cmd)
	assert.Equal(t, events.SavedMsg{Title: "Ax", Content: "B"}, cmd())
}

func TestView_SaveWithEmptyTitle(t *testing.T) {
	v := loaded(t, "", "")

	_, cmd := v.Update(tuitest.Key(tea.KeyCtrlS))

	require.NotNil(t, cmd)
	assert.Equal(t, events.SavedMsg{}, cmd())
}

func TestView_PreviewEmitsWithoutDraft(t *testing.T) {
	v := loaded(t, "A", "B")

	_, cmd := v.Update(tuitest.Key(tea.KeyCtrlP))

	require.NotNil(t, cmd)
	assert.Equal(t, events.PreviewRequestedMsg{}, cmd())
}

func TestView_EscPreviews(t *testing.T) {
	v := loaded(t, "A", "B")

	_, cmd := v.Update(tuitest.KeyEsc())

	require.NotNil(t, cmd)
	assert.Equal(t, events.PreviewRequestedMsg{}, cmd())
}

func TestView_TabPastContentSaves(t *testing.T) {
	v := loaded(t, "A", "B")

	v, _ = v.Update(tuitest.KeyTab())
	_, cmd := v.Update(tuitest.KeyTab())

	require.NotNil(t, cmd)
	assert.Equal(t, events.SavedMsg{Title: "A", Content: "B"}, cmd())
}

func TestView_EnterInContentAddsNewline(t *testing.T) {
	v := loaded(t, "A", "")

	v, _ = v.Update(tuitest.KeyTab())
	v, _ = tuitest.Feed(v, tuitest.KeyPress('x'), tuitest.KeyEnter(), tuitest.KeyEnter(), tuitest.KeyPress('y'))

	_, content := v.Draft()
	assert.Equal(t, "x\n\ny", content)
}

func TestView_LoadDiscardsPreviousDraft(t *testing.T) {
	v := loaded(t, "A", "B")
	v, _ = tuitest.Feed(v, tuitest.Type("zzz")...)

	v, _ = v.Load("A", "B")

	title, content := v.Draft()
	assert.Equal(t, "A", title)
	assert.Equal(t, "B", content)
}

func TestView_Render(t *testing.T) {
	v := loaded(t, "My Title", "")

	view := tuitest.StripANSI(v.View())

	assert.Contains(t, view, "Editing Article")
	assert.Contains(t, view, "Save Changes")
	assert.Contains(t, view, "Article Title")
	assert.Contains(t, view, "My Title")
	assert.Contains(t, view, "ctrl+s: save")
}
