package tui

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/nupedia/internal/core/config"
	corenotify "github.com/colonyops/nupedia/internal/core/notify"
	"github.com/colonyops/nupedia/internal/tui/events"
	"github.com/colonyops/nupedia/internal/wiki"
	"github.com/colonyops/nupedia/pkg/tuitest"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Article.Title = "Welcome"
	cfg.Article.Content = "First section here\n\nSecond section here"

	m := New(&cfg, Options{Logger: zerolog.Nop()})
	m, _ = update(t, m, tuitest.WindowSize(100, 30))
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated, cmd
}

// emit runs a command that is expected to produce a screen event and feeds
// the event back into the model.
func emit(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	return m
}

func TestNew_StartsHome(t *testing.T) {
	m := newTestModel(t)

	state := m.State()
	assert.Equal(t, wiki.ModeHome, state.Mode())
	assert.Equal(t, []string{"Ancient Rome", "Quantum Physics", "Renaissance Art", "Machine Learning"}, state.History.Entries())
	assert.Empty(t, state.Requests)

	out := tuitest.StripANSI(m.View())
	assert.Contains(t, out, "Recent Searches")
	assert.Contains(t, out, "Ancient Rome")
	assert.NotContains(t, out, "Requested Articles")
}

func TestCommandFor(t *testing.T) {
	tests := []struct {
		msg  tea.Msg
		want wiki.Command
	}{
		{events.HomeClickedMsg{}, wiki.NavigateHome{}},
		{events.RequestClickedMsg{}, wiki.NavigateRequest{}},
		{events.SearchSubmittedMsg{Query: "q"}, wiki.Search{Query: "q"}},
		{events.ArticleSelectedMsg{Title: "t"}, wiki.SelectArticle{Title: "t"}},
		{events.RequestSubmittedMsg{Title: "t", Description: "d"}, wiki.SubmitRequest{Title: "t", Description: "d"}},
		{events.EditRequestedMsg{}, wiki.BeginEdit{}},
		{events.SavedMsg{Title: "t", Content: "c"}, wiki.Save{Title: "t", Content: "c"}},
		{events.PreviewRequestedMsg{}, wiki.PreviewEdit{}},
	}

	for _, tt := range tests {
		t.Run(tt.want.Name(), func(t *testing.T) {
			got, ok := commandFor(tt.msg)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := commandFor(tea.WindowSizeMsg{})
	assert.False(t, ok)
}

func TestSelectFromHome_OpensArticle(t *testing.T) {
	m := newTestModel(t)

	title, ok := m.home.Selected()
	require.True(t, ok)

	m, cmd := update(t, m, tuitest.KeyEnter())
	m = emit(t, m, cmd)

	state := m.State()
	assert.Equal(t, wiki.ModeArticleViewing, state.Mode())
	assert.Equal(t, title, state.Article.Title)
	assert.Equal(t, "First section here\n\nSecond section here", state.Article.Content, "content is not looked up")

	assert.Equal(t, title, m.article.Title())
	assert.True(t, m.article.SidebarOpen())
	assert.Len(t, m.article.Sections(), 2)
}

func TestEditAndSave(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, events.ArticleSelectedMsg{Title: "Welcome"})

	m, cmd := update(t, m, tuitest.KeyPress('e'))
	m = emit(t, m, cmd)
	require.Equal(t, wiki.ModeArticleEditing, m.State().Mode())

	title, content := m.editor.Draft()
	assert.Equal(t, "Welcome", title)
	assert.Equal(t, "First section here\n\nSecond section here", content)

	m, _ = update(t, m, events.SavedMsg{Title: "Rome", Content: "a\n\nb\n\nc"})

	state := m.State()
	assert.Equal(t, wiki.ModeArticleViewing, state.Mode())
	assert.Equal(t, "Rome", state.Article.Title)
	assert.Equal(t, "Rome", state.History.Entries()[0])
	assert.Len(t, m.article.Sections(), 3)
	assert.True(t, m.toastController.HasToasts(), "save is announced")
}

func TestPreview_DiscardsDraft(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, events.ArticleSelectedMsg{Title: "Welcome"})
	m, _ = update(t, m, events.EditRequestedMsg{})

	m, _ = update(t, m, tuitest.KeyPress('x'))
	m, _ = update(t, m, events.PreviewRequestedMsg{})

	state := m.State()
	assert.Equal(t, wiki.ModeArticleViewing, state.Mode())
	assert.Equal(t, "Welcome", state.Article.Title)
	assert.Equal(t, "Welcome", m.article.Title())
}

func TestEditingFlag_SurvivesLeavingArticle(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, events.ArticleSelectedMsg{Title: "Welcome"})
	m, _ = update(t, m, events.EditRequestedMsg{})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	m = emit(t, m, cmd)
	require.Equal(t, wiki.ModeHome, m.State().Mode())

	m, _ = update(t, m, events.ArticleSelectedMsg{Title: "Welcome"})
	assert.Equal(t, wiki.ModeArticleEditing, m.State().Mode())
}

func TestRequestFlow(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, tuitest.KeyPress('n'))
	m = emit(t, m, cmd)
	require.Equal(t, wiki.ModeRequest, m.State().Mode())

	title, description := m.request.Draft()
	assert.Empty(t, title)
	assert.Empty(t, description)

	m, _ = update(t, m, tuitest.KeyPress('q'))
	title, _ = m.request.Draft()
	assert.Equal(t, "q", title, "plain keys are typed into the form")
	assert.False(t, m.quitting)

	m, _ = update(t, m, events.RequestSubmittedMsg{Title: "Go", Description: "Because"})

	state := m.State()
	assert.Equal(t, wiki.ModeHome, state.Mode())
	require.Len(t, state.Requests, 1)
	assert.Equal(t, "Go", state.Requests[0].Title)
	assert.NotEmpty(t, state.Requests[0].ID)

	out := tuitest.StripANSI(m.View())
	assert.Contains(t, out, "Requested Articles")
	assert.Contains(t, out, "Because")
}

func TestRequest_ReentryClearsDraft(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, events.RequestClickedMsg{})
	m, _ = update(t, m, tuitest.KeyPress('a'))
	m, _ = update(t, m, events.HomeClickedMsg{})

	m, _ = update(t, m, events.RequestClickedMsg{})

	title, _ := m.request.Draft()
	assert.Empty(t, title)
}

func TestSearch_FromNavigation(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tuitest.KeyPress('/'))
	require.True(t, m.nav.Focused())

	for _, msg := range tuitest.Type("Go") {
		m, _ = update(t, m, msg)
	}
	m, cmd := update(t, m, tuitest.KeyEnter())
	m = emit(t, m, cmd)

	state := m.State()
	assert.Equal(t, wiki.ModeHome, state.Mode())
	assert.Equal(t, "Go", state.History.Entries()[0])
	assert.Empty(t, m.nav.Query())
}

func TestSearch_ChordWorksWhileEditing(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, events.ArticleSelectedMsg{Title: "Welcome"})
	m, _ = update(t, m, events.EditRequestedMsg{})
	require.Equal(t, wiki.ModeArticleEditing, m.State().Mode())
	_, before := m.editor.Draft()

	m, _ = update(t, m, tuitest.Key(tea.KeyCtrlF))
	require.True(t, m.nav.Focused())

	for _, msg := range tuitest.Type("Go") {
		m, _ = update(t, m, msg)
	}
	m, cmd := update(t, m, tuitest.KeyEnter())
	m = emit(t, m, cmd)

	assert.Equal(t, "Go", m.State().History.Entries()[0])
	_, after := m.editor.Draft()
	assert.Equal(t, before, after, "typed query does not reach the editor")
}

func TestSearch_ExistingEntryIsNotAnnounced(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, events.SearchSubmittedMsg{Query: "Ancient Rome"})

	assert.Equal(t, 4, m.State().History.Len())
	assert.False(t, m.toastController.HasToasts())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, tuitest.KeyPress('q'))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tuitest.WindowSize(100, 60))
	m, _ = update(t, m, events.SearchSubmittedMsg{Query: "Go"})

	m, _ = update(t, m, tuitest.KeyPress('?'))
	require.True(t, m.showHelp)

	out := tuitest.StripANSI(m.View())
	assert.Contains(t, out, "Keyboard Shortcuts")
	assert.Contains(t, out, "Recent Activity")

	m, _ = update(t, m, tuitest.KeyPress('n'))
	assert.Equal(t, wiki.ModeHome, m.State().Mode(), "keys are swallowed while help is open")

	m, _ = update(t, m, tuitest.KeyEsc())
	assert.False(t, m.showHelp)
}

func TestHelpOverlay_ClearActivity(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tuitest.WindowSize(100, 60))
	m, _ = update(t, m, events.SearchSubmittedMsg{Query: "Go"})
	m, _ = update(t, m, tuitest.KeyPress('?'))
	require.Contains(t, tuitest.StripANSI(m.View()), "Recent Activity")

	m, _ = update(t, m, tuitest.KeyPress('x'))

	assert.True(t, m.showHelp)
	history, err := m.bus.History()
	require.NoError(t, err)
	assert.Empty(t, history)
	assert.NotContains(t, tuitest.StripANSI(m.View()), "Recent Activity")
}

func TestWarnings_ShownAsToasts(t *testing.T) {
	cfg := config.DefaultConfig()
	m := New(&cfg, Options{
		Logger:   zerolog.Nop(),
		Warnings: []string{"seed exceeds limit"},
	})

	assert.True(t, m.toastController.HasToasts())
	assert.NotNil(t, m.Init())
	assert.True(t, m.toastController.Ticking())
	assert.Contains(t, tuitest.StripANSI(m.View()), "seed exceeds limit")
}

func TestToastTick_Expires(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, events.SearchSubmittedMsg{Query: "Go"})
	require.NotNil(t, cmd)
	require.True(t, m.toastController.Ticking())

	ticks := int(defaultToastTTL / toastTickInterval)
	for range ticks {
		m, cmd = update(t, m, toastTickMsg{})
	}

	assert.False(t, m.toastController.HasToasts())
	assert.False(t, m.toastController.Ticking())
	assert.Nil(t, cmd)
}

func TestEscDismissesToasts(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, events.SearchSubmittedMsg{Query: "Go"})
	require.True(t, m.toastController.HasToasts())

	m, _ = update(t, m, tuitest.KeyEsc())

	assert.False(t, m.toastController.HasToasts())
}

func TestView_FillsWindow(t *testing.T) {
	m := newTestModel(t)

	out := m.View()

	assert.Equal(t, 30, lipgloss.Height(out))
	assert.True(t, strings.Contains(tuitest.StripANSI(out), "Nupedia"))
}

type brokenHistoryStore struct {
	*corenotify.MemoryStore
}

func (brokenHistoryStore) List(context.Context) ([]corenotify.Notification, error) {
	return nil, errors.New("disk on fire")
}

func TestHelpOverlay_HistoryErrorIsToasted(t *testing.T) {
	cfg := config.DefaultConfig()
	m := New(&cfg, Options{
		Logger: zerolog.New(io.Discard),
		Store:  brokenHistoryStore{corenotify.NewMemoryStore(0)},
	})
	m, _ = update(t, m, tuitest.WindowSize(100, 60))
	require.False(t, m.toastController.HasToasts())

	m, cmd := update(t, m, tuitest.KeyPress('?'))

	require.True(t, m.showHelp)
	assert.NotNil(t, cmd, "toast timer starts")
	toasts := m.toastController.Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, corenotify.LevelError, toasts[0].notification.Level)
	assert.Equal(t, "failed to load notification history", toasts[0].notification.Message)
	assert.NotContains(t, tuitest.StripANSI(m.View()), "Recent Activity")
}
