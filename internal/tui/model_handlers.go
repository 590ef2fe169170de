package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/nupedia/internal/tui/events"
	"github.com/colonyops/nupedia/internal/tui/views/nav"
	"github.com/colonyops/nupedia/internal/tui/views/request"
	"github.com/colonyops/nupedia/internal/wiki"
)

const statusBarHeight = 1

// commandFor translates a screen event into a wiki command.
func commandFor(msg tea.Msg) (wiki.Command, bool) {
	switch msg := msg.(type) {
	case events.HomeClickedMsg:
		return wiki.NavigateHome{}, true
	case events.RequestClickedMsg:
		return wiki.NavigateRequest{}, true
	case events.SearchSubmittedMsg:
		return wiki.Search{Query: msg.Query}, true
	case events.ArticleSelectedMsg:
		return wiki.SelectArticle{Title: msg.Title}, true
	case events.RequestSubmittedMsg:
		return wiki.SubmitRequest{Title: msg.Title, Description: msg.Description}, true
	case events.EditRequestedMsg:
		return wiki.BeginEdit{}, true
	case events.SavedMsg:
		return wiki.Save{Title: msg.Title, Content: msg.Content}, true
	case events.PreviewRequestedMsg:
		return wiki.PreviewEdit{}, true
	}
	return nil, false
}

func (m Model) dispatch(cmd wiki.Command) (tea.Model, tea.Cmd) {
	prev := m.wiki.State()
	m.wiki.Dispatch(cmd)

	m, syncCmd := m.sync(prev)
	return m, tea.Batch(syncCmd, m.startToastTick())
}

// sync pushes the coordinator state into the screens. Entering a screen
// starts it fresh: the editor reloads the saved article, the request form
// is emptied and the article view reopens its sidebar.
func (m Model) sync(prev wiki.State) (Model, tea.Cmd) {
	state := m.wiki.State()
	mode := state.Mode()

	m.home = m.home.SetData(state.History.Entries(), state.RequestList())
	m.nav = m.nav.SetActive(sectionFor(state.View))

	var cmd tea.Cmd
	switch {
	case mode == prev.Mode():
		if mode == wiki.ModeArticleViewing && state.Article != prev.Article {
			m.article = m.article.SetArticle(state.Article.Title, state.Article.Content)
		}
	case mode == wiki.ModeArticleViewing:
		m.article = m.newArticleView().SetSize(m.contentSize())
		m.article = m.article.SetArticle(state.Article.Title, state.Article.Content)
	case mode == wiki.ModeArticleEditing:
		m.editor, cmd = m.editor.Load(state.Article.Title, state.Article.Content)
	case mode == wiki.ModeRequest:
		m.request = request.New(request.Options{Keys: m.keys.Request, Logger: m.logger}).SetSize(m.contentSize())
		m.request, cmd = m.request.Focus()
	}

	return m, cmd
}

func sectionFor(v wiki.View) nav.Section {
	switch v {
	case wiki.ViewHome:
		return nav.SectionHome
	case wiki.ViewRequest:
		return nav.SectionRequest
	default:
		return nav.SectionNone
	}
}

// inputFocused reports whether the active screen is a form that takes typed
// text.
func (m Model) inputFocused() bool {
	switch m.wiki.State().Mode() {
	case wiki.ModeArticleEditing, wiki.ModeRequest:
		return true
	default:
		return false
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch {
		case msg.Type == tea.KeyEsc || key.Matches(msg, m.keys.Help, m.keys.Quit):
			m.showHelp = false
		case key.Matches(msg, m.keys.ClearActivity):
			if err := m.bus.Clear(); err != nil {
				m.logger.Error().Err(err).Msg("failed to clear notification history")
			}
			m.helpDialog = m.newHelpDialog()
			return m, m.startToastTick()
		}
		return m, nil
	}

	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.nav.Handles(msg, m.inputFocused()) {
		var cmd tea.Cmd
		m.nav, cmd = m.nav.Update(msg)
		return m, cmd
	}

	if !m.inputFocused() {
		switch {
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			m.helpDialog = m.newHelpDialog()
			return m, m.startToastTick()
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case msg.Type == tea.KeyEsc && m.toastController.HasToasts():
			m.toastController.DismissAll()
			return m, nil
		}
	}

	return m.forward(msg)
}

// forward passes msg to the active screen. Non-key messages such as cursor
// blinks also reach the search box while it is focused.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if _, isKey := msg.(tea.KeyMsg); !isKey && m.nav.Focused() {
		var cmd tea.Cmd
		m.nav, cmd = m.nav.Update(msg)
		cmds = append(cmds, cmd)
	}

	var cmd tea.Cmd
	switch m.wiki.State().Mode() {
	case wiki.ModeHome:
		m.home, cmd = m.home.Update(msg)
	case wiki.ModeArticleViewing:
		m.article, cmd = m.article.Update(msg)
	case wiki.ModeArticleEditing:
		m.editor, cmd = m.editor.Update(msg)
	case wiki.ModeRequest:
		m.request, cmd = m.request.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	m.nav = m.nav.SetWidth(msg.Width)

	w, h := m.contentSize()
	m.home = m.home.SetSize(w, h)
	m.article = m.article.SetSize(w, h)
	m.editor = m.editor.SetSize(w, h)
	m.request = m.request.SetSize(w, h)

	return m, nil
}

// contentSize returns the area left for the active screen between the
// navigation bar and the status bar.
func (m Model) contentSize() (int, int) {
	navHeight := lipgloss.Height(m.nav.View())
	return m.width, max(m.height-navHeight-statusBarHeight, 1)
}

func (m Model) startToastTick() tea.Cmd {
	if !m.toastController.HasToasts() || m.toastController.Ticking() {
		return nil
	}
	m.toastController.SetTicking(true)
	return scheduleToastTick()
}

func (m Model) handleToastTick(_ toastTickMsg) (tea.Model, tea.Cmd) {
	m.toastController.Tick(toastTickInterval)
	if m.toastController.HasToasts() {
		return m, scheduleToastTick()
	}
	m.toastController.SetTicking(false)
	return m, nil
}
