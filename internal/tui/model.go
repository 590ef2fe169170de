// Package tui implements the interactive Nupedia terminal interface.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/colonyops/nupedia/internal/core/config"
	"github.com/colonyops/nupedia/internal/core/logging"
	corenotify "github.com/colonyops/nupedia/internal/core/notify"
	"github.com/colonyops/nupedia/internal/core/styles"
	"github.com/colonyops/nupedia/internal/tui/components"
	"github.com/colonyops/nupedia/internal/tui/notify"
	"github.com/colonyops/nupedia/internal/tui/views/article"
	"github.com/colonyops/nupedia/internal/tui/views/editor"
	"github.com/colonyops/nupedia/internal/tui/views/home"
	"github.com/colonyops/nupedia/internal/tui/views/nav"
	"github.com/colonyops/nupedia/internal/tui/views/request"
	"github.com/colonyops/nupedia/internal/wiki"
)

// Options configure the TUI model.
type Options struct {
	Logger   zerolog.Logger   // component logger; the zero value discards
	Store    corenotify.Store // notification history (optional, in-memory when nil)
	Warnings []string         // startup warnings to display as toasts
}

// Model is the root Bubble Tea model. It owns the wiki coordinator and
// routes messages between the navigation bar and the active screen.
type Model struct {
	cfg    *config.Config
	keys   KeyMap
	logger zerolog.Logger

	wiki *wiki.Coordinator
	bus  *notify.Bus

	toastController *ToastController
	toastView       *ToastView

	nav     nav.View
	home    home.View
	article article.View
	editor  editor.View
	request request.View

	help       help.Model
	showHelp   bool
	helpDialog *components.HelpDialog

	width    int
	height   int
	quitting bool
}

// New creates the TUI model with the initial state described by cfg.
func New(cfg *config.Config, opts Options) Model {
	store := opts.Store
	if store == nil {
		store = corenotify.NewMemoryStore(corenotify.DefaultMemoryLimit)
	}

	base := logging.Component(opts.Logger, "tui")
	bus := notify.NewBus(store, base)

	// Errors logged by the model and its coordinator are also shown as toasts.
	logger := base.Hook(logging.NotifyHook{
		MinLevel: zerolog.ErrorLevel,
		Notify: func(_ zerolog.Level, msg string) {
			bus.Errorf("%s", msg)
		},
	})

	toastController := NewToastController(defaultToastTTL, defaultMaxToasts)
	bus.Subscribe(func(n corenotify.Notification) {
		toastController.Push(n)
	})

	keys := NewKeyMap(cfg.Keybindings)

	h := help.New()
	h.ShortSeparator = " • "
	h.Styles.ShortKey = styles.TextMutedStyle
	h.Styles.ShortDesc = styles.TextMutedStyle
	h.Styles.ShortSeparator = styles.TextMutedStyle

	m := Model{
		cfg:             cfg,
		keys:            keys,
		logger:          logger,
		wiki:            wiki.NewCoordinator(wiki.NewState(cfg.WikiOptions()), logger, bus),
		bus:             bus,
		toastController: toastController,
		toastView:       NewToastView(toastController),
		nav:             nav.New(keys.Nav),
		home:            home.New(keys.Home),
		editor:          editor.New(keys.Editor),
		request:         request.New(request.Options{Keys: keys.Request, Logger: logger}),
		help:            h,
	}
	m.article = m.newArticleView()

	for _, w := range opts.Warnings {
		bus.Warnf("%s", w)
	}

	m, _ = m.sync(wiki.State{View: wiki.ViewHome})
	return m
}

// Init starts the toast timer when warnings were queued by New.
func (m Model) Init() tea.Cmd {
	if !m.toastController.HasToasts() {
		return nil
	}
	m.toastController.SetTicking(true)
	return scheduleToastTick()
}

// State returns the current wiki state.
func (m Model) State() wiki.State {
	return m.wiki.State()
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, ok := commandFor(msg); ok {
		return m.dispatch(cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case toastTickMsg:
		return m.handleToastTick(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forward(msg)
}

func (m Model) newArticleView() article.View {
	return article.New(article.Options{
		Markdown:     m.cfg.TUI.Markdown,
		SidebarWidth: m.cfg.TUI.SidebarWidth,
		Keys:         m.keys.Article,
		Logger:       m.logger,
	})
}

func (m Model) newHelpDialog() *components.HelpDialog {
	sections := m.keys.HelpSections()
	if activity := m.recentActivity(); len(activity.Entries) > 0 {
		sections = append(sections, activity)
	}
	return components.NewHelpDialog("Keyboard Shortcuts", sections)
}

const recentActivityLimit = 5

func (m Model) recentActivity() components.HelpDialogSection {
	section := components.HelpDialogSection{Title: "Recent Activity"}

	history, err := m.bus.History()
	if err != nil {
		m.logger.Error().Err(err).Msg("failed to load notification history")
		return section
	}

	for _, n := range history[:min(len(history), recentActivityLimit)] {
		section.Entries = append(section.Entries, components.HelpEntry{
			Key:  n.CreatedAt.Format("15:04:05"),
			Desc: n.Message,
		})
	}
	return section
}
