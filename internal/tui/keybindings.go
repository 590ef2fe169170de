package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/colonyops/nupedia/internal/core/config"
	"github.com/colonyops/nupedia/internal/tui/components"
	"github.com/colonyops/nupedia/internal/tui/views/article"
	"github.com/colonyops/nupedia/internal/tui/views/editor"
	"github.com/colonyops/nupedia/internal/tui/views/home"
	"github.com/colonyops/nupedia/internal/tui/views/nav"
	"github.com/colonyops/nupedia/internal/tui/views/request"
	"github.com/colonyops/nupedia/internal/wiki"
)

// KeyMap collects the bindings of every screen, resolved from config.
type KeyMap struct {
	Nav     nav.KeyMap
	Home    home.KeyMap
	Article article.KeyMap
	Editor  editor.KeyMap
	Request request.KeyMap

	Help          key.Binding
	ClearActivity key.Binding // only while the help dialog is open
	Quit          key.Binding
}

// NewKeyMap builds the key map from action -> keys bindings. Actions missing
// from bindings use the built-in keys.
func NewKeyMap(bindings map[string][]string) KeyMap {
	defaults := config.DefaultConfig().Keybindings
	b := func(action, desc string) key.Binding {
		keys := bindings[action]
		if len(keys) == 0 {
			keys = defaults[action]
		}
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKeys(keys), desc))
	}

	return KeyMap{
		Nav: nav.KeyMap{
			Home:    b(config.ActionHome, "home"),
			Request: b(config.ActionRequest, "request article"),
			Search:  b(config.ActionSearch, "search"),
		},
		Home: home.DefaultKeyMap(),
		Article: article.KeyMap{
			ToggleSidebar: b(config.ActionToggleSidebar, "toggle contents"),
			Edit:          b(config.ActionEdit, "edit article"),
			NextSection:   b(config.ActionNextSection, "next section"),
			PrevSection:   b(config.ActionPrevSection, "previous section"),
		},
		Editor: editor.KeyMap{
			Save:    b(config.ActionSave, "save changes"),
			Preview: b(config.ActionPreview, "preview"),
		},
		Request: request.KeyMap{
			Submit: b(config.ActionSave, "submit request"),
		},
		Help:          b(config.ActionHelp, "help"),
		ClearActivity: b(config.ActionClearActivity, "clear recent activity"),
		Quit:          b(config.ActionQuit, "quit"),
	}
}

// ShortHelp returns the status bar bindings for the given mode.
func (k KeyMap) ShortHelp(mode wiki.Mode) []key.Binding {
	global := []key.Binding{k.Nav.Search, k.Help, k.Quit}
	switch mode {
	case wiki.ModeArticleViewing:
		return append([]key.Binding{k.Article.Edit, k.Article.ToggleSidebar, k.Article.NextSection}, global...)
	case wiki.ModeArticleEditing:
		return []key.Binding{k.Editor.Save, k.Editor.Preview, k.Nav.Home}
	case wiki.ModeRequest:
		return []key.Binding{k.Request.Submit, k.Nav.Home}
	default:
		return append([]key.Binding{k.Home.Select, k.Nav.Request}, global...)
	}
}

// HelpSections returns every binding grouped for the help dialog.
func (k KeyMap) HelpSections() []components.HelpDialogSection {
	return []components.HelpDialogSection{
		helpSection("Navigation", k.Nav.Home, k.Nav.Request, k.Nav.Search),
		{
			Title: "Home",
			Entries: []components.HelpEntry{
				{Key: "arrows/hjkl", Desc: "move between cards"},
				{Key: k.Home.Select.Help().Key, Desc: k.Home.Select.Help().Desc},
			},
		},
		helpSection("Article", k.Article.Edit, k.Article.ToggleSidebar, k.Article.NextSection, k.Article.PrevSection),
		helpSection("Editor", k.Editor.Save, k.Editor.Preview),
		helpSection("Request", k.Request.Submit),
		helpSection("General", k.Help, k.ClearActivity, k.Quit),
	}
}

// helpKeys joins keys for display. A literal "/" key switches the separator.
func helpKeys(keys []string) string {
	if slices.Contains(keys, "/") {
		return strings.Join(keys, ", ")
	}
	return strings.Join(keys, "/")
}

func helpSection(title string, bindings ...key.Binding) components.HelpDialogSection {
	entries := make([]components.HelpEntry, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		entries = append(entries, components.HelpEntry{Key: h.Key, Desc: h.Desc})
	}
	return components.HelpDialogSection{Title: title, Entries: entries}
}
