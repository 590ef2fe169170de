// Package wiki holds the application state shared by every screen and the
// reducer that applies user commands to it.
package wiki

import (
	"slices"

	"github.com/colonyops/nupedia/internal/core/article"
)

const unknownName = "unknown"

// View identifies which top-level screen is shown.
type View int

const (
	ViewHome View = iota
	ViewArticle
	ViewRequest
)

// String returns the lowercase name of the view.
func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewArticle:
		return "article"
	case ViewRequest:
		return "request"
	default:
		return unknownName
	}
}

// Mode is the user-visible screen, combining View with the editing flag.
type Mode int

const (
	ModeHome Mode = iota
	ModeArticleViewing
	ModeArticleEditing
	ModeRequest
)

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeHome:
		return "home"
	case ModeArticleViewing:
		return "article-viewing"
	case ModeArticleEditing:
		return "article-editing"
	case ModeRequest:
		return "request"
	default:
		return unknownName
	}
}

// State is the single source of truth for the session.
//
// Editing is only observed while View is ViewArticle. Switching to another
// view leaves it untouched, so returning to the article resumes the editor if
// it was open.
type State struct {
	View     View
	Editing  bool
	Article  article.Article
	History  article.History
	Requests []article.Request
}

// Options configures the initial state.
type Options struct {
	Article      article.Article
	HistoryLimit int
	SeedHistory  []string
}

// DefaultOptions returns the welcome article and the default seeded history.
func DefaultOptions() Options {
	return Options{
		Article:      article.Default(),
		HistoryLimit: article.DefaultHistoryLimit,
		SeedHistory:  article.DefaultSearchHistory(),
	}
}

// NewState returns the initial state: the home view with nothing in edit.
func NewState(opts Options) State {
	return State{
		View:    ViewHome,
		Article: opts.Article,
		History: article.NewHistory(opts.HistoryLimit, opts.SeedHistory...),
	}
}

// Mode returns the screen the state resolves to.
func (s State) Mode() Mode {
	switch s.View {
	case ViewArticle:
		if s.Editing {
			return ModeArticleEditing
		}
		return ModeArticleViewing
	case ViewRequest:
		return ModeRequest
	default:
		return ModeHome
	}
}

// RequestList returns a copy of the pending requests in submission order.
func (s State) RequestList() []article.Request {
	return slices.Clone(s.Requests)
}
