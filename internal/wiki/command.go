package wiki

import "time"

// Command is a user intent applied to State by Apply. The set of commands is
// closed; only types in this package implement it.
type Command interface {
	// Name returns a stable identifier used for logging.
	Name() string
	isCommand()
}

// SelectArticle opens the article view under the given title. The content is
// left as it is; there is no content lookup by title.
type SelectArticle struct {
	Title string
}

// Save replaces the article and returns to the read-only article view.
type Save struct {
	Title   string
	Content string
}

// Search records a query in the recent searches.
type Search struct {
	Query string
}

// SubmitRequest appends an article request and returns home. ID and
// CreatedAt are filled in by the Coordinator when left empty.
type SubmitRequest struct {
	ID          string
	Title       string
	Description string
	CreatedAt   time.Time
}

// NavigateHome switches to the home view.
type NavigateHome struct{}

// NavigateRequest switches to the request form.
type NavigateRequest struct{}

// BeginEdit opens the editor for the current article.
type BeginEdit struct{}

// PreviewEdit closes the editor without saving.
type PreviewEdit struct{}

func (SelectArticle) Name() string   { return "select-article" }
func (Save) Name() string            { return "save" }
func (Search) Name() string          { return "search" }
func (SubmitRequest) Name() string   { return "submit-request" }
func (NavigateHome) Name() string    { return "navigate-home" }
func (NavigateRequest) Name() string { return "navigate-request" }
func (BeginEdit) Name() string       { return "begin-edit" }
func (PreviewEdit) Name() string     { return "preview-edit" }

func (SelectArticle) isCommand()   {}
func (Save) isCommand()            {}
func (Search) isCommand()          {}
func (SubmitRequest) isCommand()   {}
func (NavigateHome) isCommand()    {}
func (NavigateRequest) isCommand() {}
func (BeginEdit) isCommand()       {}
func (PreviewEdit) isCommand()     {}
