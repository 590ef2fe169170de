package wiki

import (
	"slices"

	"github.com/colonyops/nupedia/internal/core/article"
)

// Apply returns the state that results from running cmd against s. It never
// modifies s and never fails; unknown commands return s unchanged.
func Apply(s State, cmd Command) State {
	switch c := cmd.(type) {
	case SelectArticle:
		s.Article.Title = c.Title
		s.View = ViewArticle
	case Save:
		s.Article = article.Article{Title: c.Title, Content: c.Content}
		s.Editing = false
		s.View = ViewArticle
		s.History, _ = s.History.Add(c.Title)
	case Search:
		if c.Query != "" {
			s.History, _ = s.History.Add(c.Query)
		}
	case SubmitRequest:
		s.Requests = append(slices.Clip(s.Requests), article.Request{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			CreatedAt:   c.CreatedAt,
		})
		s.View = ViewHome
	case NavigateHome:
		s.View = ViewHome
	case NavigateRequest:
		s.View = ViewRequest
	case BeginEdit:
		s.Editing = true
	case PreviewEdit:
		s.Editing = false
	}
	return s
}
