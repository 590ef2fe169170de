// Package article implements the article reader: the section body, the
// table of contents sidebar and section navigation.
package article

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/colonyops/nupedia/internal/core/article"
	"github.com/colonyops/nupedia/internal/core/styles"
	"github.com/colonyops/nupedia/internal/tui/events"
)

const (
	headerHeight   = 2 // title row + rule
	sidebarGap     = 2
	minBodyWidth   = 20
	defaultSidebar = 28
)

// Options configure a View.
type Options struct {
	Markdown     bool
	SidebarWidth int
	Keys         KeyMap
	Logger       zerolog.Logger
}

// View renders the active article. It owns only presentation state; the
// article itself is pushed in by the parent with SetArticle.
type View struct {
	title    string
	sections []string
	offsets  []int // first body line of each section

	sidebarOpen  bool
	sidebarWidth int
	cursor       int

	markdown bool
	renderer *glamour.TermRenderer
	wrap     int // word wrap the renderer was built for

	viewport viewport.Model
	keys     KeyMap
	log      zerolog.Logger
	width    int
	height   int
}

// New creates an article view with the sidebar open.
func New(opts Options) View {
	if opts.SidebarWidth <= 0 {
		opts.SidebarWidth = defaultSidebar
	}
	return View{
		sidebarOpen:  true,
		sidebarWidth: opts.SidebarWidth,
		markdown:     opts.Markdown,
		keys:         opts.Keys,
		log:          opts.Logger,
		viewport:     viewport.New(0, 0),
	}
}

// SetArticle replaces the displayed article and scrolls to the top.
// Sidebar visibility is kept.
func (v View) SetArticle(title, content string) View {
	v.title = title
	v.sections = article.Sections(content)
	v.cursor = 0
	v.render()
	v.viewport.GotoTop()
	return v
}

// SetSize updates the available area.
func (v View) SetSize(width, height int) View {
	v.width = width
	v.height = height
	v.render()
	return v
}

// Title returns the displayed title.
func (v View) Title() string { return v.title }

// Sections returns the displayed sections.
func (v View) Sections() []string { return v.sections }

// SidebarOpen reports whether the table of contents is visible.
func (v View) SidebarOpen() bool { return v.sidebarOpen }

// Cursor returns the index of the highlighted section.
func (v View) Cursor() int { return v.cursor }

// YOffset returns the body scroll position.
func (v View) YOffset() int { return v.viewport.YOffset }

// Update handles key input for the article view.
func (v View) Update(msg tea.Msg) (View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		v.viewport, cmd = v.viewport.Update(msg)
		return v, cmd
	}

	switch {
	case key.Matches(keyMsg, v.keys.ToggleSidebar):
		v.sidebarOpen = !v.sidebarOpen
		v.render()
		v.jumpTo(v.cursor)
		return v, nil
	case key.Matches(keyMsg, v.keys.Edit):
		return v, events.Emit(events.EditRequestedMsg{})
	case key.Matches(keyMsg, v.keys.NextSection):
		if v.cursor < len(v.sections)-1 {
			v.cursor++
		}
		v.jumpTo(v.cursor)
		return v, nil
	case key.Matches(keyMsg, v.keys.PrevSection):
		if v.cursor > 0 {
			v.cursor--
		}
		v.jumpTo(v.cursor)
		return v, nil
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the article.
func (v View) View() string {
	header := v.renderHeader()

	body := v.viewport.View()
	if v.sidebarOpen {
		side := sidebar(v.sections, v.cursor, v.sidebarWidth, v.bodyHeight())
		body = lipgloss.JoinHorizontal(lipgloss.Top, side, strings.Repeat(" ", sidebarGap), body)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

func (v View) renderHeader() string {
	title := v.title
	titleStyle := styles.ArticleTitleStyle
	if strings.TrimSpace(title) == "" {
		title = "Untitled"
		titleStyle = styles.EmptyPlaceholderStyle
	}

	toggleIcon := styles.IconChevronLeft
	if !v.sidebarOpen {
		toggleIcon = styles.IconChevronRight
	}
	actions := styles.SidebarToggleStyle.Render(toggleIcon+" "+v.keys.ToggleSidebar.Help().Key) +
		"  " +
		styles.ArticleActionStyle.Render(styles.IconEdit+" Edit ("+v.keys.Edit.Help().Key+")")

	left := titleStyle.Render(title)
	gap := max(v.width-lipgloss.Width(left)-lipgloss.Width(actions), 1)
	row := left + strings.Repeat(" ", gap) + actions

	rule := styles.TextMutedStyle.Render(strings.Repeat("─", max(v.width, 1)))
	return row + "\n" + rule
}

func (v View) bodyHeight() int {
	return max(v.height-headerHeight, 1)
}

func (v View) bodyWidth() int {
	w := v.width
	if v.sidebarOpen {
		w -= v.sidebarWidth + sidebarGap
	}
	return max(w, minBodyWidth)
}

// jumpTo scrolls the body so section i is at the top.
func (v *View) jumpTo(i int) {
	if i < 0 || i >= len(v.offsets) {
		return
	}
	v.viewport.SetYOffset(v.offsets[i])
}

// render rebuilds the viewport content for the current size and sections.
func (v *View) render() {
	width := v.bodyWidth()
	v.viewport.Width = width
	v.viewport.Height = v.bodyHeight()

	if len(v.sections) == 0 {
		v.offsets = nil
		v.viewport.SetContent(styles.EmptyPlaceholderStyle.Render("This article has no content yet."))
		return
	}

	v.offsets = make([]int, len(v.sections))
	blocks := make([]string, len(v.sections))
	line := 0
	for i, section := range v.sections {
		v.offsets[i] = line
		blocks[i] = v.renderSection(section, width)
		line += lipgloss.Height(blocks[i]) + 1 // blank line between sections
	}

	v.viewport.SetContent(strings.Join(blocks, "\n\n"))
}

func (v *View) renderSection(section string, width int) string {
	if v.markdown {
		if out, ok := v.renderMarkdown(section, width); ok {
			return out
		}
	}
	return styles.ArticleSectionStyle.UnsetMarginBottom().Width(width).Render(section)
}

func (v *View) renderMarkdown(section string, width int) (string, bool) {
	if v.renderer == nil || v.wrap != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStyles(styles.GlamourStyle()),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			v.log.Debug().Err(err).Msg("failed to create markdown renderer, showing plain text")
			return "", false
		}
		v.renderer = r
		v.wrap = width
	}

	out, err := v.renderer.Render(section)
	if err != nil {
		v.log.Debug().Err(err).Msg("failed to render markdown section, showing plain text")
		return "", false
	}
	return strings.Trim(out, "\n"), true
}
