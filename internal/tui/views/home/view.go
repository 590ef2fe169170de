// Package home implements the landing page: recent searches, pending
// article requests and recommended topics.
package home

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/colonyops/nupedia/internal/core/article"
	"github.com/colonyops/nupedia/internal/core/styles"
	"github.com/colonyops/nupedia/internal/tui/events"
)

const (
	cardGap             = 2
	requestDescLines    = 3
	twoColumnMinWidth   = 60
	threeColumnMinWidth = 96
)

// topicIcons decorate the recommended topics in order.
var topicIcons = []string{styles.IconTrend, styles.IconCompass, styles.IconBook}

// KeyMap defines the home page key bindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
}

// DefaultKeyMap returns the built-in home bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open article")),
	}
}

// View renders the home page as card grids.
type View struct {
	ctrl     *Controller
	history  []string
	requests []article.Request
	topics   []article.Topic
	keys     KeyMap
	width    int
	height   int
	offset   int // first visible line
}

// New creates a home view showing the recommended topics.
func New(keys KeyMap) View {
	v := View{
		ctrl:   NewController(),
		topics: article.RecommendedTopics(),
		keys:   keys,
	}
	v.ctrl.SetCounts(0, len(v.topics))
	return v
}

// SetData replaces the displayed history and requests.
func (v View) SetData(history []string, requests []article.Request) View {
	v.history = history
	v.requests = requests
	v.ctrl.SetCounts(len(history), len(v.topics))
	v.scrollToSelection()
	return v
}

// SetSize updates the available area.
func (v View) SetSize(width, height int) View {
	v.width = width
	v.height = height
	v.ctrl.SetColumns(columnsFor(width))
	v.scrollToSelection()
	return v
}

// Selected returns the title of the selected card.
func (v View) Selected() (string, bool) {
	group, index, ok := v.ctrl.Position()
	if !ok {
		return "", false
	}
	if group == GroupHistory {
		return v.history[index], true
	}
	return v.topics[index].Title, true
}

// Update handles key input for the home page.
func (v View) Update(msg tea.Msg) (View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch {
	case key.Matches(keyMsg, v.keys.Up):
		v.ctrl.Up()
	case key.Matches(keyMsg, v.keys.Down):
		v.ctrl.Down()
	case key.Matches(keyMsg, v.keys.Left):
		v.ctrl.Left()
	case key.Matches(keyMsg, v.keys.Right):
		v.ctrl.Right()
	case key.Matches(keyMsg, v.keys.Select):
		if title, ok := v.Selected(); ok {
			return v, events.Emit(events.ArticleSelectedMsg{Title: title})
		}
		return v, nil
	default:
		return v, nil
	}

	v.scrollToSelection()
	return v, nil
}

// View renders the visible part of the page.
func (v View) View() string {
	content, _, _ := v.layout()
	if v.height <= 0 {
		return content
	}

	lines := strings.Split(content, "\n")
	end := min(v.offset+v.height, len(lines))
	start := min(v.offset, end)
	return strings.Join(lines[start:end], "\n")
}

// columnsFor derives the grid width in cards from the terminal width.
func columnsFor(width int) int {
	switch {
	case width >= threeColumnMinWidth:
		return 3
	case width >= twoColumnMinWidth:
		return 2
	default:
		return 1
	}
}

// scrollToSelection moves the window so the selected card is visible.
func (v *View) scrollToSelection() {
	if v.height <= 0 {
		v.offset = 0
		return
	}
	_, top, bottom := v.layout()
	if _, index, ok := v.ctrl.Position(); ok && index < v.ctrl.Columns() {
		// first row of a grid: include its heading
		top = max(top-2, 0)
	}

	if top < v.offset {
		v.offset = top
	}
	if bottom >= v.offset+v.height {
		v.offset = bottom - v.height + 1
	}
	v.offset = max(v.offset, 0)
}

// layout renders the whole page and reports the line span of the selected
// card.
func (v View) layout() (content string, selTop, selBottom int) {
	var (
		blocks []string
		next   int // index of the next line
	)
	add := func(block string) (top, bottom int) {
		top = next
		blocks = append(blocks, block)
		next += lipgloss.Height(block)
		return top, next - 1
	}

	group, index, hasSel := v.ctrl.Position()
	columns := v.ctrl.Columns()
	cardW := v.cardWidth(columns)

	addGrid := func(cards []string, selected int) {
		for start := 0; start < len(cards); start += columns {
			end := min(start+columns, len(cards))
			top, bottom := add(joinRow(cards[start:end]))
			if selected >= start && selected < end {
				selTop, selBottom = top, bottom
			}
		}
	}

	// Recent searches
	add(styles.SectionHeaderStyle.Render(styles.IconClock + " Recent Searches"))
	if len(v.history) == 0 {
		add(styles.EmptyPlaceholderStyle.Render("No recent searches yet."))
	} else {
		cards := make([]string, len(v.history))
		for i, h := range v.history {
			cards[i] = historyCard(h, cardW, hasSel && group == GroupHistory && index == i)
		}
		sel := -1
		if hasSel && group == GroupHistory {
			sel = index
		}
		addGrid(cards, sel)
	}

	// Requested articles, only when there are any
	if len(v.requests) > 0 {
		add("")
		add(styles.SectionHeaderStyle.Render(styles.IconFile + " Requested Articles"))
		cards := make([]string, len(v.requests))
		for i, r := range v.requests {
			cards[i] = requestCard(r, cardW)
		}
		addGrid(cards, -1)
	}

	// Recommended topics
	add("")
	add(styles.SectionHeaderStyle.Render(styles.IconCompass + " Recommended Topics"))
	cards := make([]string, len(v.topics))
	for i, t := range v.topics {
		cards[i] = topicCard(t, topicIcons[i%len(topicIcons)], cardW, hasSel && group == GroupTopics && index == i)
	}
	sel := -1
	if hasSel && group == GroupTopics {
		sel = index
	}
	addGrid(cards, sel)

	return strings.Join(blocks, "\n"), selTop, selBottom
}

func (v View) cardWidth(columns int) int {
	width := v.width
	if width <= 0 {
		width = threeColumnMinWidth
	}
	return max((width-cardGap*(columns-1))/columns, 12)
}

func joinRow(cards []string) string {
	parts := make([]string, 0, len(cards)*2)
	for i, c := range cards {
		if i > 0 {
			parts = append(parts, strings.Repeat(" ", cardGap))
		}
		parts = append(parts, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// truncate clips s to width display cells.
func truncate(s string, width int) string {
	return runewidth.Truncate(s, max(width, 1), "…")
}

// clampLines wraps s to width and keeps at most n lines.
func clampLines(s string, width, n int) string {
	wrapped := lipgloss.NewStyle().Width(max(width, 1)).Render(s)
	lines := strings.Split(wrapped, "\n")
	if len(lines) <= n {
		return wrapped
	}
	lines = lines[:n]
	lines[n-1] = truncate(strings.TrimRight(lines[n-1], " ")+" …", width)
	return strings.Join(lines, "\n")
}

func historyCard(title string, width int, selected bool) string {
	style := styles.CardStyle
	if selected {
		style = styles.CardSelectedStyle
	}
	inner := width - 4 // border + padding
	body := styles.CardTitleStyle.Render(truncate(title, inner)) + "\n" +
		styles.CardDescStyle.Render("Open article")
	return style.Width(width - 2).Render(body)
}

func requestCard(r article.Request, width int) string {
	inner := width - 3 // left border + padding
	body := styles.CardTitleStyle.Render(truncate(r.Title, inner)) + "\n" +
		styles.CardDescStyle.Render(clampLines(r.Description, inner, requestDescLines))
	return styles.RequestCardStyle.Width(width - 1).Render(body)
}

func topicCard(t article.Topic, icon string, width int, selected bool) string {
	style := styles.TopicCardStyle
	if selected {
		style = styles.TopicCardSelected
	}
	inner := width - 6 // border + padding
	body := styles.TopicIconStyle.Render(icon) + "\n\n" +
		styles.CardTitleStyle.Render(truncate(t.Title, inner)) + "\n" +
		styles.CardDescStyle.Render(lipgloss.NewStyle().Width(max(inner, 1)).Render(t.Description))
	return style.Width(width - 2).Render(body)
}
