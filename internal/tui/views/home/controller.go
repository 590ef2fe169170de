package home

// Group identifies a selectable card grid on the home page.
type Group int

const (
	GroupHistory Group = iota
	GroupTopics
	groupCount
)

// Controller tracks the card cursor across the selectable grids. It holds
// pure navigation logic with no Bubble Tea dependencies.
type Controller struct {
	counts  [groupCount]int
	group   Group
	index   int
	columns int
	moved   bool // cursor moved by the user
}

// NewController creates a controller with a single column.
func NewController() *Controller {
	return &Controller{columns: 1}
}

// SetCounts sets the number of cards per group and clamps the cursor.
// History appearing before the user has navigated takes the cursor, so the
// page opens on the most recent search.
func (c *Controller) SetCounts(history, topics int) {
	if !c.moved && c.counts[GroupHistory] == 0 && history > 0 {
		c.group = GroupHistory
		c.index = 0
	}
	c.counts[GroupHistory] = max(history, 0)
	c.counts[GroupTopics] = max(topics, 0)
	c.clamp()
}

// SetColumns sets the grid width in cards.
func (c *Controller) SetColumns(n int) {
	c.columns = max(n, 1)
}

// Columns returns the grid width in cards.
func (c *Controller) Columns() int { return c.columns }

// Position returns the selected group and the index within it. ok is false
// when there is nothing to select.
func (c *Controller) Position() (group Group, index int, ok bool) {
	if c.counts[c.group] == 0 {
		return 0, 0, false
	}
	return c.group, c.index, true
}

// Left moves to the previous card, crossing into the previous group.
func (c *Controller) Left() {
	c.moved = true
	if c.index > 0 {
		c.index--
		return
	}
	if g, ok := c.neighbor(-1); ok {
		c.group = g
		c.index = c.counts[g] - 1
	}
}

// Right moves to the next card, crossing into the next group.
func (c *Controller) Right() {
	c.moved = true
	if c.index < c.counts[c.group]-1 {
		c.index++
		return
	}
	if g, ok := c.neighbor(1); ok {
		c.group = g
		c.index = 0
	}
}

// Up moves one row up, landing on the last row of the previous group when
// already on the first row.
func (c *Controller) Up() {
	c.moved = true
	if c.index-c.columns >= 0 {
		c.index -= c.columns
		return
	}
	g, ok := c.neighbor(-1)
	if !ok {
		return
	}
	col := c.index % c.columns
	lastRow := (c.counts[g] - 1) / c.columns * c.columns
	c.group = g
	c.index = min(lastRow+col, c.counts[g]-1)
}

// Down moves one row down, landing on the first row of the next group when
// already on the last row.
func (c *Controller) Down() {
	c.moved = true
	if c.index+c.columns < c.counts[c.group] {
		c.index += c.columns
		return
	}
	// partial last row below the cursor
	if c.index/c.columns < (c.counts[c.group]-1)/c.columns {
		c.index = c.counts[c.group] - 1
		return
	}
	g, ok := c.neighbor(1)
	if !ok {
		return
	}
	c.group = g
	c.index = min(c.index%c.columns, c.counts[g]-1)
}

// neighbor finds the nearest non-empty group in direction dir.
func (c *Controller) neighbor(dir int) (Group, bool) {
	for g := int(c.group) + dir; g >= 0 && g < int(groupCount); g += dir {
		if c.counts[g] > 0 {
			return Group(g), true
		}
	}
	return 0, false
}

func (c *Controller) clamp() {
	if c.counts[c.group] == 0 {
		c.index = 0
		for g := range groupCount {
			if c.counts[g] > 0 {
				c.group = g
				return
			}
		}
		return
	}
	c.index = min(c.index, c.counts[c.group]-1)
}
