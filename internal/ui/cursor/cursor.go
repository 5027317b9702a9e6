// Package cursor tracks the selected row and scroll offset of a list.
package cursor

// Cursor is a row position plus the first visible row. List length and
// viewport height are passed in on every call since both change with the
// data and the terminal.
type Cursor struct {
	pos    int
	offset int
	margin int // rows kept visible above and below pos
}

func New(margin int) Cursor {
	return Cursor{margin: margin}
}

func (c Cursor) Pos() int {
	return c.pos
}

func (c Cursor) Offset() int {
	return c.offset
}

// Move shifts the cursor by delta rows, clamped to the list.
func (c *Cursor) Move(delta, listLen, height int) {
	c.Jump(c.pos+delta, listLen, height)
}

// Jump places the cursor on pos, clamped to the list. Empty lists are left
// untouched.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.EnsureVisible(listLen, height)
}

// EnsureVisible scrolls so the cursor stays margin rows away from the
// viewport edges where the list allows it.
func (c *Cursor) EnsureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)
	if c.pos < c.offset+margin {
		c.offset = c.pos - margin
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// ClampToBounds pulls the cursor back inside a list that shrank. Reports
// whether the position changed.
func (c *Cursor) ClampToBounds(listLen int) bool {
	old := c.pos
	if listLen == 0 {
		c.pos, c.offset = 0, 0
	} else {
		c.pos = clamp(c.pos, listLen-1)
		c.offset = min(c.offset, c.pos)
	}
	return c.pos != old
}

// HandleKey applies list navigation keys: j/k, arrows, g/G, home/end and
// half-page ctrl+d/ctrl+u. Returns false for any other key.
func (c *Cursor) HandleKey(key string, listLen, height int) bool {
	switch key {
	case "j", "down":
		c.Move(1, listLen, height)
	case "k", "up":
		c.Move(-1, listLen, height)
	case "g", "home":
		c.Jump(0, listLen, height)
	case "G", "end":
		c.Jump(listLen-1, listLen, height)
	case "ctrl+d", "pgdown":
		c.Move(max(height/2, 1), listLen, height)
	case "ctrl+u", "pgup":
		c.Move(-max(height/2, 1), listLen, height)
	default:
		return false
	}
	return true
}

func clamp(v, hi int) int {
	return max(0, min(v, hi))
}
