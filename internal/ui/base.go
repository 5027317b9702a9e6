// Package ui holds layout constants and the focus/size state shared by the
// reel panels.
package ui

// Base carries focus and size for a panel. Embed it in a model.
type Base struct {
	width, height int
	focused       bool
}

func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

func (b Base) IsFocused() bool {
	return b.focused
}

func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

func (b Base) Width() int {
	return b.width
}

func (b Base) Height() int {
	return b.height
}

// ListHeight is the height left for rows once overhead lines are removed.
func (b Base) ListHeight(overhead int) int {
	return max(b.height-overhead, 0)
}
