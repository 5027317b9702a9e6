package playlistpanel

// renderState keeps rendered row lines between frames. Rows marked dirty
// are rendered again; a change of width or focus renders everything.
type renderState struct {
	width   int
	focused bool
	lines   map[int]string
	dirty   map[int]bool
}

func newRenderState() *renderState {
	return &renderState{
		lines: make(map[int]string),
		dirty: make(map[int]bool),
	}
}

func (r *renderState) markDirty(rows ...int) {
	for _, row := range rows {
		if row >= 0 {
			r.dirty[row] = true
		}
	}
}

func (r *renderState) invalidate() {
	clear(r.lines)
	clear(r.dirty)
}

// dirtyRows returns the rows waiting to be rendered again.
func (r *renderState) dirtyRows() []int {
	rows := make([]int, 0, len(r.dirty))
	for row := range r.dirty {
		rows = append(rows, row)
	}
	return rows
}

func (r *renderState) line(row int, render func() string) string {
	if l, ok := r.lines[row]; ok && !r.dirty[row] {
		return l
	}
	l := render()
	r.lines[row] = l
	delete(r.dirty, row)
	return l
}

func (r *renderState) reset(width int, focused bool) {
	if r.width == width && r.focused == focused {
		return
	}
	r.width = width
	r.focused = focused
	r.invalidate()
}
