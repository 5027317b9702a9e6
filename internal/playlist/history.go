package playlist

// Removal is an item removed from the session at a position.
type Removal struct {
	Pos  int
	Item Item
}

// RemovalHistory remembers recent removals so they can be undone, newest
// first. Older entries are dropped beyond maxSize.
type RemovalHistory struct {
	removals []Removal
	maxSize  int
}

// NewRemovalHistory creates a history with the given maximum size.
func NewRemovalHistory(maxSize int) *RemovalHistory {
	return &RemovalHistory{
		removals: make([]Removal, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Push records a removal.
func (h *RemovalHistory) Push(r Removal) {
	h.removals = append(h.removals, r)
	if len(h.removals) > h.maxSize {
		excess := len(h.removals) - h.maxSize
		h.removals = h.removals[excess:]
	}
}

// Pop returns the most recent removal, or false if none.
func (h *RemovalHistory) Pop() (Removal, bool) {
	if len(h.removals) == 0 {
		return Removal{}, false
	}
	r := h.removals[len(h.removals)-1]
	h.removals = h.removals[:len(h.removals)-1]
	return r, true
}

// Len returns the number of removals that can be undone.
func (h *RemovalHistory) Len() int {
	return len(h.removals)
}

// Clear forgets every removal.
func (h *RemovalHistory) Clear() {
	h.removals = h.removals[:0]
}

// Undo re-inserts the most recent removal into s, clamping its position to
// the current length. Returns the position used, or false if nothing was
// undone.
func (h *RemovalHistory) Undo(s *Session) (int, bool) {
	r, ok := h.Pop()
	if !ok {
		return 0, false
	}
	pos := min(max(r.Pos, 0), s.Len())
	s.InsertAt(pos, r.Item)
	return pos, true
}
