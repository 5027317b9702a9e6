package playlist

import "slices"

// Session is the playback model: items, current index and playing flag.
// The current index follows the same item across moves and removals of
// other items.
type Session struct {
	items   []Item
	current int // -1 if unset
	playing bool
}

func NewSession() *Session {
	return &Session{current: -1}
}

// Restore rebuilds a session from persisted state. An out of range index
// is dropped.
func Restore(items []Item, current int, playing bool) *Session {
	s := &Session{items: slices.Clone(items), current: -1}
	if current >= 0 && current < len(s.items) {
		s.current = current
		s.playing = playing
	}
	return s
}

// Items returns a copy of all items.
func (s *Session) Items() []Item {
	return slices.Clone(s.items)
}

// Item returns the item at pos, or nil if out of bounds.
func (s *Session) Item(pos int) *Item {
	if pos < 0 || pos >= len(s.items) {
		return nil
	}
	return &s.items[pos]
}

func (s *Session) Len() int {
	return len(s.items)
}

// Current returns the current item, or nil if none.
func (s *Session) Current() *Item {
	return s.Item(s.current)
}

// CurrentIndex returns the current position (-1 if none).
func (s *Session) CurrentIndex() int {
	return s.current
}

// SetCurrent makes pos the current item. Returns false if pos is out of
// range.
func (s *Session) SetCurrent(pos int) bool {
	if pos < 0 || pos >= len(s.items) {
		return false
	}
	s.current = pos
	return true
}

func (s *Session) Playing() bool {
	return s.playing && s.current >= 0
}

func (s *Session) SetPlaying(playing bool) {
	s.playing = playing
}

// TogglePlaying flips the playing flag and returns the new state. Without a
// current item nothing plays.
func (s *Session) TogglePlaying() bool {
	if s.current < 0 {
		s.playing = false
		return false
	}
	s.playing = !s.playing
	return s.playing
}

// Append adds items at the end without changing the current item.
func (s *Session) Append(items ...Item) {
	s.items = append(s.items, items...)
}

// InsertAt inserts an item before pos (pos == Len appends).
func (s *Session) InsertAt(pos int, item Item) bool {
	if pos < 0 || pos > len(s.items) {
		return false
	}
	s.items = slices.Insert(s.items, pos, item)
	if s.current >= pos {
		s.current++
	}
	return true
}

// RemoveAt removes the item at pos. Removing the current item keeps the
// index on the item that took its place, clamped to the end.
func (s *Session) RemoveAt(pos int) bool {
	if pos < 0 || pos >= len(s.items) {
		return false
	}
	s.items = slices.Delete(s.items, pos, pos+1)

	if s.current > pos {
		s.current--
	} else if s.current == pos && s.current >= len(s.items) {
		s.current = len(s.items) - 1
	}
	if s.current < 0 {
		s.playing = false
	}
	return true
}

// Move moves the item at from to the slot to, counted before the removal:
// to is in [0, Len] and the item lands at to-1 when to > from.
func (s *Session) Move(from, to int) bool {
	n := len(s.items)
	if from < 0 || from >= n || to < 0 || to > n {
		return false
	}
	dst := to
	if to > from {
		dst = to - 1
	}
	if dst == from {
		return true
	}

	item := s.items[from]
	s.items = slices.Delete(s.items, from, from+1)
	s.items = slices.Insert(s.items, dst, item)

	switch {
	case s.current == from:
		s.current = dst
	case from < s.current && s.current <= dst:
		s.current--
	case dst <= s.current && s.current < from:
		s.current++
	}
	return true
}

// Replace swaps all items and makes the first one current.
func (s *Session) Replace(items ...Item) {
	s.items = slices.Clone(items)
	s.current = -1
	if len(s.items) > 0 {
		s.current = 0
	}
}

// Clear removes all items and resets playback.
func (s *Session) Clear() {
	s.items = nil
	s.current = -1
	s.playing = false
}
