package playlist

import "testing"

func TestRemovalHistory_PushPop(t *testing.T) {
	h := NewRemovalHistory(2)

	if _, ok := h.Pop(); ok {
		t.Error("Pop on empty history should fail")
	}

	h.Push(Removal{Pos: 0, Item: Item{MediaID: 1}})
	h.Push(Removal{Pos: 1, Item: Item{MediaID: 2}})
	h.Push(Removal{Pos: 2, Item: Item{MediaID: 3}})

	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (oldest dropped)", h.Len())
	}
	r, _ := h.Pop()
	if r.Item.MediaID != 3 {
		t.Errorf("Pop() = %d, want 3", r.Item.MediaID)
	}
	r, _ = h.Pop()
	if r.Item.MediaID != 2 {
		t.Errorf("Pop() = %d, want 2", r.Item.MediaID)
	}
}

func TestRemovalHistory_Undo(t *testing.T) {
	s := NewSession()
	s.Append(items(1, 2, 3)...)
	s.SetCurrent(2)
	h := NewRemovalHistory(10)

	removed := *s.Item(1)
	s.RemoveAt(1)
	h.Push(Removal{Pos: 1, Item: removed})

	pos, ok := h.Undo(s)
	if !ok || pos != 1 {
		t.Fatalf("Undo() = %d, %v", pos, ok)
	}
	if got := ids(s); !equal(got, []int64{1, 2, 3}) {
		t.Errorf("items = %v, want [1 2 3]", got)
	}
	if s.CurrentIndex() != 2 {
		t.Errorf("CurrentIndex() = %d, want 2", s.CurrentIndex())
	}

	if _, ok := h.Undo(s); ok {
		t.Error("nothing left to undo")
	}
}

func TestRemovalHistory_UndoClampsPosition(t *testing.T) {
	s := NewSession()
	s.Append(items(1)...)
	h := NewRemovalHistory(10)
	h.Push(Removal{Pos: 5, Item: Item{MediaID: 9}})

	pos, ok := h.Undo(s)
	if !ok || pos != 1 {
		t.Errorf("Undo() = %d, %v, want 1, true", pos, ok)
	}
	h.Push(Removal{Pos: 0, Item: Item{MediaID: 8}})
	h.Clear()
	if h.Len() != 0 {
		t.Error("Clear should empty the history")
	}
}
