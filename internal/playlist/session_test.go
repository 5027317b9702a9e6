//nolint:goconst // test file with repeated string literals
package playlist

import (
	"errors"
	"testing"
	"time"

	"github.com/llehouerou/reel/internal/library"
)

func items(ids ...int64) []Item {
	out := make([]Item, len(ids))
	for i, id := range ids {
		out[i] = Item{MediaID: id, Title: "item"}
	}
	return out
}

func ids(s *Session) []int64 {
	out := make([]int64, s.Len())
	for i, it := range s.Items() {
		out[i] = it.MediaID
	}
	return out
}

func equal(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewSession(t *testing.T) {
	s := NewSession()

	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if s.CurrentIndex() != -1 {
		t.Errorf("CurrentIndex() = %d, want -1", s.CurrentIndex())
	}
	if s.Current() != nil {
		t.Error("Current() should be nil for empty session")
	}
	if s.Playing() {
		t.Error("Playing() should be false")
	}
}

func TestSession_Append(t *testing.T) {
	s := NewSession()
	s.Append(items(1, 2)...)

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if s.CurrentIndex() != -1 {
		t.Errorf("CurrentIndex() = %d, want -1 (unchanged)", s.CurrentIndex())
	}
}

func TestSession_SetCurrent(t *testing.T) {
	s := NewSession()
	s.Append(items(1, 2, 3)...)

	if !s.SetCurrent(2) {
		t.Fatal("SetCurrent(2) should succeed")
	}
	if s.Current().MediaID != 3 {
		t.Errorf("Current() = %d, want 3", s.Current().MediaID)
	}
	for _, pos := range []int{-1, 3, 10} {
		if s.SetCurrent(pos) {
			t.Errorf("SetCurrent(%d) should fail", pos)
		}
	}
	if s.CurrentIndex() != 2 {
		t.Errorf("CurrentIndex() = %d, want 2 (unchanged)", s.CurrentIndex())
	}
}

func TestSession_Move(t *testing.T) {
	tests := []struct {
		name        string
		from, to    int
		current     int
		wantIDs     []int64
		wantCurrent int
		wantOK      bool
	}{
		{
			name: "down past removal slot", from: 0, to: 2, current: -1,
			wantIDs: []int64{2, 1, 3, 4, 5}, wantCurrent: -1, wantOK: true,
		},
		{
			name: "to end", from: 1, to: 5, current: -1,
			wantIDs: []int64{1, 3, 4, 5, 2}, wantCurrent: -1, wantOK: true,
		},
		{
			name: "up", from: 3, to: 1, current: -1,
			wantIDs: []int64{1, 4, 2, 3, 5}, wantCurrent: -1, wantOK: true,
		},
		{
			name: "to next slot is a no-op", from: 2, to: 3, current: 2,
			wantIDs: []int64{1, 2, 3, 4, 5}, wantCurrent: 2, wantOK: true,
		},
		{
			name: "same slot is a no-op", from: 2, to: 2, current: 2,
			wantIDs: []int64{1, 2, 3, 4, 5}, wantCurrent: 2, wantOK: true,
		},
		{
			name: "current item moves", from: 1, to: 4, current: 1,
			wantIDs: []int64{1, 3, 4, 2, 5}, wantCurrent: 3, wantOK: true,
		},
		{
			name: "item moved down over current", from: 0, to: 3, current: 2,
			wantIDs: []int64{2, 3, 1, 4, 5}, wantCurrent: 1, wantOK: true,
		},
		{
			name: "item moved up over current", from: 4, to: 1, current: 2,
			wantIDs: []int64{1, 5, 2, 3, 4}, wantCurrent: 3, wantOK: true,
		},
		{
			name: "current untouched outside range", from: 3, to: 5, current: 1,
			wantIDs: []int64{1, 2, 3, 5, 4}, wantCurrent: 1, wantOK: true,
		},
		{
			name: "from out of range", from: 5, to: 0, current: 0,
			wantIDs: []int64{1, 2, 3, 4, 5}, wantCurrent: 0, wantOK: false,
		},
		{
			name: "to out of range", from: 0, to: 6, current: 0,
			wantIDs: []int64{1, 2, 3, 4, 5}, wantCurrent: 0, wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			s.Append(items(1, 2, 3, 4, 5)...)
			if tt.current >= 0 {
				s.SetCurrent(tt.current)
			}

			ok := s.Move(tt.from, tt.to)

			if ok != tt.wantOK {
				t.Errorf("Move(%d, %d) = %v, want %v", tt.from, tt.to, ok, tt.wantOK)
			}
			if got := ids(s); !equal(got, tt.wantIDs) {
				t.Errorf("items = %v, want %v", got, tt.wantIDs)
			}
			if s.CurrentIndex() != tt.wantCurrent {
				t.Errorf("CurrentIndex() = %d, want %d", s.CurrentIndex(), tt.wantCurrent)
			}
		})
	}
}

func TestSession_MoveKeepsCurrentItem(t *testing.T) {
	s := NewSession()
	s.Append(items(1, 2, 3, 4, 5, 6)...)
	s.SetCurrent(3)
	want := s.Current().MediaID

	moves := [][2]int{{0, 6}, {5, 0}, {2, 5}, {4, 1}, {3, 0}, {1, 4}}
	for _, m := range moves {
		s.Move(m[0], m[1])
		if s.Current().MediaID != want {
			t.Fatalf("after Move(%d, %d) current = %d, want %d", m[0], m[1], s.Current().MediaID, want)
		}
	}
}

func TestSession_InsertAt(t *testing.T) {
	s := NewSession()
	s.Append(items(1, 2, 3)...)
	s.SetCurrent(1)

	if !s.InsertAt(0, Item{MediaID: 9}) {
		t.Fatal("InsertAt(0) should succeed")
	}
	if got := ids(s); !equal(got, []int64{9, 1, 2, 3}) {
		t.Errorf("items = %v", got)
	}
	if s.CurrentIndex() != 2 {
		t.Errorf("CurrentIndex() = %d, want 2", s.CurrentIndex())
	}

	if !s.InsertAt(4, Item{MediaID: 10}) {
		t.Fatal("InsertAt(Len) should append")
	}
	if s.InsertAt(6, Item{MediaID: 11}) || s.InsertAt(-1, Item{MediaID: 11}) {
		t.Error("out of range InsertAt should fail")
	}
}

func TestSession_RemoveAt(t *testing.T) {
	tests := []struct {
		name        string
		ids         []int64
		current     int
		remove      int
		wantCurrent int
	}{
		{"before current", []int64{1, 2, 3}, 2, 0, 1},
		{"after current", []int64{1, 2, 3}, 0, 2, 0},
		{"current moves to next", []int64{1, 2, 3}, 1, 1, 1},
		{"current last clamps", []int64{1, 2, 3}, 2, 2, 1},
		{"only item", []int64{1}, 0, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			s.Append(items(tt.ids...)...)
			s.SetCurrent(tt.current)

			if !s.RemoveAt(tt.remove) {
				t.Fatal("RemoveAt should succeed")
			}
			if s.CurrentIndex() != tt.wantCurrent {
				t.Errorf("CurrentIndex() = %d, want %d", s.CurrentIndex(), tt.wantCurrent)
			}
		})
	}
}

func TestSession_RemoveAt_OutOfRange(t *testing.T) {
	s := NewSession()
	s.Append(items(1)...)
	if s.RemoveAt(1) || s.RemoveAt(-1) {
		t.Error("out of range RemoveAt should fail")
	}
}

func TestSession_Playing(t *testing.T) {
	s := NewSession()
	if s.TogglePlaying() {
		t.Error("nothing plays without a current item")
	}

	s.Append(items(1)...)
	s.SetCurrent(0)
	if !s.TogglePlaying() || !s.Playing() {
		t.Error("toggle should start playback")
	}
	if s.TogglePlaying() {
		t.Error("second toggle should pause")
	}

	s.SetPlaying(true)
	s.RemoveAt(0)
	if s.Playing() {
		t.Error("removing the last item stops playback")
	}
}

func TestSession_ReplaceAndClear(t *testing.T) {
	s := NewSession()
	s.Append(items(1, 2)...)
	s.SetCurrent(1)

	s.Replace(items(7)...)
	if got := ids(s); !equal(got, []int64{7}) || s.CurrentIndex() != 0 {
		t.Errorf("after Replace: %v current %d", got, s.CurrentIndex())
	}

	s.Replace()
	if s.CurrentIndex() != -1 {
		t.Errorf("Replace() with nothing: current = %d, want -1", s.CurrentIndex())
	}

	s.Append(items(1)...)
	s.SetPlaying(true)
	s.Clear()
	if s.Len() != 0 || s.CurrentIndex() != -1 || s.Playing() {
		t.Error("Clear should reset everything")
	}
}

func TestRestore(t *testing.T) {
	s := Restore(items(1, 2, 3), 1, true)
	if s.CurrentIndex() != 1 || !s.Playing() {
		t.Errorf("Restore: current %d playing %v", s.CurrentIndex(), s.Playing())
	}

	s = Restore(items(1), 4, true)
	if s.CurrentIndex() != -1 || s.Playing() {
		t.Error("stale index should be dropped")
	}
}

func TestItems_ReturnsCopy(t *testing.T) {
	s := NewSession()
	s.Append(items(1)...)

	got := s.Items()
	got[0].MediaID = 99

	if s.Item(0).MediaID != 1 {
		t.Error("Items() should return a copy")
	}
}

func TestFromMedia(t *testing.T) {
	m := &library.Media{
		ID: 4, Type: library.Audio, Title: "Angel", Artist: "Massive Attack",
		Album: "Mezzanine", Path: "/m/angel.flac", Length: 6 * time.Minute,
	}
	it := FromMedia(m)

	if it.MediaID != 4 || it.Title != "Angel" || it.Path != "/m/angel.flac" {
		t.Errorf("FromMedia = %+v", it)
	}
	if it.Subtitle != "Massive Attack · Mezzanine" {
		t.Errorf("Subtitle = %q", it.Subtitle)
	}
	if it.IsVideo() {
		t.Error("audio item reported as video")
	}
}

type fakeSource struct {
	media map[int64]*library.Media
}

func (f fakeSource) Media(id int64) (*library.Media, error) {
	if m, ok := f.media[id]; ok {
		return m, nil
	}
	return nil, library.ErrNotFound
}

func (f fakeSource) MediaByAlbum(albumID int64) ([]library.Media, error) {
	var out []library.Media
	for _, id := range []int64{1, 2, 3} {
		if m := f.media[id]; m.AlbumID == albumID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f fakeSource) MediaByArtist(artistID int64) ([]library.Media, error) {
	var out []library.Media
	for _, id := range []int64{1, 2, 3} {
		if m := f.media[id]; m.ArtistID == artistID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func TestCollect(t *testing.T) {
	src := fakeSource{media: map[int64]*library.Media{
		1: {ID: 1, ArtistID: 10, AlbumID: 20},
		2: {ID: 2, ArtistID: 10, AlbumID: 21},
		3: {ID: 3, ArtistID: 11, AlbumID: 22},
	}}

	tests := []struct {
		level Level
		id    int64
		want  []int64
	}{
		{LevelMedia, 2, []int64{2}},
		{LevelAlbum, 20, []int64{1}},
		{LevelArtist, 10, []int64{1, 2}},
	}
	for _, tt := range tests {
		got, err := Collect(src, tt.level, tt.id)
		if err != nil {
			t.Fatalf("Collect(%d, %d): %v", tt.level, tt.id, err)
		}
		gotIDs := make([]int64, len(got))
		for i := range got {
			gotIDs[i] = got[i].MediaID
		}
		if !equal(gotIDs, tt.want) {
			t.Errorf("Collect(%d, %d) = %v, want %v", tt.level, tt.id, gotIDs, tt.want)
		}
	}

	if _, err := Collect(src, LevelMedia, 99); !errors.Is(err, library.ErrNotFound) {
		t.Errorf("missing media: err = %v", err)
	}
	if _, err := Collect(src, Level(42), 1); err == nil {
		t.Error("unknown level should fail")
	}
}
