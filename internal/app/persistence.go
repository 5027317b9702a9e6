package app

import (
	"fmt"
	"time"

	"github.com/llehouerou/reel/internal/errmsg"
	"github.com/llehouerou/reel/internal/library"
	"github.com/llehouerou/reel/internal/playlist"
	"github.com/llehouerou/reel/internal/state"
)

// SaveSession persists the playlist, the current index and the playing
// flag.
func (m *Model) SaveSession() {
	if m.StateMgr == nil {
		return
	}
	err := m.StateMgr.SaveSession(state.SessionState{
		CurrentIndex: m.Session.CurrentIndex(),
		Playing:      m.Session.Playing(),
		Items:        ItemsToState(m.Session.Items()),
	})
	if err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpPlaylistSave, err)
	}
}

func loadSession(mgr state.Interface) (*playlist.Session, error) {
	if mgr == nil {
		return nil, nil
	}
	saved, err := mgr.GetSession()
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if saved == nil {
		return nil, nil
	}
	return playlist.Restore(StateToItems(saved.Items), saved.CurrentIndex, saved.Playing), nil
}

// ItemsToState converts playlist items to their stored form.
func ItemsToState(items []playlist.Item) []state.SessionItem {
	out := make([]state.SessionItem, len(items))
	for i, it := range items {
		out[i] = state.SessionItem{
			MediaID:  it.MediaID,
			Type:     int(it.Type),
			Title:    it.Title,
			Subtitle: it.Subtitle,
			Path:     it.Path,
			LengthMs: it.Length.Milliseconds(),
		}
	}
	return out
}

// StateToItems converts stored session items back to playlist items.
func StateToItems(items []state.SessionItem) []playlist.Item {
	out := make([]playlist.Item, len(items))
	for i, it := range items {
		out[i] = playlist.Item{
			MediaID:  it.MediaID,
			Type:     library.MediaType(it.Type),
			Title:    it.Title,
			Subtitle: it.Subtitle,
			Path:     it.Path,
			Length:   time.Duration(it.LengthMs) * time.Millisecond,
		}
	}
	return out
}
