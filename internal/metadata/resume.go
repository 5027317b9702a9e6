package metadata

import (
	"github.com/llehouerou/reel/internal/library"
)

// MediaLookup resolves a media ID to its record.
type MediaLookup interface {
	Media(id int64) (*library.Media, error)
}

// FirstResumableEpisode picks the episode to offer when resuming a show:
// the first one whose media is in progress, otherwise the first one never
// played. Episodes without a resolvable media record are ignored. Returns
// nil when every episode has been watched.
func FirstResumableEpisode(episodes []Entry, lookup MediaLookup) (*Entry, *library.Media) {
	var unwatched *Entry
	var unwatchedMedia *library.Media

	for i := range episodes {
		ep := &episodes[i]
		if ep.MediaID == nil {
			continue
		}
		m, err := lookup.Media(*ep.MediaID)
		if err != nil || m == nil {
			continue
		}
		if m.InProgress() {
			return ep, m
		}
		if unwatched == nil && m.PlayCount == 0 && m.Progress == 0 {
			unwatched, unwatchedMedia = ep, m
		}
	}
	return unwatched, unwatchedMedia
}
