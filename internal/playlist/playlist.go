// Package playlist holds the playback session: an ordered list of media
// items with a current position.
package playlist

import (
	"time"

	"github.com/llehouerou/reel/internal/library"
)

// Item is one entry of the playlist. Identity is the media ID.
type Item struct {
	MediaID  int64
	Type     library.MediaType
	Title    string
	Subtitle string
	Path     string
	Length   time.Duration
}

// IsVideo reports whether the item is a video.
func (i Item) IsVideo() bool {
	return i.Type == library.Video
}

// FromMedia converts a library record to a playlist item.
func FromMedia(m *library.Media) Item {
	return Item{
		MediaID:  m.ID,
		Type:     m.Type,
		Title:    m.Title,
		Subtitle: m.Description(),
		Path:     m.Path,
		Length:   m.Length,
	}
}

// FromMediaList converts library records to playlist items.
func FromMediaList(media []library.Media) []Item {
	result := make([]Item, len(media))
	for i := range media {
		result[i] = FromMedia(&media[i])
	}
	return result
}
