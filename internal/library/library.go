// Package library is the primary media index: artists, albums and media
// files (audio tracks and videos) with a full-text search over them.
package library

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// MediaType distinguishes audio tracks from videos.
type MediaType int

const (
	Audio MediaType = iota
	Video
)

func (t MediaType) String() string {
	if t == Video {
		return "video"
	}
	return "audio"
}

// Media is a single playable file in the index.
type Media struct {
	ID                 int64
	Path               string
	Mtime              int64
	Type               MediaType
	Title              string
	ArtistID           int64
	Artist             string
	AlbumID            int64
	Album              string
	TrackNumber        int
	Length             time.Duration
	Year               int
	ArtworkMRL         string
	ThumbnailGenerated bool
	Progress           time.Duration // resume position, 0 if never started
	PlayCount          int
}

// Description is the secondary line shown under the title.
func (m *Media) Description() string {
	switch {
	case m.Type == Video:
		return ""
	case m.Artist != "" && m.Album != "":
		return m.Artist + " · " + m.Album
	default:
		return m.Artist
	}
}

// InProgress reports whether playback was started but not finished.
func (m *Media) InProgress() bool {
	return m.Progress > 0 && (m.Length == 0 || m.Progress < m.Length)
}

type Artist struct {
	ID          int64
	Name        string
	Description string
	ArtworkMRL  string
}

type Album struct {
	ID         int64
	ArtistID   int64
	Title      string
	Artist     string
	Year       int
	Duration   time.Duration
	ArtworkMRL string
}

// SearchAggregate groups search results by category. Any category may be
// empty.
type SearchAggregate struct {
	Artists []Artist
	Albums  []Album
	Videos  []Media
	Tracks  []Media
}

// Empty reports whether no category has a result.
func (a *SearchAggregate) Empty() bool {
	return a == nil || len(a.Artists)+len(a.Albums)+len(a.Videos)+len(a.Tracks) == 0
}

type Library struct {
	db *sql.DB
}

func New(db *sql.DB) *Library {
	return &Library{db: db}
}
