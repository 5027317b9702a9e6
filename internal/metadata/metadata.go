// Package metadata stores descriptive data about movies and TV shows that
// the media index does not carry: summaries, release dates, backdrops and the
// show/season/episode hierarchy. Entries optionally link to a media record.
package metadata

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotFound is returned when an entry does not exist.
var ErrNotFound = errors.New("metadata entry not found")

// Type is the kind of a metadata entry.
type Type int

const (
	Movie Type = iota
	TVShow
	Episode
)

func (t Type) String() string {
	switch t {
	case TVShow:
		return "tvshow"
	case Episode:
		return "episode"
	default:
		return "movie"
	}
}

// ParseType parses the type names used in metadata files.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movie", "":
		return Movie, nil
	case "tvshow", "tv_show", "show":
		return TVShow, nil
	case "episode":
		return Episode, nil
	default:
		return Movie, fmt.Errorf("unknown metadata type %q", s)
	}
}

// Entry is one metadata record.
type Entry struct {
	ID          string
	MediaID     *int64 // linked media record, nil when not in the library
	MediaPath   string // used on import to resolve MediaID
	Type        Type
	Title       string
	Summary     string
	ReleaseDate string // YYYY-MM-DD, possibly truncated
	Backdrop    string
	ShowID      string // parent show for episodes
	Season      int
	Episode     int
	Genres      []string
}

// Year returns the release year, 0 when unknown.
func (e *Entry) Year() int {
	if len(e.ReleaseDate) < 4 {
		return 0
	}
	y, err := strconv.Atoi(e.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return y
}

// Subtitle is the secondary line shown for the entry.
func (e *Entry) Subtitle() string {
	if e.Type == Episode {
		return e.EpisodeSubtitle()
	}
	var parts []string
	if y := e.Year(); y > 0 {
		parts = append(parts, strconv.Itoa(y))
	}
	if len(e.Genres) > 0 {
		parts = append(parts, strings.Join(e.Genres, ", "))
	}
	return strings.Join(parts, " · ")
}

// EpisodeSubtitle formats the season/episode position, e.g. "S01E04 · Pilot".
func (e *Entry) EpisodeSubtitle() string {
	code := fmt.Sprintf("S%02dE%02d", e.Season, e.Episode)
	if e.Title == "" {
		return code
	}
	return code + " · " + e.Title
}

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}
