// Package suggest turns a free-text query into search suggestion rows drawn
// from the metadata store and the media index.
package suggest

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/llehouerou/reel/internal/library"
	"github.com/llehouerou/reel/internal/metadata"
)

var (
	ErrInvalidURI  = errors.New("invalid uri")
	ErrUnsupported = errors.New("requested operation not supported")
)

// SearchPath is the only path segment the provider answers.
const SearchPath = "search"

// SearchURI is the full request URI used by reel's own clients.
const SearchURI = "content://reel/" + SearchPath

// Result columns, in order.
const (
	ColumnID         = "_id"
	ColumnIntentData = "suggest_intent_data_id"
	ColumnText1      = "suggest_text_1"
	ColumnText2      = "suggest_text_2"
	ColumnCardImage  = "suggest_result_card_image"
	ColumnYear       = "suggest_production_year"
	ColumnDuration   = "suggest_duration"
)

// NoDuration marks rows for which a duration makes no sense (artists).
const NoDuration int64 = -1

// Columns lists the fixed result schema.
var Columns = []string{
	ColumnID, ColumnIntentData, ColumnText1, ColumnText2,
	ColumnCardImage, ColumnYear, ColumnDuration,
}

// Suggestion key prefixes.
const (
	KeyMedia   = "media_"
	KeyArtist  = "artist_"
	KeyAlbum   = "album_"
	KeyEpisode = "episode_"
	KeyResume  = "resume_"
)

// Row is one suggestion.
type Row struct {
	ID        int64
	Key       string
	Title     string
	Subtitle  string
	Thumbnail string
	Year      int   // 0 when unknown
	Duration  int64 // milliseconds, NoDuration when not applicable
}

// Values returns the row in column order.
func (r Row) Values() []any {
	return []any{r.ID, r.Key, r.Title, r.Subtitle, r.Thumbnail, r.Year, r.Duration}
}

// Kind returns the key prefix of the row (e.g. KeyAlbum).
func (r Row) Kind() string {
	if i := strings.IndexByte(r.Key, '_'); i >= 0 {
		return r.Key[:i+1]
	}
	return ""
}

// Cursor is a tabular result set.
type Cursor struct {
	Columns []string
	Rows    []Row
}

func newCursor() *Cursor {
	return &Cursor{Columns: Columns}
}

// Count returns the number of rows; a nil cursor has none.
func (c *Cursor) Count() int {
	if c == nil {
		return 0
	}
	return len(c.Rows)
}

// Index is the primary media index.
type Index interface {
	Search(query string) (*library.SearchAggregate, error)
	Media(id int64) (*library.Media, error)
}

// MetadataStore is the auxiliary metadata store.
type MetadataStore interface {
	SearchMedia(pattern string) ([]metadata.Entry, error)
	ChildEpisodes(showID string) ([]metadata.Entry, error)
}

// Thumbnails resolves artwork for rows.
type Thumbnails interface {
	Resolve(ref string) string
	ForMedia(ctx context.Context, m *library.Media) string
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9 ]`)

// Sanitize drops everything but ASCII letters, digits and spaces, and
// lower-cases the result.
func Sanitize(query string) string {
	return strings.ToLower(unsafeChars.ReplaceAllString(query, ""))
}

// LikePattern builds the metadata title pattern: each space becomes a
// wildcard and the whole is wrapped in wildcards.
func LikePattern(sanitized string) string {
	return "%" + strings.ReplaceAll(sanitized, " ", "%") + "%"
}

// ParsePath returns the first path segment of a request URI.
func ParsePath(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	segment, _, _ := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
	return segment, nil
}

func millis(d time.Duration) int64 {
	return d.Milliseconds()
}

func mediaKey(id int64) string { return KeyMedia + strconv.FormatInt(id, 10) }
