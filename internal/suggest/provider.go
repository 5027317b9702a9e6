package suggest

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/llehouerou/reel/internal/library"
	"github.com/llehouerou/reel/internal/metadata"
)

// Provider answers suggestion queries. It is read-only.
type Provider struct {
	index  Index
	meta   MetadataStore
	thumbs Thumbnails
	debug  bool
}

func New(index Index, meta MetadataStore, thumbs Thumbnails) *Provider {
	return &Provider{index: index, meta: meta, thumbs: thumbs}
}

// SetDebug enables per-row debug logging.
func (p *Provider) SetDebug(on bool) {
	p.debug = on
}

func (p *Provider) logf(format string, args ...any) {
	if p.debug {
		log.Printf("suggest: "+format, args...)
	}
}

// Query runs a search. Only the first element of args is used. Rows from
// the metadata store come first, then index artists, albums, videos and
// tracks; videos already emitted from metadata are skipped. A query that
// is blank after sanitizing returns an empty cursor without reaching
// either store.
func (p *Provider) Query(ctx context.Context, uri string, args []string) (*Cursor, error) {
	path, err := ParsePath(uri)
	if err != nil {
		return nil, err
	}
	if path != SearchPath {
		return nil, fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}

	cursor := newCursor()
	if len(args) == 0 {
		return cursor, nil
	}
	query := Sanitize(args[0])
	if strings.TrimSpace(query) == "" {
		return cursor, nil
	}
	p.logf("search for %q", query)

	emitted, err := p.addMetadataRows(ctx, cursor, query)
	if err != nil {
		return nil, err
	}

	agg, err := p.index.Search(query)
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}
	if agg != nil {
		p.addIndexRows(ctx, cursor, agg, emitted)
	}

	p.logf("found %d results", cursor.Count())
	return cursor, nil
}

func (p *Provider) addMetadataRows(ctx context.Context, cursor *Cursor, query string) (map[int64]bool, error) {
	emitted := make(map[int64]bool)
	if p.meta == nil {
		return emitted, nil
	}

	pattern := LikePattern(query)
	p.logf("looking for %q in metadata", pattern)
	entries, err := p.meta.SearchMedia(pattern)
	if err != nil {
		return nil, fmt.Errorf("search metadata: %w", err)
	}
	p.logf("found %d metadata entries", len(entries))

	for i := range entries {
		entry := &entries[i]
		if entry.MediaID != nil {
			m := p.media(*entry.MediaID)
			if m == nil {
				continue
			}
			emitted[m.ID] = true
			cursor.Rows = append(cursor.Rows, Row{
				ID:        m.ID,
				Key:       mediaKey(m.ID),
				Title:     entry.Title,
				Subtitle:  entry.Subtitle(),
				Thumbnail: p.entryThumbnail(ctx, entry, m),
				Year:      entry.Year(),
				Duration:  millis(m.Length),
			})
			continue
		}
		if entry.Type != metadata.TVShow {
			continue
		}
		if err := p.addShowRows(ctx, cursor, entry, emitted); err != nil {
			return nil, err
		}
	}
	return emitted, nil
}

// addShowRows emits the resume row for a show without a media record,
// followed by one row per episode present in the library.
func (p *Provider) addShowRows(ctx context.Context, cursor *Cursor, show *metadata.Entry, emitted map[int64]bool) error {
	p.logf("looking for episodes of %q", show.Title)
	episodes, err := p.meta.ChildEpisodes(show.ID)
	if err != nil {
		return fmt.Errorf("episodes of %s: %w", show.ID, err)
	}

	if ep, m := metadata.FirstResumableEpisode(episodes, p.index); ep != nil {
		cursor.Rows = append(cursor.Rows, Row{
			ID:        m.ID,
			Key:       KeyResume + show.ID,
			Title:     show.Title,
			Subtitle:  "Resume " + ep.EpisodeSubtitle(),
			Thumbnail: p.entryThumbnail(ctx, show, m),
			Year:      ep.Year(),
			Duration:  millis(m.Length),
		})
	}

	for i := range episodes {
		ep := &episodes[i]
		if ep.MediaID == nil {
			continue
		}
		m := p.media(*ep.MediaID)
		if m == nil {
			continue
		}
		emitted[m.ID] = true
		cursor.Rows = append(cursor.Rows, Row{
			ID:        m.ID,
			Key:       KeyEpisode + ep.ID,
			Title:     ep.Title,
			Subtitle:  ep.Subtitle(),
			Thumbnail: p.entryThumbnail(ctx, ep, m),
			Year:      ep.Year(),
			Duration:  millis(m.Length),
		})
	}
	return nil
}

func (p *Provider) addIndexRows(ctx context.Context, cursor *Cursor, agg *library.SearchAggregate, emitted map[int64]bool) {
	for _, a := range agg.Artists {
		p.logf("adding artist %s", a.Name)
		cursor.Rows = append(cursor.Rows, Row{
			ID:        a.ID,
			Key:       KeyArtist + strconv.FormatInt(a.ID, 10),
			Title:     a.Name,
			Subtitle:  a.Description,
			Thumbnail: p.thumbs.Resolve(a.ArtworkMRL),
			Duration:  NoDuration,
		})
	}

	for _, al := range agg.Albums {
		p.logf("adding album %s", al.Title)
		cursor.Rows = append(cursor.Rows, Row{
			ID:        al.ID,
			Key:       KeyAlbum + strconv.FormatInt(al.ID, 10),
			Title:     al.Title,
			Subtitle:  al.Artist,
			Thumbnail: p.thumbs.Resolve(al.ArtworkMRL),
			Year:      al.Year,
			Duration:  millis(al.Duration),
		})
	}

	for i := range agg.Videos {
		v := &agg.Videos[i]
		if emitted[v.ID] {
			continue
		}
		p.logf("adding video %s", v.Title)
		cursor.Rows = append(cursor.Rows, p.mediaRow(ctx, v))
	}

	for i := range agg.Tracks {
		tr := &agg.Tracks[i]
		p.logf("adding track %s", tr.Title)
		cursor.Rows = append(cursor.Rows, p.mediaRow(ctx, tr))
	}
}

func (p *Provider) mediaRow(ctx context.Context, m *library.Media) Row {
	return Row{
		ID:        m.ID,
		Key:       mediaKey(m.ID),
		Title:     m.Title,
		Subtitle:  m.Description(),
		Thumbnail: p.thumbs.ForMedia(ctx, m),
		Year:      m.Year,
		Duration:  millis(m.Length),
	}
}

// entryThumbnail prefers the metadata backdrop over the media artwork.
func (p *Provider) entryThumbnail(ctx context.Context, e *metadata.Entry, m *library.Media) string {
	if uri := p.thumbs.Resolve(e.Backdrop); uri != "" {
		return uri
	}
	return p.thumbs.ForMedia(ctx, m)
}

// media looks up a linked media record; dangling links are skipped.
func (p *Provider) media(id int64) *library.Media {
	m, err := p.index.Media(id)
	if err != nil {
		p.logf("media %d: %v", id, err)
		return nil
	}
	return m
}

// Insert is not supported.
func (p *Provider) Insert(uri string, _ map[string]any) (string, error) {
	return "", fmt.Errorf("insert %s: %w", uri, ErrUnsupported)
}

// Update is not supported.
func (p *Provider) Update(uri string, _ map[string]any, _ string, _ []string) (int, error) {
	return 0, fmt.Errorf("update %s: %w", uri, ErrUnsupported)
}

// Delete is not supported.
func (p *Provider) Delete(uri string, _ string, _ []string) (int, error) {
	return 0, fmt.Errorf("delete %s: %w", uri, ErrUnsupported)
}

// Type returns the MIME type of a URI. Suggestions have none.
func (p *Provider) Type(string) string {
	return ""
}
