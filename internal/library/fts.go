package library

import (
	"strings"
	"unicode/utf8"
)

// minQueryRunes is the shortest query the trigram tokenizer can match.
const minQueryRunes = 3

// maxPerCategory caps each category of a search aggregate.
const maxPerCategory = 20

const (
	resultArtist = "artist"
	resultAlbum  = "album"
	resultVideo  = "video"
	resultTrack  = "track"
)

// EnsureFTSIndex rebuilds the FTS index only if it's empty.
// Call this on startup to populate the index for existing databases.
func (l *Library) EnsureFTSIndex() error {
	var count int
	err := l.db.QueryRow(`SELECT COUNT(*) FROM media_search_fts`).Scan(&count)
	if err != nil {
		return err
	}
	if count == 0 {
		return l.RebuildFTSIndex()
	}
	return nil
}

// RebuildFTSIndex rebuilds the full-text search index from artists, albums
// and media. Call it after scans complete.
func (l *Library) RebuildFTSIndex() error {
	statements := []string{
		`DELETE FROM media_search_fts`,
		`INSERT INTO media_search_fts (search_text, result_type, ref_id)
			SELECT name, 'artist', id FROM artists`,
		`INSERT INTO media_search_fts (search_text, result_type, ref_id)
			SELECT al.title || COALESCE(' ' || ar.name, ''), 'album', al.id
			FROM albums al
			LEFT JOIN artists ar ON ar.id = al.artist_id`,
		`INSERT INTO media_search_fts (search_text, result_type, ref_id)
			SELECT m.title || COALESCE(' ' || ar.name, '') || COALESCE(' ' || al.title, ''),
				CASE m.type WHEN 1 THEN 'video' ELSE 'track' END,
				m.id
			FROM media m
			LEFT JOIN artists ar ON ar.id = m.artist_id
			LEFT JOIN albums al ON al.id = m.album_id`,
	}
	for _, stmt := range statements {
		if _, err := l.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

type ftsHit struct {
	resultType string
	refID      int64
}

// Search runs a full-text query over the index. Words shorter than three
// characters cannot be matched by the trigram tokenizer and are ignored; a
// query made only of such words returns a nil aggregate.
func (l *Library) Search(query string) (*SearchAggregate, error) {
	words := searchableWords(query)
	if len(words) == 0 {
		return nil, nil //nolint:nilnil // nil aggregate means "no search performed"
	}

	rows, err := l.db.Query(`
		SELECT result_type, ref_id
		FROM media_search_fts
		WHERE search_text MATCH ?
		ORDER BY rank
	`, escapeFTSQuery(strings.Join(words, " ")))
	if err != nil {
		return nil, err
	}
	var hits []ftsHit
	for rows.Next() {
		var h ftsHit
		if err := rows.Scan(&h.resultType, &h.refID); err != nil {
			rows.Close()
			return nil, err
		}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	return l.collect(hits)
}

// collect loads the records behind the FTS hits, keeping rank order.
// Records deleted since the last rebuild are skipped.
func (l *Library) collect(hits []ftsHit) (*SearchAggregate, error) {
	agg := &SearchAggregate{}
	for _, h := range hits {
		switch h.resultType {
		case resultArtist:
			if len(agg.Artists) >= maxPerCategory {
				continue
			}
			a, err := l.Artist(h.refID)
			if err != nil {
				if isNotFound(err) {
					continue
				}
				return nil, err
			}
			agg.Artists = append(agg.Artists, *a)
		case resultAlbum:
			if len(agg.Albums) >= maxPerCategory {
				continue
			}
			a, err := l.Album(h.refID)
			if err != nil {
				if isNotFound(err) {
					continue
				}
				return nil, err
			}
			agg.Albums = append(agg.Albums, *a)
		case resultVideo, resultTrack:
			m, err := l.Media(h.refID)
			if err != nil {
				if isNotFound(err) {
					continue
				}
				return nil, err
			}
			if m.Type == Video {
				if len(agg.Videos) < maxPerCategory {
					agg.Videos = append(agg.Videos, *m)
				}
			} else if len(agg.Tracks) < maxPerCategory {
				agg.Tracks = append(agg.Tracks, *m)
			}
		}
	}
	return agg, nil
}

func searchableWords(query string) []string {
	var words []string
	for _, w := range strings.Fields(query) {
		if utf8.RuneCountInString(w) >= minQueryRunes {
			words = append(words, w)
		}
	}
	return words
}

// escapeFTSQuery escapes a query string for FTS5 trigram search.
// Each word is wrapped in quotes for substring matching, with implicit AND between words.
func escapeFTSQuery(query string) string {
	words := strings.Fields(query)
	if len(words) == 0 {
		return `""`
	}

	quoted := make([]string, len(words))
	for i, word := range words {
		escaped := strings.ReplaceAll(word, `"`, `""`)
		quoted[i] = `"` + escaped + `"`
	}

	return strings.Join(quoted, " ")
}
