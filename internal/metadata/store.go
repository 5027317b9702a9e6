package metadata

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	dbutil "github.com/llehouerou/reel/internal/db"
)

const entryColumns = `
	id, ml_id, type, title, summary, release_date, genres,
	backdrop, show_id, season, episode
`

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*Entry, error) {
	var e Entry
	var mlID, season, episode sql.NullInt64
	var summary, releaseDate, genres, backdrop, showID sql.NullString

	err := row.Scan(&e.ID, &mlID, &e.Type, &e.Title, &summary, &releaseDate,
		&genres, &backdrop, &showID, &season, &episode)
	if err != nil {
		return nil, err
	}
	e.MediaID = dbutil.NullInt64ToPtr(mlID)
	e.Summary = dbutil.NullStringValue(summary)
	e.ReleaseDate = dbutil.NullStringValue(releaseDate)
	e.Backdrop = dbutil.NullStringValue(backdrop)
	e.ShowID = dbutil.NullStringValue(showID)
	e.Season = int(dbutil.NullInt64Value(season))
	e.Episode = int(dbutil.NullInt64Value(episode))
	if g := dbutil.NullStringValue(genres); g != "" {
		e.Genres = strings.Split(g, ",")
	}
	return &e, nil
}

func (s *Store) query(where string, args ...any) ([]Entry, error) {
	rows, err := s.db.Query(`SELECT `+entryColumns+` FROM media_metadata `+where, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *e)
	}
	return result, rows.Err()
}

// Get returns an entry by ID.
func (s *Store) Get(id string) (*Entry, error) {
	row := s.db.QueryRow(`SELECT `+entryColumns+` FROM media_metadata WHERE id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return e, err
}

// SearchMedia returns entries whose title matches a SQL LIKE pattern. The
// match is case-insensitive for ASCII.
func (s *Store) SearchMedia(pattern string) ([]Entry, error) {
	return s.query(`WHERE title LIKE ? ORDER BY title, id`, pattern)
}

// ChildEpisodes returns the episodes of a show in season/episode order.
func (s *Store) ChildEpisodes(showID string) ([]Entry, error) {
	return s.query(`WHERE type = ? AND show_id = ? ORDER BY season, episode, id`,
		Episode, showID)
}

// Import upserts entries in a single transaction. An entry without a media
// ID is linked to the media record at MediaPath when one exists.
func (s *Store) Import(entries []Entry) error {
	return dbutil.WithTx(s.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO media_metadata (` + entryColumns + `)
			VALUES (?, COALESCE(?, (SELECT id FROM media WHERE path = ?)),
				?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				ml_id = excluded.ml_id,
				type = excluded.type,
				title = excluded.title,
				summary = excluded.summary,
				release_date = excluded.release_date,
				genres = excluded.genres,
				backdrop = excluded.backdrop,
				show_id = excluded.show_id,
				season = excluded.season,
				episode = excluded.episode
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i := range entries {
			e := &entries[i]
			if e.ID == "" {
				return fmt.Errorf("entry %d (%q): missing id", i, e.Title)
			}
			_, err := stmt.Exec(e.ID, dbutil.PtrToNullInt64(e.MediaID), e.MediaPath,
				e.Type, e.Title, dbutil.NullString(e.Summary),
				dbutil.NullString(e.ReleaseDate),
				dbutil.NullString(strings.Join(e.Genres, ",")),
				dbutil.NullString(e.Backdrop), dbutil.NullString(e.ShowID),
				e.Season, e.Episode)
			if err != nil {
				return fmt.Errorf("import %s: %w", e.ID, err)
			}
		}
		return nil
	})
}
