package library

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	dbutil "github.com/llehouerou/reel/internal/db"
)

const mediaColumns = `
	m.id, m.path, m.mtime, m.type, m.title,
	m.artist_id, ar.name, m.album_id, al.title,
	m.track_number, m.length_ms, m.release_year, m.artwork_mrl,
	m.thumbnail_generated, m.progress_ms, m.play_count
`

const mediaFrom = `
	FROM media m
	LEFT JOIN artists ar ON ar.id = m.artist_id
	LEFT JOIN albums al ON al.id = m.album_id
`

type scanner interface {
	Scan(dest ...any) error
}

func scanMedia(row scanner) (*Media, error) {
	var m Media
	var artistID, albumID, trackNum, year sql.NullInt64
	var artist, album, artwork sql.NullString
	var lengthMs, progressMs int64

	err := row.Scan(&m.ID, &m.Path, &m.Mtime, &m.Type, &m.Title,
		&artistID, &artist, &albumID, &album,
		&trackNum, &lengthMs, &year, &artwork,
		&m.ThumbnailGenerated, &progressMs, &m.PlayCount)
	if err != nil {
		return nil, err
	}
	m.ArtistID = dbutil.NullInt64Value(artistID)
	m.Artist = dbutil.NullStringValue(artist)
	m.AlbumID = dbutil.NullInt64Value(albumID)
	m.Album = dbutil.NullStringValue(album)
	m.TrackNumber = int(dbutil.NullInt64Value(trackNum))
	m.Year = int(dbutil.NullInt64Value(year))
	m.ArtworkMRL = dbutil.NullStringValue(artwork)
	m.Length = time.Duration(lengthMs) * time.Millisecond
	m.Progress = time.Duration(progressMs) * time.Millisecond
	return &m, nil
}

func (l *Library) queryMedia(where string, args ...any) ([]Media, error) {
	rows, err := l.db.Query(`SELECT `+mediaColumns+mediaFrom+where, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Media
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *m)
	}
	return result, rows.Err()
}

// Media returns a media record by its ID.
func (l *Library) Media(id int64) (*Media, error) {
	row := l.db.QueryRow(`SELECT `+mediaColumns+mediaFrom+` WHERE m.id = ?`, id)
	m, err := scanMedia(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("media %d: %w", id, ErrNotFound)
	}
	return m, err
}

// MediaByAlbum returns an album's media in track order.
func (l *Library) MediaByAlbum(albumID int64) ([]Media, error) {
	return l.queryMedia(` WHERE m.album_id = ? ORDER BY m.track_number, m.title COLLATE NOCASE`, albumID)
}

// MediaByArtist returns an artist's media grouped by album.
func (l *Library) MediaByArtist(artistID int64) ([]Media, error) {
	return l.queryMedia(` WHERE m.artist_id = ?
		ORDER BY al.release_year, al.title COLLATE NOCASE, m.track_number, m.title COLLATE NOCASE`, artistID)
}

// Artist returns an artist by ID.
func (l *Library) Artist(id int64) (*Artist, error) {
	var a Artist
	var desc, artwork sql.NullString
	err := l.db.QueryRow(`SELECT id, name, description, artwork_mrl FROM artists WHERE id = ?`, id).
		Scan(&a.ID, &a.Name, &desc, &artwork)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("artist %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	a.Description = dbutil.NullStringValue(desc)
	a.ArtworkMRL = dbutil.NullStringValue(artwork)
	return &a, nil
}

// Album returns an album by ID, with its total duration.
func (l *Library) Album(id int64) (*Album, error) {
	var a Album
	var artistID, year sql.NullInt64
	var artist, artwork sql.NullString
	var durationMs int64
	err := l.db.QueryRow(`
		SELECT al.id, al.artist_id, al.title, ar.name, al.release_year, al.artwork_mrl,
			COALESCE((SELECT SUM(length_ms) FROM media WHERE album_id = al.id), 0)
		FROM albums al
		LEFT JOIN artists ar ON ar.id = al.artist_id
		WHERE al.id = ?
	`, id).Scan(&a.ID, &artistID, &a.Title, &artist, &year, &artwork, &durationMs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("album %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	a.ArtistID = dbutil.NullInt64Value(artistID)
	a.Artist = dbutil.NullStringValue(artist)
	a.Year = int(dbutil.NullInt64Value(year))
	a.ArtworkMRL = dbutil.NullStringValue(artwork)
	a.Duration = time.Duration(durationMs) * time.Millisecond
	return &a, nil
}

// UpsertArtist returns the ID of the named artist, creating it if needed.
func (l *Library) UpsertArtist(name string) (int64, error) {
	var id int64
	err := l.db.QueryRow(`
		INSERT INTO artists (name) VALUES (?)
		ON CONFLICT(name) DO UPDATE SET name = excluded.name
		RETURNING id
	`, name).Scan(&id)
	return id, err
}

// UpsertAlbum returns the ID of the album, creating it if needed. A non-zero
// year replaces the stored one.
func (l *Library) UpsertAlbum(artistID int64, title string, year int) (int64, error) {
	var id int64
	err := l.db.QueryRow(`
		INSERT INTO albums (artist_id, title, release_year) VALUES (?, ?, NULLIF(?, 0))
		ON CONFLICT(artist_id, title) DO UPDATE SET
			release_year = COALESCE(excluded.release_year, albums.release_year)
		RETURNING id
	`, artistID, title, year).Scan(&id)
	return id, err
}

// SetArtwork stores an artwork reference on an artist, album or media row.
func (l *Library) SetArtwork(table string, id int64, mrl string) error {
	switch table {
	case "artists", "albums", "media":
	default:
		return fmt.Errorf("set artwork: unknown table %q", table)
	}
	_, err := l.db.Exec(`UPDATE `+table+` SET artwork_mrl = ? WHERE id = ?`, dbutil.NullString(mrl), id)
	return err
}

// AddMedia inserts or updates (by path) a media record and returns its ID.
func (l *Library) AddMedia(m *Media) (int64, error) {
	var id int64
	err := l.db.QueryRow(`
		INSERT INTO media (path, mtime, type, title, artist_id, album_id, track_number,
			length_ms, release_year, artwork_mrl, added_at)
		VALUES (?, ?, ?, ?, NULLIF(?, 0), NULLIF(?, 0), NULLIF(?, 0), ?, NULLIF(?, 0), ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			mtime = excluded.mtime,
			type = excluded.type,
			title = excluded.title,
			artist_id = excluded.artist_id,
			album_id = excluded.album_id,
			track_number = excluded.track_number,
			length_ms = CASE WHEN excluded.length_ms > 0 THEN excluded.length_ms ELSE media.length_ms END,
			release_year = excluded.release_year,
			artwork_mrl = COALESCE(excluded.artwork_mrl, media.artwork_mrl)
		RETURNING id
	`, m.Path, m.Mtime, m.Type, m.Title, m.ArtistID, m.AlbumID, m.TrackNumber,
		m.Length.Milliseconds(), m.Year, dbutil.NullString(m.ArtworkMRL), time.Now().Unix()).Scan(&id)
	if err != nil {
		return 0, err
	}
	m.ID = id
	return id, nil
}

// SetThumbnail records a generated thumbnail for a media record.
func (l *Library) SetThumbnail(id int64, mrl string) error {
	_, err := l.db.Exec(`
		UPDATE media SET artwork_mrl = ?, thumbnail_generated = 1 WHERE id = ?
	`, dbutil.NullString(mrl), id)
	return err
}

// SetProgress stores the resume position and play count of a media record.
func (l *Library) SetProgress(id int64, progress time.Duration, playCount int) error {
	_, err := l.db.Exec(`
		UPDATE media SET progress_ms = ?, play_count = ? WHERE id = ?
	`, progress.Milliseconds(), playCount, id)
	return err
}

// DeleteMediaByPath removes a media record.
func (l *Library) DeleteMediaByPath(path string) error {
	_, err := l.db.Exec(`DELETE FROM media WHERE path = ?`, path)
	return err
}

// mediaMtimes returns path -> mtime for every indexed media file.
func (l *Library) mediaMtimes() (map[string]int64, error) {
	rows, err := l.db.Query(`SELECT path, mtime FROM media`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]int64)
	for rows.Next() {
		var path string
		var mtime int64
		if err := rows.Scan(&path, &mtime); err != nil {
			return nil, err
		}
		result[path] = mtime
	}
	return result, rows.Err()
}

// MediaCount returns the number of media records.
func (l *Library) MediaCount() (int, error) {
	var count int
	err := l.db.QueryRow(`SELECT COUNT(*) FROM media`).Scan(&count)
	return count, err
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
