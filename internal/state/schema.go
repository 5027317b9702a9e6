package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

// InitSchema creates every table reel uses. It is idempotent.
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS artists (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			description TEXT,
			artwork_mrl TEXT
		);

		CREATE TABLE IF NOT EXISTS albums (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			artist_id INTEGER REFERENCES artists(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			release_year INTEGER,
			artwork_mrl TEXT,
			UNIQUE(artist_id, title)
		);

		CREATE TABLE IF NOT EXISTS media (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			path TEXT NOT NULL UNIQUE,
			mtime INTEGER NOT NULL,
			type INTEGER NOT NULL,
			title TEXT NOT NULL,
			artist_id INTEGER REFERENCES artists(id) ON DELETE SET NULL,
			album_id INTEGER REFERENCES albums(id) ON DELETE SET NULL,
			track_number INTEGER,
			length_ms INTEGER NOT NULL DEFAULT 0,
			release_year INTEGER,
			artwork_mrl TEXT,
			thumbnail_generated INTEGER NOT NULL DEFAULT 0,
			progress_ms INTEGER NOT NULL DEFAULT 0,
			play_count INTEGER NOT NULL DEFAULT 0,
			added_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_media_album ON media(album_id, track_number);
		CREATE INDEX IF NOT EXISTS idx_media_artist ON media(artist_id);

		CREATE VIRTUAL TABLE IF NOT EXISTS media_search_fts USING fts5(
			search_text,
			result_type UNINDEXED,
			ref_id UNINDEXED,
			tokenize='trigram'
		);

		CREATE TABLE IF NOT EXISTS media_metadata (
			id TEXT PRIMARY KEY,
			ml_id INTEGER REFERENCES media(id) ON DELETE SET NULL,
			type INTEGER NOT NULL,
			title TEXT NOT NULL,
			summary TEXT,
			release_date TEXT,
			genres TEXT,
			backdrop TEXT,
			show_id TEXT,
			season INTEGER,
			episode INTEGER
		);

		CREATE INDEX IF NOT EXISTS idx_metadata_show ON media_metadata(show_id, season, episode);

		CREATE TABLE IF NOT EXISTS session_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			current_index INTEGER NOT NULL DEFAULT -1,
			playing INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS session_items (
			position INTEGER PRIMARY KEY,
			media_id INTEGER NOT NULL,
			type INTEGER NOT NULL,
			title TEXT NOT NULL,
			subtitle TEXT,
			path TEXT NOT NULL,
			length_ms INTEGER NOT NULL DEFAULT 0
		);
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
