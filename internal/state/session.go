package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/reel/internal/db"
)

// SessionItem is one saved playlist entry.
type SessionItem struct {
	MediaID  int64
	Type     int
	Title    string
	Subtitle string
	Path     string
	LengthMs int64
}

// SessionState is the saved playback session.
type SessionState struct {
	CurrentIndex int
	Playing      bool
	Items        []SessionItem
}

func getSession(db *sql.DB) (*SessionState, error) {
	var currentIndex int
	var playing bool
	row := db.QueryRow(`SELECT current_index, playing FROM session_state WHERE id = 1`)
	err := row.Scan(&currentIndex, &playing)
	if errors.Is(err, sql.ErrNoRows) {
		return &SessionState{CurrentIndex: -1}, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT media_id, type, title, subtitle, path, length_ms
		FROM session_items
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []SessionItem
	for rows.Next() {
		var it SessionItem
		var subtitle sql.NullString
		if err := rows.Scan(&it.MediaID, &it.Type, &it.Title, &subtitle, &it.Path, &it.LengthMs); err != nil {
			return nil, err
		}
		it.Subtitle = dbutil.NullStringValue(subtitle)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if currentIndex >= len(items) {
		currentIndex = -1
	}

	return &SessionState{
		CurrentIndex: currentIndex,
		Playing:      playing,
		Items:        items,
	}, nil
}

func saveSession(sqlDB *sql.DB, state SessionState) error {
	return dbutil.WithTx(sqlDB, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM session_items`); err != nil {
			return err
		}

		_, err := tx.Exec(`
			INSERT INTO session_state (id, current_index, playing)
			VALUES (1, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				current_index = excluded.current_index,
				playing = excluded.playing
		`, state.CurrentIndex, state.Playing)
		if err != nil {
			return err
		}

		stmt, err := tx.Prepare(`
			INSERT INTO session_items (position, media_id, type, title, subtitle, path, length_ms)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, it := range state.Items {
			_, err = stmt.Exec(i, it.MediaID, it.Type, it.Title, dbutil.NullString(it.Subtitle), it.Path, it.LengthMs)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
