package state

import (
	"database/sql"
	"path/filepath"

	"github.com/adrg/xdg"

	dbutil "github.com/llehouerou/reel/internal/db"
)

const (
	appName    = "reel"
	dbFileName = "reel.db"
)

type Manager struct {
	db *sql.DB
}

// Open opens the database at path, or at the xdg data location when path is
// empty, and makes sure the schema exists.
func Open(path string) (*Manager, error) {
	if path == "" {
		var err error
		path, err = getDBPath()
		if err != nil {
			return nil, err
		}
	}

	db, err := dbutil.Open(path)
	if err != nil {
		return nil, err
	}

	if err := InitSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

func (m *Manager) Close() error {
	return m.db.Close()
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

func (m *Manager) GetSession() (*SessionState, error) {
	return getSession(m.db)
}

func (m *Manager) SaveSession(state SessionState) error {
	return saveSession(m.db, state)
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
