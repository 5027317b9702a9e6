package state

import (
	"database/sql"
	"path/filepath"
	"testing"

	dbutil "github.com/llehouerou/reel/internal/db"
)

// setupTestDB creates an in-memory SQLite database with the schema initialized.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := dbutil.Open(dbutil.MemoryDSN)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := InitSchema(db); err != nil {
		db.Close()
		t.Fatalf("failed to init schema: %v", err)
	}
	return db
}

func TestInitSchema_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := InitSchema(db); err != nil {
		t.Fatalf("second InitSchema failed: %v", err)
	}

	var version int
	if err := db.QueryRow(`SELECT MAX(version) FROM schema_version`).Scan(&version); err != nil {
		t.Fatalf("read version: %v", err)
	}
	if version != currentSchemaVersion {
		t.Errorf("version = %d, want %d", version, currentSchemaVersion)
	}
}

func TestGetSession_Empty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	s, err := getSession(db)
	if err != nil {
		t.Fatalf("getSession failed: %v", err)
	}
	if s.CurrentIndex != -1 {
		t.Errorf("CurrentIndex = %d, want -1", s.CurrentIndex)
	}
	if len(s.Items) != 0 {
		t.Errorf("Items = %v, want empty", s.Items)
	}
}

func TestSaveAndGetSession(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	saved := SessionState{
		CurrentIndex: 1,
		Playing:      true,
		Items: []SessionItem{
			{MediaID: 5, Type: 1, Title: "Heat", Subtitle: "1995", Path: "/v/heat.mkv", LengthMs: 10_200_000},
			{MediaID: 9, Type: 0, Title: "Teardrop", Path: "/m/teardrop.flac", LengthMs: 330_000},
			{MediaID: 7, Type: 1, Title: "Ronin", Path: "/v/ronin.mkv"},
		},
	}
	if err := saveSession(db, saved); err != nil {
		t.Fatalf("saveSession failed: %v", err)
	}

	got, err := getSession(db)
	if err != nil {
		t.Fatalf("getSession failed: %v", err)
	}
	if got.CurrentIndex != 1 || !got.Playing {
		t.Errorf("state = (%d, %v), want (1, true)", got.CurrentIndex, got.Playing)
	}
	if len(got.Items) != 3 {
		t.Fatalf("len(Items) = %d, want 3", len(got.Items))
	}
	for i, want := range saved.Items {
		if got.Items[i] != want {
			t.Errorf("Items[%d] = %+v, want %+v", i, got.Items[i], want)
		}
	}
}

func TestSaveSession_ReplacesPrevious(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	first := SessionState{CurrentIndex: 0, Items: []SessionItem{
		{MediaID: 1, Title: "a", Path: "/a"},
		{MediaID: 2, Title: "b", Path: "/b"},
	}}
	second := SessionState{CurrentIndex: 0, Items: []SessionItem{{MediaID: 3, Title: "c", Path: "/c"}}}

	if err := saveSession(db, first); err != nil {
		t.Fatal(err)
	}
	if err := saveSession(db, second); err != nil {
		t.Fatal(err)
	}

	got, err := getSession(db)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Items) != 1 || got.Items[0].MediaID != 3 {
		t.Errorf("Items = %+v, want only media 3", got.Items)
	}
}

func TestGetSession_ClampsStaleIndex(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.Exec(`INSERT INTO session_state (id, current_index, playing) VALUES (1, 4, 0)`); err != nil {
		t.Fatal(err)
	}

	got, err := getSession(db)
	if err != nil {
		t.Fatal(err)
	}
	if got.CurrentIndex != -1 {
		t.Errorf("CurrentIndex = %d, want -1 for an index past the saved items", got.CurrentIndex)
	}
}

func TestOpen_FilePath(t *testing.T) {
	m, err := Open(filepath.Join(t.TempDir(), "reel.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer m.Close()

	if err := m.SaveSession(SessionState{CurrentIndex: -1}); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	s, err := m.GetSession()
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if s.CurrentIndex != -1 {
		t.Errorf("CurrentIndex = %d, want -1", s.CurrentIndex)
	}
}

func TestMock(t *testing.T) {
	m := NewMock()
	items := []SessionItem{{MediaID: 1}}
	if err := m.SaveSession(SessionState{CurrentIndex: 0, Items: items}); err != nil {
		t.Fatal(err)
	}
	items[0].MediaID = 99

	s, _ := m.GetSession()
	if s.Items[0].MediaID != 1 {
		t.Error("mock should keep its own copy of the items")
	}
	if m.Saves() != 1 {
		t.Errorf("Saves() = %d, want 1", m.Saves())
	}
	_ = m.Close()
	if !m.Closed() {
		t.Error("Closed() should be true after Close")
	}
}
