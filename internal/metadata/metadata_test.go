package metadata

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbutil "github.com/llehouerou/reel/internal/db"
	"github.com/llehouerou/reel/internal/library"
	"github.com/llehouerou/reel/internal/state"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := dbutil.Open(dbutil.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, state.InitSchema(db))
	return db
}

func addVideo(t *testing.T, lib *library.Library, path, title string) int64 {
	t.Helper()
	id, err := lib.AddMedia(&library.Media{Path: path, Type: library.Video, Title: title, Length: time.Hour})
	require.NoError(t, err)
	return id
}

func ptr(v int64) *int64 { return &v }

func TestEntry_Year(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"1995-12-15", 1995},
		{"2008", 2008},
		{"", 0},
		{"abc", 0},
		{"19xx-01-01", 0},
	}
	for _, tt := range tests {
		e := Entry{ReleaseDate: tt.date}
		if got := e.Year(); got != tt.want {
			t.Errorf("Year(%q) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestEntry_Subtitle(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{
			name:  "movie with year and genres",
			entry: Entry{Type: Movie, ReleaseDate: "1995-12-15", Genres: []string{"Crime", "Drama"}},
			want:  "1995 · Crime, Drama",
		},
		{
			name:  "show without genres",
			entry: Entry{Type: TVShow, ReleaseDate: "2008-01-20"},
			want:  "2008",
		},
		{
			name:  "nothing known",
			entry: Entry{Type: Movie},
			want:  "",
		},
		{
			name:  "episode uses episode subtitle",
			entry: Entry{Type: Episode, Season: 1, Episode: 4, Title: "Cat's in the Bag"},
			want:  "S01E04 · Cat's in the Bag",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.Subtitle())
		})
	}
}

func TestEntry_EpisodeSubtitle_NoTitle(t *testing.T) {
	e := Entry{Type: Episode, Season: 2, Episode: 10}
	assert.Equal(t, "S02E10", e.EpisodeSubtitle())
}

func TestParseType(t *testing.T) {
	for in, want := range map[string]Type{
		"movie": Movie, "": Movie, "TVShow": TVShow, "tv_show": TVShow, "episode": Episode,
	} {
		got, err := ParseType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseType("podcast")
	assert.Error(t, err)
}

func TestImportAndGet(t *testing.T) {
	db := setupTestDB(t)
	lib := library.New(db)
	store := New(db)
	heat := addVideo(t, lib, "/videos/Heat.mkv", "Heat")

	err := store.Import([]Entry{{
		ID:          "tt0113277",
		MediaPath:   "/videos/Heat.mkv",
		Type:        Movie,
		Title:       "Heat",
		ReleaseDate: "1995-12-15",
		Genres:      []string{"Crime", "Thriller"},
		Backdrop:    "/art/heat.jpg",
	}})
	require.NoError(t, err)

	e, err := store.Get("tt0113277")
	require.NoError(t, err)
	require.NotNil(t, e.MediaID)
	assert.Equal(t, heat, *e.MediaID, "media path should resolve to the media id")
	assert.Equal(t, []string{"Crime", "Thriller"}, e.Genres)
	assert.Equal(t, "/art/heat.jpg", e.Backdrop)

	// Re-import updates in place.
	require.NoError(t, store.Import([]Entry{{ID: "tt0113277", Type: Movie, Title: "Heat (1995)"}}))
	e, err = store.Get("tt0113277")
	require.NoError(t, err)
	assert.Equal(t, "Heat (1995)", e.Title)
	assert.Nil(t, e.MediaID)
}

func TestImport_MissingIDRollsBack(t *testing.T) {
	store := New(setupTestDB(t))

	err := store.Import([]Entry{
		{ID: "a", Title: "A"},
		{Title: "no id"},
	})
	require.Error(t, err)

	_, err = store.Get("a")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSearchMedia(t *testing.T) {
	store := New(setupTestDB(t))
	require.NoError(t, store.Import([]Entry{
		{ID: "m1", Type: Movie, Title: "Heat"},
		{ID: "m2", Type: Movie, Title: "Angel Heart"},
		{ID: "m3", Type: Movie, Title: "Ronin"},
	}))

	got, err := store.SearchMedia("%heat%")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "m1", got[0].ID)

	got, err = store.SearchMedia("%angel%heart%")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "m2", got[0].ID)

	got, err = store.SearchMedia("%zzz%")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestChildEpisodes_Ordered(t *testing.T) {
	store := New(setupTestDB(t))
	require.NoError(t, store.Import([]Entry{
		{ID: "show", Type: TVShow, Title: "Breaking Bad"},
		{ID: "e3", Type: Episode, ShowID: "show", Season: 2, Episode: 1, Title: "Seven Thirty-Seven"},
		{ID: "e2", Type: Episode, ShowID: "show", Season: 1, Episode: 2, Title: "Cat's in the Bag"},
		{ID: "e1", Type: Episode, ShowID: "show", Season: 1, Episode: 1, Title: "Pilot"},
		{ID: "other", Type: Episode, ShowID: "other-show", Season: 1, Episode: 1},
	}))

	eps, err := store.ChildEpisodes("show")
	require.NoError(t, err)
	require.Len(t, eps, 3)
	assert.Equal(t, "e1", eps[0].ID)
	assert.Equal(t, "e2", eps[1].ID)
	assert.Equal(t, "e3", eps[2].ID)
}

type fakeLookup map[int64]*library.Media

func (f fakeLookup) Media(id int64) (*library.Media, error) {
	m, ok := f[id]
	if !ok {
		return nil, library.ErrNotFound
	}
	return m, nil
}

func TestFirstResumableEpisode(t *testing.T) {
	watched := &library.Media{ID: 1, Length: time.Hour, Progress: time.Hour, PlayCount: 1}
	unwatched := &library.Media{ID: 2, Length: time.Hour}
	inProgress := &library.Media{ID: 3, Length: time.Hour, Progress: 10 * time.Minute}
	lookup := fakeLookup{1: watched, 2: unwatched, 3: inProgress}

	eps := []Entry{
		{ID: "no-media"},
		{ID: "e1", MediaID: ptr(1)},
		{ID: "e2", MediaID: ptr(2)},
		{ID: "e3", MediaID: ptr(3)},
		{ID: "missing", MediaID: ptr(99)},
	}

	t.Run("in progress wins", func(t *testing.T) {
		ep, m := FirstResumableEpisode(eps, lookup)
		require.NotNil(t, ep)
		assert.Equal(t, "e3", ep.ID)
		assert.Equal(t, inProgress, m)
	})

	t.Run("first unwatched otherwise", func(t *testing.T) {
		ep, m := FirstResumableEpisode(eps[:3], lookup)
		require.NotNil(t, ep)
		assert.Equal(t, "e2", ep.ID)
		assert.Equal(t, unwatched, m)
	})

	t.Run("all watched", func(t *testing.T) {
		ep, m := FirstResumableEpisode(eps[:2], lookup)
		assert.Nil(t, ep)
		assert.Nil(t, m)
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meta.toml")
	content := `
[[entry]]
id = "tt0113277"
type = "movie"
title = "Heat"
release_date = "1995-12-15"
genres = ["Crime", "Thriller"]
media_path = "/videos/Heat.mkv"

[[entry]]
id = "bb-s01e01"
type = "episode"
title = "Pilot"
show_id = "bb"
season = 1
episode = 1
media_id = 12
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	entries, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, Movie, entries[0].Type)
	assert.Equal(t, "/videos/Heat.mkv", entries[0].MediaPath)
	assert.Nil(t, entries[0].MediaID)
	assert.Equal(t, []string{"Crime", "Thriller"}, entries[0].Genres)

	assert.Equal(t, Episode, entries[1].Type)
	assert.Equal(t, "bb", entries[1].ShowID)
	require.NotNil(t, entries[1].MediaID)
	assert.Equal(t, int64(12), *entries[1].MediaID)
}

func TestLoadFile_UnknownType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meta.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[entry]]\nid = \"x\"\ntype = \"podcast\"\n"), 0o600))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
