package suggest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbutil "github.com/llehouerou/reel/internal/db"
	"github.com/llehouerou/reel/internal/library"
	"github.com/llehouerou/reel/internal/metadata"
	"github.com/llehouerou/reel/internal/state"
	"github.com/llehouerou/reel/internal/thumbnail"
)

func TestProvider_SQLiteStores(t *testing.T) {
	db, err := dbutil.Open(dbutil.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, state.InitSchema(db))

	lib := library.New(db)
	heat, err := lib.AddMedia(&library.Media{
		Path: "/videos/Heat.mkv", Type: library.Video, Title: "Heat", Length: 170 * time.Minute,
		ArtworkMRL: "/videos/folder.jpg",
	})
	require.NoError(t, err)
	heatDoc, err := lib.AddMedia(&library.Media{
		Path: "/videos/Heat Making Of.mkv", Type: library.Video, Title: "Heat Making Of", Length: 30 * time.Minute,
	})
	require.NoError(t, err)
	require.NoError(t, lib.RebuildFTSIndex())

	meta := metadata.New(db)
	require.NoError(t, meta.Import([]metadata.Entry{{
		ID: "tt0113277", Type: metadata.Movie, Title: "Heat",
		MediaPath: "/videos/Heat.mkv", ReleaseDate: "1995-12-15",
	}}))

	p := New(lib, meta, thumbnail.NewResolver(nil, lib))
	c, err := p.Query(context.Background(), "content://reel/search", []string{"Heat!"})
	require.NoError(t, err)

	require.Equal(t, 2, c.Count())
	assert.Equal(t, heat, c.Rows[0].ID)
	assert.Equal(t, 1995, c.Rows[0].Year)
	assert.Equal(t, "file:///videos/folder.jpg", c.Rows[0].Thumbnail)
	assert.Equal(t, heatDoc, c.Rows[1].ID)
	assert.Equal(t, thumbnail.VideoPlaceholder, c.Rows[1].Thumbnail)
}
