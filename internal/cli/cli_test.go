package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnv writes a config that keeps the database, log and thumbnail cache
// inside a temp dir, plus a media dir holding one movie file.
func testEnv(t *testing.T) (configPath, mediaDir string) {
	t.Helper()
	dir := t.TempDir()
	mediaDir = filepath.Join(dir, "movies")
	require.NoError(t, os.MkdirAll(mediaDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(mediaDir, "Heat (1995).mkv"), []byte("not a real video"), 0o600))

	configPath = filepath.Join(dir, "reel.toml")
	cfg := fmt.Sprintf(`
database = %q
log_file = %q
library_sources = [%q]

[thumbnails]
ffmpeg_path = "reel-test-missing-ffmpeg"
cache_dir = %q
`, filepath.Join(dir, "reel.db"), filepath.Join(dir, "reel.log"), mediaDir, filepath.Join(dir, "thumbs"))
	require.NoError(t, os.WriteFile(configPath, []byte(cfg), 0o600))
	return configPath, mediaDir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestScanThenSuggest(t *testing.T) {
	cfg, _ := testEnv(t)

	out, err := run(t, "scan", "--config", cfg)
	require.NoError(t, err, out)
	assert.Contains(t, out, "added 1")
	assert.Contains(t, out, "(1 media indexed)")

	out, err = run(t, "suggest", "heat", "--config", cfg, "--thumbnails")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Heat")
	assert.Contains(t, out, "1995")
	assert.Contains(t, out, "resource://reel/video-placeholder")
	assert.Contains(t, out, "1 result")
}

func TestMetadataImportEnrichesSuggestions(t *testing.T) {
	cfg, mediaDir := testEnv(t)
	_, err := run(t, "scan", "--config", cfg)
	require.NoError(t, err)

	metaFile := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(metaFile, fmt.Appendf(nil, `
[[entry]]
id = "movie-heat"
type = "movie"
title = "Heat"
release_date = "1995-12-15"
genres = ["Crime", "Drama"]
media_path = %q
`, filepath.Join(mediaDir, "Heat (1995).mkv")), 0o600))

	out, err := run(t, "metadata", "import", metaFile, "--config", cfg)
	require.NoError(t, err, out)
	assert.Contains(t, out, "imported 1 entries")

	out, err = run(t, "suggest", "Heat!", "--config", cfg)
	require.NoError(t, err, out)
	assert.Contains(t, out, "1995 · Crime, Drama")
	assert.Contains(t, out, "1 result", "the indexed video must not be listed twice")
}

func TestSuggestInvalidURI(t *testing.T) {
	cfg, _ := testEnv(t)

	_, err := run(t, "suggest", "heat", "--config", cfg, "--uri", "content://reel/browse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid uri")
}

func TestSuggestRequiresQuery(t *testing.T) {
	_, err := run(t, "suggest")
	assert.Error(t, err)
}

func TestScanWithoutSources(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "empty.toml")
	require.NoError(t, os.WriteFile(cfg, []byte(fmt.Sprintf("database = %q\nlog_file = %q\n",
		filepath.Join(dir, "reel.db"), filepath.Join(dir, "reel.log"))), 0o600))

	_, err := run(t, "scan", "--config", cfg)
	assert.ErrorIs(t, err, errNoSources)
}

func TestMetadataImportBadFile(t *testing.T) {
	cfg, _ := testEnv(t)
	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[[entry]]\ntitle = \"no id\"\n"), 0o600))

	_, err := run(t, "metadata", "import", bad, "--config", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing id")
}

func TestDuration(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{-1, "-"},
		{0, "0:00"},
		{61_000, "1:01"},
		{10_200_000, "2:50:00"},
	}
	for _, tt := range tests {
		if got := duration(tt.ms); got != tt.want {
			t.Errorf("duration(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}
