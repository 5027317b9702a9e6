package library

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/llehouerou/reel/internal/tags"
)

const numWorkers = 8

// ScanStats summarizes a completed scan.
type ScanStats struct {
	Added   int
	Updated int
	Removed int
	Skipped int // files whose tags could not be read
}

// fileInfo holds information about a discovered media file.
type fileInfo struct {
	path  string
	mtime int64
	video bool
}

// scanResult is a parsed file ready to be written to the index.
type scanResult struct {
	file fileInfo
	tag  *tags.Tag
	err  error
}

// Scan indexes the audio and video files under the given roots, removes
// vanished files and rebuilds the search index. Unchanged files (same mtime)
// are skipped.
func (l *Library) Scan(ctx context.Context, sources []string) (ScanStats, error) {
	var stats ScanStats

	files := discoverFiles(sources)

	existing, err := l.mediaMtimes()
	if err != nil {
		return stats, err
	}

	toProcess := make([]fileInfo, 0, len(files))
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		seen[f.path] = true
		if mtime, ok := existing[f.path]; ok && mtime == f.mtime {
			continue
		}
		toProcess = append(toProcess, f)
	}

	for r := range parseFiles(ctx, toProcess) {
		if r.err != nil {
			stats.Skipped++
			continue
		}
		if err := l.store(r); err != nil {
			return stats, err
		}
		if _, ok := existing[r.file.path]; ok {
			stats.Updated++
		} else {
			stats.Added++
		}
	}
	if err := ctx.Err(); err != nil {
		return stats, err
	}

	for path := range existing {
		if seen[path] {
			continue
		}
		if err := l.DeleteMediaByPath(path); err != nil {
			return stats, err
		}
		stats.Removed++
	}

	return stats, l.RebuildFTSIndex()
}

// discoverFiles walks the given source directories and returns all media files found.
func discoverFiles(sources []string) []fileInfo {
	var files []fileInfo
	for _, src := range sources {
		_ = filepath.WalkDir(src, func(path string, d os.DirEntry, walkErr error) error {
			// Skip any walk errors - intentionally continuing to scan other paths
			if walkErr != nil {
				return nil //nolint:nilerr // intentionally skipping errors
			}
			if d.IsDir() {
				return nil
			}
			video := tags.IsVideoFile(path)
			if !video && !tags.IsAudioFile(path) {
				return nil
			}

			info, infoErr := d.Info()
			if infoErr != nil {
				return nil //nolint:nilerr // intentionally skipping errors
			}

			files = append(files, fileInfo{
				path:  path,
				mtime: info.ModTime().Unix(),
				video: video,
			})
			return nil
		})
	}
	return files
}

// parseFiles reads tags with a fixed pool of workers. The returned channel
// is closed once every file is parsed or ctx is cancelled.
func parseFiles(ctx context.Context, files []fileInfo) <-chan scanResult {
	workCh := make(chan fileInfo)
	resultCh := make(chan scanResult)

	go func() {
		defer close(workCh)
		for _, f := range files {
			select {
			case workCh <- f:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Go(func() {
			for f := range workCh {
				r := scanResult{file: f}
				if !f.video {
					r.tag, r.err = tags.Read(f.path)
				}
				select {
				case resultCh <- r:
				case <-ctx.Done():
					return
				}
			}
		})
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	return resultCh
}

// store writes one parsed file to the index.
func (l *Library) store(r scanResult) error {
	if r.file.video {
		title, year := tags.VideoTitle(r.file.path)
		_, err := l.AddMedia(&Media{
			Path:       r.file.path,
			Mtime:      r.file.mtime,
			Type:       Video,
			Title:      title,
			Year:       year,
			ArtworkMRL: tags.FolderArt(filepath.Dir(r.file.path)),
		})
		return err
	}

	t := r.tag
	m := &Media{
		Path:        r.file.path,
		Mtime:       r.file.mtime,
		Type:        Audio,
		Title:       t.Title,
		TrackNumber: t.TrackNumber,
		Year:        t.Year,
	}

	if t.AlbumArtist != "" {
		artistID, err := l.UpsertArtist(t.AlbumArtist)
		if err != nil {
			return err
		}
		m.ArtistID = artistID

		if t.Album != "" {
			albumID, err := l.UpsertAlbum(artistID, t.Album, t.Year)
			if err != nil {
				return err
			}
			m.AlbumID = albumID
			if art := tags.FolderArt(filepath.Dir(r.file.path)); art != "" {
				if err := l.SetArtwork("albums", albumID, art); err != nil {
					return err
				}
			}
		}
	}

	_, err := l.AddMedia(m)
	return err
}
