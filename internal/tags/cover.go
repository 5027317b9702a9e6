package tags

import (
	"os"
	"path/filepath"
	"strings"
)

// Common cover art filenames to look for in album and show folders.
var coverArtFilenames = []string{
	"cover.jpg", "cover.jpeg", "cover.png",
	"folder.jpg", "folder.jpeg", "folder.png",
	"poster.jpg", "poster.jpeg", "poster.png",
	"front.jpg", "front.jpeg", "front.png",
}

// FolderArt returns the path of a cover image in dir, or "" if none exists.
func FolderArt(dir string) string {
	for _, filename := range coverArtFilenames {
		for _, name := range []string{filename, strings.ToUpper(filename)} {
			p := filepath.Join(dir, name)
			if info, err := os.Stat(p); err == nil && !info.IsDir() {
				return p
			}
		}
	}
	return ""
}
