// Package tags classifies media files and reads the metadata reel indexes:
// audio tags, folder artwork and titles derived from video file names.
package tags

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Audio file extensions.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtOPUS = ".opus"
	ExtOGG  = ".ogg"
	ExtM4A  = ".m4a"
)

// Video file extensions.
const (
	ExtMP4  = ".mp4"
	ExtMKV  = ".mkv"
	ExtAVI  = ".avi"
	ExtWEBM = ".webm"
	ExtMOV  = ".mov"
)

// Tag holds the audio metadata reel stores in the index.
type Tag struct {
	Path        string
	Title       string
	Artist      string
	AlbumArtist string
	Album       string
	TrackNumber int
	Year        int
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// IsAudioFile returns true if the path has a supported audio extension.
func IsAudioFile(path string) bool {
	switch ext(path) {
	case ExtMP3, ExtFLAC, ExtOPUS, ExtOGG, ExtM4A:
		return true
	}
	return false
}

// IsVideoFile returns true if the path has a supported video extension.
func IsVideoFile(path string) bool {
	switch ext(path) {
	case ExtMP4, ExtMKV, ExtAVI, ExtWEBM, ExtMOV:
		return true
	}
	return false
}

var (
	yearRe      = regexp.MustCompile(`[\(\[]((?:19|20)\d{2})[\)\]]`)
	separatorRe = regexp.MustCompile(`[._]+`)
	spacesRe    = regexp.MustCompile(`\s+`)
)

// VideoTitle derives a display title and release year from a video file
// name such as "Heat.(1995).mkv" or "Ronin [1998].mp4".
func VideoTitle(path string) (title string, year int) {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	if m := yearRe.FindStringSubmatchIndex(base); m != nil {
		year, _ = strconv.Atoi(base[m[2]:m[3]])
		base = base[:m[0]] + base[m[1]:]
	}

	title = separatorRe.ReplaceAllString(base, " ")
	title = strings.TrimSpace(spacesRe.ReplaceAllString(title, " "))
	if title == "" {
		title = filepath.Base(path)
	}
	return title, year
}
