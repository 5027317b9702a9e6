package playlist

import (
	"fmt"

	"github.com/llehouerou/reel/internal/library"
)

// Level is the kind of library node whose media is collected.
type Level int

const (
	LevelMedia Level = iota
	LevelAlbum
	LevelArtist
)

// Source is the part of the library used to collect items.
type Source interface {
	Media(id int64) (*library.Media, error)
	MediaByAlbum(albumID int64) ([]library.Media, error)
	MediaByArtist(artistID int64) ([]library.Media, error)
}

// Collect returns the items for a library node:
// for artists, every track across their albums;
// for albums, the tracks in order;
// for media, that item alone.
func Collect(src Source, level Level, id int64) ([]Item, error) {
	switch level {
	case LevelArtist:
		media, err := src.MediaByArtist(id)
		if err != nil {
			return nil, err
		}
		return FromMediaList(media), nil
	case LevelAlbum:
		media, err := src.MediaByAlbum(id)
		if err != nil {
			return nil, err
		}
		return FromMediaList(media), nil
	case LevelMedia:
		m, err := src.Media(id)
		if err != nil {
			return nil, err
		}
		return []Item{FromMedia(m)}, nil
	default:
		return nil, fmt.Errorf("collect: unknown level %d", level)
	}
}
