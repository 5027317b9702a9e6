package app

import (
	"errors"

	"github.com/llehouerou/reel/internal/playlist"
)

// activateMsg starts playback of the playlist item at Pos.
type activateMsg struct {
	Pos int
}

// openInfoMsg opens the info popup for a playlist row.
type openInfoMsg struct {
	Pos  int
	Item playlist.Item
}

var errOutOfRange = errors.New("no such playlist item")
