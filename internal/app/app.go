// Package app is the root bubbletea model: the suggestion search on top,
// the playlist below and an optional popup over both.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/errmsg"
	"github.com/llehouerou/reel/internal/playlist"
	"github.com/llehouerou/reel/internal/state"
	"github.com/llehouerou/reel/internal/ui/playlistpanel"
	"github.com/llehouerou/reel/internal/ui/popup"
	"github.com/llehouerou/reel/internal/ui/suggestpanel"
)

// FocusTarget is the panel receiving keys.
type FocusTarget int

const (
	FocusSearch FocusTarget = iota
	FocusPlaylist
)

// Options are the dependencies of the root model.
type Options struct {
	Library      playlist.Source
	Suggestions  suggestpanel.Querier
	State        state.Interface
	ReorderQuiet time.Duration
}

type Model struct {
	Library  playlist.Source
	Session  *playlist.Session
	Playlist playlistpanel.Model
	Search   suggestpanel.Model
	StateMgr state.Interface
	Popup    popup.Popup // nil when no popup is open
	Focus    FocusTarget
	ErrorMsg string
	Width    int
	Height   int
}

// New builds the root model and restores the saved session. A session that
// cannot be read starts empty and reports the error.
func New(opts Options) Model {
	session, err := loadSession(opts.State)
	if session == nil {
		session = playlist.NewSession()
	}

	m := Model{
		Library:  opts.Library,
		Session:  session,
		Playlist: playlistpanel.New(session, sessionPlayer{session}, opts.ReorderQuiet),
		Search:   suggestpanel.New(opts.Suggestions),
		StateMgr: opts.State,
	}
	if err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpPlaylistLoad, err)
	}
	m.SetFocus(FocusSearch)
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// SetFocus moves keyboard focus to target.
func (m *Model) SetFocus(target FocusTarget) {
	m.Focus = target
	m.Search.SetFocused(target == FocusSearch)
	m.Playlist.SetFocused(target == FocusPlaylist)
}
