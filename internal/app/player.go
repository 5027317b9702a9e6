package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/playlist"
	"github.com/llehouerou/reel/internal/ui/playlistpanel"
)

// sessionPlayer applies playlist panel intents to the session. Anything
// that touches the root model goes back through the event loop as a
// message.
type sessionPlayer struct {
	session *playlist.Session
}

func (p sessionPlayer) OnSelectionChanged(pos int) tea.Cmd {
	if !p.session.SetCurrent(pos) {
		return nil
	}
	return func() tea.Msg { return playlistpanel.PlaylistChangedMsg{} }
}

func (p sessionPlayer) OnContextMenuRequested(pos int, item playlist.Item) tea.Cmd {
	return func() tea.Msg { return openInfoMsg{Pos: pos, Item: item} }
}

func (p sessionPlayer) OnItemActivated(pos int, _ playlist.Item) tea.Cmd {
	return func() tea.Msg { return activateMsg{Pos: pos} }
}

var _ playlistpanel.Player = sessionPlayer{}
