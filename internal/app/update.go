package app

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/errmsg"
	"github.com/llehouerou/reel/internal/keymap"
	"github.com/llehouerou/reel/internal/playlist"
	"github.com/llehouerou/reel/internal/suggest"
	"github.com/llehouerou/reel/internal/ui/iteminfo"
	"github.com/llehouerou/reel/internal/ui/playlistpanel"
	"github.com/llehouerou/reel/internal/ui/suggestpanel"
)

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case suggestpanel.SelectedMsg:
		return m, m.addRow(msg.Row)

	case playlistpanel.PlaylistChangedMsg:
		m.SaveSession()
		return m, nil

	case activateMsg:
		return m, m.activate(msg.Pos)

	case openInfoMsg:
		p := iteminfo.New(msg.Pos, msg.Item)
		p.SetSize(m.Width, m.Height)
		m.Popup = p
		return m, p.Init()

	case iteminfo.ResultMsg:
		m.Popup = nil
		return m, m.handleInfoResult(msg)
	}

	// Everything else (search results, reorder commits) goes to both panels.
	var searchCmd, playlistCmd tea.Cmd
	m.Search, searchCmd = m.Search.Update(msg)
	m.Playlist, playlistCmd = m.Playlist.Update(msg)
	return m, tea.Batch(searchCmd, playlistCmd)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := keymap.Resolve(m.keyContext(), msg.String())
	if action == keymap.ActionForceQuit {
		return m.quit()
	}

	if m.Popup != nil {
		var cmd tea.Cmd
		m.Popup, cmd = m.Popup.Update(msg)
		return m, cmd
	}

	m.ErrorMsg = ""
	switch action {
	case keymap.ActionSwitchFocus:
		if m.Focus == FocusSearch {
			m.SetFocus(FocusPlaylist)
		} else {
			m.SetFocus(FocusSearch)
		}
		return m, nil
	case keymap.ActionQuit:
		return m.quit()
	case keymap.ActionSearch:
		m.SetFocus(FocusSearch)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.Focus {
	case FocusPlaylist:
		m.Playlist, cmd = m.Playlist.Update(msg)
	case FocusSearch:
		m.Search, cmd = m.Search.Update(msg)
	}
	return m, cmd
}

func (m Model) keyContext() keymap.Context {
	if m.Focus == FocusSearch {
		return keymap.ContextSearch
	}
	return keymap.ContextPlaylist
}

// quit drops a pending reorder gesture and saves the session.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.Playlist.Close()
	m.SaveSession()
	return m, tea.Quit
}

// addRow appends the media behind a suggestion row to the playlist. Resume
// rows also start playing the appended episode.
func (m *Model) addRow(row suggest.Row) tea.Cmd {
	level := playlist.LevelMedia
	switch row.Kind() {
	case suggest.KeyArtist:
		level = playlist.LevelArtist
	case suggest.KeyAlbum:
		level = playlist.LevelAlbum
	}

	if m.Library == nil {
		return nil
	}
	items, err := playlist.Collect(m.Library, level, row.ID)
	if err != nil {
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpPlaylistAdd, row.Title, err)
		return nil
	}
	if len(items) == 0 {
		return nil
	}

	first := m.Session.Len()
	m.Session.Append(items...)
	m.Playlist.Sync()
	m.SaveSession()

	if row.Kind() == suggest.KeyResume {
		return m.activate(first)
	}
	return nil
}

// activate makes pos the current item and starts playing it. The panel
// moves the session index through its Player.
func (m *Model) activate(pos int) tea.Cmd {
	if pos < 0 || pos >= m.Session.Len() {
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpPlaybackStart, strconv.Itoa(pos+1), errOutOfRange)
		return nil
	}
	cmd := m.Playlist.SetCurrentIndex(pos)
	m.Session.SetCurrent(pos)
	m.Session.SetPlaying(true)
	m.Playlist.Refresh()
	m.SaveSession()
	return cmd
}

func (m *Model) handleInfoResult(msg iteminfo.ResultMsg) tea.Cmd {
	switch msg.Action {
	case iteminfo.ActionPlay:
		return m.activate(msg.Pos)
	case iteminfo.ActionRemove:
		item := m.Session.Item(msg.Pos)
		if item == nil || item.MediaID != msg.Item.MediaID {
			return nil
		}
		m.Session.RemoveAt(msg.Pos)
		m.Playlist.Sync()
		m.SaveSession()
	}
	return nil
}
