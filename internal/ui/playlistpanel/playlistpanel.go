// Package playlistpanel renders the playback session as a reorderable list.
// Adjacent move steps are applied to a local copy of the rows right away and
// committed to the session as a single move once the gesture settles.
package playlistpanel

import (
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/playlist"
	"github.com/llehouerou/reel/internal/reorder"
	"github.com/llehouerou/reel/internal/ui"
	"github.com/llehouerou/reel/internal/ui/cursor"
)

const undoDepth = 20

// Player reacts to user intent on playlist rows. Returned commands run on the
// bubbletea loop.
type Player interface {
	OnSelectionChanged(pos int) tea.Cmd
	OnContextMenuRequested(pos int, item playlist.Item) tea.Cmd
	OnItemActivated(pos int, item playlist.Item) tea.Cmd
}

// PlaylistChangedMsg is sent after the session was modified (move, remove,
// undo, play/pause) and needs persisting.
type PlaylistChangedMsg struct{}

type Model struct {
	ui.Base
	session  *playlist.Session
	player   Player
	rows     []playlist.Item
	current  int
	cursor   cursor.Cursor
	debounce *reorder.Debouncer
	removals *playlist.RemovalHistory
	render   *renderState
	status   string
}

// New creates a panel over session. quiet is the reorder commit delay.
func New(session *playlist.Session, player Player, quiet time.Duration) Model {
	m := Model{
		session:  session,
		player:   player,
		current:  -1,
		cursor:   cursor.New(ui.ScrollMargin),
		debounce: reorder.New(quiet),
		removals: playlist.NewRemovalHistory(undoDepth),
		render:   newRenderState(),
	}
	m.Sync()
	return m
}

// SetFocused overrides ui.Base to refresh the cursor row.
func (m *Model) SetFocused(focused bool) {
	if focused != m.IsFocused() {
		m.render.markDirty(m.cursor.Pos())
	}
	m.Base.SetFocused(focused)
}

// Rows returns the cached rows as displayed.
func (m Model) Rows() []playlist.Item {
	return slices.Clone(m.rows)
}

// CurrentIndex returns the displayed current row (-1 if none).
func (m Model) CurrentIndex() int {
	return m.current
}

// CursorPos returns the cursor row.
func (m Model) CursorPos() int {
	return m.cursor.Pos()
}

// Status returns the last status message.
func (m Model) Status() string {
	return m.status
}

// Pending reports whether a move gesture is waiting to be committed.
func (m Model) Pending() bool {
	return m.debounce.Pending()
}

// Sync refreshes the row cache from the session. Rows are replaced only if
// the item identities differ. Nothing is synced while a move gesture is
// pending, since the cache is ahead of the session until it commits.
func (m *Model) Sync() {
	if m.debounce.Pending() {
		return
	}

	items := m.session.Items()
	if !sameIdentities(m.rows, items) {
		m.rows = items
		m.render.invalidate()
		m.cursor.ClampToBounds(len(m.rows))
		m.cursor.EnsureVisible(len(m.rows), m.listHeight())
	}

	if cur := m.session.CurrentIndex(); cur != m.current {
		m.render.markDirty(m.current, cur)
		m.current = cur
	}
}

// SetCurrentIndex marks pos as the current row and notifies the player.
// Setting the same index or one outside the rows is a no-op.
func (m *Model) SetCurrentIndex(pos int) tea.Cmd {
	if pos == m.current || pos < 0 || pos >= len(m.rows) {
		return nil
	}
	m.render.markDirty(m.current, pos)
	m.current = pos
	if m.player == nil {
		return nil
	}
	return m.player.OnSelectionChanged(pos)
}

// SyncCursor moves the cursor to the current row.
func (m *Model) SyncCursor() {
	if m.current < 0 || m.current >= len(m.rows) {
		return
	}
	m.moveCursorTo(m.current)
}

// Refresh renders every row again on the next View.
func (m *Model) Refresh() {
	m.render.invalidate()
}

// Close cancels any pending move commit.
func (m *Model) Close() {
	m.debounce.Cancel()
}

func (m Model) listHeight() int {
	return m.ListHeight(ui.PanelOverhead)
}

func (m *Model) moveCursorTo(pos int) {
	old := m.cursor.Pos()
	m.cursor.Jump(pos, len(m.rows), m.listHeight())
	m.render.markDirty(old, m.cursor.Pos())
}

func sameIdentities(a, b []playlist.Item) bool {
	return slices.EqualFunc(a, b, func(x, y playlist.Item) bool {
		return x.MediaID == y.MediaID
	})
}

func changed() tea.Msg {
	return PlaylistChangedMsg{}
}
