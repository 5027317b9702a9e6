package playlistpanel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/keymap"
	"github.com/llehouerou/reel/internal/playlist"
	"github.com/llehouerou/reel/internal/reorder"
)

// Update handles messages for the playlist panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reorder.CommitMsg:
		move, ok := m.debounce.Fire(msg.Token)
		if !ok {
			return m, nil
		}
		return m, m.commit(move)
	case tea.KeyMsg:
		if !m.IsFocused() {
			return m, nil
		}
		m.status = ""
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()
	old := m.cursor.Pos()
	if m.cursor.HandleKey(key, len(m.rows), m.listHeight()) {
		m.render.markDirty(old, m.cursor.Pos())
		return m, nil
	}

	switch keymap.Resolve(keymap.ContextPlaylist, key) {
	case keymap.ActionMoveDown:
		return m, m.step(1)
	case keymap.ActionMoveUp:
		return m, m.step(-1)
	case keymap.ActionRemove:
		return m, m.dismiss()
	case keymap.ActionUndo:
		return m, m.undo()
	case keymap.ActionFindCurrent:
		m.SyncCursor()
	case keymap.ActionActivate:
		pos, item, ok := m.cursorItem()
		if !ok || m.player == nil {
			return m, nil
		}
		cmd := m.flush()
		return m, tea.Batch(cmd, m.player.OnItemActivated(pos, item))
	case keymap.ActionContextMenu:
		pos, item, ok := m.cursorItem()
		if !ok || m.player == nil {
			return m, nil
		}
		return m, m.player.OnContextMenuRequested(pos, item)
	case keymap.ActionPlayPause:
		if m.current < 0 {
			return m, nil
		}
		m.session.TogglePlaying()
		m.render.markDirty(m.current)
		return m, changed
	}
	return m, nil
}

func (m Model) cursorItem() (int, playlist.Item, bool) {
	pos := m.cursor.Pos()
	if pos < 0 || pos >= len(m.rows) {
		return 0, playlist.Item{}, false
	}
	return pos, m.rows[pos], true
}

// step swaps the cursor row with its neighbour in the cache and schedules
// the commit of the whole gesture.
func (m *Model) step(delta int) tea.Cmd {
	from := m.cursor.Pos()
	to := from + delta
	if from < 0 || from >= len(m.rows) || to < 0 || to >= len(m.rows) {
		return nil
	}

	// A step on another row starts a new gesture.
	var flushed tea.Cmd
	if _, last := m.debounce.State(); m.debounce.Pending() && last != from {
		flushed = m.flush()
	}

	m.rows[from], m.rows[to] = m.rows[to], m.rows[from]
	switch m.current {
	case from:
		m.current = to
	case to:
		m.current = from
	}
	m.render.markDirty(from, to)
	m.cursor.Jump(to, len(m.rows), m.listHeight())

	token := m.debounce.Step(from, to)
	return tea.Batch(flushed, m.debounce.Cmd(token))
}

// commit applies a settled gesture to the session.
func (m *Model) commit(move reorder.Move) tea.Cmd {
	m.session.Move(move.From, move.To)
	m.Sync()
	return changed
}

// flush commits a pending gesture before another mutation.
func (m *Model) flush() tea.Cmd {
	move, ok := m.debounce.Flush()
	if !ok {
		return nil
	}
	return m.commit(move)
}

func (m *Model) dismiss() tea.Cmd {
	flushed := m.flush()
	pos, item, ok := m.cursorItem()
	if !ok {
		return flushed
	}
	if !m.session.RemoveAt(pos) {
		return flushed
	}
	m.removals.Push(playlist.Removal{Pos: pos, Item: item})
	m.status = "Removed " + item.Title + " (u to undo)"
	m.Sync()
	return changed
}

func (m *Model) undo() tea.Cmd {
	flushed := m.flush()
	pos, ok := m.removals.Undo(m.session)
	if !ok {
		return flushed
	}
	m.Sync()
	m.moveCursorTo(pos)
	if item := m.session.Item(pos); item != nil {
		m.status = "Restored " + item.Title
	}
	return changed
}
