package suggestpanel

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultsMsg:
		if msg.query != m.input.Value() {
			return m, nil
		}
		m.err = msg.err
		m.rows = nil
		if msg.cursor != nil {
			m.rows = msg.cursor.Rows
		}
		m.cursor.ClampToBounds(len(m.rows))
		m.cursor.EnsureVisible(len(m.rows), m.listHeight())
		return m, nil
	case tea.KeyMsg:
		if !m.IsFocused() {
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Clear()
		return m, nil
	case "enter":
		row, ok := m.Selected()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return SelectedMsg{Row: row} }
	case "down", "ctrl+n":
		m.cursor.Move(1, len(m.rows), m.listHeight())
		return m, nil
	case "up", "ctrl+p":
		m.cursor.Move(-1, len(m.rows), m.listHeight())
		return m, nil
	case "pgdown", "pgup", "home", "end":
		m.cursor.HandleKey(msg.String(), len(m.rows), m.listHeight())
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}
	m.cursor.ClampToBounds(0)
	return m, tea.Batch(cmd, m.search())
}
