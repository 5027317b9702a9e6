// Package suggestpanel is the search box: every edit re-queries the
// suggestion provider and the rows are listed under the input.
package suggestpanel

import (
	"context"

	bcursor "github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/suggest"
	"github.com/llehouerou/reel/internal/ui"
	"github.com/llehouerou/reel/internal/ui/cursor"
)

const (
	// inputOverhead is border, input line and separator.
	inputOverhead = ui.BorderHeight + 2
	summaryWidth  = 16
)

// Querier answers suggestion queries.
type Querier interface {
	Query(ctx context.Context, uri string, args []string) (*suggest.Cursor, error)
}

// SelectedMsg is sent when the user picks a row with enter.
type SelectedMsg struct {
	Row suggest.Row
}

// resultsMsg carries the rows for query. Results for a query that no longer
// matches the input are dropped.
type resultsMsg struct {
	query  string
	cursor *suggest.Cursor
	err    error
}

type Model struct {
	ui.Base
	input   textinput.Model
	querier Querier
	rows    []suggest.Row
	cursor  cursor.Cursor
	err     error
}

func New(q Querier) Model {
	in := textinput.New()
	in.Prompt = "/ "
	in.Placeholder = "search movies, shows, music"
	in.CharLimit = 200
	in.Cursor.SetMode(bcursor.CursorStatic)
	return Model{
		input:   in,
		querier: q,
		cursor:  cursor.New(ui.ScrollMargin),
	}
}

// SetFocused focuses or blurs the text input along with the panel.
func (m *Model) SetFocused(focused bool) {
	m.Base.SetFocused(focused)
	if focused {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = max(width-ui.BorderHeight-len(m.input.Prompt)-summaryWidth, 1)
}

// Query returns the text in the input.
func (m Model) Query() string {
	return m.input.Value()
}

// Rows returns the current suggestions.
func (m Model) Rows() []suggest.Row {
	return m.rows
}

func (m Model) Err() error {
	return m.err
}

// Selected returns the row under the cursor.
func (m Model) Selected() (suggest.Row, bool) {
	pos := m.cursor.Pos()
	if pos < 0 || pos >= len(m.rows) {
		return suggest.Row{}, false
	}
	return m.rows[pos], true
}

// SetQuery replaces the input text and starts a search.
func (m *Model) SetQuery(q string) tea.Cmd {
	m.input.SetValue(q)
	m.input.CursorEnd()
	return m.search()
}

// Clear empties the input and the rows.
func (m *Model) Clear() {
	m.input.Reset()
	m.rows = nil
	m.err = nil
	m.cursor.ClampToBounds(0)
}

func (m Model) listHeight() int {
	return m.ListHeight(inputOverhead)
}

func (m Model) search() tea.Cmd {
	query := m.input.Value()
	if m.querier == nil {
		return nil
	}
	q := m.querier
	return func() tea.Msg {
		cur, err := q.Query(context.Background(), suggest.SearchURI, []string{query})
		return resultsMsg{query: query, cursor: cur, err: err}
	}
}
