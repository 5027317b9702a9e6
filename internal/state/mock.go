package state

import (
	"database/sql"
)

// Mock is a test double for Manager.
type Mock struct {
	session *SessionState
	saves   int
	closed  bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) SaveSession(state SessionState) error {
	items := make([]SessionItem, len(state.Items))
	copy(items, state.Items)
	state.Items = items
	m.session = &state
	m.saves++
	return nil
}

func (m *Mock) GetSession() (*SessionState, error) {
	if m.session == nil {
		return &SessionState{CurrentIndex: -1}, nil
	}
	return m.session, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Saves returns how many times SaveSession was called.
func (m *Mock) Saves() int { return m.saves }

// Closed reports whether Close was called.
func (m *Mock) Closed() bool { return m.closed }

var _ Interface = (*Mock)(nil)
