package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/reel/internal/keymap"
	"github.com/llehouerou/reel/internal/ui"
	"github.com/llehouerou/reel/internal/ui/popup"
	"github.com/llehouerou/reel/internal/ui/render"
	"github.com/llehouerou/reel/internal/ui/styles"
)

// layout gives the search panel a fixed height and the playlist the rest,
// keeping one line for the status bar.
func (m *Model) layout() {
	searchH := min(ui.SearchHeight, m.Height/2)
	m.Search.SetSize(m.Width, searchH)
	m.Playlist.SetSize(m.Width, max(m.Height-searchH-1, 0))
	if m.Popup != nil {
		m.Popup.SetSize(m.Width, m.Height)
	}
}

func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	status := styles.T().S().Subtle.Render(render.Truncate(keymap.HelpLine(m.keyContext()), m.Width))
	if m.ErrorMsg != "" {
		status = styles.T().S().Error.Render(render.Truncate(m.ErrorMsg, m.Width))
	}
	view := lipgloss.JoinVertical(lipgloss.Left, m.Search.View(), m.Playlist.View(), status)

	if m.Popup != nil {
		frame := popup.Frame("Item", m.Popup.View(), m.Width, m.Height)
		view = popup.Compose(view, frame, m.Width)
	}
	return view
}
