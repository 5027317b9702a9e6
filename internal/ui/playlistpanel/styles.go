package playlistpanel

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/reel/internal/ui/styles"
)

const (
	playingSymbol = "▶" // ▶
	pausedSymbol  = "⏸" // ⏸
	audioSymbol   = "♪" // ♪
	videoSymbol   = "▣" // ▣
)

func headerStyle() lipgloss.Style {
	return styles.T().S().Title
}

func statusStyle() lipgloss.Style {
	return styles.T().S().Warning
}

func rowStyle() lipgloss.Style {
	return styles.T().S().Base
}

func subtitleStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func currentStyle() lipgloss.Style {
	return styles.T().S().Playing
}

func cursorStyle() lipgloss.Style {
	return styles.T().S().Cursor
}
