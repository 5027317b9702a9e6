package suggestpanel

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/reel/internal/errmsg"
	"github.com/llehouerou/reel/internal/icons"
	"github.com/llehouerou/reel/internal/ui"
	"github.com/llehouerou/reel/internal/ui/render"
	"github.com/llehouerou/reel/internal/ui/styles"
)

func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	innerWidth := m.Width() - ui.BorderHeight

	separator := render.Separator(innerWidth)
	if m.err != nil {
		separator = styles.T().S().Error.Render(
			render.Fit(errmsg.Format(errmsg.OpSuggest, m.err), innerWidth))
	}
	lines := []string{
		render.Row(m.input.View(), m.summary(), innerWidth),
		separator,
	}
	start := m.cursor.Offset()
	for i := range m.listHeight() {
		idx := start + i
		if idx >= len(m.rows) {
			lines = append(lines, render.EmptyLine(innerWidth))
			continue
		}
		lines = append(lines, m.renderRow(idx, innerWidth))
	}

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(strings.Join(lines, "\n"))
}

func (m Model) summary() string {
	s := styles.T().S()
	switch {
	case m.err != nil || m.input.Value() == "":
		return ""
	case len(m.rows) == 1:
		return s.Muted.Render("1 result")
	default:
		return s.Muted.Render(humanize.Comma(int64(len(m.rows))) + " results")
	}
}

// renderRow lays out kind, title, subtitle and year.
func (m Model) renderRow(idx, width int) string {
	row := m.rows[idx]
	s := styles.T().S()

	year := ""
	if row.Year > 0 {
		year = strconv.Itoa(row.Year)
	}
	const kindWidth, yearWidth = 8, 5
	content := max(width-kindWidth-yearWidth-1, 0)
	titleWidth := content / 2

	kind := render.Fit(icons.ForKind(row.Kind()), kindWidth)
	title := render.Fit(row.Title, titleWidth)
	subtitle := render.Fit(row.Subtitle, content-titleWidth)
	yearCol := lipgloss.PlaceHorizontal(yearWidth, lipgloss.Right, year)

	if idx == m.cursor.Pos() && m.IsFocused() {
		return s.Cursor.Render(kind + title + subtitle + " " + yearCol)
	}
	return s.Subtle.Render(kind) + s.Base.Render(title) + s.Muted.Render(subtitle) + " " + s.Muted.Render(yearCol)
}
