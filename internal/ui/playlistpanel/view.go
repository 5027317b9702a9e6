package playlistpanel

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/reel/internal/playlist"
	"github.com/llehouerou/reel/internal/ui"
	"github.com/llehouerou/reel/internal/ui/render"
	"github.com/llehouerou/reel/internal/ui/styles"
)

// View renders the playlist panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.Width() - ui.BorderHeight
	listHeight := m.listHeight()
	m.render.reset(innerWidth, m.IsFocused())

	header := m.renderHeader(innerWidth)
	separator := render.Separator(innerWidth)
	list := m.renderRows(innerWidth, listHeight)

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(header + "\n" + separator + "\n" + list)
}

// renderHeader renders "Playlist (current/total)" with the status message
// or the total length on the right.
func (m Model) renderHeader(innerWidth int) string {
	left := fmt.Sprintf("Playlist (%s/%s)",
		humanize.Comma(int64(m.current+1)), humanize.Comma(int64(len(m.rows))))

	var right string
	if m.status != "" {
		right = statusStyle().Render(m.status)
	} else if total := m.totalLength(); total > 0 {
		right = subtitleStyle().Render(formatLength(total))
	}
	return render.Row(headerStyle().Render(left), right, innerWidth)
}

func (m Model) totalLength() time.Duration {
	var total time.Duration
	for _, it := range m.rows {
		total += it.Length
	}
	return total
}

func (m Model) renderRows(innerWidth, listHeight int) string {
	lines := make([]string, 0, listHeight)
	for i := range listHeight {
		idx := i + m.cursor.Offset()
		if idx >= len(m.rows) {
			lines = append(lines, render.EmptyLine(innerWidth))
			continue
		}
		lines = append(lines, m.render.line(idx, func() string {
			return m.renderRow(idx, innerWidth)
		}))
	}
	return strings.Join(lines, "\n")
}

// renderRow renders one row: glyph, title, subtitle and length. The current
// row shows the play/pause indicator instead of the media glyph.
func (m Model) renderRow(idx, width int) string {
	item := m.rows[idx]
	isCurrent := idx == m.current

	glyph := coverGlyph(item)
	if isCurrent {
		glyph = pausedSymbol
		if m.session.Playing() {
			glyph = playingSymbol
		}
	}
	prefix := glyph + " "

	length := formatLength(item.Length)
	lengthWidth := len(length) + 1
	contentWidth := max(width-2-lengthWidth, 0)
	titleWidth := contentWidth * 3 / 5
	subtitleWidth := contentWidth - titleWidth

	title := render.Fit(item.Title, titleWidth)
	subtitle := render.Fit(item.Subtitle, subtitleWidth)

	if idx == m.cursor.Pos() && m.IsFocused() {
		style := cursorStyle()
		if isCurrent {
			style = style.Inherit(currentStyle())
		}
		return style.Render(prefix + title + subtitle + " " + length)
	}

	titleStyle := rowStyle()
	if isCurrent {
		titleStyle = currentStyle()
	}
	return titleStyle.Render(prefix+title) + subtitleStyle().Render(subtitle) + " " + length
}

func coverGlyph(item playlist.Item) string {
	if item.IsVideo() {
		return videoSymbol
	}
	return audioSymbol
}

// formatLength formats a duration as m:ss or h:mm:ss.
func formatLength(d time.Duration) string {
	if d <= 0 {
		return "--:--"
	}
	total := int(d.Round(time.Second).Seconds())
	h, mnt, s := total/3600, (total%3600)/60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, mnt, s)
	}
	return fmt.Sprintf("%d:%02d", mnt, s)
}
