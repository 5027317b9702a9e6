// Package popup frames modal content and draws it over a base view.
package popup

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/reel/internal/ui/styles"
)

// Popup is a modal component. View renders the body only; the caller frames
// and centers it.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Frame puts content in a rounded box with an optional title and centers
// the box on a screen of the given size.
func Frame(title, content string, screenW, screenH int) string {
	body := content
	if title != "" {
		body = styles.T().S().Title.Render(title) + "\n\n" + content
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Accent).
		Padding(0, 1).
		MaxWidth(max(screenW, 0)).
		Render(body)
	return Center(box, screenW, screenH)
}

// Center pads box with blank lines and columns so it sits in the middle of
// the screen.
func Center(box string, screenW, screenH int) string {
	lines := strings.Split(box, "\n")
	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, ansi.StringWidth(l))
	}
	top := max((screenH-len(lines))/2, 0)
	left := strings.Repeat(" ", max((screenW-boxW)/2, 0))

	out := make([]string, 0, top+len(lines))
	for range top {
		out = append(out, "")
	}
	for _, l := range lines {
		out = append(out, left+l)
	}
	return strings.Join(out, "\n")
}

// Compose draws overlay on top of base. Leading and trailing blanks of each
// overlay line are transparent; everything between replaces the base cells.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(overlay, "\n") {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(line)
		if strings.TrimSpace(plain) == "" {
			continue
		}
		start := len(plain) - len(strings.TrimLeft(plain, " "))
		end := ansi.StringWidth(strings.TrimRight(plain, " "))

		b := baseLines[i]
		if w := ansi.StringWidth(b); w < width {
			b += strings.Repeat(" ", width-w)
		}
		prefix := ansi.Cut(b, 0, start)
		if w := ansi.StringWidth(prefix); w < start {
			prefix += strings.Repeat(" ", start-w)
		}
		baseLines[i] = prefix + ansi.Cut(line, start, end) + ansi.Cut(b, end, max(width, end))
	}
	return strings.Join(baseLines, "\n")
}
