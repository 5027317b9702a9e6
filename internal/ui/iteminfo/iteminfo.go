// Package iteminfo is the context popup of a playlist row: it shows the
// item details and offers play and remove.
package iteminfo

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/playlist"
	"github.com/llehouerou/reel/internal/ui/popup"
	"github.com/llehouerou/reel/internal/ui/render"
	"github.com/llehouerou/reel/internal/ui/styles"
)

// Action is what the user chose in the popup.
type Action int

const (
	ActionClose Action = iota
	ActionPlay
	ActionRemove
)

// ResultMsg is sent when the popup is dismissed.
type ResultMsg struct {
	Action Action
	Pos    int
	Item   playlist.Item
}

type Model struct {
	pos    int
	item   playlist.Item
	width  int
	height int
}

var _ popup.Popup = (*Model)(nil)

func New(pos int, item playlist.Item) *Model {
	return &Model{pos: pos, item: item}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "esc", "q", "m":
		return m, m.result(ActionClose)
	case "enter", "p":
		return m, m.result(ActionPlay)
	case "d", "delete":
		return m, m.result(ActionRemove)
	}
	return m, nil
}

func (m *Model) result(a Action) tea.Cmd {
	r := ResultMsg{Action: a, Pos: m.pos, Item: m.item}
	return func() tea.Msg { return r }
}

func (m *Model) View() string {
	s := styles.T().S()
	width := max(m.width-4, 20)

	kind := "Audio"
	if m.item.IsVideo() {
		kind = "Video"
	}
	fields := [][2]string{
		{"Title", m.item.Title},
		{"Details", m.item.Subtitle},
		{"Type", kind},
		{"Length", length(m.item.Length)},
		{"Position", fmt.Sprintf("%d", m.pos+1)},
		{"Path", m.item.Path},
	}

	var b strings.Builder
	for _, f := range fields {
		if f[1] == "" {
			continue
		}
		b.WriteString(s.Muted.Render(render.Fit(f[0], 10)))
		b.WriteString(s.Base.Render(render.Truncate(f[1], width-10)))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(s.Subtle.Render("enter play · d remove · esc close"))
	return b.String()
}

func length(d time.Duration) string {
	if d <= 0 {
		return ""
	}
	return d.Round(time.Second).String()
}
