package iteminfo

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/library"
	"github.com/llehouerou/reel/internal/playlist"
	"github.com/llehouerou/reel/internal/ui/testutil"
)

func newHarness() *testutil.PopupHarness {
	item := playlist.Item{
		MediaID:  7,
		Type:     library.Video,
		Title:    "Heat",
		Subtitle: "1995 · Crime",
		Path:     "/srv/movies/Heat (1995).mkv",
		Length:   2*time.Hour + 50*time.Minute,
	}
	h := testutil.NewPopupHarness(New(3, item))
	h.SetSize(60, 20)
	return h
}

func TestView(t *testing.T) {
	h := newHarness()
	out := h.View()

	for _, want := range []string{"Heat", "1995 · Crime", "Video", "2h50m0s", "/srv/movies/Heat (1995).mkv", "4"} {
		if !testutil.ContainsLine(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}

func TestKeys(t *testing.T) {
	tests := []struct {
		name string
		send func(h *testutil.PopupHarness) tea.Cmd
		want Action
	}{
		{"esc closes", func(h *testutil.PopupHarness) tea.Cmd { return h.SendSpecialKey(tea.KeyEsc) }, ActionClose},
		{"q closes", func(h *testutil.PopupHarness) tea.Cmd { return h.SendKey("q") }, ActionClose},
		{"enter plays", func(h *testutil.PopupHarness) tea.Cmd { return h.SendSpecialKey(tea.KeyEnter) }, ActionPlay},
		{"p plays", func(h *testutil.PopupHarness) tea.Cmd { return h.SendKey("p") }, ActionPlay},
		{"d removes", func(h *testutil.PopupHarness) tea.Cmd { return h.SendKey("d") }, ActionRemove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := testutil.ExecuteCmd(tt.send(newHarness()))
			res, ok := msg.(ResultMsg)
			if !ok {
				t.Fatalf("got %T, want ResultMsg", msg)
			}
			if res.Action != tt.want || res.Pos != 3 || res.Item.MediaID != 7 {
				t.Errorf("result = %+v", res)
			}
		})
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	h := newHarness()
	if cmd := h.SendKey("x"); cmd != nil {
		t.Error("unbound key should not produce a command")
	}
	if cmd := h.SendMsg(tea.WindowSizeMsg{Width: 10, Height: 10}); cmd != nil {
		t.Error("non-key messages should be ignored")
	}
}
