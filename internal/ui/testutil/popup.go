package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/ui/popup"
)

// PopupHarness drives a popup.Popup in tests and records the commands it
// returns.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	if cmd := p.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

func (h *PopupHarness) Popup() popup.Popup {
	return h.popup
}

func (h *PopupHarness) SetSize(width, height int) {
	h.popup.SetSize(width, height)
}

// View returns the popup body with escape sequences removed.
func (h *PopupHarness) View() string {
	return StripANSI(h.popup.View())
}

func (h *PopupHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey sends typed runes, e.g. "p".
func (h *PopupHarness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

func (h *PopupHarness) SendSpecialKey(t tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: t})
}

func (h *PopupHarness) Commands() []tea.Cmd {
	return h.cmds
}

// ExecuteCmd runs cmd and returns its message, or nil for a nil cmd.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
