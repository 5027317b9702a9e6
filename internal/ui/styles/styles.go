// Package styles holds the reel color palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette. Styles built from it are cached on first use.
type Theme struct {
	Accent lipgloss.Color // current item, focused borders
	Video  lipgloss.Color
	Audio  lipgloss.Color

	Fg       lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color
	BgCursor lipgloss.Color
	Border   lipgloss.Color

	Warning lipgloss.Color
	Error   lipgloss.Color

	styles *Styles
}

type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Playing lipgloss.Style // current playlist item
	Cursor  lipgloss.Style
	Video   lipgloss.Style
	Audio   lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

var defaultTheme = Theme{
	Accent:   lipgloss.Color("#f08a24"),
	Video:    lipgloss.Color("#5fafd7"),
	Audio:    lipgloss.Color("#a78bfa"),
	Fg:       lipgloss.Color("#c8c8c8"),
	FgMuted:  lipgloss.Color("#8a8a8a"),
	FgSubtle: lipgloss.Color("#5c5c5c"),
	BgCursor: lipgloss.Color("#303030"),
	Border:   lipgloss.Color("#5c5c5c"),
	Warning:  lipgloss.Color("#e5c07b"),
	Error:    lipgloss.Color("#ff5f5f"),
}

func T() *Theme {
	return &defaultTheme
}

// S returns the styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		base := lipgloss.NewStyle().Foreground(t.Fg)
		t.styles = &Styles{
			Base:    base,
			Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
			Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
			Title:   base.Bold(true),
			Playing: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
			Cursor:  lipgloss.NewStyle().Background(t.BgCursor).Foreground(t.Fg),
			Video:   lipgloss.NewStyle().Foreground(t.Video),
			Audio:   lipgloss.NewStyle().Foreground(t.Audio),
			Warning: lipgloss.NewStyle().Foreground(t.Warning),
			Error:   lipgloss.NewStyle().Foreground(t.Error),
		}
	}
	return t.styles
}

// PanelStyle is the rounded panel border, accented when focused.
func PanelStyle(focused bool) lipgloss.Style {
	border := T().Border
	if focused {
		border = T().Accent
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}
