package components

import (
	"github.com/Veraticus/txnview/internal/tui/themes"
	"github.com/Veraticus/txnview/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
)

// PagerModel renders the Previous / Page p of n / Next controls.
type PagerModel struct {
	theme themes.Theme
}

// NewPager creates the page controls.
func NewPager(theme themes.Theme) PagerModel {
	return PagerModel{theme: theme}
}

// View renders the controls, or nothing when there is at most one page.
func (m PagerModel) View(v viewmodel.DashboardView) string {
	if !v.ShowPager() {
		return ""
	}

	prev := m.button("[ Previous", v.CanPrev())
	next := m.button("Next ]", v.CanNext())
	label := m.theme.Normal.Padding(0, 2).Render(v.PageLabel())

	return lipgloss.JoinHorizontal(lipgloss.Center, prev, label, next)
}

func (m PagerModel) button(text string, enabled bool) string {
	if enabled {
		return m.theme.Button.Render(text)
	}
	return m.theme.ButtonOff.Render(text)
}
