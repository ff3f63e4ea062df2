package components

import (
	"fmt"

	"github.com/Veraticus/txnview/internal/tui/themes"
	"github.com/Veraticus/txnview/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
)

// SummaryModel renders the count and total bar above the table.
type SummaryModel struct {
	theme themes.Theme
	width int
}

// NewSummary creates a summary bar.
func NewSummary(theme themes.Theme) SummaryModel {
	return SummaryModel{theme: theme, width: 80}
}

// Resize updates the component width.
func (m *SummaryModel) Resize(width int) {
	m.width = width
}

// View renders the bar for the given dashboard state.
func (m SummaryModel) View(v viewmodel.DashboardView) string {
	left := m.theme.Normal.Render("Total Transactions: ") + m.theme.Bold.Render(fmt.Sprintf("%d", v.Count))
	right := m.theme.Normal.Render("Total Amount: ") + m.theme.Bold.Render(v.TotalLabel)

	// Bar padding is 2 on each side.
	inner := max(m.width-4, lipgloss.Width(left)+lipgloss.Width(right)+1)
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)

	return m.theme.SummaryBar.Render(left + m.theme.SummaryBar.UnsetPadding().Render(spaces(gap)) + right)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%*s", n, "")
}
