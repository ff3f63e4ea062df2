package tui

import (
	"strings"

	"github.com/Veraticus/txnview/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
)

const dashboardTitle = "Payment Transaction Dashboard"

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	v := m.Dashboard()
	sections := []string{
		m.theme.Title.Render(dashboardTitle),
		m.filter.View(v.Filter),
	}

	if v.HasError() {
		sections = append(sections, m.theme.StatusError.Render(v.Error))
	}

	sections = append(sections, m.summary.View(v))

	switch {
	case v.IsLoading():
		sections = append(sections, m.renderLoading())
	default:
		sections = append(sections, m.table.View())
		if v.IsEmpty() && !v.HasError() {
			sections = append(sections, m.theme.StatusWarning.Render("No transactions in this date range"))
		}
		if pager := m.pagerView.View(v); pager != "" {
			sections = append(sections, pager)
		}
	}

	sections = append(sections, m.renderFooter(v))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return m.theme.BorderedBox.
		Width(max(m.width-2, 0)).
		Render(content)
}

// renderLoading renders the pending-load line.
func (m Model) renderLoading() string {
	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		m.spinner.View(),
		" ",
		m.theme.StatusPending.Render("Loading transactions..."),
	)
}

// renderFooter renders the key help below the dashboard.
func (m Model) renderFooter(v viewmodel.DashboardView) string {
	var b strings.Builder
	b.WriteString(m.help.View(m.keymap))
	if v.HasInvalidFilter() {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Dates use YYYY-MM-DD; invalid dates match nothing"))
	}
	return b.String()
}
