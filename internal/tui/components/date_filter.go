package components

import (
	"github.com/Veraticus/txnview/internal/model"
	"github.com/Veraticus/txnview/internal/tui/themes"
	"github.com/Veraticus/txnview/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DateFilterModel manages the start and end date inputs.
type DateFilterModel struct {
	theme   themes.Theme
	start   textinput.Model
	end     textinput.Model
	focused viewmodel.FilterField
}

// NewDateFilter creates the filter inputs with optional initial values.
func NewDateFilter(theme themes.Theme, start, end string) DateFilterModel {
	m := DateFilterModel{
		theme: theme,
		start: newDateInput(start),
		end:   newDateInput(end),
	}
	m.start.Focus()
	return m
}

func newDateInput(value string) textinput.Model {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "YYYY-MM-DD"
	input.CharLimit = 10
	input.Width = 10
	input.SetValue(value)
	return input
}

// Update forwards messages to the focused input.
func (m DateFilterModel) Update(msg tea.Msg) (DateFilterModel, tea.Cmd) {
	var cmd tea.Cmd
	if m.focused == viewmodel.FieldStart {
		m.start, cmd = m.start.Update(msg)
	} else {
		m.end, cmd = m.end.Update(msg)
	}
	return m, cmd
}

// FocusNext moves focus to the other input.
func (m *DateFilterModel) FocusNext() tea.Cmd {
	if m.focused == viewmodel.FieldStart {
		m.focused = viewmodel.FieldEnd
		m.start.Blur()
		return m.end.Focus()
	}
	m.focused = viewmodel.FieldStart
	m.end.Blur()
	return m.start.Focus()
}

// ClearFocused empties the focused input.
func (m *DateFilterModel) ClearFocused() {
	if m.focused == viewmodel.FieldStart {
		m.start.SetValue("")
		return
	}
	m.end.SetValue("")
}

// Focused returns the input that receives keystrokes.
func (m DateFilterModel) Focused() viewmodel.FilterField {
	return m.focused
}

// Values returns the raw text of both inputs.
func (m DateFilterModel) Values() (string, string) {
	return m.start.Value(), m.end.Value()
}

// Bounds parses both inputs.
func (m DateFilterModel) Bounds() (model.Bound, model.Bound) {
	return model.ParseBound(m.start.Value()), model.ParseBound(m.end.Value())
}

// View renders both inputs side by side.
func (m DateFilterModel) View(v viewmodel.FilterView) string {
	start := m.renderField("Start Date:", m.start, v.Focused == viewmodel.FieldStart, v.StartInvalid)
	end := m.renderField("End Date:", m.end, v.Focused == viewmodel.FieldEnd, v.EndInvalid)

	return lipgloss.JoinHorizontal(lipgloss.Top, start, "    ", end)
}

func (m DateFilterModel) renderField(label string, input textinput.Model, focused, invalid bool) string {
	box := m.theme.Input
	if focused {
		box = m.theme.InputFocused
	}

	lines := []string{
		m.theme.Label.Render(label),
		box.Render(input.View()),
	}
	if invalid {
		lines = append(lines, m.theme.StatusWarning.Render("unrecognized date, nothing matches"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
