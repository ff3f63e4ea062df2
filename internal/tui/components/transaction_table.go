package components

import (
	"github.com/Veraticus/txnview/internal/tui/themes"
	"github.com/Veraticus/txnview/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/table"
)

// TransactionTableModel renders the current page of transactions.
type TransactionTableModel struct {
	table table.Model
	width int
}

// NewTransactionTable creates an empty table sized for pageSize rows.
func NewTransactionTable(theme themes.Theme, pageSize int) TransactionTableModel {
	t := table.New(
		table.WithColumns(columnsFor(80)),
		table.WithFocused(false),
		// One extra line for the header row.
		table.WithHeight(pageSize+1),
	)

	s := table.DefaultStyles()
	s.Header = theme.TableHeader
	s.Cell = theme.TableCell
	s.Selected = theme.Normal
	t.SetStyles(s)

	return TransactionTableModel{table: t, width: 80}
}

// SetRows replaces the displayed rows.
func (m *TransactionTableModel) SetRows(rows []viewmodel.RowView) {
	tableRows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, table.Row{r.ID, r.Date, r.Description, r.Amount})
	}
	m.table.SetRows(tableRows)
	m.table.GotoTop()
}

// Rows returns the rows currently loaded into the table.
func (m TransactionTableModel) Rows() []table.Row {
	return m.table.Rows()
}

// Resize updates the column widths for the available width.
func (m *TransactionTableModel) Resize(width int) {
	m.width = width
	m.table.SetColumns(columnsFor(width))
	m.table.SetWidth(width)
}

// View renders the table.
func (m TransactionTableModel) View() string {
	return m.table.View()
}

func columnsFor(width int) []table.Column {
	// Each column carries 2 cells of padding.
	available := max(width-8, 48)

	return []table.Column{
		{Title: "ID", Width: max(6, int(float64(available)*0.15))},
		{Title: "Date", Width: max(10, int(float64(available)*0.2))},
		{Title: "Description", Width: max(16, int(float64(available)*0.4))},
		{Title: "Amount (USD)", Width: max(12, int(float64(available)*0.25))},
	}
}
