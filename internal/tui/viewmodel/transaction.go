package viewmodel

import (
	"github.com/Veraticus/txnview/internal/model"
	"github.com/shopspring/decimal"
)

// RowView is one table row, already formatted for display.
type RowView struct {
	ID          string
	Date        string
	Description string
	Amount      string
}

// NewRowView formats a transaction for the table.
func NewRowView(txn model.Transaction) RowView {
	return RowView{
		ID:          txn.ID,
		Date:        txn.Date.String(),
		Description: txn.Description,
		Amount:      FormatAmount(txn.Amount),
	}
}

// NewRowViews formats a page of transactions.
func NewRowViews(transactions []model.Transaction) []RowView {
	rows := make([]RowView, 0, len(transactions))
	for _, txn := range transactions {
		rows = append(rows, NewRowView(txn))
	}
	return rows
}

// FormatAmount renders an amount as a dollar figure without rounding.
func FormatAmount(amount decimal.Decimal) string {
	return "$" + amount.String()
}
