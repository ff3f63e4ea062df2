package tui

import "github.com/Veraticus/txnview/internal/model"

// transactionsLoadedMsg carries the result of the source load.
type transactionsLoadedMsg struct {
	err          error
	transactions []model.Transaction
}
