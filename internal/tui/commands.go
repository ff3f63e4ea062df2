package tui

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/txnview/internal/common"
	tea "github.com/charmbracelet/bubbletea"
)

// loadTransactions runs the configured loader off the update loop.
func (m Model) loadTransactions() tea.Cmd {
	loader := m.config.Loader
	ctx := m.config.Context

	return func() tea.Msg {
		if loader == nil {
			return transactionsLoadedMsg{
				err: fmt.Errorf("%w: no loader configured", common.ErrLoadFailed),
			}
		}

		slog.Debug("loading transactions")
		transactions, err := loader.Load(ctx)
		return transactionsLoadedMsg{
			transactions: transactions,
			err:          err,
		}
	}
}
