package ledger

import (
	"github.com/Veraticus/txnview/internal/model"
	"github.com/shopspring/decimal"
)

// Summary is the aggregate shown above the table.
type Summary struct {
	Total decimal.Decimal
	Count int
}

// Aggregate counts the transactions and sums their amounts exactly.
func Aggregate(transactions []model.Transaction) Summary {
	total := decimal.Zero
	for _, txn := range transactions {
		total = total.Add(txn.Amount)
	}
	return Summary{
		Count: len(transactions),
		Total: total,
	}
}
