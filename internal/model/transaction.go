// Package model defines the core data types shared across txnview.
package model

import (
	"github.com/shopspring/decimal"
)

// Transaction represents a single payment record from the loaded batch.
// Records are never mutated after loading; views derive new slices instead.
type Transaction struct {
	Date        Date            `json:"date"`
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// NewTransaction builds a transaction from raw fixture values.
func NewTransaction(id, date, description string, amount int64) Transaction {
	return Transaction{
		ID:          id,
		Date:        ParseDate(date),
		Description: description,
		Amount:      decimal.NewFromInt(amount),
	}
}

// Clone returns a copy of the batch so callers can't alias the source slice.
func Clone(transactions []Transaction) []Transaction {
	if transactions == nil {
		return nil
	}
	out := make([]Transaction, len(transactions))
	copy(out, transactions)
	return out
}
