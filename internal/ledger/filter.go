package ledger

import "github.com/Veraticus/txnview/internal/model"

// Filter returns the transactions whose date lies in [start, end], in input order.
//
// An unset bound leaves that side open. A bound that failed to parse, or a
// record whose date failed to parse, never compares true, so such records
// are excluded.
func Filter(transactions []model.Transaction, start, end model.Bound) []model.Transaction {
	filtered := make([]model.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if InRange(txn.Date, start, end) {
			filtered = append(filtered, txn)
		}
	}
	return filtered
}

// InRange reports whether d satisfies start <= d <= end.
func InRange(d model.Date, start, end model.Bound) bool {
	if !d.Valid() {
		return false
	}
	return afterStart(d, start) && beforeEnd(d, end)
}

func afterStart(d model.Date, start model.Bound) bool {
	if !start.IsSet() {
		return true
	}
	cmp, ok := d.Compare(start.Date())
	return ok && cmp >= 0
}

func beforeEnd(d model.Date, end model.Bound) bool {
	if !end.IsSet() {
		return true
	}
	cmp, ok := d.Compare(end.Date())
	return ok && cmp <= 0
}
