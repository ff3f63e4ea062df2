package ledger

import (
	"github.com/Veraticus/txnview/internal/model"
	"github.com/shopspring/decimal"
)

// View is the fully derived state for one set of inputs.
type View struct {
	Total      decimal.Decimal     `json:"total"`
	Filtered   []model.Transaction `json:"-"`
	Rows       []model.Transaction `json:"rows"`
	Count      int                 `json:"count"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
}

// ComputeView runs filter, aggregate and paginate for the given inputs.
// The page is used as given; callers decide whether to clamp it first.
func ComputeView(transactions []model.Transaction, start, end model.Bound, page, size int) View {
	if size <= 0 {
		size = DefaultPageSize
	}
	filtered := Filter(transactions, start, end)
	return Derive(filtered, page, size)
}

// Derive builds a View from an already filtered sequence.
func Derive(filtered []model.Transaction, page, size int) View {
	summary := Aggregate(filtered)
	return View{
		Filtered:   filtered,
		Rows:       PageSlice(filtered, page, size),
		Count:      summary.Count,
		Total:      summary.Total,
		Page:       page,
		PageSize:   size,
		TotalPages: TotalPages(summary.Count, size),
	}
}
