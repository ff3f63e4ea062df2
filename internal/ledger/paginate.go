package ledger

import "github.com/Veraticus/txnview/internal/model"

// DefaultPageSize is the number of rows shown per page.
const DefaultPageSize = 5

// TotalPages returns ceil(count/size). Zero records means zero pages.
func TotalPages(count, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// PageSlice returns transactions[(page-1)*size : page*size], clipped to the
// sequence. A page past the end yields an empty slice.
func PageSlice(transactions []model.Transaction, page, size int) []model.Transaction {
	if size <= 0 || page < 1 {
		return []model.Transaction{}
	}
	start := (page - 1) * size
	if start >= len(transactions) {
		return []model.Transaction{}
	}
	end := min(start+size, len(transactions))
	return transactions[start:end]
}

// Pager holds the current page register.
type Pager struct {
	page int
	size int
}

// NewPager starts at page 1. Non-positive sizes fall back to DefaultPageSize.
func NewPager(size int) Pager {
	if size <= 0 {
		size = DefaultPageSize
	}
	return Pager{page: 1, size: size}
}

// Page returns the current 1-based page.
func (p Pager) Page() int {
	return p.page
}

// Size returns the page size.
func (p Pager) Size() int {
	return p.size
}

// Prev moves back one page, never below 1.
func (p Pager) Prev() Pager {
	p.page = max(p.page-1, 1)
	return p
}

// Next moves forward one page, never beyond the last page.
func (p Pager) Next(totalPages int) Pager {
	p.page = min(p.page+1, max(totalPages, 1))
	return p
}

// Goto jumps to page without range checks. Pair with Clamp to stay in range.
func (p Pager) Goto(page int) Pager {
	p.page = page
	return p
}

// Clamp pulls the page back into [1, max(totalPages, 1)].
func (p Pager) Clamp(totalPages int) Pager {
	p.page = min(max(p.page, 1), max(totalPages, 1))
	return p
}

// CanPrev reports whether Prev would change the page.
func (p Pager) CanPrev() bool {
	return p.page > 1
}

// CanNext reports whether Next would change the page.
func (p Pager) CanNext(totalPages int) bool {
	return p.page < totalPages
}
