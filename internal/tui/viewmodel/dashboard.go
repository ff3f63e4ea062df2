// Package viewmodel holds the display-ready data the dashboard renders.
package viewmodel

import "fmt"

// LoadState represents where the source load is.
type LoadState int

const (
	// LoadPending indicates the batch has not arrived yet.
	LoadPending LoadState = iota
	// LoadDone indicates the batch arrived.
	LoadDone
	// LoadFailed indicates the load failed; the view keeps rendering with no rows.
	LoadFailed
)

// FilterField identifies one of the two date inputs.
type FilterField int

const (
	// FieldStart is the start date input.
	FieldStart FilterField = iota
	// FieldEnd is the end date input.
	FieldEnd
)

// FilterView describes the date inputs.
type FilterView struct {
	Start        string
	End          string
	Focused      FilterField
	StartInvalid bool
	EndInvalid   bool
}

// DashboardView is everything the dashboard shows for the current state.
type DashboardView struct {
	Error      string
	TotalLabel string
	Rows       []RowView
	Filter     FilterView
	Count      int
	Page       int
	TotalPages int
	Load       LoadState
}

// IsLoading returns true until the source load completes.
func (v DashboardView) IsLoading() bool {
	return v.Load == LoadPending
}

// IsEmpty returns true if the current page has no rows.
func (v DashboardView) IsEmpty() bool {
	return len(v.Rows) == 0
}

// HasError returns true if an error message should be displayed.
func (v DashboardView) HasError() bool {
	return v.Error != ""
}

// ShowPager returns true when there is more than one page.
func (v DashboardView) ShowPager() bool {
	return v.TotalPages > 1
}

// CanPrev returns true if the previous-page control is enabled.
func (v DashboardView) CanPrev() bool {
	return v.Page > 1
}

// CanNext returns true if the next-page control is enabled.
func (v DashboardView) CanNext() bool {
	return v.Page < v.TotalPages
}

// PageLabel returns the "Page p of n" caption.
func (v DashboardView) PageLabel() string {
	return fmt.Sprintf("Page %d of %d", v.Page, v.TotalPages)
}

// HasInvalidFilter returns true if either date input did not parse.
func (v DashboardView) HasInvalidFilter() bool {
	return v.Filter.StartInvalid || v.Filter.EndInvalid
}
