package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDashboardView_ShowPager(t *testing.T) {
	tests := []struct {
		name       string
		totalPages int
		want       bool
	}{
		{name: "no records", totalPages: 0, want: false},
		{name: "single page", totalPages: 1, want: false},
		{name: "two pages", totalPages: 2, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := DashboardView{TotalPages: tt.totalPages}
			assert.Equal(t, tt.want, v.ShowPager())
		})
	}
}

func TestDashboardView_Navigation(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalPages int
		canPrev    bool
		canNext    bool
	}{
		{name: "first of two", page: 1, totalPages: 2, canPrev: false, canNext: true},
		{name: "last of two", page: 2, totalPages: 2, canPrev: true, canNext: false},
		{name: "middle", page: 2, totalPages: 3, canPrev: true, canNext: true},
		{name: "past the end", page: 3, totalPages: 1, canPrev: true, canNext: false},
		{name: "no pages", page: 1, totalPages: 0, canPrev: false, canNext: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := DashboardView{Page: tt.page, TotalPages: tt.totalPages}
			assert.Equal(t, tt.canPrev, v.CanPrev())
			assert.Equal(t, tt.canNext, v.CanNext())
		})
	}
}

func TestDashboardView_Predicates(t *testing.T) {
	v := DashboardView{}
	assert.True(t, v.IsLoading())
	assert.True(t, v.IsEmpty())
	assert.False(t, v.HasError())
	assert.False(t, v.HasInvalidFilter())

	v = DashboardView{
		Load:   LoadFailed,
		Error:  "Failed to fetch the transaction array",
		Rows:   []RowView{{ID: "T001"}},
		Filter: FilterView{EndInvalid: true},
	}
	assert.False(t, v.IsLoading())
	assert.False(t, v.IsEmpty())
	assert.True(t, v.HasError())
	assert.True(t, v.HasInvalidFilter())
}

func TestDashboardView_PageLabel(t *testing.T) {
	assert.Equal(t, "Page 1 of 2", DashboardView{Page: 1, TotalPages: 2}.PageLabel())
}
