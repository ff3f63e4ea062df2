package ledger

import (
	"testing"

	"github.com/Veraticus/txnview/internal/model"
	"github.com/Veraticus/txnview/internal/source"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name      string
		input     []model.Transaction
		wantCount int
		wantTotal string
	}{
		{name: "nil", input: nil, wantCount: 0, wantTotal: "0"},
		{name: "empty", input: []model.Transaction{}, wantCount: 0, wantTotal: "0"},
		{name: "fixture", input: source.Fixture(), wantCount: 10, wantTotal: "32565"},
		{
			name: "signed and fractional",
			input: []model.Transaction{
				{ID: "a", Amount: decimal.RequireFromString("0.1")},
				{ID: "b", Amount: decimal.RequireFromString("0.2")},
				{ID: "c", Amount: decimal.RequireFromString("-1.25")},
			},
			wantCount: 3,
			wantTotal: "-0.95",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.input)
			assert.Equal(t, tt.wantCount, got.Count)
			assert.True(t, decimal.RequireFromString(tt.wantTotal).Equal(got.Total), "total %s", got.Total)
		})
	}
}

func TestAggregate_FilteredWindow(t *testing.T) {
	filtered := Filter(source.Fixture(), model.ParseBound("2025-04-12"), model.ParseBound("2025-04-14"))
	got := Aggregate(filtered)

	assert.Equal(t, 6, got.Count)
	// 1200 + 4543 + 1269 + 233 + 20000 + 390
	assert.Equal(t, "27635", got.Total.String())
}
