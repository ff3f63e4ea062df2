package ledger

import (
	"testing"

	"github.com/Veraticus/txnview/internal/model"
	"github.com/Veraticus/txnview/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeView_FixtureNoBounds(t *testing.T) {
	v := ComputeView(source.Fixture(), model.Bound{}, model.Bound{}, 1, DefaultPageSize)

	assert.Len(t, v.Rows, 5)
	assert.Equal(t, 10, v.Count)
	assert.Equal(t, 2, v.TotalPages)
	assert.Equal(t, 1, v.Page)
	assert.Equal(t, "32565", v.Total.String())
}

func TestComputeView_Window(t *testing.T) {
	v := ComputeView(source.Fixture(), model.ParseBound("2025-04-12"), model.ParseBound("2025-04-14"), 2, 5)

	require.Equal(t, 6, v.Count)
	assert.Equal(t, 2, v.TotalPages)
	assert.Equal(t, []string{"T010"}, ids(v.Rows))
}

func TestComputeView_PageBeyondFilteredRange(t *testing.T) {
	v := ComputeView(source.Fixture(), model.ParseBound("2025-04-17"), model.Bound{}, 2, 5)

	assert.Equal(t, 2, v.Count)
	assert.Equal(t, 1, v.TotalPages)
	assert.Equal(t, 2, v.Page)
	assert.Empty(t, v.Rows)
}

func TestComputeView_Empty(t *testing.T) {
	v := ComputeView(nil, model.Bound{}, model.Bound{}, 1, 0)

	assert.Equal(t, 0, v.Count)
	assert.True(t, v.Total.IsZero())
	assert.Equal(t, 0, v.TotalPages)
	assert.Equal(t, DefaultPageSize, v.PageSize)
	assert.Empty(t, v.Rows)
}
