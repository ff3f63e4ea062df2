package ledger

import (
	"testing"

	"github.com/Veraticus/txnview/internal/model"
	"github.com/Veraticus/txnview/internal/source"
	"github.com/stretchr/testify/assert"
)

func ids(transactions []model.Transaction) []string {
	out := make([]string, 0, len(transactions))
	for _, txn := range transactions {
		out = append(out, txn.ID)
	}
	return out
}

func TestFilter_Fixture(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  []string
	}{
		{
			name: "no bounds",
			want: []string{"T001", "T002", "T003", "T004", "T005", "T006", "T007", "T008", "T009", "T010"},
		},
		{
			name:  "inclusive window",
			start: "2025-04-12",
			end:   "2025-04-14",
			want:  []string{"T002", "T003", "T006", "T008", "T009", "T010"},
		},
		{
			name:  "start only",
			start: "2025-04-14",
			want:  []string{"T001", "T003", "T006", "T007"},
		},
		{
			name: "end only",
			end:  "2025-04-10",
			want: []string{"T004", "T005"},
		},
		{
			name:  "single day",
			start: "2025-04-12",
			end:   "2025-04-12",
			want:  []string{"T008", "T009", "T010"},
		},
		{
			name:  "unpadded bound matches padded record",
			start: "2025-04-4",
			end:   "2025-04-04",
			want:  []string{"T005"},
		},
		{
			name:  "inverted window",
			start: "2025-04-18",
			end:   "2025-04-01",
			want:  []string{},
		},
		{
			name:  "outside fixture",
			start: "2026-01-01",
			want:  []string{},
		},
		{
			name:  "invalid start excludes everything",
			start: "2025-04-",
			want:  []string{},
		},
		{
			name: "invalid end excludes everything",
			end:  "garbage",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(source.Fixture(), model.ParseBound(tt.start), model.ParseBound(tt.end))
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_InvalidRecordDateAlwaysExcluded(t *testing.T) {
	batch := []model.Transaction{
		model.NewTransaction("ok", "2025-04-12", "", 1),
		model.NewTransaction("bad", "April 12", "", 1),
	}

	got := Filter(batch, model.Bound{}, model.Bound{})
	assert.Equal(t, []string{"ok"}, ids(got))
}

func TestFilter_Empty(t *testing.T) {
	assert.Empty(t, Filter(nil, model.Bound{}, model.Bound{}))
	assert.NotNil(t, Filter(nil, model.Bound{}, model.Bound{}))
}

// Every kept record satisfies the interval and every dropped one violates it.
func TestFilter_ExactPredicate(t *testing.T) {
	days := []string{"2025-04-01", "2025-04-10", "2025-04-12", "2025-04-14", "2025-04-18", "2025-04-30"}
	fixture := source.Fixture()

	for _, s := range days {
		for _, e := range days {
			start, end := model.ParseBound(s), model.ParseBound(e)
			startCmp := start.Date()
			endCmp := end.Date()
			if c, _ := startCmp.Compare(endCmp); c > 0 {
				continue
			}

			kept := make(map[string]bool)
			for _, txn := range Filter(fixture, start, end) {
				kept[txn.ID] = true
			}

			for _, txn := range fixture {
				lo, _ := txn.Date.Compare(startCmp)
				hi, _ := txn.Date.Compare(endCmp)
				inside := lo >= 0 && hi <= 0
				assert.Equal(t, inside, kept[txn.ID], "record %s with [%s, %s]", txn.ID, s, e)
			}
		}
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	fixture := source.Fixture()
	got := Filter(fixture, model.ParseBound("2025-04-10"), model.Bound{})

	pos := make(map[string]int, len(fixture))
	for i, txn := range fixture {
		pos[txn.ID] = i
	}
	for i := 1; i < len(got); i++ {
		assert.Less(t, pos[got[i-1].ID], pos[got[i].ID])
	}
}

func TestInRange(t *testing.T) {
	d := model.ParseDate("2025-04-12")

	assert.True(t, InRange(d, model.Bound{}, model.Bound{}))
	assert.True(t, InRange(d, model.ParseBound("2025-04-12"), model.ParseBound("2025-04-12")))
	assert.False(t, InRange(d, model.ParseBound("2025-04-13"), model.Bound{}))
	assert.False(t, InRange(d, model.Bound{}, model.ParseBound("2025-04-11")))
	assert.False(t, InRange(model.ParseDate("bad"), model.Bound{}, model.Bound{}))
}
