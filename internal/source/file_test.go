package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/txnview/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validFixture = `
transactions:
  - id: A1
    date: 2025-04-4
    description: Coffee
    amount: -4.50
  - id: A2
    date: "2025-04-12"
    description: Salary
    amount: 2500
`

func TestParseFixture(t *testing.T) {
	got, err := ParseFixture([]byte(validFixture))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "A1", got[0].ID)
	assert.Equal(t, "2025-04-4", got[0].Date.String())
	assert.Equal(t, "-4.5", got[0].Amount.String())
	assert.Equal(t, "Salary", got[1].Description)
	assert.Equal(t, "2500", got[1].Amount.String())
}

func TestParseFixture_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "not yaml",
			input:   "transactions: [",
			wantErr: common.ErrInvalidRecord,
		},
		{
			name:    "missing list",
			input:   "other: true",
			wantErr: common.ErrInvalidRecord,
		},
		{
			name: "missing id",
			input: `
transactions:
  - date: 2025-04-12
    amount: 1
`,
			wantErr: common.ErrInvalidRecord,
		},
		{
			name: "non numeric amount",
			input: `
transactions:
  - id: A
    date: 2025-04-12
    amount: lots
`,
			wantErr: common.ErrInvalidRecord,
		},
		{
			name: "bad date",
			input: `
transactions:
  - id: A
    date: someday
    amount: 1
`,
			wantErr: common.ErrInvalidDate,
		},
		{
			name: "duplicate id",
			input: `
transactions:
  - id: A
    date: 2025-04-12
    amount: 1
  - id: A
    date: 2025-04-13
    amount: 2
`,
			wantErr: common.ErrDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFixture([]byte(tt.input))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFileLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validFixture), 0o600))

	got, err := NewFileLoader(path, 0).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestFileLoader_Missing(t *testing.T) {
	_, err := NewFileLoader(filepath.Join(t.TempDir(), "nope.yaml"), 0).Load(context.Background())
	assert.ErrorIs(t, err, common.ErrLoadFailed)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileLoader_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte("transactions:\n  - id: A\n"), 0o600))

	_, err := NewFileLoader(path, 0).Load(context.Background())
	assert.ErrorIs(t, err, common.ErrLoadFailed)
	assert.ErrorIs(t, err, common.ErrInvalidRecord)
}
