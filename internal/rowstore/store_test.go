package rowstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both backends must satisfy the same contract.
func testStoreContract(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	rows, err := store.GetAllRows(ctx, "Cases")
	require.NoError(t, err)
	assert.Empty(t, rows, "unknown sheet reads as empty")

	require.NoError(t, store.AppendRow(ctx, "Cases", []string{"Order", "Error", "Error Notified"}))
	require.NoError(t, store.AppendRow(ctx, "Cases", []string{"P-1", "bad address", ""}))
	require.NoError(t, store.AppendRow(ctx, "Cases", []string{"P-2"}))

	rows, err = store.GetAllRows(ctx, "Cases")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Order", rows[0][0])
	assert.Equal(t, "bad address", rows[1][1])

	// 1-based addressing, header row included.
	require.NoError(t, store.UpdateCell(ctx, "Cases", 2, 3, "Notified 01-01-2024 12:00:00"))
	rows, err = store.GetAllRows(ctx, "Cases")
	require.NoError(t, err)
	assert.Equal(t, "Notified 01-01-2024 12:00:00", rows[1][2])

	// Updating a cell past a short row's current width grows the row.
	require.NoError(t, store.UpdateCell(ctx, "Cases", 3, 3, "x"))
	rows, err = store.GetAllRows(ctx, "Cases")
	require.NoError(t, err)
	assert.Equal(t, "x", rows[2][2])

	// Sheets are independent.
	other, err := store.GetAllRows(ctx, "Other")
	require.NoError(t, err)
	assert.Empty(t, other)

	assert.Error(t, store.UpdateCell(ctx, "Cases", 0, 1, "v"), "row index is 1-based")
}

func TestMemoryStore_Contract(t *testing.T) {
	testStoreContract(t, NewMemoryStore())
}

func TestMemoryStore_GetAllRowsReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.AppendRow(ctx, "S", []string{"a"}))

	rows, err := store.GetAllRows(ctx, "S")
	require.NoError(t, err)
	rows[0][0] = "mutated"

	again, err := store.GetAllRows(ctx, "S")
	require.NoError(t, err)
	assert.Equal(t, "a", again[0][0])
}
