package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/model"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))

	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestNewSQLiteStore_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStore("")
	assert.ErrorIs(t, err, ErrEmptyString)
}

func TestMigrate_Idempotent(t *testing.T) {
	store := setupStore(t)
	require.NoError(t, store.Migrate(context.Background()))
}

func TestTransactions_RoundTrip(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	txn := model.Transaction{
		ID:          "1710504000000",
		Description: "Lunch",
		Amount:      12.5,
		CategoryID:  model.FoodID,
		Date:        "2024-03-15",
		CreatedAt:   "2024-03-15T12:00:00",
		Type:        model.TypeExpense,
	}
	require.NoError(t, store.PutTransaction(ctx, txn))

	got, err := store.GetTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, txn, got[0])
}

func TestTransactions_NullCreatedAt(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	txn := model.Transaction{
		ID:          "t1",
		Description: "No timestamp",
		Amount:      5,
		CategoryID:  model.OtherID,
		Date:        "2024-03-15",
		Type:        model.TypeIncome,
	}
	require.NoError(t, store.PutTransaction(ctx, txn))

	got, err := store.GetTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].CreatedAt)
}

func TestPutTransaction_ReplacesByID(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	txn := model.Transaction{
		ID:          "t1",
		Description: "Original",
		Amount:      5,
		CategoryID:  model.OtherID,
		Date:        "2024-03-15",
		Type:        model.TypeExpense,
	}
	require.NoError(t, store.PutTransaction(ctx, txn))

	txn.Description = "Replaced"
	require.NoError(t, store.PutTransaction(ctx, txn))

	got, err := store.GetTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Replaced", got[0].Description)
}

func TestPutTransaction_Invalid(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		txn  model.Transaction
	}{
		{"missing id", model.Transaction{Description: "x", Amount: 1, CategoryID: "other", Date: "2024-01-01", Type: model.TypeExpense}},
		{"zero amount", model.Transaction{ID: "a", Description: "x", Amount: 0, CategoryID: "other", Date: "2024-01-01", Type: model.TypeExpense}},
		{"unknown type", model.Transaction{ID: "a", Description: "x", Amount: 1, CategoryID: "other", Date: "2024-01-01", Type: "transfer"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, store.PutTransaction(ctx, tt.txn), ErrInvalidTransaction)
		})
	}
}

func TestDeleteTransaction_AbsentIDIsNoOp(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.DeleteTransaction(ctx, "never-existed"))
	require.NoError(t, store.DeleteTransaction(ctx, "never-existed"))
}

func TestDeleteTransaction(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	txn := model.Transaction{
		ID:          "t1",
		Description: "Lunch",
		Amount:      1,
		CategoryID:  model.FoodID,
		Date:        "2024-03-15",
		Type:        model.TypeExpense,
	}
	require.NoError(t, store.PutTransaction(ctx, txn))
	require.NoError(t, store.DeleteTransaction(ctx, "t1"))

	got, err := store.GetTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCategories_RoundTripAndOrdering(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	// Inserted out of order on purpose; enumeration is deterministic, not
	// creation order.
	for _, cat := range []model.Category{
		{ID: "custom-b", Name: "B"},
		{ID: "custom-2", Name: "Two"},
		{ID: "custom-a", Name: "A", Icon: "📚"},
		{ID: "custom-10", Name: "Ten", Color: "#FF0000"},
	} {
		require.NoError(t, store.PutCategory(ctx, cat))
	}

	got, err := store.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, got, 4)

	ids := []string{got[0].ID, got[1].ID, got[2].ID, got[3].ID}
	assert.Equal(t, []string{"custom-a", "custom-b", "custom-2", "custom-10"}, ids)

	assert.Equal(t, "📚", got[0].Icon)
	assert.Equal(t, "#FF0000", got[3].Color)
}

func TestPutCategory_Invalid(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, store.PutCategory(ctx, model.Category{Name: "no id"}), ErrInvalidCategory)
	assert.ErrorIs(t, store.PutCategory(ctx, model.Category{ID: "custom-x"}), ErrInvalidCategory)
}

func TestDeleteCategory_DoesNotTouchTransactions(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.PutCategory(ctx, model.Category{ID: "custom-x", Name: "X"}))
	require.NoError(t, store.PutTransaction(ctx, model.Transaction{
		ID:          "t1",
		Description: "Uses custom-x",
		Amount:      1,
		CategoryID:  "custom-x",
		Date:        "2024-03-15",
		Type:        model.TypeExpense,
	}))

	require.NoError(t, store.DeleteCategory(ctx, "custom-x"))

	cats, err := store.GetCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, cats)

	// The referencing transaction keeps its stored category id.
	txns, err := store.GetTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "custom-x", txns[0].CategoryID)
}

func TestOperationErrors_WrapTaxonomy(t *testing.T) {
	store := setupStore(t)
	require.NoError(t, store.Close())

	// Operations on a closed store surface as OperationFailed, never
	// swallowed.
	_, err := store.GetTransactions(context.Background())
	assert.ErrorIs(t, err, common.ErrOperationFailed)
}
