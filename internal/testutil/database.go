// Package testutil provides shared helpers for tests that need a real store.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/service"
	"github.com/Veraticus/tally/internal/storage"
)

// SetupTestStore creates a migrated in-memory SQLite store and registers its
// cleanup with the test.
func SetupTestStore(t *testing.T) service.Store {
	t.Helper()

	store, err := storage.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

// SeedCategories persists the given categories or fails the test.
func SeedCategories(t *testing.T, store service.Store, categories []model.Category) {
	t.Helper()

	ctx := context.Background()
	for _, cat := range categories {
		if err := store.PutCategory(ctx, cat); err != nil {
			t.Fatalf("failed to seed category %q: %v", cat.ID, err)
		}
	}
}

// SeedTransactions persists the given transactions or fails the test.
func SeedTransactions(t *testing.T, store service.Store, transactions []model.Transaction) {
	t.Helper()

	ctx := context.Background()
	for _, txn := range transactions {
		if err := store.PutTransaction(ctx, txn); err != nil {
			t.Fatalf("failed to seed transaction %q: %v", txn.ID, err)
		}
	}
}
