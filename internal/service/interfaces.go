// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/tally/internal/model"
)

// Store defines the contract for the persistence layer: get-all, insert-or-
// replace, and delete-by-id over the two ledger collections. Implementations
// surface failures to the caller; they never swallow them.
type Store interface {
	// Transaction collection
	GetTransactions(ctx context.Context) ([]model.Transaction, error)
	PutTransaction(ctx context.Context, txn model.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error

	// Category collection
	GetCategories(ctx context.Context) ([]model.Category, error)
	PutCategory(ctx context.Context, cat model.Category) error
	DeleteCategory(ctx context.Context, id string) error

	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for fire-and-forget persistence.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
