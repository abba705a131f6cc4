package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/model"
)

// GetTransactions returns every persisted transaction, ungrouped. The flat
// persisted collection is the source of truth on reload; grouping and
// ordering happen in memory.
func (s *SQLiteStore) GetTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, description, amount, category_id, date, created_at, type
		FROM transactions`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query transactions: %w", common.ErrOperationFailed, err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		var txn model.Transaction
		var createdAt sql.NullString
		if err := rows.Scan(&txn.ID, &txn.Description, &txn.Amount, &txn.CategoryID, &txn.Date, &createdAt, &txn.Type); err != nil {
			return nil, fmt.Errorf("%w: failed to scan transaction: %w", common.ErrOperationFailed, err)
		}
		if createdAt.Valid {
			txn.CreatedAt = createdAt.String
		}
		transactions = append(transactions, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating transactions: %w", common.ErrOperationFailed, err)
	}

	slog.Debug("retrieved transactions", "count", len(transactions))
	return transactions, nil
}

// PutTransaction inserts or replaces a transaction keyed by id.
func (s *SQLiteStore) PutTransaction(ctx context.Context, txn model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransaction(&txn); err != nil {
		return err
	}

	query := `
		INSERT OR REPLACE INTO transactions (id, description, amount, category_id, date, created_at, type)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	var createdAt any
	if txn.CreatedAt != "" {
		createdAt = txn.CreatedAt
	}

	if _, err := s.db.ExecContext(ctx, query,
		txn.ID,
		txn.Description,
		txn.Amount,
		txn.CategoryID,
		txn.Date,
		createdAt,
		string(txn.Type),
	); err != nil {
		return fmt.Errorf("%w: failed to put transaction %s: %w", common.ErrOperationFailed, txn.ID, err)
	}

	return nil
}

// DeleteTransaction removes a transaction by id. Deleting an absent id is not
// an error.
func (s *SQLiteStore) DeleteTransaction(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("%w: failed to delete transaction %s: %w", common.ErrOperationFailed, id, err)
	}

	return nil
}
