package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/model"
)

// GetCategories returns every persisted category in the deterministic
// enumeration order (model.SortCategories), not creation order.
func (s *SQLiteStore) GetCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT id, name, icon, color FROM categories`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query categories: %w", common.ErrOperationFailed, err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.Category
	for rows.Next() {
		var cat model.Category
		var icon, color sql.NullString
		if err := rows.Scan(&cat.ID, &cat.Name, &icon, &color); err != nil {
			return nil, fmt.Errorf("%w: failed to scan category: %w", common.ErrOperationFailed, err)
		}
		cat.Icon = icon.String
		cat.Color = color.String
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating categories: %w", common.ErrOperationFailed, err)
	}

	slog.Debug("retrieved categories", "count", len(categories))
	return model.SortCategories(categories), nil
}

// PutCategory inserts or replaces a category keyed by id.
func (s *SQLiteStore) PutCategory(ctx context.Context, cat model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCategory(&cat); err != nil {
		return err
	}

	query := `
		INSERT OR REPLACE INTO categories (id, name, icon, color)
		VALUES (?, ?, ?, ?)`

	var icon, color any
	if cat.Icon != "" {
		icon = cat.Icon
	}
	if cat.Color != "" {
		color = cat.Color
	}

	if _, err := s.db.ExecContext(ctx, query, cat.ID, cat.Name, icon, color); err != nil {
		return fmt.Errorf("%w: failed to put category %s: %w", common.ErrOperationFailed, cat.ID, err)
	}

	return nil
}

// DeleteCategory removes a category by id. Deleting an absent id is not an
// error, and transactions referencing the id are left untouched.
func (s *SQLiteStore) DeleteCategory(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id); err != nil {
		return fmt.Errorf("%w: failed to delete category %s: %w", common.ErrOperationFailed, id, err)
	}

	return nil
}
