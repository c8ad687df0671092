package data

import (
	"context"
	"database/sql"
	"fmt"

	"driving-theory-web/internal/i18n"
)

// CategoryRepository handles read queries for categories.
type CategoryRepository struct {
	store *Store
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(store *Store) *CategoryRepository {
	return &CategoryRepository{store: store}
}

// GetAll retrieves every category for a locale in ascending-ID order.
func (r *CategoryRepository) GetAll(ctx context.Context, locale i18n.Locale) ([]Category, error) {
	db, err := r.store.DB(locale)
	if err != nil {
		return nil, err
	}
	var categories []Category
	query := `SELECT id, name FROM Categories ORDER BY id`
	if err := db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to get categories for %s: %w", locale, err)
	}
	return categories, nil
}

// GetByID finds a category by its ID. A missing row is (nil, nil), not an error.
func (r *CategoryRepository) GetByID(ctx context.Context, locale i18n.Locale, id int64) (*Category, error) {
	db, err := r.store.DB(locale)
	if err != nil {
		return nil, err
	}
	var category Category
	query := `SELECT id, name FROM Categories WHERE id = ?`
	if err := db.GetContext(ctx, &category, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category %d for %s: %w", id, locale, err)
	}
	return &category, nil
}
