package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/vaughan-dsouza/marketplace/internal/models"
)

// CategoryStore defines category persistence operations.
type CategoryStore interface {
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	// Create reports false when a category with the same slug already exists.
	Create(ctx context.Context, c *models.Category) (bool, error)
}

type categoryStore struct {
	db *sqlx.DB
}

func NewCategoryStore(db *sqlx.DB) CategoryStore {
	return &categoryStore{db: db}
}

func (s *categoryStore) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM categories WHERE slug=$1)`, slug)
	if err != nil {
		return false, fmt.Errorf("category exists %s: %w", slug, err)
	}
	return exists, nil
}

func (s *categoryStore) Create(ctx context.Context, c *models.Category) (bool, error) {
	err := s.db.QueryRowxContext(ctx, `
		INSERT INTO categories (name, slug, description)
		VALUES ($1, $2, $3)
		ON CONFLICT (slug) DO NOTHING
		RETURNING id
	`, c.Name, c.Slug, c.Description).Scan(&c.ID)
	if notFound(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("create category %s: %w", c.Slug, err)
	}
	return true, nil
}
