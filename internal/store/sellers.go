package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/vaughan-dsouza/marketplace/internal/models"
)

// SellerStore defines seller profile persistence operations.
type SellerStore interface {
	VerifyByEmail(ctx context.Context, email string) (*models.SellerProfile, error)
	List(ctx context.Context) ([]models.SellerListing, error)
}

type sellerStore struct {
	db *sqlx.DB
}

func NewSellerStore(db *sqlx.DB) SellerStore {
	return &sellerStore{db: db}
}

// VerifyByEmail marks the seller profile owned by email as verified.
func (s *sellerStore) VerifyByEmail(ctx context.Context, email string) (*models.SellerProfile, error) {
	var p models.SellerProfile
	err := s.db.GetContext(ctx, &p, `
		UPDATE seller_profiles sp SET verified=TRUE, updated_at=NOW()
		FROM users u
		WHERE u.id = sp.user_id AND u.email=$1
		RETURNING sp.id, sp.user_id, sp.store_name, sp.verified, sp.created_at, sp.updated_at
	`, email)
	if notFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("verify seller %s: %w", email, err)
	}
	return &p, nil
}

func (s *sellerStore) List(ctx context.Context) ([]models.SellerListing, error) {
	var out []models.SellerListing
	err := s.db.SelectContext(ctx, &out, `
		SELECT sp.id, sp.user_id, sp.store_name, sp.verified, sp.created_at, sp.updated_at, u.email
		FROM seller_profiles sp
		JOIN users u ON u.id = sp.user_id
		ORDER BY sp.created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}
	return out, nil
}
