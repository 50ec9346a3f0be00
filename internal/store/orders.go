package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/vaughan-dsouza/marketplace/internal/models"
)

// OrderStore defines order read operations.
type OrderStore interface {
	// FindWithDetails loads the order with its items, their products
	// (category and seller included), variants, payment and shipment.
	FindWithDetails(ctx context.Context, id string) (*models.Order, error)
}

type orderStore struct {
	db *sqlx.DB
}

func NewOrderStore(db *sqlx.DB) OrderStore {
	return &orderStore{db: db}
}

type orderItemRow struct {
	ID             string  `db:"id"`
	OrderID        string  `db:"order_id"`
	ProductID      string  `db:"product_id"`
	VariantID      *string `db:"variant_id"`
	Quantity       int     `db:"quantity"`
	UnitPriceCents int64   `db:"unit_price_cents"`

	ProductSellerID    string  `db:"product_seller_id"`
	ProductCategoryID  string  `db:"product_category_id"`
	ProductName        string  `db:"product_name"`
	ProductSlug        string  `db:"product_slug"`
	ProductDescription string  `db:"product_description"`
	ProductPriceCents  int64   `db:"product_price_cents"`
	ProductImageURL    *string `db:"product_image_url"`

	CategoryName        string `db:"category_name"`
	CategorySlug        string `db:"category_slug"`
	CategoryDescription string `db:"category_description"`

	SellerUserID    string `db:"seller_user_id"`
	SellerStoreName string `db:"seller_store_name"`
	SellerVerified  bool   `db:"seller_verified"`

	VariantName       *string `db:"variant_name"`
	VariantSKU        *string `db:"variant_sku"`
	VariantPriceCents *int64  `db:"variant_price_cents"`
}

func (r orderItemRow) toModel() models.OrderItem {
	item := models.OrderItem{
		ID:             r.ID,
		OrderID:        r.OrderID,
		ProductID:      r.ProductID,
		VariantID:      r.VariantID,
		Quantity:       r.Quantity,
		UnitPriceCents: r.UnitPriceCents,
		Product: models.Product{
			ID:          r.ProductID,
			SellerID:    r.ProductSellerID,
			CategoryID:  r.ProductCategoryID,
			Name:        r.ProductName,
			Slug:        r.ProductSlug,
			Description: r.ProductDescription,
			PriceCents:  r.ProductPriceCents,
			ImageURL:    r.ProductImageURL,
			Category: &models.Category{
				ID:          r.ProductCategoryID,
				Name:        r.CategoryName,
				Slug:        r.CategorySlug,
				Description: r.CategoryDescription,
			},
			Seller: &models.SellerProfile{
				ID:        r.ProductSellerID,
				UserID:    r.SellerUserID,
				StoreName: r.SellerStoreName,
				Verified:  r.SellerVerified,
			},
		},
	}
	if r.VariantID != nil && r.VariantName != nil {
		v := &models.ProductVariant{
			ID:        *r.VariantID,
			ProductID: r.ProductID,
			Name:      *r.VariantName,
		}
		if r.VariantSKU != nil {
			v.SKU = *r.VariantSKU
		}
		if r.VariantPriceCents != nil {
			v.PriceCents = *r.VariantPriceCents
		}
		item.Variant = v
	}
	return item
}

func (s *orderStore) FindWithDetails(ctx context.Context, id string) (*models.Order, error) {
	var o models.Order
	err := s.db.GetContext(ctx, &o, `
		SELECT id, user_id, status, total_cents, created_at, updated_at
		FROM orders WHERE id=$1
	`, id)
	if notFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find order %s: %w", id, err)
	}

	var rows []orderItemRow
	err = s.db.SelectContext(ctx, &rows, `
		SELECT oi.id, oi.order_id, oi.product_id, oi.variant_id, oi.quantity, oi.unit_price_cents,
		       p.seller_id   AS product_seller_id,
		       p.category_id AS product_category_id,
		       p.name        AS product_name,
		       p.slug        AS product_slug,
		       p.description AS product_description,
		       p.price_cents AS product_price_cents,
		       p.image_url   AS product_image_url,
		       c.name        AS category_name,
		       c.slug        AS category_slug,
		       c.description AS category_description,
		       sp.user_id    AS seller_user_id,
		       sp.store_name AS seller_store_name,
		       sp.verified   AS seller_verified,
		       v.name        AS variant_name,
		       v.sku         AS variant_sku,
		       v.price_cents AS variant_price_cents
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		JOIN categories c ON c.id = p.category_id
		JOIN seller_profiles sp ON sp.id = p.seller_id
		LEFT JOIN product_variants v ON v.id = oi.variant_id
		WHERE oi.order_id=$1
		ORDER BY oi.position, oi.id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("find order %s items: %w", id, err)
	}
	o.Items = make([]models.OrderItem, 0, len(rows))
	for _, r := range rows {
		o.Items = append(o.Items, r.toModel())
	}

	var p models.Payment
	err = s.db.GetContext(ctx, &p, `
		SELECT id, order_id, provider, reference_number, status, amount_cents, paid_at
		FROM payments WHERE order_id=$1
	`, id)
	switch {
	case notFound(err):
	case err != nil:
		return nil, fmt.Errorf("find order %s payment: %w", id, err)
	default:
		o.Payment = &p
	}

	var sh models.Shipment
	err = s.db.GetContext(ctx, &sh, `
		SELECT id, order_id, recipient_name, address_line, city, postal_code, country, status, tracking_number
		FROM shipments WHERE order_id=$1
	`, id)
	switch {
	case notFound(err):
	case err != nil:
		return nil, fmt.Errorf("find order %s shipment: %w", id, err)
	default:
		o.Shipment = &sh
	}

	return &o, nil
}
