package models

type Category struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Slug        string `db:"slug" json:"slug"`
	Description string `db:"description" json:"description"`
}

type Product struct {
	ID          string         `db:"id" json:"id"`
	SellerID    string         `db:"seller_id" json:"sellerId"`
	CategoryID  string         `db:"category_id" json:"categoryId"`
	Name        string         `db:"name" json:"name"`
	Slug        string         `db:"slug" json:"slug"`
	Description string         `db:"description" json:"description"`
	PriceCents  int64          `db:"price_cents" json:"priceCents"`
	ImageURL    *string        `db:"image_url" json:"imageUrl,omitempty"`
	Category    *Category      `db:"-" json:"category,omitempty"`
	Seller      *SellerProfile `db:"-" json:"seller,omitempty"`
}

type ProductVariant struct {
	ID         string `db:"id" json:"id"`
	ProductID  string `db:"product_id" json:"productId"`
	Name       string `db:"name" json:"name"`
	SKU        string `db:"sku" json:"sku"`
	PriceCents int64  `db:"price_cents" json:"priceCents"`
}
