package models

import "time"

type Order struct {
	ID         string      `db:"id" json:"id"`
	UserID     string      `db:"user_id" json:"userId"`
	Status     string      `db:"status" json:"status"`
	TotalCents int64       `db:"total_cents" json:"totalCents"`
	CreatedAt  time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time   `db:"updated_at" json:"updatedAt"`
	Items      []OrderItem `db:"-" json:"items"`
	Payment    *Payment    `db:"-" json:"payment"`
	Shipment   *Shipment   `db:"-" json:"shipping"`
}

type OrderItem struct {
	ID             string          `db:"id" json:"id"`
	OrderID        string          `db:"order_id" json:"orderId"`
	ProductID      string          `db:"product_id" json:"productId"`
	VariantID      *string         `db:"variant_id" json:"variantId"`
	Quantity       int             `db:"quantity" json:"quantity"`
	UnitPriceCents int64           `db:"unit_price_cents" json:"unitPriceCents"`
	Product        Product         `db:"-" json:"product"`
	Variant        *ProductVariant `db:"-" json:"variant"`
}

type Payment struct {
	ID              string     `db:"id" json:"id"`
	OrderID         string     `db:"order_id" json:"orderId"`
	Provider        string     `db:"provider" json:"provider"`
	ReferenceNumber *string    `db:"reference_number" json:"referenceNumber"`
	Status          string     `db:"status" json:"status"`
	AmountCents     int64      `db:"amount_cents" json:"amountCents"`
	PaidAt          *time.Time `db:"paid_at" json:"paidAt"`
}

type Shipment struct {
	ID             string  `db:"id" json:"id"`
	OrderID        string  `db:"order_id" json:"orderId"`
	RecipientName  string  `db:"recipient_name" json:"recipientName"`
	AddressLine    string  `db:"address_line" json:"addressLine"`
	City           string  `db:"city" json:"city"`
	PostalCode     string  `db:"postal_code" json:"postalCode"`
	Country        string  `db:"country" json:"country"`
	Status         string  `db:"status" json:"status"`
	TrackingNumber *string `db:"tracking_number" json:"trackingNumber"`
}
