package models

import "time"

type Role string

const (
	RoleBuyer  Role = "BUYER"
	RoleSeller Role = "SELLER"

	// Legacy values rewritten by cmd/migrate-roles.
	RoleLegacyUser  Role = "USER"
	RoleLegacyAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the current roles.
func (r Role) Valid() bool {
	return r == RoleBuyer || r == RoleSeller
}

type User struct {
	ID            string     `db:"id" json:"id"`
	Email         string     `db:"email" json:"email"`
	Password      string     `db:"password_hash" json:"-"`
	Name          string     `db:"name" json:"name"`
	Role          Role       `db:"role" json:"role"`
	Image         *string    `db:"image" json:"image,omitempty"`
	EmailVerified *time.Time `db:"email_verified" json:"emailVerified,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updatedAt"`
}

type SellerProfile struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	StoreName string    `db:"store_name" json:"storeName"`
	Verified  bool      `db:"verified" json:"verified"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// SellerListing is a seller profile joined with the owning user's email.
type SellerListing struct {
	SellerProfile
	Email string `db:"email" json:"email"`
}
