// Package handlers contains the HTTP handlers of the marketplace API.
package handlers

import (
	"log/slog"
	"time"

	"github.com/vaughan-dsouza/marketplace/internal/session"
	"github.com/vaughan-dsouza/marketplace/internal/store"
)

// Deps is everything the handlers need from the outside world.
type Deps struct {
	Users       store.UserStore
	Orders      store.OrderStore
	Health      Pinger
	Revocations session.RevocationStore
	Storage     interface {
		Presigner
		BucketChecker
	}
	Tokens    TokenConfig
	Cookie    CookieConfig
	UploadTTL time.Duration
	AppURL    string
	Logger    *slog.Logger
}

type Handler struct {
	Auth        *AuthHandler
	Orders      *OrderHandler
	Payments    *PaymentHandler
	Uploads     *UploadHandler
	Diagnostics *DiagnosticsHandler
	Health      *HealthHandler
}

func NewHandler(d Deps) *Handler {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Revocations == nil {
		d.Revocations = session.NopRevocations{}
	}

	h := &Handler{
		Auth: &AuthHandler{
			Users:       d.Users,
			Revocations: d.Revocations,
			Tokens:      d.Tokens,
			Cookie:      d.Cookie,
			Logger:      d.Logger,
		},
		Orders:   &OrderHandler{Orders: d.Orders, Logger: d.Logger},
		Payments: &PaymentHandler{AppURL: d.AppURL},
		Uploads:  &UploadHandler{TTL: d.UploadTTL, Logger: d.Logger},
		Diagnostics: &DiagnosticsHandler{
			Logger: d.Logger,
		},
		Health: &HealthHandler{DB: d.Health},
	}
	if d.Storage != nil {
		h.Uploads.Storage = d.Storage
		h.Diagnostics.Storage = d.Storage
	}
	return h
}
