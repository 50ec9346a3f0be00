package maintenance

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/vaughan-dsouza/marketplace/internal/config"
	"github.com/vaughan-dsouza/marketplace/internal/db"
)

// OpenDB connects with a small pool sized for a single sequential job.
func OpenDB(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	return db.Connect(ctx, cfg.DatabaseURL, db.Options{MaxOpen: 2, MaxIdle: 1, Lifetime: cfg.DBLifetime})
}
