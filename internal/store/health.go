package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CoreTables are the tables reported by the connectivity check.
var CoreTables = []string{
	"users",
	"seller_profiles",
	"categories",
	"products",
	"product_variants",
	"orders",
	"order_items",
	"payments",
	"shipments",
}

// HealthStore exposes connectivity diagnostics.
type HealthStore interface {
	Ping(ctx context.Context) error
	ListTables(ctx context.Context) ([]string, error)
	CountRows(ctx context.Context, table string) (int64, error)
}

type healthStore struct {
	db *sqlx.DB
}

func NewHealthStore(db *sqlx.DB) HealthStore {
	return &healthStore{db: db}
}

func (s *healthStore) Ping(ctx context.Context) error {
	var tmp int
	if err := s.db.QueryRowContext(ctx, "SELECT 1").Scan(&tmp); err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	return nil
}

func (s *healthStore) ListTables(ctx context.Context) ([]string, error) {
	var tables []string
	err := s.db.SelectContext(ctx, &tables, `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = 'public' AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return tables, nil
}

// CountRows only accepts names from CoreTables, since the name is
// interpolated into the query.
func (s *healthStore) CountRows(ctx context.Context, table string) (int64, error) {
	if !isCoreTable(table) {
		return 0, fmt.Errorf("count rows: unknown table %q", table)
	}
	var n int64
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM `+table); err != nil {
		return 0, fmt.Errorf("count rows %s: %w", table, err)
	}
	return n, nil
}

func isCoreTable(name string) bool {
	for _, t := range CoreTables {
		if t == name {
			return true
		}
	}
	return false
}
