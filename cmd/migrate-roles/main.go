// Command migrate-roles rewrites legacy role values: USER becomes BUYER and
// ADMIN becomes SELLER.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/vaughan-dsouza/marketplace/internal/config"
	"github.com/vaughan-dsouza/marketplace/internal/maintenance"
	"github.com/vaughan-dsouza/marketplace/internal/store"
)

func main() {
	ctx := context.Background()

	conn, err := maintenance.OpenDB(ctx, config.Load())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	if _, err := maintenance.MigrateLegacyRoles(ctx, store.NewUserStore(conn), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to migrate roles: %v\n", err)
		os.Exit(1)
	}
}
