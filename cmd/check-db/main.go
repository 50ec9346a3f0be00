// Command check-db verifies database connectivity and reports table and row
// counts.
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

	if _, err := maintenance.CheckDatabase(ctx, store.NewHealthStore(conn), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Database check failed: %v\n", err)
		os.Exit(1)
	}
}
