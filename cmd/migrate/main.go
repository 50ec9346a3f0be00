// Command migrate applies the embedded database schema. It is safe to run
// repeatedly.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/vaughan-dsouza/marketplace/internal/config"
	"github.com/vaughan-dsouza/marketplace/internal/db"
	"github.com/vaughan-dsouza/marketplace/internal/maintenance"
)

func main() {
	ctx := context.Background()

	conn, err := maintenance.OpenDB(ctx, config.Load())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	if err := db.Migrate(ctx, conn); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to apply schema: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Schema is up to date")
}
