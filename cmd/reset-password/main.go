// Command reset-password sets a new password for one user.
//
//	reset-password -email ada@example.com -password newsecret
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/vaughan-dsouza/marketplace/internal/config"
	"github.com/vaughan-dsouza/marketplace/internal/maintenance"
	"github.com/vaughan-dsouza/marketplace/internal/store"
)

func main() {
	email := flag.String("email", "", "email of the user")
	password := flag.String("password", "", fmt.Sprintf("new password (min %d characters)", maintenance.MinPasswordLength))
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(1)
	}

	ctx := context.Background()

	conn, err := maintenance.OpenDB(ctx, config.Load())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	if err := maintenance.ResetPassword(ctx, store.NewUserStore(conn), *email, *password, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to reset password: %v\n", err)
		os.Exit(1)
	}
}
