// Command verify-seller marks a seller profile verified, or lists every
// seller profile.
//
//	verify-seller -email seller@example.com
//	verify-seller -list
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
	email := flag.String("email", "", "email of the seller to verify")
	list := flag.Bool("list", false, "list all seller profiles")
	flag.Parse()

	if (*email == "") == !*list {
		fmt.Fprintln(os.Stderr, "exactly one of -email or -list is required")
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

	sellers := store.NewSellerStore(conn)
	if *list {
		_, err = maintenance.ListSellers(ctx, sellers, os.Stdout)
	} else {
		_, err = maintenance.VerifySeller(ctx, sellers, *email, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed: %v\n", err)
		os.Exit(1)
	}
}
