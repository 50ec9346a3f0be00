// Command s3-cors prints the CORS rules the upload bucket needs. With -apply
// it also writes them to the bucket.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/vaughan-dsouza/marketplace/internal/config"
	"github.com/vaughan-dsouza/marketplace/internal/maintenance"
	"github.com/vaughan-dsouza/marketplace/internal/storage"
)

func main() {
	apply := flag.Bool("apply", false, "write the rules to the bucket")
	flag.Parse()

	cfg := config.Load()
	ctx := context.Background()

	var applier maintenance.CORSApplier
	if *apply {
		bucket, err := storage.New(ctx, storage.Options{
			Bucket:   cfg.S3Bucket,
			Region:   cfg.AWSRegion,
			Endpoint: cfg.S3Endpoint,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to configure storage: %v\n", err)
			os.Exit(1)
		}
		applier = bucket
	}

	if err := maintenance.PrintCORS(ctx, cfg.AllowedOrigins, applier, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure CORS: %v\n", err)
		os.Exit(1)
	}
}
