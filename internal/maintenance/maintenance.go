// Package maintenance holds the one-off administrative jobs run from cmd/.
// Every job takes store interfaces and writes a plain-text report to out.
package maintenance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"golang.org/x/crypto/bcrypt"

	"github.com/vaughan-dsouza/marketplace/internal/models"
	"github.com/vaughan-dsouza/marketplace/internal/store"
	"github.com/vaughan-dsouza/marketplace/internal/storage"
)

const (
	MinPasswordLength = 6
	// bcrypt rejects longer input
	MaxPasswordBytes = 72
)

var (
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	ErrPasswordTooLong  = fmt.Errorf("password must be at most %d bytes", MaxPasswordBytes)
)

// Categories is the fixed catalog seeded by SeedCategories.
var Categories = []models.Category{
	{Name: "Electronics", Slug: "electronics", Description: "Phones, laptops, audio and accessories"},
	{Name: "Fashion", Slug: "fashion", Description: "Clothing, shoes and jewellery"},
	{Name: "Home & Kitchen", Slug: "home-kitchen", Description: "Furniture, cookware and decor"},
	{Name: "Beauty", Slug: "beauty", Description: "Skincare, makeup and fragrance"},
	{Name: "Sports & Outdoors", Slug: "sports-outdoors", Description: "Fitness gear and camping equipment"},
	{Name: "Books", Slug: "books", Description: "Fiction, non-fiction and textbooks"},
	{Name: "Toys & Games", Slug: "toys-games", Description: "Toys, puzzles and board games"},
	{Name: "Groceries", Slug: "groceries", Description: "Pantry staples and snacks"},
}

// LegacyRoleMoves maps the retired role values onto the current ones.
var LegacyRoleMoves = []store.RoleMove{
	{From: models.RoleLegacyUser, To: models.RoleBuyer},
	{From: models.RoleLegacyAdmin, To: models.RoleSeller},
}

type SeedResult struct {
	Created int
	Skipped int
}

// SeedCategories inserts every category whose slug is not present yet.
// Running it again creates nothing.
func SeedCategories(ctx context.Context, categories store.CategoryStore, out io.Writer) (SeedResult, error) {
	var res SeedResult
	for _, c := range Categories {
		exists, err := categories.ExistsBySlug(ctx, c.Slug)
		if err != nil {
			return res, err
		}
		if exists {
			fmt.Fprintf(out, "skip    %s\n", c.Slug)
			res.Skipped++
			continue
		}

		created, err := categories.Create(ctx, &c)
		if err != nil {
			return res, err
		}
		if !created {
			// inserted concurrently by another run
			fmt.Fprintf(out, "skip    %s\n", c.Slug)
			res.Skipped++
			continue
		}
		fmt.Fprintf(out, "created %s\n", c.Slug)
		res.Created++
	}
	fmt.Fprintf(out, "%d created, %d skipped\n", res.Created, res.Skipped)
	return res, nil
}

func MigrateLegacyRoles(ctx context.Context, users store.UserStore, out io.Writer) ([]store.RoleMoveResult, error) {
	results, err := users.MigrateRoles(ctx, LegacyRoleMoves)
	if err != nil {
		return nil, err
	}
	for _, r := range results {
		fmt.Fprintf(out, "%s -> %s: %d rows\n", r.From, r.To, r.Updated)
	}
	return results, nil
}

// ResetPassword replaces the password of the user with the given email.
func ResetPassword(ctx context.Context, users store.UserStore, email, password string, out io.Writer) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errors.New("email is required")
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > MaxPasswordBytes {
		return ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := users.UpdatePassword(ctx, email, string(hash)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no user with email %s: %w", email, err)
		}
		return err
	}
	fmt.Fprintf(out, "password updated for %s\n", email)
	return nil
}

type TableCount struct {
	Table string
	Rows  int64
}

type DatabaseReport struct {
	Tables []string
	Counts []TableCount
}

// CheckDatabase pings the database, lists public tables and counts rows in
// every core table that exists.
func CheckDatabase(ctx context.Context, hs store.HealthStore, out io.Writer) (*DatabaseReport, error) {
	if err := hs.Ping(ctx); err != nil {
		return nil, err
	}
	fmt.Fprintln(out, "connection ok")

	tables, err := hs.ListTables(ctx)
	if err != nil {
		return nil, err
	}
	report := &DatabaseReport{Tables: tables}
	fmt.Fprintf(out, "%d tables: %s\n", len(tables), strings.Join(tables, ", "))

	present := make(map[string]bool, len(tables))
	for _, t := range tables {
		present[t] = true
	}
	for _, t := range store.CoreTables {
		if !present[t] {
			fmt.Fprintf(out, "  %-18s missing\n", t)
			continue
		}
		n, err := hs.CountRows(ctx, t)
		if err != nil {
			return report, err
		}
		report.Counts = append(report.Counts, TableCount{Table: t, Rows: n})
		fmt.Fprintf(out, "  %-18s %d rows\n", t, n)
	}
	return report, nil
}

// CORSApplier writes bucket CORS rules. Satisfied by *storage.Client.
type CORSApplier interface {
	ApplyCORS(ctx context.Context, rules []types.CORSRule) error
}

// PrintCORS writes the expected bucket CORS rules as JSON. When applier is
// non-nil the rules are also applied to the bucket.
func PrintCORS(ctx context.Context, origins []string, applier CORSApplier, out io.Writer) error {
	if len(origins) == 0 {
		return errors.New("no allowed origins configured")
	}
	rules := storage.ExpectedCORS(origins)

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string]any{"CORSRules": rules}); err != nil {
		return fmt.Errorf("encode cors rules: %w", err)
	}

	if applier == nil {
		return nil
	}
	if err := applier.ApplyCORS(ctx, rules); err != nil {
		return err
	}
	fmt.Fprintln(out, "cors rules applied")
	return nil
}

func VerifySeller(ctx context.Context, sellers store.SellerStore, email string, out io.Writer) (*models.SellerProfile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	p, err := sellers.VerifyByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("no seller profile for %s: %w", email, err)
	}
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "verified seller %q (%s)\n", p.StoreName, email)
	return p, nil
}

func ListSellers(ctx context.Context, sellers store.SellerStore, out io.Writer) ([]models.SellerListing, error) {
	list, err := sellers.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		fmt.Fprintln(out, "no seller profiles")
		return list, nil
	}
	for _, s := range list {
		status := "unverified"
		if s.Verified {
			status = "verified"
		}
		fmt.Fprintf(out, "%-10s %-30s %s\n", status, s.Email, s.StoreName)
	}
	return list, nil
}
