package maintenance

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vaughan-dsouza/marketplace/internal/config"
	"github.com/vaughan-dsouza/marketplace/internal/models"
	"github.com/vaughan-dsouza/marketplace/internal/store"
)

// =============================================================================
// Fakes
// =============================================================================

type fakeCategories struct {
	bySlug      map[string]models.Category
	createCalls int
}

func newFakeCategories() *fakeCategories {
	return &fakeCategories{bySlug: map[string]models.Category{}}
}

func (f *fakeCategories) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	_, ok := f.bySlug[slug]
	return ok, nil
}

func (f *fakeCategories) Create(ctx context.Context, c *models.Category) (bool, error) {
	f.createCalls++
	if _, ok := f.bySlug[c.Slug]; ok {
		return false, nil
	}
	c.ID = "cat_" + c.Slug
	f.bySlug[c.Slug] = *c
	return true, nil
}

type fakeUsers struct {
	store.UserStore
	hashes     map[string]string
	moves      []store.RoleMove
	migrateErr error
}

func (f *fakeUsers) UpdatePassword(ctx context.Context, email, hash string) error {
	if _, ok := f.hashes[email]; !ok {
		return store.ErrNotFound
	}
	f.hashes[email] = hash
	return nil
}

func (f *fakeUsers) MigrateRoles(ctx context.Context, moves []store.RoleMove) ([]store.RoleMoveResult, error) {
	if f.migrateErr != nil {
		return nil, f.migrateErr
	}
	f.moves = moves
	out := make([]store.RoleMoveResult, len(moves))
	for i, m := range moves {
		out[i] = store.RoleMoveResult{RoleMove: m, Updated: int64(i + 3)}
	}
	return out, nil
}

type fakeHealth struct {
	pingErr error
	tables  []string
	counts  map[string]int64
}

func (f *fakeHealth) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeHealth) ListTables(ctx context.Context) ([]string, error) { return f.tables, nil }

func (f *fakeHealth) CountRows(ctx context.Context, table string) (int64, error) {
	return f.counts[table], nil
}

type fakeSellers struct {
	profiles map[string]*models.SellerProfile
	list     []models.SellerListing
}

func (f *fakeSellers) VerifyByEmail(ctx context.Context, email string) (*models.SellerProfile, error) {
	p, ok := f.profiles[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	p.Verified = true
	return p, nil
}

func (f *fakeSellers) List(ctx context.Context) ([]models.SellerListing, error) {
	return f.list, nil
}

type fakeApplier struct {
	rules []types.CORSRule
	err   error
}

func (f *fakeApplier) ApplyCORS(ctx context.Context, rules []types.CORSRule) error {
	f.rules = rules
	return f.err
}

// =============================================================================
// Tests
// =============================================================================

func TestSeedCategoriesIsIdempotent(t *testing.T) {
	ctx := context.Background()
	cats := newFakeCategories()

	var out bytes.Buffer
	first, err := SeedCategories(ctx, cats, &out)
	require.NoError(t, err)
	assert.Equal(t, len(Categories), first.Created)
	assert.Zero(t, first.Skipped)

	second, err := SeedCategories(ctx, cats, &out)
	require.NoError(t, err)
	assert.Zero(t, second.Created)
	assert.Equal(t, len(Categories), second.Skipped)

	assert.Len(t, cats.bySlug, len(Categories))
	assert.Equal(t, len(Categories), cats.createCalls, "existing slugs must not reach Create")
}

func TestSeedCategoriesSkipsExisting(t *testing.T) {
	cats := newFakeCategories()
	cats.bySlug["books"] = models.Category{ID: "cat_old", Slug: "books", Name: "Old Books"}

	var out bytes.Buffer
	res, err := SeedCategories(context.Background(), cats, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, "Old Books", cats.bySlug["books"].Name)
	assert.Contains(t, out.String(), "skip    books")
}

func TestCategorySlugsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Categories {
		assert.False(t, seen[c.Slug], c.Slug)
		seen[c.Slug] = true
	}
}

func TestMigrateLegacyRoles(t *testing.T) {
	users := &fakeUsers{}
	var out bytes.Buffer

	results, err := MigrateLegacyRoles(context.Background(), users, &out)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, []store.RoleMove{
		{From: models.RoleLegacyUser, To: models.RoleBuyer},
		{From: models.RoleLegacyAdmin, To: models.RoleSeller},
	}, users.moves)
	assert.Contains(t, out.String(), "USER -> BUYER: 3 rows")
	assert.Contains(t, out.String(), "ADMIN -> SELLER: 4 rows")
}

func TestMigrateLegacyRolesError(t *testing.T) {
	users := &fakeUsers{migrateErr: errors.New("tx aborted")}
	_, err := MigrateLegacyRoles(context.Background(), users, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestResetPassword(t *testing.T) {
	t.Run("updates hash", func(t *testing.T) {
		users := &fakeUsers{hashes: map[string]string{"ada@example.com": "old"}}
		var out bytes.Buffer
		require.NoError(t, ResetPassword(context.Background(), users, " ADA@example.com", "newpass", &out))

		hash := users.hashes["ada@example.com"]
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpass")))
		assert.Contains(t, out.String(), "ada@example.com")
	})

	t.Run("too short", func(t *testing.T) {
		users := &fakeUsers{hashes: map[string]string{"ada@example.com": "old"}}
		err := ResetPassword(context.Background(), users, "ada@example.com", "12345", &bytes.Buffer{})
		assert.ErrorIs(t, err, ErrPasswordTooShort)
		assert.Equal(t, "old", users.hashes["ada@example.com"])
	})

	t.Run("multibyte counts characters for the minimum", func(t *testing.T) {
		users := &fakeUsers{hashes: map[string]string{"ada@example.com": "old"}}
		// 3 runes, 6 bytes
		err := ResetPassword(context.Background(), users, "ada@example.com", "ééé", &bytes.Buffer{})
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("over 72 bytes", func(t *testing.T) {
		users := &fakeUsers{hashes: map[string]string{"ada@example.com": "old"}}
		err := ResetPassword(context.Background(), users, "ada@example.com", strings.Repeat("é", 40), &bytes.Buffer{})
		assert.ErrorIs(t, err, ErrPasswordTooLong)
		assert.Equal(t, "old", users.hashes["ada@example.com"])
	})

	t.Run("unknown user", func(t *testing.T) {
		users := &fakeUsers{hashes: map[string]string{}}
		err := ResetPassword(context.Background(), users, "ghost@example.com", "newpass", &bytes.Buffer{})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("missing email", func(t *testing.T) {
		err := ResetPassword(context.Background(), &fakeUsers{}, "  ", "newpass", &bytes.Buffer{})
		assert.Error(t, err)
	})
}

func TestCheckDatabase(t *testing.T) {
	hs := &fakeHealth{
		tables: []string{"categories", "orders", "users"},
		counts: map[string]int64{"users": 12, "categories": 8, "orders": 0},
	}
	var out bytes.Buffer
	report, err := CheckDatabase(context.Background(), hs, &out)
	require.NoError(t, err)

	assert.Equal(t, hs.tables, report.Tables)
	assert.Equal(t, []TableCount{
		{Table: "users", Rows: 12},
		{Table: "categories", Rows: 8},
		{Table: "orders", Rows: 0},
	}, report.Counts)
	assert.Contains(t, out.String(), "connection ok")
	assert.Contains(t, out.String(), "payments")
	assert.Contains(t, out.String(), "missing")
}

func TestCheckDatabasePingFailure(t *testing.T) {
	_, err := CheckDatabase(context.Background(), &fakeHealth{pingErr: errors.New("refused")}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestPrintCORS(t *testing.T) {
	origins := []string{"https://shop.example.com"}

	t.Run("print only", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, PrintCORS(context.Background(), origins, nil, &out))

		var doc struct {
			CORSRules []struct {
				AllowedOrigins []string
				AllowedMethods []string
			}
		}
		require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
		require.Len(t, doc.CORSRules, 1)
		assert.Equal(t, origins, doc.CORSRules[0].AllowedOrigins)
		assert.Contains(t, doc.CORSRules[0].AllowedMethods, "PUT")
	})

	t.Run("apply", func(t *testing.T) {
		applier := &fakeApplier{}
		var out bytes.Buffer
		require.NoError(t, PrintCORS(context.Background(), origins, applier, &out))
		require.Len(t, applier.rules, 1)
		assert.Equal(t, origins, applier.rules[0].AllowedOrigins)
		assert.Contains(t, out.String(), "cors rules applied")
	})

	t.Run("apply failure", func(t *testing.T) {
		applier := &fakeApplier{err: errors.New("AccessDenied")}
		assert.Error(t, PrintCORS(context.Background(), origins, applier, &bytes.Buffer{}))
	})

	t.Run("no origins", func(t *testing.T) {
		assert.Error(t, PrintCORS(context.Background(), nil, nil, &bytes.Buffer{}))
	})
}

func TestVerifySeller(t *testing.T) {
	sellers := &fakeSellers{profiles: map[string]*models.SellerProfile{
		"seller@example.com": {ID: "sp_1", StoreName: "Kettle Co"},
	}}

	var out bytes.Buffer
	p, err := VerifySeller(context.Background(), sellers, "Seller@Example.com", &out)
	require.NoError(t, err)
	assert.True(t, p.Verified)
	assert.Contains(t, out.String(), "Kettle Co")

	_, err = VerifySeller(context.Background(), sellers, "nobody@example.com", &out)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListSellers(t *testing.T) {
	sellers := &fakeSellers{list: []models.SellerListing{
		{SellerProfile: models.SellerProfile{StoreName: "Kettle Co", Verified: true}, Email: "a@example.com"},
		{SellerProfile: models.SellerProfile{StoreName: "Pan Shop"}, Email: "b@example.com"},
	}}

	var out bytes.Buffer
	list, err := ListSellers(context.Background(), sellers, &out)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Regexp(t, `verified\s+a@example.com\s+Kettle Co`, out.String())
	assert.Regexp(t, `unverified\s+b@example.com\s+Pan Shop`, out.String())

	out.Reset()
	_, err = ListSellers(context.Background(), &fakeSellers{}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "no seller profiles")
}

func TestOpenDBRequiresURL(t *testing.T) {
	_, err := OpenDB(context.Background(), &config.Config{})
	assert.EqualError(t, err, "DATABASE_URL is required")
}
