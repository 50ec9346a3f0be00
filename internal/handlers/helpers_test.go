package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vaughan-dsouza/marketplace/internal/models"
	"github.com/vaughan-dsouza/marketplace/internal/session"
	"github.com/vaughan-dsouza/marketplace/internal/storage"
	"github.com/vaughan-dsouza/marketplace/internal/store"
)

const testSecret = "this-is-a-test-secret-with-32-bytes!"

// =============================================================================
// Mock Implementations
// =============================================================================

type mockUserStore struct {
	findByEmailFunc    func(ctx context.Context, email string) (*models.User, error)
	findByIDFunc       func(ctx context.Context, id string) (*models.User, error)
	createFunc         func(ctx context.Context, user *models.User) error
	updatePasswordFunc func(ctx context.Context, email, hash string) error
	migrateRolesFunc   func(ctx context.Context, moves []store.RoleMove) ([]store.RoleMoveResult, error)

	findByEmailCalls int
	createCalls      int
}

func (m *mockUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	m.findByEmailCalls++
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserStore) Create(ctx context.Context, user *models.User) error {
	m.createCalls++
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return errors.New("not implemented")
}

func (m *mockUserStore) UpdatePassword(ctx context.Context, email, hash string) error {
	if m.updatePasswordFunc != nil {
		return m.updatePasswordFunc(ctx, email, hash)
	}
	return errors.New("not implemented")
}

func (m *mockUserStore) MigrateRoles(ctx context.Context, moves []store.RoleMove) ([]store.RoleMoveResult, error) {
	if m.migrateRolesFunc != nil {
		return m.migrateRolesFunc(ctx, moves)
	}
	return nil, errors.New("not implemented")
}

type mockOrderStore struct {
	findFunc func(ctx context.Context, id string) (*models.Order, error)
}

func (m *mockOrderStore) FindWithDetails(ctx context.Context, id string) (*models.Order, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

type mockStorage struct {
	presignFunc func(ctx context.Context, key, contentType string, ttl time.Duration) (string, error)
	checkErr    error
}

func (m *mockStorage) PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (string, error) {
	if m.presignFunc != nil {
		return m.presignFunc(ctx, key, contentType, ttl)
	}
	return "https://bucket.example.com/" + key + "?sig=1", nil
}

func (m *mockStorage) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func (m *mockStorage) Check(ctx context.Context) error {
	return m.checkErr
}

func (m *mockStorage) Info(ctx context.Context) storage.Info {
	return storage.Info{Bucket: "market-images", Region: "eu-west-1", HasCredentials: true}
}

type mockRevocations struct {
	revoked map[string]time.Duration
}

func (m *mockRevocations) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if m.revoked == nil {
		m.revoked = map[string]time.Duration{}
	}
	m.revoked[tokenID] = ttl
	return nil
}

func (m *mockRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	_, ok := m.revoked[tokenID]
	return ok, nil
}

// =============================================================================
// Test Helpers
// =============================================================================

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRequest(method, path string, body interface{}) *http.Request {
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, _ := json.Marshal(body)
			reader = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withSession(req *http.Request, userID string, role models.Role) *http.Request {
	s := &session.Session{
		UserID:    userID,
		Email:     userID + "@example.com",
		Role:      role,
		TokenID:   "jti-" + userID,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	return req.WithContext(session.WithSession(req.Context(), s))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decode(body *bytes.Buffer, v interface{}) error {
	return json.Unmarshal(body.Bytes(), v)
}
