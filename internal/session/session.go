// Package session resolves the caller's session from a request and carries
// it through the request context.
package session

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/vaughan-dsouza/marketplace/internal/models"
	"github.com/vaughan-dsouza/marketplace/internal/utils"
)

// CookieName is the cookie that carries the session token for browser clients.
const CookieName = "session_token"

var (
	ErrNoCredential = errors.New("no session credential")
	ErrRevoked      = errors.New("session revoked")
)

// Session is the per-request identity derived from a verified token.
type Session struct {
	UserID    string
	Email     string
	Role      models.Role
	TokenID   string
	ExpiresAt time.Time
}

type ctxKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session attached by the gate, or nil.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(ctxKey{}).(*Session)
	return s
}

// Resolver turns a request credential into a Session.
type Resolver struct {
	Secret      string
	Revocations RevocationStore
}

func NewResolver(secret string, revocations RevocationStore) *Resolver {
	if revocations == nil {
		revocations = NopRevocations{}
	}
	return &Resolver{Secret: secret, Revocations: revocations}
}

// Resolve reads a bearer token, falling back to the session cookie.
func (r *Resolver) Resolve(req *http.Request) (*Session, error) {
	token := Credential(req)
	if token == "" {
		return nil, ErrNoCredential
	}

	claims, err := utils.VerifyToken(token, r.Secret)
	if err != nil {
		return nil, err
	}

	role := models.Role(claims.Role)
	if !role.Valid() {
		return nil, errors.New("session has unknown role")
	}

	if claims.ID != "" {
		revoked, err := r.Revocations.IsRevoked(req.Context(), claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, ErrRevoked
		}
	}

	return &Session{
		UserID:    claims.Subject,
		Email:     claims.Email,
		Role:      role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Credential extracts the raw token from the Authorization header or cookie.
func Credential(req *http.Request) string {
	if auth := req.Header.Get("Authorization"); auth != "" {
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if c, err := req.Cookie(CookieName); err == nil {
		return c.Value
	}
	return ""
}
