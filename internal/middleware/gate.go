package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vaughan-dsouza/marketplace/internal/models"
	"github.com/vaughan-dsouza/marketplace/internal/session"
)

const (
	CRMPrefix      = "/crm"
	SellerPrefix   = "/seller"
	LoginPath      = "/login"
	SellerLogin    = "/seller/login"
	SellerRegister = "/seller/register"
)

// Decision is the outcome of the gate. An empty Redirect means pass through.
type Decision struct {
	Redirect string
}

func (d Decision) Allowed() bool {
	return d.Redirect == ""
}

// Authorize decides whether a request for path may proceed given the
// caller's session (nil when there is none). The first matching guard wins.
func Authorize(path string, s *session.Session) Decision {
	var role models.Role
	if s != nil {
		role = s.Role
	}

	switch {
	case underPrefix(path, CRMPrefix) && s == nil:
		return Decision{Redirect: LoginPath}
	case isSellerArea(path) && s == nil:
		return Decision{Redirect: SellerLogin}
	case isSellerArea(path) && role != models.RoleSeller:
		return Decision{Redirect: SellerLogin + "?error=unauthorized"}
	case path == LoginPath && role == models.RoleSeller:
		return Decision{Redirect: SellerLogin}
	case path == SellerLogin && role == models.RoleBuyer:
		return Decision{Redirect: LoginPath}
	}
	return Decision{}
}

// isSellerArea covers seller management pages but not the seller auth pages,
// which must stay reachable without a seller session.
func isSellerArea(path string) bool {
	if !underPrefix(path, SellerPrefix) {
		return false
	}
	return !underPrefix(path, SellerLogin) && !underPrefix(path, SellerRegister)
}

func underPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// Gate resolves the session once per request, applies Authorize, and either
// redirects or forwards with the session attached to the context. Any
// resolution failure is treated as no session.
func Gate(resolver *session.Resolver, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := resolver.Resolve(r)
			if err != nil {
				s = nil
				if !errors.Is(err, session.ErrNoCredential) {
					logger.Debug("session not resolved",
						"event", "session_resolve_failed",
						"path", r.URL.Path,
						"error", err.Error(),
					)
				}
			}

			if d := Authorize(r.URL.Path, s); !d.Allowed() {
				http.Redirect(w, r, d.Redirect, http.StatusTemporaryRedirect)
				return
			}

			if s != nil {
				r = r.WithContext(session.WithSession(r.Context(), s))
			}
			next.ServeHTTP(w, r)
		})
	}
}
