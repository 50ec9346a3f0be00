package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vaughan-dsouza/marketplace/internal/models"
	"github.com/vaughan-dsouza/marketplace/internal/session"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func requestAs(s *session.Session) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/orders/1", nil)
	if s != nil {
		req = req.WithContext(session.WithSession(req.Context(), s))
	}
	return req
}

func TestRequireSession(t *testing.T) {
	w := httptest.NewRecorder()
	RequireSession(okHandler).ServeHTTP(w, requestAs(nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	RequireSession(okHandler).ServeHTTP(w, requestAs(&session.Session{UserID: "u1", Role: models.RoleSeller}))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name string
		sess *session.Session
		want int
	}{
		{"no session", nil, http.StatusUnauthorized},
		{"wrong role", &session.Session{UserID: "u1", Role: models.RoleSeller}, http.StatusForbidden},
		{"right role", &session.Session{UserID: "u1", Role: models.RoleBuyer}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			RequireRole(models.RoleBuyer)(okHandler).ServeHTTP(w, requestAs(tt.sess))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
