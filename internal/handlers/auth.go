package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/vaughan-dsouza/marketplace/internal/models"
	"github.com/vaughan-dsouza/marketplace/internal/session"
	"github.com/vaughan-dsouza/marketplace/internal/store"
	"github.com/vaughan-dsouza/marketplace/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// TokenConfig is what the auth handler needs to sign session tokens.
type TokenConfig struct {
	Secret string
	TTL    time.Duration
}

type AuthHandler struct {
	Users       store.UserStore
	Revocations session.RevocationStore
	Tokens      TokenConfig
	Cookie      CookieConfig
	Logger      *slog.Logger
}

type registerReq struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userResp struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  models.Role `json:"role"`
}

type loginResp struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      userResp  `json:"user"`
}

func toUserResp(u *models.User) userResp {
	return userResp{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register godoc
// @Summary Register a buyer account
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} userResp
// @Failure 400 {object} validationResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)

	if !checkRequest(w, h.Logger, req) {
		return
	}

	_, err := h.Users.FindByEmail(r.Context(), req.Email)
	switch {
	case err == nil:
		utils.JSONError(w, http.StatusBadRequest, "user already exists")
		return
	case !errors.Is(err, store.ErrNotFound):
		internalError(w, h.Logger, err, "register_lookup_failed")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		internalError(w, h.Logger, err, "register_hash_failed")
		return
	}

	user := &models.User{
		Email:    req.Email,
		Password: string(hash),
		Name:     req.Name,
		Role:     models.RoleBuyer,
	}
	err = h.Users.Create(r.Context(), user)
	if errors.Is(err, store.ErrEmailTaken) {
		utils.JSONError(w, http.StatusBadRequest, "user already exists")
		return
	}
	if err != nil {
		internalError(w, h.Logger, err, "register_create_failed")
		return
	}

	h.Logger.Info("user registered", "event", "user_registered", "user_id", user.ID)
	utils.JSON(w, http.StatusCreated, toUserResp(user))
}

// Login godoc
// @Summary Sign in and receive a session token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} loginResp
// @Failure 401 {object} map[string]string
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}
	req.Email = normalizeEmail(req.Email)

	if !checkRequest(w, h.Logger, req) {
		return
	}

	u, err := h.Users.FindByEmail(r.Context(), req.Email)
	if errors.Is(err, store.ErrNotFound) {
		utils.JSONError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		internalError(w, h.Logger, err, "login_lookup_failed")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		utils.JSONError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if !u.Role.Valid() {
		h.Logger.Warn("login with legacy role", "event", "login_legacy_role", "user_id", u.ID, "role", string(u.Role))
		utils.JSONError(w, http.StatusForbidden, "account role must be migrated")
		return
	}

	issued, err := utils.GenerateToken(u.ID, u.Email, string(u.Role), h.Tokens.Secret, h.Tokens.TTL)
	if err != nil {
		internalError(w, h.Logger, err, "login_token_failed")
		return
	}

	setSessionCookie(w, h.Cookie, issued.Token, issued.ExpiresAt)
	utils.JSON(w, http.StatusOK, loginResp{
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
		User:      toUserResp(u),
	})
}

// Logout godoc
// @Summary Revoke the current session
// @Tags auth
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} map[string]string
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	if s == nil {
		utils.JSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if s.TokenID != "" {
		if err := h.Revocations.Revoke(r.Context(), s.TokenID, time.Until(s.ExpiresAt)); err != nil {
			internalError(w, h.Logger, err, "logout_revoke_failed")
			return
		}
	}

	clearSessionCookie(w, h.Cookie)
	w.WriteHeader(http.StatusNoContent)
}

// Me godoc
// @Summary Current user profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	if s == nil {
		utils.JSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	u, err := h.Users.FindByID(r.Context(), s.UserID)
	if errors.Is(err, store.ErrNotFound) {
		utils.JSONError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		internalError(w, h.Logger, err, "me_lookup_failed")
		return
	}

	utils.JSON(w, http.StatusOK, u)
}
