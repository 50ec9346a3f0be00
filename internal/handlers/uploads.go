package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/vaughan-dsouza/marketplace/internal/session"
	"github.com/vaughan-dsouza/marketplace/internal/storage"
	"github.com/vaughan-dsouza/marketplace/internal/utils"
)

// Presigner issues direct-upload URLs for object keys.
type Presigner interface {
	PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (string, error)
	PublicURL(key string) string
}

type UploadHandler struct {
	Storage Presigner
	TTL     time.Duration
	Logger  *slog.Logger
}

type presignReq struct {
	Filename    string `json:"filename" validate:"required,max=255"`
	ContentType string `json:"contentType" validate:"required,startswith=image/,max=100"`
}

type presignResp struct {
	UploadURL string `json:"uploadUrl"`
	Key       string `json:"key"`
	PublicURL string `json:"publicUrl"`
	ExpiresIn int64  `json:"expiresIn"`
}

// Presign godoc
// @Summary Presign a direct image upload
// @Tags uploads
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} presignResp
// @Failure 400 {object} validationResponse
// @Failure 401 {object} map[string]string
// @Router /api/upload/presign [post]
func (h *UploadHandler) Presign(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	if s == nil {
		utils.JSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req presignReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}
	if !checkRequest(w, h.Logger, req) {
		return
	}

	if h.Storage == nil {
		utils.JSONError(w, http.StatusInternalServerError, "object storage is not configured")
		return
	}

	key := storage.UploadKey(s.UserID, req.Filename, req.ContentType)
	uploadURL, err := h.Storage.PresignPut(r.Context(), key, req.ContentType, h.TTL)
	if err != nil {
		internalError(w, h.Logger, err, "upload_presign_failed")
		return
	}

	utils.JSON(w, http.StatusOK, presignResp{
		UploadURL: uploadURL,
		Key:       key,
		PublicURL: h.Storage.PublicURL(key),
		ExpiresIn: int64(h.TTL.Seconds()),
	})
}
