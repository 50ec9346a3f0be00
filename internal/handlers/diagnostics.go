package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/vaughan-dsouza/marketplace/internal/storage"
	"github.com/vaughan-dsouza/marketplace/internal/utils"
)

// BucketChecker reports whether object storage is reachable.
type BucketChecker interface {
	Check(ctx context.Context) error
	Info(ctx context.Context) storage.Info
}

type DiagnosticsHandler struct {
	Storage BucketChecker
	Logger  *slog.Logger
}

type s3TestResp struct {
	Success bool          `json:"success"`
	Bucket  string        `json:"bucket,omitempty"`
	Region  string        `json:"region,omitempty"`
	Error   string        `json:"error,omitempty"`
	Config  *storage.Info `json:"config,omitempty"`
}

// TestS3 godoc
// @Summary Check object storage connectivity
// @Tags diagnostics
// @Produce json
// @Success 200 {object} s3TestResp
// @Failure 500 {object} s3TestResp
// @Router /api/test/s3 [get]
func (h *DiagnosticsHandler) TestS3(w http.ResponseWriter, r *http.Request) {
	if h.Storage == nil {
		utils.JSON(w, http.StatusInternalServerError, s3TestResp{
			Success: false,
			Error:   "object storage is not configured",
		})
		return
	}

	info := h.Storage.Info(r.Context())
	if err := h.Storage.Check(r.Context()); err != nil {
		h.Logger.Error("s3 check failed", "event", "s3_check_failed", "bucket", info.Bucket, "error", err.Error())
		utils.JSON(w, http.StatusInternalServerError, s3TestResp{
			Success: false,
			Error:   "cannot reach bucket",
			Config:  &info,
		})
		return
	}

	utils.JSON(w, http.StatusOK, s3TestResp{
		Success: true,
		Bucket:  info.Bucket,
		Region:  info.Region,
	})
}
