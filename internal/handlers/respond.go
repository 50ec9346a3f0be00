package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vaughan-dsouza/marketplace/internal/utils"
	"github.com/vaughan-dsouza/marketplace/internal/validation"
)

type validationResponse struct {
	Error   string                 `json:"error"`
	Details []validation.Violation `json:"details"`
}

// checkRequest validates req and writes the 400 response when it fails.
// It reports whether the handler may continue.
func checkRequest(w http.ResponseWriter, logger *slog.Logger, req any) bool {
	err := validation.Struct(req)
	if err == nil {
		return true
	}
	var verr *validation.Error
	if errors.As(err, &verr) {
		utils.JSON(w, http.StatusBadRequest, validationResponse{
			Error:   "validation failed",
			Details: verr.Violations,
		})
		return false
	}
	internalError(w, logger, err, "request_validation_failed")
	return false
}

// internalError logs err and sends a generic 500 without leaking detail.
func internalError(w http.ResponseWriter, logger *slog.Logger, err error, event string) {
	logger.Error("request failed",
		"event", event,
		"error", err.Error(),
	)
	utils.JSONError(w, http.StatusInternalServerError, "internal server error")
}
