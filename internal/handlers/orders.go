package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vaughan-dsouza/marketplace/internal/session"
	"github.com/vaughan-dsouza/marketplace/internal/store"
	"github.com/vaughan-dsouza/marketplace/internal/utils"
)

type OrderHandler struct {
	Orders store.OrderStore
	Logger *slog.Logger
}

// GetOrder godoc
// @Summary Fetch one of the caller's orders
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Order
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	if s == nil {
		utils.JSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		utils.JSONError(w, http.StatusNotFound, "order not found")
		return
	}

	order, err := h.Orders.FindWithDetails(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		utils.JSONError(w, http.StatusNotFound, "order not found")
		return
	}
	if err != nil {
		internalError(w, h.Logger, err, "order_lookup_failed")
		return
	}

	// existence is settled above; only now does ownership decide
	if order.UserID != s.UserID {
		h.Logger.Warn("order access denied",
			"event", "order_forbidden",
			"order_id", id,
			"user_id", s.UserID,
		)
		utils.JSONError(w, http.StatusForbidden, "forbidden")
		return
	}

	utils.JSON(w, http.StatusOK, order)
}
