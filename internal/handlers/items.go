package handlers

import (
	"net/http"

	"github.com/vaughan-dsouza/marketplace/internal/utils"
)

// DeprecatedRoute is a retired endpoint that now answers 410 Gone.
type DeprecatedRoute struct {
	Method  string
	Pattern string
}

// DeprecatedItemRoutes lists the retired item endpoints, replaced by the
// product endpoints.
var DeprecatedItemRoutes = []DeprecatedRoute{
	{http.MethodGet, "/api/items"},
	{http.MethodPost, "/api/items"},
	{http.MethodGet, "/api/items/{id}"},
	{http.MethodPatch, "/api/items/{id}"},
	{http.MethodDelete, "/api/items/{id}"},
}

type goneResp struct {
	Error       string `json:"error"`
	Message     string `json:"message"`
	Replacement string `json:"replacement"`
}

var itemsGone = goneResp{
	Error:       "gone",
	Message:     "The items API has been retired. Use the products API instead.",
	Replacement: "/api/products",
}

// ItemsGone answers every deprecated item route. The request is not read.
//
// @Summary Retired, use /api/products
// @Tags deprecated
// @Produce json
// @Failure 410 {object} goneResp
// @Router /api/items [get]
// @Router /api/items [post]
// @Router /api/items/{id} [get]
// @Router /api/items/{id} [patch]
// @Router /api/items/{id} [delete]
func ItemsGone(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusGone, itemsGone)
}
