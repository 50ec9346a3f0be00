package handlers

import (
	"net/http"
	"net/url"
	"strings"
)

// PaymentHandler serves the browser return leg of the payment flow.
//
// It holds no store. Payment state only changes through the provider's
// server-to-server notification, never through this redirect.
type PaymentHandler struct {
	// AppURL prefixes redirect targets when the storefront runs on another
	// origin. Empty means same origin.
	AppURL string
}

// ProviderReturn godoc
// @Summary Browser return from the payment provider
// @Tags payments
// @Param ref query string false "Payment reference number"
// @Success 307
// @Router /api/payments/provider/return [get]
func (h *PaymentHandler) ProviderReturn(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ref := strings.TrimSpace(q.Get("ref"))
	if ref == "" {
		ref = strings.TrimSpace(q.Get("referenceNumber"))
	}

	target := h.AppURL + "/checkout?error=missing_reference"
	if ref != "" {
		target = h.AppURL + "/checkout/receipt?ref=" + url.QueryEscape(ref)
	}
	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}
