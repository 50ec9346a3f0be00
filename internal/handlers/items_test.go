package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemsGone(t *testing.T) {
	for _, route := range DeprecatedItemRoutes {
		t.Run(route.Method+" "+route.Pattern, func(t *testing.T) {
			path := strings.Replace(route.Pattern, "{id}", "42", 1)
			w := httptest.NewRecorder()
			ItemsGone(w, newRequest(route.Method, path, `{"title":"ignored"}`))

			require.Equal(t, http.StatusGone, w.Code)
			var resp goneResp
			require.NoError(t, decode(w.Body, &resp))
			assert.Equal(t, "gone", resp.Error)
			assert.Equal(t, "/api/products", resp.Replacement)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestDeprecatedItemRoutesCoverCRUD(t *testing.T) {
	methods := map[string]int{}
	for _, r := range DeprecatedItemRoutes {
		methods[r.Method]++
	}
	assert.Equal(t, 2, methods[http.MethodGet])
	assert.Equal(t, 1, methods[http.MethodPost])
	assert.Equal(t, 1, methods[http.MethodPatch])
	assert.Equal(t, 1, methods[http.MethodDelete])
}
