package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegisterRoutes verifies that every endpoint is mounted. The handlers
// themselves return non-404 codes for empty requests (400/401), which is all
// this existence check needs.
func TestRegisterRoutes(t *testing.T) {
	f := newProtectedFixture(t)

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/users"},
		{http.MethodPost, "/login"},
		{http.MethodPost, "/tasks"},
		{http.MethodGet, "/tasks"},
		{http.MethodGet, "/users"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_%s_exists", tc.method, tc.path), func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := f.app.Test(req)
			require.NoError(t, err)

			assert.NotEqual(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}
