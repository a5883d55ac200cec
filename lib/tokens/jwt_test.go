package tokens

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	secret := []byte("SECRET")
	token, err := GenerateAccessToken(secret, 3600, "02abcdef")
	require.NoError(t, err)

	address, err := ParseAccessToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "02abcdef", address)

	_, err = ParseAccessToken([]byte("OTHER"), token)
	assert.Error(t, err)

	expired, err := GenerateAccessToken(secret, -10, "02abcdef")
	require.NoError(t, err)
	_, err = ParseAccessToken(secret, expired)
	assert.Error(t, err)
}

func TestMiddlewareSetsAddress(t *testing.T) {
	secret := []byte("SECRET")
	e := echo.New()
	e.GET("/whoami", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get("Address").(string))
	}, Middleware(secret))

	token, err := GenerateAccessToken(secret, 3600, "02abcdef")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "02abcdef", rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer garbage")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminTokenMiddleware(t *testing.T) {
	e := echo.New()
	handler := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }
	e.POST("/admin", handler, AdminTokenMiddleware("admin-secret"))
	e.POST("/closed", handler, AdminTokenMiddleware(""))

	for _, tc := range []struct {
		path   string
		auth   string
		status int
	}{
		{"/admin", "Bearer admin-secret", http.StatusNoContent},
		{"/admin", "Bearer nope", http.StatusUnauthorized},
		{"/admin", "", http.StatusUnauthorized},
		{"/closed", "Bearer ", http.StatusUnauthorized},
	} {
		req := httptest.NewRequest(http.MethodPost, tc.path, nil)
		if tc.auth != "" {
			req.Header.Set(echo.HeaderAuthorization, tc.auth)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, tc.status, rec.Code, "%s %q", tc.path, tc.auth)
	}
}
