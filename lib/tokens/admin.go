package tokens

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// AdminTokenMiddleware protects the ledger administration endpoints.
// Without a configured token every request is rejected.
func AdminTokenMiddleware(token string) echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup:  "header:" + echo.HeaderAuthorization,
		AuthScheme: "Bearer",
		Validator: func(auth string, c echo.Context) (bool, error) {
			if token == "" {
				return false, nil
			}
			return subtle.ConstantTimeCompare([]byte(auth), []byte(token)) == 1, nil
		},
		ErrorHandler: func(err error, c echo.Context) error {
			return echo.NewHTTPError(http.StatusUnauthorized, echo.Map{
				"error":   true,
				"code":    1,
				"message": "bad auth",
			})
		},
	})
}
