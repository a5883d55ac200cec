package tokens

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type jwtCustomClaims struct {
	Address string `json:"address"`

	jwt.StandardClaims
}

// GenerateAccessToken : Generate Access Token
func GenerateAccessToken(secret []byte, expiryInSeconds int, address string) (string, error) {
	claims := &jwtCustomClaims{
		Address: address,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Second * time.Duration(expiryInSeconds)).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}

	return t, nil
}

// ParseAccessToken verifies the token and returns the address it was issued for
func ParseAccessToken(secret []byte, tokenString string) (string, error) {
	claims := &jwtCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.Address == "" {
		return "", fmt.Errorf("invalid token")
	}
	return claims.Address, nil
}

// Middleware authenticates "Authorization: Bearer <token>" requests and stores
// the caller address as "Address" in the echo context.
func Middleware(secret []byte) echo.MiddlewareFunc {
	config := middleware.DefaultKeyAuthConfig
	config.AuthScheme = "Bearer"
	config.Validator = func(auth string, c echo.Context) (bool, error) {
		address, err := ParseAccessToken(secret, auth)
		if err != nil {
			c.Logger().Debugf("Rejected access token: %v", err)
			return false, nil
		}
		c.Set("Address", address)
		return true, nil
	}
	config.ErrorHandler = func(err error, c echo.Context) error {
		return echo.NewHTTPError(http.StatusUnauthorized, echo.Map{
			"error":   true,
			"code":    1,
			"message": "bad auth",
		})
	}
	return middleware.KeyAuthWithConfig(config)
}
