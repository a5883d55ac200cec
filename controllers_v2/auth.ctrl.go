package v2controllers

import (
	"net/http"

	"github.com/getAlby/nftmarket.go/lib/responses"
	"github.com/getAlby/nftmarket.go/lib/service"
	"github.com/labstack/echo/v4"
)

// AuthController : AuthController struct
type AuthController struct {
	svc *service.MarketService
}

func NewAuthController(svc *service.MarketService) *AuthController {
	return &AuthController{
		svc: svc,
	}
}

type AuthRequestBody struct {
	PubKey    string `json:"pubkey" validate:"required,hexadecimal,len=66"`
	Signature string `json:"signature" validate:"required,hexadecimal"`
	Timestamp int64  `json:"timestamp" validate:"required"`
}

type AuthResponseBody struct {
	Address     string `json:"address"`
	AccessToken string `json:"access_token"`
}

// Auth godoc
// @Summary      Authenticate
// @Description  Exchanges a signed login challenge for an access token
// @Accept       json
// @Produce      json
// @Tags         Auth
// @Param        AuthRequestBody  body      AuthRequestBody  True  "Signed login challenge"
// @Success      200              {object}  AuthResponseBody
// @Failure      400              {object}  responses.ErrorResponse
// @Failure      401              {object}  responses.ErrorResponse
// @Router       /auth [post]
func (controller *AuthController) Auth(c echo.Context) error {
	var body AuthRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load auth request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	address, accessToken, err := controller.svc.GenerateToken(body.PubKey, body.Signature, body.Timestamp)
	if err != nil {
		c.Logger().Infof("Rejected login of %s: %v", body.PubKey, err)
		return c.JSON(http.StatusUnauthorized, responses.BadAuthError)
	}

	return c.JSON(http.StatusOK, &AuthResponseBody{
		Address:     address,
		AccessToken: accessToken,
	})
}
