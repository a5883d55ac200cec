package v2controllers

import (
	"net/http"

	"github.com/getAlby/nftmarket.go/lib/responses"
	"github.com/getAlby/nftmarket.go/lib/service"
	"github.com/labstack/echo/v4"
)

// BuyController : BuyController struct
type BuyController struct {
	svc *service.MarketService
}

func NewBuyController(svc *service.MarketService) *BuyController {
	return &BuyController{svc: svc}
}

type BuyRequestBody struct {
	Payment int64 `json:"payment" validate:"gte=0"`
}

// Buy godoc
// @Summary      Buy a listed asset
// @Description  Pays the listing price from the caller's balance. Any payment above the price is refunded
// @Accept       json
// @Produce      json
// @Tags         Listing
// @Param        collection      path      string          true  "Collection"
// @Param        token_id        path      int             true  "Token id"
// @Param        BuyRequestBody  body      BuyRequestBody  True  "Payment"
// @Success      200             {object}  models.Sale
// @Failure      400             {object}  responses.ErrorResponse
// @Failure      404             {object}  responses.ErrorResponse
// @Failure      409             {object}  responses.ErrorResponse
// @Router       /v2/listings/{collection}/{token_id}/buy [post]
// @Security     OAuth2Password
func (controller *BuyController) Buy(c echo.Context) error {
	buyer := c.Get("Address").(string)
	collection, tokenID, ok := assetKey(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body BuyRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load buy request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid buy request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	c.Logger().Infof("Buying %s/%d: buyer:%s payment:%d", collection, tokenID, buyer, body.Payment)
	sale, err := controller.svc.Buy(c.Request().Context(), collection, tokenID, buyer, body.Payment)
	if err != nil {
		c.Logger().Errorf("Failed to buy %s/%d for %s: %v", collection, tokenID, buyer, err)
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, sale)
}
