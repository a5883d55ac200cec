package v2controllers

import (
	"net/http"

	"github.com/getAlby/nftmarket.go/lib/service"
	"github.com/labstack/echo/v4"
)

type InfoController struct {
	svc *service.MarketService
}

func NewInfoController(svc *service.MarketService) *InfoController {
	return &InfoController{svc: svc}
}

type InfoResponse struct {
	MarketplaceAddress string `json:"marketplace_address"`
	Administrator      string `json:"administrator"`
	FeePercentage      int64  `json:"fee_percentage"`
}

// Info godoc
// @Summary      Marketplace info
// @Description  Returns the holding address sellers approve, the administrator and the current fee
// @Produce      json
// @Tags         Info
// @Success      200  {object}  InfoResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/info [get]
func (controller *InfoController) Info(c echo.Context) error {
	feePercentage, err := controller.svc.FeePercentage(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &InfoResponse{
		MarketplaceAddress: controller.svc.Custodian.HoldingAddress(),
		Administrator:      controller.svc.Admin.Address(),
		FeePercentage:      feePercentage,
	})
}
