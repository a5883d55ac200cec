package v2controllers

import (
	"net/http"

	"github.com/getAlby/nftmarket.go/lib/responses"
	"github.com/getAlby/nftmarket.go/lib/service"
	"github.com/labstack/echo/v4"
)

// FeeController : marketplace fee
type FeeController struct {
	svc *service.MarketService
}

func NewFeeController(svc *service.MarketService) *FeeController {
	return &FeeController{svc: svc}
}

type FeeResponse struct {
	FeePercentage int64 `json:"fee_percentage"`
}

type SetFeeRequestBody struct {
	FeePercentage *int64 `json:"fee_percentage" validate:"required"`
}

// GetFee godoc
// @Summary      Marketplace fee
// @Produce      json
// @Tags         Fee
// @Success      200  {object}  FeeResponse
// @Router       /v2/fees [get]
func (controller *FeeController) GetFee(c echo.Context) error {
	feePercentage, err := controller.svc.FeePercentage(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &FeeResponse{FeePercentage: feePercentage})
}

// SetFee godoc
// @Summary      Change the marketplace fee
// @Description  Only the administrator may change the fee. Applies to every sale settled afterwards
// @Accept       json
// @Produce      json
// @Tags         Fee
// @Param        SetFeeRequestBody  body      SetFeeRequestBody  True  "Fee percentage"
// @Success      200                {object}  FeeResponse
// @Failure      400                {object}  responses.ErrorResponse
// @Failure      403                {object}  responses.ErrorResponse
// @Router       /v2/fees [put]
// @Security     OAuth2Password
func (controller *FeeController) SetFee(c echo.Context) error {
	caller := c.Get("Address").(string)
	var body SetFeeRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load set fee request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid set fee request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	feeConfig, err := controller.svc.SetFeePercentage(c.Request().Context(), caller, *body.FeePercentage)
	if err != nil {
		c.Logger().Errorf("Failed to set fee percentage for %s: %v", caller, err)
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, &FeeResponse{FeePercentage: feeConfig.Percentage})
}
