package v2controllers

import (
	"net/http"

	"github.com/getAlby/nftmarket.go/lib/responses"
	"github.com/labstack/echo/v4"
)

type AssetResponse struct {
	Collection string `json:"collection"`
	TokenID    uint64 `json:"token_id"`
	Owner      string `json:"owner"`
}

type ApprovalRequestBody struct {
	Collection string `json:"collection" validate:"required"`
	Operator   string `json:"operator"`
	Approved   *bool  `json:"approved" validate:"required"`
}

type MintRequestBody struct {
	Collection string `json:"collection" validate:"required"`
	TokenID    uint64 `json:"token_id"`
	Owner      string `json:"owner" validate:"required"`
}

// GetAsset godoc
// @Summary      Current holder of an asset
// @Produce      json
// @Tags         Asset
// @Param        collection  path      string  true  "Collection"
// @Param        token_id    path      int     true  "Token id"
// @Success      200         {object}  AssetResponse
// @Failure      404         {object}  responses.ErrorResponse
// @Router       /v2/assets/{collection}/{token_id} [get]
func (controller *LedgerController) GetAsset(c echo.Context) error {
	collection, tokenID, ok := assetKey(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	owner, err := controller.svc.AssetHolder(c.Request().Context(), collection, tokenID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, &AssetResponse{
		Collection: collection,
		TokenID:    tokenID,
		Owner:      owner,
	})
}

// SetApproval godoc
// @Summary      Approve an operator
// @Description  Lets the operator (the marketplace when omitted) move every asset the caller holds in a collection
// @Accept       json
// @Tags         Asset
// @Param        ApprovalRequestBody  body  ApprovalRequestBody  True  "Approval"
// @Success      204
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /v2/assets/approvals [post]
// @Security     OAuth2Password
func (controller *LedgerController) SetApproval(c echo.Context) error {
	owner := c.Get("Address").(string)
	var body ApprovalRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load approval request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid approval request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	err := controller.svc.SetApproval(c.Request().Context(), body.Collection, owner, body.Operator, *body.Approved)
	if err != nil {
		c.Logger().Errorf("Failed to set approval of %s in %s: %v", owner, body.Collection, err)
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Mint godoc
// @Summary      Mint an asset
// @Description  Creates an asset held by owner. Requires the admin token
// @Accept       json
// @Produce      json
// @Tags         Admin
// @Param        MintRequestBody  body      MintRequestBody  True  "Asset"
// @Success      200              {object}  AssetResponse
// @Failure      400              {object}  responses.ErrorResponse
// @Router       /v2/admin/assets [post]
func (controller *LedgerController) Mint(c echo.Context) error {
	var body MintRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load mint request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid mint request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	holding, err := controller.svc.MintAsset(c.Request().Context(), body.Collection, body.TokenID, body.Owner)
	if err != nil {
		c.Logger().Errorf("Failed to mint %s/%d: %v", body.Collection, body.TokenID, err)
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, &AssetResponse{
		Collection: holding.Collection,
		TokenID:    holding.TokenID,
		Owner:      holding.Owner,
	})
}
