package v2controllers

import (
	"net/http"

	"github.com/getAlby/nftmarket.go/db/models"
	"github.com/getAlby/nftmarket.go/lib/responses"
	"github.com/getAlby/nftmarket.go/lib/service"
	"github.com/labstack/echo/v4"
)

const maxListingsPageSize = 500

// ListingController : listing registry and seller actions
type ListingController struct {
	svc *service.MarketService
}

func NewListingController(svc *service.MarketService) *ListingController {
	return &ListingController{svc: svc}
}

type GetListingsQuery struct {
	Collection string `query:"collection"`
	Seller     string `query:"seller"`
	Limit      int    `query:"limit" validate:"gte=0,lte=500"`
	Offset     int    `query:"offset" validate:"gte=0"`
}

type GetListingsResponseBody struct {
	Listings []models.Listing `json:"listings"`
}

type ListRequestBody struct {
	Collection string `json:"collection" validate:"required"`
	TokenID    uint64 `json:"token_id"`
	Price      int64  `json:"price"`
}

type ChangePriceRequestBody struct {
	Price int64 `json:"price"`
}

type GetSalesResponseBody struct {
	Sales []models.Sale `json:"sales"`
}

// GetListings godoc
// @Summary      Active listings
// @Description  Returns active listings, optionally filtered by collection and seller
// @Produce      json
// @Tags         Listing
// @Param        collection  query     string  false  "Collection"
// @Param        seller      query     string  false  "Seller address"
// @Param        limit       query     int     false  "Page size"
// @Param        offset      query     int     false  "Offset"
// @Success      200         {object}  GetListingsResponseBody
// @Failure      400         {object}  responses.ErrorResponse
// @Router       /v2/listings [get]
func (controller *ListingController) GetListings(c echo.Context) error {
	var query GetListingsQuery
	if err := c.Bind(&query); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&query); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if query.Limit == 0 {
		query.Limit = maxListingsPageSize
	}
	listings, err := controller.svc.ActiveListings(c.Request().Context(), service.ListingFilter{
		Collection: query.Collection,
		Seller:     query.Seller,
		Limit:      query.Limit,
		Offset:     query.Offset,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &GetListingsResponseBody{Listings: listings})
}

// GetListing godoc
// @Summary      Get a listing
// @Description  Returns the listing record of an asset. Sold listings are returned with active=false
// @Produce      json
// @Tags         Listing
// @Param        collection  path      string  true  "Collection"
// @Param        token_id    path      int     true  "Token id"
// @Success      200         {object}  models.Listing
// @Failure      400         {object}  responses.ErrorResponse
// @Failure      404         {object}  responses.ErrorResponse
// @Router       /v2/listings/{collection}/{token_id} [get]
func (controller *ListingController) GetListing(c echo.Context) error {
	collection, tokenID, ok := assetKey(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	listing, err := controller.svc.GetListing(c.Request().Context(), collection, tokenID)
	if err != nil {
		return err
	}
	if listing == nil {
		return c.JSON(http.StatusNotFound, responses.NotListedError)
	}
	return c.JSON(http.StatusOK, listing)
}

// GetSales godoc
// @Summary      Sales of an asset
// @Description  Returns the settled sales of an asset, newest first
// @Produce      json
// @Tags         Listing
// @Param        collection  path      string  true  "Collection"
// @Param        token_id    path      int     true  "Token id"
// @Success      200         {object}  GetSalesResponseBody
// @Failure      400         {object}  responses.ErrorResponse
// @Router       /v2/listings/{collection}/{token_id}/sales [get]
func (controller *ListingController) GetSales(c echo.Context) error {
	collection, tokenID, ok := assetKey(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	sales, err := controller.svc.Sales(c.Request().Context(), collection, tokenID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &GetSalesResponseBody{Sales: sales})
}

// List godoc
// @Summary      List an asset
// @Description  Moves the asset into marketplace custody and lists it at a fixed price. The marketplace must be approved as operator
// @Accept       json
// @Produce      json
// @Tags         Listing
// @Param        ListRequestBody  body      ListRequestBody  True  "Listing"
// @Success      200              {object}  models.Listing
// @Failure      400              {object}  responses.ErrorResponse
// @Failure      409              {object}  responses.ErrorResponse
// @Router       /v2/listings [post]
// @Security     OAuth2Password
func (controller *ListingController) List(c echo.Context) error {
	seller := c.Get("Address").(string)
	var body ListRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load list request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid list request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	listing, err := controller.svc.List(c.Request().Context(), body.Collection, body.TokenID, seller, body.Price)
	if err != nil {
		c.Logger().Errorf("Failed to list %s/%d for %s: %v", body.Collection, body.TokenID, seller, err)
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, listing)
}

// ChangePrice godoc
// @Summary      Change the price of a listing
// @Accept       json
// @Produce      json
// @Tags         Listing
// @Param        collection              path      string                  true  "Collection"
// @Param        token_id                path      int                     true  "Token id"
// @Param        ChangePriceRequestBody  body      ChangePriceRequestBody  True  "New price"
// @Success      200                     {object}  models.Listing
// @Failure      400                     {object}  responses.ErrorResponse
// @Failure      403                     {object}  responses.ErrorResponse
// @Failure      404                     {object}  responses.ErrorResponse
// @Router       /v2/listings/{collection}/{token_id}/price [put]
// @Security     OAuth2Password
func (controller *ListingController) ChangePrice(c echo.Context) error {
	caller := c.Get("Address").(string)
	collection, tokenID, ok := assetKey(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body ChangePriceRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load change price request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	listing, err := controller.svc.ChangePrice(c.Request().Context(), collection, tokenID, caller, body.Price)
	if err != nil {
		c.Logger().Errorf("Failed to change price of %s/%d for %s: %v", collection, tokenID, caller, err)
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, listing)
}

// Unlist godoc
// @Summary      Unlist an asset
// @Description  Erases the listing and returns the asset to the seller
// @Produce      json
// @Tags         Listing
// @Param        collection  path      string  true  "Collection"
// @Param        token_id    path      int     true  "Token id"
// @Success      200         {object}  models.Listing
// @Failure      403         {object}  responses.ErrorResponse
// @Failure      404         {object}  responses.ErrorResponse
// @Router       /v2/listings/{collection}/{token_id} [delete]
// @Security     OAuth2Password
func (controller *ListingController) Unlist(c echo.Context) error {
	caller := c.Get("Address").(string)
	collection, tokenID, ok := assetKey(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	listing, err := controller.svc.Unlist(c.Request().Context(), collection, tokenID, caller)
	if err != nil {
		c.Logger().Errorf("Failed to unlist %s/%d for %s: %v", collection, tokenID, caller, err)
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, listing)
}
