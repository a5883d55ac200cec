package v2controllers

import (
	"strconv"

	"github.com/getAlby/nftmarket.go/lib/responses"
	"github.com/labstack/echo/v4"
)

// assetKey reads the :collection and :token_id path params
func assetKey(c echo.Context) (collection string, tokenID uint64, ok bool) {
	collection = c.Param("collection")
	tokenID, err := strconv.ParseUint(c.Param("token_id"), 10, 64)
	if collection == "" || err != nil {
		return "", 0, false
	}
	return collection, tokenID, true
}

// errorResponse answers with the response of an expected error. Anything else
// is left to the HTTP error handler.
func errorResponse(c echo.Context, err error) error {
	if response, ok := responses.MarketError(err); ok {
		return c.JSON(response.HttpStatusCode, response)
	}
	return err
}
