package v2controllers

import (
	"net/http"

	"github.com/getAlby/nftmarket.go/lib/service"
	"github.com/labstack/echo/v4"
)

type StatsController struct {
	svc *service.MarketService
}

func NewStatsController(svc *service.MarketService) *StatsController {
	return &StatsController{svc: svc}
}

type CollectionStatsResponse struct {
	Collection    string `json:"collection"`
	TotalListings int64  `json:"total_listings"`
	TotalSales    int64  `json:"total_sales"`
}

// CollectionStats godoc
// @Summary      Collection statistics
// @Description  Number of active listings and settled sales of a collection
// @Produce      json
// @Tags         Stats
// @Param        collection  path      string  true  "Collection"
// @Success      200         {object}  CollectionStatsResponse
// @Router       /v2/collections/{collection}/stats [get]
func (controller *StatsController) CollectionStats(c echo.Context) error {
	stats, err := controller.svc.CollectionStats(c.Request().Context(), c.Param("collection"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &CollectionStatsResponse{
		Collection:    stats.Collection,
		TotalListings: stats.TotalListings,
		TotalSales:    stats.TotalSales,
	})
}
