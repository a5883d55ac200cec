package v2controllers

import (
	"net/http"

	"github.com/getAlby/nftmarket.go/db/models"
	"github.com/getAlby/nftmarket.go/lib/responses"
	"github.com/getAlby/nftmarket.go/lib/service"
	"github.com/labstack/echo/v4"
)

const defaultEventsPageSize = 100

type EventController struct {
	svc *service.MarketService
}

func NewEventController(svc *service.MarketService) *EventController {
	return &EventController{svc: svc}
}

type GetEventsQuery struct {
	After int64 `query:"after" validate:"gte=0"`
	Limit int   `query:"limit" validate:"gte=0,lte=1000"`
}

type GetEventsResponseBody struct {
	Events []models.MarketEvent `json:"events"`
}

// GetEvents godoc
// @Summary      Market event log
// @Description  Returns logged market events with an id greater than after, oldest first
// @Produce      json
// @Tags         Event
// @Param        after  query     int  false  "Last seen event id"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  GetEventsResponseBody
// @Failure      400    {object}  responses.ErrorResponse
// @Router       /v2/events [get]
func (controller *EventController) GetEvents(c echo.Context) error {
	var query GetEventsQuery
	if err := c.Bind(&query); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&query); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if query.Limit == 0 {
		query.Limit = defaultEventsPageSize
	}
	events, err := controller.svc.Events(c.Request().Context(), query.After, query.Limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &GetEventsResponseBody{Events: events})
}
