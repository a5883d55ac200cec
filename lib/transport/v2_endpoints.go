package transport

import (
	"time"

	v2controllers "github.com/getAlby/nftmarket.go/controllers_v2"
	"github.com/getAlby/nftmarket.go/lib/service"
	"github.com/labstack/echo/v4"
)

func RegisterV2Endpoints(svc *service.MarketService, e *echo.Echo, secured *echo.Group, securedWithStrictRateLimit *echo.Group, strictRateLimitMiddleware echo.MiddlewareFunc, adminMw echo.MiddlewareFunc, logMw echo.MiddlewareFunc) {
	e.POST("/auth", v2controllers.NewAuthController(svc).Auth, strictRateLimitMiddleware, logMw)
	infoMw := []echo.MiddlewareFunc{}
	if svc.Config.InfoCacheTTL > 0 {
		cacheMw, err := CreateCacheMiddleware(time.Duration(svc.Config.InfoCacheTTL) * time.Second)
		if err != nil {
			e.Logger.Errorf("Info cache disabled: %v", err)
		} else {
			infoMw = append(infoMw, cacheMw)
		}
	}
	e.GET("/v2/info", v2controllers.NewInfoController(svc).Info, infoMw...)

	listingCtrl := v2controllers.NewListingController(svc)
	e.GET("/v2/listings", listingCtrl.GetListings)
	e.GET("/v2/listings/:collection/:token_id", listingCtrl.GetListing)
	e.GET("/v2/listings/:collection/:token_id/sales", listingCtrl.GetSales)
	secured.POST("/v2/listings", listingCtrl.List)
	secured.PUT("/v2/listings/:collection/:token_id/price", listingCtrl.ChangePrice)
	secured.DELETE("/v2/listings/:collection/:token_id", listingCtrl.Unlist)
	securedWithStrictRateLimit.POST("/v2/listings/:collection/:token_id/buy", v2controllers.NewBuyController(svc).Buy)

	e.GET("/v2/collections/:collection/stats", v2controllers.NewStatsController(svc).CollectionStats)

	feeCtrl := v2controllers.NewFeeController(svc)
	e.GET("/v2/fees", feeCtrl.GetFee)
	secured.PUT("/v2/fees", feeCtrl.SetFee)

	e.GET("/v2/events", v2controllers.NewEventController(svc).GetEvents)

	ledgerCtrl := v2controllers.NewLedgerController(svc)
	secured.GET("/v2/balance", ledgerCtrl.Balance)
	secured.POST("/v2/assets/approvals", ledgerCtrl.SetApproval)
	e.GET("/v2/assets/:collection/:token_id", ledgerCtrl.GetAsset)
	//require admin token for ledger administration
	if svc.Config.AdminToken != "" {
		e.POST("/v2/admin/assets", ledgerCtrl.Mint, strictRateLimitMiddleware, adminMw, logMw)
		e.POST("/v2/admin/deposits", ledgerCtrl.Deposit, strictRateLimitMiddleware, adminMw, logMw)
	}
}
