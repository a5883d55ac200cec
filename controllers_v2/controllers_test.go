package v2controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getAlby/nftmarket.go/db/dbtest"
	"github.com/getAlby/nftmarket.go/db/models"
	"github.com/getAlby/nftmarket.go/lib"
	"github.com/getAlby/nftmarket.go/lib/ledger"
	"github.com/getAlby/nftmarket.go/lib/logging"
	"github.com/getAlby/nftmarket.go/lib/responses"
	"github.com/getAlby/nftmarket.go/lib/service"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

const (
	admin       = "admin"
	marketplace = "marketplace"
	collection  = "punks"
)

type ControllerTestSuite struct {
	suite.Suite
	svc *service.MarketService
	e   *echo.Echo
}

// callerFromHeader stands in for the JWT middleware
func callerFromHeader(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Set("Address", c.Request().Header.Get("X-Address"))
		return next(c)
	}
}

func (suite *ControllerTestSuite) SetupTest() {
	logger := logging.Logger("")
	l := ledger.New()
	svc := &service.MarketService{
		Config: &service.Config{
			AdministratorAddress: admin,
			MarketplaceAddress:   marketplace,
			DefaultFeePercentage: 2,
		},
		DB:          dbtest.Open(suite.T()),
		Assets:      l,
		Payments:    l,
		Ledger:      l,
		Admin:       service.NewStaticAdministrator(admin),
		Logger:      logger,
		EventPubSub: service.NewPubsub(),
	}
	svc.Custodian = service.NewCustodian(l, marketplace, logger)
	l.RegisterAssetReceiver(marketplace, svc.Custodian)
	_, err := svc.EnsureFeeConfig(context.Background())
	suite.Require().NoError(err)
	suite.svc = svc

	e := echo.New()
	e.HTTPErrorHandler = responses.HTTPErrorHandler
	e.Validator = &lib.CustomValidator{Validator: validator.New()}
	e.Logger = logger
	secured := e.Group("", callerFromHeader)

	listingCtrl := NewListingController(svc)
	ledgerCtrl := NewLedgerController(svc)
	feeCtrl := NewFeeController(svc)
	e.GET("/v2/info", NewInfoController(svc).Info)
	e.GET("/v2/listings", listingCtrl.GetListings)
	e.GET("/v2/listings/:collection/:token_id", listingCtrl.GetListing)
	e.GET("/v2/listings/:collection/:token_id/sales", listingCtrl.GetSales)
	secured.POST("/v2/listings", listingCtrl.List)
	secured.PUT("/v2/listings/:collection/:token_id/price", listingCtrl.ChangePrice)
	secured.DELETE("/v2/listings/:collection/:token_id", listingCtrl.Unlist)
	secured.POST("/v2/listings/:collection/:token_id/buy", NewBuyController(svc).Buy)
	e.GET("/v2/collections/:collection/stats", NewStatsController(svc).CollectionStats)
	e.GET("/v2/fees", feeCtrl.GetFee)
	secured.PUT("/v2/fees", feeCtrl.SetFee)
	e.GET("/v2/events", NewEventController(svc).GetEvents)
	secured.GET("/v2/balance", ledgerCtrl.Balance)
	secured.POST("/v2/assets/approvals", ledgerCtrl.SetApproval)
	e.GET("/v2/assets/:collection/:token_id", ledgerCtrl.GetAsset)
	e.POST("/v2/admin/assets", ledgerCtrl.Mint)
	e.POST("/v2/admin/deposits", ledgerCtrl.Deposit)
	suite.e = e
}

func (suite *ControllerTestSuite) do(method, path, caller string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if caller != "" {
		req.Header.Set("X-Address", caller)
	}
	rec := httptest.NewRecorder()
	suite.e.ServeHTTP(rec, req)
	return rec
}

func (suite *ControllerTestSuite) decode(rec *httptest.ResponseRecorder, target interface{}) {
	suite.Require().NoError(json.NewDecoder(rec.Body).Decode(target))
}

func (suite *ControllerTestSuite) assertError(rec *httptest.ResponseRecorder, expected responses.ErrorResponse) {
	suite.Equal(expected.HttpStatusCode, rec.Code)
	errResponse := &responses.ErrorResponse{}
	suite.decode(rec, errResponse)
	suite.True(errResponse.Error)
	suite.Equal(expected.Code, errResponse.Code)
}

// prepareSale mints token 1 to alice, approves the marketplace and funds bob
func (suite *ControllerTestSuite) prepareSale() {
	rec := suite.do(http.MethodPost, "/v2/admin/assets", "", &MintRequestBody{Collection: collection, TokenID: 1, Owner: "alice"})
	suite.Require().Equal(http.StatusOK, rec.Code)
	approved := true
	rec = suite.do(http.MethodPost, "/v2/assets/approvals", "alice", &ApprovalRequestBody{Collection: collection, Approved: &approved})
	suite.Require().Equal(http.StatusNoContent, rec.Code)
	rec = suite.do(http.MethodPost, "/v2/admin/deposits", "", &DepositRequestBody{Address: "bob", Amount: 150})
	suite.Require().Equal(http.StatusOK, rec.Code)
}

func (suite *ControllerTestSuite) TestInfo() {
	rec := suite.do(http.MethodGet, "/v2/info", "", nil)
	suite.Equal(http.StatusOK, rec.Code)
	info := &InfoResponse{}
	suite.decode(rec, info)
	suite.Equal(&InfoResponse{MarketplaceAddress: marketplace, Administrator: admin, FeePercentage: 2}, info)
}

func (suite *ControllerTestSuite) TestListAndBuy() {
	suite.prepareSale()

	rec := suite.do(http.MethodPost, "/v2/listings", "alice", &ListRequestBody{Collection: collection, TokenID: 1, Price: 100})
	suite.Require().Equal(http.StatusOK, rec.Code)
	listing := &models.Listing{}
	suite.decode(rec, listing)
	suite.True(listing.Active)
	suite.Equal("alice", listing.Seller)

	rec = suite.do(http.MethodGet, "/v2/assets/punks/1", "", nil)
	asset := &AssetResponse{}
	suite.decode(rec, asset)
	suite.Equal(marketplace, asset.Owner)

	rec = suite.do(http.MethodGet, "/v2/listings?collection=punks", "", nil)
	listings := &GetListingsResponseBody{}
	suite.decode(rec, listings)
	suite.Len(listings.Listings, 1)

	rec = suite.do(http.MethodPost, "/v2/listings/punks/1/buy", "bob", &BuyRequestBody{Payment: 120})
	suite.Require().Equal(http.StatusOK, rec.Code)
	sale := &models.Sale{}
	suite.decode(rec, sale)
	suite.Equal(int64(2), sale.Fee)
	suite.Equal(int64(98), sale.Proceeds)
	suite.Equal(int64(20), sale.Refund)

	rec = suite.do(http.MethodGet, "/v2/listings/punks/1", "", nil)
	suite.Equal(http.StatusOK, rec.Code)
	listing = &models.Listing{}
	suite.decode(rec, listing)
	suite.False(listing.Active)
	suite.Equal("bob", listing.Buyer)

	rec = suite.do(http.MethodGet, "/v2/assets/punks/1", "", nil)
	asset = &AssetResponse{}
	suite.decode(rec, asset)
	suite.Equal("bob", asset.Owner)

	rec = suite.do(http.MethodGet, "/v2/balance", "alice", nil)
	balance := &BalanceResponse{}
	suite.decode(rec, balance)
	suite.Equal(int64(98), balance.Balance)
	suite.Require().Len(balance.Entries, 1)
	suite.Equal("proceeds", balance.Entries[0].EntryType)
	suite.Equal(marketplace, balance.Entries[0].From)

	rec = suite.do(http.MethodGet, "/v2/balance", "bob", nil)
	balance = &BalanceResponse{}
	suite.decode(rec, balance)
	suite.Equal(int64(50), balance.Balance)

	rec = suite.do(http.MethodGet, "/v2/collections/punks/stats", "", nil)
	stats := &CollectionStatsResponse{}
	suite.decode(rec, stats)
	suite.Equal(&CollectionStatsResponse{Collection: collection, TotalListings: 0, TotalSales: 1}, stats)

	rec = suite.do(http.MethodGet, "/v2/listings/punks/1/sales", "", nil)
	sales := &GetSalesResponseBody{}
	suite.decode(rec, sales)
	suite.Len(sales.Sales, 1)

	rec = suite.do(http.MethodGet, "/v2/events?limit=2", "", nil)
	events := &GetEventsResponseBody{}
	suite.decode(rec, events)
	suite.Require().Len(events.Events, 2)
	suite.Equal("listed", events.Events[0].Type)

	rec = suite.do(http.MethodGet, "/v2/events?after="+jsonInt(events.Events[1].ID), "", nil)
	events = &GetEventsResponseBody{}
	suite.decode(rec, events)
	suite.Require().Len(events.Events, 2)
	suite.Equal("sold", events.Events[0].Type)
	suite.Equal("stats_updated", events.Events[1].Type)

	// a sold listing cannot be bought again
	rec = suite.do(http.MethodPost, "/v2/listings/punks/1/buy", "bob", &BuyRequestBody{Payment: 100})
	suite.assertError(rec, responses.NotListedError)
}

func (suite *ControllerTestSuite) TestSellerActions() {
	suite.prepareSale()
	rec := suite.do(http.MethodPost, "/v2/listings", "alice", &ListRequestBody{Collection: collection, TokenID: 1, Price: 100})
	suite.Require().Equal(http.StatusOK, rec.Code)

	rec = suite.do(http.MethodPut, "/v2/listings/punks/1/price", "bob", &ChangePriceRequestBody{Price: 1})
	suite.assertError(rec, responses.NotSellerError)
	rec = suite.do(http.MethodPut, "/v2/listings/punks/1/price", "alice", &ChangePriceRequestBody{Price: 0})
	suite.assertError(rec, responses.InvalidPriceError)
	rec = suite.do(http.MethodPut, "/v2/listings/punks/1/price", "alice", &ChangePriceRequestBody{Price: 80})
	suite.Equal(http.StatusOK, rec.Code)
	listing := &models.Listing{}
	suite.decode(rec, listing)
	suite.Equal(int64(80), listing.Price)

	rec = suite.do(http.MethodPost, "/v2/listings", "alice", &ListRequestBody{Collection: collection, TokenID: 1, Price: 100})
	suite.assertError(rec, responses.AlreadyListedError)

	rec = suite.do(http.MethodDelete, "/v2/listings/punks/1", "bob", nil)
	suite.assertError(rec, responses.NotSellerError)
	rec = suite.do(http.MethodDelete, "/v2/listings/punks/1", "alice", nil)
	suite.Equal(http.StatusOK, rec.Code)

	rec = suite.do(http.MethodGet, "/v2/listings/punks/1", "", nil)
	suite.assertError(rec, responses.NotListedError)
	rec = suite.do(http.MethodGet, "/v2/assets/punks/1", "", nil)
	asset := &AssetResponse{}
	suite.decode(rec, asset)
	suite.Equal("alice", asset.Owner)
}

func (suite *ControllerTestSuite) TestSettlementErrors() {
	suite.prepareSale()

	rec := suite.do(http.MethodPost, "/v2/listings/punks/1/buy", "bob", &BuyRequestBody{Payment: 100})
	suite.assertError(rec, responses.NotListedError)

	rec = suite.do(http.MethodPost, "/v2/listings", "alice", &ListRequestBody{Collection: collection, TokenID: 1, Price: 0})
	suite.assertError(rec, responses.InvalidPriceError)

	// carol never approved the marketplace
	rec = suite.do(http.MethodPost, "/v2/admin/assets", "", &MintRequestBody{Collection: collection, TokenID: 2, Owner: "carol"})
	suite.Require().Equal(http.StatusOK, rec.Code)
	rec = suite.do(http.MethodPost, "/v2/listings", "carol", &ListRequestBody{Collection: collection, TokenID: 2, Price: 10})
	suite.assertError(rec, responses.TransferRejectedError)

	rec = suite.do(http.MethodPost, "/v2/listings", "alice", &ListRequestBody{Collection: collection, TokenID: 1, Price: 100})
	suite.Require().Equal(http.StatusOK, rec.Code)
	rec = suite.do(http.MethodPost, "/v2/listings/punks/1/buy", "bob", &BuyRequestBody{Payment: 99})
	suite.assertError(rec, responses.InsufficientPaymentError)
	rec = suite.do(http.MethodPost, "/v2/listings/punks/1/buy", "dave", &BuyRequestBody{Payment: 100})
	suite.assertError(rec, responses.TransferRejectedError)
	rec = suite.do(http.MethodPost, "/v2/listings/punks/1/buy", "bob", &BuyRequestBody{Payment: -1})
	suite.assertError(rec, responses.BadArgumentsError)

	rec = suite.do(http.MethodGet, "/v2/listings/punks/abc", "", nil)
	suite.assertError(rec, responses.BadArgumentsError)
	rec = suite.do(http.MethodGet, "/v2/assets/punks/99", "", nil)
	suite.assertError(rec, responses.UnknownAssetError)
	rec = suite.do(http.MethodPost, "/v2/admin/assets", "", &MintRequestBody{Collection: collection, TokenID: 1, Owner: "carol"})
	suite.assertError(rec, responses.AssetExistsError)
	rec = suite.do(http.MethodPost, "/v2/admin/deposits", "", &DepositRequestBody{Address: "bob", Amount: 0})
	suite.assertError(rec, responses.BadArgumentsError)
}

func (suite *ControllerTestSuite) TestFees() {
	fee := int64(100)
	rec := suite.do(http.MethodPut, "/v2/fees", admin, &SetFeeRequestBody{FeePercentage: &fee})
	suite.assertError(rec, responses.InvalidFeePercentageError)

	fee = 5
	rec = suite.do(http.MethodPut, "/v2/fees", "alice", &SetFeeRequestBody{FeePercentage: &fee})
	suite.assertError(rec, responses.NotAdministratorError)

	rec = suite.do(http.MethodPut, "/v2/fees", admin, map[string]string{})
	suite.assertError(rec, responses.BadArgumentsError)

	rec = suite.do(http.MethodPut, "/v2/fees", admin, &SetFeeRequestBody{FeePercentage: &fee})
	suite.Equal(http.StatusOK, rec.Code)

	rec = suite.do(http.MethodGet, "/v2/fees", "", nil)
	response := &FeeResponse{}
	suite.decode(rec, response)
	suite.Equal(int64(5), response.FeePercentage)
}

func TestControllerTestSuite(t *testing.T) {
	suite.Run(t, new(ControllerTestSuite))
}

func TestAssetKey(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("collection", "token_id")

	c.SetParamValues("punks", "18446744073709551615")
	name, tokenID, ok := assetKey(c)
	assert.True(t, ok)
	assert.Equal(t, "punks", name)
	assert.Equal(t, uint64(18446744073709551615), tokenID)

	c.SetParamValues("punks", "-1")
	_, _, ok = assetKey(c)
	assert.False(t, ok)

	c.SetParamValues("", "1")
	_, _, ok = assetKey(c)
	assert.False(t, ok)
}

func jsonInt(i int64) string {
	b, _ := json.Marshal(i)
	return string(b)
}
