package integration_tests

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"testing"

	"github.com/getAlby/nftmarket.go/common"
	"github.com/getAlby/nftmarket.go/lib/ledger"
	"github.com/getAlby/nftmarket.go/lib/responses"
	"github.com/getAlby/nftmarket.go/lib/service"
	"github.com/stretchr/testify/suite"
)

type MarketplaceTestSuite struct {
	TestSuite
	svc    *service.MarketService
	ledger *ledger.Ledger
	admin  *testUser
	seller *testUser
	buyer  *testUser
}

func (suite *MarketplaceTestSuite) SetupTest() {
	users := make([]*testUser, 3)
	for i := range users {
		user, err := newTestUser()
		if err != nil {
			log.Fatalf("Error creating test user: %v", err)
		}
		users[i] = user
	}
	suite.admin, suite.seller, suite.buyer = users[0], users[1], users[2]

	svc, l, err := MarketTestServiceInit(suite.admin.address)
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	suite.svc = svc
	suite.ledger = l
	suite.echo = newTestEcho(svc)
	for _, user := range users {
		suite.login(user)
	}
}

func (suite *MarketplaceTestSuite) TearDownTest() {
	suite.svc.DB.Close()
}

func (suite *MarketplaceTestSuite) mint(tokenID uint64, owner *testUser) {
	rec := suite.request(http.MethodPost, "/v2/admin/assets", testAdminToken, map[string]interface{}{
		"collection": testCollection,
		"token_id":   tokenID,
		"owner":      owner.address,
	})
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
}

func (suite *MarketplaceTestSuite) approveMarketplace(owner *testUser) {
	rec := suite.request(http.MethodPost, "/v2/assets/approvals", owner.token, map[string]interface{}{
		"collection": testCollection,
		"approved":   true,
	})
	suite.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())
}

func (suite *MarketplaceTestSuite) deposit(user *testUser, amount int64) {
	rec := suite.request(http.MethodPost, "/v2/admin/deposits", testAdminToken, map[string]interface{}{
		"address": user.address,
		"amount":  amount,
	})
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
}

func (suite *MarketplaceTestSuite) list(tokenID uint64, price int64) {
	rec := suite.request(http.MethodPost, "/v2/listings", suite.seller.token, map[string]interface{}{
		"collection": testCollection,
		"token_id":   tokenID,
		"price":      price,
	})
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
}

func (suite *MarketplaceTestSuite) balanceOf(user *testUser) int64 {
	rec := suite.request(http.MethodGet, "/v2/balance", user.token, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	balance := &ExpectedBalanceResponse{}
	suite.decode(rec, balance)
	return balance.Balance
}

func (suite *MarketplaceTestSuite) ownerOf(tokenID uint64) string {
	rec := suite.request(http.MethodGet, fmt.Sprintf("/v2/assets/%s/%d", testCollection, tokenID), "", nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	asset := &ExpectedAssetResponse{}
	suite.decode(rec, asset)
	return asset.Owner
}

func (suite *MarketplaceTestSuite) stats() *ExpectedStatsResponse {
	rec := suite.request(http.MethodGet, "/v2/collections/"+testCollection+"/stats", "", nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	stats := &ExpectedStatsResponse{}
	suite.decode(rec, stats)
	return stats
}

func (suite *MarketplaceTestSuite) TestListAndBuy() {
	suite.mint(5, suite.seller)
	suite.approveMarketplace(suite.seller)
	suite.deposit(suite.buyer, 100)

	suite.list(5, 100)
	suite.Equal(testMarketplace, suite.ownerOf(5))
	suite.Equal(&ExpectedStatsResponse{TotalListings: 1}, suite.stats())

	rec := suite.request(http.MethodPost, "/v2/listings/punks/5/buy", suite.buyer.token, map[string]interface{}{"payment": 100})
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	sale := &ExpectedSale{}
	suite.decode(rec, sale)
	suite.Equal(&ExpectedSale{
		Seller:        suite.seller.address,
		Buyer:         suite.buyer.address,
		Price:         100,
		Payment:       100,
		Fee:           2,
		Proceeds:      98,
		FeePercentage: 2,
	}, sale)

	suite.Equal(int64(2), suite.balanceOf(suite.admin))
	suite.Equal(int64(98), suite.balanceOf(suite.seller))
	suite.Equal(int64(0), suite.balanceOf(suite.buyer))
	suite.Equal(suite.buyer.address, suite.ownerOf(5))
	suite.Equal(&ExpectedStatsResponse{TotalSales: 1}, suite.stats())

	rec = suite.request(http.MethodGet, "/v2/listings/punks/5", "", nil)
	listing := &ExpectedListing{}
	suite.decode(rec, listing)
	suite.False(listing.Active)
	suite.Equal(suite.seller.address, listing.Seller)
	suite.Equal(int64(100), listing.Price)

	rec = suite.request(http.MethodPost, "/v2/listings/punks/5/buy", suite.buyer.token, map[string]interface{}{"payment": 100})
	checkErrResponse(&suite.TestSuite, rec, responses.NotListedError)

	events, err := suite.svc.Events(context.Background(), 0, 0)
	suite.Require().NoError(err)
	types := []string{}
	for _, event := range events {
		types = append(types, event.Type)
	}
	suite.Equal([]string{
		common.EventTypeListed, common.EventTypeStatsUpdated,
		common.EventTypeSold, common.EventTypeStatsUpdated,
	}, types)
}

func (suite *MarketplaceTestSuite) TestListAndUnlist() {
	suite.mint(5, suite.seller)
	suite.approveMarketplace(suite.seller)
	suite.list(5, 100)

	rec := suite.request(http.MethodDelete, "/v2/listings/punks/5", suite.buyer.token, nil)
	checkErrResponse(&suite.TestSuite, rec, responses.NotSellerError)

	rec = suite.request(http.MethodDelete, "/v2/listings/punks/5", suite.seller.token, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Equal(suite.seller.address, suite.ownerOf(5))
	suite.Equal(&ExpectedStatsResponse{}, suite.stats())

	rec = suite.request(http.MethodGet, "/v2/listings/punks/5", "", nil)
	checkErrResponse(&suite.TestSuite, rec, responses.NotListedError)
	rec = suite.request(http.MethodPost, "/v2/listings/punks/5/buy", suite.buyer.token, map[string]interface{}{"payment": 100})
	checkErrResponse(&suite.TestSuite, rec, responses.NotListedError)
}

func (suite *MarketplaceTestSuite) TestFeeChangeAppliesToPendingListing() {
	suite.mint(5, suite.seller)
	suite.approveMarketplace(suite.seller)
	suite.deposit(suite.buyer, 300)
	suite.list(5, 200)

	rec := suite.request(http.MethodPut, "/v2/fees", suite.seller.token, map[string]interface{}{"fee_percentage": 10})
	checkErrResponse(&suite.TestSuite, rec, responses.NotAdministratorError)
	rec = suite.request(http.MethodPut, "/v2/fees", suite.admin.token, map[string]interface{}{"fee_percentage": 100})
	checkErrResponse(&suite.TestSuite, rec, responses.InvalidFeePercentageError)
	rec = suite.request(http.MethodPut, "/v2/fees", suite.admin.token, map[string]interface{}{"fee_percentage": 10})
	suite.Require().Equal(http.StatusOK, rec.Code)

	rec = suite.request(http.MethodPost, "/v2/listings/punks/5/buy", suite.buyer.token, map[string]interface{}{"payment": 250})
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	suite.Equal(int64(20), suite.balanceOf(suite.admin))
	suite.Equal(int64(180), suite.balanceOf(suite.seller))
	// overpayment is refunded
	suite.Equal(int64(100), suite.balanceOf(suite.buyer))
}

func (suite *MarketplaceTestSuite) TestListWithoutApproval() {
	suite.mint(5, suite.seller)
	rec := suite.request(http.MethodPost, "/v2/listings", suite.seller.token, map[string]interface{}{
		"collection": testCollection,
		"token_id":   5,
		"price":      100,
	})
	checkErrResponse(&suite.TestSuite, rec, responses.TransferRejectedError)
	suite.Equal(suite.seller.address, suite.ownerOf(5))
	suite.Equal(&ExpectedStatsResponse{}, suite.stats())

	events, err := suite.svc.Events(context.Background(), 0, 0)
	suite.Require().NoError(err)
	suite.Empty(events)
}

func (suite *MarketplaceTestSuite) TestBuyWithoutFunds() {
	suite.mint(5, suite.seller)
	suite.approveMarketplace(suite.seller)
	suite.list(5, 100)

	rec := suite.request(http.MethodPost, "/v2/listings/punks/5/buy", suite.buyer.token, map[string]interface{}{"payment": 100})
	checkErrResponse(&suite.TestSuite, rec, responses.TransferRejectedError)
	suite.Equal(testMarketplace, suite.ownerOf(5))
	suite.Equal(&ExpectedStatsResponse{TotalListings: 1}, suite.stats())
}

func TestMarketplaceTestSuite(t *testing.T) {
	suite.Run(t, new(MarketplaceTestSuite))
}
