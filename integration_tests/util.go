package integration_tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/getAlby/nftmarket.go/db"
	"github.com/getAlby/nftmarket.go/db/dbtest"
	"github.com/getAlby/nftmarket.go/db/migrations"
	"github.com/getAlby/nftmarket.go/lib/ledger"
	"github.com/getAlby/nftmarket.go/lib/logging"
	"github.com/getAlby/nftmarket.go/lib/responses"
	"github.com/getAlby/nftmarket.go/lib/security"
	"github.com/getAlby/nftmarket.go/lib/service"
	"github.com/getAlby/nftmarket.go/lib/tokens"
	"github.com/getAlby/nftmarket.go/lib/transport"
	"github.com/getAlby/nftmarket.go/rabbitmq"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

const (
	testAdminToken  = "admin-token"
	testMarketplace = "marketplace"
	testCollection  = "punks"
)

// MarketTestServiceInit wires a service against a fresh in-memory database and,
// if RABBITMQ_URI is set, a real broker.
func MarketTestServiceInit(administrator string) (svc *service.MarketService, l *ledger.Ledger, err error) {
	c := &service.Config{
		DatabaseUri:                 dbtest.DSN(),
		JWTSecret:                   []byte("SECRET"),
		JWTAccessTokenExpiry:        3600,
		AdminToken:                  testAdminToken,
		AdministratorAddress:        administrator,
		MarketplaceAddress:          testMarketplace,
		DefaultFeePercentage:        2,
		AuthMaxClockSkew:            300,
		StrictRateLimit:             1000,
		BurstRateLimit:              1000,
		WebhookEventTypes:           service.EventTypeList{"*"},
		RabbitMQMarketEventExchange: "test_nftmarket_event",
	}

	var rabbitmqClient rabbitmq.Client
	if rabbitmqUri, ok := os.LookupEnv("RABBITMQ_URI"); ok {
		c.RabbitMQUri = rabbitmqUri
		rabbitmqClient, err = rabbitmq.Dial(c.RabbitMQUri,
			rabbitmq.WithMarketEventExchange(c.RabbitMQMarketEventExchange),
		)
		if err != nil {
			return nil, nil, err
		}
	}

	dbConn, err := db.Open(c)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	ctx := context.Background()
	if _, err = migrations.Migrate(ctx, dbConn); err != nil {
		return nil, nil, fmt.Errorf("failed to migrate: %w", err)
	}

	logger := logging.Logger(c.LogFilePath)
	l = ledger.New()
	svc = &service.MarketService{
		Config:         c,
		DB:             dbConn,
		Assets:         l,
		Payments:       l,
		Ledger:         l,
		Admin:          service.NewStaticAdministrator(administrator),
		Logger:         logger,
		EventPubSub:    service.NewPubsub(),
		RabbitMQClient: rabbitmqClient,
	}
	svc.Custodian = service.NewCustodian(l, testMarketplace, logger)
	l.RegisterAssetReceiver(testMarketplace, svc.Custodian)
	if _, err = svc.EnsureFeeConfig(ctx); err != nil {
		return nil, nil, err
	}
	return svc, l, nil
}

// newTestEcho builds the echo app the way the server does
func newTestEcho(svc *service.MarketService) *echo.Echo {
	c := svc.Config
	e := transport.InitEcho(c, svc.Logger)
	logMw := transport.CreateLoggingMiddleware(svc.Logger)
	strictRateLimitMiddleware := transport.CreateRateLimitMiddleware(c.StrictRateLimit, c.BurstRateLimit)
	secured := e.Group("", tokens.Middleware(c.JWTSecret), logMw)
	securedWithStrictRateLimit := e.Group("", tokens.Middleware(c.JWTSecret), strictRateLimitMiddleware, logMw)
	transport.RegisterV2Endpoints(svc, e, secured, securedWithStrictRateLimit, strictRateLimitMiddleware, tokens.AdminTokenMiddleware(c.AdminToken), logMw)
	return e
}

type testUser struct {
	key     *btcec.PrivateKey
	address string
	token   string
}

func newTestUser() (*testUser, error) {
	key, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	return &testUser{key: key, address: security.Address(key.PubKey())}, nil
}

type TestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (suite *TestSuite) request(method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		assert.NoError(suite.T(), json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	return rec
}

// login signs the login challenge with the user's key and stores the access token
func (suite *TestSuite) login(user *testUser) {
	timestamp := time.Now().Unix()
	rec := suite.request(http.MethodPost, "/auth", "", map[string]interface{}{
		"pubkey":    user.address,
		"signature": security.SignLogin(user.key, timestamp),
		"timestamp": timestamp,
	})
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	response := &ExpectedAuthResponseBody{}
	suite.Require().NoError(json.NewDecoder(rec.Body).Decode(response))
	suite.Require().Equal(user.address, response.Address)
	user.token = response.AccessToken
}

func (suite *TestSuite) decode(rec *httptest.ResponseRecorder, target interface{}) {
	suite.Require().NoError(json.NewDecoder(rec.Body).Decode(target))
}

func checkErrResponse(suite *TestSuite, rec *httptest.ResponseRecorder, expected responses.ErrorResponse) {
	errorResponse := &responses.ErrorResponse{}
	assert.Equal(suite.T(), expected.HttpStatusCode, rec.Code)
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(errorResponse))
	assert.Equal(suite.T(), expected.Code, errorResponse.Code)
}
