package service

import (
	"context"
	"testing"

	"github.com/getAlby/nftmarket.go/db/dbtest"
	"github.com/getAlby/nftmarket.go/lib/ledger"
	"github.com/getAlby/nftmarket.go/lib/logging"
	"github.com/stretchr/testify/require"
)

const (
	testAdmin       = "admin"
	testMarketplace = "marketplace"
	testCollection  = "punks"
)

func newTestService(t *testing.T) (*MarketService, *ledger.Ledger) {
	t.Helper()
	logger := logging.Logger("")
	l := ledger.New()
	svc := &MarketService{
		Config: &Config{
			AdministratorAddress: testAdmin,
			MarketplaceAddress:   testMarketplace,
			DefaultFeePercentage: 2,
			WebhookEventTypes:    EventTypeList{"*"},
		},
		DB:          dbtest.Open(t),
		Assets:      l,
		Payments:    l,
		Ledger:      l,
		Admin:       NewStaticAdministrator(testAdmin),
		Logger:      logger,
		EventPubSub: NewPubsub(),
	}
	svc.Custodian = NewCustodian(l, testMarketplace, logger)
	l.RegisterAssetReceiver(testMarketplace, svc.Custodian)
	_, err := svc.EnsureFeeConfig(context.Background())
	require.NoError(t, err)
	return svc, l
}

// mintForSale mints an asset to owner and approves the marketplace for it
func mintForSale(t *testing.T, svc *MarketService, l *ledger.Ledger, tokenID uint64, owner string) {
	t.Helper()
	ctx := context.Background()
	_, err := l.Mint(ctx, svc.DB, testCollection, tokenID, owner)
	require.NoError(t, err)
	require.NoError(t, l.SetApprovalForAll(ctx, svc.DB, testCollection, owner, testMarketplace, true))
}

func fund(t *testing.T, svc *MarketService, l *ledger.Ledger, address string, amount int64) {
	t.Helper()
	_, err := l.Deposit(context.Background(), svc.DB, address, amount)
	require.NoError(t, err)
}

func balance(t *testing.T, svc *MarketService, l *ledger.Ledger, address string) int64 {
	t.Helper()
	b, err := l.BalanceFor(context.Background(), svc.DB, address)
	require.NoError(t, err)
	return b
}

func owner(t *testing.T, svc *MarketService, l *ledger.Ledger, tokenID uint64) string {
	t.Helper()
	o, err := l.OwnerOf(context.Background(), svc.DB, testCollection, tokenID)
	require.NoError(t, err)
	return o
}

func eventTypes(t *testing.T, svc *MarketService) []string {
	t.Helper()
	events, err := svc.Events(context.Background(), 0, 0)
	require.NoError(t, err)
	types := []string{}
	for _, event := range events {
		types = append(types, event.Type)
	}
	return types
}
