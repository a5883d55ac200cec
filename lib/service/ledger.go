package service

import (
	"context"

	"github.com/getAlby/nftmarket.go/db/models"
	"github.com/uptrace/bun"
)

// LedgerAdmin is the administrative surface of the ledger the marketplace
// settles against. It is only needed by the HTTP API.
type LedgerAdmin interface {
	Mint(ctx context.Context, db bun.IDB, collection string, tokenID uint64, owner string) (*models.AssetHolding, error)
	Deposit(ctx context.Context, db bun.IDB, address string, amount int64) (*models.Account, error)
	SetApprovalForAll(ctx context.Context, db bun.IDB, collection, owner, operator string, approved bool) error
	BalanceFor(ctx context.Context, db bun.IDB, address string) (int64, error)
	Entries(ctx context.Context, db bun.IDB, address string, limit int) ([]models.TransactionEntry, error)
	OwnerOf(ctx context.Context, db bun.IDB, collection string, tokenID uint64) (string, error)
}

// Ledger mutations run as actions so they never interleave with a settlement.

func (svc *MarketService) MintAsset(ctx context.Context, collection string, tokenID uint64, owner string) (*models.AssetHolding, error) {
	var holding *models.AssetHolding
	err := svc.runAction(ctx, "mint", func(ctx context.Context, tx bun.Tx) error {
		var err error
		holding, err = svc.Ledger.Mint(ctx, tx, collection, tokenID, owner)
		return err
	})
	if err != nil {
		return nil, err
	}
	svc.Logger.Infof("Minted %s/%d to %s", collection, tokenID, owner)
	return holding, nil
}

func (svc *MarketService) DepositValue(ctx context.Context, address string, amount int64) (*models.Account, error) {
	var account *models.Account
	err := svc.runAction(ctx, "deposit", func(ctx context.Context, tx bun.Tx) error {
		var err error
		account, err = svc.Ledger.Deposit(ctx, tx, address, amount)
		return err
	})
	if err != nil {
		return nil, err
	}
	svc.Logger.Infof("Deposited %d to %s", amount, address)
	return account, nil
}

// SetApproval lets operator move the assets owner holds in collection.
// An empty operator means the marketplace holding address.
func (svc *MarketService) SetApproval(ctx context.Context, collection, owner, operator string, approved bool) error {
	if operator == "" {
		operator = svc.Custodian.HoldingAddress()
	}
	return svc.runAction(ctx, "set approval", func(ctx context.Context, tx bun.Tx) error {
		return svc.Ledger.SetApprovalForAll(ctx, tx, collection, owner, operator, approved)
	})
}

func (svc *MarketService) Balance(ctx context.Context, address string) (int64, error) {
	return svc.Ledger.BalanceFor(ctx, svc.idb(ctx), address)
}

func (svc *MarketService) TransactionEntriesFor(ctx context.Context, address string, limit int) ([]models.TransactionEntry, error) {
	return svc.Ledger.Entries(ctx, svc.idb(ctx), address, limit)
}

func (svc *MarketService) AssetHolder(ctx context.Context, collection string, tokenID uint64) (string, error) {
	return svc.Ledger.OwnerOf(ctx, svc.idb(ctx), collection, tokenID)
}
