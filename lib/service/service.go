package service

import (
	"context"
	"sync"

	"github.com/getAlby/nftmarket.go/rabbitmq"
	"github.com/uptrace/bun"
	"github.com/ziflex/lecho/v3"
	"golang.org/x/sync/semaphore"
)

// AssetTransferrer moves non-fungible assets between holders.
type AssetTransferrer interface {
	TransferFrom(ctx context.Context, db bun.IDB, operator, collection string, tokenID uint64, from, to string) error
	OwnerOf(ctx context.Context, db bun.IDB, collection string, tokenID uint64) (string, error)
}

// ValueTransferrer moves value between accounts. A rejected transfer returns an error.
type ValueTransferrer interface {
	Transfer(ctx context.Context, db bun.IDB, from, to string, amount int64, entryType string) error
}

type MarketService struct {
	Config         *Config
	DB             *bun.DB
	Assets         AssetTransferrer
	Payments       ValueTransferrer
	Ledger         LedgerAdmin
	Custodian      *Custodian
	Admin          Administrator
	Logger         *lecho.Logger
	EventPubSub    *Pubsub
	RabbitMQClient rabbitmq.Client

	// serializes actions, see runAction
	actionOnce sync.Once
	actionSem  *semaphore.Weighted
	// keeps events of consecutive actions in log order
	publishMu sync.Mutex
}

func (svc *MarketService) actions() *semaphore.Weighted {
	svc.actionOnce.Do(func() {
		svc.actionSem = semaphore.NewWeighted(1)
	})
	return svc.actionSem
}

// idb returns the transaction of the running action if ctx belongs to one
func (svc *MarketService) idb(ctx context.Context) bun.IDB {
	if frame := actionFrameFrom(ctx); frame != nil {
		return frame.tx
	}
	return svc.DB
}
