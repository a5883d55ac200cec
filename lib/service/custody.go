package service

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/ziflex/lecho/v3"
)

// Custodian moves assets between their owners and the marketplace holding address.
type Custodian struct {
	assets         AssetTransferrer
	holdingAddress string
	logger         *lecho.Logger
}

func NewCustodian(assets AssetTransferrer, holdingAddress string, logger *lecho.Logger) *Custodian {
	return &Custodian{
		assets:         assets,
		holdingAddress: holdingAddress,
		logger:         logger,
	}
}

func (c *Custodian) HoldingAddress() string {
	return c.holdingAddress
}

// TakeCustody moves the asset from its owner to the holding address.
// The owner must have approved the holding address as operator.
func (c *Custodian) TakeCustody(ctx context.Context, db bun.IDB, collection string, tokenID uint64, from string) error {
	err := c.assets.TransferFrom(ctx, db, c.holdingAddress, collection, tokenID, from, c.holdingAddress)
	if err != nil {
		return fmt.Errorf("%w: taking custody of %s/%d from %s: %w", ErrTransferRejected, collection, tokenID, from, err)
	}
	return nil
}

func (c *Custodian) ReleaseCustody(ctx context.Context, db bun.IDB, collection string, tokenID uint64, to string) error {
	err := c.assets.TransferFrom(ctx, db, c.holdingAddress, collection, tokenID, c.holdingAddress, to)
	if err != nil {
		return fmt.Errorf("%w: releasing %s/%d to %s: %w", ErrTransferRejected, collection, tokenID, to, err)
	}
	return nil
}

// Holds reports whether the asset is in custody of the holding address
func (c *Custodian) Holds(ctx context.Context, db bun.IDB, collection string, tokenID uint64) (bool, error) {
	owner, err := c.assets.OwnerOf(ctx, db, collection, tokenID)
	if err != nil {
		return false, err
	}
	return owner == c.holdingAddress, nil
}

// OnAssetReceived accepts every asset pushed to the holding address.
func (c *Custodian) OnAssetReceived(ctx context.Context, operator, from, collection string, tokenID uint64) error {
	c.logger.Debugf("Received %s/%d from %s (operator %s)", collection, tokenID, from, operator)
	return nil
}
