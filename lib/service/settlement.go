package service

import (
	"context"
	"fmt"
	"time"

	"github.com/getAlby/nftmarket.go/common"
	"github.com/getAlby/nftmarket.go/db/models"
	"github.com/uptrace/bun"
)

// List takes custody of the asset and advertises it at price.
// The seller must have approved the marketplace holding address as operator.
func (svc *MarketService) List(ctx context.Context, collection string, tokenID uint64, seller string, price int64) (*models.Listing, error) {
	var listing *models.Listing
	err := svc.runAction(ctx, "list", func(ctx context.Context, tx bun.Tx) error {
		if price <= 0 {
			return ErrInvalidPrice
		}
		existing, err := svc.findListing(ctx, tx, collection, tokenID)
		if err != nil {
			return err
		}
		if existing != nil && existing.Active {
			return ErrAlreadyListed
		}
		if err := svc.Custodian.TakeCustody(ctx, tx, collection, tokenID, seller); err != nil {
			return err
		}
		listing, err = svc.createListing(ctx, tx, collection, tokenID, seller, price)
		if err != nil {
			return err
		}
		if err := svc.queueEvent(ctx, tx, listedEvent(listing)); err != nil {
			return err
		}
		// counters follow the records: relisting replaces the sold one
		var replacedSales int64
		if existing != nil {
			replacedSales = -1
		}
		_, err = svc.adjustStats(ctx, tx, collection, 1, replacedSales)
		return err
	})
	if err != nil {
		return nil, err
	}
	svc.Logger.Infof("Listed %s/%d for %d by %s", collection, tokenID, price, seller)
	return listing, nil
}

// Buy settles a sale of a listed asset.
// The listing is finalized and the asset released before any value is paid out,
// so receivers notified during the payout only observe the completed sale.
// A payment above the price is refunded to the buyer.
func (svc *MarketService) Buy(ctx context.Context, collection string, tokenID uint64, buyer string, payment int64) (*models.Sale, error) {
	var sale *models.Sale
	err := svc.runAction(ctx, "buy", func(ctx context.Context, tx bun.Tx) error {
		listing, err := svc.findListing(ctx, tx, collection, tokenID)
		if err != nil {
			return err
		}
		if listing == nil || !listing.Active {
			return ErrNotListed
		}
		if payment < listing.Price {
			return fmt.Errorf("%w: %d < %d", ErrInsufficientPayment, payment, listing.Price)
		}

		holdingAddress := svc.Custodian.HoldingAddress()
		if err := svc.transferValue(ctx, tx, buyer, holdingAddress, payment, common.EntryTypePayment); err != nil {
			return err
		}

		feePercentage, err := svc.FeePercentage(ctx)
		if err != nil {
			return err
		}
		fee, proceeds := SplitSalePrice(listing.Price, feePercentage)
		refund := payment - listing.Price

		if err := svc.markSold(ctx, tx, listing, buyer); err != nil {
			return err
		}
		sale = &models.Sale{
			Collection:    collection,
			TokenID:       tokenID,
			Seller:        listing.Seller,
			Buyer:         buyer,
			Price:         listing.Price,
			Payment:       payment,
			Fee:           fee,
			Proceeds:      proceeds,
			Refund:        refund,
			FeePercentage: feePercentage,
			CreatedAt:     time.Now(),
		}
		if _, err := tx.NewInsert().Model(sale).Exec(ctx); err != nil {
			return err
		}
		if err := svc.queueEvent(ctx, tx, soldEvent(listing)); err != nil {
			return err
		}
		if _, err := svc.adjustStats(ctx, tx, collection, -1, 1); err != nil {
			return err
		}
		if err := svc.Custodian.ReleaseCustody(ctx, tx, collection, tokenID, buyer); err != nil {
			return err
		}

		if fee > 0 {
			if err := svc.transferValue(ctx, tx, holdingAddress, svc.Admin.Address(), fee, common.EntryTypeFee); err != nil {
				return err
			}
		}
		if proceeds > 0 {
			if err := svc.transferValue(ctx, tx, holdingAddress, listing.Seller, proceeds, common.EntryTypeProceeds); err != nil {
				return err
			}
		}
		if refund > 0 {
			if err := svc.transferValue(ctx, tx, holdingAddress, buyer, refund, common.EntryTypeRefund); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	svc.Logger.Infof("Sold %s/%d to %s for %d (fee %d, refund %d)", collection, tokenID, buyer, sale.Price, sale.Fee, sale.Refund)
	return sale, nil
}

// Unlist erases the listing and returns the asset to its seller.
func (svc *MarketService) Unlist(ctx context.Context, collection string, tokenID uint64, caller string) (*models.Listing, error) {
	var listing *models.Listing
	err := svc.runAction(ctx, "unlist", func(ctx context.Context, tx bun.Tx) error {
		var err error
		listing, err = svc.removeListing(ctx, tx, collection, tokenID, caller)
		if err != nil {
			return err
		}
		if err := svc.queueEvent(ctx, tx, unlistedEvent(listing)); err != nil {
			return err
		}
		if _, err := svc.adjustStats(ctx, tx, collection, -1, 0); err != nil {
			return err
		}
		return svc.Custodian.ReleaseCustody(ctx, tx, collection, tokenID, caller)
	})
	if err != nil {
		return nil, err
	}
	svc.Logger.Infof("Unlisted %s/%d by %s", collection, tokenID, caller)
	return listing, nil
}

func (svc *MarketService) ChangePrice(ctx context.Context, collection string, tokenID uint64, caller string, newPrice int64) (*models.Listing, error) {
	var listing *models.Listing
	err := svc.runAction(ctx, "change price", func(ctx context.Context, tx bun.Tx) error {
		var err error
		listing, err = svc.setPrice(ctx, tx, collection, tokenID, caller, newPrice)
		if err != nil {
			return err
		}
		return svc.queueEvent(ctx, tx, priceChangedEvent(listing))
	})
	if err != nil {
		return nil, err
	}
	svc.Logger.Infof("Changed price of %s/%d to %d", collection, tokenID, newPrice)
	return listing, nil
}

func (svc *MarketService) transferValue(ctx context.Context, db bun.IDB, from, to string, amount int64, entryType string) error {
	if err := svc.Payments.Transfer(ctx, db, from, to, amount, entryType); err != nil {
		return fmt.Errorf("%w: %s of %d from %s to %s: %w", ErrTransferRejected, entryType, amount, from, to, err)
	}
	return nil
}

// Sales returns the settled sales of an asset, newest first.
func (svc *MarketService) Sales(ctx context.Context, collection string, tokenID uint64) ([]models.Sale, error) {
	sales := []models.Sale{}
	err := svc.idb(ctx).NewSelect().
		Model(&sales).
		Where("collection = ? AND token_id = ?", collection, tokenID).
		OrderExpr("id DESC").
		Scan(ctx)
	return sales, err
}
