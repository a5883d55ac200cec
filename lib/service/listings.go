package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/getAlby/nftmarket.go/db/models"
	"github.com/uptrace/bun"
)

// GetListing returns the stored record of an asset, or nil if there is none.
// Sold records stay readable with Active set to false.
func (svc *MarketService) GetListing(ctx context.Context, collection string, tokenID uint64) (*models.Listing, error) {
	return svc.findListing(ctx, svc.idb(ctx), collection, tokenID)
}

type ListingFilter struct {
	Collection string
	Seller     string
	Limit      int
	Offset     int
}

// ActiveListings returns active listings, oldest first.
func (svc *MarketService) ActiveListings(ctx context.Context, filter ListingFilter) ([]models.Listing, error) {
	listings := []models.Listing{}
	query := svc.idb(ctx).NewSelect().
		Model(&listings).
		Where("active = ?", true).
		OrderExpr("id ASC")
	if filter.Collection != "" {
		query = query.Where("collection = ?", filter.Collection)
	}
	if filter.Seller != "" {
		query = query.Where("seller = ?", filter.Seller)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	err := query.Scan(ctx)
	return listings, err
}

func (svc *MarketService) findListing(ctx context.Context, db bun.IDB, collection string, tokenID uint64) (*models.Listing, error) {
	listing := &models.Listing{}
	err := db.NewSelect().
		Model(listing).
		Where("collection = ? AND token_id = ?", collection, tokenID).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return listing, nil
}

// createListing stores an active record, replacing a sold one if present
func (svc *MarketService) createListing(ctx context.Context, db bun.IDB, collection string, tokenID uint64, seller string, price int64) (*models.Listing, error) {
	if price <= 0 {
		return nil, ErrInvalidPrice
	}
	existing, err := svc.findListing(ctx, db, collection, tokenID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Active {
		return nil, ErrAlreadyListed
	}
	if existing != nil {
		if _, err := db.NewDelete().Model(existing).WherePK().Exec(ctx); err != nil {
			return nil, err
		}
	}
	listing := &models.Listing{
		Collection: collection,
		TokenID:    tokenID,
		Seller:     seller,
		Price:      price,
		Active:     true,
		CreatedAt:  time.Now(),
	}
	if _, err := db.NewInsert().Model(listing).Exec(ctx); err != nil {
		return nil, err
	}
	return listing, nil
}

// sellerListing loads the record caller may mutate
// A missing record has no seller, so it fails with ErrNotSeller.
func (svc *MarketService) sellerListing(ctx context.Context, db bun.IDB, collection string, tokenID uint64, caller string) (*models.Listing, error) {
	listing, err := svc.findListing(ctx, db, collection, tokenID)
	if err != nil {
		return nil, err
	}
	if listing == nil || listing.Seller != caller {
		return nil, ErrNotSeller
	}
	if !listing.Active {
		return nil, ErrNotListed
	}
	return listing, nil
}

func (svc *MarketService) setPrice(ctx context.Context, db bun.IDB, collection string, tokenID uint64, caller string, newPrice int64) (*models.Listing, error) {
	if newPrice <= 0 {
		return nil, ErrInvalidPrice
	}
	listing, err := svc.sellerListing(ctx, db, collection, tokenID, caller)
	if err != nil {
		return nil, err
	}
	listing.Price = newPrice
	if _, err := db.NewUpdate().Model(listing).Column("price", "updated_at").WherePK().Exec(ctx); err != nil {
		return nil, err
	}
	return listing, nil
}

func (svc *MarketService) removeListing(ctx context.Context, db bun.IDB, collection string, tokenID uint64, caller string) (*models.Listing, error) {
	listing, err := svc.sellerListing(ctx, db, collection, tokenID, caller)
	if err != nil {
		return nil, err
	}
	if _, err := db.NewDelete().Model(listing).WherePK().Exec(ctx); err != nil {
		return nil, err
	}
	return listing, nil
}

func (svc *MarketService) markSold(ctx context.Context, db bun.IDB, listing *models.Listing, buyer string) error {
	listing.Active = false
	listing.Buyer = buyer
	listing.SoldAt = bun.NullTime{Time: time.Now()}
	_, err := db.NewUpdate().
		Model(listing).
		Column("active", "buyer", "sold_at", "updated_at").
		WherePK().
		Exec(ctx)
	return err
}
