package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/getAlby/nftmarket.go/db/models"
	"github.com/uptrace/bun"
)

// CollectionStats returns the running counters of collection.
// Unknown collections have zero counters.
func (svc *MarketService) CollectionStats(ctx context.Context, collection string) (*models.CollectionStats, error) {
	return svc.findStats(ctx, svc.idb(ctx), collection)
}

func (svc *MarketService) CountListings(ctx context.Context, collection string) (int64, error) {
	stats, err := svc.CollectionStats(ctx, collection)
	if err != nil {
		return 0, err
	}
	return stats.TotalListings, nil
}

func (svc *MarketService) CountSales(ctx context.Context, collection string) (int64, error) {
	stats, err := svc.CollectionStats(ctx, collection)
	if err != nil {
		return 0, err
	}
	return stats.TotalSales, nil
}

func (svc *MarketService) findStats(ctx context.Context, db bun.IDB, collection string) (*models.CollectionStats, error) {
	stats := &models.CollectionStats{}
	err := db.NewSelect().Model(stats).Where("collection = ?", collection).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.CollectionStats{Collection: collection}, nil
	}
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// adjustStats applies the deltas and queues a stats_updated event
func (svc *MarketService) adjustStats(ctx context.Context, db bun.IDB, collection string, listingsDelta, salesDelta int64) (*models.CollectionStats, error) {
	stats, err := svc.findStats(ctx, db, collection)
	if err != nil {
		return nil, err
	}
	exists := !stats.UpdatedAt.IsZero()
	stats.TotalListings += listingsDelta
	stats.TotalSales += salesDelta
	stats.UpdatedAt = time.Now()
	if exists {
		_, err = db.NewUpdate().Model(stats).Column("total_listings", "total_sales", "updated_at").WherePK().Exec(ctx)
	} else {
		_, err = db.NewInsert().Model(stats).Exec(ctx)
	}
	if err != nil {
		return nil, err
	}
	if err := svc.queueEvent(ctx, db, statsUpdatedEvent(stats)); err != nil {
		return nil, err
	}
	return stats, nil
}
