package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/getAlby/nftmarket.go/common"
	"github.com/getAlby/nftmarket.go/db/models"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func ref[T any](v T) *T {
	return &v
}

func listedEvent(listing *models.Listing) *models.MarketEvent {
	return &models.MarketEvent{
		Type:       common.EventTypeListed,
		Collection: listing.Collection,
		TokenID:    ref(listing.TokenID),
		Seller:     listing.Seller,
		Price:      ref(listing.Price),
	}
}

func soldEvent(listing *models.Listing) *models.MarketEvent {
	return &models.MarketEvent{
		Type:       common.EventTypeSold,
		Collection: listing.Collection,
		TokenID:    ref(listing.TokenID),
		Seller:     listing.Seller,
		Buyer:      listing.Buyer,
		Price:      ref(listing.Price),
	}
}

func priceChangedEvent(listing *models.Listing) *models.MarketEvent {
	return &models.MarketEvent{
		Type:       common.EventTypePriceChanged,
		Collection: listing.Collection,
		TokenID:    ref(listing.TokenID),
		Seller:     listing.Seller,
		Price:      ref(listing.Price),
	}
}

func unlistedEvent(listing *models.Listing) *models.MarketEvent {
	return &models.MarketEvent{
		Type:       common.EventTypeUnlisted,
		Collection: listing.Collection,
		TokenID:    ref(listing.TokenID),
		Seller:     listing.Seller,
	}
}

func statsUpdatedEvent(stats *models.CollectionStats) *models.MarketEvent {
	return &models.MarketEvent{
		Type:          common.EventTypeStatsUpdated,
		Collection:    stats.Collection,
		TotalListings: stats.TotalListings,
		TotalSales:    stats.TotalSales,
	}
}

// queueEvent appends the event to the log of the running action.
// It is published once the action commits.
func (svc *MarketService) queueEvent(ctx context.Context, db bun.IDB, event *models.MarketEvent) error {
	frame := actionFrameFrom(ctx)
	if frame == nil {
		return fmt.Errorf("%s event queued outside of an action", event.Type)
	}
	event.EventID = uuid.NewString()
	event.CreatedAt = time.Now()
	if _, err := db.NewInsert().Model(event).Exec(ctx); err != nil {
		return err
	}
	frame.events = append(frame.events, *event)
	return nil
}

// Events returns logged events with an id greater than afterID, in log order.
func (svc *MarketService) Events(ctx context.Context, afterID int64, limit int) ([]models.MarketEvent, error) {
	events := []models.MarketEvent{}
	query := svc.idb(ctx).NewSelect().
		Model(&events).
		Where("id > ?", afterID).
		OrderExpr("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Scan(ctx)
	return events, err
}

// EventsBetween returns the events created in [from, to], in log order.
func (svc *MarketService) EventsBetween(ctx context.Context, from, to time.Time) ([]models.MarketEvent, error) {
	events := []models.MarketEvent{}
	err := svc.DB.NewSelect().
		Model(&events).
		Where("created_at >= ?", from).
		Where("created_at <= ?", to).
		OrderExpr("id ASC").
		Scan(ctx)
	return events, err
}

func (svc *MarketService) MarkEventPublished(ctx context.Context, event models.MarketEvent) error {
	_, err := svc.DB.NewUpdate().
		Model((*models.MarketEvent)(nil)).
		Set("published_at = ?", time.Now()).
		Where("id = ?", event.ID).
		Exec(ctx)
	return err
}

func (svc *MarketService) EncodeMarketEvent(ctx context.Context, w io.Writer, event models.MarketEvent) error {
	return json.NewEncoder(w).Encode(event)
}

// SubscribeMarketEvents subscribes to every market event. The returned func
// unsubscribes and closes the channel.
func (svc *MarketService) SubscribeMarketEvents() (chan models.MarketEvent, func(), error) {
	events := make(chan models.MarketEvent, 64)
	subId, err := svc.EventPubSub.Subscribe(common.EventTopicAll, events)
	if err != nil {
		return nil, nil, err
	}
	return events, func() { svc.EventPubSub.Unsubscribe(subId, common.EventTopicAll) }, nil
}
