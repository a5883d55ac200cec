package models

import (
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// MarketEvent : append-only notification log entry
// Fields that do not apply to an event type stay empty. TokenID and Price are
// pointers because 0 is a valid token id.
type MarketEvent struct {
	bun.BaseModel `bun:"table:market_events"`

	ID            int64        `json:"id" bun:",pk,autoincrement"`
	EventID       string       `json:"event_id" bun:",notnull,unique"`
	Type          string       `json:"type" bun:",notnull"`
	Collection    string       `json:"collection" bun:",notnull"`
	TokenID       *uint64      `json:"token_id,omitempty"`
	Seller        string       `json:"seller,omitempty" bun:",nullzero"`
	Buyer         string       `json:"buyer,omitempty" bun:",nullzero"`
	Price         *int64       `json:"price,omitempty"`
	TotalListings int64        `json:"total_listings"`
	TotalSales    int64        `json:"total_sales"`
	CreatedAt     time.Time    `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	PublishedAt   bun.NullTime `json:"-"`
}

// Asset is collection/token_id, or the collection for collection wide events
func (e MarketEvent) Asset() string {
	if e.TokenID == nil {
		return e.Collection
	}
	return fmt.Sprintf("%s/%d", e.Collection, *e.TokenID)
}
