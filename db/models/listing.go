package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Listing : Listing Model
// A listing is active while the marketplace holds the asset in custody.
type Listing struct {
	bun.BaseModel `bun:"table:listings"`

	ID         int64        `json:"id" bun:",pk,autoincrement"`
	Collection string       `json:"collection" bun:",notnull,unique:listing_key"`
	TokenID    uint64       `json:"token_id" bun:",notnull,unique:listing_key"`
	Seller     string       `json:"seller" bun:",notnull"`
	Price      int64        `json:"price" bun:",notnull"`
	Active     bool         `json:"active" bun:",notnull"`
	Buyer      string       `json:"buyer,omitempty" bun:",nullzero"`
	CreatedAt  time.Time    `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt  bun.NullTime `json:"updated_at"`
	SoldAt     bun.NullTime `json:"sold_at"`
}

func (l *Listing) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		l.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Listing)(nil)
