package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Sale : Sale Model
type Sale struct {
	bun.BaseModel `bun:"table:sales"`

	ID            int64     `json:"id" bun:",pk,autoincrement"`
	Collection    string    `json:"collection" bun:",notnull"`
	TokenID       uint64    `json:"token_id" bun:",notnull"`
	Seller        string    `json:"seller" bun:",notnull"`
	Buyer         string    `json:"buyer" bun:",notnull"`
	Price         int64     `json:"price" bun:",notnull"`
	Payment       int64     `json:"payment" bun:",notnull"`
	Fee           int64     `json:"fee" bun:",notnull"`
	Proceeds      int64     `json:"proceeds" bun:",notnull"`
	Refund        int64     `json:"refund" bun:",notnull"`
	FeePercentage int64     `json:"fee_percentage" bun:",notnull"`
	CreatedAt     time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}
