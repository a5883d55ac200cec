package models

import (
	"time"

	"github.com/uptrace/bun"
)

// CollectionStats : running listing and sale counters of a collection
type CollectionStats struct {
	bun.BaseModel `bun:"table:collection_stats"`

	Collection    string    `json:"collection" bun:",pk"`
	TotalListings int64     `json:"total_listings" bun:",notnull"`
	TotalSales    int64     `json:"total_sales" bun:",notnull"`
	UpdatedAt     time.Time `json:"updated_at" bun:",nullzero,notnull,default:current_timestamp"`
}
