package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// FeeConfig : singleton row holding the marketplace fee
type FeeConfig struct {
	bun.BaseModel `bun:"table:fee_configs"`

	ID         int64        `json:"-" bun:",pk"`
	Percentage int64        `json:"percentage" bun:",notnull"`
	CreatedAt  time.Time    `json:"-" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt  bun.NullTime `json:"updated_at"`
}

func (f *FeeConfig) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		f.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*FeeConfig)(nil)
