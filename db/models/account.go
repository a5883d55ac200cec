package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Account : value account of an address in the reference ledger
type Account struct {
	bun.BaseModel `bun:"table:accounts"`

	ID        int64        `json:"-" bun:",pk,autoincrement"`
	Address   string       `json:"address" bun:",notnull,unique"`
	Balance   int64        `json:"balance" bun:",notnull"`
	CreatedAt time.Time    `json:"-" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt bun.NullTime `json:"-"`
}

func (a *Account) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		a.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Account)(nil)
