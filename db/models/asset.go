package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// AssetHolding : current holder of a non-fungible asset in the reference ledger
type AssetHolding struct {
	bun.BaseModel `bun:"table:asset_holdings"`

	ID         int64        `json:"-" bun:",pk,autoincrement"`
	Collection string       `json:"collection" bun:",notnull,unique:holding_key"`
	TokenID    uint64       `json:"token_id" bun:",notnull,unique:holding_key"`
	Owner      string       `json:"owner" bun:",notnull"`
	CreatedAt  time.Time    `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt  bun.NullTime `json:"updated_at"`
}

func (a *AssetHolding) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		a.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

// AssetApproval : operator allowed to transfer every asset of an owner in a collection
type AssetApproval struct {
	bun.BaseModel `bun:"table:asset_approvals"`

	ID         int64     `json:"-" bun:",pk,autoincrement"`
	Collection string    `json:"collection" bun:",notnull,unique:approval_key"`
	Owner      string    `json:"owner" bun:",notnull,unique:approval_key"`
	Operator   string    `json:"operator" bun:",notnull,unique:approval_key"`
	CreatedAt  time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}

var _ bun.BeforeAppendModelHook = (*AssetHolding)(nil)
