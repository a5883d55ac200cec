package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/getAlby/nftmarket.go/db/models"
	"github.com/uptrace/bun"
)

func (l *Ledger) Mint(ctx context.Context, db bun.IDB, collection string, tokenID uint64, owner string) (*models.AssetHolding, error) {
	if collection == "" || owner == "" {
		return nil, fmt.Errorf("collection and owner are required")
	}
	exists, err := db.NewSelect().
		Model((*models.AssetHolding)(nil)).
		Where("collection = ? AND token_id = ?", collection, tokenID).
		Exists(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAssetExists
	}
	holding := &models.AssetHolding{
		Collection: collection,
		TokenID:    tokenID,
		Owner:      owner,
		CreatedAt:  time.Now(),
	}
	if _, err := db.NewInsert().Model(holding).Exec(ctx); err != nil {
		return nil, err
	}
	return holding, nil
}

// SetApprovalForAll lets operator move every asset owner holds in collection.
func (l *Ledger) SetApprovalForAll(ctx context.Context, db bun.IDB, collection, owner, operator string, approved bool) error {
	if !approved {
		_, err := db.NewDelete().
			Model((*models.AssetApproval)(nil)).
			Where("collection = ? AND owner = ? AND operator = ?", collection, owner, operator).
			Exec(ctx)
		return err
	}
	approved, err := l.IsApprovedForAll(ctx, db, collection, owner, operator)
	if err != nil || approved {
		return err
	}
	approval := &models.AssetApproval{
		Collection: collection,
		Owner:      owner,
		Operator:   operator,
		CreatedAt:  time.Now(),
	}
	_, err = db.NewInsert().Model(approval).Exec(ctx)
	return err
}

func (l *Ledger) IsApprovedForAll(ctx context.Context, db bun.IDB, collection, owner, operator string) (bool, error) {
	return db.NewSelect().
		Model((*models.AssetApproval)(nil)).
		Where("collection = ? AND owner = ? AND operator = ?", collection, owner, operator).
		Exists(ctx)
}

func (l *Ledger) OwnerOf(ctx context.Context, db bun.IDB, collection string, tokenID uint64) (string, error) {
	holding, err := l.holding(ctx, db, collection, tokenID)
	if err != nil {
		return "", err
	}
	return holding.Owner, nil
}

// BalanceOf counts the assets owner holds in collection.
func (l *Ledger) BalanceOf(ctx context.Context, db bun.IDB, collection, owner string) (int64, error) {
	count, err := db.NewSelect().
		Model((*models.AssetHolding)(nil)).
		Where("collection = ? AND owner = ?", collection, owner).
		Count(ctx)
	return int64(count), err
}

// TransferFrom moves an asset from its owner to a new holder. The operator must
// either be the owner or be approved by the owner for the collection.
// The receiver registered for to runs after the move and may reject it.
func (l *Ledger) TransferFrom(ctx context.Context, db bun.IDB, operator, collection string, tokenID uint64, from, to string) error {
	holding, err := l.holding(ctx, db, collection, tokenID)
	if err != nil {
		return err
	}
	if holding.Owner != from {
		return ErrNotOwner
	}
	if operator != from {
		approved, err := l.IsApprovedForAll(ctx, db, collection, from, operator)
		if err != nil {
			return err
		}
		if !approved {
			return ErrNotApproved
		}
	}
	holding.Owner = to
	if _, err := db.NewUpdate().Model(holding).Column("owner", "updated_at").WherePK().Exec(ctx); err != nil {
		return err
	}
	if receiver := l.assetReceiver(to); receiver != nil {
		if err := receiver.OnAssetReceived(ctx, operator, from, collection, tokenID); err != nil {
			return fmt.Errorf("%w: %v", ErrReceiverRejected, err)
		}
	}
	return nil
}

func (l *Ledger) holding(ctx context.Context, db bun.IDB, collection string, tokenID uint64) (*models.AssetHolding, error) {
	holding := &models.AssetHolding{}
	err := db.NewSelect().
		Model(holding).
		Where("collection = ? AND token_id = ?", collection, tokenID).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUnknownAsset
	}
	if err != nil {
		return nil, err
	}
	return holding, nil
}
