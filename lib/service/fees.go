package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/getAlby/nftmarket.go/common"
	"github.com/getAlby/nftmarket.go/db/models"
	"github.com/uptrace/bun"
)

// SplitSalePrice splits price into the marketplace fee and the seller proceeds.
// fee is floor(price * feePercentage / 100), computed without overflowing int64.
func SplitSalePrice(price, feePercentage int64) (fee, proceeds int64) {
	fee = (price/100)*feePercentage + (price%100)*feePercentage/100
	return fee, price - fee
}

func ValidateFeePercentage(feePercentage int64) error {
	if feePercentage < 0 || feePercentage >= common.MaxFeePercentage {
		return ErrInvalidFeePercentage
	}
	return nil
}

// EnsureFeeConfig seeds the fee config with the configured default if none is stored yet.
func (svc *MarketService) EnsureFeeConfig(ctx context.Context) (*models.FeeConfig, error) {
	feeConfig, err := svc.feeConfig(ctx, svc.DB)
	if err == nil {
		return feeConfig, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err := ValidateFeePercentage(svc.Config.DefaultFeePercentage); err != nil {
		return nil, err
	}
	feeConfig = &models.FeeConfig{
		ID:         common.FeeConfigID,
		Percentage: svc.Config.DefaultFeePercentage,
		CreatedAt:  time.Now(),
	}
	if _, err := svc.DB.NewInsert().Model(feeConfig).Exec(ctx); err != nil {
		return nil, err
	}
	svc.Logger.Infof("Seeded fee percentage with %d", feeConfig.Percentage)
	return feeConfig, nil
}

// FeePercentage returns the fee applied to the next sale.
func (svc *MarketService) FeePercentage(ctx context.Context) (int64, error) {
	feeConfig, err := svc.feeConfig(ctx, svc.idb(ctx))
	if errors.Is(err, sql.ErrNoRows) {
		return svc.Config.DefaultFeePercentage, nil
	}
	if err != nil {
		return 0, err
	}
	return feeConfig.Percentage, nil
}

func (svc *MarketService) SetFeePercentage(ctx context.Context, caller string, feePercentage int64) (*models.FeeConfig, error) {
	feeConfig := &models.FeeConfig{}
	err := svc.runAction(ctx, "set fee percentage", func(ctx context.Context, tx bun.Tx) error {
		if !svc.Admin.IsAdministrator(caller) {
			return ErrNotAdministrator
		}
		if err := ValidateFeePercentage(feePercentage); err != nil {
			return err
		}
		current, err := svc.feeConfig(ctx, tx)
		if errors.Is(err, sql.ErrNoRows) {
			feeConfig = &models.FeeConfig{
				ID:         common.FeeConfigID,
				Percentage: feePercentage,
				CreatedAt:  time.Now(),
			}
			_, err = tx.NewInsert().Model(feeConfig).Exec(ctx)
			return err
		}
		if err != nil {
			return err
		}
		current.Percentage = feePercentage
		if _, err := tx.NewUpdate().Model(current).Column("percentage", "updated_at").WherePK().Exec(ctx); err != nil {
			return err
		}
		feeConfig = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	svc.Logger.Infof("Fee percentage set to %d by %s", feeConfig.Percentage, caller)
	return feeConfig, nil
}

func (svc *MarketService) feeConfig(ctx context.Context, db bun.IDB) (*models.FeeConfig, error) {
	feeConfig := &models.FeeConfig{}
	err := db.NewSelect().Model(feeConfig).Where("id = ?", common.FeeConfigID).Limit(1).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return feeConfig, nil
}
